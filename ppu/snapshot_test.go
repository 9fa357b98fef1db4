package ppu

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nespu/internal/snapshot"
)

func TestExportImportRoundTrip(t *testing.T) {
	p := newTestPPU()
	p.CPUWrite(0, ctrlNMIEnable)
	for i := 0; i < 1000; i++ {
		p.Clock()
	}

	want := p.Export()

	q := newTestPPU()
	q.Import(want)
	got := q.Export()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Export/Import round trip mismatch:\n%s", diff)
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	p := newTestPPU()
	for i := 0; i < 500; i++ {
		p.Clock()
	}
	want := p.Export()

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, want); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := snapshot.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON round trip mismatch:\n%s", diff)
	}
}
