package combibuild

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func Test_WriteTable(t *testing.T) {
	lib := &Library{
		Pairs: []GuidePair{
			{GeneX: "A", GeneY: "B", GuideX: "a1", GuideY: "b1"},
			{GeneX: "Y", GeneY: "Y", GuideX: "", GuideY: ""},
		},
	}

	var buf bytes.Buffer
	if err := lib.WriteTable(&buf); err != nil {
		t.Fatal(err)
	}
	want := "gene_x\tgene_y\tguide_x\tguide_y\nA\tB\ta1\tb1\nY\tY\t\t\n"
	if buf.String() != want {
		t.Errorf("WriteTable() = %q, want %q", buf.String(), want)
	}
}

func Test_WriteTable_shuffled(t *testing.T) {
	lib := &Library{
		Shuffled: true,
		Shuffles: []ShuffledPair{
			{Gene1: "B", Guide1: "b1", Gene2: "A", Guide2: "a1"},
		},
	}

	var buf bytes.Buffer
	if err := lib.WriteTable(&buf); err != nil {
		t.Fatal(err)
	}
	want := "gene_1\tguide_1\tgene_2\tguide_2\nB\tb1\tA\ta1\n"
	if buf.String() != want {
		t.Errorf("WriteTable() = %q, want %q", buf.String(), want)
	}
}

func Test_WriteSummary(t *testing.T) {
	lib := &Library{
		ID:         "test-run",
		Time:       "2026-08-28 12:00:00",
		Genes:      3,
		GenePairs:  6,
		GuidePairs: 6,
	}

	filename := filepath.Join(t.TempDir(), "summary.json")
	if err := lib.WriteSummary(filename); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	var got Library
	if err := json.Unmarshal(contents, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != lib.ID || got.Genes != lib.Genes || got.GuidePairs != lib.GuidePairs {
		t.Errorf("summary roundtrip = %+v, want %+v", got, lib)
	}
}
