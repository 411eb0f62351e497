package test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PeterDeWeirdt/combibuild/internal/combibuild"
)

// design a library end to end: parse a design table, pair genes all-by-all,
// expand guide pairs, shuffle, and write both output tables
func Test_DesignLibrary(t *testing.T) {
	design := "Target Gene Symbol\tsgRNA Sequence\tPick Order\n" +
		"EGFR\tACGTACGTACGTACGTACGT\t1\n" +
		"EGFR\tTGCATGCATGCATGCATGCA\t2\n" +
		"KRAS\tGGGGCCCCAAAATTTTACGT\t1\n" +
		"KRAS\tCCCCGGGGTTTTAAAATGCA\t2\n" +
		"TP53\tATATATATCGCGCGCGACGT\t1\n"

	records, err := combibuild.ReadDesignTable(strings.NewReader(design), '\t', combibuild.Columns{
		Gene:  "Target Gene Symbol",
		Guide: "sgRNA Sequence",
		Rank:  "Pick Order",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("read %d design rows, want 5", len(records))
	}

	lib, err := combibuild.Design(records, combibuild.Options{
		Pairs:  combibuild.PairOptions{AllByAll: true, SelfPairs: true},
		Policy: combibuild.PolicyRank,
	})
	if err != nil {
		t.Fatal(err)
	}

	// self pairs have equal ranked guides on both sides, so every row they
	// would contribute is excluded; each cross pair contributes one row per
	// shared rank: EGFRxKRAS 2, EGFRxTP53 1, KRASxTP53 1
	if lib.GuidePairs != 4 {
		t.Fatalf("designed %d guide pairs, want 4", lib.GuidePairs)
	}

	var buf bytes.Buffer
	if err := lib.WriteTable(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("wrote %d lines, want header plus 4 rows", len(lines))
	}
	if lines[0] != "gene_x\tgene_y\tguide_x\tguide_y" {
		t.Errorf("unexpected header %q", lines[0])
	}

	// re-read the written table and shuffle it with a fixed seed
	pairs, err := combibuild.ReadLibrary(strings.NewReader(buf.String()), '\t')
	if err != nil {
		t.Fatal(err)
	}
	shuffled, err := combibuild.Design(records, combibuild.Options{
		Pairs:   combibuild.PairOptions{AllByAll: true, SelfPairs: true},
		Policy:  combibuild.PolicyRank,
		Shuffle: true,
		Seed:    3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(shuffled.Shuffles) != len(pairs) {
		t.Errorf("shuffled library has %d rows, want %d", len(shuffled.Shuffles), len(pairs))
	}

	buf.Reset()
	if err := shuffled.WriteTable(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "gene_1\tguide_1\tgene_2\tguide_2\n") {
		t.Errorf("shuffled table has the wrong header: %q", buf.String())
	}
}

// the unfiltered default: one guide per gene, no ranks, every combination kept
func Test_DesignLibrary_allPolicy(t *testing.T) {
	design := "gene\tguide\trank\nG1\tg1\t\nG2\tg2\t\nG3\tg3\t\n"

	records, err := combibuild.ReadDesignTable(strings.NewReader(design), '\t', combibuild.Columns{
		Gene:  "gene",
		Guide: "guide",
		Rank:  "rank",
	})
	if err != nil {
		t.Fatal(err)
	}

	lib, err := combibuild.Design(records, combibuild.Options{
		Pairs: combibuild.PairOptions{AllByAll: true, SelfPairs: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	// 3 self pairs + 3 cross pairs
	if lib.GuidePairs != 6 {
		t.Errorf("designed %d guide pairs, want 6", lib.GuidePairs)
	}
}
