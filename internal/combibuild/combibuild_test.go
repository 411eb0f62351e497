package combibuild

import (
	"errors"
	"reflect"
	"testing"
)

// a three gene table with one unranked guide per gene designs to three
// self pairs plus three cross pairs
func Test_Design(t *testing.T) {
	records := []GuideRecord{
		{Gene: "G1", Guide: "g1"},
		{Gene: "G2", Guide: "g2"},
		{Gene: "G3", Guide: "g3"},
	}

	lib, err := Design(records, Options{
		Pairs: PairOptions{AllByAll: true, SelfPairs: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []GuidePair{
		{GeneX: "G1", GeneY: "G1", GuideX: "g1", GuideY: "g1"},
		{GeneX: "G1", GeneY: "G2", GuideX: "g1", GuideY: "g2"},
		{GeneX: "G1", GeneY: "G3", GuideX: "g1", GuideY: "g3"},
		{GeneX: "G2", GeneY: "G2", GuideX: "g2", GuideY: "g2"},
		{GeneX: "G2", GeneY: "G3", GuideX: "g2", GuideY: "g3"},
		{GeneX: "G3", GeneY: "G3", GuideX: "g3", GuideY: "g3"},
	}
	if !reflect.DeepEqual(lib.Pairs, want) {
		t.Errorf("Design() pairs = %v, want %v", lib.Pairs, want)
	}

	if lib.ID == "" {
		t.Error("Design() library has no run ID")
	}
	if lib.Genes != 3 || lib.GenePairs != 6 || lib.GuidePairs != 6 {
		t.Errorf("Design() counts = %d genes, %d gene pairs, %d guide pairs",
			lib.Genes, lib.GenePairs, lib.GuidePairs)
	}
	if lib.Shuffled || lib.Shuffles != nil {
		t.Error("Design() shuffled without being asked to")
	}
}

func Test_Design_shuffle(t *testing.T) {
	records := []GuideRecord{
		{Gene: "G1", Guide: "g1"},
		{Gene: "G2", Guide: "g2"},
		{Gene: "G3", Guide: "g3"},
		{Gene: "G4", Guide: "g4"},
	}
	opts := Options{
		Pairs:   PairOptions{AllByAll: true, SelfPairs: true},
		Shuffle: true,
		Seed:    11,
	}

	first, err := Design(records, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Design(records, opts)
	if err != nil {
		t.Fatal(err)
	}

	if !first.Shuffled {
		t.Fatal("Design() did not shuffle")
	}
	if len(first.Shuffles) != len(first.Pairs) {
		t.Errorf("shuffle changed row count: %d -> %d", len(first.Pairs), len(first.Shuffles))
	}
	if !reflect.DeepEqual(first.Shuffles, second.Shuffles) {
		t.Error("same seed produced different shuffles")
	}
}

// worker count affects scheduling only, never the designed library
func Test_Design_workers(t *testing.T) {
	var records []GuideRecord
	for _, gene := range []string{"G1", "G2", "G3", "G4", "G5"} {
		for r := 1; r <= 2; r++ {
			records = append(records, GuideRecord{
				Gene:  gene,
				Guide: gene + "_" + string(rune('a'+r)),
				Rank:  intp(r),
			})
		}
	}

	serial, err := Design(records, Options{
		Pairs:  PairOptions{AllByAll: true, SelfPairs: true},
		Policy: PolicyRank,
	})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Design(records, Options{
		Pairs:   PairOptions{AllByAll: true, SelfPairs: true},
		Policy:  PolicyRank,
		Workers: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(serial.Pairs, parallel.Pairs) {
		t.Error("parallel design differs from serial design")
	}
}

func Test_Design_noStrategy(t *testing.T) {
	_, err := Design([]GuideRecord{{Gene: "G1", Guide: "g1"}}, Options{})
	if !errors.Is(err, ErrConfig) {
		t.Errorf("Design() error = %v, want a config error", err)
	}
}
