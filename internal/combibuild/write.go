package combibuild

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Library is the result of a design run: the guide-pair rows plus run
// metadata for the JSON summary
type Library struct {
	// ID is a unique identifier for this run
	ID string `json:"id"`

	// local time the library was designed, ex:
	// "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds the design took
	Execution float64 `json:"execution"`

	// Genes is the number of unique genes in the design table
	Genes int `json:"genes"`

	// GenePairs is the number of gene pairs after merging strategies
	GenePairs int `json:"genePairs"`

	// GuidePairs is the number of output guide-pair rows
	GuidePairs int `json:"guidePairs"`

	// Shuffled is whether slot assignment was randomized
	Shuffled bool `json:"shuffled"`

	// Seed is the random seed used for shuffling, if any
	Seed int64 `json:"seed,omitempty"`

	Pairs    []GuidePair    `json:"-"`
	Shuffles []ShuffledPair `json:"-"`
}

// WriteTable writes the library as a tab-separated table. The header is
// gene_x/gene_y/guide_x/guide_y for an unshuffled library and
// gene_1/guide_1/gene_2/guide_2 after shuffling
func (l *Library) WriteTable(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if l.Shuffled {
		if err := cw.Write([]string{"gene_1", "guide_1", "gene_2", "guide_2"}); err != nil {
			return err
		}
		for _, p := range l.Shuffles {
			if err := cw.Write([]string{p.Gene1, p.Guide1, p.Gene2, p.Guide2}); err != nil {
				return err
			}
		}
	} else {
		if err := cw.Write([]string{"gene_x", "gene_y", "guide_x", "guide_y"}); err != nil {
			return err
		}
		for _, p := range l.Pairs {
			if err := cw.Write([]string{p.GeneX, p.GeneY, p.GuideX, p.GuideY}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary writes the run metadata to a JSON file at filename
func (l *Library) WriteSummary(filename string) error {
	output, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize library summary: %w", err)
	}
	if err = os.WriteFile(filename, output, 0666); err != nil {
		return fmt.Errorf("failed to write library summary: %w", err)
	}
	return nil
}
