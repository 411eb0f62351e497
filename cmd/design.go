package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PeterDeWeirdt/combibuild/config"
	"github.com/PeterDeWeirdt/combibuild/internal/combibuild"
)

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a guide-pair library from a single-gene design table",
	Long: `Design a guide-pair library from a single-gene design table.

"combibuild design" turns a flat table of single-gene guide designs into a
table of guide pairs targeting gene pairs. Gene pairs come from any
combination of four strategies:

1. all-by-all: every gene against every other gene (and, by default, itself)
2. row x column: a full grid between two gene lists
3. reference: every non-reference gene against every reference gene
4. explicit: a caller-supplied two-column table of pairs

Each gene pair is then expanded with every compatible guide combination.
"--guide-pairing rank" keeps only combinations of equal-priority guides,
and "--shuffle" removes positional bias by randomly swapping which pair
member is expressed from the first vs second slot.`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	f := designCmd.Flags()
	f.StringP("in", "i", "", "path to the single-gene design table (.csv, .tsv or .txt)")
	f.StringP("out", "o", "", "path to write the guide-pair library table to")
	f.String("summary", "", "path to write a JSON run summary to")

	f.String("gene-col", "Target Gene Symbol", "name of the design table's gene column")
	f.String("guide-col", "sgRNA Sequence", "name of the design table's guide column")
	f.String("rank-col", "Pick Order", "name of the design table's rank column")

	f.BoolP("all-by-all", "a", false, "pair every gene against every other gene")
	f.Bool("self", true, "also pair each gene with itself during all-by-all generation")
	f.String("row-genes", "", "comma-separated genes (or @file, one per line) for the grid rows")
	f.String("col-genes", "", "comma-separated genes (or @file, one per line) for the grid columns")
	f.String("ref-genes", "", "comma-separated reference genes (or @file, one per line)")
	f.String("gene-pairs", "", "path to a two-column table of explicit gene pairs")

	f.StringP("guide-pairing", "g", "all", "guide pairing policy: \"all\" or \"rank\"")
	f.BoolP("dual-orientation", "d", false, "also emit the swapped orientation of every gene pair")
	f.Bool("shuffle", false, "randomize which pair member lands in slot 1 vs slot 2")
	f.Int64("seed", -1, "seed for the shuffle's random generator (-1 = time-based)")
	f.Int("threads", 1, "number of worker goroutines for the guide cross-join")

	designCmd.MarkFlagRequired("in")
	designCmd.MarkFlagRequired("out")
}

// runDesign reads the design table, runs the pairing pipeline, and writes
// the library table (plus the optional JSON summary)
func runDesign(cmd *cobra.Command, args []string) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		stderr.Fatalf("failed to bind flags: %v", err)
	}
	c := config.New()
	if err := c.Validate(); err != nil {
		stderr.Fatalf("%v", err)
	}

	rowGenes, err := parseGeneList(c.RowGenes)
	if err != nil {
		stderr.Fatalf("failed to parse row genes: %v", err)
	}
	colGenes, err := parseGeneList(c.ColGenes)
	if err != nil {
		stderr.Fatalf("failed to parse column genes: %v", err)
	}
	refGenes, err := parseGeneList(c.RefGenes)
	if err != nil {
		stderr.Fatalf("failed to parse reference genes: %v", err)
	}

	var explicit []combibuild.GenePair
	if c.GenePairs != "" {
		f, err := os.Open(c.GenePairs)
		if err != nil {
			stderr.Fatalf("failed to open gene pair table: %v", err)
		}
		explicit, err = combibuild.ReadPairList(f, combibuild.DelimiterFor(c.GenePairs))
		f.Close()
		if err != nil {
			stderr.Fatalf("%v", err)
		}
	}

	in, err := os.Open(c.In)
	if err != nil {
		stderr.Fatalf("failed to open design table: %v", err)
	}
	records, err := combibuild.ReadDesignTable(in, combibuild.DelimiterFor(c.In), combibuild.Columns{
		Gene:  c.GeneCol,
		Guide: c.GuideCol,
		Rank:  c.RankCol,
	})
	in.Close()
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	seed := c.Seed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}

	lib, err := combibuild.Design(records, combibuild.Options{
		Pairs: combibuild.PairOptions{
			AllByAll:        c.AllByAll,
			SelfPairs:       c.SelfPairs,
			RowGenes:        rowGenes,
			ColGenes:        colGenes,
			RefGenes:        refGenes,
			ExplicitPairs:   explicit,
			DualOrientation: c.DualOrientation,
		},
		Policy:  combibuild.Policy(c.GuidePairing),
		Shuffle: c.Shuffle,
		Seed:    seed,
		Workers: c.Threads,
	})
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	out, err := os.Create(c.Out)
	if err != nil {
		stderr.Fatalf("failed to create output table: %v", err)
	}
	if err := lib.WriteTable(out); err != nil {
		out.Close()
		stderr.Fatalf("failed to write output table: %v", err)
	}
	if err := out.Close(); err != nil {
		stderr.Fatalf("failed to write output table: %v", err)
	}

	if c.Summary != "" {
		if err := lib.WriteSummary(c.Summary); err != nil {
			stderr.Fatalf("%v", err)
		}
	}

	stderr.Printf("designed %d guide pairs across %d gene pairs from %d genes, wrote %s",
		lib.GuidePairs, lib.GenePairs, lib.Genes, c.Out)
}

// parseGeneList interprets a gene list flag: empty means none, "@path"
// reads one gene per line from path, anything else is comma-separated
func parseGeneList(value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if strings.HasPrefix(value, "@") {
		contents, err := os.ReadFile(value[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to read gene list %s: %w", value[1:], err)
		}
		var genes []string
		for _, line := range strings.Split(string(contents), "\n") {
			if gene := strings.TrimSpace(line); gene != "" {
				genes = append(genes, gene)
			}
		}
		return genes, nil
	}

	var genes []string
	for _, field := range strings.Split(value, ",") {
		if gene := strings.TrimSpace(field); gene != "" {
			genes = append(genes, gene)
		}
	}
	return genes, nil
}
