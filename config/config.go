// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"

	"github.com/PeterDeWeirdt/combibuild/internal/combibuild"
)

// Config is the root-level settings struct, a mix of settings available
// from the command line and a settings file
type Config struct {
	// path to the single-gene design table (.csv, .tsv or .txt)
	In string `mapstructure:"in"`

	// path to write the guide-pair library table to
	Out string `mapstructure:"out"`

	// path to write a JSON run summary to (optional)
	Summary string `mapstructure:"summary"`

	// name of the design table's gene column
	GeneCol string `mapstructure:"gene-col"`

	// name of the design table's guide column
	GuideCol string `mapstructure:"guide-col"`

	// name of the design table's rank column
	RankCol string `mapstructure:"rank-col"`

	// pair every gene in the design table against every other
	AllByAll bool `mapstructure:"all-by-all"`

	// also pair each gene with itself during all-by-all generation
	SelfPairs bool `mapstructure:"self"`

	// comma-separated genes (or @file) for the grid rows
	RowGenes string `mapstructure:"row-genes"`

	// comma-separated genes (or @file) for the grid columns
	ColGenes string `mapstructure:"col-genes"`

	// comma-separated reference genes (or @file) to cross against
	// every other gene in the design table
	RefGenes string `mapstructure:"ref-genes"`

	// path to a two-column table of explicit gene pairs
	GenePairs string `mapstructure:"gene-pairs"`

	// guide pairing policy: "all" or "rank"
	GuidePairing string `mapstructure:"guide-pairing"`

	// also emit the swapped orientation of every gene pair
	DualOrientation bool `mapstructure:"dual-orientation"`

	// randomize which pair member lands in slot 1 vs slot 2
	Shuffle bool `mapstructure:"shuffle"`

	// seed for the shuffle's random generator (-1 = time-based)
	Seed int64 `mapstructure:"seed"`

	// number of worker goroutines for the guide cross-join
	Threads int `mapstructure:"threads"`
}

// New returns a new Config struct populated by Viper settings
// bound from command line flags
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into config: %v", err)
	}

	return &c
}

// Validate rejects setting combinations the design pipeline cannot act on
func (c *Config) Validate() error {
	switch combibuild.Policy(c.GuidePairing) {
	case combibuild.PolicyAll, combibuild.PolicyRank:
	default:
		return fmt.Errorf("%w: unknown guide pairing policy %q, want \"all\" or \"rank\"",
			combibuild.ErrConfig, c.GuidePairing)
	}

	if (c.RowGenes != "") != (c.ColGenes != "") {
		return fmt.Errorf("%w: row-genes and col-genes must be supplied together", combibuild.ErrConfig)
	}

	if !c.AllByAll && c.RowGenes == "" && c.RefGenes == "" && c.GenePairs == "" {
		return fmt.Errorf("%w: no pairing strategy selected, pass at least one of "+
			"all-by-all, row-genes/col-genes, ref-genes or gene-pairs", combibuild.ErrConfig)
	}

	return nil
}
