// Package combibuild designs combinatorial CRISPR guide libraries: it pairs
// genes under a set of pairing strategies, expands each gene pair into guide
// pairs from a single-gene design table, and optionally shuffles which member
// of each pair lands in the first vs second expression slot
package combibuild

// GuideRecord is one row of the input design table: a single guide
// targeting a single gene
type GuideRecord struct {
	// Gene is the targeted gene's symbol. Used as the join key when
	// expanding gene pairs, so it must be non-empty
	Gene string

	// Guide is the guide's identifier or spacer sequence. An empty Guide
	// is reserved for the no-guide placeholder a join miss produces
	Guide string

	// Rank is the guide's pick-order among its gene's guides, nil when
	// the design table carries no rank for it
	Rank *int
}

// GenePair is a directed pair of genes to be jointly perturbed. Comparable,
// so it doubles as the dedupe key when strategy outputs are merged
type GenePair struct {
	GeneX string
	GeneY string
}

// GuidePair is one output row: a gene pair expanded with one guide per side.
// An empty guide string means the gene had no entry in the design table
type GuidePair struct {
	GeneX  string
	GeneY  string
	GuideX string
	GuideY string

	// ranks ride along through policy filtering and are dropped from output
	rankX *int
	rankY *int
}

// ShuffledPair is a GuidePair whose members have been assigned to physical
// slots 1 and 2 by a per-row coin flip
type ShuffledPair struct {
	Gene1  string
	Guide1 string
	Gene2  string
	Guide2 string
}

// Genes returns the unique genes of the design table in first-seen order
func Genes(records []GuideRecord) []string {
	seen := map[string]bool{}
	var genes []string
	for _, r := range records {
		if !seen[r.Gene] {
			seen[r.Gene] = true
			genes = append(genes, r.Gene)
		}
	}
	return genes
}
