package combibuild

import "fmt"

// PairOptions selects which pairing strategies contribute gene pairs.
// Strategies are orthogonal and their outputs are unioned
type PairOptions struct {
	// AllGenes is every gene in the design table, in table order
	AllGenes []string

	// AllByAll pairs every gene in AllGenes with every other gene
	AllByAll bool

	// SelfPairs additionally pairs each gene with itself during
	// all-by-all generation (single-perturbation controls)
	SelfPairs bool

	// RowGenes and ColGenes are crossed against one another,
	// column gene in the x slot, row gene in the y slot
	RowGenes []string
	ColGenes []string

	// RefGenes are crossed against every non-reference gene in AllGenes,
	// query gene in the x slot, reference gene in the y slot
	RefGenes []string

	// ExplicitPairs are taken verbatim
	ExplicitPairs []GenePair

	// DualOrientation also emits the (y, x) orientation of every
	// generated pair
	DualOrientation bool
}

// requested is whether any pairing strategy was asked for
func (opts PairOptions) requested() bool {
	return opts.AllByAll ||
		len(opts.RowGenes) > 0 ||
		len(opts.ColGenes) > 0 ||
		len(opts.RefGenes) > 0 ||
		len(opts.ExplicitPairs) > 0
}

// GeneratePairs builds the deduplicated union of every requested strategy's
// gene pairs. Order is deterministic: strategies contribute in a fixed order
// (all-by-all, row x column, reference, explicit) and each pair keeps its
// first-generated position
func GeneratePairs(opts PairOptions) ([]GenePair, error) {
	if !opts.requested() {
		return nil, fmt.Errorf("%w: no pairing strategy selected", ErrConfig)
	}
	if (len(opts.RowGenes) > 0) != (len(opts.ColGenes) > 0) {
		return nil, fmt.Errorf("%w: row and column genes must be supplied together", ErrConfig)
	}

	seen := map[GenePair]bool{}
	var pairs []GenePair
	add := func(p GenePair) {
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}

	if opts.AllByAll {
		for i, a := range opts.AllGenes {
			if opts.SelfPairs {
				add(GenePair{GeneX: a, GeneY: a})
			}
			for _, b := range opts.AllGenes[i+1:] {
				add(GenePair{GeneX: a, GeneY: b})
			}
		}
	}

	for _, row := range opts.RowGenes {
		for _, col := range opts.ColGenes {
			add(GenePair{GeneX: col, GeneY: row})
		}
	}

	if len(opts.RefGenes) > 0 {
		refs := map[string]bool{}
		for _, r := range opts.RefGenes {
			refs[r] = true
		}
		for _, q := range opts.AllGenes {
			if refs[q] {
				continue
			}
			for _, r := range opts.RefGenes {
				add(GenePair{GeneX: q, GeneY: r})
			}
		}
	}

	for _, p := range opts.ExplicitPairs {
		add(p)
	}

	if opts.DualOrientation {
		// range over a snapshot, add mutates pairs
		merged := pairs
		for _, p := range merged {
			add(GenePair{GeneX: p.GeneY, GeneY: p.GeneX})
		}
	}

	return pairs, nil
}
