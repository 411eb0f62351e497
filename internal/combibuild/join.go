package combibuild

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Policy decides which guide combinations survive the cross-join
type Policy string

const (
	// PolicyAll keeps every guide combination
	PolicyAll Policy = "all"

	// PolicyRank keeps combinations whose guides have equal rank, or where
	// exactly one side is a no-guide placeholder
	PolicyRank Policy = "rank"
)

// guideIndex maps gene -> its guide records, in table order
type guideIndex map[string][]GuideRecord

// noGuide stands in for a gene with no design-table entry so the gene
// pair is still represented rather than dropped
var noGuide = []GuideRecord{{}}

func (idx guideIndex) guidesFor(gene string) []GuideRecord {
	if gs := idx[gene]; len(gs) > 0 {
		return gs
	}
	return noGuide
}

func buildGuideIndex(records []GuideRecord) (guideIndex, error) {
	idx := guideIndex{}
	for i, r := range records {
		if r.Gene == "" {
			return nil, fmt.Errorf("%w: design table row %d has an empty gene", ErrData, i+1)
		}
		if r.Guide == "" {
			return nil, fmt.Errorf("%w: design table row %d has an empty guide", ErrData, i+1)
		}
		idx[r.Gene] = append(idx[r.Gene], r)
	}
	return idx, nil
}

// ranksMatch is the rank policy predicate: equal present ranks pass, and a
// present rank may pair with a missing one, but two missing ranks do not pass
func ranksMatch(x, y *int) bool {
	if x != nil && y != nil {
		return *x == *y
	}
	return x != nil || y != nil
}

// selfDuplicate reports whether a combination is an uninformative duplicate:
// the same guide on both sides with both ranks present. A no-guide
// placeholder never has a rank, so join misses are always kept
func selfDuplicate(x, y GuideRecord) bool {
	return x.Guide == y.Guide && x.Rank != nil && y.Rank != nil
}

// expandPair cross-joins the guides of a single gene pair and applies the
// policy filter and the self-duplicate exclusion
func expandPair(gp GenePair, idx guideIndex, policy Policy) []GuidePair {
	var rows []GuidePair
	for _, gx := range idx.guidesFor(gp.GeneX) {
		for _, gy := range idx.guidesFor(gp.GeneY) {
			if policy == PolicyRank && !ranksMatch(gx.Rank, gy.Rank) {
				continue
			}
			if selfDuplicate(gx, gy) {
				continue
			}
			rows = append(rows, GuidePair{
				GeneX:  gp.GeneX,
				GeneY:  gp.GeneY,
				GuideX: gx.Guide,
				GuideY: gy.Guide,
				rankX:  gx.Rank,
				rankY:  gy.Rank,
			})
		}
	}
	return rows
}

func validatePolicy(policy Policy) error {
	switch policy {
	case PolicyAll, PolicyRank:
		return nil
	}
	return fmt.Errorf("%w: unknown guide pairing policy %q", ErrConfig, policy)
}

// BuildGuidePairs expands every gene pair into its policy-filtered guide
// pairs, preserving gene-pair order
func BuildGuidePairs(pairs []GenePair, records []GuideRecord, policy Policy) ([]GuidePair, error) {
	if err := validatePolicy(policy); err != nil {
		return nil, err
	}
	idx, err := buildGuideIndex(records)
	if err != nil {
		return nil, err
	}

	var out []GuidePair
	for _, gp := range pairs {
		out = append(out, expandPair(gp, idx, policy)...)
	}
	return out, nil
}

// BuildGuidePairsParallel is BuildGuidePairs with the per-pair expansion
// fanned out over workers goroutines. Each gene pair expands independently
// and results are assembled in gene-pair order, so output is identical to
// the sequential build
func BuildGuidePairsParallel(pairs []GenePair, records []GuideRecord, policy Policy, workers int) ([]GuidePair, error) {
	if workers < 2 {
		return BuildGuidePairs(pairs, records, policy)
	}
	if err := validatePolicy(policy); err != nil {
		return nil, err
	}
	idx, err := buildGuideIndex(records)
	if err != nil {
		return nil, err
	}

	expanded := make([][]GuidePair, len(pairs))
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(pairs); i += workers {
				expanded[i] = expandPair(pairs[i], idx, policy)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []GuidePair
	for _, rows := range expanded {
		out = append(out, rows...)
	}
	return out, nil
}
