package combibuild

import "math/rand"

// ShufflePairs assigns each pair's members to slots 1 and 2 by an
// independent per-row coin flip drawn from rng. The multiset of underlying
// pairs and the row count are unchanged; only slot assignment varies.
// The generator is explicit so runs are reproducible: the same seed and
// input ordering give bit-identical output
func ShufflePairs(pairs []GuidePair, rng *rand.Rand) []ShuffledPair {
	out := make([]ShuffledPair, 0, len(pairs))
	for _, p := range pairs {
		if rng.Intn(2) == 0 {
			out = append(out, ShuffledPair{
				Gene1:  p.GeneX,
				Guide1: p.GuideX,
				Gene2:  p.GeneY,
				Guide2: p.GuideY,
			})
		} else {
			out = append(out, ShuffledPair{
				Gene1:  p.GeneY,
				Guide1: p.GuideY,
				Gene2:  p.GeneX,
				Guide2: p.GuideX,
			})
		}
	}
	return out
}
