package combibuild

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Options configures a full design run
type Options struct {
	// Pairs selects the gene pairing strategies. AllGenes is filled from
	// the design table by Design
	Pairs PairOptions

	// Policy filters the guide cross-join, PolicyAll when empty
	Policy Policy

	// Shuffle randomizes slot assignment of the finished library
	Shuffle bool

	// Seed for the shuffle's random generator
	Seed int64

	// Workers parallelizes the cross-join over gene pairs when > 1
	Workers int
}

// Design runs the whole pipeline over an in-memory design table:
// gene pairing, guide-pair expansion under the pairing policy, and the
// optional slot shuffle. It either fully succeeds or returns no library
func Design(records []GuideRecord, opts Options) (*Library, error) {
	start := time.Now()

	if opts.Policy == "" {
		opts.Policy = PolicyAll
	}
	opts.Pairs.AllGenes = Genes(records)

	genePairs, err := GeneratePairs(opts.Pairs)
	if err != nil {
		return nil, err
	}
	guidePairs, err := BuildGuidePairsParallel(genePairs, records, opts.Policy, opts.Workers)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		ID:         uuid.NewString(),
		Time:       start.Format("2006-01-02 15:04:05"),
		Genes:      len(opts.Pairs.AllGenes),
		GenePairs:  len(genePairs),
		GuidePairs: len(guidePairs),
		Pairs:      guidePairs,
	}
	if opts.Shuffle {
		rng := rand.New(rand.NewSource(opts.Seed))
		lib.Shuffles = ShufflePairs(guidePairs, rng)
		lib.Shuffled = true
		lib.Seed = opts.Seed
	}
	lib.Execution = time.Since(start).Seconds()

	return lib, nil
}
