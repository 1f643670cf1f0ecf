/*
Package crossval measures how well trees grown with the id3 package
generalize, through k-fold cross-validation: the dataset is split into k
folds and, for each of them, a tree grown on the other records is tested
against the records in the fold.
*/
package crossval

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
	"golang.org/x/sync/errgroup"
)

// DefaultFolds is the number of folds used when Config has none
const DefaultFolds = 10

// Error represents an error related with cross-validation
type Error string

// ErrTooFewRecords is returned when the dataset cannot fill one record per fold
const ErrTooFewRecords = Error("dataset has fewer records than folds")

func (e Error) Error() string {
	return string(e)
}

/*
Config holds the parameters of a cross-validation.

Folds is the number of folds (DefaultFolds if not positive). When Shuffle is
true the records are shuffled with a source seeded with Seed before being
split. Workers limits the number of folds evaluated concurrently (no limit
if not positive). Grower is used to grow the trees (the zero Grower if nil).
*/
type Config struct {
	Folds   int
	Shuffle bool
	Seed    int64
	Workers int
	Grower  *id3.Grower
}

// FoldResult holds the outcome of testing the tree grown for a fold
type FoldResult struct {
	Fold     int
	Training int
	Testing  int
	// Accuracy is the percentage of testing records correctly classified
	Accuracy float64
	// Unknown is the number of testing records whose classification is
	// unknown, counted as incorrect for the accuracy
	Unknown int
	Depth   int
}

// Report holds the results for every fold and their mean accuracy
type Report struct {
	Folds        []FoldResult
	MeanAccuracy float64
}

/*
Fold takes the number of records of a dataset, the number of folds and the
index of a fold and returns the range [from, to) of record positions that
belong to the fold. All folds have the same size: the records left after
filling them are never tested and always used for training.
*/
func Fold(count, folds, fold int) (int, int) {
	size := count / folds
	return fold * size, (fold + 1) * size
}

/*
Run takes a context, a dataset, the candidate attributes and a Config and
cross-validates the trees grown on the dataset with those attributes,
returning a report or an error. Each fold grows its tree on its own copy of
the candidate attributes.
*/
func Run(ctx context.Context, d *dataset.Dataset, attributes []int, cfg Config) (*Report, error) {
	folds := cfg.Folds
	if folds <= 0 {
		folds = DefaultFolds
	}
	if d.Count() < folds {
		return nil, fmt.Errorf("%d-fold cross-validation over %d records: %w", folds, d.Count(), ErrTooFewRecords)
	}
	grower := cfg.Grower
	if grower == nil {
		grower = &id3.Grower{}
	}
	if cfg.Shuffle {
		var err error
		d, err = d.Permute(rand.New(rand.NewSource(cfg.Seed)).Perm(d.Count()))
		if err != nil {
			return nil, err
		}
	}
	results := make([]FoldResult, folds)
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i := 0; i < folds; i++ {
		i := i
		g.Go(func() error {
			from, to := Fold(d.Count(), folds, i)
			testingSet, trainingSet := d.Partition(from, to)
			n, err := grower.Build(gctx, trainingSet, append([]int(nil), attributes...))
			if err != nil {
				return fmt.Errorf("growing tree for fold %d: %w", i, err)
			}
			rate, unknown := tree.Test(n, testingSet)
			results[i] = FoldResult{
				Fold:     i,
				Training: trainingSet.Count(),
				Testing:  testingSet.Count(),
				Accuracy: rate * 100,
				Unknown:  unknown,
				Depth:    tree.Depth(n),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var sum float64
	for _, r := range results {
		sum += r.Accuracy
	}
	return &Report{results, sum / float64(folds)}, nil
}
