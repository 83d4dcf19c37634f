package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gota/gota/dataframe"
)

// Split partitions df into train and eval frames. Eval receives
// round(evalFraction*n) rows drawn without replacement by a PRNG seeded
// with seed, in draw order; train keeps the remaining rows in their
// original file order. Equal inputs always yield the identical split.
func Split(df dataframe.DataFrame, evalFraction float64, seed int64) (dataframe.DataFrame, dataframe.DataFrame, error) {
	var train, eval dataframe.DataFrame
	if df.Error() != nil {
		return train, eval, fmt.Errorf("split input: %w", df.Error())
	}
	if math.IsNaN(evalFraction) || evalFraction < 0 || evalFraction > 1 {
		return train, eval, fmt.Errorf("eval fraction %v out of range [0, 1]", evalFraction)
	}

	n := df.Nrow()
	k := int(math.Round(evalFraction * float64(n)))

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	evalIdx := make([]int, k)
	copy(evalIdx, perm[:k])
	inEval := make([]bool, n)
	for _, i := range evalIdx {
		inEval[i] = true
	}
	trainIdx := make([]int, 0, n-k)
	for i := 0; i < n; i++ {
		if !inEval[i] {
			trainIdx = append(trainIdx, i)
		}
	}

	eval = df.Subset(evalIdx)
	if eval.Error() != nil {
		return train, eval, fmt.Errorf("take eval rows: %w", eval.Error())
	}
	train = df.Subset(trainIdx)
	if train.Error() != nil {
		return train, eval, fmt.Errorf("take train rows: %w", train.Error())
	}
	return train, eval, nil
}
