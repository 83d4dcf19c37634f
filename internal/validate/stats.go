package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	maxTopValues     = 20
	maxRankBuckets   = 1000
	histogramBuckets = 10
)

// GenerateStatistics computes per-column summary statistics for one
// partition. Float and int columns get moments, quantiles and
// histograms; everything else is summarized as strings. Missing cells
// count toward num_missing and are excluded from all value statistics.
func GenerateStatistics(df dataframe.DataFrame, name string) (*Statistics, error) {
	if df.Error() != nil {
		return nil, fmt.Errorf("statistics input: %w", df.Error())
	}

	stats := &Statistics{Name: name, NumExamples: df.Nrow()}
	for _, colName := range df.Names() {
		col := df.Col(colName)
		if col.Err != nil {
			return nil, fmt.Errorf("column %s: %w", colName, col.Err)
		}
		switch col.Type() {
		case series.Float, series.Int:
			stats.Features = append(stats.Features, numericFeature(col))
		default:
			stats.Features = append(stats.Features, stringFeature(col))
		}
	}
	return stats, nil
}

func numericFeature(col series.Series) FeatureStats {
	n := col.Len()
	clean := make([]float64, 0, n)
	integral := true
	zeros := 0
	for i := 0; i < n; i++ {
		el := col.Elem(i)
		if el.IsNA() {
			continue
		}
		v := el.Float()
		if v != math.Trunc(v) {
			integral = false
		}
		if v == 0 {
			zeros++
		}
		clean = append(clean, v)
	}
	sort.Float64s(clean)

	fs := FeatureStats{Name: col.Name, Type: TypeFloat}
	// A column reads as INT only when every example has an integral
	// value; any missing cell forces the float representation.
	if integral && len(clean) == n && n > 0 {
		fs.Type = TypeInt
	}

	num := &NumericStats{
		Common:   commonStats(len(clean), n),
		NumZeros: zeros,
	}
	if len(clean) > 0 {
		num.Mean = stat.Mean(clean, nil)
		if len(clean) > 1 {
			num.StdDev = stat.StdDev(clean, nil)
		}
		num.Min = clean[0]
		num.Max = clean[len(clean)-1]
		num.Median = stat.Quantile(0.5, stat.LinInterp, clean, nil)
		num.Histograms = []Histogram{
			standardHistogram(clean),
			quantilesHistogram(clean),
		}
	}
	fs.Num = num
	return fs
}

func stringFeature(col series.Series) FeatureStats {
	n := col.Len()
	counts := make(map[string]int)
	nonMissing := 0
	totalLen := 0
	for i := 0; i < n; i++ {
		el := col.Elem(i)
		if el.IsNA() {
			continue
		}
		v := el.String()
		nonMissing++
		totalLen += len(v)
		counts[v]++
	}

	str := &StringStats{
		Common: commonStats(nonMissing, n),
		Unique: len(counts),
	}
	if nonMissing > 0 {
		str.AvgLength = float64(totalLen) / float64(nonMissing)
	}

	ranked := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, ValueCount{Value: v, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Value < ranked[j].Value
	})

	top := len(ranked)
	if top > maxTopValues {
		top = maxTopValues
	}
	str.TopValues = append([]ValueCount(nil), ranked[:top]...)

	rb := len(ranked)
	if rb > maxRankBuckets {
		rb = maxRankBuckets
	}
	for i := 0; i < rb; i++ {
		str.Rank = append(str.Rank, RankBucket{
			LowRank:  i,
			HighRank: i,
			Label:    ranked[i].Value,
			Count:    ranked[i].Count,
		})
	}

	return FeatureStats{Name: col.Name, Type: TypeString, Str: str}
}

func commonStats(nonMissing, n int) CommonStats {
	cs := CommonStats{
		NumNonMissing: nonMissing,
		NumMissing:    n - nonMissing,
		TotNumValues:  nonMissing,
	}
	if nonMissing > 0 {
		cs.MinNumValues = 1
		cs.MaxNumValues = 1
		cs.AvgNumValues = 1
	}
	return cs
}

// standardHistogram splits [min, max] into equal-width buckets. The
// input must be sorted and non-empty.
func standardHistogram(sorted []float64) Histogram {
	h := Histogram{Type: HistogramStandard}
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		h.Buckets = []Bucket{{Low: lo, High: hi, Count: float64(len(sorted))}}
		return h
	}

	dividers := make([]float64, histogramBuckets+1)
	floats.Span(dividers, lo, hi)
	counts := make([]float64, histogramBuckets)
	j := 0
	for _, v := range sorted {
		for j < histogramBuckets-1 && v >= dividers[j+1] {
			j++
		}
		counts[j]++
	}
	for i := 0; i < histogramBuckets; i++ {
		h.Buckets = append(h.Buckets, Bucket{Low: dividers[i], High: dividers[i+1], Count: counts[i]})
	}
	return h
}

// quantilesHistogram has equal-weight buckets bounded at quantiles. The
// input must be sorted and non-empty.
func quantilesHistogram(sorted []float64) Histogram {
	h := Histogram{Type: HistogramQuantiles}
	weight := float64(len(sorted)) / histogramBuckets
	for i := 0; i < histogramBuckets; i++ {
		h.Buckets = append(h.Buckets, Bucket{
			Low:   stat.Quantile(float64(i)/histogramBuckets, stat.LinInterp, sorted, nil),
			High:  stat.Quantile(float64(i+1)/histogramBuckets, stat.LinInterp, sorted, nil),
			Count: weight,
		})
	}
	return h
}
