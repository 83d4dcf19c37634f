package validate

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/go-cmp/cmp"
)

func approx(got, want float64) bool {
	return math.Abs(got-want) <= 1e-9
}

func TestGenerateStatistics_NumericColumn(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, 3, 4, math.NaN()}, series.Float, "x"),
	)

	stats, err := GenerateStatistics(df, "train")
	if err != nil {
		t.Fatalf("GenerateStatistics: %v", err)
	}
	if stats.Name != "train" || stats.NumExamples != 5 {
		t.Errorf("dataset header = %q/%d, want train/5", stats.Name, stats.NumExamples)
	}

	f := stats.Feature("x")
	if f == nil {
		t.Fatal("feature x not found")
	}
	if f.Type != TypeFloat {
		t.Errorf("type = %v, want FLOAT when a value is missing", f.Type)
	}
	if f.Num == nil {
		t.Fatal("numeric stats missing")
	}

	c := f.Num.Common
	if c.NumNonMissing != 4 || c.NumMissing != 1 || c.TotNumValues != 4 {
		t.Errorf("common stats = %+v", c)
	}
	if c.MinNumValues != 1 || c.MaxNumValues != 1 || c.AvgNumValues != 1 {
		t.Errorf("value counts per example = %+v, want 1/1/1", c)
	}

	if !approx(f.Num.Mean, 2.5) {
		t.Errorf("mean = %v, want 2.5", f.Num.Mean)
	}
	if !approx(f.Num.StdDev, 1.2909944487358056) {
		t.Errorf("std dev = %v", f.Num.StdDev)
	}
	if f.Num.Min != 1 || f.Num.Max != 4 {
		t.Errorf("min/max = %v/%v, want 1/4", f.Num.Min, f.Num.Max)
	}
	if !approx(f.Num.Median, 2.5) {
		t.Errorf("median = %v, want 2.5", f.Num.Median)
	}

	if len(f.Num.Histograms) != 2 {
		t.Fatalf("got %d histograms, want 2", len(f.Num.Histograms))
	}
	std, qnt := f.Num.Histograms[0], f.Num.Histograms[1]
	if std.Type != HistogramStandard || qnt.Type != HistogramQuantiles {
		t.Errorf("histogram types = %v/%v", std.Type, qnt.Type)
	}
	var total float64
	for _, b := range std.Buckets {
		total += b.Count
	}
	if !approx(total, 4) {
		t.Errorf("standard histogram counts sum to %v, want 4", total)
	}
	if len(qnt.Buckets) != histogramBuckets {
		t.Fatalf("got %d quantile buckets", len(qnt.Buckets))
	}
	if !approx(qnt.Buckets[0].Low, 1) || !approx(qnt.Buckets[histogramBuckets-1].High, 4) {
		t.Errorf("quantile bounds = %v..%v, want 1..4",
			qnt.Buckets[0].Low, qnt.Buckets[histogramBuckets-1].High)
	}
}

func TestGenerateStatistics_IntDetection(t *testing.T) {
	cases := []struct {
		name string
		vals []float64
		want FeatureType
	}{
		{"all integral", []float64{1, 2, 3}, TypeInt},
		{"fractional value", []float64{1, 2.5, 3}, TypeFloat},
		{"missing value", []float64{1, math.NaN(), 3}, TypeFloat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			df := dataframe.New(series.New(tc.vals, series.Float, "n"))
			stats, err := GenerateStatistics(df, "t")
			if err != nil {
				t.Fatalf("GenerateStatistics: %v", err)
			}
			if got := stats.Feature("n").Type; got != tc.want {
				t.Errorf("type = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGenerateStatistics_ZerosAndMedian(t *testing.T) {
	df := dataframe.New(series.New([]float64{0, 0, 5}, series.Float, "gain"))
	stats, err := GenerateStatistics(df, "t")
	if err != nil {
		t.Fatalf("GenerateStatistics: %v", err)
	}
	f := stats.Feature("gain")
	if f.Num.NumZeros != 2 {
		t.Errorf("zeros = %d, want 2", f.Num.NumZeros)
	}
	if !approx(f.Num.Median, 0) {
		t.Errorf("median = %v, want 0", f.Num.Median)
	}
}

func TestGenerateStatistics_StringColumn(t *testing.T) {
	// "NaN" is the string series missing marker.
	df := dataframe.New(
		series.New([]string{"a", "b", "a", "NaN", "c", "a"}, series.String, "cat"),
	)

	stats, err := GenerateStatistics(df, "eval")
	if err != nil {
		t.Fatalf("GenerateStatistics: %v", err)
	}
	f := stats.Feature("cat")
	if f.Type != TypeString || f.Str == nil {
		t.Fatalf("feature = %+v, want string stats", f)
	}

	c := f.Str.Common
	if c.NumNonMissing != 5 || c.NumMissing != 1 {
		t.Errorf("common stats = %+v", c)
	}
	if f.Str.Unique != 3 {
		t.Errorf("unique = %d, want 3", f.Str.Unique)
	}
	if !approx(f.Str.AvgLength, 1) {
		t.Errorf("avg length = %v, want 1", f.Str.AvgLength)
	}

	wantTop := []ValueCount{{"a", 3}, {"b", 1}, {"c", 1}}
	if diff := cmp.Diff(wantTop, f.Str.TopValues); diff != "" {
		t.Errorf("top values mismatch (-want +got):\n%s", diff)
	}
	wantRank := []RankBucket{
		{LowRank: 0, HighRank: 0, Label: "a", Count: 3},
		{LowRank: 1, HighRank: 1, Label: "b", Count: 1},
		{LowRank: 2, HighRank: 2, Label: "c", Count: 1},
	}
	if diff := cmp.Diff(wantRank, f.Str.Rank); diff != "" {
		t.Errorf("rank histogram mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateStatistics_AllMissingColumn(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{math.NaN(), math.NaN()}, series.Float, "empty"),
	)
	stats, err := GenerateStatistics(df, "t")
	if err != nil {
		t.Fatalf("GenerateStatistics: %v", err)
	}
	f := stats.Feature("empty")
	if f.Num.Common.NumNonMissing != 0 || f.Num.Common.NumMissing != 2 {
		t.Errorf("common stats = %+v", f.Num.Common)
	}
	if len(f.Num.Histograms) != 0 {
		t.Error("fully missing column should carry no histograms")
	}
	if f.Num.Mean != 0 || f.Num.StdDev != 0 {
		t.Errorf("moments should stay zero, got mean=%v std=%v", f.Num.Mean, f.Num.StdDev)
	}
}
