package validate

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/go-cmp/cmp"
)

func TestInferSchema_FromTrainingStats(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{39, 50, 38}, series.Float, "age"),
		series.New([]float64{2174, math.NaN(), 0}, series.Float, "capital-gain"),
		series.New([]string{"Private", "Self-emp-not-inc", "Private"}, series.String, "workclass"),
	)
	stats, err := GenerateStatistics(df, "train")
	if err != nil {
		t.Fatalf("GenerateStatistics: %v", err)
	}

	schema, err := InferSchema(stats)
	if err != nil {
		t.Fatalf("InferSchema: %v", err)
	}

	age := schema.Feature("age")
	if age == nil {
		t.Fatal("age spec missing")
	}
	if age.Type != TypeInt {
		t.Errorf("age type = %v, want INT", age.Type)
	}
	if age.MinFraction != 1 || age.MinCount != 1 {
		t.Errorf("age presence = %+v, want full presence required", age)
	}
	if age.MinValues != 1 || age.MaxValues != 1 {
		t.Errorf("age value count = %d..%d, want 1..1", age.MinValues, age.MaxValues)
	}
	if age.Domain != "" {
		t.Errorf("numeric column got domain %q", age.Domain)
	}

	gain := schema.Feature("capital-gain")
	if gain.Type != TypeFloat {
		t.Errorf("capital-gain type = %v, want FLOAT", gain.Type)
	}
	if gain.MinFraction != 0 {
		t.Errorf("column with missing values should not require full presence, got %v", gain.MinFraction)
	}

	work := schema.Feature("workclass")
	if work.Domain != "workclass" {
		t.Fatalf("workclass domain ref = %q", work.Domain)
	}
	dom := schema.Domain("workclass")
	if dom == nil {
		t.Fatal("workclass domain missing")
	}
	if diff := cmp.Diff([]string{"Private", "Self-emp-not-inc"}, dom.Values); diff != "" {
		t.Errorf("domain values mismatch (-want +got):\n%s", diff)
	}
}

func TestInferSchema_SkipsTruncatedDomains(t *testing.T) {
	stats := &Statistics{
		Name:        "train",
		NumExamples: 10,
		Features: []FeatureStats{{
			Name: "wide",
			Type: TypeString,
			Str: &StringStats{
				Common: commonStats(10, 10),
				Unique: 5,
				Rank: []RankBucket{
					{LowRank: 0, HighRank: 0, Label: "u", Count: 4},
					{LowRank: 1, HighRank: 1, Label: "v", Count: 3},
					{LowRank: 2, HighRank: 2, Label: "w", Count: 3},
				},
			},
		}},
	}

	schema, err := InferSchema(stats)
	if err != nil {
		t.Fatalf("InferSchema: %v", err)
	}
	if got := schema.Feature("wide").Domain; got != "" {
		t.Errorf("truncated rank histogram still produced domain %q", got)
	}
	if len(schema.Domains) != 0 {
		t.Errorf("unexpected domains: %+v", schema.Domains)
	}
}

func TestInferSchema_EmptyStatistics(t *testing.T) {
	if _, err := InferSchema(nil); err == nil {
		t.Error("nil statistics should fail")
	}
	if _, err := InferSchema(&Statistics{Name: "t"}); err == nil {
		t.Error("statistics without features should fail")
	}
}
