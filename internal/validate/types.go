// Package validate computes dataset statistics, infers a schema from
// them, and validates other statistics against that schema. The three
// artifact types serialize to protobuf text format via MarshalText.
package validate

// FeatureType classifies a column's value kind.
type FeatureType string

const (
	TypeInt    FeatureType = "INT"
	TypeFloat  FeatureType = "FLOAT"
	TypeString FeatureType = "STRING"
)

// Severity ranks how strongly an anomaly should be treated.
type Severity string

const (
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// ReasonType identifies the schema check an anomaly reason comes from.
type ReasonType string

const (
	ReasonEnumUnexpectedValues ReasonType = "ENUM_TYPE_UNEXPECTED_STRING_VALUES"
	ReasonTypeMismatch         ReasonType = "FEATURE_TYPE_MISMATCH"
	ReasonMissingValues        ReasonType = "FEATURE_MISSING_VALUES"
	ReasonColumnDropped        ReasonType = "SCHEMA_MISSING_COLUMN"
	ReasonNewColumn            ReasonType = "SCHEMA_NEW_COLUMN"
)

// Statistics summarizes one dataset partition, one entry per column.
type Statistics struct {
	Name        string
	NumExamples int
	Features    []FeatureStats
}

// FeatureStats carries either numeric or string statistics for one
// column, never both.
type FeatureStats struct {
	Name string
	Type FeatureType
	Num  *NumericStats
	Str  *StringStats
}

// CommonStats counts value presence across examples. Values per example
// are 0 or 1 for the flat columns handled here.
type CommonStats struct {
	NumNonMissing int
	NumMissing    int
	MinNumValues  int
	MaxNumValues  int
	AvgNumValues  float64
	TotNumValues  int
}

// NumericStats summarizes a float or integer column.
type NumericStats struct {
	Common     CommonStats
	Mean       float64
	StdDev     float64
	NumZeros   int
	Min        float64
	Median     float64
	Max        float64
	Histograms []Histogram
}

// HistogramType distinguishes equal-width from equal-weight histograms.
type HistogramType string

const (
	HistogramStandard  HistogramType = "STANDARD"
	HistogramQuantiles HistogramType = "QUANTILES"
)

// Histogram is a bucketed view of a numeric column.
type Histogram struct {
	Type    HistogramType
	Buckets []Bucket
}

// Bucket covers [Low, High] with Count samples. Counts are fractional
// in quantile histograms.
type Bucket struct {
	Low   float64
	High  float64
	Count float64
}

// StringStats summarizes a categorical column.
type StringStats struct {
	Common    CommonStats
	Unique    int
	TopValues []ValueCount
	AvgLength float64
	Rank      []RankBucket
}

// ValueCount is one distinct value and how often it occurs.
type ValueCount struct {
	Value string
	Count int
}

// RankBucket is one entry of the frequency-ranked value histogram.
type RankBucket struct {
	LowRank  int
	HighRank int
	Label    string
	Count    int
}

// Schema constrains each column's type, presence, and value domain.
type Schema struct {
	Features []FeatureSpec
	Domains  []Domain
}

// FeatureSpec is one column's constraints.
type FeatureSpec struct {
	Name        string
	Type        FeatureType
	Domain      string  // name of a Domain entry; empty for numeric columns
	MinFraction float64 // minimum fraction of examples carrying a value
	MinCount    int     // minimum number of examples carrying a value
	MinValues   int     // values per example, lower bound
	MaxValues   int     // values per example, upper bound
}

// Domain enumerates the values a string column may take, sorted.
type Domain struct {
	Name   string
	Values []string
}

// Anomalies is the outcome of validating statistics against a schema.
type Anomalies struct {
	Infos []AnomalyInfo // sorted by Key
}

// AnomalyInfo groups every violated check for one column.
type AnomalyInfo struct {
	Key              string
	Severity         Severity
	ShortDescription string
	Description      string
	Reasons          []Reason
}

// Reason is a single violated check.
type Reason struct {
	Type             ReasonType
	ShortDescription string
	Description      string
}

// Feature returns the stats for the named column, or nil.
func (s *Statistics) Feature(name string) *FeatureStats {
	for i := range s.Features {
		if s.Features[i].Name == name {
			return &s.Features[i]
		}
	}
	return nil
}

// common returns whichever common stats block the feature carries.
func (f *FeatureStats) common() *CommonStats {
	switch {
	case f.Num != nil:
		return &f.Num.Common
	case f.Str != nil:
		return &f.Str.Common
	}
	return nil
}

// Feature returns the spec for the named column, or nil.
func (s *Schema) Feature(name string) *FeatureSpec {
	for i := range s.Features {
		if s.Features[i].Name == name {
			return &s.Features[i]
		}
	}
	return nil
}

// Domain returns the named domain, or nil.
func (s *Schema) Domain(name string) *Domain {
	for i := range s.Domains {
		if s.Domains[i].Name == name {
			return &s.Domains[i]
		}
	}
	return nil
}

// Empty reports whether validation found nothing.
func (a *Anomalies) Empty() bool {
	return len(a.Infos) == 0
}
