package validate

import "datavet/internal/textpb"

// MarshalText renders the statistics as a protobuf text document with a
// single datasets block.
func (s *Statistics) MarshalText() ([]byte, error) {
	var e textpb.Encoder
	e.Begin("datasets")
	e.Str("name", s.Name)
	e.Int("num_examples", s.NumExamples)
	for i := range s.Features {
		encodeFeatureStats(&e, &s.Features[i])
	}
	e.End()
	return e.Bytes(), nil
}

func encodeFeatureStats(e *textpb.Encoder, f *FeatureStats) {
	e.Begin("features")
	e.Str("name", f.Name)
	e.Enum("type", string(f.Type))
	switch {
	case f.Num != nil:
		e.Begin("num_stats")
		encodeCommon(e, &f.Num.Common)
		e.Float("mean", f.Num.Mean)
		e.Float("std_dev", f.Num.StdDev)
		e.Int("num_zeros", f.Num.NumZeros)
		e.Float("min", f.Num.Min)
		e.Float("median", f.Num.Median)
		e.Float("max", f.Num.Max)
		for _, h := range f.Num.Histograms {
			e.Begin("histograms")
			for _, b := range h.Buckets {
				e.Begin("buckets")
				e.Float("low_value", b.Low)
				e.Float("high_value", b.High)
				e.Float("sample_count", b.Count)
				e.End()
			}
			e.Enum("type", string(h.Type))
			e.End()
		}
		e.End()
	case f.Str != nil:
		e.Begin("string_stats")
		encodeCommon(e, &f.Str.Common)
		e.Int("unique", f.Str.Unique)
		for _, tv := range f.Str.TopValues {
			e.Begin("top_values")
			e.Str("value", tv.Value)
			e.Float("frequency", float64(tv.Count))
			e.End()
		}
		e.Float("avg_length", f.Str.AvgLength)
		if len(f.Str.Rank) > 0 {
			e.Begin("rank_histogram")
			for _, b := range f.Str.Rank {
				e.Begin("buckets")
				e.Int("low_rank", b.LowRank)
				e.Int("high_rank", b.HighRank)
				e.Str("label", b.Label)
				e.Float("sample_count", float64(b.Count))
				e.End()
			}
			e.End()
		}
		e.End()
	}
	e.End()
}

func encodeCommon(e *textpb.Encoder, c *CommonStats) {
	e.Begin("common_stats")
	e.Int("num_non_missing", c.NumNonMissing)
	e.Int("num_missing", c.NumMissing)
	e.Int("min_num_values", c.MinNumValues)
	e.Int("max_num_values", c.MaxNumValues)
	e.Float("avg_num_values", c.AvgNumValues)
	e.Int("tot_num_values", c.TotNumValues)
	e.End()
}

// MarshalText renders the schema as a protobuf text document: one
// feature block per column followed by the string domains.
func (s *Schema) MarshalText() ([]byte, error) {
	var e textpb.Encoder
	for i := range s.Features {
		f := &s.Features[i]
		e.Begin("feature")
		e.Str("name", f.Name)
		e.Enum("type", string(f.Type))
		if f.Domain != "" {
			e.Str("domain", f.Domain)
		}
		e.Begin("presence")
		if f.MinFraction > 0 {
			e.Float("min_fraction", f.MinFraction)
		}
		e.Int("min_count", f.MinCount)
		e.End()
		e.Begin("value_count")
		e.Int("min", f.MinValues)
		e.Int("max", f.MaxValues)
		e.End()
		e.End()
	}
	for _, d := range s.Domains {
		e.Begin("string_domain")
		e.Str("name", d.Name)
		for _, v := range d.Values {
			e.Str("value", v)
		}
		e.End()
	}
	return e.Bytes(), nil
}

// MarshalText renders the anomaly report as a protobuf text document.
// An empty report still carries the name format marker so the file
// parses.
func (a *Anomalies) MarshalText() ([]byte, error) {
	var e textpb.Encoder
	for _, info := range a.Infos {
		e.Begin("anomaly_info")
		e.Str("key", info.Key)
		e.Enum("severity", string(info.Severity))
		e.Str("short_description", info.ShortDescription)
		e.Str("description", info.Description)
		for _, r := range info.Reasons {
			e.Begin("reason")
			e.Enum("type", string(r.Type))
			e.Str("short_description", r.ShortDescription)
			e.Str("description", r.Description)
			e.End()
		}
		e.End()
	}
	e.Enum("anomaly_name_format", "SERIALIZED_PATH")
	return e.Bytes(), nil
}
