package validate

import (
	"fmt"
	"sort"
)

// maxDomainValues caps how many distinct values a string domain may
// enumerate before inference gives up on pinning the column.
const maxDomainValues = 10000

// InferSchema derives per-column constraints from training statistics:
// the observed type, a presence requirement, and for string columns a
// closed domain over the observed values. Columns fully present in
// training are required to stay fully present.
func InferSchema(stats *Statistics) (*Schema, error) {
	if stats == nil || len(stats.Features) == 0 {
		return nil, fmt.Errorf("cannot infer schema from empty statistics")
	}

	schema := &Schema{}
	for i := range stats.Features {
		f := &stats.Features[i]
		spec := FeatureSpec{
			Name:      f.Name,
			Type:      f.Type,
			MinCount:  1,
			MinValues: 1,
			MaxValues: 1,
		}
		if c := f.common(); c != nil && c.NumMissing == 0 && c.NumNonMissing > 0 {
			spec.MinFraction = 1
		}
		if f.Type == TypeString && f.Str != nil {
			if vals, ok := domainValues(f.Str); ok {
				spec.Domain = f.Name
				schema.Domains = append(schema.Domains, Domain{Name: f.Name, Values: vals})
			}
		}
		schema.Features = append(schema.Features, spec)
	}
	return schema, nil
}

// domainValues returns the sorted distinct values when the rank
// histogram saw all of them; truncated histograms yield no domain.
func domainValues(s *StringStats) ([]string, bool) {
	if s.Unique == 0 || s.Unique > len(s.Rank) || s.Unique > maxDomainValues {
		return nil, false
	}
	vals := make([]string, 0, len(s.Rank))
	for _, b := range s.Rank {
		vals = append(vals, b.Label)
	}
	sort.Strings(vals)
	return vals, true
}
