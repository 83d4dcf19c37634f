package validate

import (
	"fmt"
	"sort"
	"strings"
)

// maxListedValues caps how many out-of-domain values one reason names.
const maxListedValues = 10

// ValidateStatistics checks statistics against a schema and reports
// every violated constraint, grouped by column and sorted by column
// name. A nil-anomaly outcome is represented by an empty Anomalies.
func ValidateStatistics(stats *Statistics, schema *Schema) (*Anomalies, error) {
	if stats == nil {
		return nil, fmt.Errorf("validate: nil statistics")
	}
	if schema == nil {
		return nil, fmt.Errorf("validate: nil schema")
	}

	anoms := &Anomalies{}
	for i := range schema.Features {
		spec := &schema.Features[i]
		if reasons := checkFeature(stats, spec, schema); len(reasons) > 0 {
			anoms.Infos = append(anoms.Infos, newInfo(spec.Name, reasons))
		}
	}

	for i := range stats.Features {
		f := &stats.Features[i]
		if schema.Feature(f.Name) != nil {
			continue
		}
		anoms.Infos = append(anoms.Infos, newInfo(f.Name, []Reason{{
			Type:             ReasonNewColumn,
			ShortDescription: "New column",
			Description:      fmt.Sprintf("New column %s found in data but not in the schema", f.Name),
		}}))
	}

	sort.Slice(anoms.Infos, func(i, j int) bool { return anoms.Infos[i].Key < anoms.Infos[j].Key })
	return anoms, nil
}

func checkFeature(stats *Statistics, spec *FeatureSpec, schema *Schema) []Reason {
	f := stats.Feature(spec.Name)
	if f == nil {
		return []Reason{{
			Type:             ReasonColumnDropped,
			ShortDescription: "Column dropped",
			Description:      "Column is completely missing",
		}}
	}

	common := f.common()
	if common != nil && common.NumNonMissing == 0 && stats.NumExamples > 0 {
		return []Reason{{
			Type:             ReasonColumnDropped,
			ShortDescription: "Column dropped",
			Description:      "The feature was present in no examples",
		}}
	}

	var reasons []Reason

	if f.Type != spec.Type {
		reasons = append(reasons, Reason{
			Type:             ReasonTypeMismatch,
			ShortDescription: "Wrong feature type",
			Description:      fmt.Sprintf("Expected data of type %s but got %s", spec.Type, f.Type),
		})
	}

	if spec.MinFraction > 0 && common != nil && stats.NumExamples > 0 {
		fraction := float64(common.NumNonMissing) / float64(stats.NumExamples)
		if fraction < spec.MinFraction {
			reasons = append(reasons, Reason{
				Type:             ReasonMissingValues,
				ShortDescription: "Missing values",
				Description: fmt.Sprintf(
					"The feature was present in fewer examples than expected: minimum fraction = %f, actual = %f",
					spec.MinFraction, fraction),
			})
		}
	}

	if spec.Domain != "" && f.Str != nil {
		if dom := schema.Domain(spec.Domain); dom != nil {
			if r, ok := checkDomain(f.Str, dom); ok {
				reasons = append(reasons, r)
			}
		}
	}

	return reasons
}

// checkDomain reports rank-histogram values outside the schema domain,
// with their share of non-missing examples.
func checkDomain(s *StringStats, dom *Domain) (Reason, bool) {
	allowed := make(map[string]struct{}, len(dom.Values))
	for _, v := range dom.Values {
		allowed[v] = struct{}{}
	}

	var offending []string
	for _, b := range s.Rank {
		if _, ok := allowed[b.Label]; ok {
			continue
		}
		share := 0.0
		if s.Common.NumNonMissing > 0 {
			share = 100 * float64(b.Count) / float64(s.Common.NumNonMissing)
		}
		offending = append(offending, fmt.Sprintf("%s (~%.2f%%)", b.Label, share))
	}
	if len(offending) == 0 {
		return Reason{}, false
	}
	if len(offending) > maxListedValues {
		offending = append(offending[:maxListedValues], "...")
	}
	return Reason{
		Type:             ReasonEnumUnexpectedValues,
		ShortDescription: "Unexpected string values",
		Description:      fmt.Sprintf("Examples contain values missing from the schema: %s", strings.Join(offending, ", ")),
	}, true
}

func newInfo(key string, reasons []Reason) AnomalyInfo {
	info := AnomalyInfo{
		Key:              key,
		Severity:         SeverityError,
		ShortDescription: reasons[0].ShortDescription,
		Reasons:          reasons,
	}
	if len(reasons) > 1 {
		info.ShortDescription = "Multiple errors"
	}
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = r.Description
	}
	info.Description = strings.Join(parts, " ")
	return info
}
