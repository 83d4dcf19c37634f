// Package report renders an HTML overview comparing the statistics of
// two dataset partitions side by side.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"

	"datavet/internal/validate"
)

//go:embed overview.html.tmpl
var overviewTmpl string

var tmpl = template.Must(template.New("overview").Parse(overviewTmpl))

// topValuesShown caps the per-column value list in the categorical table.
const topValuesShown = 5

type overviewData struct {
	LHSName     string
	RHSName     string
	LHSExamples int
	RHSExamples int
	Numeric     []numericRow
	Strings     []stringRow
}

type numericRow struct {
	Name string
	L, R numericSide
}

type numericSide struct {
	Present bool
	Count   int
	Missing string
	Mean    string
	Std     string
	Min     string
	Median  string
	Max     string
	Zeros   int
}

type stringRow struct {
	Name string
	L, R stringSide
}

type stringSide struct {
	Present bool
	Count   int
	Missing string
	Unique  int
	Tops    []topValue
	More    int
}

// topValue is one bar in the categorical table: a labeled share of the
// column's non-missing values.
type topValue struct {
	Label string
	Pct   float64
}

// Overview renders the comparison page for two statistics artifacts.
// Features are listed in lhs order; features only rhs carries follow.
func Overview(lhs, rhs *validate.Statistics, lhsName, rhsName string) ([]byte, error) {
	if lhs == nil || rhs == nil {
		return nil, fmt.Errorf("overview requires statistics for both partitions")
	}

	data := overviewData{
		LHSName:     lhsName,
		RHSName:     rhsName,
		LHSExamples: lhs.NumExamples,
		RHSExamples: rhs.NumExamples,
	}

	seen := make(map[string]bool)
	addRow := func(f *validate.FeatureStats, l, r *validate.FeatureStats) {
		if f.Num != nil {
			data.Numeric = append(data.Numeric, numericRow{Name: f.Name, L: numSide(l), R: numSide(r)})
		} else {
			data.Strings = append(data.Strings, stringRow{Name: f.Name, L: strSide(l), R: strSide(r)})
		}
	}
	for i := range lhs.Features {
		f := &lhs.Features[i]
		seen[f.Name] = true
		addRow(f, f, rhs.Feature(f.Name))
	}
	for i := range rhs.Features {
		f := &rhs.Features[i]
		if seen[f.Name] {
			continue
		}
		addRow(f, nil, f)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render overview: %w", err)
	}
	return buf.Bytes(), nil
}

func numSide(f *validate.FeatureStats) numericSide {
	if f == nil || f.Num == nil {
		return numericSide{}
	}
	c := f.Num.Common
	return numericSide{
		Present: true,
		Count:   c.NumNonMissing,
		Missing: missingCell(c),
		Mean:    fmtNum(f.Num.Mean),
		Std:     fmtNum(f.Num.StdDev),
		Min:     fmtNum(f.Num.Min),
		Median:  fmtNum(f.Num.Median),
		Max:     fmtNum(f.Num.Max),
		Zeros:   f.Num.NumZeros,
	}
}

func strSide(f *validate.FeatureStats) stringSide {
	if f == nil || f.Str == nil {
		return stringSide{}
	}
	c := f.Str.Common
	s := stringSide{
		Present: true,
		Count:   c.NumNonMissing,
		Missing: missingCell(c),
		Unique:  f.Str.Unique,
	}
	for i, tv := range f.Str.TopValues {
		if i == topValuesShown {
			s.More = len(f.Str.TopValues) - topValuesShown
			break
		}
		var pct float64
		if c.NumNonMissing > 0 {
			pct = 100 * float64(tv.Count) / float64(c.NumNonMissing)
		}
		s.Tops = append(s.Tops, topValue{
			Label: fmt.Sprintf("%s (%d)", tv.Value, tv.Count),
			Pct:   pct,
		})
	}
	return s
}

func missingCell(c validate.CommonStats) string {
	total := c.NumNonMissing + c.NumMissing
	if total == 0 || c.NumMissing == 0 {
		return strconv.Itoa(c.NumMissing)
	}
	return fmt.Sprintf("%d (%.1f%%)", c.NumMissing, 100*float64(c.NumMissing)/float64(total))
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
