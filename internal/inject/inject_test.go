package inject

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"datavet/internal/dataset"
)

func cleanFrame(t *testing.T, n int) (frame [][]string) {
	t.Helper()
	for i := 0; i < n; i++ {
		frame = append(frame, []string{
			fmt.Sprint(25 + i), "Private", fmt.Sprint(100000 + i), "HS-grad", "9",
			"Never-married", "Sales", "Husband", "White", "Male",
			"0", "0", "40", "United-States", "<=50K",
		})
	}
	return frame
}

func TestExtraRows_AppendsFixedRows(t *testing.T) {
	eval, err := dataset.FromRecords(cleanFrame(t, 5))
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	got, err := ExtraRows(eval)
	if err != nil {
		t.Fatalf("ExtraRows: %v", err)
	}

	if got.Nrow() != 5+RowCount() {
		t.Fatalf("got %d rows, want %d", got.Nrow(), 5+RowCount())
	}
	if eval.Nrow() != 5 {
		t.Error("input frame row count changed")
	}

	// Existing rows stay in place and unchanged.
	if diff := cmp.Diff(eval.Records()[1:], got.Records()[1:6]); diff != "" {
		t.Errorf("original eval rows changed (-want +got):\n%s", diff)
	}
}

func TestExtraRows_Deterministic(t *testing.T) {
	eval, err := dataset.FromRecords(cleanFrame(t, 3))
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	a, err := ExtraRows(eval)
	if err != nil {
		t.Fatalf("ExtraRows: %v", err)
	}
	b, err := ExtraRows(eval)
	if err != nil {
		t.Fatalf("ExtraRows: %v", err)
	}
	if diff := cmp.Diff(a.Records(), b.Records()); diff != "" {
		t.Errorf("injection is not deterministic (-a +b):\n%s", diff)
	}
}

func TestExtraRows_CarriesExpectedViolations(t *testing.T) {
	eval, err := dataset.FromRecords(cleanFrame(t, 2))
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	got, err := ExtraRows(eval)
	if err != nil {
		t.Fatalf("ExtraRows: %v", err)
	}

	first := 2 // injected rows start after the clean ones

	if v := got.Col("workclass").Elem(first).String(); v != "Galactic-Senate" {
		t.Errorf("injected workclass = %q, want unseen category", v)
	}
	if v := got.Col("native-country").Elem(first).String(); v != "Atlantis" {
		t.Errorf("injected native-country = %q, want unseen category", v)
	}
	if v := got.Col("age").Elem(first + 2).String(); v != "not-a-number" {
		t.Errorf("injected age = %q, want unparsable token", v)
	}
	if !got.Col("hours-per-week").Elem(first + 2).IsNA() {
		t.Error("injected empty hours-per-week should load as missing")
	}
	if v := got.Col("label").Elem(first + 2).String(); v != "maybe" {
		t.Errorf("injected label = %q, want unseen category", v)
	}
}
