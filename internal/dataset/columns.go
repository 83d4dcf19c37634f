// Package dataset loads the census income CSV into a dataframe and
// prepares it for validation: deterministic train/eval splitting and
// per-column type coercion.
package dataset

// Columns lists the census income column names in file order. The file
// itself carries no header row.
var Columns = []string{
	"age",
	"workclass",
	"fnlwgt",
	"education",
	"education-num",
	"marital-status",
	"occupation",
	"relationship",
	"race",
	"sex",
	"capital-gain",
	"capital-loss",
	"hours-per-week",
	"native-country",
	"label",
}

// NumericColumns are coerced to floats during normalization. Values that
// fail to parse become missing rather than aborting the run.
var NumericColumns = []string{
	"age",
	"fnlwgt",
	"education-num",
	"capital-gain",
	"capital-loss",
	"hours-per-week",
}

// CategoricalColumns are coerced to strings during normalization.
var CategoricalColumns = []string{
	"workclass",
	"education",
	"marital-status",
	"occupation",
	"relationship",
	"race",
	"sex",
	"native-country",
	"label",
}

// missingTokens are raw cell values treated as missing on load. The
// census files mark unknowns with "?".
var missingTokens = []string{"", "?", "NA", "NaN", "null"}
