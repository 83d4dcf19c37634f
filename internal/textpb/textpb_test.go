package textpb

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncoderLayout(t *testing.T) {
	var e Encoder
	e.Begin("datasets")
	e.Str("name", "train")
	e.Int("num_examples", 70)
	e.Begin("features")
	e.Str("name", "age")
	e.Enum("type", "INT")
	e.Float("mean", 38.5)
	e.End()
	e.End()

	want := `datasets {
  name: "train"
  num_examples: 70
  features {
    name: "age"
    type: INT
    mean: 38.5
  }
}
`
	if diff := cmp.Diff(want, e.String()); diff != "" {
		t.Errorf("rendered document mismatch (-want +got):\n%s", diff)
	}
}

func TestEncoderFloatForms(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"integral", 49, "x: 49\n"},
		{"long fraction", 38.58164675532078, "x: 38.58164675532078\n"},
		{"small", 1.234e-06, "x: 1.234e-06\n"},
		{"nan", math.NaN(), "x: nan\n"},
		{"positive inf", math.Inf(1), "x: inf\n"},
		{"negative inf", math.Inf(-1), "x: -inf\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var e Encoder
			e.Float("x", tc.in)
			if got := e.String(); got != tc.want {
				t.Errorf("Float(%v) rendered %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	var e Encoder
	e.Begin("anomaly_info")
	e.Str("key", `quote "inside"`)
	e.Str("description", "line one\nline two\ttabbed")
	e.Begin("reason")
	e.Enum("type", "ENUM_TYPE_UNEXPECTED_STRING_VALUES")
	e.End()
	e.End()
	e.Enum("anomaly_name_format", "SERIALIZED_PATH")

	msg, err := Parse(e.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	infos := msg.Messages("anomaly_info")
	if len(infos) != 1 {
		t.Fatalf("expected 1 anomaly_info block, got %d", len(infos))
	}
	if got, ok := infos[0].Scalar("key"); !ok || got != `quote "inside"` {
		t.Errorf("key = %q, ok=%v", got, ok)
	}
	if got, _ := infos[0].Scalar("description"); got != "line one\nline two\ttabbed" {
		t.Errorf("description = %q", got)
	}
	if reasons := infos[0].Messages("reason"); len(reasons) != 1 {
		t.Errorf("expected 1 reason block, got %d", len(reasons))
	}
	if got, _ := msg.Scalar("anomaly_name_format"); got != "SERIALIZED_PATH" {
		t.Errorf("anomaly_name_format = %q", got)
	}
}

func TestParseAcceptedForms(t *testing.T) {
	src := `# leading commentary
value: "a"
value: 'b'
block: {
  n: 1
}
block {
  n: 2  # trailing commentary
}
`
	msg, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if diff := cmp.Diff([]string{"a", "b"}, msg.Scalars("value")); diff != "" {
		t.Errorf("repeated scalars mismatch (-want +got):\n%s", diff)
	}
	blocks := msg.Messages("block")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 block messages, got %d", len(blocks))
	}
	if got, _ := blocks[0].Scalar("n"); got != "1" {
		t.Errorf("first block n = %q, want 1", got)
	}
	if got, _ := blocks[1].Scalar("n"); got != "2" {
		t.Errorf("second block n = %q, want 2", got)
	}
	if !msg.Has("value") || msg.Has("absent") {
		t.Error("Has reported wrong field presence")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing close brace", "foo {\n  a: 1\n"},
		{"stray close brace", "}\n"},
		{"missing colon", "a 3\n"},
		{"unterminated string", `a: "x`},
		{"newline in string", "a: \"x\ny\"\n"},
		{"unsupported escape", `a: "\q"`},
		{"missing value", "a:\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.src)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tc.src)
			}
		})
	}
}
