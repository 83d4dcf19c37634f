package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"datavet/internal/format"
	"datavet/internal/textpb"
)

var showMarkdown bool

var showCmd = &cobra.Command{
	Use:   "show <artifact.pbtxt>",
	Short: "Render a pipeline artifact as a readable table",
	Long: `Show parses one of the text-format artifacts written by run (statistics,
schema, or anomalies) and renders it as a table. The artifact kind is detected
from its top-level fields, so any of the four .pbtxt files works.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read artifact: %w", err)
		}
		msg, err := textpb.Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		mode := format.ASCII
		if showMarkdown {
			mode = format.Markdown
		}

		switch {
		case msg.Has("datasets"):
			fmt.Print(renderStats(msg, mode))
		case msg.Has("anomaly_info") || msg.Has("anomaly_name_format"):
			fmt.Print(renderAnomalies(msg, mode))
		case msg.Has("feature"):
			fmt.Print(renderSchema(msg, mode))
		default:
			return fmt.Errorf("%s: not a statistics, schema, or anomalies artifact", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "render Markdown tables instead of ASCII")
}

func renderStats(msg *textpb.Message, mode format.Mode) string {
	var sb strings.Builder
	for _, ds := range msg.Messages("datasets") {
		name, _ := ds.Scalar("name")
		examples, _ := ds.Scalar("num_examples")
		fmt.Fprintf(&sb, "Dataset %s: %s examples\n", name, examples)

		tbl := format.NewTable(mode)
		tbl.Header("feature", "type", "present", "missing", "summary")
		tbl.Columns(
			format.Column{Number: 3, Align: format.AlignRight},
			format.Column{Number: 4, Align: format.AlignRight},
			format.Column{Number: 5, MaxWidth: 60},
		)
		features := ds.Messages("features")
		for _, f := range features {
			fname, _ := f.Scalar("name")
			ftype, _ := f.Scalar("type")
			var present, missing, summary string
			if num := f.Messages("num_stats"); len(num) > 0 {
				present, missing = presenceCells(num[0])
				mean, _ := num[0].Scalar("mean")
				lo, _ := num[0].Scalar("min")
				hi, _ := num[0].Scalar("max")
				summary = fmt.Sprintf("mean=%s min=%s max=%s", mean, lo, hi)
			} else if str := f.Messages("string_stats"); len(str) > 0 {
				present, missing = presenceCells(str[0])
				unique, _ := str[0].Scalar("unique")
				top := ""
				if tops := str[0].Messages("top_values"); len(tops) > 0 {
					top, _ = tops[0].Scalar("value")
				}
				summary = fmt.Sprintf("unique=%s top=%s", unique, top)
			}
			tbl.Row(fname, ftype, present, missing, summary)
		}
		tbl.Footer("features", len(features), "", "", "")
		sb.WriteString(tbl.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// presenceCells pulls the shared common_stats counters out of a num_stats or
// string_stats block.
func presenceCells(m *textpb.Message) (present, missing string) {
	if cs := m.Messages("common_stats"); len(cs) > 0 {
		present, _ = cs[0].Scalar("num_non_missing")
		missing, _ = cs[0].Scalar("num_missing")
	}
	return present, missing
}

func renderSchema(msg *textpb.Message, mode format.Mode) string {
	tbl := format.NewTable(mode)
	tbl.Header("feature", "type", "domain", "domain size", "min fraction")
	tbl.Columns(format.Column{Number: 4, Align: format.AlignRight})
	features := msg.Messages("feature")
	for _, f := range features {
		name, _ := f.Scalar("name")
		ftype, _ := f.Scalar("type")
		domain, _ := f.Scalar("domain")
		size := ""
		if domain != "" {
			for _, d := range msg.Messages("string_domain") {
				if dn, _ := d.Scalar("name"); dn == domain {
					size = strconv.Itoa(len(d.Scalars("value")))
				}
			}
		}
		minFraction := ""
		if pres := f.Messages("presence"); len(pres) > 0 {
			minFraction, _ = pres[0].Scalar("min_fraction")
		}
		tbl.Row(name, ftype, domain, size, minFraction)
	}
	tbl.Footer("features", len(features), "", "", "")
	return tbl.String() + "\n"
}

func renderAnomalies(msg *textpb.Message, mode format.Mode) string {
	infos := msg.Messages("anomaly_info")
	if len(infos) == 0 {
		return "No anomalies.\n"
	}
	tbl := format.NewTable(mode)
	tbl.Header("feature", "severity", "anomaly", "detail")
	tbl.Columns(format.Column{Number: 4, MaxWidth: 70})
	for _, info := range infos {
		key, _ := info.Scalar("key")
		severity, _ := info.Scalar("severity")
		short, _ := info.Scalar("short_description")
		desc, _ := info.Scalar("description")
		tbl.Row(key, severity, short, desc)
	}
	tbl.Footer("total", len(infos), "", "")
	return tbl.String() + "\n"
}
