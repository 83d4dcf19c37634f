package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"datavet/internal/pipeline"
)

var (
	runDataPath     string
	runOutputDir    string
	runNoInjection  bool
	runEvalFraction float64
	runRandomState  int64
	runWriteFacets  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: split, profile, infer schema, validate",
	Long: `Run loads the census CSV, splits it into train and eval partitions, appends
synthetic anomaly rows to eval (unless disabled), computes statistics for both
partitions, infers a schema from the training side, and validates eval against
it. The anomalies report is echoed to stdout and all artifacts are written to
the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pipeline.Options{
			DataPath:        runDataPath,
			OutputDir:       runOutputDir,
			EvalFraction:    runEvalFraction,
			RandomState:     runRandomState,
			InjectAnomalies: !runNoInjection,
			WriteFacetsHTML: runWriteFacets,
			Stdout:          os.Stdout,
		}
		// Config supplies values for flags the caller left untouched
		if cfg != nil {
			f := cmd.Flags()
			if !f.Changed("data_path") {
				opts.DataPath = cfg.DataPath
			}
			if !f.Changed("output_dir") {
				opts.OutputDir = cfg.OutputDir
			}
			if !f.Changed("eval_fraction") {
				opts.EvalFraction = cfg.EvalFraction
			}
			if !f.Changed("random_state") {
				opts.RandomState = cfg.RandomState
			}
			if !f.Changed("no_anomaly_injection") {
				opts.InjectAnomalies = cfg.AnomalyInjection
			}
			if !f.Changed("write_facets_html") {
				opts.WriteFacetsHTML = cfg.WriteFacetsHTML
			}
		}

		res, err := pipeline.Run(opts)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Split %d rows into train=%d eval=%d", res.Rows, res.TrainRows, res.EvalRows)
		if res.InjectedRows > 0 {
			fmt.Printf(" (+%d injected)", res.InjectedRows)
		}
		fmt.Println()
		fmt.Printf("✓ Wrote %s\n", res.TrainStatsPath)
		fmt.Printf("✓ Wrote %s\n", res.EvalStatsPath)
		fmt.Printf("✓ Wrote %s\n", res.SchemaPath)
		fmt.Printf("✓ Wrote %s\n", res.AnomaliesPath)
		if res.OverviewPath != "" {
			fmt.Printf("✓ Wrote %s\n", res.OverviewPath)
		}
		if res.AnomalyCount > 0 {
			fmt.Printf("✗ %d features failed validation (see %s)\n", res.AnomalyCount, res.AnomaliesPath)
		} else {
			fmt.Println("✓ No anomalies found")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runDataPath, "data_path", filepath.Join("data", "adult.data"), "path to the census income CSV")
	runCmd.Flags().StringVar(&runOutputDir, "output_dir", "outputs", "directory to write artifacts into")
	runCmd.Flags().BoolVar(&runNoInjection, "no_anomaly_injection", false, "do not append synthetic anomaly rows to the eval partition")
	runCmd.Flags().Float64Var(&runEvalFraction, "eval_fraction", 0.2, "fraction of rows sampled into the eval partition")
	runCmd.Flags().Int64Var(&runRandomState, "random_state", 42, "seed for the eval row sampler")
	runCmd.Flags().BoolVar(&runWriteFacets, "write_facets_html", false, "also render the statistics overview HTML")
}
