// Package pipeline runs the census validation flow end to end: load the
// CSV, split it into train and eval, optionally inject anomaly rows,
// normalize column types, generate statistics, infer a schema, validate
// the eval partition, and write the artifacts.
package pipeline

import (
	"encoding"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"datavet/internal/dataset"
	"datavet/internal/inject"
	"datavet/internal/logging"
	"datavet/internal/report"
	"datavet/internal/utils"
	"datavet/internal/validate"
)

// Artifact file names inside the output directory.
const (
	TrainStatsFile = "train_stats.pbtxt"
	EvalStatsFile  = "eval_stats.pbtxt"
	SchemaFile     = "schema.pbtxt"
	AnomaliesFile  = "anomalies.pbtxt"
	OverviewFile   = "stats_overview.html"
)

// Options configures one pipeline run.
type Options struct {
	DataPath        string
	OutputDir       string
	EvalFraction    float64
	RandomState     int64
	InjectAnomalies bool
	WriteFacetsHTML bool
	// Stdout receives the anomalies artifact echo. Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what one run produced.
type Result struct {
	RunID        string
	Rows         int
	TrainRows    int
	EvalRows     int
	InjectedRows int
	AnomalyCount int

	TrainStatsPath string
	EvalStatsPath  string
	SchemaPath     string
	AnomaliesPath  string
	OverviewPath   string // empty unless the overview was written
}

// Run executes the validation pipeline. The output directory is created
// only after the dataset loads, so a bad data path leaves nothing
// behind. A failing overview render degrades to a warning; everything
// else aborts the run.
func Run(opts Options) (*Result, error) {
	log := logging.New("pipeline")
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	res := &Result{RunID: uuid.NewString()}
	log.Info("starting run", "run_id", res.RunID, "data_path", opts.DataPath)

	df, err := dataset.Load(opts.DataPath)
	if err != nil {
		return nil, err
	}
	res.Rows = df.Nrow()
	log.Info("loaded dataset", "rows", df.Nrow(), "columns", df.Ncol())

	train, eval, err := dataset.Split(df, opts.EvalFraction, opts.RandomState)
	if err != nil {
		return nil, err
	}

	if opts.InjectAnomalies {
		if eval, err = inject.ExtraRows(eval); err != nil {
			return nil, err
		}
		res.InjectedRows = inject.RowCount()
		log.Info("injected anomaly rows", "rows", res.InjectedRows)
	}
	res.TrainRows = train.Nrow()
	res.EvalRows = eval.Nrow()
	log.Info("split dataset",
		"train_rows", res.TrainRows,
		"eval_rows", res.EvalRows,
		"eval_fraction", opts.EvalFraction,
		"random_state", opts.RandomState)

	if train, err = dataset.Normalize(train); err != nil {
		return nil, err
	}
	if eval, err = dataset.Normalize(eval); err != nil {
		return nil, err
	}

	if err := utils.EnsureDir(opts.OutputDir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	trainStats, err := validate.GenerateStatistics(train, "train")
	if err != nil {
		return nil, err
	}
	evalStats, err := validate.GenerateStatistics(eval, "eval")
	if err != nil {
		return nil, err
	}

	schema, err := validate.InferSchema(trainStats)
	if err != nil {
		return nil, err
	}
	anoms, err := validate.ValidateStatistics(evalStats, schema)
	if err != nil {
		return nil, err
	}
	res.AnomalyCount = len(anoms.Infos)
	log.Info("validated eval statistics", "anomalies", res.AnomalyCount)

	res.TrainStatsPath = filepath.Join(opts.OutputDir, TrainStatsFile)
	res.EvalStatsPath = filepath.Join(opts.OutputDir, EvalStatsFile)
	res.SchemaPath = filepath.Join(opts.OutputDir, SchemaFile)
	res.AnomaliesPath = filepath.Join(opts.OutputDir, AnomaliesFile)

	if _, err := writeArtifact(res.TrainStatsPath, trainStats); err != nil {
		return nil, err
	}
	if _, err := writeArtifact(res.EvalStatsPath, evalStats); err != nil {
		return nil, err
	}
	if _, err := writeArtifact(res.SchemaPath, schema); err != nil {
		return nil, err
	}
	anomText, err := writeArtifact(res.AnomaliesPath, anoms)
	if err != nil {
		return nil, err
	}

	// The anomalies artifact is the one output meant for eyeballs; echo
	// it so a run is reviewable without opening files.
	if _, err := stdout.Write(anomText); err != nil {
		return nil, fmt.Errorf("echo anomalies: %w", err)
	}

	if opts.WriteFacetsHTML {
		overviewPath := filepath.Join(opts.OutputDir, OverviewFile)
		page, err := report.Overview(trainStats, evalStats, "train", "eval")
		if err == nil {
			err = utils.SafeWriteFile(overviewPath, page)
		}
		if err != nil {
			log.Warn("stats overview not written", "error", err)
		} else {
			res.OverviewPath = overviewPath
		}
	}

	log.Info("run complete", "run_id", res.RunID, "output_dir", opts.OutputDir)
	return res, nil
}

func writeArtifact(path string, m encoding.TextMarshaler) ([]byte, error) {
	data, err := m.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := utils.SafeWriteFile(path, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return data, nil
}
