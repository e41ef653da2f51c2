// Package pipeline sequences the train/evaluate flow: load, preprocess,
// split, fit, persist, score. The flow is strictly linear; every failure is
// fatal to the run and nothing is retried.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cardwatch-dev/cardwatch/internal/classifier"
	"github.com/cardwatch-dev/cardwatch/internal/dataset"
	"github.com/cardwatch-dev/cardwatch/internal/feature"
	"github.com/cardwatch-dev/cardwatch/internal/runlog"
)

// Options configures one training run.
type Options struct {
	DataPath  string
	ModelPath string
	TestSize  float64
	Seed      int64
	Trainer   classifier.Params

	// RunLogRoot, if non-empty, is the directory whose logs/runs.csv
	// receives a record of this run.
	RunLogRoot string

	// Progress, if non-nil, is called once per completed training epoch.
	Progress func(epoch int)
}

// Result summarizes a completed training run.
type Result struct {
	RunID    string
	Rows     int
	Accuracy float64
}

// Run executes the full pipeline and returns the held-out accuracy. The
// model bundle is written before evaluation; the run log entry only after
// everything else succeeded.
func Run(opts Options) (*Result, error) {
	runID := uuid.NewString()
	log := slog.With("run_id", runID)

	records, err := dataset.Load(opts.DataPath)
	if err != nil {
		return nil, fmt.Errorf("loading data: %w", err)
	}
	log.Debug("loaded records", "path", opts.DataPath, "rows", len(records))

	features, encoders := feature.Preprocess(records)

	train, eval, err := feature.Split(features, opts.TestSize, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("splitting data: %w", err)
	}
	log.Debug("split data", "train_rows", len(train.X), "eval_rows", len(eval.X))

	model, err := classifier.Train(train, opts.Trainer, opts.Progress)
	if err != nil {
		return nil, fmt.Errorf("training model: %w", err)
	}

	bundle := &classifier.Bundle{
		Version:   classifier.BundleVersion,
		TrainedAt: time.Now().UTC(),
		Model:     model,
		Encoders:  encoders,
	}
	if err := classifier.SaveBundle(opts.ModelPath, bundle); err != nil {
		return nil, err
	}
	log.Debug("persisted model", "path", opts.ModelPath)

	accuracy := classifier.Accuracy(model, eval)
	log.Info("training run complete",
		"rows", len(records),
		"accuracy", accuracy,
		"model", opts.ModelPath)

	if opts.RunLogRoot != "" {
		entry := runlog.Entry{
			Timestamp: time.Now().UTC(),
			RunID:     runID,
			Rows:      len(records),
			Accuracy:  accuracy,
			ModelPath: opts.ModelPath,
		}
		if err := runlog.Append(opts.RunLogRoot, []runlog.Entry{entry}); err != nil {
			return nil, fmt.Errorf("recording run: %w", err)
		}
	}

	return &Result{RunID: runID, Rows: len(records), Accuracy: accuracy}, nil
}
