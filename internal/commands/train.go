package commands

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cardwatch-dev/cardwatch/internal/classifier"
	"github.com/cardwatch-dev/cardwatch/internal/config"
	"github.com/cardwatch-dev/cardwatch/internal/pipeline"
)

func newTrainCommand() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the fraud classifier and report held-out accuracy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromViper(viper.GetViper())
			if err != nil {
				return err
			}
			return runTrain(cmd, cfg)
		},
	}

	cmd.Flags().String("data", defaults.Data.Path, "input records CSV")
	cmd.Flags().String("model", defaults.Model.Path, "model bundle destination")
	cmd.Flags().Float64("test-size", defaults.Split.TestSize, "fraction of rows held out for evaluation")
	cmd.Flags().Int64("seed", defaults.Split.Seed, "random seed for the train/eval split")
	cmd.Flags().Int("epochs", defaults.Trainer.Epochs, "training epochs")
	cmd.Flags().Float64("learning-rate", defaults.Trainer.LearningRate, "gradient descent learning rate")

	_ = viper.BindPFlag("data.path", cmd.Flags().Lookup("data"))
	_ = viper.BindPFlag("model.path", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("split.test_size", cmd.Flags().Lookup("test-size"))
	_ = viper.BindPFlag("split.seed", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("trainer.epochs", cmd.Flags().Lookup("epochs"))
	_ = viper.BindPFlag("trainer.learning_rate", cmd.Flags().Lookup("learning-rate"))

	return cmd
}

func runTrain(cmd *cobra.Command, cfg *config.Config) error {
	bar := progressbar.NewOptions(cfg.Trainer.Epochs,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Training model..."),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)

	params := classifier.DefaultParams()
	params.Epochs = cfg.Trainer.Epochs
	params.LearningRate = cfg.Trainer.LearningRate

	result, err := pipeline.Run(pipeline.Options{
		DataPath:   cfg.Data.Path,
		ModelPath:  cfg.Model.Path,
		TestSize:   cfg.Split.TestSize,
		Seed:       cfg.Split.Seed,
		Trainer:    params,
		RunLogRoot: ".",
		Progress: func(_ int) {
			_ = bar.Add(1)
		},
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()

	fmt.Fprintf(cmd.OutOrStdout(), "Model accuracy: %.4f\n", result.Accuracy)
	return nil
}
