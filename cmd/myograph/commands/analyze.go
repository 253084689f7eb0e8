/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Implementation of the analyze command. Loads the processed signal
CSV, optionally splits it into epochs by the marker column, dispatches to the
resolved feature extractor, and writes or prints the result table.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kleascm/myograph/pkg/config"
	"github.com/kleascm/myograph/pkg/dataio"
	"github.com/kleascm/myograph/pkg/dispatch"
	"github.com/kleascm/myograph/pkg/features"
	"github.com/kleascm/myograph/pkg/logging"
	"github.com/kleascm/myograph/pkg/signal"
)

// RunAnalyze executes the analyze command.
func RunAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	frame, err := dataio.LoadCSV(cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Info("Recording loaded", map[string]interface{}{
		"input":   cfg.InputPath,
		"rows":    frame.Len(),
		"columns": len(frame.Columns()),
	})

	var data any = frame
	if cfg.SplitEpochs {
		epochs, err := dataio.SplitEpochs(frame, cfg.LabelColumn)
		if err != nil {
			return err
		}
		logger.Info("Epochs split", map[string]interface{}{
			"epochs": epochs.Len(),
		})
		data = epochs
	}

	dispatcher, err := dispatch.NewDispatcher(features.NewEventRelated(), features.NewIntervalRelated(), logger)
	if err != nil {
		return err
	}

	result, err := dispatcher.Analyze(data, cfg.SamplingRate, cfg.Method)
	if err != nil {
		return err
	}

	return writeResult(result, cfg.OutputPath)
}

// writeResult writes the result frame to a CSV file, or prints it when no
// output path is configured.
func writeResult(result *signal.Frame, path string) error {
	if path == "" {
		fmt.Print(dataio.Render(result))
		return nil
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()
	return dataio.WriteCSV(result, file)
}
