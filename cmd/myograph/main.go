/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for Myograph. Provides the analyze command
for running event-related or interval-related EMG feature extraction over
processed signal exports, with configuration via flags, environment, and an
optional config file.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/myograph/cmd/myograph/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string
	logFiles   int

	// Input configuration
	inputPath   string
	labelColumn string
	splitEpochs bool
	outputPath  string

	// Analysis configuration
	samplingRate float64
	method       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "myograph",
		Short: "Myograph - EMG feature extraction dispatcher",
		Long: `Myograph analyzes processed electromyography (EMG) signal data. It decides
between event-related analysis (short, event-locked epochs) and interval-related
analysis (longer continuous recordings), either from an explicit method directive
or automatically from the data duration, and runs the matching feature extractor.`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().IntVar(&logFiles, "log-max-files", 10, "Maximum number of log files to keep")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a processed EMG recording",
		Long: `Analyze a processed EMG recording from a CSV export. The method directive can
be event-related (synonyms: event, epoch), interval-related (synonyms: interval,
resting-state), or auto, which picks interval-related for recordings of 10 seconds
or longer and event-related otherwise.`,
		RunE: commands.RunAnalyze,
	}

	analyzeCmd.Flags().StringVar(&inputPath, "input", "", "Path to processed signal CSV (required)")
	analyzeCmd.Flags().Float64Var(&samplingRate, "sampling-rate", 1000, "Sampling rate in Hz")
	analyzeCmd.Flags().StringVar(&method, "method", "auto", "Analysis method (event-related, interval-related, auto)")
	analyzeCmd.Flags().StringVar(&labelColumn, "label-column", "", "Marker column for epoch splitting (default: first column containing \"Label\")")
	analyzeCmd.Flags().BoolVar(&splitEpochs, "split-epochs", false, "Split the input into epochs by the marker column before analysis")
	analyzeCmd.Flags().StringVar(&outputPath, "output", "", "Write the result as CSV to this path (default: print to stdout)")

	viper.BindPFlag("input", analyzeCmd.Flags().Lookup("input"))
	viper.BindPFlag("sampling_rate", analyzeCmd.Flags().Lookup("sampling-rate"))
	viper.BindPFlag("method", analyzeCmd.Flags().Lookup("method"))
	viper.BindPFlag("label_column", analyzeCmd.Flags().Lookup("label-column"))
	viper.BindPFlag("split_epochs", analyzeCmd.Flags().Lookup("split-epochs"))
	viper.BindPFlag("output", analyzeCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
