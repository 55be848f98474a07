package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ayx-builders/vader-sentiment/internal/config"
	"github.com/ayx-builders/vader-sentiment/internal/logging"
	"github.com/ayx-builders/vader-sentiment/internal/metrics"
	"github.com/ayx-builders/vader-sentiment/internal/runner"
)

var (
	inputPath  string
	outputPath string
	fieldName  string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "vader-sentiment",
	Short: "Append VADER sentiment scores to CSV rows",
	Long: `Reads CSV rows, scores one text field with the VADER sentiment analyzer,
and writes the rows back out with five extra columns: Sentiment_Output,
Negative_Score, Neutral_Score, Positive_Score and Compound_Score.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input CSV file (default stdin)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output CSV file (default stdout)")
	rootCmd.Flags().StringVarP(&fieldName, "field", "f", "", "name of the field to analyze")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "XML configuration file (alternative to --field)")
	rootCmd.MarkFlagsOneRequired("field", "config")
	rootCmd.MarkFlagsMutuallyExclusive("field", "config")
}

func run(cmd *cobra.Command, args []string) error {
	// .env is optional; real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	configXML := runner.FieldConfigXML(fieldName)
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read configuration: %w", err)
		}
		configXML = string(raw)
	}

	var in io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := runner.NewCSVRunner().Run(in, out, configXML); err != nil {
		return err
	}

	if cfg.MetricsDump {
		metrics.Dump(slog.Default())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
