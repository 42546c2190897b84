package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/engine"
	"github.com/jonathan/ats-engine/internal/logger"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/semantic"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a CV against a job description",
	Long:  "Score a CV text file against a job description text file and print the full analysis as JSON on stdout.",
	RunE:  runScore,
}

var (
	scoreCVFile     string
	scoreJDFile     string
	scoreCompany    string
	scorePreset     string
	scoreConfigFile string
	scoreAPIKey     string
	scoreLogLevel   string
	scoreValidate   bool
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreCVFile, "cv", "", "Path to CV text file (required)")
	scoreCmd.Flags().StringVar(&scoreJDFile, "jd", "", "Path to job description text file (required)")
	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "Hiring company name (detected from the JD when omitted)")
	scoreCmd.Flags().StringVar(&scorePreset, "preset", "", "Category weight preset: technical, leadership or junior")
	scoreCmd.Flags().StringVar(&scoreConfigFile, "config", "", "Path to engine config JSON")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key for semantic scoring (overrides GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	scoreCmd.Flags().BoolVar(&scoreValidate, "validate", false, "Validate the result against the contract schema before printing")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable summary on stderr alongside the JSON")
	_ = scoreCmd.MarkFlagRequired("cv")
	_ = scoreCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if scoreConfigFile != "" {
		loaded, err := config.Load(scoreConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = scoreLogLevel
	}
	logger.Init(cfg.Logging)

	cvText, err := os.ReadFile(scoreCVFile)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}
	jdText, err := os.ReadFile(scoreJDFile)
	if err != nil {
		return fmt.Errorf("failed to read JD file: %w", err)
	}

	apiKey := scoreAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	ctx := context.Background()
	runID := uuid.New().String()
	log := logger.Logger.With().Str("run_id", runID).Logger()

	var provider semantic.Provider
	if apiKey != "" {
		gemini, err := semantic.NewGeminiProvider(ctx, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create embedding provider: %w", err)
		}
		defer gemini.Close()
		provider = gemini
	} else {
		log.Warn().Msg("no API key configured; semantic scoring disabled")
	}

	result, err := engine.New(cfg, provider).Analyze(ctx, engine.AnalyzeRequest{
		CVText:      string(cvText),
		JDText:      string(jdText),
		CompanyName: scoreCompany,
		Preset:      scorePreset,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	log.Info().
		Float64("score", result.Score).
		Str("eligibility", string(result.Eligibility)).
		Int("matched", result.Matched).
		Int("total", result.Total).
		Msg("analysis complete")

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintScoreSummary(result)
		printer.PrintCategoryBreakdown(result)
		printer.PrintGaps(result)
	}

	if scoreValidate {
		if err := schemas.ValidateAnalysisResult(result); err != nil {
			return fmt.Errorf("result failed contract validation: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
