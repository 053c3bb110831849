package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pathpilot/pathpilot/internal/document"
	"github.com/pathpilot/pathpilot/internal/jobfit"
	"github.com/pathpilot/pathpilot/internal/logger"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume-file> <job-file>",
	Short: "Score a resume against a job description",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		match(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func match(resumePath, jobPath string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumeText, err := document.ExtractText(resumePath)
	if err != nil {
		logger.Fatal("extracting resume text", zap.Error(err))
	}

	jobText, err := document.ExtractText(jobPath)
	if err != nil {
		logger.Fatal("extracting job description text", zap.Error(err))
	}

	result, err := newAnalyzer(ctx, config, logger).Match(ctx, resumeText, jobText)
	if err != nil {
		logger.Fatal("matching resume against job", zap.Error(err))
	}

	logger.Info("job fit computed",
		zap.String("job_title", jobfit.ExtractJobTitle(jobText)),
		zap.Float64("overall_score", result.OverallScore),
		zap.String("match_level", result.MatchLevel),
	)

	pretty, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(pretty))
}
