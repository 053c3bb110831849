package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pathpilot/pathpilot/internal/ai"
	"github.com/pathpilot/pathpilot/internal/ai/gemini"
	"github.com/pathpilot/pathpilot/internal/ai/lmstudio"
	"github.com/pathpilot/pathpilot/internal/classifier"
	"github.com/pathpilot/pathpilot/internal/courses"
	"github.com/pathpilot/pathpilot/internal/document"
	"github.com/pathpilot/pathpilot/internal/engine"
	"github.com/pathpilot/pathpilot/internal/jobsearch"
	"github.com/pathpilot/pathpilot/internal/logger"
	"github.com/pathpilot/pathpilot/internal/roles"
	"github.com/pathpilot/pathpilot/internal/secrets"
)

const (
	PromptShowJobs     = "Show job links"
	PromptDumpAnalysis = "Dump analysis to file"
	PromptExit         = "Exit"
)

var errExit = errors.New("exit requested")

var analyzePrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowJobs, PromptDumpAnalysis, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume: contact info, skills, roles, courses and job links",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("no-prompt", "y", false, "print the analysis and exit without the action menu")
}

func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the pathpilot analysis",
		zap.String("version", version),
		zap.String("file", path),
	)

	text, err := document.ExtractText(path)
	if err != nil {
		logger.Fatal("extracting document text", zap.Error(err))
	}

	analysis, err := newAnalyzer(ctx, config, logger).Analyze(ctx, text)
	if err != nil {
		logger.Fatal("analyzing resume", zap.Error(err))
	}

	pretty, _ := json.MarshalIndent(analysis, "", "  ")
	fmt.Println(string(pretty))

	if cmd.Flag("no-prompt").Value.String() == "true" {
		return
	}

	for {
		_, action, err := analyzePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAnalyzeAction(action, analysis, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAnalyzeAction(action string, analysis *engine.Analysis, logger *zap.Logger) error {
	switch action {
	case PromptShowJobs:
		if analysis.Jobs == nil || len(analysis.Jobs.Jobs) == 0 {
			logger.Info("no job links available")
			return nil
		}
		for _, job := range analysis.Jobs.Jobs {
			fmt.Printf("%s\n  %s\n", job.Title, job.URL)
		}
		return nil
	case PromptDumpAnalysis:
		filename, err := dumpToTmpFile(analysis)
		if err != nil {
			return fmt.Errorf("dump analysis to file: %w", err)
		}
		logger.Info("dumping analysis to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// newAnalyzer wires the optional collaborators the config enables. Every
// collaborator failure downgrades to the built-in fallback with a
// warning; analysis never depends on external services.
func newAnalyzer(ctx context.Context, config *Config, zlog *zap.Logger) *engine.Analyzer {
	var predictorOpts []roles.Option
	if config != nil && config.Classifier != nil && config.Classifier.ModelFile != "" {
		model, err := classifier.Load(config.Classifier.ModelFile)
		if err != nil {
			zlog.Warn("loading role classifier model, using rule-based scoring only", zap.Error(err))
		} else {
			predictorOpts = append(predictorOpts, roles.WithClassifier(model))
		}
	}

	var recommenderOpts []courses.Option
	if config != nil && config.AI != nil && config.AI.Enabled {
		generator, err := newGenerator(ctx, config.AI, zlog)
		if err != nil {
			zlog.Warn("configuring ai provider, using baseline recommendations", zap.Error(err))
		} else {
			recommenderOpts = append(recommenderOpts, courses.WithGenerator(generator))
		}
	}

	jobs := jobsearch.New(ctx, zlog, resolveJobSearchKey(config, zlog))

	return engine.New(zlog,
		roles.NewPredictor(zlog, predictorOpts...),
		courses.NewRecommender(zlog, recommenderOpts...),
		engine.WithJobSearch(jobs),
	)
}

func newGenerator(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (ai.ContentGenerator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	switch provider {
	case "", "lmstudio":
		var baseURL, model string
		var timeout time.Duration
		if cfg.LMStudio != nil {
			baseURL = cfg.LMStudio.BaseURL
			model = cfg.LMStudio.Model
			timeout = time.Duration(cfg.LMStudio.TimeoutSeconds) * time.Second
		}
		client := lmstudio.New(logger.WithProvider(zlog, "lmstudio", model), baseURL, model, timeout)
		return client, nil
	case "gemini":
		if cfg.Gemini == nil {
			return nil, errors.New("ai.gemini section is required for the gemini provider")
		}
		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
		}
		return gemini.NewGenerator(ctx, logger.WithProvider(zlog, "gemini", cfg.Gemini.Model), apiKey, cfg.Gemini.Model)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}

// resolveJobSearchKey loads the jsearch api key when configured. An
// empty key is fine; lookups then resolve through static fallback links.
func resolveJobSearchKey(config *Config, zlog *zap.Logger) string {
	if config == nil || config.JobSearch == nil || strings.TrimSpace(config.JobSearch.APIKeyFile) == "" {
		return ""
	}

	key, err := secrets.Load(secrets.Source{
		Name: "jsearch api key",
		File: config.JobSearch.APIKeyFile,
	})
	if err != nil {
		zlog.Warn("loading jsearch api key, using fallback job links", zap.Error(err))
		return ""
	}
	return key
}

func dumpToTmpFile(v any) (string, error) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", app+"-analysis-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(pretty); err != nil {
		return "", err
	}
	return f.Name(), nil
}
