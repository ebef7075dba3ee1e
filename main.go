package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"leadadapter/api"
	"leadadapter/cache"
	"leadadapter/config"
	"leadadapter/llm"
	"leadadapter/pipeline"
	"leadadapter/playbook"
	"leadadapter/scoring"
)

var (
	verbose      bool
	playbookPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "leadadapter",
	Short: "Personalized B2B outreach message generation service",
	Long: `leadadapter generates personalized outreach messages for B2B leads.

Each request runs a three-stage prompt chain (classify the lead, infer
personalization context, generate the message) behind a quality gate that
scores candidates on personalization, spam signals, structure and tone.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var generateCmd = &cobra.Command{
	Use:   "generate [request.json]",
	Short: "Generate a single message from a request file and print it",
	Long: `Reads a generation request from a JSON file and prints the generated
message as JSON. With --playbook, the playbook section of the request is
replaced by one loaded from a YAML file.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	generateCmd.Flags().StringVar(&playbookPath, "playbook", "", "YAML playbook file overriding the request's playbook")
	rootCmd.AddCommand(serveCmd, generateCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	generator, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	limiter := rate.NewLimiter(
		rate.Limit(float64(cfg.RateLimitRequests)/cfg.RateLimitWindow.Seconds()),
		cfg.RateLimitRequests)

	server := api.NewServer(fmt.Sprintf(":%d", cfg.Port), generator, limiter, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}
	var req pipeline.GenerateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}

	if playbookPath != "" {
		pb, err := playbook.LoadFile(playbookPath)
		if err != nil {
			return fmt.Errorf("failed to load playbook file: %w", err)
		}
		req.Playbook = pb
	}

	generator, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	resp, err := generator.Generate(ctx, req)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// buildGenerator wires the full pipeline from configuration.
func buildGenerator(cfg config.Config) (*pipeline.Generator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.RequestTimeout)
	scorer, err := scoring.NewScorer(scoring.DefaultCriteria()...)
	if err != nil {
		return nil, fmt.Errorf("failed to build scorer: %w", err)
	}

	var store cache.Store
	if cfg.CacheDBPath != "" {
		s, err := cache.NewSQLiteStore(cfg.CacheDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache database: %w", err)
		}
		store = s
	} else {
		store = cache.NewMemoryStore()
	}

	runner := pipeline.NewChainRunner(client, logger)
	gate := pipeline.NewQualityGate(runner, scorer, cfg.QualityThreshold, cfg.MaxAttempts, logger)
	return pipeline.NewGenerator(gate, store, cfg.CacheTTL, logger), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
