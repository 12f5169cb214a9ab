package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-matcher/internal/config"
	"github.com/jonathan/cv-matcher/internal/embedding"
	"github.com/jonathan/cv-matcher/internal/matching"
	"github.com/jonathan/cv-matcher/internal/server"
	"github.com/jonathan/cv-matcher/internal/vocab"
)

const defaultServePort = 8080

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing the matching pipeline as a REST API.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
	serveVocabFile  string
	serveModel      string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveVocabFile, "vocab", "", "Path to vocabulary tables JSON file")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Embedding model name")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigFile != "" {
		loaded, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := config.Config{
		Port:           servePort,
		Vocabulary:     serveVocabFile,
		EmbeddingModel: serveModel,
	}
	merged := flags.MergeWithDefaults(*cfg)
	cfg = &merged
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = defaultServePort
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable)")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	tables := vocab.Default()
	if cfg.Vocabulary != "" {
		tables, err = vocab.Load(cfg.Vocabulary, vocab.DefaultSchemaPath)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	handle := embedding.NewHandle(func(ctx context.Context) (embedding.Provider, error) {
		return embedding.NewGeminiProvider(ctx, apiKey, cfg.EmbeddingModel)
	})
	defer func() { _ = handle.Close() }()

	matcher := matching.New(handle, tables)
	if cfg.Weights != nil {
		if err := matcher.Engine().SetWeights(*cfg.Weights); err != nil {
			return fmt.Errorf("invalid weights: %w", err)
		}
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		Matcher:      matcher,
		Logger:       logger,
		MatchTimeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
