package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/config"
	"github.com/jonathan/cv-matcher/internal/document"
	"github.com/jonathan/cv-matcher/internal/embedding"
	"github.com/jonathan/cv-matcher/internal/fetch"
	"github.com/jonathan/cv-matcher/internal/matching"
	"github.com/jonathan/cv-matcher/internal/scoring"
	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/jonathan/cv-matcher/internal/vocab"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a CV against a job description",
	Long:  "Score a CV file against a job description (from a file or URL) and print the match breakdown.",
	RunE:  runMatch,
}

var (
	matchCVFile     string
	matchJobFile    string
	matchJobURL     string
	matchConfigFile string
	matchVocabFile  string
	matchAPIKey     string
	matchModel      string
	matchTimeout    int
	matchWeights    string
	matchJSONOutput bool
)

func init() {
	matchCmd.Flags().StringVar(&matchCVFile, "cv", "", "Path to CV file (required)")
	matchCmd.Flags().StringVar(&matchJobFile, "job", "", "Path to job description text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job description from")
	matchCmd.Flags().StringVar(&matchConfigFile, "config", "", "Path to JSON config file")
	matchCmd.Flags().StringVar(&matchVocabFile, "vocab", "", "Path to vocabulary tables JSON file")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVar(&matchModel, "model", "", "Embedding model name")
	matchCmd.Flags().IntVar(&matchTimeout, "timeout", 0, "Embedding request timeout in seconds")
	matchCmd.Flags().StringVar(&matchWeights, "weights", "", `Scoring weights as JSON, e.g. '{"overall_similarity":0.4,"skills_match":0.3,"experience_match":0.2,"education_match":0.1}'`)
	matchCmd.Flags().BoolVar(&matchJSONOutput, "json", false, "Print the full result as JSON")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := matchConfig()
	if err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	cvBytes, err := os.ReadFile(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}
	cvText, _, err := document.Decode(cvBytes, cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to decode CV: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = fetch.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

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

	result, err := matcher.Match(ctx, cvText, jobText)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if matchJSONOutput {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	printMatchResult(result)
	return nil
}

// matchConfig merges config file values with CLI flags; flags win.
func matchConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if matchConfigFile != "" {
		loaded, err := config.LoadConfig(matchConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := config.Config{
		CV:             matchCVFile,
		Job:            matchJobFile,
		JobURL:         matchJobURL,
		Vocabulary:     matchVocabFile,
		APIKey:         matchAPIKey,
		EmbeddingModel: matchModel,
		TimeoutSeconds: matchTimeout,
	}
	if matchWeights != "" {
		var weights scoring.Weights
		if err := json.Unmarshal([]byte(matchWeights), &weights); err != nil {
			return nil, fmt.Errorf("failed to parse --weights JSON: %w", err)
		}
		flags.Weights = &weights
	}
	merged := flags.MergeWithDefaults(*cfg)
	cfg = &merged

	if cfg.CV == "" {
		return nil, fmt.Errorf("--cv is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return nil, fmt.Errorf("either --job or --job-url is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadJobText reads the job description from a file or fetches it from a URL.
func loadJobText(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Job != "" {
		jobBytes, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		jobText, _, err := document.Decode(jobBytes, cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to decode job description: %w", err)
		}
		return jobText, nil
	}

	jobText, err := fetch.JobPosting(ctx, cfg.JobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return jobText, nil
}

// printMatchResult writes a human-readable summary to stdout.
func printMatchResult(result *types.MatchResult) {
	score := result.Score

	fmt.Printf("Match Score: %.1f%% (%s)\n\n", score.FinalScore, result.Interpretation)
	fmt.Println("Breakdown:")
	fmt.Printf("  Overall similarity: %6.1f%%\n", score.OverallSimilarity)
	fmt.Printf("  Skills match:       %6.1f%%\n", score.SkillsMatch)
	fmt.Printf("  Experience match:   %6.1f%%\n", score.ExperienceMatch)
	fmt.Printf("  Education match:    %6.1f%%\n", score.EducationMatch)

	if len(score.PerSectionSimilarity) > 0 {
		fmt.Println("\nSection similarity:")
		for _, label := range []types.SectionLabel{
			types.SectionExperience, types.SectionEducation, types.SectionSkills,
			types.SectionCertifications, types.SectionSummary, types.SectionOther,
		} {
			if sim, ok := score.PerSectionSimilarity[label]; ok {
				fmt.Printf("  %-14s %6.1f%%\n", label, sim)
			}
		}
	}

	fmt.Printf("\nSkills: %d matched of %d required (CV has %d)\n",
		score.SkillCounts.Matched, score.SkillCounts.Job, score.SkillCounts.CV)
	if len(score.MatchedSkills) > 0 {
		fmt.Println("  Matched:")
		for _, skill := range score.MatchedSkills {
			fmt.Printf("    - %s\n", skill)
		}
	}
	if len(score.MissingSkills) > 0 {
		fmt.Println("  Missing:")
		for _, skill := range score.MissingSkills {
			fmt.Printf("    - %s\n", skill)
		}
	}
}
