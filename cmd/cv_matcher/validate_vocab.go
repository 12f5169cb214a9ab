package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/vocab"
)

var validateVocabCmd = &cobra.Command{
	Use:   "validate-vocab",
	Short: "Validate a vocabulary tables file",
	Long:  "Validate a vocabulary tables JSON file against the schema and compile its patterns.",
	RunE:  runValidateVocab,
}

var (
	validateVocabFile   string
	validateVocabSchema string
)

func init() {
	validateVocabCmd.Flags().StringVar(&validateVocabFile, "vocab", "", "Path to vocabulary tables JSON file (required)")
	validateVocabCmd.Flags().StringVar(&validateVocabSchema, "schema", vocab.DefaultSchemaPath, "Path to the JSON schema")

	rootCmd.AddCommand(validateVocabCmd)
}

func runValidateVocab(_ *cobra.Command, _ []string) error {
	if validateVocabFile == "" {
		return fmt.Errorf("--vocab is required")
	}

	tables, err := vocab.Load(validateVocabFile, validateVocabSchema)
	if err != nil {
		return err
	}

	fmt.Printf("OK: %s (version %s, %d section labels, %d skill patterns, %d stop words)\n",
		validateVocabFile, tables.Version, len(tables.SectionKeywords),
		len(tables.SkillPatterns), len(tables.StopWords))
	return nil
}
