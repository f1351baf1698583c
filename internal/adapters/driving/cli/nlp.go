package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/services"
)

var (
	nlpJSON bool

	entityMethod string
	entityDedupe bool

	rewriteStyle     string
	rewriteIntensity string
	rewriteSegment   bool
	rewriteMaxLength int
	rewriteApply     bool
)

var nlpCmd = &cobra.Command{
	Use:   "nlp",
	Short: "Analyse the text with the NLP backend",
	Long: `Send the working text to the configured NLP backend.

Set the backend with:
  textdesk settings set backend.url http://localhost:5000

Rewriting can also use a local Ollama model:
  textdesk settings set rewrite.provider ollama`,
}

var nlpEntitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "Extract named entities",
	RunE:  runNLPEntities,
}

var nlpSentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Classify sentiment",
	RunE:  runNLPSentiment,
}

var nlpSyntaxCmd = &cobra.Command{
	Use:   "syntax",
	Short: "Analyse sentence structure",
	RunE:  runNLPSyntax,
}

var nlpRewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite the text in another style",
	Long: `Rewrite the working text with the configured rewrite provider.

Long texts can be rewritten segment by segment with --segment; segments
keep paragraphs together where possible.`,
	RunE: runNLPRewrite,
}

var nlpCapabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "List the features the backend offers",
	RunE:  runNLPCapabilities,
}

func init() {
	nlpCmd.PersistentFlags().BoolVar(&nlpJSON, "json", false, "output as JSON")

	nlpEntitiesCmd.Flags().StringVar(&entityMethod, "method", "", "extractor used by the backend")
	nlpEntitiesCmd.Flags().BoolVar(&entityDedupe, "dedupe", true, "merge repeated entities")

	f := nlpRewriteCmd.Flags()
	f.StringVar(&rewriteStyle, "style", "formal", "target style, e.g. formal, casual, concise")
	f.StringVar(&rewriteIntensity, "intensity", "medium", "light, medium or heavy")
	f.BoolVar(&rewriteSegment, "segment", false, "rewrite segment by segment")
	f.IntVar(&rewriteMaxLength, "max-length", domain.DefaultMaxSegmentLength, "maximum characters per segment")
	f.BoolVar(&rewriteApply, "apply", false, "write the result to the buffer")

	nlpCmd.AddCommand(nlpEntitiesCmd)
	nlpCmd.AddCommand(nlpSentimentCmd)
	nlpCmd.AddCommand(nlpSyntaxCmd)
	nlpCmd.AddCommand(nlpRewriteCmd)
	nlpCmd.AddCommand(nlpCapabilitiesCmd)
	rootCmd.AddCommand(nlpCmd)
}

func runNLPEntities(cmd *cobra.Command, _ []string) error {
	if nlpService == nil {
		return errNotConfigured
	}

	entities, err := nlpService.Entities(cmd.Context(), domain.EntityOptions{
		Method:      entityMethod,
		Deduplicate: entityDedupe,
	})
	if err != nil {
		return fmt.Errorf("entities failed: %w", err)
	}

	if nlpJSON {
		return printJSON(cmd, entities)
	}
	if len(entities) == 0 {
		cmd.Println("No entities found.")
		return nil
	}
	for _, e := range entities {
		cmd.Printf("  %-12s %s (%d-%d, %.2f)\n", e.Label, e.Text, e.Start, e.End, e.Confidence)
	}
	return nil
}

func runNLPSentiment(cmd *cobra.Command, _ []string) error {
	if nlpService == nil {
		return errNotConfigured
	}

	result, err := nlpService.Sentiment(cmd.Context())
	if err != nil {
		return fmt.Errorf("sentiment failed: %w", err)
	}

	if nlpJSON {
		return printJSON(cmd, result)
	}
	cmd.Printf("Sentiment: %s (score %.3f, confidence %.2f)\n", result.Label, result.Score, result.Confidence)
	if len(result.Scores) > 0 {
		keys := make([]string, 0, len(result.Scores))
		for k := range result.Scores {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("  %-10s %.3f\n", k, result.Scores[k])
		}
	}
	return nil
}

func runNLPSyntax(cmd *cobra.Command, _ []string) error {
	if nlpService == nil {
		return errNotConfigured
	}

	result, err := nlpService.Syntax(cmd.Context())
	if err != nil {
		return fmt.Errorf("syntax failed: %w", err)
	}

	if nlpJSON {
		return printJSON(cmd, result)
	}
	for i, s := range result.Sentences {
		cmd.Printf("[%d] %s\n", i+1, s.Text)
		for _, tok := range s.Tokens {
			cmd.Printf("      %-16s %-6s %s\n", tok.Text, tok.POS, tok.DepRel)
		}
	}
	return nil
}

func runNLPRewrite(cmd *cobra.Command, _ []string) error {
	if nlpService == nil {
		return errNotConfigured
	}

	result, err := nlpService.Rewrite(cmd.Context(), domain.RewriteOptions{
		Style:            rewriteStyle,
		Intensity:        rewriteIntensity,
		SegmentMode:      rewriteSegment,
		MaxSegmentLength: rewriteMaxLength,
	})
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	if rewriteApply {
		if err := requireEditor(); err != nil {
			return err
		}
		if _, err := editorService.SetText(cmd.Context(), result.Text, services.ReasonRewrite); err != nil {
			return fmt.Errorf("apply rewrite: %w", err)
		}
	}

	if nlpJSON {
		return printJSON(cmd, result)
	}
	cmd.Print(result.Text)
	if !strings.HasSuffix(result.Text, "\n") {
		cmd.Println()
	}
	if rewriteApply {
		cmd.Printf("Buffer updated (%d segments, %s).\n", result.Segments, result.Model)
	}
	return nil
}

func runNLPCapabilities(cmd *cobra.Command, _ []string) error {
	if nlpService == nil {
		return errNotConfigured
	}

	caps, err := nlpService.Capabilities(cmd.Context())
	if err != nil {
		return fmt.Errorf("capabilities failed: %w", err)
	}

	if nlpJSON {
		return printJSON(cmd, caps)
	}
	features := []struct {
		name string
		ok   bool
	}{
		{"entities", caps.Entities},
		{"sentiment", caps.Sentiment},
		{"syntax", caps.Syntax},
		{"segmentation", caps.Segmentation},
		{"rewrite", caps.Rewrite},
	}
	for _, f := range features {
		mark := "no"
		if f.ok {
			mark = "yes"
		}
		cmd.Printf("  %-13s %s\n", f.name, mark)
	}
	if len(caps.Models) > 0 {
		cmd.Printf("  models        %s\n", strings.Join(caps.Models, ", "))
	}
	return nil
}
