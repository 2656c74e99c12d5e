package cmd

import (
	"fmt"
	"strings"

	"github.com/hiremind/hiremind-cli/internal/hiremind"
	"github.com/hiremind/hiremind-cli/internal/validation"
	"github.com/hiremind/hiremind-cli/internal/workflow"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match stored candidates against the job description from the config",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().Int("top-n", 0, "maximum number of results (overrides match.top-n from the config)")
	matchCmd.Flags().Bool("explain", false, "fetch the explanation for the top result")
}

func runMatch(cmd *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config.Match == nil {
		logger.Fatal("a match section is required in the configuration to build a job description")
	}

	jd := config.Match.JobDescription()

	// Advisory only: an incomplete form is logged but still submitted, the
	// service applies its own rules.
	if res := validation.ValidateJobDescription(jd); !res.Valid {
		logger.Warn("job description looks incomplete",
			zap.Strings("problems", res.Errors),
		)
	}

	client := newClient(config, logger)
	flow := workflow.NewMatchFlow(client, logger)

	if err := flow.SetJobDescription(jd); err != nil {
		logger.Fatal("setting the job description", zap.Error(err))
	}

	topN := config.Match.TopN
	if n, _ := cmd.Flags().GetInt("top-n"); n > 0 {
		topN = n
	}

	logger.Info("starting the matching", zap.String("title", jd.Title))

	results, err := flow.Submit(cmd.Context(), topN)
	if err != nil {
		logger.Fatal("matching failed",
			zap.Error(err),
			zap.String("hint", "the job description is kept; rerun to resubmit"),
		)
	}

	if flow.State() == workflow.MatchEmpty {
		logger.Info("no candidates matched this job description",
			zap.String("hint", "try uploading more resumes first"),
		)
		return
	}

	renderResults(results)

	if explain, _ := cmd.Flags().GetBool("explain"); explain {
		top := results[0]

		explanation, err := client.ExplainMatch(cmd.Context(), top.Candidate.ID, jd)
		if err != nil {
			logger.Fatal("getting the match explanation", zap.Error(err))
		}

		fmt.Printf("\nWhy %s ranks first:\n%s\n", top.Candidate.Name, explanation)
	}
}

// renderResults prints the ranked list in server-provided order, 1-indexed.
func renderResults(results []*hiremind.MatchResult) {
	fmt.Printf("Top matches (%d), sorted by match score:\n\n", len(results))

	for i, result := range results {
		bucket := workflow.BucketForScore(result.MatchScore)

		fmt.Printf("%2d. %s — %.0f%% (%s)\n",
			i+1, result.Candidate.Name, result.MatchScore*100, bucket.Label())

		if len(result.MatchedSkills) > 0 {
			fmt.Printf("    matched: %s\n", strings.Join(result.MatchedSkills, ", "))
		}
		if len(result.MissingSkills) > 0 {
			fmt.Printf("    missing: %s\n", strings.Join(result.MissingSkills, ", "))
		}
		if result.Reasoning != "" {
			fmt.Printf("    %s\n", result.Reasoning)
		}

		fmt.Println()
	}
}
