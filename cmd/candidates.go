package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/hiremind/hiremind-cli/internal/hiremind"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Browse the candidate directory",
}

var candidatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all candidates",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		client := mustClient(logger)

		candidates, err := client.GetAllCandidates(cmd.Context())
		if err != nil {
			logger.Fatal("getting candidates", zap.Error(err))
		}

		logger.Info("getting candidates", zap.Int("count", len(candidates)))
		renderCandidates(candidates)
	},
}

var candidatesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single candidate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		client := mustClient(logger)

		candidate, err := client.GetCandidateByID(cmd.Context(), args[0])
		if err != nil {
			logger.Fatal("getting candidate", zap.Error(err), zap.String("candidate_id", args[0]))
		}

		pretty, _ := json.MarshalIndent(candidate, "", "  ")
		fmt.Println(string(pretty))
	},
}

var candidatesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a candidate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		client := mustClient(logger)

		if cmd.Flag("yes").Value.String() == "false" {
			prompt := promptui.Select{
				Label: fmt.Sprintf("Delete candidate %s?", args[0]),
				Items: []string{promptYes, promptNo},
			}

			_, answer, err := prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}

			if answer != promptYes {
				logger.Info("exiting", zap.String("reason", "got no from prompt"))
				return
			}
		}

		if err := client.DeleteCandidate(cmd.Context(), args[0]); err != nil {
			logger.Fatal("deleting candidate", zap.Error(err), zap.String("candidate_id", args[0]))
		}

		logger.Info("candidate deleted", zap.String("candidate_id", args[0]))
	},
}

var candidatesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate candidate statistics",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		client := mustClient(logger)

		stats, err := client.GetCandidateStats(cmd.Context())
		if err != nil {
			logger.Fatal("getting candidate stats", zap.Error(err))
		}

		fmt.Printf("total:       %d\n", stats.Total)
		fmt.Printf("this week:   %d\n", stats.ThisWeek)
		fmt.Printf("this month:  %d\n", stats.ThisMonth)
		fmt.Printf("avg score:   %.2f\n", stats.AvgMatchScore)
	},
}

var candidatesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search candidates by name or skill",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		client := mustClient(logger)

		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		// A blank query is the same as listing everything; no results is
		// not an error.
		candidates, err := client.SearchCandidates(cmd.Context(), query)
		if err != nil {
			logger.Fatal("searching candidates", zap.Error(err))
		}

		logger.Info("searching candidates",
			zap.String("query", query),
			zap.Int("count", len(candidates)),
		)
		renderCandidates(candidates)
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)

	candidatesCmd.AddCommand(candidatesListCmd)
	candidatesCmd.AddCommand(candidatesGetCmd)
	candidatesCmd.AddCommand(candidatesDeleteCmd)
	candidatesCmd.AddCommand(candidatesStatsCmd)
	candidatesCmd.AddCommand(candidatesSearchCmd)

	candidatesDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func mustClient(logger *zap.Logger) *hiremind.Client {
	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	return newClient(config, logger)
}

func renderCandidates(candidates []*hiremind.Candidate) {
	if len(candidates) == 0 {
		fmt.Println("no candidates")
		return
	}

	for _, c := range candidates {
		line := fmt.Sprintf("%s  %s", c.ID, c.Name)
		if c.Email != "" {
			line += "  <" + c.Email + ">"
		}
		if c.MatchScore != nil {
			line += fmt.Sprintf("  score=%.2f", *c.MatchScore)
		}
		fmt.Println(line)
	}
}
