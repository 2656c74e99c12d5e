package cmd

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/hiremind/hiremind-cli/internal/validation"
	"github.com/hiremind/hiremind-cli/internal/workflow"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	promptYes = "Yes"
	promptNo  = "No"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a resume and preview the extracted candidate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runUpload(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation before uploading")
}

func runUpload(cmd *cobra.Command, path string) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client := newClient(config, logger)

	maxSizeMB := 0
	if config.Upload != nil {
		maxSizeMB = config.Upload.MaxSizeMB
	}

	flow := workflow.NewUploadFlow(client, logger, maxSizeMB)

	info, err := fileInfoFor(path)
	if err != nil {
		logger.Fatal("reading the file", zap.Error(err))
	}

	if err := flow.SelectFile(info); err != nil {
		logger.Fatal("file rejected", zap.Error(err), zap.String("file", path))
	}

	// The upload is never fired automatically on selection; the user has to
	// act.
	if cmd.Flag("yes").Value.String() == "false" {
		prompt := promptui.Select{
			Label: fmt.Sprintf("Upload %s (%d bytes)?", info.Name, info.Size),
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

	f, err := os.Open(path)
	if err != nil {
		logger.Fatal("opening the file", zap.Error(err))
	}
	defer f.Close()

	result, err := flow.Upload(cmd.Context(), f)
	if err != nil {
		logger.Fatal("uploading the resume",
			zap.Error(err),
			zap.String("state", flow.State().String()),
			zap.String("hint", "the selected file is kept; rerun to retry"),
		)
	}

	logger.Info("resume uploaded",
		zap.String("candidate_id", result.CandidateID),
		zap.String("message", result.Message),
	)

	// do not bother error since the candidate was just deserialized
	pretty, _ := json.MarshalIndent(result.Candidate, "", "  ")
	fmt.Println(string(pretty))
}

// fileInfoFor stats the file and derives the declared MIME type from the
// extension, the same signal a browser would provide.
func fileInfoFor(path string) (validation.FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return validation.FileInfo{}, err
	}

	return validation.FileInfo{
		Name:     filepath.Base(path),
		MIMEType: mime.TypeByExtension(filepath.Ext(path)),
		Size:     stat.Size(),
	}, nil
}
