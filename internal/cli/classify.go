package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/littletree-next/ltwfav/internal/classify"
	"github.com/littletree-next/ltwfav/internal/config"
	"github.com/littletree-next/ltwfav/internal/llm"
	"github.com/littletree-next/ltwfav/internal/models"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <item-id>",
	Short: "Suggest tags and a folder for a favorite using an LLM",
	Long: `Suggest tags and a folder for a favorite using an LLM.

Requires ANTHROPIC_API_KEY or OPENAI_API_KEY. Suggestions are stored on
the item's AI state; use 'ltwfav update' to apply them.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("classify", fmt.Errorf("load config: %w", err))
	}

	manager, err := openManager()
	if err != nil {
		return trackCLIError("classify", err)
	}

	item := manager.GetItem(args[0])
	if item == nil {
		return trackCLIError("classify", notFoundErr("item", args[0]))
	}

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return trackCLIError("classify", err)
	}

	manager.SetClassifier(classify.New(provider, manager, cfg.LLM.ClassifyRatePerMinute))

	start := time.Now()
	result := manager.MaybeClassifyItem(cmd.Context(), args[0])
	telemetryClient.TrackItemClassified(provider.Name(), result != nil, time.Since(start).Milliseconds())

	refreshed := manager.GetItem(args[0])
	if refreshed == nil {
		return trackCLIError("classify", notFoundErr("item", args[0]))
	}

	switch refreshed.AI.Status {
	case models.AIStatusCompleted:
		fmt.Printf("Suggested tags: %s\n", strings.Join(refreshed.AI.SuggestedTags, ", "))
		if refreshed.AI.SuggestedFolderID != "" {
			fmt.Printf("Suggested folder: %s\n", refreshed.AI.SuggestedFolderID)
		}
	case models.AIStatusFailed:
		fmt.Printf("Classification failed: %v\n", refreshed.AI.Metadata["error"])
	default:
		fmt.Println("The classifier had no suggestion for this item.")
	}

	return nil
}
