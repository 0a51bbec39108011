package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/littletree-next/ltwfav/internal/models"
)

var infoCmd = &cobra.Command{
	Use:   "info <item-id>",
	Short: "Show a favorite's full record",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("info", err)
	}

	item := manager.GetItem(args[0])
	if item == nil {
		return trackCLIError("info", notFoundErr("item", args[0]))
	}

	fmt.Println(item.Title)
	fmt.Println("──────────────────────────────────────────────────")
	fmt.Printf("  id:          %s\n", item.ID)
	fmt.Printf("  folder:      %s\n", item.FolderID)
	if item.Description != "" {
		fmt.Printf("  description: %s\n", item.Description)
	}
	if len(item.Tags) > 0 {
		fmt.Printf("  tags:        %s\n", strings.Join(item.Tags, ", "))
	}
	fmt.Printf("  source:      %s (%s)\n", item.Source.Type, item.Source.Identifier)
	if item.Source.URL != "" {
		fmt.Printf("  url:         %s\n", item.Source.URL)
	}
	if item.LocalPath != "" {
		fmt.Printf("  local path:  %s\n", item.LocalPath)
	}
	fmt.Printf("  created:     %s\n", formatEpoch(item.CreatedAt))
	fmt.Printf("  updated:     %s\n", formatEpoch(item.UpdatedAt))

	fmt.Printf("  localization: %s", item.Localization.Status)
	if item.Localization.LocalPath != "" {
		fmt.Printf(" (%s)", item.Localization.LocalPath)
	}
	fmt.Println()

	fmt.Printf("  ai:           %s", item.AI.Status)
	if item.AI.Status == models.AIStatusCompleted {
		fmt.Printf(" (tags: %s", strings.Join(item.AI.SuggestedTags, ", "))
		if item.AI.SuggestedFolderID != "" {
			fmt.Printf("; folder: %s", item.AI.SuggestedFolderID)
		}
		fmt.Print(")")
	}
	fmt.Println()

	return nil
}
