package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/littletree-next/ltwfav/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites, most recently updated first",
	Long: `List favorites, most recently updated first.

Use --folder to scope the list to one folder.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFolderID string

func init() {
	listCmd.Flags().StringVar(&listFolderID, "folder", "", "scope to one folder id")
}

func runList(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("list", err)
	}

	items := manager.ListItems(listFolderID)

	scope := listFolderID
	if scope == "" {
		scope = models.AllFoldersSentinel
	}
	telemetryClient.TrackItemsListed(scope, len(items))

	if len(items) == 0 {
		fmt.Println("No favorites yet.")
		fmt.Println("\nUse 'ltwfav add <path>' to favorite a local file.")
		return nil
	}

	fmt.Printf("FAVORITES (%d items)\n", len(items))
	fmt.Println("──────────────────────────────────────────────────")

	for _, item := range items {
		fmt.Printf("  %s\n", item.Title)
		fmt.Printf("    id: %s | folder: %s | updated: %s\n", item.ID, item.FolderID, formatEpoch(item.UpdatedAt))
		if len(item.Tags) > 0 {
			fmt.Printf("    tags: %s\n", strings.Join(item.Tags, ", "))
		}
	}

	return nil
}
