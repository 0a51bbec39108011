package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/littletree-next/ltwfav/internal/favorites"
	"github.com/littletree-next/ltwfav/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a local file to favorites",
	Long: `Add a local file to favorites.

The file itself serves as the localized copy. Re-adding the same file
updates the existing favorite instead of creating a duplicate.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addFolderID    string
	addTitle       string
	addDescription string
	addTags        []string
)

func init() {
	addCmd.Flags().StringVar(&addFolderID, "folder", "", "target folder id (default: the default folder)")
	addCmd.Flags().StringVar(&addTitle, "title", "", "display title (default: the file name)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "item description")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag to attach (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("add", err)
	}

	item, created, err := manager.AddLocalItem(favorites.AddLocalItemInput{
		Path:        args[0],
		FolderID:    addFolderID,
		Title:       addTitle,
		Description: addDescription,
		Tags:        addTags,
	})
	if err != nil {
		return trackCLIError("add", err)
	}

	telemetryClient.TrackItemAdded(models.SourceTypeLocal, created)

	if created {
		fmt.Printf("Added '%s' (id: %s)\n", item.Title, item.ID)
	} else {
		fmt.Printf("Updated existing favorite '%s' (id: %s)\n", item.Title, item.ID)
	}
	return nil
}
