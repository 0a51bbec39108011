package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/littletree-next/ltwfav/internal/favorites"
)

var updateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Update a favorite's fields",
	Long: `Update a favorite's fields.

Only the flags you pass are applied. A blank --title is ignored; --tag
replaces the whole tag list.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateTitle       string
	updateDescription string
	updateFolderID    string
	updateTags        []string
)

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&updateFolderID, "folder", "", "move the item to this folder")
	updateCmd.Flags().StringSliceVar(&updateTags, "tag", nil, "replacement tag (repeatable)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("update", err)
	}

	var in favorites.UpdateItemInput
	if cmd.Flags().Changed("title") {
		in.Title = &updateTitle
	}
	if cmd.Flags().Changed("description") {
		in.Description = &updateDescription
	}
	if cmd.Flags().Changed("folder") {
		in.FolderID = &updateFolderID
	}
	if cmd.Flags().Changed("tag") {
		in.Tags = updateTags
	}

	if !manager.UpdateItem(args[0], in) {
		return trackCLIError("update", notFoundErr("item", args[0]))
	}

	fmt.Printf("Updated item %s\n", args[0])
	return nil
}
