package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/littletree-next/ltwfav/internal/models"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Manage favorite folders",
	Long: `Manage favorite folders.

Folders group favorites for display and export. The default folder always
exists and cannot be deleted.

Subcommands:
  list                 List folders in display order
  create [name]        Create a folder
  rename <id>          Rename a folder or change its description
  delete <id>          Delete a folder and move its items
  reorder <id>...      Set the folder display order`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var foldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List folders in display order",
	Args:  cobra.NoArgs,
	RunE:  runFoldersList,
}

var foldersCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a folder",
	Long:  `Create a folder. Without a name an untitled folder is created.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFoldersCreate,
}

var foldersRenameCmd = &cobra.Command{
	Use:   "rename <id>",
	Short: "Rename a folder or change its description",
	Args:  cobra.ExactArgs(1),
	RunE:  runFoldersRename,
}

var foldersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a folder and move its items to another folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFoldersDelete,
}

var foldersReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Set the folder display order",
	Long: `Set the folder display order.

Unknown ids are ignored. Folders left out keep their relative order after
the listed ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFoldersReorder,
}

var (
	folderDescription string
	folderNewName     string
	folderMoveTo      string
)

func init() {
	foldersCreateCmd.Flags().StringVar(&folderDescription, "description", "", "folder description")
	foldersRenameCmd.Flags().StringVar(&folderNewName, "name", "", "new folder name")
	foldersRenameCmd.Flags().StringVar(&folderDescription, "description", "", "new folder description")
	foldersDeleteCmd.Flags().StringVar(&folderMoveTo, "move-to", "", "folder to receive the deleted folder's items (default: the default folder)")

	foldersCmd.AddCommand(foldersListCmd)
	foldersCmd.AddCommand(foldersCreateCmd)
	foldersCmd.AddCommand(foldersRenameCmd)
	foldersCmd.AddCommand(foldersDeleteCmd)
	foldersCmd.AddCommand(foldersReorderCmd)
}

func runFoldersList(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("folders list", err)
	}

	folders := manager.ListFolders()
	counts := map[string]int{}
	for _, item := range manager.ListItems(models.AllFoldersSentinel) {
		counts[item.FolderID]++
	}

	fmt.Printf("FOLDERS (%d)\n", len(folders))
	fmt.Println("──────────────────────────────────────────────────")
	for _, folder := range folders {
		fmt.Printf("  %s\n", folder.Name)
		fmt.Printf("    id: %s | %d item(s) | updated: %s\n", folder.ID, counts[folder.ID], formatEpoch(folder.UpdatedAt))
		if folder.Description != "" {
			fmt.Printf("    %s\n", folder.Description)
		}
	}

	return nil
}

func runFoldersCreate(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("folders create", err)
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	folder := manager.CreateFolder(name, folderDescription, nil)
	telemetryClient.TrackFolderCreated(len(manager.ListFolders()))

	fmt.Printf("Created folder '%s' (id: %s)\n", folder.Name, folder.ID)
	return nil
}

func runFoldersRename(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("folders rename", err)
	}

	var name, description *string
	if cmd.Flags().Changed("name") {
		name = &folderNewName
	}
	if cmd.Flags().Changed("description") {
		description = &folderDescription
	}
	if name == nil && description == nil {
		return trackCLIError("folders rename", fmt.Errorf("nothing to change: pass --name and/or --description"))
	}

	if !manager.RenameFolder(args[0], name, description) {
		return trackCLIError("folders rename", notFoundErr("folder", args[0]))
	}

	fmt.Printf("Updated folder %s\n", args[0])
	return nil
}

func runFoldersDelete(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("folders delete", err)
	}

	folderID := args[0]
	if folderID == models.DefaultFolderID {
		return trackCLIError("folders delete", fmt.Errorf("the default folder cannot be deleted"))
	}

	moved := len(manager.ListItems(folderID))
	if !manager.DeleteFolder(folderID, folderMoveTo) {
		return trackCLIError("folders delete", notFoundErr("folder", folderID))
	}

	telemetryClient.TrackFolderDeleted(moved)
	fmt.Printf("Deleted folder %s, moved %d item(s)\n", folderID, moved)
	return nil
}

func runFoldersReorder(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("folders reorder", err)
	}

	manager.ReorderFolders(args)

	fmt.Println("New order:")
	for i, folder := range manager.ListFolders() {
		fmt.Printf("  %d. %s (%s)\n", i+1, folder.Name, folder.ID)
	}
	return nil
}
