package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <package-path>",
	Short: "Import a .ltwfav package",
	Long: `Import a .ltwfav package or a previously exported directory.

Folders are merged with existing folders by name. Items are always added
as new entries; bundled assets are re-localized into the local store.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("import", err)
	}

	foldersCreated, itemsImported, err := manager.ImportFolders(args[0])
	if err != nil {
		return trackCLIError("import", err)
	}

	telemetryClient.TrackPackageImported(foldersCreated, itemsImported)

	fmt.Printf("Imported %d item(s), created %d folder(s)\n", itemsImported, foldersCreated)
	return nil
}
