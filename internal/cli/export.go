package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/littletree-next/ltwfav/internal/config"
	"github.com/littletree-next/ltwfav/internal/favorites"
)

var exportCmd = &cobra.Command{
	Use:   "export [target-path]",
	Short: "Export folders to a .ltwfav package",
	Long: `Export folders and their items to a .ltwfav package.

The package is a zip holding a favorites.json manifest and, optionally,
the localized asset files. Without a target path the package is written
to the exports directory under the data dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportFolderIDs []string
	exportItemIDs   []string
	exportNoAssets  bool
)

func init() {
	exportCmd.Flags().StringSliceVar(&exportFolderIDs, "folder", nil, "folder id to export (repeatable; default: all folders)")
	exportCmd.Flags().StringSliceVar(&exportItemIDs, "item", nil, "export specific item ids instead of whole folders (repeatable)")
	exportCmd.Flags().BoolVar(&exportNoAssets, "no-assets", false, "skip bundling localized asset files")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("export", fmt.Errorf("load config: %w", err))
	}
	paths := config.GetPaths(cfg)

	manager, err := openManager()
	if err != nil {
		return trackCLIError("export", err)
	}

	target := paths.Exports
	if len(args) > 0 {
		target = args[0]
	}

	var result *favorites.ExportResult
	if len(exportItemIDs) > 0 {
		result, err = manager.ExportItems(target, exportItemIDs, !exportNoAssets)
	} else {
		result, err = manager.ExportFolders(target, exportFolderIDs, !exportNoAssets)
	}
	if err != nil {
		return trackCLIError("export", err)
	}

	telemetryClient.TrackPackageExported(result.FolderCount, result.ItemCount, !exportNoAssets)

	packagePath := result.PackagePath
	abs, absErr := filepath.Abs(packagePath)
	if absErr == nil {
		packagePath = abs
	}
	fmt.Printf("Exported to %s\n", packagePath)
	return nil
}
