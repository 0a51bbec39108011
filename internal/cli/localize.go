package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var localizeCmd = &cobra.Command{
	Use:   "localize <item-id> <source-path>",
	Short: "Copy an item's asset into the managed localization store",
	Long: `Copy an item's asset into the managed localization store.

The file is copied into a per-folder directory next to the favorites
store and the localized path is recorded on the item.`,
	Args: cobra.ExactArgs(2),
	RunE: runLocalize,
}

func runLocalize(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("localize", err)
	}

	localPath := manager.LocalizeItemFromFile(args[0], args[1])
	success := localPath != ""
	telemetryClient.TrackItemLocalized(success)

	if !success {
		return trackCLIError("localize", fmt.Errorf("failed to localize item %s from %s", args[0], args[1]))
	}

	fmt.Printf("Asset copied to %s\n", localPath)
	return nil
}
