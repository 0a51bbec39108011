package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove a favorite from the collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return trackCLIError("remove", err)
	}

	item := manager.GetItem(args[0])
	if item == nil || !manager.RemoveItem(args[0]) {
		return trackCLIError("remove", notFoundErr("item", args[0]))
	}

	telemetryClient.TrackItemRemoved(item.Source.Type)
	fmt.Printf("Removed '%s'\n", item.Title)
	return nil
}
