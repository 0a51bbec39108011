package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions for the ltwfav MCP server.

// listFoldersTool returns the ltwfav_list_folders tool definition.
func listFoldersTool() mcp.Tool {
	return mcp.NewTool("ltwfav_list_folders",
		mcp.WithDescription("List all favorite folders in display order, including item counts."),
	)
}

// createFolderTool returns the ltwfav_create_folder tool definition.
func createFolderTool() mcp.Tool {
	return mcp.NewTool("ltwfav_create_folder",
		mcp.WithDescription("Create a new favorite folder. A blank name yields an untitled folder."),
		mcp.WithString("name",
			mcp.Description("Folder display name"),
		),
		mcp.WithString("description",
			mcp.Description("Folder description"),
		),
	)
}

// renameFolderTool returns the ltwfav_rename_folder tool definition.
func renameFolderTool() mcp.Tool {
	return mcp.NewTool("ltwfav_rename_folder",
		mcp.WithDescription("Rename a folder and/or update its description. Omitted fields are left unchanged."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("The folder's unique identifier"),
		),
		mcp.WithString("name",
			mcp.Description("New folder name"),
		),
		mcp.WithString("description",
			mcp.Description("New folder description"),
		),
	)
}

// deleteFolderTool returns the ltwfav_delete_folder tool definition.
func deleteFolderTool() mcp.Tool {
	return mcp.NewTool("ltwfav_delete_folder",
		mcp.WithDescription("Delete a folder and move its items to another folder. The default folder cannot be deleted."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("The folder's unique identifier"),
		),
		mcp.WithString("move_items_to",
			mcp.Description("Folder to receive the deleted folder's items (default: the default folder)"),
		),
	)
}

// reorderFoldersTool returns the ltwfav_reorder_folders tool definition.
func reorderFoldersTool() mcp.Tool {
	return mcp.NewTool("ltwfav_reorder_folders",
		mcp.WithDescription("Set the display order of folders. Unknown ids are ignored; folders left out keep their relative order at the end."),
		mcp.WithArray("folder_ids",
			mcp.Required(),
			mcp.Description("Folder ids in the desired display order"),
		),
	)
}

// listItemsTool returns the ltwfav_list_items tool definition.
func listItemsTool() mcp.Tool {
	return mcp.NewTool("ltwfav_list_items",
		mcp.WithDescription("List favorite items, most recently updated first."),
		mcp.WithString("folder_id",
			mcp.Description("Scope to one folder; empty or \"__all__\" lists every item"),
		),
	)
}

// getItemTool returns the ltwfav_get_item tool definition.
func getItemTool() mcp.Tool {
	return mcp.NewTool("ltwfav_get_item",
		mcp.WithDescription("Get a favorite item's full record including source, AI and localization state."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The item's unique identifier"),
		),
	)
}

// addLocalItemTool returns the ltwfav_add_local_item tool definition.
func addLocalItemTool() mcp.Tool {
	return mcp.NewTool("ltwfav_add_local_item",
		mcp.WithDescription("Add a local file as a favorite. Re-adding the same file updates the existing entry instead of duplicating it."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the local file"),
		),
		mcp.WithString("folder_id",
			mcp.Description("Target folder (default: the default folder)"),
		),
		mcp.WithString("title",
			mcp.Description("Display title (default: the file name)"),
		),
		mcp.WithString("description",
			mcp.Description("Item description"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags to attach"),
		),
	)
}

// updateItemTool returns the ltwfav_update_item tool definition.
func updateItemTool() mcp.Tool {
	return mcp.NewTool("ltwfav_update_item",
		mcp.WithDescription("Update a favorite item's fields. Omitted fields are left unchanged; a blank title is ignored."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The item's unique identifier"),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("folder_id",
			mcp.Description("Move the item to this folder"),
		),
		mcp.WithArray("tags",
			mcp.Description("Replacement tag list"),
		),
	)
}

// removeItemTool returns the ltwfav_remove_item tool definition.
func removeItemTool() mcp.Tool {
	return mcp.NewTool("ltwfav_remove_item",
		mcp.WithDescription("Remove a favorite item from the collection."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The item's unique identifier"),
		),
	)
}

// localizeItemTool returns the ltwfav_localize_item tool definition.
func localizeItemTool() mcp.Tool {
	return mcp.NewTool("ltwfav_localize_item",
		mcp.WithDescription("Copy an item's asset into the managed localization store and record the localized path."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The item's unique identifier"),
		),
		mcp.WithString("source_path",
			mcp.Required(),
			mcp.Description("Path to the asset file to copy"),
		),
	)
}

// exportTool returns the ltwfav_export tool definition.
func exportTool() mcp.Tool {
	return mcp.NewTool("ltwfav_export",
		mcp.WithDescription("Export folders and their items to a .ltwfav package (zip with manifest and assets)."),
		mcp.WithString("target_path",
			mcp.Required(),
			mcp.Description("Destination file or directory for the package"),
		),
		mcp.WithArray("folder_ids",
			mcp.Description("Folders to export; empty or [\"__all__\"] exports everything"),
		),
		mcp.WithBoolean("include_assets",
			mcp.Description("Bundle localized asset files into the package (default: true)"),
		),
	)
}

// importTool returns the ltwfav_import tool definition.
func importTool() mcp.Tool {
	return mcp.NewTool("ltwfav_import",
		mcp.WithDescription("Import a .ltwfav package or exported directory. Folders are merged by name; items are always added as new entries."),
		mcp.WithString("source_path",
			mcp.Required(),
			mcp.Description("Path to the package file or directory"),
		),
	)
}

// classifyItemTool returns the ltwfav_classify_item tool definition.
func classifyItemTool() mcp.Tool {
	return mcp.NewTool("ltwfav_classify_item",
		mcp.WithDescription("Run AI classification on an item to suggest tags and a target folder. Requires a configured LLM provider."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The item's unique identifier"),
		),
	)
}
