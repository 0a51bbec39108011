package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/littletree-next/ltwfav/internal/favorites"
	"github.com/littletree-next/ltwfav/internal/models"
)

// parseString extracts an optional string argument.
func parseString(arguments map[string]interface{}, key string) string {
	if v, ok := arguments[key].(string); ok {
		return v
	}
	return ""
}

// parseStringArray extracts an optional array-of-strings argument.
func parseStringArray(arguments map[string]interface{}, key string) []string {
	raw, ok := arguments[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// trackToolCall is a helper to track MCP tool invocations.
func (s *Server) trackToolCall(toolName string, start time.Time, success bool) {
	if s.telemetry != nil {
		durationMs := time.Since(start).Milliseconds()
		s.telemetry.TrackMCPToolCalled(toolName, durationMs, success)
	}
}

// FolderResponse represents a folder in MCP tool responses.
type FolderResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Order       int     `json:"order"`
	ItemCount   int     `json:"item_count"`
	CreatedAt   float64 `json:"created_at"`
	UpdatedAt   float64 `json:"updated_at"`
}

// OpResult represents the outcome of a mutating operation.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) toFolderResponse(folder *models.FavoriteFolder, itemCount int) FolderResponse {
	return FolderResponse{
		ID:          folder.ID,
		Name:        folder.Name,
		Description: folder.Description,
		Order:       folder.Order,
		ItemCount:   itemCount,
		CreatedAt:   folder.CreatedAt,
		UpdatedAt:   folder.UpdatedAt,
	}
}

func (s *Server) folderResponses() []FolderResponse {
	counts := map[string]int{}
	for _, item := range s.manager.ListItems(models.AllFoldersSentinel) {
		counts[item.FolderID]++
	}

	folders := s.manager.ListFolders()
	results := make([]FolderResponse, 0, len(folders))
	for _, folder := range folders {
		results = append(results, s.toFolderResponse(folder, counts[folder.ID]))
	}
	return results
}

func toolResultJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleListFolders handles the ltwfav_list_folders tool.
func (s *Server) handleListFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	s.trackToolCall("ltwfav_list_folders", start, true)
	return toolResultJSON(s.folderResponses())
}

// handleCreateFolder handles the ltwfav_create_folder tool.
func (s *Server) handleCreateFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	name := parseString(req.Params.Arguments, "name")
	description := parseString(req.Params.Arguments, "description")

	folder := s.manager.CreateFolder(name, description, nil)

	if s.telemetry != nil {
		s.telemetry.TrackFolderCreated(len(s.manager.ListFolders()))
	}

	s.trackToolCall("ltwfav_create_folder", start, true)
	return toolResultJSON(s.toFolderResponse(folder, 0))
}

// handleRenameFolder handles the ltwfav_rename_folder tool.
func (s *Server) handleRenameFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	folderID := parseString(req.Params.Arguments, "folder_id")
	if folderID == "" {
		s.trackToolCall("ltwfav_rename_folder", start, false)
		return mcp.NewToolResultError("folder_id parameter is required"), nil
	}

	var name, description *string
	if v, ok := req.Params.Arguments["name"].(string); ok {
		name = &v
	}
	if v, ok := req.Params.Arguments["description"].(string); ok {
		description = &v
	}

	if !s.manager.RenameFolder(folderID, name, description) {
		s.trackToolCall("ltwfav_rename_folder", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("folder not found: %s", folderID)), nil
	}

	s.trackToolCall("ltwfav_rename_folder", start, true)
	return toolResultJSON(OpResult{Success: true, Message: fmt.Sprintf("Folder '%s' updated", folderID)})
}

// handleDeleteFolder handles the ltwfav_delete_folder tool.
func (s *Server) handleDeleteFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	folderID := parseString(req.Params.Arguments, "folder_id")
	if folderID == "" {
		s.trackToolCall("ltwfav_delete_folder", start, false)
		return mcp.NewToolResultError("folder_id parameter is required"), nil
	}

	moveTo := parseString(req.Params.Arguments, "move_items_to")
	moved := len(s.manager.ListItems(folderID))

	if !s.manager.DeleteFolder(folderID, moveTo) {
		s.trackToolCall("ltwfav_delete_folder", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("cannot delete folder: %s", folderID)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackFolderDeleted(moved)
	}

	s.trackToolCall("ltwfav_delete_folder", start, true)
	return toolResultJSON(OpResult{
		Success: true,
		Message: fmt.Sprintf("Folder '%s' deleted, %d item(s) moved", folderID, moved),
	})
}

// handleReorderFolders handles the ltwfav_reorder_folders tool.
func (s *Server) handleReorderFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	ids := parseStringArray(req.Params.Arguments, "folder_ids")
	if len(ids) == 0 {
		s.trackToolCall("ltwfav_reorder_folders", start, false)
		return mcp.NewToolResultError("folder_ids parameter is required"), nil
	}

	s.manager.ReorderFolders(ids)

	s.trackToolCall("ltwfav_reorder_folders", start, true)
	return toolResultJSON(s.folderResponses())
}

// handleListItems handles the ltwfav_list_items tool.
func (s *Server) handleListItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	folderID := parseString(req.Params.Arguments, "folder_id")
	items := s.manager.ListItems(folderID)

	if s.telemetry != nil {
		scope := folderID
		if scope == "" {
			scope = models.AllFoldersSentinel
		}
		s.telemetry.TrackItemsListed(scope, len(items))
	}

	s.trackToolCall("ltwfav_list_items", start, true)
	return toolResultJSON(items)
}

// handleGetItem handles the ltwfav_get_item tool.
func (s *Server) handleGetItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	itemID := parseString(req.Params.Arguments, "item_id")
	if itemID == "" {
		s.trackToolCall("ltwfav_get_item", start, false)
		return mcp.NewToolResultError("item_id parameter is required"), nil
	}

	item := s.manager.GetItem(itemID)
	if item == nil {
		s.trackToolCall("ltwfav_get_item", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("item not found: %s", itemID)), nil
	}

	s.trackToolCall("ltwfav_get_item", start, true)
	return toolResultJSON(item)
}

// handleAddLocalItem handles the ltwfav_add_local_item tool.
func (s *Server) handleAddLocalItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	path := parseString(req.Params.Arguments, "path")
	if path == "" {
		s.trackToolCall("ltwfav_add_local_item", start, false)
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	item, created, err := s.manager.AddLocalItem(favorites.AddLocalItemInput{
		Path:        path,
		FolderID:    parseString(req.Params.Arguments, "folder_id"),
		Title:       parseString(req.Params.Arguments, "title"),
		Description: parseString(req.Params.Arguments, "description"),
		Tags:        parseStringArray(req.Params.Arguments, "tags"),
	})
	if err != nil {
		s.trackToolCall("ltwfav_add_local_item", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to add item: %v", err)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackItemAdded(models.SourceTypeLocal, created)
	}

	s.trackToolCall("ltwfav_add_local_item", start, true)
	return toolResultJSON(item)
}

// handleUpdateItem handles the ltwfav_update_item tool.
func (s *Server) handleUpdateItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	itemID := parseString(req.Params.Arguments, "item_id")
	if itemID == "" {
		s.trackToolCall("ltwfav_update_item", start, false)
		return mcp.NewToolResultError("item_id parameter is required"), nil
	}

	var in favorites.UpdateItemInput
	if v, ok := req.Params.Arguments["title"].(string); ok {
		in.Title = &v
	}
	if v, ok := req.Params.Arguments["description"].(string); ok {
		in.Description = &v
	}
	if v, ok := req.Params.Arguments["folder_id"].(string); ok && v != "" {
		in.FolderID = &v
	}
	in.Tags = parseStringArray(req.Params.Arguments, "tags")

	if !s.manager.UpdateItem(itemID, in) {
		s.trackToolCall("ltwfav_update_item", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("item not found: %s", itemID)), nil
	}

	s.trackToolCall("ltwfav_update_item", start, true)
	return toolResultJSON(s.manager.GetItem(itemID))
}

// handleRemoveItem handles the ltwfav_remove_item tool.
func (s *Server) handleRemoveItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	itemID := parseString(req.Params.Arguments, "item_id")
	if itemID == "" {
		s.trackToolCall("ltwfav_remove_item", start, false)
		return mcp.NewToolResultError("item_id parameter is required"), nil
	}

	item := s.manager.GetItem(itemID)
	if !s.manager.RemoveItem(itemID) {
		s.trackToolCall("ltwfav_remove_item", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("item not found: %s", itemID)), nil
	}

	if s.telemetry != nil && item != nil {
		s.telemetry.TrackItemRemoved(item.Source.Type)
	}

	s.trackToolCall("ltwfav_remove_item", start, true)
	return toolResultJSON(OpResult{Success: true, Message: fmt.Sprintf("Item '%s' removed", itemID)})
}

// handleLocalizeItem handles the ltwfav_localize_item tool.
func (s *Server) handleLocalizeItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	itemID := parseString(req.Params.Arguments, "item_id")
	sourcePath := parseString(req.Params.Arguments, "source_path")
	if itemID == "" || sourcePath == "" {
		s.trackToolCall("ltwfav_localize_item", start, false)
		return mcp.NewToolResultError("item_id and source_path parameters are required"), nil
	}

	localPath := s.manager.LocalizeItemFromFile(itemID, sourcePath)
	success := localPath != ""

	if s.telemetry != nil {
		s.telemetry.TrackItemLocalized(success)
	}

	if !success {
		s.trackToolCall("ltwfav_localize_item", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to localize item %s from %s", itemID, sourcePath)), nil
	}

	s.trackToolCall("ltwfav_localize_item", start, true)
	return toolResultJSON(OpResult{Success: true, Message: fmt.Sprintf("Asset copied to %s", localPath)})
}

// handleExport handles the ltwfav_export tool.
func (s *Server) handleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	targetPath := parseString(req.Params.Arguments, "target_path")
	if targetPath == "" {
		s.trackToolCall("ltwfav_export", start, false)
		return mcp.NewToolResultError("target_path parameter is required"), nil
	}

	folderIDs := parseStringArray(req.Params.Arguments, "folder_ids")

	includeAssets := true
	if v, ok := req.Params.Arguments["include_assets"].(bool); ok {
		includeAssets = v
	}

	result, err := s.manager.ExportFolders(targetPath, folderIDs, includeAssets)
	if err != nil {
		s.trackToolCall("ltwfav_export", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackPackageExported(result.FolderCount, result.ItemCount, includeAssets)
	}

	s.trackToolCall("ltwfav_export", start, true)
	return toolResultJSON(OpResult{Success: true, Message: fmt.Sprintf("Exported to %s", result.PackagePath)})
}

// handleImport handles the ltwfav_import tool.
func (s *Server) handleImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	sourcePath := parseString(req.Params.Arguments, "source_path")
	if sourcePath == "" {
		s.trackToolCall("ltwfav_import", start, false)
		return mcp.NewToolResultError("source_path parameter is required"), nil
	}

	foldersCreated, itemsImported, err := s.manager.ImportFolders(sourcePath)
	if err != nil {
		s.trackToolCall("ltwfav_import", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("import failed: %v", err)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackPackageImported(foldersCreated, itemsImported)
	}

	s.trackToolCall("ltwfav_import", start, true)
	return toolResultJSON(OpResult{
		Success: true,
		Message: fmt.Sprintf("Imported %d item(s), created %d folder(s)", itemsImported, foldersCreated),
	})
}

// handleClassifyItem handles the ltwfav_classify_item tool.
func (s *Server) handleClassifyItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	itemID := parseString(req.Params.Arguments, "item_id")
	if itemID == "" {
		s.trackToolCall("ltwfav_classify_item", start, false)
		return mcp.NewToolResultError("item_id parameter is required"), nil
	}

	if s.manager.GetItem(itemID) == nil {
		s.trackToolCall("ltwfav_classify_item", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("item not found: %s", itemID)), nil
	}

	result := s.manager.MaybeClassifyItem(ctx, itemID)

	// Classifier failures are recorded on the item, not returned; report the
	// refreshed AI state either way.
	item := s.manager.GetItem(itemID)
	if item == nil {
		s.trackToolCall("ltwfav_classify_item", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("item not found: %s", itemID)), nil
	}

	s.trackToolCall("ltwfav_classify_item", start, result != nil)
	return toolResultJSON(item.AI)
}
