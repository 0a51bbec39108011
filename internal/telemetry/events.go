package telemetry

import (
	"runtime"

	"github.com/littletree-next/ltwfav/pkg/version"
)

// Event names - app lifecycle and CLI
const (
	EventAppStarted         = "app_started"
	EventAppExited          = "app_exited"
	EventCLICommandExecuted = "cli_command_executed"
	EventCLIErrorOccurred   = "cli_error_occurred"
)

// Event names - favorites
const (
	EventFolderCreated   = "folder_created"
	EventFolderDeleted   = "folder_deleted"
	EventItemAdded       = "item_added"
	EventItemRemoved     = "item_removed"
	EventItemsListed     = "items_listed"
	EventItemLocalized   = "item_localized"
	EventItemClassified  = "item_classified"
	EventPackageExported = "package_exported"
	EventPackageImported = "package_imported"
)

// Event names - MCP
const (
	EventMCPToolCalled = "mcp_tool_called"
)

// Version is set at compile time via ldflags.
var Version string

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":        runtime.GOOS,
		"arch":      runtime.GOARCH,
		"version":   Version,
		"dev_build": version.IsDevBuild(),
	}
}

// --- App lifecycle ---

// TrackAppStarted tracks application startup.
func (c *posthogClient) TrackAppStarted(mode string, folderCount, itemCount int) {
	props := baseProperties()
	props["mode"] = mode
	props["folder_count"] = folderCount
	props["item_count"] = itemCount
	c.Track(EventAppStarted, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	c.Track(EventAppExited, props)
}

// --- CLI ---

// TrackCLICommandExecuted tracks CLI command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["execution_duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks CLI errors.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// --- Favorites ---

// TrackFolderCreated tracks folder creation.
func (c *posthogClient) TrackFolderCreated(folderCount int) {
	props := baseProperties()
	props["folder_count"] = folderCount
	c.Track(EventFolderCreated, props)
}

// TrackFolderDeleted tracks folder deletion.
func (c *posthogClient) TrackFolderDeleted(itemsReassigned int) {
	props := baseProperties()
	props["items_reassigned"] = itemsReassigned
	c.Track(EventFolderDeleted, props)
}

// TrackItemAdded tracks a favorite add or dedup update.
func (c *posthogClient) TrackItemAdded(sourceType string, created bool) {
	props := baseProperties()
	props["source_type"] = sourceType
	props["created"] = created
	c.Track(EventItemAdded, props)
}

// TrackItemRemoved tracks favorite removal.
func (c *posthogClient) TrackItemRemoved(sourceType string) {
	props := baseProperties()
	props["source_type"] = sourceType
	c.Track(EventItemRemoved, props)
}

// TrackItemsListed tracks listing of favorites.
func (c *posthogClient) TrackItemsListed(folderScope string, count int) {
	props := baseProperties()
	props["folder_scope"] = folderScope
	props["item_count"] = count
	c.Track(EventItemsListed, props)
}

// TrackItemLocalized tracks asset localization outcomes.
func (c *posthogClient) TrackItemLocalized(success bool) {
	props := baseProperties()
	props["success"] = success
	c.Track(EventItemLocalized, props)
}

// TrackItemClassified tracks AI classification outcomes.
func (c *posthogClient) TrackItemClassified(provider string, success bool, durationMs int64) {
	props := baseProperties()
	props["provider"] = provider
	props["success"] = success
	props["duration_ms"] = durationMs
	c.Track(EventItemClassified, props)
}

// TrackPackageExported tracks package exports.
func (c *posthogClient) TrackPackageExported(folderCount, itemCount int, includeAssets bool) {
	props := baseProperties()
	props["folder_count"] = folderCount
	props["item_count"] = itemCount
	props["include_assets"] = includeAssets
	c.Track(EventPackageExported, props)
}

// TrackPackageImported tracks package imports.
func (c *posthogClient) TrackPackageImported(foldersCreated, itemsImported int) {
	props := baseProperties()
	props["folders_created"] = foldersCreated
	props["items_imported"] = itemsImported
	c.Track(EventPackageImported, props)
}

// --- MCP ---

// TrackMCPToolCalled tracks MCP tool invocations.
func (c *posthogClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {
	props := baseProperties()
	props["tool_name"] = toolName
	props["duration_ms"] = durationMs
	props["success"] = success
	c.Track(EventMCPToolCalled, props)
}

// --- noopClient implementations (no-ops) ---

func (c *noopClient) TrackAppStarted(mode string, folderCount, itemCount int)                     {}
func (c *noopClient) TrackAppExited(mode string, sessionDurationMs int64)                         {}
func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {}
func (c *noopClient) TrackCLIError(commandName, errorType string)                                 {}
func (c *noopClient) TrackFolderCreated(folderCount int)                                          {}
func (c *noopClient) TrackFolderDeleted(itemsReassigned int)                                      {}
func (c *noopClient) TrackItemAdded(sourceType string, created bool)                              {}
func (c *noopClient) TrackItemRemoved(sourceType string)                                          {}
func (c *noopClient) TrackItemsListed(folderScope string, count int)                              {}
func (c *noopClient) TrackItemLocalized(success bool)                                             {}
func (c *noopClient) TrackItemClassified(provider string, success bool, durationMs int64)         {}
func (c *noopClient) TrackPackageExported(folderCount, itemCount int, includeAssets bool)         {}
func (c *noopClient) TrackPackageImported(foldersCreated, itemsImported int)                      {}
func (c *noopClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool)          {}
