package mcp

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/littletree-next/ltwfav/internal/favorites"
	"github.com/littletree-next/ltwfav/internal/telemetry"
)

// mockTelemetryClient is a mock telemetry client for testing.
type mockTelemetryClient struct {
	mu     sync.Mutex
	events []mockEvent
}

type mockEvent struct {
	name       string
	properties map[string]interface{}
}

func (m *mockTelemetryClient) Track(event string, properties map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, mockEvent{name: event, properties: properties})
}

func (m *mockTelemetryClient) Close()                {}
func (m *mockTelemetryClient) GetTrackingID() string { return "test-tracking-id" }

func (m *mockTelemetryClient) TrackAppStarted(mode string, folderCount, itemCount int) {}
func (m *mockTelemetryClient) TrackAppExited(mode string, sessionDurationMs int64)     {}
func (m *mockTelemetryClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
}
func (m *mockTelemetryClient) TrackCLIError(commandName, errorType string) {}
func (m *mockTelemetryClient) TrackFolderCreated(folderCount int) {
	m.Track(telemetry.EventFolderCreated, map[string]interface{}{"folder_count": folderCount})
}
func (m *mockTelemetryClient) TrackFolderDeleted(itemsReassigned int) {}
func (m *mockTelemetryClient) TrackItemAdded(sourceType string, created bool) {
	m.Track(telemetry.EventItemAdded, map[string]interface{}{"source_type": sourceType, "created": created})
}
func (m *mockTelemetryClient) TrackItemRemoved(sourceType string)                           {}
func (m *mockTelemetryClient) TrackItemsListed(folderScope string, count int)               {}
func (m *mockTelemetryClient) TrackItemLocalized(success bool)                              {}
func (m *mockTelemetryClient) TrackItemClassified(provider string, success bool, ms int64)  {}
func (m *mockTelemetryClient) TrackPackageExported(folderCount, itemCount int, assets bool) {}
func (m *mockTelemetryClient) TrackPackageImported(foldersCreated, itemsImported int)       {}
func (m *mockTelemetryClient) TrackMCPToolCalled(toolName string, durationMs int64, ok bool) {
	m.Track(telemetry.EventMCPToolCalled, map[string]interface{}{"tool_name": toolName, "success": ok})
}

// eventNames returns the names of recorded events in order.
func (m *mockTelemetryClient) eventNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.events))
	for _, e := range m.events {
		names = append(names, e.name)
	}
	return names
}

// setupTestServer creates an MCP server backed by a fresh manager in a temp dir.
func setupTestServer(t *testing.T, tc telemetry.Client) (*Server, *favorites.Manager) {
	t.Helper()

	manager := favorites.NewManager(filepath.Join(t.TempDir(), "favorites.json"))
	return NewServer(manager, tc), manager
}

func TestNewServer(t *testing.T) {
	server, manager := setupTestServer(t, nil)

	assert.NotNil(t, server)
	assert.NotNil(t, server.server)
	assert.Same(t, manager, server.manager)
}

func TestParseItemURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		wantID  string
		wantErr bool
	}{
		{"valid item URI", "ltwfav://item/abc123", "abc123", false},
		{"empty id", "ltwfav://item/", "", true},
		{"wrong scheme", "bookmarks://item/abc", "", true},
		{"folders URI is not an item", "ltwfav://folders", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseItemURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
