package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "ltwfav", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	var names []string
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "folders")
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "info")
	assert.Contains(t, names, "update")
	assert.Contains(t, names, "remove")
	assert.Contains(t, names, "localize")
	assert.Contains(t, names, "export")
	assert.Contains(t, names, "import")
	assert.Contains(t, names, "classify")
}

func TestFoldersCmd_HasSubcommands(t *testing.T) {
	commands := foldersCmd.Commands()

	var names []string
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "list")
	assert.Contains(t, names, "create")
	assert.Contains(t, names, "rename")
	assert.Contains(t, names, "delete")
	assert.Contains(t, names, "reorder")
}

func TestAddCmd_Flags(t *testing.T) {
	assert.NotNil(t, addCmd.Flags().Lookup("folder"))
	assert.NotNil(t, addCmd.Flags().Lookup("title"))
	assert.NotNil(t, addCmd.Flags().Lookup("description"))
	assert.NotNil(t, addCmd.Flags().Lookup("tag"))
}

func TestExportCmd_Flags(t *testing.T) {
	assert.NotNil(t, exportCmd.Flags().Lookup("folder"))
	assert.NotNil(t, exportCmd.Flags().Lookup("item"))
	assert.NotNil(t, exportCmd.Flags().Lookup("no-assets"))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"load config: boom", "config_error"},
		{"item not found: abc", "not_found_error"},
		{"permission denied", "permission_error"},
		{"parse manifest: unexpected end", "validation_error"},
		{"something odd", "unknown_error"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(errors.New(tt.msg)))
		})
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("Folder Not Found", "not found"))
	assert.False(t, containsAny("all good", "error"))
}

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "never", formatEpoch(0))
	assert.NotEqual(t, "never", formatEpoch(1700000000))
}
