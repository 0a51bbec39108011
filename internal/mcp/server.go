// Package mcp provides the Model Context Protocol server for ltwfav.
//
// This package implements an MCP server that exposes the favorites
// collection to MCP-compatible clients. It reuses the internal/favorites
// manager to ensure consistent behavior with the CLI.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/littletree-next/ltwfav/internal/favorites"
	"github.com/littletree-next/ltwfav/internal/telemetry"
	"github.com/littletree-next/ltwfav/pkg/version"
)

// Server wraps the MCP server with favorites-specific functionality.
type Server struct {
	manager   *favorites.Manager
	server    *server.MCPServer
	telemetry telemetry.Client
}

// NewServer creates a new MCP server instance.
func NewServer(manager *favorites.Manager, tc telemetry.Client) *Server {
	s := &Server{
		manager:   manager,
		telemetry: tc,
	}

	s.server = server.NewMCPServer(
		"ltwfav",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Serve starts the MCP server over stdio.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// registerTools adds all favorites tools to the MCP server.
func (s *Server) registerTools() {
	// Folder tools
	s.server.AddTool(listFoldersTool(), s.handleListFolders)
	s.server.AddTool(createFolderTool(), s.handleCreateFolder)
	s.server.AddTool(renameFolderTool(), s.handleRenameFolder)
	s.server.AddTool(deleteFolderTool(), s.handleDeleteFolder)
	s.server.AddTool(reorderFoldersTool(), s.handleReorderFolders)

	// Item tools
	s.server.AddTool(listItemsTool(), s.handleListItems)
	s.server.AddTool(getItemTool(), s.handleGetItem)
	s.server.AddTool(addLocalItemTool(), s.handleAddLocalItem)
	s.server.AddTool(updateItemTool(), s.handleUpdateItem)
	s.server.AddTool(removeItemTool(), s.handleRemoveItem)
	s.server.AddTool(localizeItemTool(), s.handleLocalizeItem)

	// Package tools
	s.server.AddTool(exportTool(), s.handleExport)
	s.server.AddTool(importTool(), s.handleImport)

	// AI tools
	s.server.AddTool(classifyItemTool(), s.handleClassifyItem)
}

// registerResources adds all favorites resources to the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(
		mcp.NewResource(
			"ltwfav://folders",
			"Favorite folders",
			mcp.WithResourceDescription("JSON list of all favorite folders in display order"),
			mcp.WithMIMEType("application/json"),
		),
		s.handleFoldersResource,
	)

	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"ltwfav://item/{id}",
			"Favorite item",
			mcp.WithTemplateDescription("JSON record of a single favorite including source, AI and localization state"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleItemResource,
	)
}
