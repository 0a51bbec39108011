// Package main provides the ltwfav-mcp server for agent integration.
//
// ltwfav-mcp exposes the favorites collection via the Model Context
// Protocol, letting MCP-compatible clients browse folders, manage
// favorites, and run exports/imports.
//
// Usage:
//
//	ltwfav-mcp [flags]
//
// The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/littletree-next/ltwfav/internal/classify"
	"github.com/littletree-next/ltwfav/internal/config"
	"github.com/littletree-next/ltwfav/internal/favorites"
	"github.com/littletree-next/ltwfav/internal/llm"
	"github.com/littletree-next/ltwfav/internal/log"
	"github.com/littletree-next/ltwfav/internal/mcp"
	"github.com/littletree-next/ltwfav/internal/telemetry"
	"github.com/littletree-next/ltwfav/pkg/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("ltwfav-mcp %s\n", version.Version)
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		printHelp()
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	if err := log.Init(paths.Logs); err == nil {
		defer func() { _ = log.Close() }()
	}

	manager := favorites.NewManager(paths.FavoritesFile)

	// Classification is optional; without an API key the tool reports the
	// item's unchanged AI state.
	if provider, err := llm.NewProvider(cfg.LLM); err == nil {
		manager.SetClassifier(classify.New(provider, manager, cfg.LLM.ClassifyRatePerMinute))
	}

	telemetryClient := telemetry.New(nil)
	defer telemetryClient.Close()

	server := mcp.NewServer(manager, telemetryClient)
	if err := server.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `ltwfav-mcp - MCP server for the ltwfav favorites collection

USAGE:
    ltwfav-mcp [FLAGS]

FLAGS:
    -h, --help       Print this help message
    -v, --version    Print version information

DESCRIPTION:
    ltwfav-mcp is a Model Context Protocol (MCP) server that exposes the
    local wallpaper favorites collection to MCP-compatible clients.

    The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).

CONFIGURATION:
    {
      "mcpServers": {
        "ltwfav": {
          "type": "stdio",
          "command": "ltwfav-mcp"
        }
      }
    }

TOOLS PROVIDED:
    ltwfav_list_folders     List folders with item counts
    ltwfav_create_folder    Create a folder
    ltwfav_rename_folder    Rename a folder
    ltwfav_delete_folder    Delete a folder, moving its items
    ltwfav_reorder_folders  Set the folder display order
    ltwfav_list_items       List favorites
    ltwfav_get_item         Get one favorite's full record
    ltwfav_add_local_item   Favorite a local file
    ltwfav_update_item      Update a favorite's fields
    ltwfav_remove_item      Remove a favorite
    ltwfav_localize_item    Copy an asset into the local store
    ltwfav_export           Export folders to a .ltwfav package
    ltwfav_import           Import a .ltwfav package
    ltwfav_classify_item    Suggest tags/folder via an LLM

RESOURCES PROVIDED:
    ltwfav://folders     Folder list as JSON
    ltwfav://item/{id}   Favorite item as JSON
`
	fmt.Print(help)
}
