package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// resourcePrefix is the URI scheme for ltwfav resources.
const resourcePrefix = "ltwfav://"

// parseItemURI extracts the item id from a ltwfav://item/{id} URI.
func parseItemURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, resourcePrefix+"item/") {
		return "", fmt.Errorf("invalid URI scheme: %s", uri)
	}

	id := strings.TrimPrefix(uri, resourcePrefix+"item/")
	if id == "" {
		return "", fmt.Errorf("empty item id in URI: %s", uri)
	}
	return id, nil
}

// handleFoldersResource handles the ltwfav://folders resource.
func (s *Server) handleFoldersResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(s.folderResponses())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal folders: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleItemResource handles ltwfav://item/{id} resources.
func (s *Server) handleItemResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id, err := parseItemURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	item := s.manager.GetItem(id)
	if item == nil {
		return nil, fmt.Errorf("item not found: %s", id)
	}

	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
