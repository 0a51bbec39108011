// Package classify implements an LLM-backed classifier for favorites. It
// asks a chat model to suggest tags and a target folder for an item and is
// installed into the favorites manager as its Classifier.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/littletree-next/ltwfav/internal/llm"
	"github.com/littletree-next/ltwfav/internal/models"
)

// MaxSuggestedTags caps the number of tags a single classification may attach.
const MaxSuggestedTags = 5

// FolderLister supplies the folder candidates offered to the model.
type FolderLister interface {
	ListFolders() []*models.FavoriteFolder
}

// LLMClassifier suggests tags and a folder for a favorite via an LLM provider.
type LLMClassifier struct {
	provider llm.Provider
	folders  FolderLister
	limiter  *rate.Limiter
}

// New creates a classifier on top of the given provider. ratePerMinute caps
// how many classification requests are sent; zero or negative disables the cap.
func New(provider llm.Provider, folders FolderLister, ratePerMinute int) *LLMClassifier {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if ratePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), 1)
	}
	return &LLMClassifier{
		provider: provider,
		folders:  folders,
		limiter:  limiter,
	}
}

// suggestion is the JSON shape the model is asked to produce.
type suggestion struct {
	Tags     []string `json:"tags"`
	FolderID string   `json:"folder_id"`
	Reason   string   `json:"reason"`
}

const systemPrompt = `You organize a wallpaper favorites collection.
Given one favorite entry and the list of existing folders, suggest up to %d
short lowercase tags describing the image subject or style, and optionally the
id of the best-matching folder. Respond with a single JSON object:
{"tags": ["..."], "folder_id": "...", "reason": "..."}
Use an empty folder_id when no folder fits. Do not invent folder ids.`

// Classify implements favorites.Classifier.
func (c *LLMClassifier) Classify(ctx context.Context, item *models.FavoriteItem) (*models.FavoriteAIResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	prompt := c.buildPrompt(item)
	resp, err := c.provider.ChatSync(ctx,
		[]llm.Message{
			llm.NewSystemMessage(fmt.Sprintf(systemPrompt, MaxSuggestedTags)),
			llm.NewUserMessage(prompt),
		},
		llm.ChatOptions{MaxTokens: 512, Temperature: 0.2},
	)
	if err != nil {
		return nil, err
	}

	parsed, err := parseSuggestion(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse classifier response: %w", err)
	}
	if len(parsed.Tags) == 0 && parsed.FolderID == "" {
		return nil, nil
	}

	tags := parsed.Tags
	if len(tags) > MaxSuggestedTags {
		tags = tags[:MaxSuggestedTags]
	}

	metadata := map[string]any{
		"provider": c.provider.Name(),
		"model":    resp.Model,
	}
	if parsed.Reason != "" {
		metadata["reason"] = parsed.Reason
	}

	return &models.FavoriteAIResult{
		Tags:     tags,
		FolderID: c.validFolderID(parsed.FolderID),
		Metadata: metadata,
	}, nil
}

// buildPrompt renders the item and folder candidates for the model.
func (c *LLMClassifier) buildPrompt(item *models.FavoriteItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", item.Title)
	if item.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", item.Description)
	}
	if len(item.Tags) > 0 {
		fmt.Fprintf(&b, "Existing tags: %s\n", strings.Join(item.Tags, ", "))
	}
	fmt.Fprintf(&b, "Source type: %s\n", item.Source.Type)
	if item.Source.Title != "" {
		fmt.Fprintf(&b, "Source title: %s\n", item.Source.Title)
	}

	b.WriteString("Folders:\n")
	for _, folder := range c.folders.ListFolders() {
		fmt.Fprintf(&b, "- id=%s name=%s\n", folder.ID, folder.Name)
	}
	return b.String()
}

// validFolderID drops suggestions that do not match an existing folder.
func (c *LLMClassifier) validFolderID(folderID string) string {
	if folderID == "" {
		return ""
	}
	for _, folder := range c.folders.ListFolders() {
		if folder.ID == folderID {
			return folderID
		}
	}
	return ""
}

// parseSuggestion extracts the JSON object from a model response, tolerating
// markdown code fences and surrounding prose.
func parseSuggestion(content string) (*suggestion, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}
	var out suggestion
	if err := json.Unmarshal([]byte(content[start:end+1]), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
