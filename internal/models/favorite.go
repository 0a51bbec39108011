// Package models defines the core data structures for ltwfav.
package models

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Well-known source types. The field is free-form; these are the values
// produced by the built-in integrations.
const (
	SourceTypeUnknown         = "unknown"
	SourceTypeLocal           = "local"
	SourceTypeBing            = "bing"
	SourceTypeWallpaperSource = "wallpaper_source"
	SourceTypeSniff           = "sniff"
	SourceTypeGeneration      = "generation"
	SourceTypeSystemWallpaper = "system_wallpaper"
)

// AIStatus tracks the lifecycle of AI-assisted classification for an item.
type AIStatus string

// AI classification states.
const (
	AIStatusIdle      AIStatus = "idle"
	AIStatusPending   AIStatus = "pending"
	AIStatusRunning   AIStatus = "running"
	AIStatusCompleted AIStatus = "completed"
	AIStatusFailed    AIStatus = "failed"
)

// LocalizationStatus tracks whether a durable local copy of an item's asset
// exists under the manager's storage tree.
type LocalizationStatus string

// Localization states.
const (
	LocalizationAbsent    LocalizationStatus = "absent"
	LocalizationPending   LocalizationStatus = "pending"
	LocalizationCompleted LocalizationStatus = "completed"
	LocalizationFailed    LocalizationStatus = "failed"
)

// FavoriteSource describes where a favorite entry comes from.
type FavoriteSource struct {
	Type       string         `json:"type"`
	Identifier string         `json:"identifier"`
	Title      string         `json:"title"`
	URL        string         `json:"url"`
	PreviewURL string         `json:"preview_url"`
	LocalPath  string         `json:"local_path"`
	Extra      map[string]any `json:"extra"`
}

// Clone returns a deep copy of the source.
func (s FavoriteSource) Clone() FavoriteSource {
	out := s
	out.Extra = cloneMap(s.Extra)
	return out
}

// FavoriteAIInfo stores AI classification metadata for a favorite entry.
type FavoriteAIInfo struct {
	Status            AIStatus       `json:"status"`
	SuggestedTags     []string       `json:"suggested_tags"`
	SuggestedFolderID string         `json:"suggested_folder_id"`
	Metadata          map[string]any `json:"metadata"`
	UpdatedAt         *float64       `json:"updated_at"`
}

// NewFavoriteAIInfo returns the zero-state AI info.
func NewFavoriteAIInfo() FavoriteAIInfo {
	return FavoriteAIInfo{
		Status:        AIStatusIdle,
		SuggestedTags: []string{},
		Metadata:      map[string]any{},
	}
}

// Clone returns a deep copy of the AI info.
func (a FavoriteAIInfo) Clone() FavoriteAIInfo {
	out := a
	out.SuggestedTags = append([]string(nil), a.SuggestedTags...)
	out.Metadata = cloneMap(a.Metadata)
	if a.UpdatedAt != nil {
		ts := *a.UpdatedAt
		out.UpdatedAt = &ts
	}
	return out
}

// FavoriteLocalizationInfo tracks localized (downloaded) assets for an entry.
type FavoriteLocalizationInfo struct {
	Status     LocalizationStatus `json:"status"`
	LocalPath  string             `json:"local_path"`
	FolderPath string             `json:"folder_path"`
	UpdatedAt  *float64           `json:"updated_at"`
	Message    string             `json:"message"`
}

// NewFavoriteLocalizationInfo returns the zero-state localization info.
func NewFavoriteLocalizationInfo() FavoriteLocalizationInfo {
	return FavoriteLocalizationInfo{Status: LocalizationAbsent}
}

// Clone returns a copy of the localization info.
func (l FavoriteLocalizationInfo) Clone() FavoriteLocalizationInfo {
	out := l
	if l.UpdatedAt != nil {
		ts := *l.UpdatedAt
		out.UpdatedAt = &ts
	}
	return out
}

// FavoriteItem is a single user favorite entry.
type FavoriteItem struct {
	ID           string                   `json:"id"`
	FolderID     string                   `json:"folder_id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Tags         []string                 `json:"tags"`
	Source       FavoriteSource           `json:"source"`
	PreviewURL   string                   `json:"preview_url"`
	LocalPath    string                   `json:"local_path"`
	CreatedAt    float64                  `json:"created_at"`
	UpdatedAt    float64                  `json:"updated_at"`
	AI           FavoriteAIInfo           `json:"ai"`
	Localization FavoriteLocalizationInfo `json:"localization"`
	Extra        map[string]any           `json:"extra"`
}

// Clone returns a deep copy of the item, safe to hand to callers.
func (i *FavoriteItem) Clone() *FavoriteItem {
	out := *i
	out.Tags = append([]string(nil), i.Tags...)
	out.Source = i.Source.Clone()
	out.AI = i.AI.Clone()
	out.Localization = i.Localization.Clone()
	out.Extra = cloneMap(i.Extra)
	return &out
}

// Touch refreshes the item's updated_at timestamp.
func (i *FavoriteItem) Touch() {
	i.UpdatedAt = Now()
}

// FavoriteAIResult is the value an AI classifier returns to provide
// suggestions for an item. A nil result means no opinion.
type FavoriteAIResult struct {
	Tags     []string       `json:"tags"`
	FolderID string         `json:"folder_id"`
	Metadata map[string]any `json:"metadata"`
}

// Now returns the current time as epoch seconds.
func Now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// NewID generates a 32-character hex identifier for folders and items.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
