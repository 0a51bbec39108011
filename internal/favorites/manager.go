// Package favorites implements the favorites store: folders, tagged items,
// localized asset copies, and portable export/import packaging. State lives
// in a single JSON file that is rewritten on every mutation.
package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/littletree-next/ltwfav/internal/log"
	"github.com/littletree-next/ltwfav/internal/models"
)

// Manager is the facade over the favorites collection. All public methods are
// safe for concurrent use; every read hands out deep copies so callers cannot
// corrupt internal state.
type Manager struct {
	path       string
	mu         sync.RWMutex
	collection *models.FavoriteCollection
	classifier Classifier
}

// NewManager creates a manager backed by the JSON file at storagePath and
// loads any existing data. A missing or corrupted file degrades to a fresh
// collection containing only the default folder.
func NewManager(storagePath string) *Manager {
	m := &Manager{
		path:       storagePath,
		collection: models.NewFavoriteCollection(),
	}
	m.Load()
	return m
}

// Path returns the backing file path.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the collection from disk. Never fails: parse or read errors are
// logged and leave a fresh collection in place, so a corrupted store cannot
// take the application down.
func (m *Manager) Load() {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Errorf("load favorites: %v", err)
		}
		m.collection = models.NewFavoriteCollection()
		return
	}

	var collection models.FavoriteCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		log.Errorf("load favorites: corrupted store: %v", err)
		m.collection = models.NewFavoriteCollection()
		return
	}
	collection.Normalize()
	m.collection = &collection
}

// Save persists the collection. Failures are logged, not returned; the
// in-memory state stays authoritative until the next successful save.
func (m *Manager) Save() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveLocked()
}

// saveLocked writes the collection to disk via temp file + rename. Caller
// must hold the write lock.
func (m *Manager) saveLocked() {
	data, err := marshalIndented(m.collection)
	if err != nil {
		log.Errorf("save favorites: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		log.Errorf("save favorites: %v", err)
		return
	}
	tmpPath := m.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		log.Errorf("save favorites: %v", err)
		return
	}
	if err := os.Rename(tmpPath, m.path); err != nil {
		log.Errorf("save favorites: %v", err)
	}
}

// marshalIndented renders JSON with two-space indent and without escaping
// non-ASCII or HTML characters, matching the on-disk format.
func marshalIndented(v any) ([]byte, error) {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// ------------------------------------------------------------------
// folder ops
// ------------------------------------------------------------------

// ListFolders returns all folders in display order.
func (m *Manager) ListFolders() []*models.FavoriteFolder {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.FavoriteFolder, 0, len(m.collection.FolderOrder))
	for _, folderID := range m.collection.FolderOrder {
		if folder, ok := m.collection.Folders[folderID]; ok {
			out = append(out, folder.Clone())
		}
	}
	return out
}

// GetFolder returns the folder with the given id, or nil.
func (m *Manager) GetFolder(folderID string) *models.FavoriteFolder {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if folder, ok := m.collection.Folders[folderID]; ok {
		return folder.Clone()
	}
	return nil
}

// CreateFolder creates a folder with a fresh id and appends it to the display
// order. A blank name falls back to the untitled placeholder.
func (m *Manager) CreateFolder(name, description string, metadata map[string]any) *models.FavoriteFolder {
	normalizedName := strings.TrimSpace(name)
	if normalizedName == "" {
		normalizedName = models.UntitledFolderName
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := models.Now()
	folder := &models.FavoriteFolder{
		ID:          models.NewID(),
		Name:        normalizedName,
		Description: strings.TrimSpace(description),
		Order:       len(m.collection.FolderOrder),
		CreatedAt:   now,
		UpdatedAt:   now,
		Metadata:    metadata,
	}
	m.collection.Folders[folder.ID] = folder
	m.collection.FolderOrder = append(m.collection.FolderOrder, folder.ID)
	m.collection.EnsureDefaultFolder()
	m.saveLocked()
	return folder.Clone()
}

// RenameFolder updates the provided fields of a folder. A nil field is left
// unchanged; a blank name is ignored rather than applied. Returns false if
// the folder does not exist.
func (m *Manager) RenameFolder(folderID string, name, description *string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	folder, ok := m.collection.Folders[folderID]
	if !ok {
		return false
	}
	if name != nil {
		if newName := strings.TrimSpace(*name); newName != "" {
			folder.Name = newName
		}
	}
	if description != nil {
		folder.Description = strings.TrimSpace(*description)
	}
	folder.Touch()
	m.saveLocked()
	return true
}

// DeleteFolder removes a folder, reassigning its items to moveItemsTo
// (the default folder when blank or unknown). The default folder itself can
// never be deleted.
func (m *Manager) DeleteFolder(folderID, moveItemsTo string) bool {
	if folderID == models.DefaultFolderID {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collection.Folders[folderID]; !ok {
		return false
	}
	destination := moveItemsTo
	if destination == "" {
		destination = models.DefaultFolderID
	}
	if _, ok := m.collection.Folders[destination]; !ok {
		m.collection.EnsureDefaultFolder()
		destination = models.DefaultFolderID
	}
	for _, item := range m.collection.Items {
		if item.FolderID == folderID {
			item.FolderID = destination
			item.Touch()
		}
	}
	delete(m.collection.Folders, folderID)
	order := m.collection.FolderOrder[:0]
	for _, fid := range m.collection.FolderOrder {
		if fid != folderID {
			order = append(order, fid)
		}
	}
	m.collection.FolderOrder = order
	m.collection.EnsureDefaultFolder()
	m.saveLocked()
	return true
}

// ReorderFolders applies a caller-supplied folder ordering. Unknown ids are
// dropped, duplicates collapsed, and omitted folders appended at the end.
func (m *Manager) ReorderFolders(orderedIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	uniqueIDs := make([]string, 0, len(m.collection.Folders))
	seen := make(map[string]bool, len(orderedIDs))
	for _, folderID := range orderedIDs {
		if _, ok := m.collection.Folders[folderID]; ok && !seen[folderID] {
			uniqueIDs = append(uniqueIDs, folderID)
			seen[folderID] = true
		}
	}
	for _, folderID := range m.collection.FolderOrder {
		if !seen[folderID] {
			uniqueIDs = append(uniqueIDs, folderID)
			seen[folderID] = true
		}
	}
	m.collection.FolderOrder = uniqueIDs
	m.collection.EnsureDefaultFolder()
	m.saveLocked()
}

// ------------------------------------------------------------------
// item ops
// ------------------------------------------------------------------

// ListItems returns items sorted by updated_at descending. An empty folderID
// or the AllFoldersSentinel returns every item.
func (m *Manager) ListItems(folderID string) []*models.FavoriteItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.FavoriteItem, 0, len(m.collection.Items))
	for _, item := range m.collection.Items {
		if folderID != "" && folderID != models.AllFoldersSentinel && item.FolderID != folderID {
			continue
		}
		out = append(out, item.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}

// GetItem returns the item with the given id, or nil.
func (m *Manager) GetItem(itemID string) *models.FavoriteItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if item, ok := m.collection.Items[itemID]; ok {
		return item.Clone()
	}
	return nil
}

// FindBySource looks up an existing item by source identity: a matching
// non-empty identifier wins, then a matching non-empty URL. Returns nil when
// the source carries neither.
func (m *Manager) FindBySource(source models.FavoriteSource) *models.FavoriteItem {
	if source.Identifier == "" && source.URL == "" {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findBySourceLocked(source)
}

func (m *Manager) findBySourceLocked(source models.FavoriteSource) *models.FavoriteItem {
	for _, item := range m.collection.Items {
		if item.Source.Identifier != "" && source.Identifier != "" &&
			item.Source.Identifier == source.Identifier {
			return item.Clone()
		}
		if item.Source.URL != "" && source.URL != "" &&
			item.Source.URL == source.URL {
			return item.Clone()
		}
	}
	return nil
}

// AddItemInput carries the parameters for AddOrUpdateItem.
type AddItemInput struct {
	FolderID    string
	Title       string
	Description string
	Tags        []string
	Source      *models.FavoriteSource
	PreviewURL  string
	LocalPath   string
	Extra       map[string]any

	// ReplaceTags replaces an existing item's tags instead of merging.
	ReplaceTags bool
}

// AddOrUpdateItem inserts a new item, or updates an existing one when the
// source identity (identifier or URL) matches a stored item. The returned
// bool reports whether a new item was created.
func (m *Manager) AddOrUpdateItem(in AddItemInput) (*models.FavoriteItem, bool) {
	var source models.FavoriteSource
	if in.Source != nil {
		source = in.Source.Clone()
	} else {
		source = models.FavoriteSource{Type: models.SourceTypeUnknown, Extra: map[string]any{}}
	}
	if source.Extra == nil {
		source.Extra = map[string]any{}
	}

	tags := normalizeTags(in.Tags)
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = models.UntitledItemTitle
	}
	description := strings.TrimSpace(in.Description)
	extra := map[string]any{}
	for k, v := range in.Extra {
		extra[k] = v
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.collection.EnsureDefaultFolder()
	folderID := m.resolveFolderIDLocked(in.FolderID)

	var existing *models.FavoriteItem
	if source.Identifier != "" || source.URL != "" {
		existing = m.findBySourceLocked(source)
	}
	if existing != nil {
		item := m.collection.Items[existing.ID]
		item.FolderID = folderID
		item.Title = title
		if description != "" {
			item.Description = description
		}
		if in.ReplaceTags {
			item.Tags = tags
		} else if len(tags) > 0 {
			item.Tags = normalizeTags(append(append([]string{}, item.Tags...), tags...))
		}
		if in.PreviewURL != "" {
			item.PreviewURL = in.PreviewURL
		}
		if in.LocalPath != "" {
			item.LocalPath = in.LocalPath
		}
		for k, v := range extra {
			item.Extra[k] = v
		}
		item.Touch()
		m.saveLocked()
		return item.Clone(), false
	}

	now := models.Now()
	item := &models.FavoriteItem{
		ID:           models.NewID(),
		FolderID:     folderID,
		Title:        title,
		Description:  description,
		Tags:         tags,
		Source:       source,
		PreviewURL:   in.PreviewURL,
		LocalPath:    in.LocalPath,
		CreatedAt:    now,
		UpdatedAt:    now,
		AI:           models.NewFavoriteAIInfo(),
		Localization: models.NewFavoriteLocalizationInfo(),
		Extra:        extra,
	}
	m.collection.Items[item.ID] = item
	m.saveLocked()
	return item.Clone(), true
}

// UpdateItemInput carries a partial item update. Nil pointer fields and nil
// slices/maps are left unchanged.
type UpdateItemInput struct {
	FolderID    *string
	Title       *string
	Description *string
	Tags        []string
	Extra       map[string]any
}

// UpdateItem applies a partial update. A blank title is ignored rather than
// applied. Returns false if the item does not exist.
func (m *Manager) UpdateItem(itemID string, in UpdateItemInput) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.collection.Items[itemID]
	if !ok {
		return false
	}
	if in.FolderID != nil {
		item.FolderID = m.resolveFolderIDLocked(*in.FolderID)
	}
	if in.Title != nil {
		if title := strings.TrimSpace(*in.Title); title != "" {
			item.Title = title
		}
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Tags != nil {
		item.Tags = normalizeTags(in.Tags)
	}
	for k, v := range in.Extra {
		item.Extra[k] = v
	}
	item.Touch()
	m.saveLocked()
	return true
}

// RemoveItem deletes an item permanently. Localized asset files on disk are
// left alone.
func (m *Manager) RemoveItem(itemID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collection.Items[itemID]; !ok {
		return false
	}
	delete(m.collection.Items, itemID)
	m.saveLocked()
	return true
}

// normalizeTags trims each tag, drops empties, and deduplicates while
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	cleaned := []string{}
	for _, tag := range tags {
		value := strings.TrimSpace(tag)
		if value == "" {
			continue
		}
		if !containsString(cleaned, value) {
			cleaned = append(cleaned, value)
		}
	}
	return cleaned
}

// resolveFolderIDLocked maps a requested folder id to one that exists,
// falling back to the default folder for blank or dangling ids.
func (m *Manager) resolveFolderIDLocked(folderID string) string {
	if folderID == "" {
		return models.DefaultFolderID
	}
	if _, ok := m.collection.Folders[folderID]; ok {
		return folderID
	}
	log.Warnf("folder %s does not exist, falling back to the default folder", folderID)
	m.collection.EnsureDefaultFolder()
	return models.DefaultFolderID
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
