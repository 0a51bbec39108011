package models

// CollectionVersion is the current favorites schema version.
const CollectionVersion = 1

// FavoriteCollection is the serialized representation of the favorites store:
// all folders and items plus the display order of folders.
type FavoriteCollection struct {
	Version     int                        `json:"version"`
	Folders     map[string]*FavoriteFolder `json:"folders"`
	Items       map[string]*FavoriteItem   `json:"items"`
	FolderOrder []string                   `json:"folder_order"`
}

// NewFavoriteCollection returns an empty collection containing only the
// default folder.
func NewFavoriteCollection() *FavoriteCollection {
	c := &FavoriteCollection{
		Version:     CollectionVersion,
		Folders:     map[string]*FavoriteFolder{},
		Items:       map[string]*FavoriteItem{},
		FolderOrder: []string{},
	}
	c.EnsureDefaultFolder()
	return c
}

// EnsureDefaultFolder guarantees the reserved default folder exists and that
// folder ordering is normalized. Returns the default folder.
func (c *FavoriteCollection) EnsureDefaultFolder() *FavoriteFolder {
	folder, ok := c.Folders[DefaultFolderID]
	if !ok {
		now := Now()
		folder = &FavoriteFolder{
			ID:          DefaultFolderID,
			Name:        DefaultFolderName,
			Description: DefaultFolderDescription,
			Order:       0,
			CreatedAt:   now,
			UpdatedAt:   now,
			Metadata:    map[string]any{},
		}
		c.Folders[DefaultFolderID] = folder
	}
	if !contains(c.FolderOrder, DefaultFolderID) {
		c.FolderOrder = append([]string{DefaultFolderID}, c.FolderOrder...)
	}
	c.NormalizeOrders()
	return folder
}

// NormalizeOrders rebuilds folder_order so it is deduplicated, contains every
// folder id exactly once (orphans appended at the end), references no missing
// folders, and mirrors each position into the folder's Order field.
func (c *FavoriteCollection) NormalizeOrders() {
	cleaned := make([]string, 0, len(c.Folders))
	for _, folderID := range c.FolderOrder {
		if _, ok := c.Folders[folderID]; ok && !contains(cleaned, folderID) {
			cleaned = append(cleaned, folderID)
		}
	}
	for folderID := range c.Folders {
		if !contains(cleaned, folderID) {
			cleaned = append(cleaned, folderID)
		}
	}
	c.FolderOrder = cleaned
	for index, folderID := range c.FolderOrder {
		if folder, ok := c.Folders[folderID]; ok {
			folder.Order = index
		}
	}
}

// Normalize repairs a collection after JSON decoding: nil maps and slices
// become empty ones, items without a resolvable folder keep their folder_id
// (the manager corrects it on write), and the default-folder invariant is
// restored.
func (c *FavoriteCollection) Normalize() {
	if c.Version == 0 {
		c.Version = CollectionVersion
	}
	if c.Folders == nil {
		c.Folders = map[string]*FavoriteFolder{}
	}
	if c.Items == nil {
		c.Items = map[string]*FavoriteItem{}
	}
	for id, folder := range c.Folders {
		if folder.ID == "" {
			folder.ID = id
		}
		if folder.Metadata == nil {
			folder.Metadata = map[string]any{}
		}
	}
	for id, item := range c.Items {
		if item.ID == "" {
			item.ID = id
		}
		if item.FolderID == "" {
			item.FolderID = DefaultFolderID
		}
		if item.Tags == nil {
			item.Tags = []string{}
		}
		if item.Extra == nil {
			item.Extra = map[string]any{}
		}
		if item.Source.Extra == nil {
			item.Source.Extra = map[string]any{}
		}
		if item.AI.Status == "" {
			item.AI.Status = AIStatusIdle
		}
		if item.AI.SuggestedTags == nil {
			item.AI.SuggestedTags = []string{}
		}
		if item.AI.Metadata == nil {
			item.AI.Metadata = map[string]any{}
		}
		if item.Localization.Status == "" {
			item.Localization.Status = LocalizationAbsent
		}
	}
	c.EnsureDefaultFolder()
}

// Clone returns a deep copy of the whole collection.
func (c *FavoriteCollection) Clone() *FavoriteCollection {
	out := &FavoriteCollection{
		Version:     c.Version,
		Folders:     make(map[string]*FavoriteFolder, len(c.Folders)),
		Items:       make(map[string]*FavoriteItem, len(c.Items)),
		FolderOrder: append([]string(nil), c.FolderOrder...),
	}
	for id, folder := range c.Folders {
		out.Folders[id] = folder.Clone()
	}
	for id, item := range c.Items {
		out.Items[id] = item.Clone()
	}
	return out
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
