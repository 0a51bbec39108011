package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFavoriteCollection(t *testing.T) {
	c := NewFavoriteCollection()

	require.Contains(t, c.Folders, DefaultFolderID)
	assert.Equal(t, DefaultFolderName, c.Folders[DefaultFolderID].Name)
	assert.Equal(t, []string{DefaultFolderID}, c.FolderOrder)
	assert.Equal(t, CollectionVersion, c.Version)
}

func TestEnsureDefaultFolderPrepends(t *testing.T) {
	c := NewFavoriteCollection()
	now := Now()
	c.Folders["f1"] = &FavoriteFolder{ID: "f1", Name: "Other", CreatedAt: now, UpdatedAt: now, Metadata: map[string]any{}}
	c.FolderOrder = []string{"f1"}
	delete(c.Folders, DefaultFolderID)

	c.EnsureDefaultFolder()

	assert.Equal(t, []string{DefaultFolderID, "f1"}, c.FolderOrder)
	assert.Equal(t, 0, c.Folders[DefaultFolderID].Order)
	assert.Equal(t, 1, c.Folders["f1"].Order)
}

func TestNormalizeOrders(t *testing.T) {
	c := NewFavoriteCollection()
	now := Now()
	for _, id := range []string{"a", "b", "c"} {
		c.Folders[id] = &FavoriteFolder{ID: id, Name: id, CreatedAt: now, UpdatedAt: now, Metadata: map[string]any{}}
	}

	// Duplicates, a missing reference, and an omitted folder ("c").
	c.FolderOrder = []string{"b", "b", "ghost", DefaultFolderID, "a"}
	c.NormalizeOrders()

	assert.Equal(t, []string{"b", DefaultFolderID, "a", "c"}, c.FolderOrder)
	for index, id := range c.FolderOrder {
		assert.Equal(t, index, c.Folders[id].Order)
	}
}

func TestNormalizeRepairsDecodedCollection(t *testing.T) {
	raw := `{
		"version": 1,
		"folders": {"f1": {"name": "Loose"}},
		"items": {
			"i1": {"title": "Loose item", "folder_id": "", "tags": null}
		},
		"folder_order": null
	}`

	var c FavoriteCollection
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	c.Normalize()

	assert.Equal(t, "f1", c.Folders["f1"].ID)
	assert.NotNil(t, c.Folders["f1"].Metadata)

	item := c.Items["i1"]
	require.NotNil(t, item)
	assert.Equal(t, "i1", item.ID)
	assert.Equal(t, DefaultFolderID, item.FolderID)
	assert.NotNil(t, item.Tags)
	assert.NotNil(t, item.Extra)
	assert.Equal(t, AIStatusIdle, item.AI.Status)
	assert.Equal(t, LocalizationAbsent, item.Localization.Status)

	assert.Contains(t, c.Folders, DefaultFolderID)
	assert.Contains(t, c.FolderOrder, "f1")
}

func TestCollectionClone(t *testing.T) {
	c := NewFavoriteCollection()
	now := Now()
	c.Items["i1"] = &FavoriteItem{
		ID:        "i1",
		FolderID:  DefaultFolderID,
		Title:     "Original",
		Tags:      []string{"one"},
		CreatedAt: now,
		UpdatedAt: now,
		Extra:     map[string]any{},
	}

	clone := c.Clone()
	clone.Items["i1"].Title = "Mutated"
	clone.Items["i1"].Tags[0] = "changed"
	clone.Folders[DefaultFolderID].Name = "Renamed"

	assert.Equal(t, "Original", c.Items["i1"].Title)
	assert.Equal(t, "one", c.Items["i1"].Tags[0])
	assert.Equal(t, DefaultFolderName, c.Folders[DefaultFolderID].Name)
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestItemCloneIsDeep(t *testing.T) {
	item := &FavoriteItem{
		ID:    "i1",
		Title: "Deep",
		Tags:  []string{"t"},
		Source: FavoriteSource{
			Type:  SourceTypeLocal,
			Extra: map[string]any{"k": "v"},
		},
		AI:    NewFavoriteAIInfo(),
		Extra: map[string]any{"a": 1},
	}

	clone := item.Clone()
	clone.Tags[0] = "mutated"
	clone.Source.Extra["k"] = "mutated"
	clone.Extra["a"] = 2
	clone.AI.SuggestedTags = append(clone.AI.SuggestedTags, "x")

	assert.Equal(t, "t", item.Tags[0])
	assert.Equal(t, "v", item.Source.Extra["k"])
	assert.Equal(t, 1, item.Extra["a"])
	assert.Empty(t, item.AI.SuggestedTags)
}
