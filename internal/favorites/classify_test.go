package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littletree-next/ltwfav/internal/models"
)

func TestMaybeClassifyItemCompletes(t *testing.T) {
	m := newTestManager(t)
	item := addSniffItem(t, m, "Alpine Lake", "w1", AddItemInput{})

	var seenStatus models.AIStatus
	m.SetClassifier(ClassifierFunc(func(ctx context.Context, snapshot *models.FavoriteItem) (*models.FavoriteAIResult, error) {
		seenStatus = snapshot.AI.Status
		return &models.FavoriteAIResult{
			Tags:     []string{"Nature", "nature", "lake"},
			FolderID: models.DefaultFolderID,
			Metadata: map[string]any{"provider": "test"},
		}, nil
	}))

	result := m.MaybeClassifyItem(context.Background(), item.ID)
	require.NotNil(t, result)
	// The classifier sees the pending state already persisted.
	assert.Equal(t, models.AIStatusPending, seenStatus)

	got := m.GetItem(item.ID)
	assert.Equal(t, models.AIStatusCompleted, got.AI.Status)
	assert.Equal(t, []string{"nature", "lake"}, got.AI.SuggestedTags)
	assert.Equal(t, models.DefaultFolderID, got.AI.SuggestedFolderID)
	assert.Equal(t, "test", got.AI.Metadata["provider"])
	require.NotNil(t, got.AI.UpdatedAt)
}

func TestMaybeClassifyItemFailure(t *testing.T) {
	m := newTestManager(t)
	item := addSniffItem(t, m, "Broken", "w1", AddItemInput{})
	m.SetClassifier(ClassifierFunc(func(ctx context.Context, _ *models.FavoriteItem) (*models.FavoriteAIResult, error) {
		return nil, errors.New("provider unavailable")
	}))

	assert.Nil(t, m.MaybeClassifyItem(context.Background(), item.ID))

	got := m.GetItem(item.ID)
	assert.Equal(t, models.AIStatusFailed, got.AI.Status)
	assert.Equal(t, "provider unavailable", got.AI.Metadata["error"])
}

func TestMaybeClassifyItemNoOpinion(t *testing.T) {
	m := newTestManager(t)
	item := addSniffItem(t, m, "Plain", "w1", AddItemInput{})
	m.SetClassifier(ClassifierFunc(func(ctx context.Context, _ *models.FavoriteItem) (*models.FavoriteAIResult, error) {
		return nil, nil
	}))

	assert.Nil(t, m.MaybeClassifyItem(context.Background(), item.ID))
	assert.Equal(t, models.AIStatusIdle, m.GetItem(item.ID).AI.Status)
}

func TestMaybeClassifyItemNoClassifier(t *testing.T) {
	m := newTestManager(t)
	item := addSniffItem(t, m, "Untouched", "w1", AddItemInput{})

	assert.Nil(t, m.MaybeClassifyItem(context.Background(), item.ID))
	assert.Equal(t, models.AIStatusIdle, m.GetItem(item.ID).AI.Status)
}

func TestMaybeClassifyItemMissingItem(t *testing.T) {
	m := newTestManager(t)
	called := false
	m.SetClassifier(ClassifierFunc(func(ctx context.Context, _ *models.FavoriteItem) (*models.FavoriteAIResult, error) {
		called = true
		return nil, nil
	}))

	assert.Nil(t, m.MaybeClassifyItem(context.Background(), "ghost"))
	assert.False(t, called)
}

func TestMaybeClassifyItemRemovedMidFlight(t *testing.T) {
	m := newTestManager(t)
	item := addSniffItem(t, m, "Vanishing", "w1", AddItemInput{})
	m.SetClassifier(ClassifierFunc(func(ctx context.Context, _ *models.FavoriteItem) (*models.FavoriteAIResult, error) {
		// Manager lock is released here, so callbacks into it are safe.
		require.True(t, m.RemoveItem(item.ID))
		return &models.FavoriteAIResult{Tags: []string{"late"}}, nil
	}))

	result := m.MaybeClassifyItem(context.Background(), item.ID)
	require.NotNil(t, result)
	assert.Nil(t, m.GetItem(item.ID))
}
