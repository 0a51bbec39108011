package favorites

import (
	"context"

	"github.com/littletree-next/ltwfav/internal/log"
	"github.com/littletree-next/ltwfav/internal/models"
)

// Classifier is the pluggable AI classification capability. Classify
// inspects an item and returns suggestions, a nil result for no opinion, or
// an error. Implementations may block; the manager never holds its lock
// across the call.
type Classifier interface {
	Classify(ctx context.Context, item *models.FavoriteItem) (*models.FavoriteAIResult, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, item *models.FavoriteItem) (*models.FavoriteAIResult, error)

// Classify implements Classifier.
func (f ClassifierFunc) Classify(ctx context.Context, item *models.FavoriteItem) (*models.FavoriteAIResult, error) {
	return f(ctx, item)
}

// SetClassifier installs or removes (nil) the AI classifier.
func (m *Manager) SetClassifier(classifier Classifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classifier = classifier
}

// MaybeClassifyItem runs the installed classifier against an item. No-op when
// no classifier is installed or the item is missing. The item's ai.status is
// set to pending before the call; on success it becomes completed with the
// normalized suggestions, on a nil result it returns to idle, and on error it
// becomes failed with the error recorded in ai.metadata. Classifier failures
// never propagate. If the item is removed while the classifier runs, the
// result is dropped silently.
func (m *Manager) MaybeClassifyItem(ctx context.Context, itemID string) *models.FavoriteAIResult {
	m.mu.Lock()
	item, ok := m.collection.Items[itemID]
	if !ok || m.classifier == nil {
		m.mu.Unlock()
		return nil
	}
	classifier := m.classifier
	item.AI.Status = models.AIStatusPending
	m.saveLocked()
	snapshot := item.Clone()
	m.mu.Unlock()

	result, err := classifier.Classify(ctx, snapshot)
	if err != nil {
		log.Errorf("classify favorite %s: %v", itemID, err)
		m.mu.Lock()
		if item, ok := m.collection.Items[itemID]; ok {
			now := models.Now()
			item.AI.Status = models.AIStatusFailed
			item.AI.Metadata["error"] = err.Error()
			item.AI.UpdatedAt = &now
			m.saveLocked()
		}
		m.mu.Unlock()
		return nil
	}

	if result == nil {
		m.mu.Lock()
		if item, ok := m.collection.Items[itemID]; ok {
			now := models.Now()
			item.AI.Status = models.AIStatusIdle
			item.AI.UpdatedAt = &now
			m.saveLocked()
		}
		m.mu.Unlock()
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok = m.collection.Items[itemID]
	if !ok {
		return result
	}
	now := models.Now()
	item.AI.Status = models.AIStatusCompleted
	item.AI.SuggestedTags = normalizeTags(result.Tags)
	item.AI.SuggestedFolderID = result.FolderID
	item.AI.Metadata = map[string]any{}
	for k, v := range result.Metadata {
		item.AI.Metadata[k] = v
	}
	item.AI.UpdatedAt = &now
	m.saveLocked()
	return result
}
