package favorites

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/littletree-next/ltwfav/internal/hash"
	"github.com/littletree-next/ltwfav/internal/log"
	"github.com/littletree-next/ltwfav/internal/models"
)

var (
	illegalSegmentChars = regexp.MustCompile(`[\\/:*?"<>|]+`)
	whitespaceRuns      = regexp.MustCompile(`\s+`)
)

// sanitizeSegment turns a display name into a safe path segment: filesystem
// illegal characters and whitespace runs become "-", leading/trailing
// punctuation is stripped, and an empty result falls back.
func sanitizeSegment(value, fallback string) string {
	normalized := strings.TrimSpace(value)
	normalized = illegalSegmentChars.ReplaceAllString(normalized, "-")
	normalized = whitespaceRuns.ReplaceAllString(normalized, "-")
	sanitized := strings.Trim(normalized, "-._")
	if sanitized == "" {
		return fallback
	}
	return sanitized
}

// LocalizationRoot returns the directory holding localized asset copies,
// creating it on demand.
func (m *Manager) LocalizationRoot() string {
	root := filepath.Join(filepath.Dir(m.path), "localized")
	if err := os.MkdirAll(root, 0o755); err != nil {
		log.Errorf("create localization root: %v", err)
	}
	return root
}

// localizationFolderSegmentLocked derives the per-folder subdirectory name
// from the folder's display name, falling back to the folder id.
func (m *Manager) localizationFolderSegmentLocked(folderID string) string {
	base := folderID
	if folder, ok := m.collection.Folders[folderID]; ok {
		base = folder.Name
	}
	fallback := folderID
	if fallback == "" {
		fallback = "folder"
	}
	if base == "" {
		base = fallback
	}
	return sanitizeSegment(base, fallback)
}

// localizationFilename derives the destination filename for an item's asset:
// sanitized title plus the first 8 hex characters of the item id for
// uniqueness, keeping the source file's extension (".bin" when absent).
func localizationFilename(item *models.FavoriteItem, sourcePath string) string {
	suffix := ""
	if sourcePath != "" {
		suffix = filepath.Ext(sourcePath)
	}
	if suffix == "" {
		suffix = ".bin"
	}
	title := item.Title
	if title == "" {
		title = "favorite"
	}
	segment := sanitizeSegment(title, shortID(item.ID))
	return fmt.Sprintf("%s-%s%s", segment, shortID(item.ID), suffix)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// LocalizationFolderPath returns the localization directory for a folder,
// creating it when create is true.
func (m *Manager) LocalizationFolderPath(folderID string, create bool) string {
	m.mu.RLock()
	segment := m.localizationFolderSegmentLocked(folderID)
	m.mu.RUnlock()

	target := filepath.Join(m.LocalizationRoot(), segment)
	if create {
		if err := os.MkdirAll(target, 0o755); err != nil {
			log.Errorf("create localization folder: %v", err)
		}
	}
	return target
}

// LocalizeItemFromFile copies sourcePath into the item's folder-scoped
// localization directory and marks the item's localization completed.
// Returns the destination path, or "" when the source file or item is
// missing, or when the copy fails (recorded as a failed localization).
func (m *Manager) LocalizeItemFromFile(itemID, sourcePath string) string {
	if _, err := os.Stat(sourcePath); err != nil {
		return ""
	}

	m.mu.RLock()
	item, ok := m.collection.Items[itemID]
	if !ok {
		m.mu.RUnlock()
		return ""
	}
	filename := localizationFilename(item, sourcePath)
	folderSegment := m.localizationFolderSegmentLocked(item.FolderID)
	m.mu.RUnlock()

	targetDir := filepath.Join(m.LocalizationRoot(), folderSegment)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		log.Errorf("create localization folder: %v", err)
		m.UpdateLocalization(itemID, UpdateLocalizationInput{
			Status:     models.LocalizationFailed,
			FolderPath: folderSegment,
			Message:    err.Error(),
		})
		return ""
	}
	destination := filepath.Join(targetDir, filename)
	if err := copyFile(sourcePath, destination); err != nil {
		log.Errorf("copy localized file: %v", err)
		m.UpdateLocalization(itemID, UpdateLocalizationInput{
			Status:     models.LocalizationFailed,
			FolderPath: folderSegment,
			Message:    err.Error(),
		})
		return ""
	}

	m.UpdateLocalization(itemID, UpdateLocalizationInput{
		Status:     models.LocalizationCompleted,
		LocalPath:  destination,
		FolderPath: filepath.ToSlash(filepath.Join(folderSegment, filename)),
	})
	return destination
}

// UpdateLocalizationInput carries a localization state transition.
type UpdateLocalizationInput struct {
	Status     models.LocalizationStatus
	LocalPath  string
	FolderPath string
	Message    string
}

// UpdateLocalization records a localization state transition for an item.
// The actual download/fetch step belongs to the caller; the manager only
// tracks state and timestamps. Returns false if the item does not exist.
func (m *Manager) UpdateLocalization(itemID string, in UpdateLocalizationInput) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.collection.Items[itemID]
	if !ok {
		return false
	}
	now := models.Now()
	item.Localization.Status = in.Status
	item.Localization.LocalPath = in.LocalPath
	item.Localization.FolderPath = in.FolderPath
	item.Localization.UpdatedAt = &now
	item.Localization.Message = in.Message
	item.Touch()
	m.saveLocked()
	return true
}

// ResetLocalization resets an item's localization state back to absent.
func (m *Manager) ResetLocalization(itemID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.collection.Items[itemID]
	if !ok {
		return false
	}
	item.Localization = models.NewFavoriteLocalizationInfo()
	item.Touch()
	m.saveLocked()
	return true
}

// AddLocalItemInput carries the parameters for AddLocalItem.
type AddLocalItemInput struct {
	Path        string
	FolderID    string
	Title       string
	Description string
	Tags        []string
	SourceTitle string
	Extra       map[string]any
	ReplaceTags bool
}

// AddLocalItem favorites a file already on disk. The file itself is the
// localized copy, so localization is marked completed at the original path
// without copying anything. The source identifier is content-addressed from
// the absolute path, so re-adding the same file updates the existing item.
func (m *Manager) AddLocalItem(in AddLocalItemInput) (*models.FavoriteItem, bool, error) {
	resolved, err := filepath.Abs(in.Path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrFileNotFound, in.Path)
	}
	if _, err := os.Stat(resolved); err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrFileNotFound, resolved)
	}

	stem := strings.TrimSuffix(filepath.Base(resolved), filepath.Ext(resolved))
	sourceTitle := in.SourceTitle
	if sourceTitle == "" {
		sourceTitle = stem
	}
	title := in.Title
	if title == "" {
		title = stem
	}
	extra := map[string]any{}
	for k, v := range in.Extra {
		extra[k] = v
	}

	source := &models.FavoriteSource{
		Type:       models.SourceTypeLocal,
		Identifier: hash.LocalFileIdentifier(resolved),
		Title:      sourceTitle,
		LocalPath:  resolved,
		Extra:      extra,
	}

	item, created := m.AddOrUpdateItem(AddItemInput{
		FolderID:    in.FolderID,
		Title:       title,
		Description: in.Description,
		Tags:        in.Tags,
		Source:      source,
		LocalPath:   resolved,
		Extra:       in.Extra,
		ReplaceTags: in.ReplaceTags,
	})

	m.UpdateLocalization(item.ID, UpdateLocalizationInput{
		Status:    models.LocalizationCompleted,
		LocalPath: resolved,
	})

	if refreshed := m.GetItem(item.ID); refreshed != nil {
		item = refreshed
	}
	return item, created, nil
}

// copyFile copies src to dst, truncating any existing destination.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
