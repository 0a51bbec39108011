package favorites

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/littletree-next/ltwfav/internal/models"
)

// ImportFolders imports a favorites package (a .ltwfav zip archive or an
// already-extracted directory) into this collection. Folders are reconciled
// by name; every imported item gets a fresh id, so import is purely additive
// and never overwrites existing items. Returns the number of folders created
// and items imported.
func (m *Manager) ImportFolders(sourcePath string) (int, int, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrPackageNotFound, sourcePath)
	}

	root := sourcePath
	if !info.IsDir() {
		tmpRoot, err := os.MkdirTemp("", "ltwfav-import-*")
		if err != nil {
			return 0, 0, fmt.Errorf("create staging directory: %w", err)
		}
		defer func() { _ = os.RemoveAll(tmpRoot) }()
		if err := extractZip(sourcePath, tmpRoot); err != nil {
			return 0, 0, fmt.Errorf("extract package: %w", err)
		}
		root = tmpRoot
	}

	manifestPath := filepath.Join(root, manifestName)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return 0, 0, ErrManifestMissing
	}
	var manifest exportManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return 0, 0, fmt.Errorf("parse manifest: %w", err)
	}

	createdFolders := 0
	importedItems := 0
	folderMapping := map[string]string{}
	// original item id -> (new id, asset path relative to the package root)
	type importedAsset struct {
		newID   string
		relPath string
	}
	var assets []importedAsset

	// Walk folders in the package's declared order so created folders land
	// in folder_order the way the exporter arranged them; map iteration
	// would scramble them.
	orderedIDs := make([]string, 0, len(manifest.Folders))
	seen := map[string]bool{}
	for _, fid := range manifest.FolderOrder {
		if _, ok := manifest.Folders[fid]; ok && !seen[fid] {
			orderedIDs = append(orderedIDs, fid)
			seen[fid] = true
		}
	}
	var stragglers []string
	for fid := range manifest.Folders {
		if !seen[fid] {
			stragglers = append(stragglers, fid)
		}
	}
	sort.Strings(stragglers)
	orderedIDs = append(orderedIDs, stragglers...)

	m.mu.Lock()
	for _, originalID := range orderedIDs {
		folder := manifest.Folders[originalID]
		targetID := ""
		for existingID, existing := range m.collection.Folders {
			if existing.Name == folder.Name {
				targetID = existingID
				existing.Description = folder.Description
				for k, v := range folder.Metadata {
					existing.Metadata[k] = v
				}
				existing.Touch()
				break
			}
		}
		if targetID == "" {
			targetID = models.NewID()
			now := models.Now()
			newFolder := folder.Clone()
			newFolder.ID = targetID
			newFolder.CreatedAt = now
			newFolder.UpdatedAt = now
			if newFolder.Metadata == nil {
				newFolder.Metadata = map[string]any{}
			}
			m.collection.Folders[targetID] = newFolder
			m.collection.FolderOrder = append(m.collection.FolderOrder, targetID)
			createdFolders++
		}
		folderMapping[originalID] = targetID
	}

	for _, item := range manifest.Items {
		targetFolder, ok := folderMapping[item.FolderID]
		if !ok {
			targetFolder = models.DefaultFolderID
		}
		relPath := item.Localization.LocalPath

		newItem := item.Clone()
		newItem.ID = models.NewID()
		newItem.FolderID = targetFolder
		now := models.Now()
		newItem.CreatedAt = now
		newItem.UpdatedAt = now
		newItem.Localization = models.NewFavoriteLocalizationInfo()
		if newItem.Tags == nil {
			newItem.Tags = []string{}
		}
		if newItem.Extra == nil {
			newItem.Extra = map[string]any{}
		}
		if newItem.Source.Extra == nil {
			newItem.Source.Extra = map[string]any{}
		}
		if newItem.AI.SuggestedTags == nil {
			newItem.AI.SuggestedTags = []string{}
		}
		if newItem.AI.Metadata == nil {
			newItem.AI.Metadata = map[string]any{}
		}
		if newItem.AI.Status == "" {
			newItem.AI.Status = models.AIStatusIdle
		}
		m.collection.Items[newItem.ID] = newItem
		importedItems++

		if relPath != "" {
			assets = append(assets, importedAsset{newID: newItem.ID, relPath: relPath})
		}
	}

	m.collection.EnsureDefaultFolder()
	m.saveLocked()
	m.mu.Unlock()

	// Restore asset files recorded in the package into this installation's
	// localization root.
	for _, asset := range assets {
		sourceFile := filepath.Join(root, filepath.FromSlash(asset.relPath))
		if _, err := os.Stat(sourceFile); err == nil {
			m.LocalizeItemFromFile(asset.newID, sourceFile)
		}
	}

	return createdFolders, importedItems, nil
}

// extractZip unpacks archivePath into destRoot, rejecting entries that would
// escape the destination.
func extractZip(archivePath, destRoot string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = zr.Close() }()

	for _, entry := range zr.File {
		destination := filepath.Join(destRoot, filepath.FromSlash(entry.Name))
		if !strings.HasPrefix(destination, filepath.Clean(destRoot)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal entry path: %s", entry.Name)
		}
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(destination, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
			return err
		}
		if err := extractZipFile(entry, destination); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(entry *zip.File, destination string) error {
	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(destination)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
