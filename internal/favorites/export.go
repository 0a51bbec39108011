package favorites

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/littletree-next/ltwfav/internal/log"
	"github.com/littletree-next/ltwfav/internal/models"
)

// PackageFilename is the default name for exported packages when the target
// path is a directory.
const PackageFilename = "favorites.ltwfav"

// manifestName is the metadata file inside a package.
const manifestName = "favorites.json"

// assetsDir is the directory inside a package holding copied asset files.
const assetsDir = "assets"

// exportManifest is the favorites.json payload inside a package: a subset
// snapshot of the collection plus the export timestamp.
type exportManifest struct {
	Version     int                               `json:"version"`
	ExportedAt  float64                           `json:"exported_at"`
	Folders     map[string]*models.FavoriteFolder `json:"folders"`
	Items       map[string]*models.FavoriteItem   `json:"items"`
	FolderOrder []string                          `json:"folder_order"`
}

// assetEntry maps an on-disk source file to its path inside the package.
type assetEntry struct {
	sourcePath  string
	packagePath string
}

// ExportResult summarizes a written package.
type ExportResult struct {
	PackagePath string
	FolderCount int
	ItemCount   int
	AssetCount  int
}

// ExportFolders exports entire folders into a .ltwfav package. A nil or empty
// folderIDs, or one containing the all-folders sentinel, exports everything;
// a selection that resolves to nothing falls back to the default folder.
func (m *Manager) ExportFolders(targetPath string, folderIDs []string, includeAssets bool) (*ExportResult, error) {
	manifest, assets := m.prepareExport(folderIDs, nil, includeAssets)
	return m.buildPackage(targetPath, manifest, assets)
}

// ExportItems exports an explicit set of items regardless of folder. The
// folders referenced by the selection are included for metadata completeness
// only. Fails when itemIDs is empty or none resolve to existing items.
func (m *Manager) ExportItems(targetPath string, itemIDs []string, includeAssets bool) (*ExportResult, error) {
	if len(itemIDs) == 0 {
		return nil, ErrEmptySelection
	}
	manifest, assets := m.prepareExport(nil, itemIDs, includeAssets)
	if len(manifest.Items) == 0 {
		return nil, ErrSelectionNotFound
	}
	return m.buildPackage(targetPath, manifest, assets)
}

// prepareExport assembles the manifest and the list of asset files to copy.
// Exactly one of folderIDs / itemIDs drives the selection: itemIDs when
// non-nil, folder selection otherwise.
func (m *Manager) prepareExport(folderIDs, itemIDs []string, includeAssets bool) (*exportManifest, []assetEntry) {
	var itemIDSet map[string]bool
	if itemIDs != nil {
		itemIDSet = make(map[string]bool, len(itemIDs))
		for _, id := range itemIDs {
			itemIDSet[id] = true
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	selectedFolders := map[string]bool{}
	if itemIDSet == nil {
		if len(folderIDs) == 0 || containsString(folderIDs, models.AllFoldersSentinel) {
			for fid := range m.collection.Folders {
				selectedFolders[fid] = true
			}
		} else {
			for _, fid := range folderIDs {
				if _, ok := m.collection.Folders[fid]; ok {
					selectedFolders[fid] = true
				}
			}
		}
		if len(selectedFolders) == 0 {
			selectedFolders[models.DefaultFolderID] = true
		}
	}

	items := map[string]*models.FavoriteItem{}
	var assets []assetEntry
	for itemID, item := range m.collection.Items {
		if itemIDSet != nil {
			if !itemIDSet[itemID] {
				continue
			}
		} else if !selectedFolders[item.FolderID] {
			continue
		}

		data := item.Clone()
		folderSegment := m.localizationFolderSegmentLocked(item.FolderID)
		data.Localization.FolderPath = folderSegment

		if includeAssets {
			assetSource := ""
			for _, candidate := range []string{item.Localization.LocalPath, item.LocalPath} {
				if candidate == "" {
					continue
				}
				if _, err := os.Stat(candidate); err == nil {
					assetSource = candidate
					break
				}
			}
			if assetSource != "" {
				filename := localizationFilename(item, assetSource)
				relPath := path.Join(assetsDir, folderSegment, filename)
				data.Localization.LocalPath = relPath
				assets = append(assets, assetEntry{sourcePath: assetSource, packagePath: relPath})
			}
		}

		items[itemID] = data
		// Item selections pull their folders into the metadata set.
		if itemIDSet != nil {
			selectedFolders[item.FolderID] = true
		}
	}

	folders := map[string]*models.FavoriteFolder{}
	for fid := range selectedFolders {
		if folder, ok := m.collection.Folders[fid]; ok {
			folders[fid] = folder.Clone()
		}
	}
	order := []string{}
	for _, fid := range m.collection.FolderOrder {
		if selectedFolders[fid] {
			order = append(order, fid)
		}
	}

	return &exportManifest{
		Version:     m.collection.Version,
		ExportedAt:  models.Now(),
		Folders:     folders,
		Items:       items,
		FolderOrder: order,
	}, assets
}

// buildPackage writes the manifest and assets into a zip archive at
// targetPath (or <targetPath>/favorites.ltwfav when targetPath is a
// directory). Asset copy failures are logged and skipped so a vanished file
// cannot abort the whole export.
func (m *Manager) buildPackage(targetPath string, manifest *exportManifest, assets []assetEntry) (*ExportResult, error) {
	packagePath := targetPath
	if info, err := os.Stat(targetPath); err == nil && info.IsDir() {
		packagePath = filepath.Join(targetPath, PackageFilename)
	}
	if err := os.MkdirAll(filepath.Dir(packagePath), 0o755); err != nil {
		return nil, fmt.Errorf("create package directory: %w", err)
	}

	out, err := os.Create(packagePath)
	if err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	defer func() { _ = out.Close() }()

	zw := zip.NewWriter(out)
	copied := 0
	for _, asset := range assets {
		if err := writeZipFile(zw, asset.packagePath, asset.sourcePath); err != nil {
			log.Warnf("export: copy asset %s: %v", asset.sourcePath, err)
			continue
		}
		copied++
	}

	data, err := marshalIndented(manifest)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	w, err := zw.Create(manifestName)
	if err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	return &ExportResult{
		PackagePath: packagePath,
		FolderCount: len(manifest.Folders),
		ItemCount:   len(manifest.Items),
		AssetCount:  copied,
	}, nil
}

// writeZipFile streams a file from disk into the archive under name.
func writeZipFile(zw *zip.Writer, name, sourcePath string) error {
	in, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
