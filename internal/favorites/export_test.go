package favorites

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littletree-next/ltwfav/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestManager(t)
	folder := src.CreateFolder("风景", "自然风光", nil)
	item := addSniffItem(t, src, "山水", "w1", AddItemInput{FolderID: folder.ID, Tags: []string{"自然"}})

	asset := writeAsset(t, "shanshui.jpg", "jpeg-bytes")
	require.NotEmpty(t, src.LocalizeItemFromFile(item.ID, asset))

	result, err := src.ExportFolders(t.TempDir(), []string{folder.ID}, true)
	require.NoError(t, err)
	packagePath := result.PackagePath
	assert.Equal(t, PackageFilename, filepath.Base(packagePath))
	assert.FileExists(t, packagePath)
	assert.Equal(t, 1, result.FolderCount)
	assert.Equal(t, 1, result.ItemCount)
	assert.Equal(t, 1, result.AssetCount)

	dst := newTestManager(t)
	foldersCreated, itemsImported, err := dst.ImportFolders(packagePath)
	require.NoError(t, err)
	assert.Equal(t, 1, foldersCreated)
	assert.Equal(t, 1, itemsImported)

	var imported *models.FavoriteFolder
	for _, f := range dst.ListFolders() {
		if f.Name == "风景" {
			imported = f
		}
	}
	require.NotNil(t, imported)
	assert.Equal(t, "自然风光", imported.Description)
	assert.NotEqual(t, folder.ID, imported.ID)

	items := dst.ListItems(imported.ID)
	require.Len(t, items, 1)
	got := items[0]
	assert.NotEqual(t, item.ID, got.ID)
	assert.Equal(t, "山水", got.Title)
	assert.Equal(t, []string{"自然"}, got.Tags)
	assert.Equal(t, "w1", got.Source.Identifier)

	// The asset travels with the package and is re-localized on import.
	require.Equal(t, models.LocalizationCompleted, got.Localization.Status)
	content, err := os.ReadFile(got.Localization.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))
}

func TestLocalFileExportImportScenario(t *testing.T) {
	src := newTestManager(t)
	nature := src.CreateFolder("Nature", "", nil)

	path := writeAsset(t, "forest.jpg", "forest-bytes")
	item, created, err := src.AddLocalItem(AddLocalItemInput{Path: path, FolderID: nature.ID, Title: "Forest"})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, models.LocalizationCompleted, item.Localization.Status)

	outDir := t.TempDir()
	result, err := src.ExportFolders(outDir, []string{nature.ID}, true)
	require.NoError(t, err)
	packagePath := result.PackagePath
	assert.Equal(t, filepath.Join(outDir, PackageFilename), packagePath)

	zr, err := zip.OpenReader(packagePath)
	require.NoError(t, err)
	defer func() { _ = zr.Close() }()
	expectedAsset := "assets/Nature/Forest-" + shortID(item.ID) + ".jpg"
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, expectedAsset)

	dst := newTestManager(t)
	foldersCreated, itemsImported, err := dst.ImportFolders(packagePath)
	require.NoError(t, err)
	assert.Equal(t, 1, foldersCreated)
	assert.Equal(t, 1, itemsImported)

	items := dst.ListItems(models.AllFoldersSentinel)
	require.Len(t, items, 1)
	got := items[0]
	assert.Equal(t, "Forest", got.Title)
	require.Equal(t, models.LocalizationCompleted, got.Localization.Status)

	// The copy lives under the importing installation's own root.
	assert.True(t, strings.HasPrefix(got.Localization.LocalPath, dst.LocalizationRoot()))
	content, err := os.ReadFile(got.Localization.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, "forest-bytes", string(content))
}

func TestExportFoldersSelection(t *testing.T) {
	m := newTestManager(t)
	a := m.CreateFolder("A", "", nil)
	b := m.CreateFolder("B", "", nil)
	addSniffItem(t, m, "in A", "w1", AddItemInput{FolderID: a.ID})
	addSniffItem(t, m, "in B", "w2", AddItemInput{FolderID: b.ID})
	addSniffItem(t, m, "in default", "w3", AddItemInput{})

	t.Run("explicit folder", func(t *testing.T) {
		manifest := readManifest(t, m, []string{a.ID})
		assert.Len(t, manifest.Folders, 1)
		require.Len(t, manifest.Items, 1)
		for _, item := range manifest.Items {
			assert.Equal(t, "in A", item.Title)
		}
	})

	t.Run("sentinel exports everything", func(t *testing.T) {
		manifest := readManifest(t, m, []string{models.AllFoldersSentinel})
		assert.Len(t, manifest.Folders, 3)
		assert.Len(t, manifest.Items, 3)
	})

	t.Run("empty selection exports everything", func(t *testing.T) {
		manifest := readManifest(t, m, nil)
		assert.Len(t, manifest.Folders, 3)
		assert.Len(t, manifest.Items, 3)
	})

	t.Run("unknown ids fall back to the default folder", func(t *testing.T) {
		manifest := readManifest(t, m, []string{"ghost"})
		require.Len(t, manifest.Folders, 1)
		assert.Contains(t, manifest.Folders, models.DefaultFolderID)
		assert.Len(t, manifest.Items, 1)
	})
}

func TestExportItems(t *testing.T) {
	m := newTestManager(t)
	folder := m.CreateFolder("Picked", "", nil)
	item := addSniffItem(t, m, "chosen", "w1", AddItemInput{FolderID: folder.ID})
	addSniffItem(t, m, "left behind", "w2", AddItemInput{})

	result, err := m.ExportItems(filepath.Join(t.TempDir(), "one.ltwfav"), []string{item.ID}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FolderCount)
	assert.Equal(t, 1, result.ItemCount)
	assert.Equal(t, 0, result.AssetCount)

	manifest := readPackageManifest(t, result.PackagePath)
	require.Len(t, manifest.Items, 1)
	assert.Contains(t, manifest.Items, item.ID)
	// The selected item's folder rides along as metadata.
	assert.Contains(t, manifest.Folders, folder.ID)

	t.Run("empty selection", func(t *testing.T) {
		_, err := m.ExportItems(t.TempDir(), nil, false)
		assert.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("nothing resolves", func(t *testing.T) {
		_, err := m.ExportItems(t.TempDir(), []string{"ghost"}, false)
		assert.ErrorIs(t, err, ErrSelectionNotFound)
	})
}

func TestExportWithoutAssets(t *testing.T) {
	m := newTestManager(t)
	item := addSniffItem(t, m, "Lean", "w1", AddItemInput{})
	require.NotEmpty(t, m.LocalizeItemFromFile(item.ID, writeAsset(t, "lean.jpg", "bytes")))

	result, err := m.ExportFolders(filepath.Join(t.TempDir(), "lean.ltwfav"), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.AssetCount)

	zr, err := zip.OpenReader(result.PackagePath)
	require.NoError(t, err)
	defer func() { _ = zr.Close() }()

	require.Len(t, zr.File, 1)
	assert.Equal(t, manifestName, zr.File[0].Name)
}

func TestExportVanishedAssetIsSkipped(t *testing.T) {
	m := newTestManager(t)
	asset := writeAsset(t, "gone.jpg", "bytes")
	item := addSniffItem(t, m, "Gone", "w1", AddItemInput{})
	require.NotEmpty(t, m.LocalizeItemFromFile(item.ID, asset))

	localized := m.GetItem(item.ID).Localization.LocalPath
	require.NoError(t, os.Remove(localized))
	require.NoError(t, os.Remove(asset))

	result, err := m.ExportFolders(filepath.Join(t.TempDir(), "gone.ltwfav"), nil, true)
	require.NoError(t, err)
	assert.Equal(t, 0, result.AssetCount)

	manifest := readPackageManifest(t, result.PackagePath)
	assert.Len(t, manifest.Items, 1)
}

func TestImportReconcilesFoldersByName(t *testing.T) {
	src := newTestManager(t)
	folder := src.CreateFolder("Shared", "from the package", nil)
	addSniffItem(t, src, "one", "w1", AddItemInput{FolderID: folder.ID})

	result, err := src.ExportFolders(filepath.Join(t.TempDir(), "shared.ltwfav"), nil, false)
	require.NoError(t, err)

	dst := newTestManager(t)
	existing := dst.CreateFolder("Shared", "already here", nil)

	foldersCreated, itemsImported, err := dst.ImportFolders(result.PackagePath)
	require.NoError(t, err)
	assert.Equal(t, 0, foldersCreated)
	assert.Equal(t, 1, itemsImported)

	got := dst.GetFolder(existing.ID)
	require.NotNil(t, got)
	assert.Equal(t, "from the package", got.Description)
	assert.Len(t, dst.ListItems(existing.ID), 1)
}

func TestImportKeepsPackageFolderOrder(t *testing.T) {
	src := newTestManager(t)
	names := []string{"Mountains", "Lakes", "Forests", "Cities", "Skies"}
	for _, name := range names {
		src.CreateFolder(name, "", nil)
	}

	result, err := src.ExportFolders(filepath.Join(t.TempDir(), "ordered.ltwfav"), nil, false)
	require.NoError(t, err)

	dst := newTestManager(t)
	foldersCreated, _, err := dst.ImportFolders(result.PackagePath)
	require.NoError(t, err)
	assert.Equal(t, len(names), foldersCreated)

	folders := dst.ListFolders()
	require.Len(t, folders, len(names)+1)
	got := make([]string, 0, len(names))
	for _, f := range folders[1:] {
		got = append(got, f.Name)
	}
	assert.Equal(t, names, got)
}

func TestImportIsAdditive(t *testing.T) {
	src := newTestManager(t)
	addSniffItem(t, src, "dup", "w1", AddItemInput{})
	result, err := src.ExportFolders(filepath.Join(t.TempDir(), "dup.ltwfav"), nil, false)
	require.NoError(t, err)

	dst := newTestManager(t)
	for i := 0; i < 2; i++ {
		_, _, err := dst.ImportFolders(result.PackagePath)
		require.NoError(t, err)
	}

	// Items always get fresh ids, so importing twice duplicates them.
	assert.Len(t, dst.ListItems(models.AllFoldersSentinel), 2)
}

func TestImportFromExtractedDirectory(t *testing.T) {
	src := newTestManager(t)
	addSniffItem(t, src, "plain", "w1", AddItemInput{})
	result, err := src.ExportFolders(filepath.Join(t.TempDir(), "plain.ltwfav"), nil, false)
	require.NoError(t, err)

	extracted := t.TempDir()
	require.NoError(t, extractZip(result.PackagePath, extracted))

	dst := newTestManager(t)
	_, itemsImported, err := dst.ImportFolders(extracted)
	require.NoError(t, err)
	assert.Equal(t, 1, itemsImported)
}

func TestImportErrors(t *testing.T) {
	m := newTestManager(t)

	t.Run("missing package", func(t *testing.T) {
		_, _, err := m.ImportFolders(filepath.Join(t.TempDir(), "ghost.ltwfav"))
		assert.ErrorIs(t, err, ErrPackageNotFound)
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, _, err := m.ImportFolders(t.TempDir())
		assert.ErrorIs(t, err, ErrManifestMissing)
	})

	t.Run("zip without manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.ltwfav")
		out, err := os.Create(path)
		require.NoError(t, err)
		zw := zip.NewWriter(out)
		w, err := zw.Create("unrelated.txt")
		require.NoError(t, err)
		_, err = w.Write([]byte("noise"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, out.Close())

		_, _, err = m.ImportFolders(path)
		assert.ErrorIs(t, err, ErrManifestMissing)
	})
}

func TestExtractZipRejectsEscapingEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evil.ltwfav")
	out, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(out)
	w, err := zw.Create("../escape.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	err = extractZip(path, t.TempDir())
	assert.ErrorContains(t, err, "illegal entry path")
}

func readManifest(t *testing.T, m *Manager, folderIDs []string) *exportManifest {
	t.Helper()
	result, err := m.ExportFolders(filepath.Join(t.TempDir(), "out.ltwfav"), folderIDs, false)
	require.NoError(t, err)
	return readPackageManifest(t, result.PackagePath)
}

func readPackageManifest(t *testing.T, packagePath string) *exportManifest {
	t.Helper()
	extracted := t.TempDir()
	require.NoError(t, extractZip(packagePath, extracted))
	data, err := os.ReadFile(filepath.Join(extracted, manifestName))
	require.NoError(t, err)
	var manifest exportManifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	return &manifest
}
