package favorites

import "errors"

var (
	// ErrEmptySelection is returned when an item export is requested with no ids.
	ErrEmptySelection = errors.New("at least one favorite must be selected for export")

	// ErrSelectionNotFound is returned when none of the selected items exist.
	ErrSelectionNotFound = errors.New("selected favorites do not exist or have been removed")

	// ErrManifestMissing is returned when an imported package has no favorites.json.
	ErrManifestMissing = errors.New("package is missing favorites.json")

	// ErrPackageNotFound is returned when the import source path does not exist.
	ErrPackageNotFound = errors.New("package not found")

	// ErrFileNotFound is returned when a local file to favorite does not exist.
	ErrFileNotFound = errors.New("file not found")
)
