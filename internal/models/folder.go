package models

// Reserved folder identifiers and default display names. The display names
// are part of the observed on-disk data and stay in the original language.
const (
	DefaultFolderID          = "default"
	DefaultFolderName        = "默认收藏夹"
	DefaultFolderDescription = "系统自动创建的默认收藏夹"
	UntitledFolderName       = "未命名收藏夹"
	UntitledItemTitle        = "未命名收藏"

	// AllFoldersSentinel selects every folder in listing and export calls.
	AllFoldersSentinel = "__all__"
)

// FavoriteFolder is a user-defined folder grouping favorites.
type FavoriteFolder struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Order       int            `json:"order"`
	CreatedAt   float64        `json:"created_at"`
	UpdatedAt   float64        `json:"updated_at"`
	Metadata    map[string]any `json:"metadata"`
}

// Clone returns a deep copy of the folder.
func (f *FavoriteFolder) Clone() *FavoriteFolder {
	out := *f
	out.Metadata = cloneMap(f.Metadata)
	return &out
}

// Touch refreshes the folder's updated_at timestamp.
func (f *FavoriteFolder) Touch() {
	f.UpdatedAt = Now()
}
