package model

// Catalog layout constants. The catalog file and the covers sit at fixed
// locations relative to the data source root; the updater writes them and
// the gallery and server resolve them the same way.
const (
	// DataPath is the catalog file relative to the data source root
	DataPath = "data.json"

	// ImageDir is the directory holding cover images
	ImageDir = "images"
)

// CoverPath returns the catalog-relative path of an item's cover image.
func CoverPath(id string) string {
	return ImageDir + "/" + id + ".jpg"
}
