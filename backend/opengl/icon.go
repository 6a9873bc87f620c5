package opengl

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// IconSizes are the edge lengths LoadIcon produces.
var IconSizes = []int{16, 32, 48}

// LoadIcon decodes an image file (PNG, BMP, JPEG, GIF or TIFF) and returns
// it scaled to each of IconSizes, ready for Config.Icons.
func LoadIcon(path string) ([]image.Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load icon %s", path)
	}
	return IconSet(src), nil
}

// IconSet scales src to each of IconSizes.
func IconSet(src image.Image) []image.Image {
	icons := make([]image.Image, 0, len(IconSizes))
	for _, size := range IconSizes {
		icons = append(icons, imaging.Resize(src, size, size, imaging.Lanczos))
	}
	return icons
}
