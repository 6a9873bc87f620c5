package opengl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/go-theft-auto/glwin"
)

// SavePagesBMP reads every page of data back from the device and writes it
// to dir as <prefix>_<index>.bmp. It returns the written paths.
func SavePagesBMP(dev *Device, data *glwin.FontData, dir, prefix string) ([]string, error) {
	if data == nil {
		return nil, glwin.ErrNotLoaded
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	paths := make([]string, 0, len(data.Pages))
	for i, tex := range data.Pages {
		img, err := dev.TextureImage(tex)
		if err != nil {
			return paths, errors.Wrapf(err, "read page %d", i)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.bmp", prefix, i))
		f, err := os.Create(path)
		if err != nil {
			return paths, errors.Wrapf(err, "create %s", path)
		}
		err = bmp.Encode(f, img)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, errors.Wrapf(err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
