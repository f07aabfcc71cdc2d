// Package imagery fetches product photos and turns them into square
// lossless thumbnails.
package imagery

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// CropBox is the largest square centered in a w×h image: centered
// horizontally when wider than tall, vertically when taller.
func CropBox(w, h int) image.Rectangle {
	side := min(w, h)
	x := (w - side) / 2
	y := (h - side) / 2
	return image.Rect(x, y, x+side, y+side)
}

// Thumbnail center-crops img to a square and resizes it to size×size with
// a Catmull-Rom (bicubic) filter.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	b := img.Bounds()
	box := CropBox(b.Dx(), b.Dy()).Add(b.Min)
	return imaging.Resize(imaging.Crop(img, box), size, size, imaging.CatmullRom)
}

// Open decodes the image file at path, honouring EXIF orientation.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Save writes img losslessly to path as "webp" or "png".
func Save(path string, img image.Image, format string) error {
	switch format {
	case "png":
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := nativewebp.Encode(f, img, nil); err != nil {
			f.Close()
			os.Remove(path)
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported image format: %s", format)
	}
}
