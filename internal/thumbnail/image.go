package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/mediatypes"

	// decoders registered for image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// MaxSourcePixels bounds the decoded size of a source image. A 100MP RGBA
// image needs about 400MB.
const MaxSourcePixels = 100_000_000

// imageDimensions returns the size of the image at path without decoding it.
func imageDimensions(path string) (width, height int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", path, err)
		}
	}()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// loadImage decodes src with EXIF orientation applied, refusing images whose
// header reports more than MaxSourcePixels.
func loadImage(src string) (image.Image, error) {
	width, height, err := imageDimensions(src)
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}
	if width*height > MaxSourcePixels {
		return nil, fmt.Errorf("image %dx%d exceeds %d pixels", width, height, MaxSourcePixels)
	}

	logging.Debug("Decoding %s (%dx%d)", src, width, height)

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// renderWithImaging produces a width x height JPEG of src: scaled to cover the
// box, then centre-cropped. SVG sources are rasterized first.
func renderWithImaging(src string, width, height, quality int) ([]byte, error) {
	var img image.Image
	var err error
	if mediatypes.Ext(src) == ".svg" {
		img, err = rasterizeSVG(src, width, height)
	} else {
		img, err = loadImage(src)
	}
	if err != nil {
		return nil, err
	}

	thumb := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encoding thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
