package thumbnail

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	"pluto-gallery/internal/logging"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterizeSVG draws the SVG at src just large enough to cover a width x
// height box, on a white background. Icons without a view box are drawn at
// the box size.
func rasterizeSVG(src string, width, height int) (image.Image, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", src, err)
		}
	}()

	icon, err := oksvg.ReadIconStream(file, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	w, h := svgCoverSize(icon.ViewBox.W, icon.ViewBox.H, width, height)
	if w*h > MaxSourcePixels {
		return nil, fmt.Errorf("image %dx%d exceeds %d pixels", w, h, MaxSourcePixels)
	}

	logging.Debug("Rasterizing %s (%dx%d)", src, w, h)

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return canvas, nil
}

// svgCoverSize scales a vw x vh view box so it covers width x height while
// keeping its aspect ratio.
func svgCoverSize(vw, vh float64, width, height int) (int, int) {
	if vw <= 0 || vh <= 0 {
		return width, height
	}
	scale := math.Max(float64(width)/vw, float64(height)/vh)
	w := int(math.Ceil(vw * scale))
	h := int(math.Ceil(vh * scale))
	return max(w, width), max(h, height)
}
