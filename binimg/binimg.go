// Package binimg converts pixel-format images into the binary boolean
// matrices consumed by the ccl labeller.
//
// Each pixel is reduced to an 8-bit greyscale luminance and compared
// against a threshold: luminance below the threshold is foreground (true),
// everything else background (false). With DefaultThreshold only pure
// white counts as background, which suits scanned line art and masks.
//
// Decoding supports any format registered with the stdlib image package;
// PNG, JPEG and GIF are registered here. Callers needing other formats can
// blank-import their decoders and use FromImage directly.
package binimg

import (
	"fmt"
	"image"
	"io"
	"os"

	// Register the common decoders for Decode and LoadFile.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// DefaultThreshold marks every pixel darker than pure white as foreground.
const DefaultThreshold uint8 = 255

// FromImage reduces img to a boolean matrix: true where the pixel's
// luminance is strictly below threshold. Fully transparent pixels are
// treated as white, i.e. background.
//
// Luminance uses the integer approximation (306·R + 601·G + 117·B + 512) >> 10
// over 8-bit components.
//
// Complexity: O(W×H) time and memory.
func FromImage(img image.Image, threshold uint8) [][]bool {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := make([][]bool, h)
	for y := 0; y < h; y++ {
		out[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				continue // transparent counts as white
			}
			lum := uint8((306*(r>>8) + 601*(g>>8) + 117*(b>>8) + 0x200) >> 10)
			out[y][x] = lum < threshold
		}
	}

	return out
}

// Decode reads an encoded image from r and converts it via FromImage.
func Decode(r io.Reader, threshold uint8) ([][]bool, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("binimg: decode image: %w", err)
	}

	return FromImage(img, threshold), nil
}

// LoadFile opens path and converts its contents via Decode.
func LoadFile(path string, threshold uint8) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("binimg: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, threshold)
}
