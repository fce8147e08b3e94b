package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// SaveImage writes a packed 0x00RRGGBB pixel buffer to disk, choosing the
// encoder from the output path's extension: .ppm (hand-written P6,
// matching the format the core's external PPM collaborator historically
// produced), .png (standard library), .webp, or .tga.
func SaveImage(path string, buf []uint32, width, height int) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ppm" {
		return savePPM(path, buf, width, height)
	}

	img := toRGBA(buf, width, height)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".png":
		return png.Encode(f, img)
	case ".webp":
		return nativewebp.Encode(f, img, nil)
	case ".tga":
		return tga.Encode(f, img)
	default:
		return fmt.Errorf("unsupported image extension %q", ext)
	}
}

func toRGBA(buf []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, p := range buf {
		r := uint8(p >> 16 & 0xFF)
		g := uint8(p >> 8 & 0xFF)
		b := uint8(p & 0xFF)
		img.Set(i%width, i/width, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return img
}

// savePPM writes a binary P6 PPM: header, then raw R,G,B bytes per pixel
// in row-major order (no padding, no alpha channel).
func savePPM(path string, buf []uint32, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height)
	for _, p := range buf {
		w.Write([]byte{
			byte(p >> 16 & 0xFF),
			byte(p >> 8 & 0xFF),
			byte(p & 0xFF),
		})
	}
	return w.Flush()
}
