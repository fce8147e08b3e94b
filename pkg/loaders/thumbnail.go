package loaders

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail downsamples a packed pixel buffer to the given width and
// height. cmd/preview calls this every few completed tiles to write a
// small PNG proxy of the in-progress render to disk, without paying the
// encode cost of the full frame.
func Thumbnail(buf []uint32, width, height, thumbWidth, thumbHeight int) *image.RGBA {
	src := toRGBA(buf, width, height)
	dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
