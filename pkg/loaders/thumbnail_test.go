package loaders

import "testing"

func TestThumbnailProducesRequestedDimensions(t *testing.T) {
	buf := make([]uint32, 64*64)
	for i := range buf {
		buf[i] = 0x808080
	}
	img := Thumbnail(buf, 64, 64, 16, 16)
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("Thumbnail() dims = %dx%d, want 16x16", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
