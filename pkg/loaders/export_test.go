package loaders

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveImagePPMHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")
	buf := []uint32{0xFF0000, 0x00FF00, 0x0000FF, 0xFFFFFF}
	if err := SaveImage(path, buf, 2, 2); err != nil {
		t.Fatalf("SaveImage() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open written PPM: %v", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	magic, _ := r.ReadString('\n')
	if strings.TrimSpace(magic) != "P6" {
		t.Errorf("magic = %q, want P6", magic)
	}
	dims, _ := r.ReadString('\n')
	if strings.TrimSpace(dims) != "2 2" {
		t.Errorf("dims = %q, want \"2 2\"", dims)
	}
}

func TestSaveImagePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	buf := []uint32{0xFF0000, 0x00FF00, 0x0000FF, 0xFFFFFF}
	if err := SaveImage(path, buf, 2, 2); err != nil {
		t.Fatalf("SaveImage() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("expected non-empty PNG file")
	}
}

func TestSaveImageUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bmp")
	buf := []uint32{0xFF0000}
	if err := SaveImage(path, buf, 1, 1); err == nil {
		t.Errorf("expected error for unsupported extension")
	}
}
