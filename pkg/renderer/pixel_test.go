package renderer

import (
	"math"
	"testing"

	"github.com/arnovandash/go-raytracer/pkg/core"
)

func TestPackRoundsToNearest(t *testing.T) {
	got := Pack(core.NewVec3(1, 0.5, 0))
	wantR := uint32(math.Round(1 * 255))
	wantG := uint32(math.Round(0.5 * 255))
	wantB := uint32(0)
	want := wantR<<16 | wantG<<8 | wantB
	if got != want {
		t.Errorf("Pack() = %#06x, want %#06x", got, want)
	}
}

func TestPackExtractChannels(t *testing.T) {
	c := core.NewVec3(0.2, 0.6, 0.9)
	packed := Pack(c)
	r := (packed >> 16) & 0xFF
	g := (packed >> 8) & 0xFF
	b := packed & 0xFF
	if r != channelByte(0.2) || g != channelByte(0.6) || b != channelByte(0.9) {
		t.Errorf("Pack() channels = (%d,%d,%d), want (%d,%d,%d)", r, g, b, channelByte(0.2), channelByte(0.6), channelByte(0.9))
	}
}

func TestSampleAccumulatorSingleSampleMatchesDirectPack(t *testing.T) {
	c := core.NewVec3(0.3, 0.7, 0.1)
	var acc SampleAccumulator
	acc.Add(c)
	if acc.Pack() != Pack(c) {
		t.Errorf("single-sample accumulator = %#06x, want %#06x", acc.Pack(), Pack(c))
	}
}

func TestSampleAccumulatorTruncatesTowardZero(t *testing.T) {
	var acc SampleAccumulator
	// R channel: 255 twice, 0 twice -> sum=510, count=4 -> 127.5, truncated to 127 (rounding would give 128)
	acc.Add(core.NewVec3(1, 0, 0))
	acc.Add(core.NewVec3(1, 0, 0))
	acc.Add(core.NewVec3(0, 0, 0))
	acc.Add(core.NewVec3(0, 0, 0))
	packed := acc.Pack()
	r := (packed >> 16) & 0xFF
	if r != 127 {
		t.Errorf("truncated average R = %d, want 127", r)
	}
}

func TestDimBufferHalvesEachChannel(t *testing.T) {
	buf := []uint32{0xFF8040}
	DimBuffer(buf)
	want := uint32((0xFF>>1)<<16 | (0x80>>1)<<8 | (0x40 >> 1))
	if buf[0] != want {
		t.Errorf("DimBuffer() = %#06x, want %#06x", buf[0], want)
	}
}
