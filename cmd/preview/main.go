// Command preview renders a scene and blits tiles into a terminal grid as
// they complete, using half-block characters so each terminal cell carries
// two vertical pixels of colour.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/arnovandash/go-raytracer/pkg/loaders"
	"github.com/arnovandash/go-raytracer/pkg/renderer"
)

// screenLogger implements core.Logger by writing into the terminal's
// bottom status line instead of stdout, so renderer progress doesn't
// scribble over the live preview.
type screenLogger struct {
	screen tcell.Screen
	row    int
}

func (l *screenLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	width, _ := l.screen.Size()
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(msg) {
			ch = rune(msg[x])
		}
		l.screen.SetContent(x, l.row, ch, nil, tcell.StyleDefault)
	}
	l.screen.Show()
}

func main() {
	scenePath := flag.String("scene", "", "Path to a YAML scene file (required)")
	depth := flag.Int("depth", 0, "Recursion depth override (0 = use scene default)")
	super := flag.Int("super", 0, "Samples-per-pixel override (0 = use scene default)")
	snapshotPath := flag.String("snapshot", "", "Write a downsampled PNG proxy here after every snapshot-every'th tile (disabled if empty)")
	snapshotEvery := flag.Int("snapshot-every", 8, "Tiles between snapshot writes")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --scene is required")
		os.Exit(1)
	}

	sceneObj, err := loaders.LoadScene(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	if *depth > 0 {
		sceneObj.MaxDepth = *depth
	}
	if *super > 0 {
		sceneObj.Super = *super
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.Clear()

	_, termHeight := screen.Size()
	statusRow := termHeight - 1

	pipeline := renderer.NewPipeline(sceneObj, &screenLogger{screen: screen, row: statusRow})

	var mu sync.Mutex
	tilesDone := 0
	pipeline.OnTile = func(tile renderer.Tile, buf []uint32) {
		mu.Lock()
		defer mu.Unlock()
		blitTile(screen, buf, sceneObj.Width, tile)
		screen.Show()

		tilesDone++
		if *snapshotPath != "" && tilesDone%*snapshotEvery == 0 {
			if err := writeSnapshot(*snapshotPath, buf, sceneObj.Width, sceneObj.Height); err != nil {
				(&screenLogger{screen: screen, row: statusRow}).Printf("snapshot failed: %v", err)
			}
		}
	}

	done := make(chan struct{})
	go func() {
		pipeline.Render()
		close(done)
	}()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	for {
		select {
		case <-done:
			waitForQuit(screen, events)
			return
		case ev := <-events:
			if quitEvent(ev) {
				return
			}
		}
	}
}

// blitTile draws one completed tile's pixels into the terminal grid. Each
// terminal row covers two image rows: the upper half-block glyph's
// foreground is the even row's colour, its background the odd row's.
func blitTile(screen tcell.Screen, buf []uint32, width int, tile renderer.Tile) {
	minY := tile.MinY - tile.MinY%2
	for py := minY; py < tile.MaxY; py += 2 {
		for px := tile.MinX; px < tile.MaxX; px++ {
			top := buf[py*width+px]
			bottom := top
			if py+1 < len(buf)/width {
				bottom = buf[(py+1)*width+px]
			}
			fg := tcell.NewRGBColor(int32(top>>16&0xFF), int32(top>>8&0xFF), int32(top&0xFF))
			bg := tcell.NewRGBColor(int32(bottom>>16&0xFF), int32(bottom>>8&0xFF), int32(bottom&0xFF))
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			screen.SetContent(px, py/2, '▀', nil, style)
		}
	}
}

// thumbnailScale downsamples a full render to roughly a quarter of each
// dimension, floored at 1px, for a snapshot proxy small enough to write to
// disk every few tiles without the encode cost of the full frame.
const thumbnailScale = 4

// writeSnapshot downsamples the in-progress frame buffer and writes it as a
// PNG proxy, overwriting any previous snapshot at the same path.
func writeSnapshot(path string, buf []uint32, width, height int) error {
	thumbWidth := width / thumbnailScale
	if thumbWidth < 1 {
		thumbWidth = 1
	}
	thumbHeight := height / thumbnailScale
	if thumbHeight < 1 {
		thumbHeight = 1
	}

	img := loaders.Thumbnail(buf, width, height, thumbWidth, thumbHeight)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func quitEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q'
}

func waitForQuit(screen tcell.Screen, events chan tcell.Event) {
	for ev := range events {
		if quitEvent(ev) {
			return
		}
	}
}
