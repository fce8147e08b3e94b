package renderer

// TileSize is the edge length of a render tile in pixels. Edge tiles are
// clamped to the image bounds and may be smaller.
const TileSize = 64

// Tile is a rectangular, disjoint sub-region of the image, identified by
// its grid coordinates so a worker can derive a deterministic PRNG seed.
type Tile struct {
	GridX, GridY           int
	MinX, MinY, MaxX, MaxY int // pixel bounds, MaxX/MaxY exclusive
}

// PartitionTiles splits a width x height image into TileSize x TileSize
// tiles, row-major, clamping the last row/column to the image bounds.
func PartitionTiles(width, height int) []Tile {
	var tiles []Tile
	for gy, y := 0, 0; y < height; gy, y = gy+1, y+TileSize {
		for gx, x := 0, 0; x < width; gx, x = gx+1, x+TileSize {
			maxX := min(x+TileSize, width)
			maxY := min(y+TileSize, height)
			tiles = append(tiles, Tile{
				GridX: gx, GridY: gy,
				MinX: x, MinY: y, MaxX: maxX, MaxY: maxY,
			})
		}
	}
	return tiles
}
