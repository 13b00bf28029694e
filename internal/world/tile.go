// Package world holds the static tile grid and draws it through a camera view.
package world

// Kind identifies what fills a tile.
type Kind uint8

const (
	KindOpen Kind = iota
	KindSolid
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// Layer is the plane a tile belongs to.
type Layer uint8

const (
	LayerForeground Layer = iota
	LayerBackground
)

func (l Layer) String() string {
	switch l {
	case LayerForeground:
		return "foreground"
	case LayerBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Tile is one grid cell. Tiles are values and never change after generation.
type Tile struct {
	Kind  Kind
	Solid bool
	Layer Layer
}

// OpenTile returns the passable foreground tile used above the split row.
func OpenTile() Tile {
	return Tile{Kind: KindOpen, Solid: false, Layer: LayerForeground}
}

// SolidTile returns the blocking background tile used from the split row down.
func SolidTile() Tile {
	return Tile{Kind: KindSolid, Solid: true, Layer: LayerBackground}
}
