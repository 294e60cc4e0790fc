package config

import (
	"image/color"
	"strconv"
	"strings"
)

// GameMap is the root config for map JSON files
type GameMap struct {
	Name            string        `json:"name,omitempty"`
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	TileSize        int           `json:"tileSize"`
	BackgroundColor string        `json:"backgroundColor"`
	Tiles           [][]int       `json:"tiles"`
	Objects         []MapObject   `json:"objects"`
	CustomImages    []CustomImage `json:"customImages,omitempty"`
}

// MapObject is a placed object. X and Y are tile coordinates.
type MapObject struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Text string `json:"text,omitempty"`
}

// CustomImage is a user-supplied sprite carried along with the map.
// The simulation ignores it; hosts may use it for drawing.
type CustomImage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Data string `json:"data"`
}

var defaultBackground = color.RGBA{92, 148, 252, 255}

// Background parses BackgroundColor ("#rrggbb" or "rrggbb").
// Malformed values fall back to sky blue.
func (m *GameMap) Background() color.RGBA {
	s := strings.TrimPrefix(strings.TrimSpace(m.BackgroundColor), "#")
	if len(s) != 6 {
		return defaultBackground
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return defaultBackground
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

// ObjectsOfType returns the objects of the given type in map order
func (m *GameMap) ObjectsOfType(typ string) []MapObject {
	var out []MapObject
	for _, o := range m.Objects {
		if o.Type == typ {
			out = append(out, o)
		}
	}
	return out
}
