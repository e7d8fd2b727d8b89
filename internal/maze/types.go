package maze

import (
	"github.com/KirkDiggler/maze-api/internal/errors"
)

// CellState is the state of a single grid cell
type CellState uint8

const (
	// Wall blocks movement and line of sight
	Wall CellState = iota
	// Open is walkable floor
	Open
)

// RoomMode selects how rooms are added to the corridor network
type RoomMode string

const (
	// RoomModeRect carves NumberOfRooms rectangles after the corridor pass
	RoomModeRect RoomMode = "rect"
	// RoomModePatch opens small 2x2 lattice patches while carving
	RoomModePatch RoomMode = "patch"
)

// Default generation values
const (
	DefaultCorridorWidth   = 2
	DefaultPatchRoomChance = 0.1
	// MaxCells caps the interior lattice (width/corridorWidth * height/corridorWidth)
	MaxCells = 1 << 24
	// furnitureChance is the chance a patch room requests a furniture slot
	furnitureChance = 0.2
	// maxRoomAttempts bounds the search for a rectangle that fits
	maxRoomAttempts = 32
)

// Cell addresses a grid cell by column and row
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Coord is a world-space coordinate, grid index scaled by the corridor width
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Config is the regenerable record a maze is built from
type Config struct {
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	CorridorWidth   int      `json:"corridor_width"`
	NumberOfRooms   int      `json:"number_of_rooms"`
	MinRoomSize     int      `json:"min_room_size"`
	MaxRoomSize     int      `json:"max_room_size"`
	RandomSeed      int64    `json:"random_seed"`
	RoomMode        RoomMode `json:"room_mode,omitempty"`
	PatchRoomChance float64  `json:"patch_room_chance,omitempty"`
}

// Columns returns the grid width including the border ring
func (c *Config) Columns() int {
	if c.CorridorWidth <= 0 {
		return 0
	}
	return c.Width/c.CorridorWidth + 2
}

// Rows returns the grid height including the border ring
func (c *Config) Rows() int {
	if c.CorridorWidth <= 0 {
		return 0
	}
	return c.Height/c.CorridorWidth + 2
}

func (c *Config) roomMode() RoomMode {
	if c.RoomMode == "" {
		return RoomModeRect
	}
	return c.RoomMode
}

func (c *Config) patchChance() float64 {
	if c.PatchRoomChance <= 0 {
		return DefaultPatchRoomChance
	}
	return c.PatchRoomChance
}

// Validate reports configurations that cannot produce a maze.
// The error carries errors.CodeConfiguration.
func (c *Config) Validate() error {
	vb := errors.NewConfigurationBuilder()

	errors.ValidateMin("corridor_width", c.CorridorWidth, 1, vb)
	errors.ValidateMin("number_of_rooms", c.NumberOfRooms, 0, vb)

	if c.CorridorWidth > 0 {
		// one interior lattice cell needs width/corridorWidth >= 1
		if c.Width/c.CorridorWidth < 1 {
			vb.Fieldf("width", "must be at least corridor_width (%d), got %d", c.CorridorWidth, c.Width)
		}
		if c.Height/c.CorridorWidth < 1 {
			vb.Fieldf("height", "must be at least corridor_width (%d), got %d", c.CorridorWidth, c.Height)
		}
		cols, rows := c.Width/c.CorridorWidth, c.Height/c.CorridorWidth
		if cols >= 1 && rows >= 1 && (cols > MaxCells || rows > MaxCells/cols) {
			vb.Fieldf("width", "grid of %dx%d cells exceeds %d cells", cols, rows, MaxCells)
		}
	}

	if c.NumberOfRooms > 0 && c.roomMode() == RoomModeRect {
		errors.ValidateMin("min_room_size", c.MinRoomSize, 1, vb)
		if c.MaxRoomSize < c.MinRoomSize {
			vb.Fieldf("max_room_size", "must be >= min_room_size (%d), got %d", c.MinRoomSize, c.MaxRoomSize)
		}
	}

	errors.ValidateEnum("room_mode", string(c.roomMode()),
		[]string{string(RoomModeRect), string(RoomModePatch)}, vb)

	if c.PatchRoomChance < 0 || c.PatchRoomChance > 1 {
		vb.Fieldf("patch_room_chance", "must be within [0, 1], got %v", c.PatchRoomChance)
	}

	return vb.Build()
}
