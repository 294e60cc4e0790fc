package entity

// Category groups elements by their role on the map
type Category int

const (
	CategoryTerrain Category = iota
	CategoryEnemy
	CategoryCollectible
	CategoryTrigger
	CategoryDecoration
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryTerrain:
		return "terrain"
	case CategoryEnemy:
		return "enemy"
	case CategoryCollectible:
		return "collectible"
	case CategoryTrigger:
		return "trigger"
	case CategoryDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Liquid is the liquid type of a tile
type Liquid int

const (
	LiquidNone Liquid = iota
	LiquidWater
	LiquidLava
)

// Variant tags elements with a special ability
type Variant int

const (
	VariantNone Variant = iota
	VariantGrow
	VariantFire
	VariantQuestion
)

// Kind identifies every element the simulation knows about.
// The set is closed: behavior code switches over it exhaustively.
type Kind int

const (
	KindNone Kind = iota

	// Terrain tiles
	KindGround
	KindBrick
	KindQuestion
	KindUsedBlock
	KindHardBlock
	KindPipe
	KindWater
	KindLava
	KindIce
	KindSpikes
	KindCloud

	// Objects
	KindPlayerStart
	KindPlayer
	KindGoomba
	KindTurtle
	KindFlyingTurtle
	KindPlant
	KindHopper
	KindFireDino
	KindBomb
	KindPopSpike
	KindRotatingSpike
	KindLightning
	KindCoin
	KindGem
	KindMushroom
	KindFireFlower
	KindGoal
	KindSpring
	KindBoostPad
	KindCrate
	KindBush
	KindSign
	KindFireball
	KindBanana
)

// ElementDef holds the static attributes of one element type.
// Sizes and speeds are in tiles and tiles per second.
type ElementDef struct {
	ID       int
	Name     string
	Category Category
	Kind     Kind

	Solid        bool
	Lethal       bool
	Destructible bool
	Liquid       Liquid
	Friction     float64 // 1 = normal, <1 = slippery
	Gravity      bool
	Speed        float64
	Points       int

	Win         bool
	BounceForce float64 // tiles/s
	BoostSpeed  float64 // tiles/s
	Variant     Variant

	Width, Height float64
	StompRatio    float64 // fraction of enemy height a stomp must land above
	Static        bool    // never integrated by physics
	Hazard        bool    // cannot be stomped or shot
}

// Registry is a precomputed lookup table of element definitions
type Registry struct {
	byID   map[int]*ElementDef
	byName map[string]*ElementDef
	byKind map[Kind]*ElementDef
}

// NewRegistry indexes the given definitions by id, name and kind.
// Definitions with ID 0 are objects and are not reachable by id.
func NewRegistry(defs []ElementDef) *Registry {
	r := &Registry{
		byID:   make(map[int]*ElementDef, len(defs)),
		byName: make(map[string]*ElementDef, len(defs)),
		byKind: make(map[Kind]*ElementDef, len(defs)),
	}
	for i := range defs {
		d := &defs[i]
		if d.Friction == 0 {
			d.Friction = 1
		}
		if d.Width == 0 {
			d.Width = 1
		}
		if d.Height == 0 {
			d.Height = 1
		}
		if d.ID != 0 {
			r.byID[d.ID] = d
		}
		if d.Name != "" {
			r.byName[d.Name] = d
		}
		r.byKind[d.Kind] = d
	}
	return r
}

// ByID returns the definition for a tile id, or nil for unknown ids
func (r *Registry) ByID(id int) *ElementDef {
	return r.byID[id]
}

// ByName returns the definition for an object name, or nil
func (r *Registry) ByName(name string) *ElementDef {
	return r.byName[name]
}

// ByKind returns the definition for a kind, or nil
func (r *Registry) ByKind(k Kind) *ElementDef {
	return r.byKind[k]
}

// Tile ids used by the default registry
const (
	TileEmpty     = 0
	TileGround    = 1
	TileBrick     = 2
	TileQuestion  = 3
	TileUsedBlock = 4
	TileHardBlock = 5
	TilePipe      = 6
	TileWater     = 7
	TileLava      = 8
	TileIce       = 9
	TileSpikes    = 10
	TileCloud     = 11
)

// SpentTileID is the id a question block turns into once hit
const SpentTileID = TileUsedBlock

// DefaultElements returns the built-in element table
func DefaultElements() []ElementDef {
	return []ElementDef{
		{ID: TileGround, Name: "Ground", Kind: KindGround, Solid: true},
		{ID: TileBrick, Name: "Brick", Kind: KindBrick, Solid: true, Destructible: true, Points: 50},
		{ID: TileQuestion, Name: "Question Block", Kind: KindQuestion, Solid: true, Points: 100, Variant: VariantQuestion},
		{ID: TileUsedBlock, Name: "Used Block", Kind: KindUsedBlock, Solid: true},
		{ID: TileHardBlock, Name: "Hard Block", Kind: KindHardBlock, Solid: true},
		{ID: TilePipe, Name: "Pipe", Kind: KindPipe, Solid: true},
		{ID: TileWater, Name: "Water", Kind: KindWater, Liquid: LiquidWater},
		{ID: TileLava, Name: "Lava", Kind: KindLava, Liquid: LiquidLava, Lethal: true},
		{ID: TileIce, Name: "Ice", Kind: KindIce, Solid: true, Friction: 0.25},
		{ID: TileSpikes, Name: "Spikes", Kind: KindSpikes, Lethal: true},
		{ID: TileCloud, Name: "Cloud", Category: CategoryDecoration, Kind: KindCloud},

		{Name: "Player Start", Category: CategoryTrigger, Kind: KindPlayerStart, Static: true},
		{Name: "Player", Category: CategoryTrigger, Kind: KindPlayer, Gravity: true, Width: 0.75, Height: 0.95},

		{Name: "Goomba", Category: CategoryEnemy, Kind: KindGoomba, Gravity: true, Speed: 1.5, Points: 100, Width: 0.9, Height: 0.9, StompRatio: 0.5},
		{Name: "Turtle", Category: CategoryEnemy, Kind: KindTurtle, Gravity: true, Speed: 1.2, Points: 200, Width: 0.9, Height: 1.2, StompRatio: 0.6},
		{Name: "Flying Turtle", Category: CategoryEnemy, Kind: KindFlyingTurtle, Speed: 1.2, Points: 300, Width: 0.9, Height: 1.2, StompRatio: 0.6},
		{Name: "Piranha Plant", Category: CategoryEnemy, Kind: KindPlant, Points: 200, Width: 0.8, Height: 1.4, Static: true},
		{Name: "Hopper", Category: CategoryEnemy, Kind: KindHopper, Gravity: true, Speed: 1, Points: 200, Width: 0.9, Height: 0.9, StompRatio: 0.7},
		{Name: "Fire Dino", Category: CategoryEnemy, Kind: KindFireDino, Gravity: true, Speed: 0.8, Points: 300, Width: 1, Height: 1.2, StompRatio: 0.5},
		{Name: "Bob-omb", Category: CategoryEnemy, Kind: KindBomb, Gravity: true, Speed: 1.2, Points: 100, Width: 0.8, Height: 0.8, StompRatio: 0.5},
		{Name: "Pop-up Spike", Category: CategoryEnemy, Kind: KindPopSpike, Width: 1, Height: 0.5, Static: true, Hazard: true},
		{Name: "Rotating Spike", Category: CategoryEnemy, Kind: KindRotatingSpike, Width: 0.5, Height: 0.5, Static: true, Hazard: true},
		{Name: "Lightning Trap", Category: CategoryEnemy, Kind: KindLightning, Width: 0.6, Height: 3, Static: true, Hazard: true},

		{Name: "Coin", Category: CategoryCollectible, Kind: KindCoin, Points: 100, Width: 0.6, Height: 0.8, Static: true},
		{Name: "Gem", Category: CategoryCollectible, Kind: KindGem, Points: 500, Width: 0.7, Height: 0.7, Static: true},
		{Name: "Mushroom", Category: CategoryCollectible, Kind: KindMushroom, Gravity: true, Speed: 2.5, Points: 1000, Width: 0.9, Height: 0.9, Variant: VariantGrow},
		{Name: "Fire Flower", Category: CategoryCollectible, Kind: KindFireFlower, Points: 1000, Width: 0.9, Height: 0.9, Variant: VariantFire, Static: true},

		{Name: "Goal Flag", Category: CategoryTrigger, Kind: KindGoal, Win: true, Width: 0.5, Height: 4, Static: true},
		{Name: "Spring", Category: CategoryTrigger, Kind: KindSpring, BounceForce: 26, Width: 1, Height: 0.6, Static: true},
		{Name: "Boost Pad", Category: CategoryTrigger, Kind: KindBoostPad, BoostSpeed: 32, Width: 1, Height: 0.3, Static: true},

		{Name: "Crate", Category: CategoryDecoration, Kind: KindCrate, Solid: true, Static: true},
		{Name: "Bush", Category: CategoryDecoration, Kind: KindBush, Static: true},
		{Name: "Sign", Category: CategoryDecoration, Kind: KindSign, Static: true},

		{Name: "Fireball", Kind: KindFireball, Width: 0.4, Height: 0.4},
		{Name: "Banana", Kind: KindBanana, Gravity: true, Width: 0.4, Height: 0.4},
	}
}

// DefaultRegistry builds a registry over DefaultElements
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultElements())
}
