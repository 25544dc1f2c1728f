package trek

import (
	"fmt"

	"github.com/vovakirdan/tui-trek/internal/config"
	"github.com/vovakirdan/tui-trek/internal/core"
)

// maxPlacementAttempts bounds random placement inside a quadrant before
// falling back to a deterministic scan.
const maxPlacementAttempts = 1000

// New generates a fresh galaxy and returns a mission ready to Run. All
// randomness comes from src, so equal seeds give equal galaxies.
func New(cfg config.TrekConfig, src core.Source, con core.Console, opts ...Option) *Game {
	g := &Game{
		cfg: cfg,
		con: con,
		res: defaultResources(),
		rng: src,
		log: newDiscardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.generate()
	return g
}

func (g *Game) generate() {
	gc := g.cfg.Galaxy

	g.Stardate = g.rng.Float64()*gc.StardateSpan + gc.StardateMin
	g.MissionDays = gc.MissionDays + g.pick(gc.MissionDaysExtra)

	// The ship goes first so nothing else can claim its cell.
	home := core.NewCoord(g.pick(core.QuadrantSize), g.pick(core.QuadrantSize))
	pos := g.findEmpty(home)
	g.Ship = newShip(pos, g.cfg.Ship.Energy, g.cfg.Ship.Torpedoes)
	g.setSector(pos, SectorShip)

	for x := 0; x < core.QuadrantSize; x++ {
		for y := 0; y < core.QuadrantSize; y++ {
			g.populate(core.NewCoord(x, y))
		}
	}

	if g.TotalStarbases == 0 {
		q := core.NewCoord(g.pick(core.QuadrantSize), g.pick(core.QuadrantSize))
		g.addStarbase(q)
	}

	if g.TotalKlingons > g.MissionDays {
		g.MissionDays = g.TotalKlingons + 1
	}

	g.KlingonsLeft = g.TotalKlingons
	g.StarbasesLeft = g.TotalStarbases
	g.TimeStart = g.Stardate
	g.TimeUp = g.TimeStart + float64(g.MissionDays)

	g.log.Debug("galaxy generated",
		"klingons", g.TotalKlingons,
		"starbases", g.TotalStarbases,
		"stardate", g.Stardate,
		"days", g.MissionDays,
		"ship", g.Ship.Pos,
	)
}

// populate rolls the klingons, the starbase and the stars of one quadrant.
func (g *Game) populate(q core.Coord) {
	gc := g.cfg.Galaxy

	quad := g.quadrant(q)
	quad.Name = QuadrantName(q, true)

	var klingons int
	switch r := g.roll(100); {
	case r > gc.ThreeKlingons:
		klingons = 3
	case r > gc.TwoKlingons:
		klingons = 2
	case r > gc.OneKlingon:
		klingons = 1
	}
	for i := 0; i < klingons; i++ {
		g.addKlingon(q)
	}

	if g.roll(100) > gc.Starbase {
		g.addStarbase(q)
	}

	stars := g.roll(gc.MaxStars)
	for i := 0; i < stars; i++ {
		g.setSector(g.findEmpty(q), SectorStar)
		quad.Stars++
	}
}

func (g *Game) addKlingon(q core.Coord) {
	pos := g.findEmpty(q)
	g.setSector(pos, SectorKlingon)
	g.Klingons = append(g.Klingons, Klingon{Pos: pos, Energy: g.cfg.Klingon.Energy})
	g.quadrant(q).Klingons++
	g.TotalKlingons++
}

func (g *Game) addStarbase(q core.Coord) {
	pos := g.findEmpty(q)
	g.setSector(pos, SectorStarbase)
	g.Starbases = append(g.Starbases, Starbase{Pos: pos})
	g.quadrant(q).Starbases++
	g.TotalStarbases++
}

// findEmpty returns a random empty cell of quadrant q. After a bounded
// number of misses it takes the first empty cell in scan order; a full
// quadrant is a programming defect.
func (g *Game) findEmpty(q core.Coord) core.Coord {
	origin := q.Origin()

	for i := 0; i < maxPlacementAttempts; i++ {
		c := origin.Add(core.NewCoord(g.pick(core.QuadrantSize), g.pick(core.QuadrantSize)))
		if g.sector(c) == SectorEmpty {
			return c
		}
	}

	for x := 0; x < core.QuadrantSize; x++ {
		for y := 0; y < core.QuadrantSize; y++ {
			c := origin.Add(core.NewCoord(x, y))
			if g.sector(c) == SectorEmpty {
				return c
			}
		}
	}

	panic(fmt.Sprintf("trek: quadrant %d,%d has no empty sector", q.X, q.Y))
}
