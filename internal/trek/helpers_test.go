package trek

import (
	"bytes"

	"github.com/vovakirdan/tui-trek/internal/assets"
	"github.com/vovakirdan/tui-trek/internal/config"
	"github.com/vovakirdan/tui-trek/internal/core"
)

// scriptSource replays fixed draws, then returns fallback forever.
type scriptSource struct {
	values   []float64
	fallback float64
	draws    int
}

func (s *scriptSource) Float64() float64 {
	s.draws++
	if len(s.values) == 0 {
		return s.fallback
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

// rollOf is the draw that makes core.Roll(src, n) return k.
func rollOf(k, n int) float64 {
	return (float64(k) - 0.5) / float64(n)
}

// pickOf is the draw that makes core.Pick(src, n) return k.
func pickOf(k, n int) float64 {
	return (float64(k) + 0.5) / float64(n)
}

// scriptConsole answers prompts from queues and records all output.
// Exhausted command queues resign; exhausted numeric queues answer min.
type scriptConsole struct {
	bytes.Buffer
	commands []string
	floats   []float64
	ints     []int
	confirms []bool
	prompts  []string
}

func (c *scriptConsole) Command(prompt string) string {
	c.prompts = append(c.prompts, prompt)
	if len(c.commands) == 0 {
		return "xxx"
	}
	v := c.commands[0]
	c.commands = c.commands[1:]
	return core.NormalizeCommand(v)
}

func (c *scriptConsole) Confirm(prompt string, def bool) bool {
	c.prompts = append(c.prompts, prompt)
	if len(c.confirms) == 0 {
		return def
	}
	v := c.confirms[0]
	c.confirms = c.confirms[1:]
	return v
}

func (c *scriptConsole) Float(prompt string, min, max float64) float64 {
	c.prompts = append(c.prompts, prompt)
	if len(c.floats) == 0 {
		return min
	}
	v := c.floats[0]
	c.floats = c.floats[1:]
	return core.ClampF(v, min, max)
}

func (c *scriptConsole) Int(prompt string, min, max int) int {
	c.prompts = append(c.prompts, prompt)
	if len(c.ints) == 0 {
		return min
	}
	v := c.ints[0]
	c.ints = c.ints[1:]
	return core.Clamp(v, min, max)
}

// newBareGame returns a mission with an empty galaxy and the ship at pos.
// Tests populate it with the place helpers.
func newBareGame(con *scriptConsole, src core.Source, pos core.Coord) *Game {
	cfg := config.DefaultTrekConfig()
	g := &Game{
		cfg: cfg,
		con: con,
		res: assets.New(),
		rng: src,
		log: newDiscardLogger(),
	}

	for x := 0; x < core.QuadrantSize; x++ {
		for y := 0; y < core.QuadrantSize; y++ {
			g.Quadrants[x][y].Name = QuadrantName(core.NewCoord(x, y), true)
		}
	}

	g.Ship = newShip(pos, cfg.Ship.Energy, cfg.Ship.Torpedoes)
	g.setSector(pos, SectorShip)

	g.Stardate = 2500
	g.TimeStart = 2500
	g.MissionDays = 30
	g.TimeUp = 2530
	return g
}

func (g *Game) placeKlingon(pos core.Coord, energy int) int {
	g.setSector(pos, SectorKlingon)
	g.Klingons = append(g.Klingons, Klingon{Pos: pos, Energy: energy})
	g.quadrant(pos.Quadrant()).Klingons++
	g.TotalKlingons++
	g.KlingonsLeft++
	return len(g.Klingons) - 1
}

func (g *Game) placeStarbase(pos core.Coord) int {
	g.setSector(pos, SectorStarbase)
	g.Starbases = append(g.Starbases, Starbase{Pos: pos})
	g.quadrant(pos.Quadrant()).Starbases++
	g.TotalStarbases++
	g.StarbasesLeft++
	return len(g.Starbases) - 1
}

func (g *Game) placeStar(pos core.Coord) {
	g.setSector(pos, SectorStar)
	g.quadrant(pos.Quadrant()).Stars++
}
