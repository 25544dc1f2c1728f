package trek

import (
	"fmt"

	"github.com/vovakirdan/tui-trek/internal/core"
)

// Verify checks that the sector grid, the entity lists and the quadrant and
// global counters agree. It returns an error wrapping ErrInvariant that
// describes the first violation found.
func (g *Game) Verify() error {
	var klingons, starbases, stars [core.QuadrantSize][core.QuadrantSize]int

	if g.Ship.Pos.Outside() {
		return fmt.Errorf("%w: ship outside the galaxy at %v", ErrInvariant, g.Ship.Pos)
	}
	if t := g.sector(g.Ship.Pos); t != SectorShip {
		return fmt.Errorf("%w: ship cell %v holds %s", ErrInvariant, g.Ship.Pos, t)
	}
	if g.Ship.Energy < 0 || g.Ship.Shield < 0 || g.Ship.Torpedoes < 0 {
		return fmt.Errorf("%w: negative ship supplies (energy %d, shield %d, torpedoes %d)",
			ErrInvariant, g.Ship.Energy, g.Ship.Shield, g.Ship.Torpedoes)
	}
	for _, dev := range g.Ship.Devices {
		if dev.Damage < 0 {
			return fmt.Errorf("%w: negative damage on %s", ErrInvariant, dev.Kind)
		}
	}

	seen := map[core.Coord]bool{g.Ship.Pos: true}

	liveKlingons := 0
	for _, k := range g.Klingons {
		if k.Destroyed {
			continue
		}
		if err := g.verifyEntity(k.Pos, SectorKlingon, seen); err != nil {
			return err
		}
		q := k.Pos.Quadrant()
		klingons[q.X][q.Y]++
		liveKlingons++
	}

	liveStarbases := 0
	for _, b := range g.Starbases {
		if b.Destroyed {
			continue
		}
		if err := g.verifyEntity(b.Pos, SectorStarbase, seen); err != nil {
			return err
		}
		q := b.Pos.Quadrant()
		starbases[q.X][q.Y]++
		liveStarbases++
	}

	cells := map[SectorType]int{}
	for x := 0; x < core.GalaxySize; x++ {
		for y := 0; y < core.GalaxySize; y++ {
			t := g.Sectors[x][y]
			cells[t]++
			if t == SectorStar {
				stars[x/core.QuadrantSize][y/core.QuadrantSize]++
			}
		}
	}
	if cells[SectorShip] != 1 {
		return fmt.Errorf("%w: %d ship cells", ErrInvariant, cells[SectorShip])
	}
	if cells[SectorKlingon] != liveKlingons {
		return fmt.Errorf("%w: %d klingon cells for %d live klingons", ErrInvariant, cells[SectorKlingon], liveKlingons)
	}
	if cells[SectorStarbase] != liveStarbases {
		return fmt.Errorf("%w: %d starbase cells for %d live starbases", ErrInvariant, cells[SectorStarbase], liveStarbases)
	}

	for x := 0; x < core.QuadrantSize; x++ {
		for y := 0; y < core.QuadrantSize; y++ {
			quad := g.Quadrants[x][y]
			if quad.Klingons != klingons[x][y] || quad.Starbases != starbases[x][y] || quad.Stars != stars[x][y] {
				return fmt.Errorf("%w: quadrant %d,%d counts %03d, grid holds %d%d%d",
					ErrInvariant, x, y, quad.Code(), klingons[x][y], starbases[x][y], stars[x][y])
			}
		}
	}

	if g.KlingonsLeft != liveKlingons {
		return fmt.Errorf("%w: %d klingons left, %d alive", ErrInvariant, g.KlingonsLeft, liveKlingons)
	}
	if g.StarbasesLeft != liveStarbases {
		return fmt.Errorf("%w: %d starbases left, %d alive", ErrInvariant, g.StarbasesLeft, liveStarbases)
	}
	if g.KlingonsLeft > g.TotalKlingons || g.StarbasesLeft > g.TotalStarbases {
		return fmt.Errorf("%w: more entities left than generated", ErrInvariant)
	}

	return nil
}

func (g *Game) verifyEntity(pos core.Coord, want SectorType, seen map[core.Coord]bool) error {
	if pos.Outside() {
		return fmt.Errorf("%w: %s outside the galaxy at %v", ErrInvariant, want, pos)
	}
	if t := g.sector(pos); t != want {
		return fmt.Errorf("%w: %s cell %v holds %s", ErrInvariant, want, pos, t)
	}
	if seen[pos] {
		return fmt.Errorf("%w: two entities share cell %v", ErrInvariant, pos)
	}
	seen[pos] = true
	return nil
}
