package trek

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-trek/internal/core"
)

// Condition is the ship's alert state shown on the short-range scan.
type Condition string

const (
	ConditionGreen  Condition = "GREEN"
	ConditionYellow Condition = "YELLOW"
	ConditionRed    Condition = "*RED*"
	ConditionDocked Condition = "DOCKED"
)

// Conditions lists every condition label.
func Conditions() []Condition {
	return []Condition{ConditionGreen, ConditionYellow, ConditionRed, ConditionDocked}
}

// Color returns the display color renderers should use for the label.
func (c Condition) Color() core.Color {
	switch c {
	case ConditionGreen:
		return core.ColorGreen
	case ConditionYellow:
		return core.ColorYellow
	case ConditionRed:
		return core.ColorBrightRed
	case ConditionDocked:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// Condition computes the current alert state.
func (g *Game) Condition() Condition {
	switch {
	case g.Ship.Docked:
		return ConditionDocked
	case g.currentQuadrant().Klingons > 0:
		return ConditionRed
	case g.Ship.Energy < g.cfg.Ship.Energy/10:
		return ConditionYellow
	default:
		return ConditionGreen
	}
}

const scanBorder = "---------------------------------------------------------------"

// ShortRangeScan checks for docking and prints the quadrant grid with the
// status panel.
func (g *Game) ShortRangeScan() {
	g.checkDocking()

	if g.inoperable(ShortRangeSensors) {
		return
	}

	origin := g.Ship.Pos.Quadrant().Origin()
	q := g.Ship.Pos.Quadrant()
	s := g.Ship.Pos.Sector()

	panel := [core.QuadrantSize]string{
		fmt.Sprintf("Stardate            %.2f", g.Stardate),
		fmt.Sprintf("Condition           %s", g.Condition()),
		fmt.Sprintf("Quadrant            %d, %d", q.X+1, q.Y+1),
		fmt.Sprintf("Sector              %d, %d", s.X+1, s.Y+1),
		fmt.Sprintf("Photon Torpedoes    %d", g.Ship.Torpedoes),
		fmt.Sprintf("Total Energy        %d", g.Ship.TotalEnergy()),
		fmt.Sprintf("Shields             %d", g.Ship.Shield),
		fmt.Sprintf("Klingons Remaining  %d", g.KlingonsLeft),
	}

	g.printf("%s\n", scanBorder)
	for y := 0; y < core.QuadrantSize; y++ {
		var row strings.Builder
		for x := 0; x < core.QuadrantSize; x++ {
			row.WriteString(g.sector(origin.Add(core.NewCoord(x, y))).Glyph())
		}
		g.printf("%s    %s\n", row.String(), panel[y])
	}
	g.printf("%s\n", scanBorder)
}

// checkDocking docks the ship when a starbase occupies an adjacent sector
// of the same quadrant, and undocks it otherwise. Docking drops the shields
// and restocks energy and torpedoes.
func (g *Game) checkDocking() {
	g.Ship.Docked = false

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c := g.Ship.Pos.Add(core.NewCoord(dx, dy))
			if c.SameQuadrant(g.Ship.Pos) && g.sector(c) == SectorStarbase {
				g.Ship.Docked = true
			}
		}
	}

	if !g.Ship.Docked {
		return
	}

	g.Ship.Energy = g.cfg.Ship.Energy
	g.Ship.Torpedoes = g.cfg.Ship.Torpedoes
	g.Ship.Shield = 0
	g.printf("Shields dropped for docking purposes.\n")
}

// LongRangeScan prints the scan codes of the 3x3 block of quadrants around
// the ship and marks them visited.
func (g *Game) LongRangeScan() {
	if g.inoperable(LongRangeSensors) {
		return
	}

	q := g.Ship.Pos.Quadrant()
	g.printf("Long Range Scan for Quadrant %d, %d\n", q.X+1, q.Y+1)

	const border = "-------------------"
	for dy := -1; dy <= 1; dy++ {
		g.printf("%s\n:", border)
		for dx := -1; dx <= 1; dx++ {
			n := q.Add(core.NewCoord(dx, dy))
			if !n.InQuadrant() {
				g.printf(" *** :")
				continue
			}
			quad := g.quadrant(n)
			quad.Visited = true
			g.printf(" %03d :", quad.Code())
		}
		g.printf("\n")
	}
	g.printf("%s\n\n", border)
}
