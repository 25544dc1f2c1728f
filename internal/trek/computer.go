package trek

import (
	"strings"

	"github.com/vovakirdan/tui-trek/internal/core"
)

// LibraryComputer prompts for a computer function and runs it.
func (g *Game) LibraryComputer() {
	if g.inoperable(LibraryComputer) {
		return
	}

	switch g.con.Int("Computer active and awaiting command: ", 0, 9) {
	case 0:
		g.galacticRecord()
	case 1:
		g.statusReport()
	case 2:
		g.torpedoData()
	case 3:
		g.navData()
	case 4:
		g.directionCalculator()
	case 5:
		g.galaxyMap()
	default:
		g.printf("Functions available from Library-Computer:\n\n")
		g.printf("   0 = Cumulative Galactic Record\n")
		g.printf("   1 = Status Report\n")
		g.printf("   2 = Photon Torpedo Data\n")
		g.printf("   3 = Starbase Nav Data\n")
		g.printf("   4 = Direction/Distance Calculator\n")
		g.printf("   5 = Galaxy 'Region Name' Map\n\n")
	}
}

const recordBorder = "     ----- ----- ----- ----- ----- ----- ----- -----"

// galacticRecord prints the scan codes of every visited quadrant.
func (g *Game) galacticRecord() {
	q := g.Ship.Pos.Quadrant()
	g.printf("\n     Computer Record of Galaxy for Quadrant %d,%d\n\n", q.X+1, q.Y+1)
	g.printf("       1     2     3     4     5     6     7     8\n")

	for y := 0; y < core.QuadrantSize; y++ {
		g.printf("%s\n   %d", recordBorder, y+1)
		for x := 0; x < core.QuadrantSize; x++ {
			quad := g.Quadrants[x][y]
			if quad.Visited {
				g.printf("   %03d", quad.Code())
			} else {
				g.printf("   ***")
			}
		}
		g.printf("\n")
	}
	g.printf("%s\n\n", recordBorder)
}

func (g *Game) statusReport() {
	g.printf("   Status Report:\n")
	g.printf("Klingon%s Left: %d\n", plural(g.KlingonsLeft), g.KlingonsLeft)
	g.printf("Mission must be completed in %.1f stardates.\n", g.TimeUp-g.Stardate)

	if g.StarbasesLeft < 1 {
		g.printf("Your stupidity has left you on your own in the galaxy\n")
		g.printf(" -- you have no starbases left!\n\n")
		return
	}
	g.printf("The Federation is maintaining %d starbase%s in the galaxy.\n\n",
		g.StarbasesLeft, plural(g.StarbasesLeft))
}

func (g *Game) torpedoData() {
	targets := g.localKlingons()
	if len(targets) == 0 {
		g.noKlingonsHere()
		return
	}

	g.printf("From Enterprise to Klingon battlecruiser%s:\n\n", plural(len(targets)))
	for _, i := range targets {
		g.printVector(g.Ship.Pos, g.Klingons[i].Pos)
	}
}

func (g *Game) navData() {
	bases := g.localStarbases()
	if len(bases) == 0 {
		g.printf("Mr. Spock reports,\n")
		g.printf("  'Sensors show no starbases in this quadrant.'\n\n")
		return
	}

	for _, i := range bases {
		g.printVector(g.Ship.Pos, g.Starbases[i].Pos)
	}
}

// directionCalculator computes the course between two sectors of the
// ship's quadrant entered by the player (1-based).
func (g *Game) directionCalculator() {
	q := g.Ship.Pos.Quadrant()
	s := g.Ship.Pos.Sector()

	g.printf("Direction/Distance Calculator\n")
	g.printf("You are at quadrant %d,%d sector %d,%d\n\n", q.X+1, q.Y+1, s.X+1, s.Y+1)

	x1 := g.con.Int("Please enter initial X coordinate: ", 1, core.QuadrantSize)
	y1 := g.con.Int("Please enter initial Y coordinate: ", 1, core.QuadrantSize)
	x2 := g.con.Int("Please enter final X coordinate: ", 1, core.QuadrantSize)
	y2 := g.con.Int("Please enter final Y coordinate: ", 1, core.QuadrantSize)

	g.printVector(core.NewCoord(x1, y1), core.NewCoord(x2, y2))
}

func (g *Game) printVector(from, to core.Coord) {
	course, distance := CourseTo(from, to)
	g.printf("  DIRECTION = %.2f\n", course)
	g.printf("  DISTANCE = %.2f\n\n", distance)
}

// galaxyMap prints the region name of every row half.
func (g *Game) galaxyMap() {
	g.printf("\n                   The Galaxy\n\n")
	g.printf("       1     2     3     4     5     6     7     8\n")

	half := core.QuadrantSize / 2
	for y := 0; y < core.QuadrantSize; y++ {
		left := QuadrantName(core.NewCoord(0, y), false)
		right := QuadrantName(core.NewCoord(half, y), false)
		g.printf("%s\n   %d %s%s\n", recordBorder, y+1, center(left, 24), center(right, 24))
	}
	g.printf("%s\n\n", recordBorder)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
