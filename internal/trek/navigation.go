package trek

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-trek/internal/core"
)

// Course directions, counter-clockwise from east. Screen rows grow
// downward, so north is a negative Y step.
//
//	  4  3  2
//	   \ | /
//	5 ---*--- 1
//	   / | \
//	  6  7  8
var courseSteps = [8]core.Coord{
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// CourseStep returns the single-sector step of a course in [1, 9). The
// fractional part is ignored.
func CourseStep(course float64) core.Coord {
	i := int(course) - 1
	if i < 0 || i >= len(courseSteps) {
		return core.Coord{}
	}
	return courseSteps[i]
}

// CourseTo returns the course and distance from one cell to another, using
// the same octant convention as CourseStep.
func CourseTo(from, to core.Coord) (course, distance float64) {
	dx := float64(to.X - from.X)
	dy := float64(from.Y - to.Y)

	course = 1 + math.Atan2(dy, dx)/(math.Pi/4)
	if course < 1 {
		course += 8
	}
	return course, from.Distance(to)
}

// readCourse prompts for a course. 9 wraps to 1; anything outside [1, 9)
// is reported by the officer and rejected.
func (g *Game) readCourse(officer string) (float64, bool) {
	course := g.con.Float("Course (0-9): ", 0, 1000)
	if course == 9 {
		course = 1
	}
	if course < 1 || course >= 9 {
		g.printf("%s reports:\n  Incorrect course data, sir!\n\n", officer)
		return 0, false
	}
	return course, true
}

// Navigate moves the ship along a course at a warp factor.
func (g *Game) Navigate() {
	nav := g.cfg.Navigation

	course, ok := g.readCourse("Lt. Sulu")
	if !ok {
		return
	}

	enginesDamaged := g.Ship.Damaged(WarpEngines)
	limit := nav.MaxWarp
	if enginesDamaged {
		limit = nav.DamagedMaxWarp
	}

	warp := g.con.Float(fmt.Sprintf("Warp Factor (0-%.1f): ", limit), 0, nav.PromptMaxWarp)

	if enginesDamaged && warp > nav.DamagedMaxWarp {
		g.printf("Warp Engines are damaged.\n")
		g.printf("Maximum speed = Warp %.1f\n\n", nav.DamagedMaxWarp)
		return
	}
	if warp <= 0 {
		return
	}
	if warp > nav.MaxWarp {
		g.printf("Chief Engineer Scott reports:\n")
		g.printf("  The engines won't take warp %.2f!\n\n", warp)
		return
	}

	n := int((warp*800 + 50) / 100)

	if g.Ship.Energy < n {
		g.printf("Engineering reports:\n")
		g.printf("  Insufficient energy available for maneuvering\n")
		g.printf(" at warp %.2f!\n\n", warp)

		if g.Ship.Shield >= n && !g.Ship.Damaged(ShieldControl) {
			g.printf("Deflector Control Room acknowledges:\n")
			g.printf("  %d units of energy presently deployed to shields.\n\n", g.Ship.Shield)
		}
		return
	}

	g.klingonsMove()
	if g.status.Terminal() {
		return
	}

	g.repairDamage(warp)

	step := CourseStep(course)
	for i := 0; i < n; i++ {
		next := g.Ship.Pos.Add(step)

		blocked := false
		if next.Outside() {
			g.perimeterDenied()
			blocked = true
		} else if g.sector(next) != SectorEmpty {
			g.badNavigation(next)
			blocked = true
		}

		g.maneuverEnergy(n)

		if g.Stardate > g.TimeUp {
			g.timeExpired()
			return
		}
		if blocked {
			break
		}

		from := g.Ship.Pos
		g.setSector(from, SectorEmpty)
		g.setSector(next, SectorShip)
		g.Ship.Pos = next
		g.Stardate += nav.StepTime

		if next.Quadrant() != from.Quadrant() {
			g.enterQuadrant()
		}
	}

	g.completeManeuver(warp, n)
}

func (g *Game) completeManeuver(warp float64, n int) {
	g.maneuverEnergy(n)

	elapsed := 1.0
	if warp < 1 {
		elapsed = float64(int(warp*10)) / 10
	}
	g.Stardate += elapsed

	if g.Stardate > g.TimeUp {
		g.timeExpired()
		return
	}

	g.ShortRangeScan()
}

// maneuverEnergy debits the cost of a maneuver step when the ship can
// afford it. Energy never goes negative.
func (g *Game) maneuverEnergy(n int) {
	cost := n + g.cfg.Navigation.ManeuverCost
	if g.Ship.Energy >= cost {
		g.Ship.Energy -= cost
	}
}

func (g *Game) perimeterDenied() {
	q := g.Ship.Pos.Quadrant()
	s := g.Ship.Pos.Sector()

	g.printf("LT. Uhura reports:\n")
	g.printf("  Message from Starfleet Command:\n\n")
	g.printf("  Permission to attempt crossing of galactic perimeter\n")
	g.printf("  is hereby *denied*. Shut down your engines.\n\n")
	g.printf("Chief Engineer Scott reports:\n")
	g.printf("  Warp Engines shut down at sector %d, %d of quadrant %d, %d.\n\n",
		s.X+1, s.Y+1, q.X+1, q.Y+1)
}

func (g *Game) badNavigation(blocked core.Coord) {
	s := g.Ship.Pos.Sector()
	b := blocked.Sector()

	g.printf("Warp Engines shut down at sector %d, %d due to bad navigation.\n", s.X+1, s.Y+1)
	g.printf("  %s in the way at sector %d, %d.\n\n", g.sector(blocked), b.X+1, b.Y+1)
}
