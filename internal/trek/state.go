package trek

import (
	"math"
)

// Status is the mission state. Once terminal it never changes.
type Status int

const (
	InProgress Status = iota
	TimeExpired
	ShipDestroyed
	AllKlingonsDestroyed
	Resigned
)

// String returns the status name as stored in mission records.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case TimeExpired:
		return "time_expired"
	case ShipDestroyed:
		return "ship_destroyed"
	case AllKlingonsDestroyed:
		return "victory"
	case Resigned:
		return "resigned"
	default:
		return "unknown"
	}
}

// Terminal reports whether the mission has ended.
func (s Status) Terminal() bool {
	return s != InProgress
}

// Result summarises a finished mission.
type Result struct {
	Status            Status
	KlingonsDestroyed int
	TotalKlingons     int
	StarbasesLeft     int
	StardatesUsed     float64
	Efficiency        float64
}

// Result returns the mission summary. It is meaningful at any time but is
// normally read after Run returns.
func (g *Game) Result() Result {
	r := Result{
		Status:            g.status,
		KlingonsDestroyed: g.TotalKlingons - g.KlingonsLeft,
		TotalKlingons:     g.TotalKlingons,
		StarbasesLeft:     g.StarbasesLeft,
		StardatesUsed:     g.Stardate - g.TimeStart,
	}
	if g.status == AllKlingonsDestroyed {
		r.Efficiency = Efficiency(g.TotalKlingons, r.StardatesUsed)
	}
	return r
}

// Efficiency rates a victory: 1000 * (klingons / elapsed)^2.
func Efficiency(klingons int, elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return 1000 * math.Pow(float64(klingons)/elapsed, 2)
}

// finish moves the mission to a terminal status. Only the first transition
// takes effect; it reports whether this call made it.
func (g *Game) finish(s Status) bool {
	if g.status.Terminal() {
		return false
	}
	g.status = s
	g.log.Debug("mission ended", "status", s, "stardate", g.Stardate, "klingons_left", g.KlingonsLeft)
	return true
}

// enterQuadrant runs the arrival path for the ship's current quadrant.
func (g *Game) enterQuadrant() {
	g.D4 = g.roll(50) - 1

	quad := g.currentQuadrant()
	quad.Visited = true

	if g.Stardate != g.TimeStart {
		g.printf("Now entering %s quadrant...\n\n", quad.Name)
	} else {
		g.printf("\nYour mission begins with your starship located\n")
		g.printf("in the galactic quadrant, '%s'.\n\n", quad.Name)
	}

	if quad.Klingons > 0 {
		g.printf("Combat Area  Condition Red\n")
		if g.Ship.Shield < g.cfg.Ship.LowShieldWarning {
			g.printf("   Shields Dangerously Low\n")
		}
	}
}

func (g *Game) shipDestroyed() {
	if !g.finish(ShipDestroyed) {
		return
	}
	g.Ship.Destroyed = true
	g.printf("\nThe Enterprise has been destroyed.\n")
	g.printf("The Federation will be conquered.\n\n")
	g.reportStardate()
	g.reportKlingonsLeft()
	g.endOfMission()
}

func (g *Game) timeExpired() {
	if !g.finish(TimeExpired) {
		return
	}
	g.reportStardate()
	g.reportKlingonsLeft()
	g.endOfMission()
}

func (g *Game) resign() {
	if !g.finish(Resigned) {
		return
	}
	g.reportKlingonsLeft()
	g.endOfMission()
}

func (g *Game) wonGame() {
	if !g.finish(AllKlingonsDestroyed) {
		return
	}
	g.printf("\nCongratulations, Captain!  The last Klingon Battle Cruiser\n")
	g.printf("menacing the Federation has been destroyed.\n\n")

	if elapsed := g.Stardate - g.TimeStart; elapsed > 0 {
		g.printf("Your efficiency rating is %.2f\n\n", Efficiency(g.TotalKlingons, elapsed))
	}
	g.endOfMission()
}

func (g *Game) reportStardate() {
	g.printf("It is stardate %.2f.\n\n", g.Stardate)
}

func (g *Game) reportKlingonsLeft() {
	g.printf("There were %d Klingon Battlecruisers left at the\n", g.KlingonsLeft)
	g.printf("end of your mission.\n\n")
}

// endOfMission decides whether the session continues. A new commander can
// only volunteer while the Federation still has starbases.
func (g *Game) endOfMission() {
	g.ExitFlag = true

	if g.StarbasesLeft > 0 {
		g.printf("The Federation is in need of a new starship commander\n")
		g.printf("for a similar mission.\n")
		answer := g.con.Command("If there is a volunteer, let them step forward and enter 'aye': ")
		g.ExitFlag = answer != "aye"
	}
}
