// Package trek implements the Star Trek mission engine: world generation,
// navigation, combat, maintenance and the mission state machine.
//
// The engine is synchronous and pure with respect to its collaborators.
// Every random draw comes from an injected core.Source, every prompt goes
// through a core.Console, and narrative text is loaded from core.Resources.
package trek

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-trek/internal/assets"
	"github.com/vovakirdan/tui-trek/internal/config"
	"github.com/vovakirdan/tui-trek/internal/core"
)

// ErrInvariant is wrapped by every error returned from Verify.
var ErrInvariant = errors.New("trek: invariant violated")

// Game is a single mission.
type Game struct {
	cfg   config.TrekConfig
	con   core.Console
	res   core.Resources
	rng   core.Source
	log   *log.Logger
	debug bool

	Quadrants [core.QuadrantSize][core.QuadrantSize]Quadrant
	Sectors   [core.GalaxySize][core.GalaxySize]SectorType
	Ship      Ship
	Klingons  []Klingon
	Starbases []Starbase

	TotalKlingons  int
	KlingonsLeft   int
	TotalStarbases int
	StarbasesLeft  int

	MissionDays int
	TimeStart   float64
	TimeUp      float64
	Stardate    float64

	// D4 is the per-quadrant jitter added to docked repair estimates.
	D4 int

	// ExitFlag is true when the session should end after this mission.
	ExitFlag bool

	status Status
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes engine debug logging to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithResources replaces the embedded narrative text.
func WithResources(res core.Resources) Option {
	return func(g *Game) {
		if res != nil {
			g.res = res
		}
	}
}

// WithDebug makes the game verify its invariants after every command and
// panic on the first violation.
func WithDebug(debug bool) Option {
	return func(g *Game) {
		g.debug = debug
	}
}

// Status returns the current mission status.
func (g *Game) Status() Status {
	return g.status
}

// Config returns the configuration the mission was generated with.
func (g *Game) Config() config.TrekConfig {
	return g.cfg
}

// Run plays the mission to a terminal status and returns the exit flag.
func (g *Game) Run() bool {
	g.showOrders()
	g.enterQuadrant()
	g.ShortRangeScan()

	if g.KlingonsLeft == 0 {
		g.wonGame()
	}

	for !g.status.Terminal() {
		if g.Ship.Stranded() {
			g.showResource(assets.Fatal)
			g.timeExpired()
			break
		}

		g.Dispatch(g.con.Command("Command? "))

		if g.debug {
			if err := g.Verify(); err != nil {
				panic(err)
			}
		}
	}

	return g.ExitFlag
}

// Dispatch executes a single command token. Commands are ignored once the
// mission has ended.
func (g *Game) Dispatch(cmd string) {
	if g.status.Terminal() {
		return
	}

	switch core.NormalizeCommand(cmd) {
	case "nav":
		g.Navigate()
	case "srs":
		g.ShortRangeScan()
	case "lrs":
		g.LongRangeScan()
	case "pha":
		g.FirePhasers()
	case "tor":
		g.FireTorpedo()
	case "shi":
		g.SetShields()
	case "dam":
		g.DamageControl()
	case "com":
		g.LibraryComputer()
	case "xxx":
		g.resign()
	default:
		g.showResource(assets.Commands)
	}
}

// Intro shows the introduction, the instructions on request, and the logo.
// It runs once per session, before the first mission.
func Intro(con core.Console, res core.Resources) {
	show(con, res, assets.Intro)
	if con.Confirm("Do you need instructions (y/n)? ", false) {
		show(con, res, assets.Instructions)
	}
	show(con, res, assets.Logo)
}

func (g *Game) showOrders() {
	plural := "s"
	verb := "are"
	if g.StarbasesLeft == 1 {
		plural = ""
		verb = "is"
	}

	g.printf("Your orders are as follows:\n")
	g.printf("   Destroy the %d Klingon warships which have invaded\n", g.KlingonsLeft)
	g.printf(" the galaxy before they can attack Federation Headquarters\n")
	g.printf(" on stardate %.1f. This gives you %d days. There %s\n", g.TimeUp, g.MissionDays, verb)
	g.printf(" %d starbase%s in the galaxy for resupplying your ship.\n\n", g.StarbasesLeft, plural)
	g.con.Confirm("Hit any key to accept command. ", true)
}

func (g *Game) showResource(name string) {
	show(g.con, g.res, name)
}

// show prints a resource. A missing resource is a deployment defect that
// assets.Verify catches at startup, so it panics here.
func show(con core.Console, res core.Resources, name string) {
	text, err := res.Load(name)
	if err != nil {
		panic(fmt.Sprintf("trek: %v", err))
	}
	fmt.Fprint(con, text)
}

func (g *Game) printf(format string, args ...any) {
	fmt.Fprintf(g.con, format, args...)
}

func (g *Game) sector(c core.Coord) SectorType {
	return g.Sectors[c.X][c.Y]
}

func (g *Game) setSector(c core.Coord, t SectorType) {
	g.Sectors[c.X][c.Y] = t
}

func (g *Game) quadrant(q core.Coord) *Quadrant {
	return &g.Quadrants[q.X][q.Y]
}

func (g *Game) currentQuadrant() *Quadrant {
	return g.quadrant(g.Ship.Pos.Quadrant())
}

// localKlingons returns the indexes of live klingons in the ship's quadrant.
func (g *Game) localKlingons() []int {
	var idx []int
	for i := range g.Klingons {
		k := &g.Klingons[i]
		if !k.Destroyed && k.Pos.SameQuadrant(g.Ship.Pos) {
			idx = append(idx, i)
		}
	}
	return idx
}

// localStarbases returns the indexes of live starbases in the ship's quadrant.
func (g *Game) localStarbases() []int {
	var idx []int
	for i := range g.Starbases {
		b := &g.Starbases[i]
		if !b.Destroyed && b.Pos.SameQuadrant(g.Ship.Pos) {
			idx = append(idx, i)
		}
	}
	return idx
}

// inoperable prints the device's outage message and reports whether the
// device is damaged.
func (g *Game) inoperable(k DeviceKind) bool {
	if !g.Ship.Damaged(k) {
		return false
	}

	switch k {
	case ShortRangeSensors:
		g.printf("\n*** Short Range Sensors are out ***\n")
	default:
		g.printf("%s %s inoperable.\n", k, inoperableVerb(k))
	}
	return true
}

func inoperableVerb(k DeviceKind) string {
	switch k {
	case WarpEngines, LongRangeSensors, PhotonTubes:
		return "are"
	default:
		return "is"
	}
}

func newDiscardLogger() *log.Logger {
	return log.New(io.Discard)
}

func defaultResources() core.Resources {
	return assets.New()
}

// roll draws 1..n.
func (g *Game) roll(n int) int {
	return core.Roll(g.rng, n)
}

// pick draws 0..n-1.
func (g *Game) pick(n int) int {
	return core.Pick(g.rng, n)
}
