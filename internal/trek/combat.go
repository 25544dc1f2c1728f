package trek

import (
	"fmt"

	"github.com/vovakirdan/tui-trek/internal/core"
)

// Phaser hits are computed in hundredths of a unit. The no-damage
// threshold compares the raw value, so it sits at 0.15 of the target's
// energy.
const phaserFixedPoint = 100

// klingonsMove relocates every live klingon of the ship's quadrant to a
// random empty sector of that quadrant, then lets them fire.
func (g *Game) klingonsMove() {
	home := g.Ship.Pos.Quadrant()

	for _, i := range g.localKlingons() {
		k := &g.Klingons[i]
		g.setSector(k.Pos, SectorEmpty)
		k.Pos = g.findEmpty(home)
		g.setSector(k.Pos, SectorKlingon)
	}

	g.klingonsShoot()
}

// klingonsShoot resolves retaliation from every live klingon in the ship's
// quadrant. A docked ship is protected by the starbase shields.
func (g *Game) klingonsShoot() {
	if g.currentQuadrant().Klingons <= 0 {
		return
	}
	if g.Ship.Docked {
		g.printf("Starbase shields protect the Enterprise\n\n")
		return
	}

	for _, i := range g.localKlingons() {
		k := &g.Klingons[i]
		d := g.Ship.Pos.Distance(k.Pos)

		h := k.Energy * (200 + g.pick(100))
		h = int(float64(h) / d)
		h /= 1000

		s := k.Pos.Sector()
		g.log.Debug("klingon fire", "from", k.Pos, "distance", d, "hit", h, "shield", g.Ship.Shield)

		if h > g.Ship.Shield {
			g.Ship.Shield = 0
			g.printf("%d unit hit on Enterprise from sector %d, %d\n", h, s.X+1, s.Y+1)
			g.shipDestroyed()
			return
		}

		g.Ship.Shield -= h
		k.Energy = k.Energy * 100 / (300 + g.pick(100))

		g.printf("%d unit hit on Enterprise from sector %d, %d\n", h, s.X+1, s.Y+1)
		g.printf("    <Shields down to %d units>\n\n", g.Ship.Shield)

		if h >= 20 && g.Ship.Shield > 0 {
			ratio := h / g.Ship.Shield
			if g.roll(10) <= g.cfg.Repair.DamageChance || ratio > 2 {
				dev := &g.Ship.Devices[g.pick(int(deviceCount))]
				dev.AddDamage(ratio + g.roll(50))
				g.printf("Damage Control reports\n")
				g.printf("   '%s' damaged by hit\n\n", dev.Kind)
			}
		}
	}
}

// noKlingonsHere reports an empty quadrant to the player.
func (g *Game) noKlingonsHere() bool {
	if g.currentQuadrant().Klingons > 0 {
		return false
	}
	g.printf("Science Officer Spock reports:\n")
	g.printf("  'Sensors show no enemy ships in this quadrant'\n\n")
	return true
}

// FirePhasers spends energy on a phaser volley split evenly across every
// klingon of the quadrant.
func (g *Game) FirePhasers() {
	if g.inoperable(PhaserControl) || g.noKlingonsHere() {
		return
	}

	w := g.cfg.Weapons
	computerDamaged := g.Ship.Damaged(LibraryComputer)
	if computerDamaged {
		g.printf("Computer failure hampers accuracy.\n")
	}

	g.printf("Phasers locked on target;\n")
	g.printf("   Energy available = %d units\n\n", g.Ship.Energy)

	amount := g.con.Int("Number of units to fire: ", 0, w.MaxPhaserEnergy)
	if amount <= 0 {
		return
	}
	if g.Ship.Energy < amount {
		g.printf("Not enough energy available.\n\n")
		return
	}

	g.Ship.Energy -= amount

	scale := w.PhaserScale
	if computerDamaged {
		scale = g.roll(100)
	}

	targets := g.localKlingons()
	share := amount * scale / len(targets)

	for _, i := range targets {
		k := &g.Klingons[i]
		s := k.Pos.Sector()

		h := share * (200 + g.pick(100))
		h = int(float64(h) / g.Ship.Pos.Distance(k.Pos))
		hit := h / phaserFixedPoint

		g.log.Debug("phaser hit", "target", k.Pos, "raw", h, "hit", hit, "energy", k.Energy)

		if h <= w.NoDamageFactor*k.Energy {
			g.printf("Sensors show no damage to enemy at %d, %d\n\n", s.X+1, s.Y+1)
			continue
		}

		g.printf("%d unit hit on Klingon at sector %d, %d\n", hit, s.X+1, s.Y+1)

		if hit > k.Energy {
			g.destroyKlingon(i)
			g.printf("*** Klingon Destroyed ***\n\n")
			continue
		}

		k.Energy -= hit
		g.printf("   (Sensors show %d units remaining.)\n\n", k.Energy)
	}

	if g.KlingonsLeft == 0 {
		g.wonGame()
		return
	}

	g.klingonsShoot()
}

// FireTorpedo launches a photon torpedo along a course through the ship's
// quadrant.
func (g *Game) FireTorpedo() {
	if g.Ship.Torpedoes == 0 {
		g.printf("All photon torpedoes expended\n\n")
		return
	}
	if g.inoperable(PhotonTubes) {
		return
	}

	course, ok := g.readCourse("Ensign Chekov")
	if !ok {
		return
	}

	g.Ship.Energy = max(0, g.Ship.Energy-g.cfg.Weapons.TorpedoEnergy)
	g.Ship.Torpedoes--

	step := CourseStep(course)
	pos := g.Ship.Pos

	g.printf("Torpedo Track:\n")
	for {
		pos = pos.Add(step)
		if !pos.SameQuadrant(g.Ship.Pos) {
			break
		}

		s := pos.Sector()
		g.printf("    %d, %d\n", s.X+1, s.Y+1)

		if t := g.sector(pos); t != SectorEmpty && t != SectorShip {
			g.torpedoHit(pos, t)
			if !g.status.Terminal() {
				g.klingonsShoot()
			}
			return
		}
	}

	g.printf("Torpedo Missed\n\n")
	g.klingonsShoot()
}

func (g *Game) torpedoHit(pos core.Coord, t SectorType) {
	s := pos.Sector()

	switch t {
	case SectorStar:
		g.setSector(pos, SectorEmpty)
		g.quadrant(pos.Quadrant()).Stars--
		g.printf("Star at %d, %d absorbed torpedo energy.\n\n", s.X+1, s.Y+1)

	case SectorKlingon:
		g.destroyKlingon(g.klingonAt(pos))
		g.printf("*** Klingon Destroyed ***\n\n")
		if g.KlingonsLeft == 0 {
			g.wonGame()
		}

	case SectorStarbase:
		g.destroyStarbase(g.starbaseAt(pos))
		g.Ship.Docked = false
		g.printf("*** Starbase Destroyed ***\n")

		if g.StarbasesLeft == 0 {
			g.printf("That does it, Captain!!\n")
			g.printf("You are hereby relieved of command\n")
			g.printf("and sentenced to 99 stardates of hard\n")
			g.printf("labor on Cygnus 12!!\n\n")
			g.resign()
			return
		}

		g.printf("Starfleet Command reviewing your record to consider\n")
		g.printf("court martial!\n\n")
	}
}

// destroyKlingon clears a klingon's cell and decrements its counters
// exactly once.
func (g *Game) destroyKlingon(i int) {
	k := &g.Klingons[i]
	if k.Destroyed {
		return
	}
	k.Destroyed = true
	k.Energy = 0
	g.setSector(k.Pos, SectorEmpty)
	g.quadrant(k.Pos.Quadrant()).Klingons--
	g.KlingonsLeft--

	g.log.Debug("klingon destroyed", "at", k.Pos, "left", g.KlingonsLeft)
}

func (g *Game) destroyStarbase(i int) {
	b := &g.Starbases[i]
	if b.Destroyed {
		return
	}
	b.Destroyed = true
	g.setSector(b.Pos, SectorEmpty)
	g.quadrant(b.Pos.Quadrant()).Starbases--
	g.StarbasesLeft--

	g.log.Debug("starbase destroyed", "at", b.Pos, "left", g.StarbasesLeft)
}

// klingonAt returns the live klingon at pos. A klingon cell with no entity
// behind it means the grid and the list disagree.
func (g *Game) klingonAt(pos core.Coord) int {
	for i := range g.Klingons {
		if !g.Klingons[i].Destroyed && g.Klingons[i].Pos == pos {
			return i
		}
	}
	panic(fmt.Sprintf("trek: no klingon at %d,%d", pos.X, pos.Y))
}

func (g *Game) starbaseAt(pos core.Coord) int {
	for i := range g.Starbases {
		if !g.Starbases[i].Destroyed && g.Starbases[i].Pos == pos {
			return i
		}
	}
	panic(fmt.Sprintf("trek: no starbase at %d,%d", pos.X, pos.Y))
}
