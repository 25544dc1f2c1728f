package trek

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-trek/internal/core"
)

func TestFirePhasersWithoutEnergyIsNoop(t *testing.T) {
	con := &scriptConsole{ints: []int{100}}
	src := &scriptSource{}
	g := newBareGame(con, src, core.NewCoord(10, 10))
	g.placeKlingon(core.NewCoord(12, 12), 3000)
	g.Ship.Energy = 0

	g.FirePhasers()

	if g.Ship.Energy != 0 {
		t.Errorf("energy = %d, expected 0", g.Ship.Energy)
	}
	if g.Klingons[0].Energy != 3000 || g.Klingons[0].Destroyed {
		t.Errorf("klingon changed: %+v", g.Klingons[0])
	}
	if src.draws != 0 {
		t.Errorf("%d random draws for a refused volley", src.draws)
	}
	if !strings.Contains(con.String(), "Not enough energy") {
		t.Errorf("output %q missing refusal", con.String())
	}
}

func TestFirePhasersZeroUnits(t *testing.T) {
	con := &scriptConsole{ints: []int{0}}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
	g.placeKlingon(core.NewCoord(12, 12), 3000)

	g.FirePhasers()

	if g.Ship.Energy != 3000 {
		t.Errorf("energy = %d, expected 3000", g.Ship.Energy)
	}
}

func TestFirePhasersRefusals(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*Game)
		message string
	}{
		{"no klingons", func(*Game) {}, "no enemy ships"},
		{"damaged phasers", func(g *Game) {
			g.placeKlingon(core.NewCoord(12, 12), 3000)
			g.Ship.Device(PhaserControl).Damage = 30
		}, "Phaser control is inoperable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			con := &scriptConsole{ints: []int{500}}
			g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
			tc.setup(g)

			g.FirePhasers()

			if g.Ship.Energy != 3000 {
				t.Errorf("energy = %d, expected 3000", g.Ship.Energy)
			}
			if len(con.prompts) != 0 {
				t.Errorf("unexpected prompts %v", con.prompts)
			}
			if !strings.Contains(con.String(), tc.message) {
				t.Errorf("output %q missing %q", con.String(), tc.message)
			}
		})
	}
}

func TestFirePhasersDestroyLastKlingons(t *testing.T) {
	con := &scriptConsole{ints: []int{1000}}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
	g.placeKlingon(core.NewCoord(11, 10), 100)
	g.placeKlingon(core.NewCoord(9, 10), 100)

	g.FirePhasers()

	if g.Ship.Energy != 2000 {
		t.Errorf("energy = %d, expected 2000", g.Ship.Energy)
	}
	if g.KlingonsLeft != 0 || g.Quadrants[1][1].Klingons != 0 {
		t.Errorf("counters left %d, quadrant %d; expected both 0", g.KlingonsLeft, g.Quadrants[1][1].Klingons)
	}
	if g.Status() != AllKlingonsDestroyed {
		t.Errorf("Status() = %v, expected %v", g.Status(), AllKlingonsDestroyed)
	}
	if err := g.Verify(); err != nil {
		t.Error(err)
	}
}

func TestFirePhasersNoDamage(t *testing.T) {
	con := &scriptConsole{ints: []int{10}}
	g := newBareGame(con, &scriptSource{fallback: 0.999}, core.NewCoord(10, 10))
	g.placeKlingon(core.NewCoord(15, 15), 3000)
	g.Ship.Shield = 1000

	g.FirePhasers()

	// share 1000, h = 1000*299/7.07 = 42290, below 15*3000.
	if !strings.Contains(con.String(), "no damage to enemy at 8, 8") {
		t.Errorf("output %q missing no-damage report", con.String())
	}
	if g.Klingons[0].Destroyed || g.KlingonsLeft != 1 {
		t.Error("klingon should survive")
	}
	if g.Ship.Energy != 2990 {
		t.Errorf("energy = %d, expected 2990", g.Ship.Energy)
	}
	// The survivor retaliates.
	if g.Ship.Shield >= 1000 {
		t.Error("surviving klingon did not fire back")
	}
}

func TestFirePhasersWoundsKlingon(t *testing.T) {
	con := &scriptConsole{ints: []int{4}}
	g := newBareGame(con, &scriptSource{fallback: 0}, core.NewCoord(10, 10))
	g.placeKlingon(core.NewCoord(11, 10), 1000)
	g.Ship.Shield = 2000

	g.FirePhasers()

	// share 400, raw 400*200/1 = 80000 above 15*1000, hit 800.
	if g.Klingons[0].Destroyed || g.KlingonsLeft != 1 {
		t.Fatal("an 800 unit hit must not destroy a 1000 unit klingon")
	}
	if !strings.Contains(con.String(), "800 unit hit on Klingon at sector 4, 3") {
		t.Errorf("output %q missing hit report", con.String())
	}
	if !strings.Contains(con.String(), "Sensors show 200 units remaining") {
		t.Errorf("output %q missing remaining energy", con.String())
	}
	if g.Ship.Shield >= 2000 {
		t.Error("wounded klingon did not fire back")
	}
}

func TestFirePhasersDamagedComputer(t *testing.T) {
	con := &scriptConsole{ints: []int{10}}
	// roll(100) = 1 for the accuracy scale, then pick(100) = 0 for the hit.
	src := &scriptSource{values: []float64{rollOf(1, 100), 0}, fallback: 0}
	g := newBareGame(con, src, core.NewCoord(10, 10))
	g.placeKlingon(core.NewCoord(11, 10), 3000)
	g.Ship.Device(LibraryComputer).Damage = 100
	g.Ship.Shield = 2000

	g.FirePhasers()

	// h = 10*1*200/1 = 2000, well under 15*3000.
	out := con.String()
	if !strings.Contains(out, "Computer failure hampers accuracy") {
		t.Errorf("output %q missing accuracy warning", out)
	}
	if !strings.Contains(out, "no damage to enemy") {
		t.Errorf("output %q missing no-damage report", out)
	}
}

func TestFireTorpedoMiss(t *testing.T) {
	con := &scriptConsole{floats: []float64{1}}
	src := &scriptSource{}
	g := newBareGame(con, src, core.NewCoord(10, 10))
	g.placeStar(core.NewCoord(10, 12))
	before := g.Sectors

	g.FireTorpedo()

	if g.Ship.Torpedoes != 9 {
		t.Errorf("torpedoes = %d, expected 9", g.Ship.Torpedoes)
	}
	if g.Ship.Energy != 2998 {
		t.Errorf("energy = %d, expected 2998", g.Ship.Energy)
	}
	if g.Sectors != before {
		t.Error("a miss changed the sector grid")
	}
	out := con.String()
	if !strings.Contains(out, "Torpedo Missed") {
		t.Errorf("output %q missing miss report", out)
	}
	if !strings.Contains(out, "8, 3") {
		t.Errorf("track %q should reach the quadrant edge", out)
	}
	if src.draws != 0 {
		t.Errorf("%d random draws for a miss in an empty quadrant", src.draws)
	}
}

func TestFireTorpedoValidatesCourseBeforeCharging(t *testing.T) {
	con := &scriptConsole{floats: []float64{0}}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))

	g.FireTorpedo()

	if g.Ship.Torpedoes != 10 || g.Ship.Energy != 3000 {
		t.Errorf("torpedoes %d, energy %d; a bad course must cost nothing", g.Ship.Torpedoes, g.Ship.Energy)
	}
	if !strings.Contains(con.String(), "Ensign Chekov") {
		t.Errorf("output %q missing course rejection", con.String())
	}
}

func TestFireTorpedoRefusals(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*Game)
		message string
	}{
		{"expended", func(g *Game) { g.Ship.Torpedoes = 0 }, "All photon torpedoes expended"},
		{"damaged tubes", func(g *Game) { g.Ship.Device(PhotonTubes).Damage = 10 }, "Photon tubes are inoperable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			con := &scriptConsole{floats: []float64{1}}
			g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
			tc.setup(g)
			torps := g.Ship.Torpedoes

			g.FireTorpedo()

			if g.Ship.Torpedoes != torps || g.Ship.Energy != 3000 {
				t.Error("refused launch consumed supplies")
			}
			if len(con.prompts) != 0 {
				t.Errorf("unexpected prompts %v", con.prompts)
			}
			if !strings.Contains(con.String(), tc.message) {
				t.Errorf("output %q missing %q", con.String(), tc.message)
			}
		})
	}
}

func TestFireTorpedoEnergySaturates(t *testing.T) {
	con := &scriptConsole{floats: []float64{1}}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
	g.Ship.Energy = 1

	g.FireTorpedo()

	if g.Ship.Energy != 0 {
		t.Errorf("energy = %d, expected 0", g.Ship.Energy)
	}
}

func TestFireTorpedoKillsLastKlingon(t *testing.T) {
	con := &scriptConsole{floats: []float64{1}}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
	i := g.placeKlingon(core.NewCoord(13, 10), 3000)
	g.placeStarbase(core.NewCoord(40, 40))

	g.FireTorpedo()

	k := g.Klingons[i]
	if !k.Destroyed || k.Energy != 0 {
		t.Errorf("klingon = %+v, expected destroyed with no energy", k)
	}
	if g.sector(k.Pos) != SectorEmpty {
		t.Error("klingon cell was not cleared")
	}
	if g.StarbasesLeft != 1 || g.Quadrants[5][5].Starbases != 1 {
		t.Error("a klingon kill must not touch starbase counters")
	}
	if g.Status() != AllKlingonsDestroyed {
		t.Errorf("Status() = %v, expected %v", g.Status(), AllKlingonsDestroyed)
	}
	if err := g.Verify(); err != nil {
		t.Error(err)
	}
}

func TestFireTorpedoDestroysStar(t *testing.T) {
	con := &scriptConsole{floats: []float64{1}}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
	g.placeStar(core.NewCoord(12, 10))
	g.placeKlingon(core.NewCoord(14, 10), 3000)
	g.Ship.Shield = 1000

	stars := g.Quadrants[1][1].Stars

	g.FireTorpedo()

	if got := g.sector(core.NewCoord(12, 10)); got != SectorEmpty {
		t.Errorf("star cell = %v after the hit, expected empty", got)
	}
	if got := g.Quadrants[1][1].Stars; got != stars-1 {
		t.Errorf("quadrant stars = %d, expected %d", got, stars-1)
	}
	if g.Klingons[0].Destroyed {
		t.Error("klingon behind the star was hit")
	}
	if !strings.Contains(con.String(), "absorbed torpedo energy") {
		t.Errorf("output %q missing absorb report", con.String())
	}
	if err := g.Verify(); err != nil {
		t.Error(err)
	}
}

func TestFireTorpedoStarbase(t *testing.T) {
	t.Run("court martial", func(t *testing.T) {
		con := &scriptConsole{floats: []float64{1}}
		g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
		g.placeStarbase(core.NewCoord(12, 10))
		g.placeStarbase(core.NewCoord(40, 40))
		g.Ship.Docked = true

		g.FireTorpedo()

		if g.StarbasesLeft != 1 || g.Quadrants[1][1].Starbases != 0 {
			t.Errorf("starbases left %d, quadrant %d", g.StarbasesLeft, g.Quadrants[1][1].Starbases)
		}
		if g.Ship.Docked {
			t.Error("ship should be undocked")
		}
		if g.Status() != InProgress {
			t.Errorf("Status() = %v, expected %v", g.Status(), InProgress)
		}
		if !strings.Contains(con.String(), "court martial") {
			t.Errorf("output %q missing court martial warning", con.String())
		}
	})

	t.Run("last starbase", func(t *testing.T) {
		con := &scriptConsole{floats: []float64{1}}
		g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
		g.placeStarbase(core.NewCoord(12, 10))
		g.placeKlingon(core.NewCoord(40, 40), 3000)

		g.FireTorpedo()

		if g.Status() != Resigned {
			t.Errorf("Status() = %v, expected %v", g.Status(), Resigned)
		}
		if !g.ExitFlag {
			t.Error("no commander can volunteer without starbases")
		}
		if err := g.Verify(); err != nil {
			t.Error(err)
		}
	})
}

func TestKlingonsShootArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		draws  []float64
		damage [deviceCount]int
	}{
		{
			name:  "no device damage",
			draws: []float64{pickOf(50, 100), pickOf(0, 100), rollOf(7, 10)},
		},
		{
			name:   "device damaged",
			draws:  []float64{pickOf(50, 100), pickOf(0, 100), rollOf(3, 10), pickOf(4, 8), rollOf(20, 50)},
			damage: [deviceCount]int{PhotonTubes: 20},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			con := &scriptConsole{}
			g := newBareGame(con, &scriptSource{values: tc.draws}, core.NewCoord(10, 10))
			g.placeKlingon(core.NewCoord(12, 10), 3000)
			g.Ship.Shield = 1000

			g.klingonsShoot()

			// h = 3000*250 / 2 / 1000 = 375
			if g.Ship.Shield != 625 {
				t.Errorf("shield = %d, expected 625", g.Ship.Shield)
			}
			// energy = 3000*100 / 300
			if g.Klingons[0].Energy != 1000 {
				t.Errorf("klingon energy = %d, expected 1000", g.Klingons[0].Energy)
			}
			for k, dev := range g.Ship.Devices {
				if dev.Damage != tc.damage[k] {
					t.Errorf("%s damage = %d, expected %d", dev.Kind, dev.Damage, tc.damage[k])
				}
			}
		})
	}
}

func TestKlingonsShootStopsOnDestruction(t *testing.T) {
	con := &scriptConsole{}
	g := newBareGame(con, &scriptSource{fallback: 0.5}, core.NewCoord(10, 10))
	g.placeKlingon(core.NewCoord(11, 10), 3000)
	g.placeKlingon(core.NewCoord(9, 10), 3000)
	g.Ship.Shield = 10

	g.klingonsShoot()

	if g.Status() != ShipDestroyed || !g.Ship.Destroyed {
		t.Fatalf("Status() = %v, expected %v", g.Status(), ShipDestroyed)
	}
	if g.Ship.Shield != 0 {
		t.Errorf("shield = %d, expected 0", g.Ship.Shield)
	}
	if n := strings.Count(con.String(), "unit hit on Enterprise"); n != 1 {
		t.Errorf("%d hits reported, the second klingon must not fire", n)
	}
	if g.Klingons[1].Energy != 3000 {
		t.Errorf("second klingon energy = %d, expected untouched", g.Klingons[1].Energy)
	}
}

func TestKlingonsShootDocked(t *testing.T) {
	con := &scriptConsole{}
	src := &scriptSource{}
	g := newBareGame(con, src, core.NewCoord(10, 10))
	g.placeKlingon(core.NewCoord(11, 10), 3000)
	g.Ship.Docked = true
	g.Ship.Shield = 0

	g.klingonsShoot()

	if g.Status() != InProgress {
		t.Errorf("docked ship took fire: %v", g.Status())
	}
	if src.draws != 0 {
		t.Errorf("%d draws while docked", src.draws)
	}
	if !strings.Contains(con.String(), "Starbase shields protect") {
		t.Errorf("output %q missing protection notice", con.String())
	}
}

func TestKlingonsMoveStayInQuadrant(t *testing.T) {
	con := &scriptConsole{}
	g := newBareGame(con, core.NewSource(7), core.NewCoord(20, 20))
	g.placeKlingon(core.NewCoord(17, 17), 10)
	g.placeKlingon(core.NewCoord(22, 23), 10)
	g.placeKlingon(core.NewCoord(40, 40), 10)
	g.Ship.Shield = 5000

	for i := 0; i < 20; i++ {
		g.klingonsMove()

		for j, k := range g.Klingons[:2] {
			if k.Pos.Quadrant() != core.NewCoord(2, 2) {
				t.Fatalf("klingon %d left its quadrant: %v", j, k.Pos)
			}
		}
		if g.Klingons[2].Pos != core.NewCoord(40, 40) {
			t.Fatal("klingon outside the ship's quadrant moved")
		}
		if err := g.Verify(); err != nil {
			t.Fatal(err)
		}
	}
}
