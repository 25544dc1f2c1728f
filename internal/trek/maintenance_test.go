package trek

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-trek/internal/core"
)

func TestSetShields(t *testing.T) {
	tests := []struct {
		name       string
		energy     int
		shield     int
		request    int
		wantEnergy int
		wantShield int
		message    string
	}{
		{"raise", 3000, 0, 500, 2500, 500, "Shields now at 500"},
		{"lower", 2500, 500, 100, 2900, 100, "Shields now at 100"},
		{"everything", 3000, 0, 3000, 0, 3000, "Shields now at 3000"},
		{"beyond total", 3000, 0, 4000, 3000, 0, "Federation Treasury"},
		{"same level", 2000, 400, 400, 2000, 400, "<Shields Unchanged>"},
		{"same level at total", 0, 100, 100, 0, 100, "Federation Treasury"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			con := &scriptConsole{ints: []int{tc.request}}
			g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
			g.Ship.Energy = tc.energy
			g.Ship.Shield = tc.shield
			total := g.Ship.TotalEnergy()

			g.SetShields()

			if g.Ship.Energy != tc.wantEnergy || g.Ship.Shield != tc.wantShield {
				t.Errorf("energy %d, shield %d; expected %d, %d",
					g.Ship.Energy, g.Ship.Shield, tc.wantEnergy, tc.wantShield)
			}
			if g.Ship.TotalEnergy() != total {
				t.Errorf("total energy %d, expected %d", g.Ship.TotalEnergy(), total)
			}
			if !strings.Contains(con.String(), tc.message) {
				t.Errorf("output %q missing %q", con.String(), tc.message)
			}
		})
	}
}

func TestSetShieldsDamaged(t *testing.T) {
	con := &scriptConsole{ints: []int{500}}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
	g.Ship.Device(ShieldControl).Damage = 10

	g.SetShields()

	if g.Ship.Shield != 0 || len(con.prompts) != 0 {
		t.Error("damaged shield control must not move energy")
	}
	if !strings.Contains(con.String(), "Shield control is inoperable") {
		t.Errorf("output %q missing outage report", con.String())
	}
}

func TestRepairDamageOverTime(t *testing.T) {
	con := &scriptConsole{}
	g := newBareGame(con, quiet(), core.NewCoord(10, 10))
	g.Ship.Device(WarpEngines).Damage = 100
	g.Ship.Device(PhaserControl).Damage = 55
	g.Ship.Device(PhotonTubes).Damage = 30
	g.Ship.Device(ShieldControl).Damage = 50

	g.repairDamage(0.5)

	tests := []struct {
		kind     DeviceKind
		expected int
	}{
		{WarpEngines, 50},
		{PhaserControl, 10}, // 5 left, clamped to the residual floor
		{PhotonTubes, 0},
		{ShieldControl, 0},
		{LibraryComputer, 0},
	}
	for _, tc := range tests {
		if got := g.Ship.Device(tc.kind).Damage; got != tc.expected {
			t.Errorf("%s damage = %d, expected %d", tc.kind, got, tc.expected)
		}
	}

	out := con.String()
	if n := strings.Count(out, "Damage Control report:"); n != 1 {
		t.Errorf("%d report headers, expected one", n)
	}
	if !strings.Contains(out, "Photon tubes repair completed") || !strings.Contains(out, "Shield control repair completed") {
		t.Errorf("output %q missing completions", out)
	}
}

func TestRepairDamageCappedRate(t *testing.T) {
	g := newBareGame(&scriptConsole{}, quiet(), core.NewCoord(10, 10))
	g.Ship.Device(LongRangeSensors).Damage = 100

	g.repairDamage(g.cfg.Repair.CapWarp)

	if got := g.Ship.Device(LongRangeSensors).Damage; got != 90 {
		t.Errorf("damage = %d, expected 90 at the capped rate", got)
	}
}

func TestRepairDamageRandomEvent(t *testing.T) {
	tests := []struct {
		name     string
		draws    []float64
		kind     DeviceKind
		start    int
		expected int
		message  string
	}{
		{
			name:     "new damage",
			draws:    []float64{rollOf(1, 10), pickOf(2, 8), rollOf(6, 10), rollOf(50, 500)},
			kind:     LongRangeSensors,
			expected: 150,
			message:  "Long range sensors damaged",
		},
		{
			name:     "partial repair",
			draws:    []float64{rollOf(2, 10), pickOf(0, 8), rollOf(7, 10), rollOf(200, 300)},
			kind:     WarpEngines,
			start:    1000,
			expected: 1000 - 50 - 300,
			message:  "Warp engines state of repair improved",
		},
		{
			name:     "repair saturates",
			draws:    []float64{rollOf(2, 10), pickOf(7, 8), rollOf(10, 10), rollOf(300, 300)},
			kind:     LibraryComputer,
			start:    100,
			expected: 0,
			message:  "Library computer state of repair improved",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			con := &scriptConsole{}
			g := newBareGame(con, &scriptSource{values: tc.draws, fallback: 0.999}, core.NewCoord(10, 10))
			g.Ship.Device(tc.kind).Damage = tc.start

			g.repairDamage(0.5)

			if got := g.Ship.Device(tc.kind).Damage; got != tc.expected {
				t.Errorf("%s damage = %d, expected %d", tc.kind, got, tc.expected)
			}
			if !strings.Contains(con.String(), tc.message) {
				t.Errorf("output %q missing %q", con.String(), tc.message)
			}
		})
	}
}

func TestDamageControlDockedRepair(t *testing.T) {
	tests := []struct {
		name     string
		damaged  []DeviceKind
		d4       int
		confirm  bool
		estimate string
		elapsed  float64
	}{
		{"authorized", []DeviceKind{WarpEngines, PhotonTubes}, 5, true, "0.25 stardates", 0.4},
		{"declined", []DeviceKind{WarpEngines, PhotonTubes}, 5, false, "0.25 stardates", 0},
		{"capped", DeviceKinds(), 30, true, "0.90 stardates", 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			con := &scriptConsole{confirms: []bool{tc.confirm}}
			g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
			g.Ship.Docked = true
			g.D4 = tc.d4
			for _, k := range tc.damaged {
				g.Ship.Device(k).Damage = 200
			}

			g.DamageControl()

			if !strings.Contains(con.String(), tc.estimate) {
				t.Errorf("output %q missing estimate %q", con.String(), tc.estimate)
			}
			if math.Abs(g.Stardate-2500-tc.elapsed) > 1e-9 {
				t.Errorf("elapsed %.2f, expected %.2f", g.Stardate-2500, tc.elapsed)
			}
			for _, k := range tc.damaged {
				if g.Ship.Damaged(k) == tc.confirm {
					t.Errorf("%s damaged = %v after confirm = %v", k, g.Ship.Damaged(k), tc.confirm)
				}
			}
		})
	}
}

func TestDamageControlReport(t *testing.T) {
	con := &scriptConsole{}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
	g.Ship.Device(PhaserControl).Damage = 125

	g.DamageControl()

	out := con.String()
	for _, k := range DeviceKinds() {
		if !strings.Contains(out, k.String()) {
			t.Errorf("report missing %s", k)
		}
	}
	if !strings.Contains(out, "-1.25") {
		t.Errorf("report %q missing phaser damage", out)
	}
}

func TestDamageControlUnavailable(t *testing.T) {
	con := &scriptConsole{}
	g := newBareGame(con, &scriptSource{}, core.NewCoord(10, 10))
	g.Ship.Device(DamageControl).Damage = 10

	g.DamageControl()

	out := con.String()
	if !strings.Contains(out, "not available") {
		t.Errorf("output %q missing outage report", out)
	}
	if strings.Contains(out, "State of Repair") {
		t.Error("damaged control must not print the table")
	}
}
