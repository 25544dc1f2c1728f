package trek

import (
	"fmt"

	"github.com/vovakirdan/tui-trek/internal/core"
)

// SectorType tags what occupies a sector cell.
type SectorType uint8

const (
	SectorEmpty SectorType = iota
	SectorStar
	SectorStarbase
	SectorKlingon
	SectorShip
)

var sectorGlyphs = [...]string{"   ", " * ", ">!<", "+K+", "<*>"}

// Glyph returns the three-character short-range scan symbol.
func (t SectorType) Glyph() string {
	if int(t) >= len(sectorGlyphs) {
		return " ? "
	}
	return sectorGlyphs[t]
}

// String returns a human-readable name for the cell type.
func (t SectorType) String() string {
	switch t {
	case SectorEmpty:
		return "Empty"
	case SectorStar:
		return "Star"
	case SectorStarbase:
		return "Starbase"
	case SectorKlingon:
		return "Klingon"
	case SectorShip:
		return "Ship"
	default:
		return "Unknown"
	}
}

// DeviceKind identifies one of the ship's eight systems.
type DeviceKind int

const (
	WarpEngines DeviceKind = iota
	ShortRangeSensors
	LongRangeSensors
	PhaserControl
	PhotonTubes
	DamageControl
	ShieldControl
	LibraryComputer

	deviceCount
)

var deviceNames = [deviceCount]string{
	"Warp engines",
	"Short range sensors",
	"Long range sensors",
	"Phaser control",
	"Photon tubes",
	"Damage control",
	"Shield control",
	"Library computer",
}

// DeviceKinds returns every device in damage-table order.
func DeviceKinds() []DeviceKind {
	kinds := make([]DeviceKind, deviceCount)
	for i := range kinds {
		kinds[i] = DeviceKind(i)
	}
	return kinds
}

// String returns the device's display name. An out-of-range kind is a
// programming defect and panics.
func (k DeviceKind) String() string {
	if k < 0 || k >= deviceCount {
		panic(fmt.Sprintf("trek: unknown device kind %d", int(k)))
	}
	return deviceNames[k]
}

// Device is one entry of the ship's damage table. Damage is measured in
// hundredths of a stardate of repair time; zero means operative.
type Device struct {
	Kind   DeviceKind
	Damage int
}

// Damaged reports whether the device is degraded.
func (d Device) Damaged() bool {
	return d.Damage > 0
}

// AddDamage degrades the device.
func (d *Device) AddDamage(n int) {
	if n > 0 {
		d.Damage += n
	}
}

// Repair removes up to n units of damage, never going below zero.
func (d *Device) Repair(n int) {
	d.Damage = max(0, d.Damage-n)
}

// RepairAll makes the device fully operative.
func (d *Device) RepairAll() {
	d.Damage = 0
}

// Ship is the player's starship.
type Ship struct {
	Pos       core.Coord
	Docked    bool
	Torpedoes int
	Shield    int
	Energy    int
	Devices   [deviceCount]Device
	Destroyed bool
}

// newShip returns a fully supplied, undamaged ship at pos.
func newShip(pos core.Coord, energy, torpedoes int) Ship {
	s := Ship{
		Pos:       pos,
		Energy:    energy,
		Torpedoes: torpedoes,
	}
	for _, k := range DeviceKinds() {
		s.Devices[k] = Device{Kind: k}
	}
	return s
}

// TotalEnergy is the sum of the energy pool and the shield pool.
func (s *Ship) TotalEnergy() int {
	return s.Energy + s.Shield
}

// Device returns the damage record for a device.
func (s *Ship) Device(k DeviceKind) *Device {
	if k < 0 || k >= deviceCount {
		panic(fmt.Sprintf("trek: unknown device kind %d", int(k)))
	}
	return &s.Devices[k]
}

// Damaged reports whether a device is degraded.
func (s *Ship) Damaged(k DeviceKind) bool {
	return s.Device(k).Damaged()
}

// Stranded reports whether the ship can no longer maneuver at all.
func (s *Ship) Stranded() bool {
	return s.TotalEnergy() <= 10 && (s.Energy < 10 || s.Damaged(ShieldControl))
}

// Klingon is an enemy battle cruiser.
type Klingon struct {
	Pos       core.Coord
	Energy    int
	Destroyed bool
}

// Starbase is a Federation base; it never attacks and supports docking.
type Starbase struct {
	Pos       core.Coord
	Destroyed bool
}

// Quadrant holds the incrementally maintained counts for one quadrant.
type Quadrant struct {
	Stars     int
	Klingons  int
	Starbases int
	Name      string
	Visited   bool
}

// Code returns the three-digit klingons/starbases/stars scan code.
func (q Quadrant) Code() int {
	return q.Klingons*100 + q.Starbases*10 + q.Stars
}

var quadrantNames = [16]string{
	"Antares", "Rigel", "Procyon", "Vega",
	"Canopus", "Altair", "Sagittarius", "Pollux",
	"Sirius", "Deneb", "Capella", "Betelgeuse",
	"Aldebaran", "Regulus", "Arcturus", "Spica",
}

var regionNumerals = [4]string{" I", " II", " III", " IV"}

// QuadrantName returns the region name of a quadrant position. The left
// half of each row takes the first name set, the right half the second;
// with withRegion the Roman numeral sub-region is appended.
func QuadrantName(q core.Coord, withRegion bool) string {
	if !q.InQuadrant() {
		return "Unknown"
	}

	name := quadrantNames[q.Y]
	if q.X >= core.QuadrantSize/2 {
		name = quadrantNames[q.Y+8]
	}
	if withRegion {
		name += regionNumerals[q.X%4]
	}
	return name
}
