package config

import (
	_ "embed"
)

//go:embed defaults/trek.yaml
var defaultTrekYAML []byte

// DefaultTrekConfig returns the classic mission configuration.
func DefaultTrekConfig() TrekConfig {
	return TrekConfig{
		Ship: ShipConfig{
			Energy:           3000,
			Torpedoes:        10,
			LowShieldWarning: 200,
		},
		Klingon: KlingonConfig{
			Energy: 3000,
		},
		Galaxy: GalaxyConfig{
			StardateMin:      2000,
			StardateSpan:     2000,
			MissionDays:      25,
			MissionDaysExtra: 10,
			ThreeKlingons:    98,
			TwoKlingons:      95,
			OneKlingon:       80,
			Starbase:         96,
			MaxStars:         8,
		},
		Navigation: NavigationConfig{
			MaxWarp:        8.0,
			DamagedMaxWarp: 0.2,
			PromptMaxWarp:  10.0,
			StepTime:       0.1,
			ManeuverCost:   10,
		},
		Weapons: WeaponsConfig{
			PhaserScale:     100,
			NoDamageFactor:  15,
			TorpedoEnergy:   2,
			MaxPhaserEnergy: 10000,
		},
		Repair: RepairConfig{
			CapWarp:          100,
			CapRate:          10,
			ResidualFloor:    10,
			EventChance:      2,
			DamageChance:     6,
			DockedPerDevice:  10,
			DockedCostLimit:  100,
			DockedCostCapped: 90,
		},
	}
}
