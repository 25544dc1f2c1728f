// Package config provides YAML-based mission configuration loading and
// difficulty presets for the game.
package config

// TrekConfig contains every tunable constant of a mission.
type TrekConfig struct {
	Ship       ShipConfig       `yaml:"ship"`
	Klingon    KlingonConfig    `yaml:"klingon"`
	Galaxy     GalaxyConfig     `yaml:"galaxy"`
	Navigation NavigationConfig `yaml:"navigation"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Repair     RepairConfig     `yaml:"repair"`
}

// ShipConfig defines the starship's supplies.
type ShipConfig struct {
	Energy           int `yaml:"energy"`
	Torpedoes        int `yaml:"torpedoes"`
	LowShieldWarning int `yaml:"low_shield_warning"`
}

// KlingonConfig defines the enemy cruisers.
type KlingonConfig struct {
	Energy int `yaml:"energy"`
}

// GalaxyConfig defines world generation. Rolls are 1..100 dice; a quadrant
// gets N klingons when its roll exceeds the N-th threshold.
type GalaxyConfig struct {
	StardateMin      float64 `yaml:"stardate_min"`
	StardateSpan     float64 `yaml:"stardate_span"`
	MissionDays      int     `yaml:"mission_days"`
	MissionDaysExtra int     `yaml:"mission_days_extra"`
	ThreeKlingons    int     `yaml:"three_klingons"`
	TwoKlingons      int     `yaml:"two_klingons"`
	OneKlingon       int     `yaml:"one_klingon"`
	Starbase         int     `yaml:"starbase"`
	MaxStars         int     `yaml:"max_stars"`
}

// NavigationConfig defines warp limits and the time cost of moving.
type NavigationConfig struct {
	MaxWarp        float64 `yaml:"max_warp"`
	DamagedMaxWarp float64 `yaml:"damaged_max_warp"`
	PromptMaxWarp  float64 `yaml:"prompt_max_warp"`
	StepTime       float64 `yaml:"step_time"`
	ManeuverCost   int     `yaml:"maneuver_cost"`
}

// WeaponsConfig defines phaser and torpedo arithmetic.
type WeaponsConfig struct {
	PhaserScale     int `yaml:"phaser_scale"`
	NoDamageFactor  int `yaml:"no_damage_factor"`
	TorpedoEnergy   int `yaml:"torpedo_energy"`
	MaxPhaserEnergy int `yaml:"max_phaser_energy"`
}

// RepairConfig defines repair-over-time and docked repairs. Damage is kept
// in hundredths of a stardate of repair time.
type RepairConfig struct {
	CapWarp          float64 `yaml:"cap_warp"`
	CapRate          int     `yaml:"cap_rate"`
	ResidualFloor    int     `yaml:"residual_floor"`
	EventChance      int     `yaml:"event_chance"`
	DamageChance     int     `yaml:"damage_chance"`
	DockedPerDevice  int     `yaml:"docked_per_device"`
	DockedCostLimit  int     `yaml:"docked_cost_limit"`
	DockedCostCapped int     `yaml:"docked_cost_capped"`
}
