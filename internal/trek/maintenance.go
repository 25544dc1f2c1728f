package trek

// repairDamage applies repair-over-time for a maneuver at warp, then maybe
// a random damage or repair event.
func (g *Game) repairDamage(warp float64) {
	rc := g.cfg.Repair

	rate := int(warp * 100)
	if warp >= rc.CapWarp {
		rate = rc.CapRate
	}

	reported := false
	for i := range g.Ship.Devices {
		dev := &g.Ship.Devices[i]
		if !dev.Damaged() {
			continue
		}

		dev.Repair(rate)
		switch {
		case dev.Damage > 0 && dev.Damage < rc.ResidualFloor:
			dev.Damage = rc.ResidualFloor
		case dev.Damage == 0:
			if !reported {
				g.printf("Damage Control report:\n")
				reported = true
			}
			g.printf("    %s repair completed\n\n", dev.Kind)
		}
	}

	if g.roll(10) > rc.EventChance {
		return
	}

	dev := &g.Ship.Devices[g.pick(int(deviceCount))]
	if g.roll(10) <= rc.DamageChance {
		dev.AddDamage(g.roll(500) + 100)
		g.printf("Damage Control report:\n")
		g.printf("    %s damaged\n\n", dev.Kind)
		return
	}

	dev.Repair(g.roll(300) + 100)
	g.printf("Damage Control report:\n")
	g.printf("    %s state of repair improved\n\n", dev.Kind)
}

// DamageControl prints the damage table and, when docked, offers a full
// repair at a time cost.
func (g *Game) DamageControl() {
	rc := g.cfg.Repair

	reportDown := g.Ship.Damaged(DamageControl)
	if reportDown {
		g.printf("Damage Control report not available.\n")
	}

	if g.Ship.Docked {
		cost := 0
		for _, dev := range g.Ship.Devices {
			if dev.Damaged() {
				cost += rc.DockedPerDevice
			}
		}

		if cost > 0 {
			cost += g.D4
			if cost >= rc.DockedCostLimit {
				cost = rc.DockedCostCapped
			}

			g.printf("\nTechnicians standing by to effect repairs to your ship;\n")
			g.printf("Estimated time to repair: %.2f stardates.\n", float64(cost)/100)

			if g.con.Confirm("Will you authorize the repair order (y/n)? ", false) {
				for i := range g.Ship.Devices {
					g.Ship.Devices[i].RepairAll()
				}
				g.Stardate += float64((cost+5)/10+1) / 10
			}
			return
		}
	}

	if reportDown {
		return
	}

	g.printf("\nDevice            State of Repair\n")
	for _, dev := range g.Ship.Devices {
		g.printf("%-25s%6.2f\n", dev.Kind, float64(-dev.Damage)/100)
	}
	g.printf("\n")
}

// SetShields moves energy between the main pool and the shields. The sum
// of both is conserved.
func (g *Game) SetShields() {
	if g.inoperable(ShieldControl) {
		return
	}

	total := g.Ship.TotalEnergy()
	g.printf("Energy available = %d\n\n", total)

	level := g.con.Int("Input number of units to shields: ", 0, 10000)

	if level == g.Ship.Shield || level > total {
		if level >= total {
			g.printf("Shield Control Reports:\n")
			g.printf("  'This is not the Federation Treasury.'\n")
		}
		g.printf("<Shields Unchanged>\n\n")
		return
	}

	g.Ship.Energy = total - level
	g.Ship.Shield = level

	g.printf("Deflector Control Room report:\n")
	g.printf("  'Shields now at %d units per your command.'\n\n", g.Ship.Shield)
}
