package trek

import (
	"time"

	"github.com/vovakirdan/tui-trek/internal/config"
	"github.com/vovakirdan/tui-trek/internal/core"
)

// Session plays missions back to back on one console until no commander
// volunteers for the next one.
type Session struct {
	Config    config.TrekConfig
	Console   core.Console
	Resources core.Resources

	// Seed of the first mission; later missions use Seed+1, Seed+2, ...
	// Zero seeds every mission from the clock.
	Seed int64

	Options []Option

	// OnMission, if set, is called after each mission with the seed it was
	// generated from.
	OnMission func(seed int64, g *Game)
}

// Run shows the introduction once, then plays missions. It returns the
// number of missions played.
func (s *Session) Run() int {
	res := s.Resources
	if res == nil {
		res = defaultResources()
	}

	Intro(s.Console, res)

	opts := append([]Option{WithResources(res)}, s.Options...)

	played := 0
	for {
		seed := s.missionSeed(played)
		g := New(s.Config, core.NewSource(seed), s.Console, opts...)
		exit := g.Run()
		played++

		if s.OnMission != nil {
			s.OnMission(seed, g)
		}
		if exit {
			return played
		}
	}
}

func (s *Session) missionSeed(n int) int64 {
	if s.Seed == 0 {
		return time.Now().UnixNano()
	}
	return s.Seed + int64(n)
}
