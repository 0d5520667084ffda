package progression

import (
	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

// AllocateStatPoint moves one available point into stat
func (e *Engine) AllocateStatPoint(ch *entities.Character, stat entities.Stat) *Result {
	if ch == nil {
		return rejected("No character loaded")
	}
	if !validStat(stat) {
		return rejected("Unknown stat %q", stat)
	}
	if ch.Stats.AvailablePoints <= 0 {
		return rejected("No stat points available")
	}

	ch.Stats.Set(stat, ch.Stats.Get(stat)+1)
	ch.Stats.AvailablePoints--

	res := &Result{}
	res.logf("%s increased to %d", stat, ch.Stats.Get(stat))
	return res
}

// DeallocateStatPoint moves one point from stat back into the pool. A stat
// never drops below the floor.
func (e *Engine) DeallocateStatPoint(ch *entities.Character, stat entities.Stat) *Result {
	if ch == nil {
		return rejected("No character loaded")
	}
	if !validStat(stat) {
		return rejected("Unknown stat %q", stat)
	}
	if ch.Stats.Get(stat) <= rules.StatFloor {
		return rejected("%s cannot go below %d", stat, rules.StatFloor)
	}

	ch.Stats.Set(stat, ch.Stats.Get(stat)-1)
	ch.Stats.AvailablePoints++

	res := &Result{}
	res.logf("%s decreased to %d", stat, ch.Stats.Get(stat))
	return res
}

// ResetStats returns every primary stat to the baseline and settles the
// difference against the pool, so stats plus available points is unchanged.
// A pool too small to raise low stats back to the baseline rejects the reset.
func (e *Engine) ResetStats(ch *entities.Character) *Result {
	if ch == nil {
		return rejected("No character loaded")
	}

	pool := ch.Stats.AvailablePoints
	for _, stat := range primaryStats {
		pool += ch.Stats.Get(stat) - rules.StatBaseline
	}
	if pool < 0 {
		return rejected("Need %d more points to reset stats", -pool)
	}

	for _, stat := range primaryStats {
		ch.Stats.Set(stat, rules.StatBaseline)
	}
	ch.Stats.AvailablePoints = pool

	res := &Result{}
	res.logf("Stats reset. %d points available", ch.Stats.AvailablePoints)
	return res
}

var primaryStats = []entities.Stat{
	entities.StatStrength,
	entities.StatDexterity,
	entities.StatIntelligence,
}

func validStat(stat entities.Stat) bool {
	for _, s := range primaryStats {
		if s == stat {
			return true
		}
	}
	return false
}
