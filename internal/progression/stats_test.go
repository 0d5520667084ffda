package progression_test

import (
	"github.com/KirkDiggler/questlog-api/internal/entities"
)

func (s *EngineTestSuite) TestAllocateStatPoint() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Stats.AvailablePoints = 2

	res := s.engine.AllocateStatPoint(ch, entities.StatStrength)
	s.False(res.Rejected)
	s.Equal(6, ch.Stats.Strength)
	s.Equal(1, ch.Stats.AvailablePoints)
}

func (s *EngineTestSuite) TestAllocateStatPointWithoutPoints() {
	ch := entities.NewCharacter("char_1", "Ayla")
	before := *ch

	res := s.engine.AllocateStatPoint(ch, entities.StatDexterity)
	s.True(res.Rejected)
	s.Equal("No stat points available", res.Message)
	s.Equal(before, *ch)
}

func (s *EngineTestSuite) TestAllocateUnknownStat() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Stats.AvailablePoints = 1

	res := s.engine.AllocateStatPoint(ch, entities.Stat("charisma"))
	s.True(res.Rejected)
	s.Equal(1, ch.Stats.AvailablePoints)
}

func (s *EngineTestSuite) TestDeallocateStatFloor() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Stats.Intelligence = 1

	res := s.engine.DeallocateStatPoint(ch, entities.StatIntelligence)
	s.True(res.Rejected)
	s.Equal(1, ch.Stats.Intelligence)
	s.Zero(ch.Stats.AvailablePoints)
}

func (s *EngineTestSuite) TestAllocateDeallocateRoundTrip() {
	for _, stat := range []entities.Stat{entities.StatStrength, entities.StatDexterity, entities.StatIntelligence} {
		ch := entities.NewCharacter("char_1", "Ayla")
		ch.Stats.AvailablePoints = 3
		before := ch.Stats

		s.False(s.engine.AllocateStatPoint(ch, stat).Rejected)
		s.False(s.engine.DeallocateStatPoint(ch, stat).Rejected)

		s.Equal(before, ch.Stats, string(stat))
	}
}

func (s *EngineTestSuite) TestResetThenReallocate() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Stats = entities.Stats{Strength: 9, Dexterity: 6, Intelligence: 5, AvailablePoints: 1}
	before := ch.Stats

	res := s.engine.ResetStats(ch)
	s.False(res.Rejected)
	s.Equal(entities.Stats{Strength: 5, Dexterity: 5, Intelligence: 5, AvailablePoints: 6}, ch.Stats)

	for i := 0; i < 4; i++ {
		s.False(s.engine.AllocateStatPoint(ch, entities.StatStrength).Rejected)
	}
	s.False(s.engine.AllocateStatPoint(ch, entities.StatDexterity).Rejected)

	s.Equal(before, ch.Stats)
}

func statTotal(st entities.Stats) int {
	return st.Strength + st.Dexterity + st.Intelligence + st.AvailablePoints
}

func (s *EngineTestSuite) TestResetConservesPoints() {
	ch := entities.NewCharacter("char_1", "Ayla")
	total := statTotal(ch.Stats)

	for round := 0; round < 3; round++ {
		for ch.Stats.Strength > 1 {
			s.Require().False(s.engine.DeallocateStatPoint(ch, entities.StatStrength).Rejected)
		}
		s.False(s.engine.ResetStats(ch).Rejected)
		s.Equal(total, statTotal(ch.Stats), "round %d", round)
	}
	s.Equal(entities.Stats{Strength: 5, Dexterity: 5, Intelligence: 5}, ch.Stats)
}

func (s *EngineTestSuite) TestResetMixedStatsThenReallocate() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Stats = entities.Stats{Strength: 3, Dexterity: 8, Intelligence: 5, AvailablePoints: 1}
	before := ch.Stats

	s.False(s.engine.ResetStats(ch).Rejected)
	s.Equal(entities.Stats{Strength: 5, Dexterity: 5, Intelligence: 5, AvailablePoints: 2}, ch.Stats)

	s.False(s.engine.AllocateStatPoint(ch, entities.StatDexterity).Rejected)
	s.False(s.engine.AllocateStatPoint(ch, entities.StatDexterity).Rejected)
	s.False(s.engine.DeallocateStatPoint(ch, entities.StatStrength).Rejected)
	s.False(s.engine.DeallocateStatPoint(ch, entities.StatStrength).Rejected)
	s.False(s.engine.AllocateStatPoint(ch, entities.StatDexterity).Rejected)
	s.Equal(before, ch.Stats)
}

func (s *EngineTestSuite) TestResetRejectedWhenPoolCannotCoverLowStats() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Stats = entities.Stats{Strength: 2, Dexterity: 7, Intelligence: 5}
	before := ch.Stats

	res := s.engine.ResetStats(ch)
	s.True(res.Rejected)
	s.Equal("Need 1 more points to reset stats", res.Message)
	s.Equal(before, ch.Stats)
}
