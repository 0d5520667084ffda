package rules

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// Reward is an experience/gold pair from a reward table
type Reward struct {
	Experience int
	Gold       int
}

// DurationTier describes one timer quest length
type DurationTier struct {
	Label string
	Hours int
	Reward
}

var difficultyRewards = map[entities.QuestDifficulty]Reward{
	entities.DifficultyEasy:   {Experience: 10, Gold: 5},
	entities.DifficultyMedium: {Experience: 25, Gold: 15},
	entities.DifficultyHard:   {Experience: 50, Gold: 30},
	entities.DifficultyEpic:   {Experience: 100, Gold: 60},
}

var durationTiers = map[entities.QuestDuration]DurationTier{
	entities.Duration1h:  {Label: "1 Hour", Hours: 1, Reward: Reward{Experience: 10, Gold: 5}},
	entities.Duration2h:  {Label: "2 Hours", Hours: 2, Reward: Reward{Experience: 15, Gold: 10}},
	entities.Duration4h:  {Label: "4 Hours", Hours: 4, Reward: Reward{Experience: 25, Gold: 20}},
	entities.Duration8h:  {Label: "8 Hours", Hours: 8, Reward: Reward{Experience: 45, Gold: 35}},
	entities.Duration12h: {Label: "12 Hours", Hours: 12, Reward: Reward{Experience: 70, Gold: 50}},
	entities.Duration24h: {Label: "24 Hours", Hours: 24, Reward: Reward{Experience: 100, Gold: 80}},
}

// WeeklySkillPoints is the bonus granted by weekly quests
const WeeklySkillPoints = 1

// DifficultyReward looks up the difficulty table
func DifficultyReward(d entities.QuestDifficulty) (Reward, error) {
	r, ok := difficultyRewards[d]
	if !ok {
		return Reward{}, fmt.Errorf("unknown difficulty %q", d)
	}
	return r, nil
}

// Duration looks up a timer tier
func Duration(d entities.QuestDuration) (DurationTier, error) {
	t, ok := durationTiers[d]
	if !ok {
		return DurationTier{}, fmt.Errorf("unknown duration %q", d)
	}
	return t, nil
}

// QuestTimeRemaining is max(0, startedAt + hours - now). A timer that was
// never started reports zero.
func QuestTimeRemaining(now time.Time, startedAt *time.Time, hours int) time.Duration {
	if startedAt == nil {
		return 0
	}
	end := startedAt.Add(time.Duration(hours) * time.Hour)
	if remaining := end.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

// FormatRemaining renders a duration as HH:MM:SS, truncated to whole seconds
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
