package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/rewards"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

// QuestBoard lists open quests first, then completed ones. Timer quests show
// their countdown at now.
func QuestBoard(quests []*entities.Quest, now time.Time) string {
	var b strings.Builder
	fmt.Fprintln(&b, Heading(IconQuest, "Quest Board"))

	if len(quests) == 0 {
		fmt.Fprint(&b, Muted.Render("no quests yet"))
		return b.String()
	}

	sorted := append([]*entities.Quest(nil), quests...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsCompleted != sorted[j].IsCompleted {
			return !sorted[i].IsCompleted
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	lines := make([]string, 0, len(sorted))
	for _, q := range sorted {
		lines = append(lines, questLine(q, now))
	}
	fmt.Fprint(&b, strings.Join(lines, "\n"))
	return b.String()
}

func questLine(q *entities.Quest, now time.Time) string {
	tier := string(q.Difficulty)
	if q.IsTimed() {
		tier = string(q.Duration)
	}

	line := fmt.Sprintf("%s %s %s %s",
		questStatus(q, now),
		Key.Render(q.Title),
		Muted.Render(fmt.Sprintf("[%s/%s]", q.Type, tier)),
		Muted.Render(q.ID))

	if !q.IsCompleted {
		line += " " + Gold.Render(fmt.Sprintf("+%d exp +%d gold", q.Rewards.Experience, q.Rewards.Gold))
		if q.Rewards.SkillPoints > 0 {
			line += " " + Good.Render(fmt.Sprintf("+%d sp", q.Rewards.SkillPoints))
		}
	}
	if q.MaxProgress > 0 {
		line += " " + Muted.Render(fmt.Sprintf("%d/%d", q.Progress, q.MaxProgress))
	}
	return line
}

func questStatus(q *entities.Quest, now time.Time) string {
	switch {
	case q.IsCompleted:
		return Good.Render(IconDone)
	case !q.IsTimed():
		return Muted.Render("[ ]")
	case q.StartedAt == nil:
		return Muted.Render("[not started]")
	case rewards.Claimable(now, q):
		return Good.Render("[ready]")
	default:
		return Warn.Render(IconTimer + " " + rules.FormatRemaining(rewards.Remaining(now, q)))
	}
}

// Rewards summarizes a paid out bundle
func Rewards(bundle rewards.Bundle) string {
	parts := []string{
		Gold.Render(fmt.Sprintf("+%d exp", bundle.Experience)),
		Gold.Render(fmt.Sprintf("+%d gold", bundle.Gold)),
	}
	if bundle.SkillPoints > 0 {
		parts = append(parts, Good.Render(fmt.Sprintf("+%d skill points", bundle.SkillPoints)))
	}
	for _, item := range bundle.Items {
		parts = append(parts, Key.Render(fmt.Sprintf("%s x%d", item.Name, item.Count())))
	}
	return IconTrophy + " " + strings.Join(parts, " ")
}
