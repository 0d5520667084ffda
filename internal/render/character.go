package render

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/progression"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

const barWidth = 20

// CharacterSheet renders the profile's character with its unlocked skills
func CharacterSheet(p *entities.Profile, skills []*entities.Skill) string {
	if p == nil || p.Character == nil {
		return Muted.Render("no character")
	}
	ch := p.Character

	var b strings.Builder
	fmt.Fprintln(&b, Heading(IconSparkle, fmt.Sprintf("%s the %s", displayName(p), ch.Class)))
	fmt.Fprintln(&b, LabelValue("Level", ch.Level))
	fmt.Fprintln(&b, LabelValue("EXP", Bar(ch.Experience, ch.ExperienceToNext, barWidth)))
	fmt.Fprintln(&b, LabelValue("HP", Bar(ch.Vitals.CurrentHP, ch.Vitals.MaxHP, barWidth)))
	fmt.Fprintln(&b, LabelValue("MP", Bar(ch.Vitals.CurrentMP, ch.Vitals.MaxMP, barWidth)))
	fmt.Fprintln(&b, LabelValue("Gold", Gold.Render(fmt.Sprintf("%d", ch.Gold))))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, H2.Render("Stats"))
	fmt.Fprintf(&b, "- STR %d\n", ch.Stats.Strength)
	fmt.Fprintf(&b, "- DEX %d\n", ch.Stats.Dexterity)
	fmt.Fprintf(&b, "- INT %d\n", ch.Stats.Intelligence)
	if ch.Stats.AvailablePoints > 0 {
		fmt.Fprintln(&b, Good.Render(fmt.Sprintf("%d stat points to spend", ch.Stats.AvailablePoints)))
	}
	if ch.SkillPoints > 0 {
		fmt.Fprintln(&b, Good.Render(fmt.Sprintf("%d skill points", ch.SkillPoints)))
	}
	fmt.Fprintf(&b, "%s %s\n", LabelValue("Attack", rules.CombatAttack(ch.Stats)), LabelValue("Defense", rules.CombatDefense(ch.Stats)))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, H2.Render("Skills"))
	if len(skills) == 0 {
		fmt.Fprintln(&b, Muted.Render("none unlocked"))
	}
	for _, s := range skills {
		fmt.Fprintf(&b, "- %s %s\n", Key.Render(s.Name), Muted.Render(fmt.Sprintf("(%d dmg, %d mp)", s.Damage, s.ManaCost)))
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Progression renders the log of an engine operation
func Progression(res *progression.Result) string {
	if res == nil {
		return ""
	}
	if res.Rejected {
		return Warn.Render(res.Message)
	}

	var lines []string
	if res.LevelsGained > 0 {
		lines = append(lines, BadgeLevelUp)
	}
	for _, l := range res.Log {
		lines = append(lines, "- "+l)
	}
	for _, w := range res.Warnings {
		lines = append(lines, Warn.Render("! "+w))
	}
	return strings.Join(lines, "\n")
}

func displayName(p *entities.Profile) string {
	if p.Character.Name != "" {
		return p.Character.Name
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.UserID
}
