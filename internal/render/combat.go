package render

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/questlog-api/internal/combat"
	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// Battle renders both combatants and the last limit log lines
func Battle(state *combat.State, limit int) string {
	if state == nil {
		return Muted.Render("not in combat")
	}

	var b strings.Builder
	fmt.Fprintln(&b, Heading(IconSword, "Battle vs "+state.Monster.Name))
	fmt.Fprintln(&b, LabelValue("You HP", Bar(state.Player.HP, state.Player.MaxHP, barWidth)))
	fmt.Fprintln(&b, LabelValue("You MP", Bar(state.Player.MP, state.Player.MaxMP, barWidth)))
	fmt.Fprintln(&b, LabelValue(state.Monster.Name+" HP", Bar(state.Monster.CurrentHP, state.Monster.HP, barWidth)))
	fmt.Fprintln(&b)

	for _, line := range state.RecentLog(limit) {
		fmt.Fprintln(&b, Muted.Render("> ")+line)
	}

	switch state.Result {
	case combat.ResultVictory:
		fmt.Fprint(&b, Good.Render("Victory!"))
	case combat.ResultDefeat:
		fmt.Fprint(&b, Bad.Render("Defeated."))
	case combat.ResultFled:
		fmt.Fprint(&b, Warn.Render("You got away."))
	default:
		if len(state.Player.Skills) > 0 {
			names := make([]string, len(state.Player.Skills))
			for i, s := range state.Player.Skills {
				names[i] = fmt.Sprintf("%s (%d mp)", s.ID, s.ManaCost)
			}
			fmt.Fprint(&b, LabelValue("Skills", strings.Join(names, ", ")))
		} else {
			fmt.Fprint(&b, Muted.Render("attack or flee"))
		}
	}

	return Panel.Render(b.String())
}

// Monsters lists the catalog monsters
func Monsters(monsters []*entities.Monster) string {
	lines := []string{Heading(IconShield, "Monsters")}
	for _, m := range monsters {
		lines = append(lines, fmt.Sprintf("- %s %s %s",
			Key.Render(m.Name),
			Muted.Render(m.ID),
			fmt.Sprintf("HP %d ATK %d DEF %d %s", m.HP, m.Attack, m.Defense,
				Gold.Render(fmt.Sprintf("+%d exp +%d gold", m.ExpReward, m.GoldReward)))))
	}
	if len(monsters) == 0 {
		lines = append(lines, Muted.Render("catalog is empty"))
	}
	return strings.Join(lines, "\n")
}

// Skills lists catalog skills
func Skills(skills []*entities.Skill) string {
	lines := []string{Heading(IconScroll, "Skills")}
	for _, s := range skills {
		class := "any class"
		if s.RequiredClass != "" {
			class = string(s.RequiredClass)
		}
		lines = append(lines, fmt.Sprintf("- %s %s %d dmg, %d mp %s",
			Key.Render(s.Name), Muted.Render(s.ID), s.Damage, s.ManaCost, Muted.Render("("+class+")")))
	}
	if len(skills) == 0 {
		lines = append(lines, Muted.Render("catalog is empty"))
	}
	return strings.Join(lines, "\n")
}
