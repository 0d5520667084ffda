package render

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/questlog-api/internal/entities"
)

var rarityStyle = map[entities.ItemRarity]func(...string) string{
	entities.RarityCommon:    Muted.Render,
	entities.RarityUncommon:  Good.Render,
	entities.RarityRare:      H2.Render,
	entities.RarityEpic:      Title.Render,
	entities.RarityLegendary: Gold.Render,
}

func itemName(item *entities.Item) string {
	if style, ok := rarityStyle[item.Rarity]; ok {
		return style(item.Name)
	}
	return item.Name
}

func itemBonuses(s *entities.ItemStats) string {
	if s == nil {
		return ""
	}
	var parts []string
	add := func(label string, v int) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s+%d", label, v))
		}
	}
	add("STR", s.Strength)
	add("DEX", s.Dexterity)
	add("INT", s.Intelligence)
	add("HP", s.HP)
	add("MP", s.MP)
	return strings.Join(parts, " ")
}

// Shop lists the stock, marking what the character cannot afford
func Shop(items []entities.Item, gold int) string {
	lines := []string{Heading(IconCoin, "Shop"), LabelValue("Gold", Gold.Render(fmt.Sprintf("%d", gold)))}
	for i := range items {
		item := &items[i]
		price := Gold.Render(fmt.Sprintf("%dg", item.Value))
		if item.Value > gold {
			price = Bad.Render(fmt.Sprintf("%dg", item.Value))
		}
		line := fmt.Sprintf("- %s %s %s %s", itemName(item), Muted.Render(item.ID), Muted.Render(string(item.Type)), price)
		if bonus := itemBonuses(item.Stats); bonus != "" {
			line += " " + Muted.Render(bonus)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Inventory lists held items with stack counts and equipped markers
func Inventory(items []*entities.Item) string {
	lines := []string{Heading(IconBox, "Inventory")}
	if len(items) == 0 {
		lines = append(lines, Muted.Render("empty"))
	}
	for _, item := range items {
		line := fmt.Sprintf("- %s x%d %s", itemName(item), item.Count(), Muted.Render(item.ID))
		if item.IsEquipped {
			line += " " + Good.Render("[equipped]")
		}
		if bonus := itemBonuses(item.Stats); bonus != "" {
			line += " " + Muted.Render(bonus)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
