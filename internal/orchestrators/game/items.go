package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
)

// DefaultShop is the stock offered when no shop is configured
func DefaultShop() []entities.Item {
	return []entities.Item{
		{
			ID: "item_health_potion", Name: "Health Potion", Description: "Restores a little vigor.",
			Type: entities.ItemTypeConsumable, Rarity: entities.RarityCommon, Value: 25, Quantity: 1,
			Stats: &entities.ItemStats{HP: 50},
		},
		{
			ID: "item_mana_potion", Name: "Mana Potion", Description: "Clears the mind.",
			Type: entities.ItemTypeConsumable, Rarity: entities.RarityCommon, Value: 30, Quantity: 1,
			Stats: &entities.ItemStats{MP: 30},
		},
		{
			ID: "item_iron_sword", Name: "Iron Sword", Description: "Plain, sharp and dependable.",
			Type: entities.ItemTypeWeapon, Rarity: entities.RarityCommon, Value: 80,
			Stats: &entities.ItemStats{Strength: 2},
		},
		{
			ID: "item_hunting_bow", Name: "Hunting Bow", Description: "Light and quick to draw.",
			Type: entities.ItemTypeWeapon, Rarity: entities.RarityUncommon, Value: 120,
			Stats: &entities.ItemStats{Dexterity: 3},
		},
		{
			ID: "item_oak_staff", Name: "Oak Staff", Description: "Hums faintly when held.",
			Type: entities.ItemTypeWeapon, Rarity: entities.RarityUncommon, Value: 120,
			Stats: &entities.ItemStats{Intelligence: 3},
		},
		{
			ID: "item_leather_armor", Name: "Leather Armor", Description: "Better than nothing.",
			Type: entities.ItemTypeArmor, Rarity: entities.RarityCommon, Value: 60,
			Stats: &entities.ItemStats{HP: 20},
		},
		{
			ID: "item_lucky_charm", Name: "Lucky Charm", Description: "A four leaf clover in resin.",
			Type: entities.ItemTypeAccessory, Rarity: entities.RarityRare, Value: 200,
			Stats: &entities.ItemStats{Strength: 1, Dexterity: 1, Intelligence: 1},
		},
		{
			ID: "item_adventurer_hat", Name: "Adventurer's Hat", Description: "Purely for looks.",
			Type: entities.ItemTypeCosmetic, Rarity: entities.RarityUncommon, Value: 50,
		},
	}
}

func equippable(t entities.ItemType) bool {
	switch t {
	case entities.ItemTypeWeapon, entities.ItemTypeArmor, entities.ItemTypeAccessory, entities.ItemTypeCosmetic:
		return true
	default:
		return false
	}
}

// EquipItem flags an item as equipped
func (s *service) EquipItem(ctx context.Context, input *ItemInput) (*ItemOutput, error) {
	return s.setEquipped(ctx, input, true)
}

// UnequipItem clears the equipped flag
func (s *service) UnequipItem(ctx context.Context, input *ItemInput) (*ItemOutput, error) {
	return s.setEquipped(ctx, input, false)
}

func (s *service) setEquipped(ctx context.Context, input *ItemInput, equipped bool) (*ItemOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	_, item := sess.item(input.ItemID)
	if item == nil {
		return nil, errors.NotFoundf("item %s not found", input.ItemID)
	}
	if equipped && !equippable(item.Type) {
		return nil, errors.InvalidArgumentf("%s items cannot be equipped", item.Type)
	}

	if item.IsEquipped != equipped {
		item.IsEquipped = equipped
		sess.markInventory()
		s.requestFlush()
	}

	slog.DebugContext(ctx, "item equip toggled",
		"user_id", sess.userID,
		"item_id", item.ID,
		"equipped", equipped)

	return &ItemOutput{Item: cloneItem(item), Gold: sess.character().Gold}, nil
}

// BuyItem takes the item's price from the character's gold
func (s *service) BuyItem(ctx context.Context, input *ItemInput) (*ItemOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	var stock *entities.Item
	for i := range s.shop {
		if s.shop[i].ID == input.ItemID {
			stock = &s.shop[i]
			break
		}
	}
	if stock == nil {
		return nil, errors.NotFoundf("item %s is not sold here", input.ItemID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	ch := sess.character()
	if ch.Gold < stock.Value {
		return nil, errors.FailedPreconditionf("not enough gold: have %d, need %d", ch.Gold, stock.Value).
			WithMeta("gold", ch.Gold).
			WithMeta("price", stock.Value)
	}

	ch.Gold -= stock.Value
	bought := *stock
	bought.IsEquipped = false
	sess.addItem(bought)
	sess.markProfile()
	sess.markInventory()

	slog.InfoContext(ctx, "item bought",
		"user_id", sess.userID,
		"item_id", stock.ID,
		"price", stock.Value,
		"gold", ch.Gold)

	s.requestFlush()
	_, held := sess.item(stock.ID)
	return &ItemOutput{Item: cloneItem(held), Gold: ch.Gold}, nil
}

// SellItem sells one of the item for half its value, rounded down
func (s *service) SellItem(ctx context.Context, input *ItemInput) (*ItemOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	_, item := sess.item(input.ItemID)
	if item == nil {
		return nil, errors.NotFoundf("item %s not found", input.ItemID)
	}
	if item.IsEquipped {
		return nil, errors.FailedPreconditionf("item %s is equipped", item.ID)
	}

	sold := cloneItem(item)
	price := item.Value / 2
	ch := sess.character()
	ch.Gold += price
	sess.removeItem(item.ID)
	sess.markProfile()
	sess.markInventory()

	slog.InfoContext(ctx, "item sold",
		"user_id", sess.userID,
		"item_id", sold.ID,
		"price", price,
		"gold", ch.Gold)

	s.requestFlush()
	return &ItemOutput{Item: sold, Gold: ch.Gold}, nil
}

// ListShop returns the shop stock
func (s *service) ListShop(_ context.Context, _ *ListShopInput) (*ListShopOutput, error) {
	return &ListShopOutput{Items: append([]entities.Item(nil), s.shop...)}, nil
}
