package entities

// ItemType categorizes an inventory item
type ItemType string

// Item types
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeMaterial   ItemType = "material"
	ItemTypeQuest      ItemType = "quest"
	ItemTypeCosmetic   ItemType = "cosmetic"
)

// ItemRarity is the drop tier of an item
type ItemRarity string

// Item rarities
const (
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
)

// ItemStats are flat bonuses granted by an item
type ItemStats struct {
	Strength     int `json:"strength,omitempty"`
	Dexterity    int `json:"dexterity,omitempty"`
	Intelligence int `json:"intelligence,omitempty"`
	HP           int `json:"hp,omitempty"`
	MP           int `json:"mp,omitempty"`
}

// Item is an inventory entry. Quantity 0 means a single non-stackable item.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        ItemType   `json:"type"`
	Rarity      ItemRarity `json:"rarity"`
	Value       int        `json:"value"`
	Quantity    int        `json:"quantity,omitempty"`
	Stats       *ItemStats `json:"stats,omitempty"`
	IsEquipped  bool       `json:"isEquipped,omitempty"`
}

// Count returns the effective stack size
func (i *Item) Count() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}
