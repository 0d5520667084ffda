package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/repositories/inventory"
	"github.com/KirkDiggler/questlog-api/internal/repositories/profile"
	"github.com/KirkDiggler/questlog-api/internal/repositories/quests"
	"github.com/KirkDiggler/questlog-api/internal/testutils/builders"
)

// TestEmail is the address fixtures register with
const TestEmail = "hero@example.com"

// CreateTestProfile returns a registered profile wrapping ch. A nil
// character gets a fresh level 1 one.
func CreateTestProfile(userID string, ch *entities.Character, registered time.Time) *entities.Profile {
	if ch == nil {
		ch = builders.NewCharacterBuilder().Build()
	}
	p := entities.NewProfile(userID, TestEmail, ch.ID, registered)
	p.Character = ch
	return p
}

// CreateTestPotion returns a stack of health potions
func CreateTestPotion(quantity int) *entities.Item {
	return &entities.Item{
		ID:       "item_health_potion",
		Name:     "Health Potion",
		Type:     entities.ItemTypeConsumable,
		Rarity:   entities.RarityCommon,
		Value:    25,
		Quantity: quantity,
		Stats:    &entities.ItemStats{HP: 50},
	}
}

// CreateTestSword returns an unequipped weapon
func CreateTestSword() *entities.Item {
	return &entities.Item{
		ID:     "item_iron_sword",
		Name:   "Iron Sword",
		Type:   entities.ItemTypeWeapon,
		Rarity: entities.RarityCommon,
		Value:  80,
		Stats:  &entities.ItemStats{Strength: 2},
	}
}

// StoredState is what SeedUser writes
type StoredState struct {
	Profile   *entities.Profile
	Quests    []*entities.Quest
	Inventory []*entities.Item
}

// SeedUser writes a user's profile, quests and inventory directly to the
// stores, bypassing the game service
func SeedUser(
	ctx context.Context, t *testing.T,
	profiles profile.Repository, questRepo quests.Repository, inv inventory.Repository,
	state *StoredState,
) {
	t.Helper()
	require.NotNil(t, state.Profile, "seeded state needs a profile")
	userID := state.Profile.UserID

	_, err := profiles.Put(ctx, &profile.PutInput{Profile: state.Profile})
	require.NoError(t, err, "failed to seed profile")

	for _, q := range state.Quests {
		_, err := questRepo.Save(ctx, &quests.SaveInput{UserID: userID, Quest: q})
		require.NoError(t, err, "failed to seed quest %s", q.ID)
	}

	if len(state.Inventory) > 0 {
		_, err := inv.Replace(ctx, &inventory.ReplaceInput{UserID: userID, Items: state.Inventory})
		require.NoError(t, err, "failed to seed inventory")
	}
}
