// Package game holds per-user game sessions and exposes the actions the
// presentation layer calls. Actions mutate the in-memory session and request
// a write; stores are updated by the background flusher or by Flush.
package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/pkg/clock"
	"github.com/KirkDiggler/questlog-api/internal/pkg/idgen"
	"github.com/KirkDiggler/questlog-api/internal/progression"
	"github.com/KirkDiggler/questlog-api/internal/repositories/catalog"
	"github.com/KirkDiggler/questlog-api/internal/repositories/inventory"
	"github.com/KirkDiggler/questlog-api/internal/repositories/profile"
	"github.com/KirkDiggler/questlog-api/internal/repositories/quests"
)

// Event types published on the bus
const (
	EventQuestCompleted = "quest.completed"
	EventCombatEnded    = "combat.ended"
)

// Defaults applied when the config leaves a tuning value unset
const (
	DefaultFlushInterval  = 5 * time.Second
	DefaultCombatLogLimit = 10
)

// Service defines the game actions
type Service interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	Unload(ctx context.Context, input *UnloadInput) (*UnloadOutput, error)
	State(ctx context.Context, input *StateInput) (*StateOutput, error)

	CreateQuest(ctx context.Context, input *CreateQuestInput) (*CreateQuestOutput, error)
	StartQuest(ctx context.Context, input *StartQuestInput) (*StartQuestOutput, error)
	CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error)
	DeleteQuest(ctx context.Context, input *DeleteQuestInput) (*DeleteQuestOutput, error)
	QuestTimers(ctx context.Context, input *QuestTimersInput) (*QuestTimersOutput, error)

	AllocateStat(ctx context.Context, input *StatInput) (*StatOutput, error)
	DeallocateStat(ctx context.Context, input *StatInput) (*StatOutput, error)
	ResetStats(ctx context.Context, input *ResetStatsInput) (*StatOutput, error)

	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)
	PerformCombatAction(ctx context.Context, input *CombatActionInput) (*CombatActionOutput, error)
	EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error)

	EquipItem(ctx context.Context, input *ItemInput) (*ItemOutput, error)
	UnequipItem(ctx context.Context, input *ItemInput) (*ItemOutput, error)
	BuyItem(ctx context.Context, input *ItemInput) (*ItemOutput, error)
	SellItem(ctx context.Context, input *ItemInput) (*ItemOutput, error)
	ListShop(ctx context.Context, input *ListShopInput) (*ListShopOutput, error)

	// Flush writes pending changes synchronously
	Flush(ctx context.Context, input *FlushInput) (*FlushOutput, error)

	// Run flushes on every write request and interval tick until ctx is done,
	// then flushes once more
	Run(ctx context.Context) error
}

// Config holds the dependencies for the game service
type Config struct {
	Profiles    profile.Repository
	Quests      quests.Repository
	Inventory   inventory.Repository
	Catalog     catalog.Repository
	Engine      *progression.Engine
	EventBus    events.EventBus
	Roller      dice.Roller
	Clock       clock.Clock
	IDGenerator idgen.Generator

	FlushInterval  time.Duration
	CombatLogLimit int
	// Shop overrides the default stock
	Shop []entities.Item
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Profiles == nil {
		vb.RequiredField("Profiles")
	}
	if c.Quests == nil {
		vb.RequiredField("Quests")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.FlushInterval < 0 {
		vb.Fieldf("FlushInterval", "must not be negative, got %s", c.FlushInterval)
	}
	if c.CombatLogLimit < 0 {
		vb.Fieldf("CombatLogLimit", "must not be negative, got %d", c.CombatLogLimit)
	}
	return vb.Build()
}

type service struct {
	profiles  profile.Repository
	quests    quests.Repository
	inventory inventory.Repository
	catalog   catalog.Repository
	engine    *progression.Engine
	eventBus  events.EventBus
	roller    dice.Roller
	clock     clock.Clock
	idGen     idgen.Generator

	flushInterval  time.Duration
	combatLogLimit int
	shop           []entities.Item

	mu       sync.RWMutex
	sessions map[string]*GameSession

	flushRequests chan struct{}
}

// NewService creates a game service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	svc := &service{
		profiles:       cfg.Profiles,
		quests:         cfg.Quests,
		inventory:      cfg.Inventory,
		catalog:        cfg.Catalog,
		engine:         cfg.Engine,
		eventBus:       cfg.EventBus,
		roller:         cfg.Roller,
		clock:          cfg.Clock,
		idGen:          cfg.IDGenerator,
		flushInterval:  cfg.FlushInterval,
		combatLogLimit: cfg.CombatLogLimit,
		shop:           cfg.Shop,
		sessions:       make(map[string]*GameSession),
		flushRequests:  make(chan struct{}, 1),
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if svc.flushInterval == 0 {
		svc.flushInterval = DefaultFlushInterval
	}
	if svc.combatLogLimit == 0 {
		svc.combatLogLimit = DefaultCombatLogLimit
	}
	if svc.shop == nil {
		svc.shop = DefaultShop()
	}
	return svc, nil
}

// Load reads a user's profile, quests and inventory into a session. A user
// without a stored profile gets a fresh one. Loading an already loaded user
// returns the live session untouched.
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	if sess := s.lookup(input.UserID); sess != nil {
		return &LoadOutput{Snapshot: sess.Snapshot()}, nil
	}

	created := false
	var p *entities.Profile
	got, err := s.profiles.Get(ctx, &profile.GetInput{UserID: input.UserID})
	switch {
	case err == nil:
		p = got.Profile
	case errors.IsNotFound(err):
		p = entities.NewProfile(input.UserID, input.Email, s.idGen.Generate(), s.clock.Now())
		created = true
	default:
		return nil, errors.Wrap(err, "failed to load profile")
	}
	if p.Character == nil {
		p.Character = entities.NewCharacter(s.idGen.Generate(), p.DisplayName)
		created = true
	}

	questOut, err := s.quests.ListByUser(ctx, &quests.ListByUserInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load quests")
	}
	invOut, err := s.inventory.List(ctx, &inventory.ListInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inventory")
	}

	sess := newSession(input.UserID, p, questOut.Quests, invOut.Items)
	if created {
		sess.markProfile()
	}

	s.mu.Lock()
	if existing, ok := s.sessions[input.UserID]; ok {
		s.mu.Unlock()
		return &LoadOutput{Snapshot: existing.Snapshot()}, nil
	}
	s.sessions[input.UserID] = sess
	s.mu.Unlock()

	if input.Watch {
		if err := s.watch(ctx, sess); err != nil {
			slog.WarnContext(ctx, "profile watch unavailable",
				"user_id", input.UserID,
				"error", err.Error())
		}
	}

	slog.InfoContext(ctx, "session loaded",
		"user_id", input.UserID,
		"created", created,
		"level", p.Character.Level,
		"quests", len(questOut.Quests),
		"items", len(invOut.Items))

	if created {
		s.requestFlush()
	}
	return &LoadOutput{Snapshot: sess.Snapshot(), Created: created}, nil
}

// watch adopts newer profiles written elsewhere while the session has no
// pending changes of its own
func (s *service) watch(ctx context.Context, sess *GameSession) error {
	out, err := s.profiles.Subscribe(ctx, &profile.SubscribeInput{
		UserID: sess.userID,
		Handler: func(ctx context.Context, p *entities.Profile) {
			sess.mu.Lock()
			defer sess.mu.Unlock()
			if !sess.adopt(p) {
				return
			}
			slog.DebugContext(ctx, "profile refreshed from store",
				"user_id", sess.userID,
				"revision", p.Revision,
				"level", p.Character.Level)
		},
	})
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.subscription = out.Subscription
	sess.mu.Unlock()
	return nil
}

// Unload flushes a session and forgets it
func (s *service) Unload(ctx context.Context, input *UnloadInput) (*UnloadOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	if err := s.flushSession(ctx, sess); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sub := sess.subscription
	sess.subscription = nil
	sess.mu.Unlock()
	if sub != nil {
		if err := sub.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close profile subscription",
				"user_id", sess.userID,
				"error", err.Error())
		}
	}

	s.mu.Lock()
	delete(s.sessions, sess.userID)
	s.mu.Unlock()
	return &UnloadOutput{}, nil
}

// State returns a copy of the session
func (s *service) State(_ context.Context, input *StateInput) (*StateOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}
	return &StateOutput{Snapshot: sess.Snapshot()}, nil
}

func (s *service) lookup(userID string) *GameSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// userInput is satisfied by every action input
type userInput interface {
	user() string
}

func (s *service) session(input userInput) (*GameSession, error) {
	if input == nil || input.user() == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	sess := s.lookup(input.user())
	if sess == nil {
		return nil, errors.FailedPreconditionf("session for user %s is not loaded", input.user())
	}
	return sess, nil
}

// requestFlush wakes the background flusher without blocking
func (s *service) requestFlush() {
	select {
	case s.flushRequests <- struct{}{}:
	default:
	}
}

func (s *service) publish(ctx context.Context, eventType string, ch *entities.Character) {
	if err := s.eventBus.Publish(ctx, events.NewGameEvent(eventType, ch, nil)); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event", eventType,
			"error", err.Error())
	}
}
