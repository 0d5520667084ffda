package game

import (
	"sync"

	"github.com/KirkDiggler/questlog-api/internal/combat"
	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/repositories/profile"
)

// GameSession is the in-memory state for one user. The character it holds is
// the single source of truth; stores are written behind it.
type GameSession struct {
	mu sync.Mutex

	userID    string
	profile   *entities.Profile
	quests    []*entities.Quest
	inventory []*entities.Item
	combat    *combat.State

	profileDirty   bool
	inventoryDirty bool
	dirtyQuests    map[string]struct{}
	deletedQuests  map[string]struct{}
	version        uint64
	// stored is the newest profile revision this session has read or written
	stored int64

	subscription profile.Subscription
}

// Snapshot is a deep copy of a session safe to hand to callers
type Snapshot struct {
	Profile   *entities.Profile
	Quests    []*entities.Quest
	Inventory []*entities.Item
	Combat    *combat.State
	Dirty     bool
	Version   uint64
}

func newSession(userID string, p *entities.Profile, quests []*entities.Quest, items []*entities.Item) *GameSession {
	return &GameSession{
		userID:        userID,
		profile:       p,
		quests:        quests,
		inventory:     items,
		stored:        p.Revision,
		dirtyQuests:   make(map[string]struct{}),
		deletedQuests: make(map[string]struct{}),
	}
}

// UserID returns the owner of the session
func (s *GameSession) UserID() string {
	return s.userID
}

// Dirty reports whether anything is waiting to be written
func (s *GameSession) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty()
}

// Version counts mutations since the session was loaded
func (s *GameSession) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Snapshot copies the session state
func (s *GameSession) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *GameSession) snapshot() *Snapshot {
	snap := &Snapshot{
		Profile:   cloneProfile(s.profile),
		Quests:    cloneQuests(s.quests),
		Inventory: cloneItems(s.inventory),
		Dirty:     s.dirty(),
		Version:   s.version,
	}
	if s.combat != nil {
		snap.Combat = s.combat.Clone()
	}
	return snap
}

func (s *GameSession) dirty() bool {
	return s.profileDirty || s.inventoryDirty || len(s.dirtyQuests) > 0 || len(s.deletedQuests) > 0
}

func (s *GameSession) character() *entities.Character {
	return s.profile.Character
}

func (s *GameSession) markProfile() {
	s.profileDirty = true
	s.version++
}

func (s *GameSession) markInventory() {
	s.inventoryDirty = true
	s.version++
}

func (s *GameSession) markQuest(id string) {
	s.dirtyQuests[id] = struct{}{}
	delete(s.deletedQuests, id)
	s.version++
}

func (s *GameSession) markQuestDeleted(id string) {
	s.deletedQuests[id] = struct{}{}
	delete(s.dirtyQuests, id)
	s.version++
}

func (s *GameSession) quest(id string) (int, *entities.Quest) {
	for i, q := range s.quests {
		if q.ID == id {
			return i, q
		}
	}
	return -1, nil
}

func (s *GameSession) item(id string) (int, *entities.Item) {
	for i, it := range s.inventory {
		if it.ID == id {
			return i, it
		}
	}
	return -1, nil
}

// addItem stacks onto an existing entry with the same ID
func (s *GameSession) addItem(item entities.Item) {
	if _, existing := s.item(item.ID); existing != nil {
		existing.Quantity = existing.Count() + item.Count()
		return
	}
	s.inventory = append(s.inventory, cloneItem(&item))
}

// removeItem takes one from the stack and drops the entry when it runs out
func (s *GameSession) removeItem(id string) {
	i, existing := s.item(id)
	if existing == nil {
		return
	}
	if existing.Count() > 1 {
		existing.Quantity = existing.Count() - 1
		return
	}
	s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
}

// pending is what a flush has to write, captured under the lock
type pending struct {
	version   uint64
	profile   *entities.Profile
	inventory []*entities.Item
	quests    []*entities.Quest
	deleted   []string
}

func (s *GameSession) pending() *pending {
	p := &pending{version: s.version}
	if s.profileDirty {
		p.profile = cloneProfile(s.profile)
	}
	if s.inventoryDirty {
		p.inventory = cloneItems(s.inventory)
	}
	for _, q := range s.quests {
		if _, ok := s.dirtyQuests[q.ID]; ok {
			p.quests = append(p.quests, cloneQuest(q))
		}
	}
	for id := range s.deletedQuests {
		p.deleted = append(p.deleted, id)
	}
	return p
}

// markClean clears the dirty flags when nothing changed while the write was
// in flight. Otherwise the next flush writes everything again.
func (s *GameSession) markClean(p *pending) bool {
	if s.version != p.version {
		return false
	}
	s.profileDirty = false
	s.inventoryDirty = false
	clear(s.dirtyQuests)
	clear(s.deletedQuests)
	return true
}

// adopt replaces the profile with one written elsewhere. It refuses while
// local changes are pending or a fight is running, and refuses revisions that
// are not newer than what the session already holds, such as late echoes of
// its own flushes.
func (s *GameSession) adopt(p *entities.Profile) bool {
	if p == nil || p.Character == nil {
		return false
	}
	if s.dirty() || s.combat != nil {
		return false
	}
	if p.Revision <= s.stored {
		return false
	}
	s.profile = p
	s.stored = p.Revision
	return true
}

// recordStored notes a revision written by a flush
func (s *GameSession) recordStored(rev int64) {
	if rev > s.stored {
		s.stored = rev
		s.profile.Revision = rev
	}
}

func cloneProfile(p *entities.Profile) *entities.Profile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Character = p.Character.Clone()
	return &cp
}

func cloneQuest(q *entities.Quest) *entities.Quest {
	cp := *q
	if q.Rewards.Items != nil {
		cp.Rewards.Items = append([]entities.Item(nil), q.Rewards.Items...)
	}
	return &cp
}

func cloneQuests(quests []*entities.Quest) []*entities.Quest {
	out := make([]*entities.Quest, 0, len(quests))
	for _, q := range quests {
		out = append(out, cloneQuest(q))
	}
	return out
}

func cloneItem(it *entities.Item) *entities.Item {
	cp := *it
	if it.Stats != nil {
		st := *it.Stats
		cp.Stats = &st
	}
	return &cp
}

func cloneItems(items []*entities.Item) []*entities.Item {
	out := make([]*entities.Item, 0, len(items))
	for _, it := range items {
		out = append(out, cloneItem(it))
	}
	return out
}
