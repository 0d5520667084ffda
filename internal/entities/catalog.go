package entities

import "time"

// Monster is a read-only combat opponent from the catalog
type Monster struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"image_url,omitempty"`
	HP         int       `json:"hp"`
	Attack     int       `json:"attack"`
	Defense    int       `json:"defense"`
	ExpReward  int       `json:"exp_reward"`
	GoldReward int       `json:"gold_reward"`
	CreatedAt  time.Time `json:"created_at"`
}

// Skill is a combat ability. An empty RequiredClass means any class may use it.
type Skill struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Damage        int       `json:"damage"`
	ManaCost      int       `json:"mana_cost"`
	RequiredClass Class     `json:"required_class,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// UnlockedSkill records a skill granted to a user
type UnlockedSkill struct {
	UserID     string    `json:"user_id"`
	SkillID    string    `json:"skill_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
	Skill      *Skill    `json:"skill,omitempty"`
}
