package catalog

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/pkg/clock"
	"github.com/KirkDiggler/questlog-api/internal/pkg/rng"
)

const (
	monsterColumns = `id, name, image_url, hp, attack, defense, exp_reward, gold_reward, created_at`
	skillColumns   = `id, name, description, damage, mana_cost, required_class, created_at`

	errUserIDEmpty  = "user ID cannot be empty"
	errSkillIDEmpty = "skill ID cannot be empty"
)

type sqlRepository struct {
	db      *sql.DB
	dialect Dialect
	clock   clock.Clock
}

// SQLConfig contains configuration for the SQL catalog repository
type SQLConfig struct {
	DB      *sql.DB
	Dialect Dialect
	Clock   clock.Clock
}

// Validate validates the SQLConfig
func (cfg *SQLConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.DB == nil {
		vb.RequiredField("DB")
	}
	switch cfg.Dialect {
	case DialectSQLite, DialectPostgres:
	default:
		vb.Fieldf("Dialect", "unsupported dialect %q", cfg.Dialect)
	}
	return vb.Build()
}

// NewSQL creates a catalog repository over an already migrated database
func NewSQL(cfg *SQLConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqlRepository{
		db:      cfg.DB,
		dialect: cfg.Dialect,
		clock:   c,
	}, nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func (r *sqlRepository) q(query string) string {
	return rebind(r.dialect, query)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMonster(row rowScanner) (*entities.Monster, error) {
	var (
		m       entities.Monster
		created int64
	)
	if err := row.Scan(&m.ID, &m.Name, &m.ImageURL, &m.HP, &m.Attack, &m.Defense,
		&m.ExpReward, &m.GoldReward, &created); err != nil {
		return nil, err
	}
	m.CreatedAt = fromMillis(created)
	return &m, nil
}

func scanSkill(row rowScanner) (*entities.Skill, error) {
	var (
		s       entities.Skill
		class   string
		created int64
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Damage, &s.ManaCost, &class, &created); err != nil {
		return nil, err
	}
	s.RequiredClass = entities.Class(class)
	s.CreatedAt = fromMillis(created)
	return &s, nil
}

func (r *sqlRepository) queryMonsters(ctx context.Context, query string, args ...any) ([]*entities.Monster, error) {
	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query monsters")
	}
	defer func() { _ = rows.Close() }()

	monsters := make([]*entities.Monster, 0)
	for rows.Next() {
		m, err := scanMonster(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan monster")
		}
		monsters = append(monsters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read monsters")
	}
	return monsters, nil
}

func (r *sqlRepository) querySkills(ctx context.Context, query string, args ...any) ([]*entities.Skill, error) {
	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query skills")
	}
	defer func() { _ = rows.Close() }()

	skills := make([]*entities.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan skill")
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read skills")
	}
	return skills, nil
}

func (r *sqlRepository) ListMonsters(ctx context.Context, _ *ListMonstersInput) (*ListMonstersOutput, error) {
	monsters, err := r.queryMonsters(ctx, `SELECT `+monsterColumns+` FROM monsters ORDER BY hp ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return &ListMonstersOutput{Monsters: monsters}, nil
}

func (r *sqlRepository) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, r.q(`SELECT `+monsterColumns+` FROM monsters WHERE id = ?`), input.ID)
	m, err := scanMonster(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get monster")
	}
	return &GetMonsterOutput{Monster: m}, nil
}

func (r *sqlRepository) RandomMonster(ctx context.Context, input *RandomMonsterInput) (*RandomMonsterOutput, error) {
	var roller dice.Roller = dice.DefaultRoller
	if input != nil && input.Roller != nil {
		roller = input.Roller
	}

	monsters, err := r.queryMonsters(ctx, `SELECT `+monsterColumns+` FROM monsters ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.NotFound("no monsters available in the catalog")
	}

	idx, err := rng.Pick(roller, len(monsters))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick monster")
	}
	return &RandomMonsterOutput{Monster: monsters[idx]}, nil
}

func (r *sqlRepository) ListSkills(ctx context.Context, _ *ListSkillsInput) (*ListSkillsOutput, error) {
	skills, err := r.querySkills(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY mana_cost ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return &ListSkillsOutput{Skills: skills}, nil
}

func (r *sqlRepository) ListSkillsByClass(ctx context.Context, input *ListSkillsByClassInput) (*ListSkillsByClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	skills, err := r.querySkills(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE required_class = ? ORDER BY mana_cost ASC, id ASC`,
		string(input.Class))
	if err != nil {
		return nil, err
	}
	return &ListSkillsByClassOutput{Skills: skills}, nil
}

func (r *sqlRepository) GetSkill(ctx context.Context, input *GetSkillInput) (*GetSkillOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errSkillIDEmpty)
	}

	row := r.db.QueryRowContext(ctx, r.q(`SELECT `+skillColumns+` FROM skills WHERE id = ?`), input.ID)
	s, err := scanSkill(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("skill with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get skill")
	}
	return &GetSkillOutput{Skill: s}, nil
}

func (r *sqlRepository) ListUnlockedSkills(ctx context.Context, input *ListUnlockedSkillsInput) (*ListUnlockedSkillsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	skills, err := r.querySkills(ctx,
		`SELECT s.id, s.name, s.description, s.damage, s.mana_cost, s.required_class, s.created_at
		 FROM unlocked_skills u
		 JOIN skills s ON s.id = u.skill_id
		 WHERE u.user_id = ?
		 ORDER BY u.unlocked_at ASC, s.id ASC`,
		input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListUnlockedSkillsOutput{Skills: skills}, nil
}

func (r *sqlRepository) IsSkillUnlocked(ctx context.Context, input *IsSkillUnlockedInput) (*IsSkillUnlockedOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.SkillID == "" {
		return nil, errors.InvalidArgument(errSkillIDEmpty)
	}

	var found int
	err := r.db.QueryRowContext(ctx,
		r.q(`SELECT 1 FROM unlocked_skills WHERE user_id = ? AND skill_id = ?`),
		input.UserID, input.SkillID,
	).Scan(&found)
	if stderrors.Is(err, sql.ErrNoRows) {
		return &IsSkillUnlockedOutput{Unlocked: false}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to check skill unlock")
	}
	return &IsSkillUnlockedOutput{Unlocked: true}, nil
}

func (r *sqlRepository) UnlockSkill(ctx context.Context, input *UnlockSkillInput) (*UnlockSkillOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	skill, err := r.GetSkill(ctx, &GetSkillInput{ID: input.SkillID})
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	_, err = r.db.ExecContext(ctx,
		r.q(`INSERT INTO unlocked_skills (user_id, skill_id, unlocked_at) VALUES (?, ?, ?)`),
		input.UserID, input.SkillID, toMillis(now))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("skill %s already unlocked for user %s", input.SkillID, input.UserID)
		}
		return nil, errors.Wrap(err, "failed to unlock skill")
	}

	slog.InfoContext(ctx, "skill unlocked",
		"user_id", input.UserID,
		"skill_id", input.SkillID)

	return &UnlockSkillOutput{
		Unlocked: &entities.UnlockedSkill{
			UserID:     input.UserID,
			SkillID:    input.SkillID,
			UnlockedAt: now,
			Skill:      skill.Skill,
		},
	}, nil
}

func (r *sqlRepository) Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin seed")
	}
	defer func() { _ = tx.Rollback() }()

	now := toMillis(r.clock.Now())
	out := &SeedOutput{}

	monsterStmt := r.q(`INSERT INTO monsters (` + monsterColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`)
	for _, m := range input.Monsters {
		if m == nil || m.ID == "" {
			return nil, errors.InvalidArgument("seed monster requires an ID")
		}
		created := now
		if !m.CreatedAt.IsZero() {
			created = toMillis(m.CreatedAt)
		}
		res, err := tx.ExecContext(ctx, monsterStmt,
			m.ID, m.Name, m.ImageURL, m.HP, m.Attack, m.Defense, m.ExpReward, m.GoldReward, created)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed monster %s", m.ID)
		}
		if n, err := res.RowsAffected(); err == nil {
			out.MonstersAdded += int(n)
		}
	}

	skillStmt := r.q(`INSERT INTO skills (` + skillColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`)
	for _, s := range input.Skills {
		if s == nil || s.ID == "" {
			return nil, errors.InvalidArgument("seed skill requires an ID")
		}
		created := now
		if !s.CreatedAt.IsZero() {
			created = toMillis(s.CreatedAt)
		}
		res, err := tx.ExecContext(ctx, skillStmt,
			s.ID, s.Name, s.Description, s.Damage, s.ManaCost, string(s.RequiredClass), created)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed skill %s", s.ID)
		}
		if n, err := res.RowsAffected(); err == nil {
			out.SkillsAdded += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit seed")
	}

	slog.InfoContext(ctx, "catalog seeded",
		"monsters_added", out.MonstersAdded,
		"skills_added", out.SkillsAdded)

	return out, nil
}
