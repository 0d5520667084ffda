package quests

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	redisclient "github.com/KirkDiggler/questlog-api/internal/redis"
)

const (
	questKeyPrefix  = "quest:"
	userIndexPrefix = "quests:user:"

	errQuestNil     = "quest cannot be nil"
	errQuestIDEmpty = "quest ID cannot be empty"
	errUserIDEmpty  = "user ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis quest repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed quest repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Quests are keyed under their owner so IDs only need to be unique per user
func questKey(userID, questID string) string {
	return questKeyPrefix + userID + ":" + questID
}

func validateWrite(userID string, quest *entities.Quest) error {
	if userID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}
	if quest == nil {
		return errors.InvalidArgument(errQuestNil)
	}
	if quest.ID == "" {
		return errors.InvalidArgument(errQuestIDEmpty)
	}
	if err := quest.Validate(); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid quest")
	}
	return nil
}

func (r *redisRepository) write(ctx context.Context, userID string, quest *entities.Quest) error {
	data, err := json.Marshal(quest)
	if err != nil {
		return errors.Wrap(err, "failed to marshal quest")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, questKey(userID, quest.ID), data, 0)
	pipe.ZAdd(ctx, userIndexPrefix+userID, redis.Z{
		Score:  float64(quest.CreatedAt.UnixMilli()),
		Member: quest.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to write quest")
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errQuestNil)
	}
	if err := validateWrite(input.UserID, input.Quest); err != nil {
		return nil, err
	}

	exists, err := r.client.Exists(ctx, questKey(input.UserID, input.Quest.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("quest with ID %s already exists", input.Quest.ID)
	}

	if err := r.write(ctx, input.UserID, input.Quest); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "quest created",
		"user_id", input.UserID,
		"quest_id", input.Quest.ID,
		"type", input.Quest.Type)

	return &CreateOutput{Quest: input.Quest}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	result, err := r.client.Get(ctx, questKey(input.UserID, input.QuestID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("quest with ID %s not found", input.QuestID)
		}
		return nil, errors.Wrap(err, "failed to get quest")
	}

	var q entities.Quest
	if err := json.Unmarshal([]byte(result), &q); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal quest")
	}

	return &GetOutput{Quest: &q}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errQuestNil)
	}
	if err := validateWrite(input.UserID, input.Quest); err != nil {
		return nil, err
	}

	if err := r.write(ctx, input.UserID, input.Quest); err != nil {
		return nil, err
	}

	return &SaveOutput{Quest: input.Quest}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, questKey(input.UserID, input.QuestID))
	pipe.ZRem(ctx, userIndexPrefix+input.UserID, input.QuestID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete quest")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("quest with ID %s not found", input.QuestID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByUser(ctx context.Context, input *ListByUserInput) (*ListByUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	ids, err := r.client.ZRange(ctx, userIndexPrefix+input.UserID, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quest IDs")
	}
	if len(ids) == 0 {
		return &ListByUserOutput{Quests: []*entities.Quest{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = questKey(input.UserID, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get quests")
	}

	out := make([]*entities.Quest, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// Index entry without a document; skip it
			slog.WarnContext(ctx, "quest index points at missing quest",
				"user_id", input.UserID,
				"quest_id", ids[i])
			continue
		}
		var q entities.Quest
		if err := json.Unmarshal([]byte(s), &q); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal quest %s", ids[i])
		}
		out = append(out, &q)
	}

	return &ListByUserOutput{Quests: out}, nil
}
