package inventory

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	redisclient "github.com/KirkDiggler/questlog-api/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:"

	errUserIDEmpty = "user ID cannot be empty"
	errItemIDEmpty = "item ID cannot be empty"
	errItemNil     = "item cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository
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

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func inventoryKey(userID string) string {
	return inventoryKeyPrefix + userID
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, inventoryKey(input.UserID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	items := make([]*entities.Item, 0, len(fields))
	for id, raw := range fields {
		var item entities.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item %s", id)
		}
		items = append(items, &item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	raw, err := r.client.HGet(ctx, inventoryKey(input.UserID), input.ItemID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s not found", input.ItemID)
		}
		return nil, errors.Wrap(err, "failed to get item")
	}

	var item entities.Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal item")
	}

	return &GetOutput{Item: &item}, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal item")
	}

	if err := r.client.HSet(ctx, inventoryKey(input.UserID), input.Item.ID, data).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to put item")
	}

	return &PutOutput{Item: input.Item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	n, err := r.client.HDel(ctx, inventoryKey(input.UserID), input.ItemID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete item")
	}
	if n == 0 {
		return nil, errors.NotFoundf("item %s not found", input.ItemID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Replace(ctx context.Context, input *ReplaceInput) (*ReplaceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	values := make([]any, 0, len(input.Items)*2)
	for _, item := range input.Items {
		if item == nil || item.ID == "" {
			return nil, errors.InvalidArgument(errItemIDEmpty)
		}
		data, err := json.Marshal(item)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal item %s", item.ID)
		}
		values = append(values, item.ID, string(data))
	}

	key := inventoryKey(input.UserID)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(values) > 0 {
		pipe.HSet(ctx, key, values...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to replace inventory")
	}

	return &ReplaceOutput{}, nil
}
