package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	redisclient "github.com/KirkDiggler/questlog-api/internal/redis"
)

const (
	profileKeyPrefix     = "profile:"
	profileChannelPrefix = "profile:events:"
	revisionKeyPrefix    = "profile_revision:"

	errProfileNil   = "profile cannot be nil"
	errUserIDEmpty  = "user ID cannot be empty"
	errHandlerEmpty = "handler cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis profile repository
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

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

// ChannelFor returns the pub/sub channel carrying a user's profile updates
func ChannelFor(userID string) string {
	return profileChannelPrefix + userID
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	result, err := r.client.Get(ctx, profileKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile for user %s not found", input.UserID)
		}
		return nil, errors.Wrap(err, "failed to get profile")
	}

	var p entities.Profile
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal profile")
	}

	return &GetOutput{Profile: &p}, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	p := input.Profile
	if p.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if p.Character != nil {
		if err := p.Character.Validate(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character")
		}
	}

	// The counter outlives Delete so a recreated profile keeps counting up
	rev, err := r.client.Incr(ctx, revisionKeyPrefix+p.UserID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign profile revision")
	}
	stored := *p
	stored.Revision = rev

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal profile")
	}

	if err := r.client.Set(ctx, profileKeyPrefix+p.UserID, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to put profile")
	}

	// Subscribers are best effort; the write already succeeded
	if err := r.client.Publish(ctx, ChannelFor(p.UserID), data).Err(); err != nil {
		slog.WarnContext(ctx, "failed to publish profile update",
			"user_id", p.UserID,
			"revision", rev,
			"error", err)
	}

	return &PutOutput{Profile: &stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	n, err := r.client.Del(ctx, profileKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete profile")
	}
	if n == 0 {
		return nil, errors.NotFoundf("profile for user %s not found", input.UserID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.Handler == nil {
		return nil, errors.InvalidArgument(errHandlerEmpty)
	}

	pubsub := r.client.Subscribe(ctx, ChannelFor(input.UserID))
	// Wait for the subscription confirmation so no publish is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.Wrap(err, "failed to subscribe to profile updates")
	}

	sub := &subscription{pubsub: pubsub}
	go sub.run(ctx, input.UserID, input.Handler)

	return &SubscribeOutput{Subscription: sub}, nil
}

type subscription struct {
	pubsub *redis.PubSub
	once   sync.Once
}

func (s *subscription) run(ctx context.Context, userID string, handler Handler) {
	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			_ = s.Close()
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var p entities.Profile
			if err := json.Unmarshal([]byte(msg.Payload), &p); err != nil {
				slog.WarnContext(ctx, "dropping malformed profile update",
					"user_id", userID,
					"error", err)
				continue
			}
			handler(ctx, &p)
		}
	}
}

// Close stops delivery. It is safe to call more than once.
func (s *subscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.pubsub.Close()
	})
	return err
}
