package mazes

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/maze-api/internal/redis"
)

const (
	// Key pattern: maze:{id}
	keyPrefix = "maze:"
	// indexKey is a set of every stored maze ID
	indexKey = "maze:index"

	errRecordNil = "record cannot be nil"
	errIDEmpty   = "maze ID cannot be empty"
)

// Config holds the dependencies of the redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a redis backed layout store
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	record := cloneRecord(input.Record)
	now := r.clock.Now()
	record.CreatedAt = now
	record.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal maze %s", record.ID)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, buildKey(record.ID), data, ttl)
		pipe.SAdd(ctx, indexKey, record.ID)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store maze %s", record.ID)
	}

	return &SaveOutput{Record: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("maze %s not found", input.ID).WithMeta("maze_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get maze %s", input.ID)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal maze %s", input.ID)
	}

	if r.clock.Now().After(record.ExpiresAt) {
		_ = r.client.Del(ctx, buildKey(input.ID))
		_ = r.client.SRem(ctx, indexKey, input.ID)
		return nil, errors.NotFoundf("maze %s has expired", input.ID).WithMeta("maze_id", input.ID)
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, buildKey(input.ID))
		pipe.SRem(ctx, indexKey, input.ID)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete maze %s", input.ID)
	}

	return &DeleteOutput{Deleted: del.Val() > 0}, nil
}

// List drops index entries whose record has expired
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read maze index")
	}

	live := make([]string, 0, len(ids))
	for _, id := range ids {
		n, err := r.client.Exists(ctx, buildKey(id)).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check maze %s", id)
		}
		if n == 0 {
			_ = r.client.SRem(ctx, indexKey, id)
			continue
		}
		live = append(live, id)
	}
	sort.Strings(live)

	return &ListOutput{IDs: live}, nil
}

func buildKey(id string) string {
	return keyPrefix + id
}
