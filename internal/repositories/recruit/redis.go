package recruit

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/errors"
	"github.com/dreamshade/recruit-api/internal/pkg/clock"
	redisclient "github.com/dreamshade/recruit-api/internal/redis"
)

const (
	recruitKeyPrefix  = "recruit:"
	playerIndexPrefix = "recruit:player:"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis recruit repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a Redis-backed recruit repository. Recruits are stored as
// JSON under recruit:<id> and indexed per player in a set.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecruit(input.Recruit); err != nil {
		return nil, err
	}

	key := recruitKeyPrefix + input.Recruit.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("recruit with ID %s already exists", input.Recruit.ID)
	}

	rec := *input.Recruit
	now := r.clock.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	data, err := json.Marshal(&rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal recruit")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playerIndexPrefix+rec.PlayerID, rec.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create recruit")
	}

	slog.DebugContext(ctx, "recruit stored",
		"recruit_id", rec.ID,
		"player_id", rec.PlayerID)

	return &CreateOutput{Recruit: &rec}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecruitIDEmpty)
	}

	result, err := r.client.Get(ctx, recruitKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(errRecruitNotFound, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get recruit")
	}

	var rec entities.Recruit
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal recruit")
	}

	return &GetOutput{Recruit: &rec}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecruit(input.Recruit); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Recruit.ID})
	if err != nil {
		return nil, err
	}

	rec := *input.Recruit
	rec.CreatedAt = existing.Recruit.CreatedAt
	rec.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal recruit")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recruitKeyPrefix+rec.ID, data, 0)

	// a recruit can be traded to another player
	if existing.Recruit.PlayerID != rec.PlayerID {
		pipe.SRem(ctx, playerIndexPrefix+existing.Recruit.PlayerID, rec.ID)
		pipe.SAdd(ctx, playerIndexPrefix+rec.PlayerID, rec.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update recruit")
	}

	return &UpdateOutput{Recruit: &rec}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecruitIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, recruitKeyPrefix+input.ID)
	pipe.SRem(ctx, playerIndexPrefix+getOutput.Recruit.PlayerID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete recruit")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get recruits from index %s", indexKey)
	}

	recruits := make([]*entities.Recruit, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "recruit not found, cleaning up index",
					"recruit_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		recruits = append(recruits, getOutput.Recruit)
	}

	sortRoster(recruits)

	slog.DebugContext(ctx, "listed recruits by player",
		"player_id", input.PlayerID,
		"count", len(recruits))

	return &ListByPlayerIDOutput{Recruits: recruits}, nil
}
