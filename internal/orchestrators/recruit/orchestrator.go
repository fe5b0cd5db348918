// Package recruit implements the recruit orchestrator. It rolls recruits from
// catalog profiles and manages the rosters they are stored on.
package recruit

//go:generate mockgen -destination=mock/mock_service.go -package=recruitmock github.com/dreamshade/recruit-api/internal/orchestrators/recruit Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dreamshade/recruit-api/internal/config"
	"github.com/dreamshade/recruit-api/internal/engine"
	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/errors"
	"github.com/dreamshade/recruit-api/internal/pkg/clock"
	"github.com/dreamshade/recruit-api/internal/pkg/idgen"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
	recruitrepo "github.com/dreamshade/recruit-api/internal/repositories/recruit"
)

// Service defines the interface for recruit operations
type Service interface {
	GenerateRecruit(ctx context.Context, input *GenerateRecruitInput) (*GenerateRecruitOutput, error)
	GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchOutput, error)

	GetRecruit(ctx context.Context, input *GetRecruitInput) (*GetRecruitOutput, error)
	ListRecruits(ctx context.Context, input *ListRecruitsInput) (*ListRecruitsOutput, error)
	DeleteRecruit(ctx context.Context, input *DeleteRecruitInput) (*DeleteRecruitOutput, error)

	// GetRecruitStats evaluates every stat at the recruit's current level
	GetRecruitStats(ctx context.Context, input *GetRecruitStatsInput) (*GetRecruitStatsOutput, error)
	SetRank(ctx context.Context, input *SetRankInput) (*SetRankOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error)
}

// Config holds the dependencies for the recruit orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  recruitrepo.Repository
	Catalog     *config.Catalog
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine  engine.Engine
	repo    recruitrepo.Repository
	catalog *config.Catalog
	idGen   idgen.Generator
	clock   clock.Clock
}

// NewOrchestrator creates a new recruit orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		engine:  cfg.Engine,
		repo:    cfg.Repository,
		catalog: cfg.Catalog,
		idGen:   cfg.IDGenerator,
		clock:   c,
	}, nil
}

// resolvedProfile is a catalog profile after normalization
type resolvedProfile struct {
	name        string
	generation  stats.GenerationConfig
	calibration stats.CalibrationTable
}

func (o *orchestrator) resolveProfile(ctx context.Context, name string) (*resolvedProfile, error) {
	p, err := o.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}

	gen, genNotes := p.Generation.Normalize()
	cal, calNotes := p.Calibration.Normalize()
	for _, note := range append(genNotes, calNotes...) {
		slog.WarnContext(ctx, "profile value adjusted",
			"profile", p.Name,
			"adjustment", note)
	}

	return &resolvedProfile{name: p.Name, generation: gen, calibration: cal}, nil
}

// profileFor resolves the profile a stored recruit was rolled from. Profiles
// can disappear from the catalog between deployments, in which case the
// default profile is used.
func (o *orchestrator) profileFor(ctx context.Context, rec *entities.Recruit) (*resolvedProfile, error) {
	p, err := o.resolveProfile(ctx, rec.Profile)
	if err == nil {
		return p, nil
	}
	if !errors.IsConfigurationMissing(err) {
		return nil, err
	}

	slog.WarnContext(ctx, "recruit profile no longer in catalog, using default",
		"recruit_id", rec.ID,
		"profile", rec.Profile)
	return o.resolveProfile(ctx, config.DefaultProfile)
}

func (o *orchestrator) GenerateRecruit(
	ctx context.Context,
	input *GenerateRecruitInput,
) (*GenerateRecruitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Persist && input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required to persist a recruit")
	}

	profile, err := o.resolveProfile(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	return o.generate(ctx, profile, input)
}

func (o *orchestrator) generate(
	ctx context.Context,
	profile *resolvedProfile,
	input *GenerateRecruitInput,
) (*GenerateRecruitOutput, error) {
	eng := o.engine
	if input.Seed != nil {
		eng = eng.WithSource(rng.NewSeeded(*input.Seed))
	}

	rolled, err := eng.GenerateCharacter(&profile.generation, &profile.calibration)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate recruit")
	}

	set := profile.generation.Stats
	ranks := rolled.Ranks.ClampForPersistence(profile.calibration.MaxRank)
	level := profile.calibration.ClampLevel(rolled.Level)

	rec := entities.NewRecruit(input.Name, input.Job, level, ranks, set)
	rec.ID = o.idGen.Generate()
	rec.PlayerID = input.PlayerID
	rec.Profile = profile.name
	rec.CreatedAt = o.clock.Now()
	rec.UpdatedAt = rec.CreatedAt
	if input.Seed != nil {
		seed := *input.Seed
		rec.Seed = &seed
	}

	if input.Persist {
		created, err := o.repo.Create(ctx, recruitrepo.CreateInput{Recruit: rec})
		if err != nil {
			return nil, errors.Wrap(err, "failed to store recruit")
		}
		rec = created.Recruit
	}

	values, err := o.evaluate(rec, profile)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "recruit generated",
		"recruit_id", rec.ID,
		"player_id", rec.PlayerID,
		"profile", profile.name,
		"total_points", rolled.TotalPoints,
		"persisted", input.Persist)

	return &GenerateRecruitOutput{
		Recruit:     rec,
		TotalPoints: rolled.TotalPoints,
		Stats:       values,
	}, nil
}

func (o *orchestrator) GenerateBatch(
	ctx context.Context,
	input *GenerateBatchInput,
) (*GenerateBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Count < 1 || input.Count > MaxBatchSize {
		return nil, errors.InvalidArgumentf("count must be between 1 and %d", MaxBatchSize)
	}
	if input.Persist && input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required to persist recruits")
	}

	profile, err := o.resolveProfile(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	results := make([]*GenerateRecruitOutput, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		one := &GenerateRecruitInput{
			PlayerID: input.PlayerID,
			Name:     batchName(input.Name, i, input.Count),
			Job:      input.Job,
			Persist:  input.Persist,
		}
		if input.Seed != nil {
			seed := *input.Seed + uint64(i)
			one.Seed = &seed
		}

		out, err := o.generate(ctx, profile, one)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate recruit %d of %d", i+1, input.Count)
		}
		results = append(results, out)
	}

	return &GenerateBatchOutput{Results: results}, nil
}

func batchName(name string, i, count int) string {
	name = entities.NormalizeName(name)
	if count == 1 {
		return name
	}
	return fmt.Sprintf("%s %d", name, i+1)
}

func (o *orchestrator) GetRecruit(ctx context.Context, input *GetRecruitInput) (*GetRecruitOutput, error) {
	if input == nil || input.RecruitID == "" {
		return nil, errors.InvalidArgument("recruit ID is required")
	}

	out, err := o.repo.Get(ctx, recruitrepo.GetInput{ID: input.RecruitID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get recruit %s", input.RecruitID)
	}

	return &GetRecruitOutput{Recruit: out.Recruit}, nil
}

func (o *orchestrator) ListRecruits(ctx context.Context, input *ListRecruitsInput) (*ListRecruitsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.repo.ListByPlayerID(ctx, recruitrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list recruits for player %s", input.PlayerID)
	}

	return &ListRecruitsOutput{Recruits: out.Recruits}, nil
}

func (o *orchestrator) DeleteRecruit(ctx context.Context, input *DeleteRecruitInput) (*DeleteRecruitOutput, error) {
	if input == nil || input.RecruitID == "" {
		return nil, errors.InvalidArgument("recruit ID is required")
	}

	if _, err := o.repo.Delete(ctx, recruitrepo.DeleteInput{ID: input.RecruitID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete recruit %s", input.RecruitID)
	}

	slog.InfoContext(ctx, "recruit deleted", "recruit_id", input.RecruitID)

	return &DeleteRecruitOutput{}, nil
}

func (o *orchestrator) GetRecruitStats(
	ctx context.Context,
	input *GetRecruitStatsInput,
) (*GetRecruitStatsOutput, error) {
	if input == nil || input.RecruitID == "" {
		return nil, errors.InvalidArgument("recruit ID is required")
	}

	got, err := o.GetRecruit(ctx, &GetRecruitInput{RecruitID: input.RecruitID})
	if err != nil {
		return nil, err
	}

	profile, err := o.profileFor(ctx, got.Recruit)
	if err != nil {
		return nil, err
	}

	values, err := o.evaluate(got.Recruit, profile)
	if err != nil {
		return nil, err
	}

	return &GetRecruitStatsOutput{Recruit: got.Recruit, Stats: values}, nil
}

func (o *orchestrator) SetRank(ctx context.Context, input *SetRankInput) (*SetRankOutput, error) {
	if input == nil || input.RecruitID == "" {
		return nil, errors.InvalidArgument("recruit ID is required")
	}
	stat := stats.StatType(strings.ToUpper(strings.TrimSpace(input.Stat)))
	if stat == "" {
		return nil, errors.InvalidArgument("stat is required")
	}

	got, err := o.GetRecruit(ctx, &GetRecruitInput{RecruitID: input.RecruitID})
	if err != nil {
		return nil, err
	}
	rec := got.Recruit

	profile, err := o.profileFor(ctx, rec)
	if err != nil {
		return nil, err
	}
	if !profile.generation.Stats.Contains(stat) {
		return nil, errors.InvalidArgumentf("unknown stat %s", stat)
	}

	rank := profile.calibration.ClampRank(input.Rank)
	if rank != input.Rank {
		slog.DebugContext(ctx, "rank clamped",
			"recruit_id", rec.ID,
			"requested", input.Rank,
			"rank", rank)
	}
	rec.SetRank(stat, rank)

	updated, err := o.repo.Update(ctx, recruitrepo.UpdateInput{Recruit: rec})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update recruit %s", rec.ID)
	}

	values, err := o.evaluate(updated.Recruit, profile)
	if err != nil {
		return nil, err
	}

	return &SetRankOutput{Recruit: updated.Recruit, Stats: values}, nil
}

func (o *orchestrator) SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error) {
	if input == nil || input.RecruitID == "" {
		return nil, errors.InvalidArgument("recruit ID is required")
	}

	got, err := o.GetRecruit(ctx, &GetRecruitInput{RecruitID: input.RecruitID})
	if err != nil {
		return nil, err
	}
	rec := got.Recruit

	profile, err := o.profileFor(ctx, rec)
	if err != nil {
		return nil, err
	}

	rec.Level = profile.calibration.ClampLevel(input.Level)

	updated, err := o.repo.Update(ctx, recruitrepo.UpdateInput{Recruit: rec})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update recruit %s", rec.ID)
	}

	values, err := o.evaluate(updated.Recruit, profile)
	if err != nil {
		return nil, err
	}

	return &SetLevelOutput{Recruit: updated.Recruit, Stats: values}, nil
}

// evaluate converts a recruit's ranks into stat values, in stat set order
func (o *orchestrator) evaluate(rec *entities.Recruit, profile *resolvedProfile) ([]*StatValue, error) {
	set := profile.generation.Stats
	ranks := rec.RankVector(set)

	values, err := o.engine.EvaluateAll(&engine.EvaluateAllInput{
		Ranks:       ranks,
		Level:       rec.Level,
		Calibration: &profile.calibration,
		Stats:       set,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate stats")
	}

	out := make([]*StatValue, 0, set.Len())
	for i, st := range set.Types {
		out = append(out, &StatValue{Stat: st, Rank: ranks[i], Value: values[st]})
	}
	return out, nil
}
