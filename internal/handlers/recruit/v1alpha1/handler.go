// Package v1alpha1 handles the recruit grpc service interface
package v1alpha1

import (
	"context"

	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/errors"
	"github.com/dreamshade/recruit-api/internal/orchestrators/recruit"
)

// HandlerConfig holds dependencies for the recruit handler
type HandlerConfig struct {
	RecruitService recruit.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.RecruitService == nil {
		return errors.InvalidArgument("recruit service is required")
	}
	return nil
}

// Handler implements RecruitServiceServer on top of the recruit orchestrator
type Handler struct {
	recruitService recruit.Service
}

var _ RecruitServiceServer = (*Handler)(nil)

// NewHandler creates a new recruit handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		recruitService: cfg.RecruitService,
	}, nil
}

// GenerateRecruit rolls a recruit and optionally stores it on the player's roster
func (h *Handler) GenerateRecruit(
	ctx context.Context,
	req *GenerateRecruitRequest,
) (*GenerateRecruitResponse, error) {
	job, err := entities.ParseJobClass(req.Job)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Persist && req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required to persist"))
	}

	out, err := h.recruitService.GenerateRecruit(ctx, &recruit.GenerateRecruitInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Job:      job,
		Profile:  req.Profile,
		Seed:     req.Seed,
		Persist:  req.Persist,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertGenerateOutput(out), nil
}

// GenerateBatch rolls up to recruit.MaxBatchSize recruits
func (h *Handler) GenerateBatch(
	ctx context.Context,
	req *GenerateBatchRequest,
) (*GenerateBatchResponse, error) {
	if req.Count < 1 || req.Count > recruit.MaxBatchSize {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("count must be between 1 and %d", recruit.MaxBatchSize))
	}
	job, err := entities.ParseJobClass(req.Job)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.recruitService.GenerateBatch(ctx, &recruit.GenerateBatchInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Job:      job,
		Profile:  req.Profile,
		Seed:     req.Seed,
		Count:    int(req.Count),
		Persist:  req.Persist,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	results := make([]*GenerateRecruitResponse, 0, len(out.Results))
	for _, res := range out.Results {
		results = append(results, convertGenerateOutput(res))
	}

	return &GenerateBatchResponse{Results: results}, nil
}

// GetRecruit returns a stored recruit
func (h *Handler) GetRecruit(ctx context.Context, req *GetRecruitRequest) (*GetRecruitResponse, error) {
	if req.RecruitID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("recruit_id is required"))
	}

	out, err := h.recruitService.GetRecruit(ctx, &recruit.GetRecruitInput{RecruitID: req.RecruitID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetRecruitResponse{Recruit: convertRecruitToProto(out.Recruit)}, nil
}

// ListRecruits returns a player's roster
func (h *Handler) ListRecruits(ctx context.Context, req *ListRecruitsRequest) (*ListRecruitsResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.recruitService.ListRecruits(ctx, &recruit.ListRecruitsInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	recruits := make([]*Recruit, 0, len(out.Recruits))
	for _, r := range out.Recruits {
		recruits = append(recruits, convertRecruitToProto(r))
	}

	return &ListRecruitsResponse{Recruits: recruits}, nil
}

// DeleteRecruit removes a recruit from its roster
func (h *Handler) DeleteRecruit(ctx context.Context, req *DeleteRecruitRequest) (*DeleteRecruitResponse, error) {
	if req.RecruitID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("recruit_id is required"))
	}

	if _, err := h.recruitService.DeleteRecruit(ctx, &recruit.DeleteRecruitInput{RecruitID: req.RecruitID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteRecruitResponse{Message: "Recruit deleted successfully"}, nil
}

// GetRecruitStats evaluates a stored recruit at its current level
func (h *Handler) GetRecruitStats(
	ctx context.Context,
	req *GetRecruitStatsRequest,
) (*GetRecruitStatsResponse, error) {
	if req.RecruitID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("recruit_id is required"))
	}

	out, err := h.recruitService.GetRecruitStats(ctx, &recruit.GetRecruitStatsInput{RecruitID: req.RecruitID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetRecruitStatsResponse{
		Recruit: convertRecruitToProto(out.Recruit),
		Stats:   convertStatValues(out.Stats),
	}, nil
}

// SetRank changes one stat rank. Out of range ranks are clamped.
func (h *Handler) SetRank(ctx context.Context, req *SetRankRequest) (*SetRankResponse, error) {
	if req.RecruitID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("recruit_id is required"))
	}
	if req.Stat == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("stat is required"))
	}

	out, err := h.recruitService.SetRank(ctx, &recruit.SetRankInput{
		RecruitID: req.RecruitID,
		Stat:      req.Stat,
		Rank:      int(req.Rank),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetRankResponse{
		Recruit: convertRecruitToProto(out.Recruit),
		Stats:   convertStatValues(out.Stats),
	}, nil
}

// SetLevel changes a recruit's level. Out of range levels are clamped.
func (h *Handler) SetLevel(ctx context.Context, req *SetLevelRequest) (*SetLevelResponse, error) {
	if req.RecruitID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("recruit_id is required"))
	}

	out, err := h.recruitService.SetLevel(ctx, &recruit.SetLevelInput{
		RecruitID: req.RecruitID,
		Level:     int(req.Level),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetLevelResponse{
		Recruit: convertRecruitToProto(out.Recruit),
		Stats:   convertStatValues(out.Stats),
	}, nil
}
