package v1alpha1

import (
	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/orchestrators/recruit"
)

func convertRecruitToProto(r *entities.Recruit) *Recruit {
	if r == nil {
		return nil
	}

	ranks := make([]*StatRank, 0, len(r.Ranks))
	for _, sr := range r.Ranks {
		ranks = append(ranks, &StatRank{Stat: string(sr.Stat), Rank: int32(sr.Rank)})
	}

	var seed *uint64
	if r.Seed != nil {
		v := *r.Seed
		seed = &v
	}

	return &Recruit{
		ID:             r.ID,
		PlayerID:       r.PlayerID,
		Name:           r.Name,
		Job:            r.Job.String(),
		Level:          int32(r.Level),
		Ranks:          ranks,
		StatSetVersion: int32(r.StatSetVersion),
		Profile:        r.Profile,
		Seed:           seed,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func convertStatValues(values []*recruit.StatValue) []*StatValue {
	out := make([]*StatValue, 0, len(values))
	for _, v := range values {
		out = append(out, &StatValue{
			Stat:  string(v.Stat),
			Rank:  int32(v.Rank),
			Value: v.Value,
		})
	}
	return out
}

func convertGenerateOutput(out *recruit.GenerateRecruitOutput) *GenerateRecruitResponse {
	return &GenerateRecruitResponse{
		Recruit:     convertRecruitToProto(out.Recruit),
		TotalPoints: int32(out.TotalPoints),
		Stats:       convertStatValues(out.Stats),
	}
}
