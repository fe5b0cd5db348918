package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/errors"
	"github.com/dreamshade/recruit-api/internal/handlers/recruit/v1alpha1"
	"github.com/dreamshade/recruit-api/internal/orchestrators/recruit"
	recruitmock "github.com/dreamshade/recruit-api/internal/orchestrators/recruit/mock"
	"github.com/dreamshade/recruit-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *recruitmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = recruitmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RecruitService: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
	_, err = v1alpha1.NewHandler(nil)
	s.Error(err)
}

func (s *HandlerTestSuite) statValues() []*recruit.StatValue {
	return []*recruit.StatValue{
		{Stat: stats.StatStrength, Rank: 10, Value: 12.5},
		{Stat: stats.StatDefense, Rank: 20, Value: 20.25},
	}
}

func (s *HandlerTestSuite) TestGenerateRecruit() {
	seed := uint64(42)
	rec := testutils.CreateTestRecruit(testutils.TestPlayerID)
	rec.Job = entities.JobMage | entities.JobThief
	rec.Seed = &seed

	s.mockService.EXPECT().
		GenerateRecruit(s.ctx, &recruit.GenerateRecruitInput{
			PlayerID: testutils.TestPlayerID,
			Name:     "Aerin",
			Job:      entities.JobMage | entities.JobThief,
			Profile:  "default",
			Seed:     &seed,
			Persist:  true,
		}).
		Return(&recruit.GenerateRecruitOutput{
			Recruit:     rec,
			TotalPoints: 210,
			Stats:       s.statValues(),
		}, nil)

	resp, err := s.handler.GenerateRecruit(s.ctx, &v1alpha1.GenerateRecruitRequest{
		PlayerID: testutils.TestPlayerID,
		Name:     "Aerin",
		Job:      "thief, mage",
		Profile:  "default",
		Seed:     &seed,
		Persist:  true,
	})
	s.Require().NoError(err)
	s.Equal(int32(210), resp.TotalPoints)
	s.Equal(rec.ID, resp.Recruit.ID)
	s.Equal("Thief|Mage", resp.Recruit.Job)
	s.Equal(seed, *resp.Recruit.Seed)
	s.Require().Len(resp.Recruit.Ranks, 6)
	s.Equal("STR", resp.Recruit.Ranks[0].Stat)
	s.Equal(int32(10), resp.Recruit.Ranks[0].Rank)
	s.Require().Len(resp.Stats, 2)
	s.Equal(20.25, resp.Stats[1].Value)
}

func (s *HandlerTestSuite) TestGenerateRecruitValidation() {
	_, err := s.handler.GenerateRecruit(s.ctx, &v1alpha1.GenerateRecruitRequest{Job: "Bard"})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.GenerateRecruit(s.ctx, &v1alpha1.GenerateRecruitRequest{Persist: true})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGenerateRecruitMissingProfile() {
	s.mockService.EXPECT().
		GenerateRecruit(s.ctx, gomock.Any()).
		Return(nil, errors.ConfigurationMissing("profile:elite"))

	_, err := s.handler.GenerateRecruit(s.ctx, &v1alpha1.GenerateRecruitRequest{Profile: "elite"})
	s.Equal(codes.FailedPrecondition, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(errors.IsConfigurationMissing(converted))
}

func (s *HandlerTestSuite) TestGenerateBatch() {
	rec := testutils.CreateTestRecruit(testutils.TestPlayerID)
	s.mockService.EXPECT().
		GenerateBatch(s.ctx, &recruit.GenerateBatchInput{Count: 2}).
		Return(&recruit.GenerateBatchOutput{Results: []*recruit.GenerateRecruitOutput{
			{Recruit: rec, TotalPoints: 150},
			{Recruit: rec, TotalPoints: 175},
		}}, nil)

	resp, err := s.handler.GenerateBatch(s.ctx, &v1alpha1.GenerateBatchRequest{Count: 2})
	s.Require().NoError(err)
	s.Require().Len(resp.Results, 2)
	s.Equal(int32(175), resp.Results[1].TotalPoints)
}

func (s *HandlerTestSuite) TestGenerateBatchCount() {
	for _, count := range []int32{0, recruit.MaxBatchSize + 1} {
		_, err := s.handler.GenerateBatch(s.ctx, &v1alpha1.GenerateBatchRequest{Count: count})
		s.Equal(codes.InvalidArgument, status.Code(err))
	}
}

func (s *HandlerTestSuite) TestGetRecruit() {
	rec := testutils.CreateTestRecruit(testutils.TestPlayerID)
	s.mockService.EXPECT().
		GetRecruit(s.ctx, &recruit.GetRecruitInput{RecruitID: rec.ID}).
		Return(&recruit.GetRecruitOutput{Recruit: rec}, nil)

	resp, err := s.handler.GetRecruit(s.ctx, &v1alpha1.GetRecruitRequest{RecruitID: rec.ID})
	s.Require().NoError(err)
	s.Equal(rec.Name, resp.Recruit.Name)
	s.Equal("Warrior", resp.Recruit.Job)

	_, err = s.handler.GetRecruit(s.ctx, &v1alpha1.GetRecruitRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetRecruitNotFound() {
	s.mockService.EXPECT().
		GetRecruit(s.ctx, &recruit.GetRecruitInput{RecruitID: "missing"}).
		Return(nil, errors.NotFound("recruit not found"))

	_, err := s.handler.GetRecruit(s.ctx, &v1alpha1.GetRecruitRequest{RecruitID: "missing"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestListRecruits() {
	roster := []*entities.Recruit{
		testutils.CreateTestRecruit(testutils.TestPlayerID),
		testutils.CreateTestRecruit(testutils.TestPlayerID),
	}
	s.mockService.EXPECT().
		ListRecruits(s.ctx, &recruit.ListRecruitsInput{PlayerID: testutils.TestPlayerID}).
		Return(&recruit.ListRecruitsOutput{Recruits: roster}, nil)

	resp, err := s.handler.ListRecruits(s.ctx, &v1alpha1.ListRecruitsRequest{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Len(resp.Recruits, 2)

	_, err = s.handler.ListRecruits(s.ctx, &v1alpha1.ListRecruitsRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestDeleteRecruit() {
	s.mockService.EXPECT().
		DeleteRecruit(s.ctx, &recruit.DeleteRecruitInput{RecruitID: testutils.TestRecruitID}).
		Return(&recruit.DeleteRecruitOutput{}, nil)

	resp, err := s.handler.DeleteRecruit(s.ctx, &v1alpha1.DeleteRecruitRequest{RecruitID: testutils.TestRecruitID})
	s.Require().NoError(err)
	s.NotEmpty(resp.Message)
}

func (s *HandlerTestSuite) TestGetRecruitStats() {
	rec := testutils.CreateTestRecruit(testutils.TestPlayerID)
	s.mockService.EXPECT().
		GetRecruitStats(s.ctx, &recruit.GetRecruitStatsInput{RecruitID: rec.ID}).
		Return(&recruit.GetRecruitStatsOutput{Recruit: rec, Stats: s.statValues()}, nil)

	resp, err := s.handler.GetRecruitStats(s.ctx, &v1alpha1.GetRecruitStatsRequest{RecruitID: rec.ID})
	s.Require().NoError(err)
	s.Require().Len(resp.Stats, 2)
	s.Equal("STR", resp.Stats[0].Stat)
	s.Equal(12.5, resp.Stats[0].Value)
}

func (s *HandlerTestSuite) TestSetRank() {
	rec := testutils.CreateTestRecruit(testutils.TestPlayerID)
	s.mockService.EXPECT().
		SetRank(s.ctx, &recruit.SetRankInput{RecruitID: rec.ID, Stat: "str", Rank: 99}).
		Return(&recruit.SetRankOutput{Recruit: rec, Stats: s.statValues()}, nil)

	resp, err := s.handler.SetRank(s.ctx, &v1alpha1.SetRankRequest{RecruitID: rec.ID, Stat: "str", Rank: 99})
	s.Require().NoError(err)
	s.Equal(rec.ID, resp.Recruit.ID)

	_, err = s.handler.SetRank(s.ctx, &v1alpha1.SetRankRequest{RecruitID: rec.ID})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSetLevel() {
	rec := testutils.CreateTestRecruit(testutils.TestPlayerID)
	s.mockService.EXPECT().
		SetLevel(s.ctx, &recruit.SetLevelInput{RecruitID: rec.ID, Level: 12}).
		Return(&recruit.SetLevelOutput{Recruit: rec, Stats: s.statValues()}, nil)

	resp, err := s.handler.SetLevel(s.ctx, &v1alpha1.SetLevelRequest{RecruitID: rec.ID, Level: 12})
	s.Require().NoError(err)
	s.Len(resp.Stats, 2)

	_, err = s.handler.SetLevel(s.ctx, &v1alpha1.SetLevelRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
