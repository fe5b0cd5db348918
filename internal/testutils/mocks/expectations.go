// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/dreamshade/recruit-api/internal/entities"
	recruitrepo "github.com/dreamshade/recruit-api/internal/repositories/recruit"
	recruitmock "github.com/dreamshade/recruit-api/internal/repositories/recruit/mock"
	"github.com/dreamshade/recruit-api/internal/testutils"
)

// ExpectRecruitGet sets up a mock expectation for getting a recruit from the repository
func ExpectRecruitGet(
	ctx context.Context, mockRepo *recruitmock.MockRepository,
	recruitID string, recruit *entities.Recruit, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, recruitrepo.GetInput{ID: recruitID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, recruitrepo.GetInput{ID: recruitID}).
		Return(&recruitrepo.GetOutput{Recruit: recruit}, nil)
}

// ExpectRecruitList sets up a mock expectation for listing a player's roster
func ExpectRecruitList(
	ctx context.Context, mockRepo *recruitmock.MockRepository,
	playerID string, recruits []*entities.Recruit, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			ListByPlayerID(ctx, recruitrepo.ListByPlayerIDInput{PlayerID: playerID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		ListByPlayerID(ctx, recruitrepo.ListByPlayerIDInput{PlayerID: playerID}).
		Return(&recruitrepo.ListByPlayerIDOutput{Recruits: recruits}, nil)
}

// ExpectRecruitCreate sets up a mock expectation for creating a recruit.
// The stored copy gets the fixture timestamps.
func ExpectRecruitCreate(ctx context.Context, mockRepo *recruitmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input recruitrepo.CreateInput) (*recruitrepo.CreateOutput, error) {
			stored := *input.Recruit
			if stored.CreatedAt.IsZero() {
				stored.CreatedAt = testutils.TestTime
			}
			stored.UpdatedAt = testutils.TestTime
			return &recruitrepo.CreateOutput{Recruit: &stored}, nil
		})
}

// ExpectRecruitUpdate sets up a mock expectation for updating a recruit
func ExpectRecruitUpdate(ctx context.Context, mockRepo *recruitmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input recruitrepo.UpdateInput) (*recruitrepo.UpdateOutput, error) {
			stored := *input.Recruit
			stored.UpdatedAt = testutils.TestTime
			return &recruitrepo.UpdateOutput{Recruit: &stored}, nil
		})
}

// ExpectRecruitDelete sets up a mock expectation for deleting a recruit
func ExpectRecruitDelete(ctx context.Context, mockRepo *recruitmock.MockRepository, recruitID string, err error) {
	if err != nil {
		mockRepo.EXPECT().
			Delete(ctx, recruitrepo.DeleteInput{ID: recruitID}).
			Return(nil, err)
		return
	}
	mockRepo.EXPECT().
		Delete(ctx, recruitrepo.DeleteInput{ID: recruitID}).
		Return(&recruitrepo.DeleteOutput{}, nil)
}
