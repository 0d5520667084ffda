// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	catalogmock "github.com/KirkDiggler/questlog-api/internal/repositories/catalog/mock"
	"github.com/KirkDiggler/questlog-api/internal/repositories/profile"
	profilemock "github.com/KirkDiggler/questlog-api/internal/repositories/profile/mock"
)

// ExpectProfileMissing makes the next Get for userID report NotFound, the
// way a first login looks
func ExpectProfileMissing(mockRepo *profilemock.MockRepository, userID string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), &profile.GetInput{UserID: userID}).
		Return(nil, errors.NotFoundf("profile %s not found", userID))
}

// ExpectProfileGet returns p for the next Get of its user
func ExpectProfileGet(mockRepo *profilemock.MockRepository, p *entities.Profile) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), &profile.GetInput{UserID: p.UserID}).
		Return(&profile.GetOutput{Profile: p}, nil)
}

// ExpectProfilePut accepts one Put. A nil err echoes the written profile.
func ExpectProfilePut(mockRepo *profilemock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *profile.PutInput) (*profile.PutOutput, error) {
			if err != nil {
				return nil, err
			}
			return &profile.PutOutput{Profile: in.Profile}, nil
		})
}

// ExpectCatalogUnavailable makes every catalog read and unlock fail with an
// Unavailable error
func ExpectCatalogUnavailable(mockCatalog *catalogmock.MockRepository) {
	down := errors.Unavailable("catalog database unreachable")
	mockCatalog.EXPECT().ListSkillsByClass(gomock.Any(), gomock.Any()).Return(nil, down).AnyTimes()
	mockCatalog.EXPECT().ListUnlockedSkills(gomock.Any(), gomock.Any()).Return(nil, down).AnyTimes()
	mockCatalog.EXPECT().UnlockSkill(gomock.Any(), gomock.Any()).Return(nil, down).AnyTimes()
	mockCatalog.EXPECT().IsSkillUnlocked(gomock.Any(), gomock.Any()).Return(nil, down).AnyTimes()
	mockCatalog.EXPECT().GetSkill(gomock.Any(), gomock.Any()).Return(nil, down).AnyTimes()
	mockCatalog.EXPECT().GetMonster(gomock.Any(), gomock.Any()).Return(nil, down).AnyTimes()
	mockCatalog.EXPECT().RandomMonster(gomock.Any(), gomock.Any()).Return(nil, down).AnyTimes()
}
