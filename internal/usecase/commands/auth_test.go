//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldbook/internal/pkg/jwt"
	"fieldbook/internal/pkg/password"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/shared"
	"fieldbook/tests/common/builder"
	queriesmock "fieldbook/tests/mock/queries"
	sharedmock "fieldbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUow     *sharedmock.MockUnitOfWork
	mockReads   *sharedmock.MockCommandReads
	mockQueries *queriesmock.MockAdminQueries
	auth        commands.AuthCommands
	passHash    string
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.mockUow.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()

	jwtService := jwt.NewService("test-secret", time.Minute, time.Hour)
	s.auth = commands.NewAuthCommands(s.mockUow, s.mockQueries, jwtService)

	hash, err := password.Hash("correct-horse-battery")
	s.Require().NoError(err)
	s.passHash = hash
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) snapshot(active bool) *shared.AdminSnapshot {
	return &shared.AdminSnapshot{
		ID:           uuid.New(),
		Username:     "front.desk",
		PasswordHash: s.passHash,
		Role:         "manager",
		IsActive:     active,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	reqBody := builder.NewAdminBuilder().BuildLoginRequestDTO()

	s.Run("success: active account with matching password gets a token pair", func() {
		s.mockReads.EXPECT().AdminByUsername(gomock.Any(), "front.desk").
			Return(s.snapshot(true), nil).Times(1)
		s.mockUow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		result, err := s.auth.Login(context.Background(), reqBody)
		s.Require().NoError(err)
		s.NotEmpty(result.TokenPair.AccessToken)
		s.NotEmpty(result.TokenPair.RefreshToken)
		s.Equal("manager", result.Role.String())
	})

	s.Run("error: unknown username answers with invalid credentials", func() {
		s.mockReads.EXPECT().AdminByUsername(gomock.Any(), "front.desk").
			Return(nil, errors.New("no rows")).Times(1)

		_, err := s.auth.Login(context.Background(), reqBody)
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: wrong password answers with invalid credentials", func() {
		s.mockReads.EXPECT().AdminByUsername(gomock.Any(), "front.desk").
			Return(s.snapshot(true), nil).Times(1)

		wrong := reqBody
		wrong.Password = "totally-wrong-pw"
		_, err := s.auth.Login(context.Background(), wrong)
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	// A deactivated account must answer exactly like a bad credential,
	// whatever the password, so probing cannot reveal that it exists.
	s.Run("error: inactive account with wrong password is indistinguishable", func() {
		s.mockReads.EXPECT().AdminByUsername(gomock.Any(), "front.desk").
			Return(s.snapshot(false), nil).Times(1)

		wrong := reqBody
		wrong.Password = "totally-wrong-pw"
		_, err := s.auth.Login(context.Background(), wrong)
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
		s.NotErrorIs(err, commands.ErrAdminInactive)
	})

	s.Run("error: inactive account with matching password is indistinguishable", func() {
		s.mockReads.EXPECT().AdminByUsername(gomock.Any(), "front.desk").
			Return(s.snapshot(false), nil).Times(1)

		_, err := s.auth.Login(context.Background(), reqBody)
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
		s.NotErrorIs(err, commands.ErrAdminInactive)
	})
}
