package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cinelog/internal/identity/models"
	id "cinelog/pkg/domain"
	"cinelog/pkg/platform/sentinel"
)

type UserStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *UserStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreSuite))
}

func (s *UserStoreSuite) newUser(email string) models.User {
	return models.User{
		Email:        email,
		UserID:       id.NewUserID(),
		Name:         "Test User",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealhash",
		CreatedAt:    time.Now().UTC(),
	}
}

func (s *UserStoreSuite) TestCreationAndLookup() {
	s.Run("creates and finds user by email", func() {
		u := s.newUser("ada@example.com")
		s.Require().NoError(s.store.CreateIfEmailAvailable(s.ctx, u))

		found, err := s.store.FindByEmail(s.ctx, "ada@example.com")
		s.Require().NoError(err)
		s.Equal(u.UserID, found.UserID)
		s.Equal(u.PasswordHash, found.PasswordHash)
	})

	s.Run("returns ErrNotFound for unknown email", func() {
		_, err := s.store.FindByEmail(s.ctx, "nobody@example.com")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *UserStoreSuite) TestEmailUniqueness() {
	first := s.newUser("taken@example.com")
	s.Require().NoError(s.store.CreateIfEmailAvailable(s.ctx, first))

	second := s.newUser("taken@example.com")
	s.Require().ErrorIs(s.store.CreateIfEmailAvailable(s.ctx, second), sentinel.ErrConflict)

	found, err := s.store.FindByEmail(s.ctx, "taken@example.com")
	s.Require().NoError(err)
	s.Equal(first.UserID, found.UserID, "losing write must not overwrite")
}
