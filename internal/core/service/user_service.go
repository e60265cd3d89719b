package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

type userService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(users ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{users: users, log: log}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Surname = in.Surname
	user.PersonalNumber = in.PersonalNumber
	user.Username = in.Username
	user.Email = in.Email
	user.Role = role

	return s.users.Update(ctx, user)
}

// Delete removes a user. Without force the store's foreign keys decide: any
// dependent row blocks the delete and nothing is mutated. With force the
// dependent rows go first, in dependency order, in one transaction with the
// user row.
func (s *userService) Delete(ctx context.Context, id int64, force bool) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	if !force {
		if err := s.users.Delete(ctx, id); err != nil {
			return err
		}
		s.log.Info().Int64("user_id", id).Msg("user deleted")
		return nil
	}

	if err := s.users.DeleteCascade(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("user_id", id).Msg("cascade delete failed")
		return err
	}
	s.log.Info().Int64("user_id", id).Bool("forced", true).Msg("user deleted with dependents")
	return nil
}
