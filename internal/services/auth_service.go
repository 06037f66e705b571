package services

import (
	"database/sql"
	"errors"

	"tillpoint/internal/domain"
	"tillpoint/internal/repos"
)

// ErrBadCredentials distinguishes a failed match from a storage fault.
var ErrBadCredentials = errors.New("invalid credentials")

type AuthService struct {
	Users *repos.UserRepo
}

// Login performs the one-shot credential check. No session or token is
// issued; the caller only learns whether the pair matched and who matched.
func (s *AuthService) Login(username, password string) (*domain.User, error) {
	u, err := s.Users.ByCredentials(username, password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
