package repos

import (
	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// ByCredentials looks up a user by exact username+password equality. The
// users table stores raw passwords for compatibility with existing pos.db
// files; callers treat sql.ErrNoRows as a failed login.
func (r *UserRepo) ByCredentials(username, password string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id, username, password FROM users WHERE username = ? AND password = ?`,
		username, password)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
