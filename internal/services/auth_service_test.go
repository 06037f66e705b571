package services_test

import (
	"errors"
	"testing"

	"tillpoint/internal/repos"
	"tillpoint/internal/services"
)

func TestLoginSeededAdmin(t *testing.T) {
	db := memdb(t)
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	u, err := svc.Login("admin", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "admin" || u.ID == 0 {
		t.Fatalf("bad user: %+v", u)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := memdb(t)
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	if _, err := svc.Login("admin", "wrong"); !errors.Is(err, services.ErrBadCredentials) {
		t.Fatalf("want ErrBadCredentials, got %v", err)
	}
	if _, err := svc.Login("ghost", "1234"); !errors.Is(err, services.ErrBadCredentials) {
		t.Fatalf("want ErrBadCredentials, got %v", err)
	}
}
