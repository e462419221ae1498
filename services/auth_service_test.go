package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	u, err := svc.Register(&RegisterIn{Username: "alice", Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != entity.RoleClient {
		t.Errorf("role = %s, want CLIENT", u.Role)
	}
	if u.Password == "hunter22" {
		t.Error("password stored in plaintext")
	}

	out, err := svc.Login(&LoginIn{Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.Token == "" || out.User.ID != u.ID {
		t.Errorf("login out = %+v", out)
	}

	claims := &utils.Claims{}
	_, err = jwt.ParseWithClaims(out.Token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != string(entity.RoleClient) {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newAuthService(t)
	in := &RegisterIn{Username: "alice", Email: "alice@example.com", Password: "hunter22"}
	if _, err := svc.Register(in); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   RegisterIn
	}{
		{"same email", RegisterIn{Username: "alice2", Email: "alice@example.com", Password: "hunter22"}},
		{"same username", RegisterIn{Username: "alice", Email: "other@example.com", Password: "hunter22"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(&tt.in); apperr.KindOf(err) != apperr.KindConflict {
				t.Errorf("err = %v, want Conflict", err)
			}
		})
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	if _, err := svc.Register(&RegisterIn{Username: "alice", Email: "alice@example.com", Password: "hunter22"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   LoginIn
	}{
		{"wrong password", LoginIn{Email: "alice@example.com", Password: "nope"}},
		{"unknown email", LoginIn{Email: "bob@example.com", Password: "hunter22"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(&tt.in); apperr.KindOf(err) != apperr.KindUnauthenticated {
				t.Errorf("err = %v, want Unauthenticated", err)
			}
		})
	}
}

func TestMe(t *testing.T) {
	svc, db := newAuthService(t)
	u := seedUser(t, db, "alice", entity.RoleClient)

	got, err := svc.Me(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Username != "alice" {
		t.Errorf("username = %s", got.Username)
	}

	if _, err := svc.Me(999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("err = %v, want NotFound", err)
	}
}
