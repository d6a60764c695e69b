package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rtservizi/fieldtrack/internal/db"
	"github.com/rtservizi/fieldtrack/internal/models"
	"github.com/rtservizi/fieldtrack/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "fieldtrack-test.db")
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return store.New(conn)
}

func TestEnsureProtectedUser_SeedsAdmin(t *testing.T) {
	st := openTestStore(t)

	if err := EnsureProtectedUser(context.Background(), st); err != nil {
		t.Fatalf("ensure protected user: %v", err)
	}

	user, errGet := st.GetUserByUsername(context.Background(), "admin")
	if errGet != nil {
		t.Fatalf("get seeded admin: %v", errGet)
	}
	if !user.IsProtected {
		t.Fatalf("expected seeded admin to be protected")
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
	if user.Password == "" {
		t.Fatalf("expected seeded admin to carry a password hash")
	}
}

func TestEnsureProtectedUser_SkipsWhenUsersExist(t *testing.T) {
	st := openTestStore(t)

	if _, errCreate := st.CreateUser(context.Background(), store.UserParams{
		Username: "mario",
		Email:    "mario@example.com",
		Role:     "Operatore",
	}); errCreate != nil {
		t.Fatalf("create user: %v", errCreate)
	}

	if err := EnsureProtectedUser(context.Background(), st); err != nil {
		t.Fatalf("ensure protected user: %v", err)
	}

	if _, errGet := st.GetUserByUsername(context.Background(), "admin"); errGet == nil {
		t.Fatalf("expected no admin seeded when users already exist")
	}
}

func TestEnsureProtectedUser_Idempotent(t *testing.T) {
	st := openTestStore(t)

	if err := EnsureProtectedUser(context.Background(), st); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := EnsureProtectedUser(context.Background(), st); err != nil {
		t.Fatalf("second run: %v", err)
	}

	users, errList := st.ListUsers(context.Background())
	if errList != nil {
		t.Fatalf("list users: %v", errList)
	}
	if len(users) != 1 {
		t.Fatalf("expected exactly one seeded user, got %d", len(users))
	}
}
