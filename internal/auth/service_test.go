package auth

import (
	"errors"
	"strings"
	"testing"

	"perfume-store/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Отдельная in-memory база на каждый тест.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRegisterThenAuthenticate(t *testing.T) {
	db := setupTestDB(t)

	id, err := Register(db, "alice", "pw1234", "Alice A", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero user id")
	}

	p, err := Authenticate(db, "alice", "pw1234")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if p.ID != id {
		t.Errorf("principal id = %d, want %d", p.ID, id)
	}
	if p.Username != "alice" {
		t.Errorf("principal username = %q, want alice", p.Username)
	}
	if p.Role != models.RoleUser {
		t.Errorf("default role = %q, want user", p.Role)
	}
	if p.FullName != "Alice A" {
		t.Errorf("full name = %q, want Alice A", p.FullName)
	}
}

func TestRegisterStoresOnlyHash(t *testing.T) {
	db := setupTestDB(t)

	if _, err := Register(db, "bob", "secret99", "", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	var user models.User
	if err := db.Where("username = ?", "bob").First(&user).Error; err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if user.PasswordHash == "secret99" {
		t.Fatal("plaintext password persisted")
	}
	if !strings.HasPrefix(user.PasswordHash, "$2") {
		t.Errorf("password hash %q is not bcrypt", user.PasswordHash)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)

	if _, err := Register(db, "alice", "pw1234", "", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := Register(db, "alice", "other-pw", "", "")
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}

	var count int64
	db.Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	if count != 1 {
		t.Errorf("user rows = %d, want 1", count)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db := setupTestDB(t)

	if _, err := Register(db, "alice", "pw1234", "", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := Authenticate(db, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	if _, err := Authenticate(db, "ghost", "pw1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterAdminRole(t *testing.T) {
	db := setupTestDB(t)

	id, err := Register(db, "root", "pw1234", "", models.RoleAdmin)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", user.Role)
	}
}
