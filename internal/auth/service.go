package auth

import (
	"errors"
	"strings"

	"perfume-store/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Principal — снимок пользователя, который живёт в сессии.
// Обновляется только когда пользователь редактирует собственный профиль.
type Principal struct {
	ID       uint
	Username string
	FullName string
	Photo    string
	Role     models.UserRole
}

func (p Principal) IsAdmin() bool { return p.Role == models.RoleAdmin }

func PrincipalOf(u models.User) Principal {
	return Principal{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Photo:    u.Photo,
		Role:     u.Role,
	}
}

// Register создаёт нового пользователя с bcrypt-хэшем пароля.
// Пустая роль означает обычного пользователя.
func Register(db *gorm.DB, username, password, fullName string, role models.UserRole) (uint, error) {
	username = strings.TrimSpace(username)
	if role == "" {
		role = models.RoleUser
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		return 0, err
	}

	return user.ID, nil
}

// Authenticate проверяет пару логин/пароль и возвращает принципала.
func Authenticate(db *gorm.DB, username, password string) (Principal, error) {
	var user models.User
	if err := db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("username", username).Info("login failed: unknown user")
			return Principal{}, ErrInvalidCredentials
		}
		return Principal{}, err
	}

	// CompareHashAndPassword сравнивает за константное время
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logrus.WithField("username", username).Info("login failed: wrong password")
		return Principal{}, ErrInvalidCredentials
	}

	return PrincipalOf(user), nil
}
