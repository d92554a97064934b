package database

import (
	"os"

	"perfume-store/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(path string) {
	var err error

	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to open db %s: %v", path, err)
	}

	// миграции
	err = DB.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Category{},
		&models.Supplier{},
		&models.Perfume{},
		&models.AuditLog{},
	)
	if err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	// создаём дефолтного админа
	createDefaultAdmin()
}

// админ только из кода/конфига
func createDefaultAdmin() {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		logrus.Errorf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Errorf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Администратор",
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		logrus.Errorf("failed to create default admin: %v", err)
		return
	}

	logrus.WithField("username", username).Info("created default admin user")
}
