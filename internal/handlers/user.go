package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"perfume-store/internal/auth"
	"perfume-store/internal/database"
	"perfume-store/internal/middleware"
	"perfume-store/internal/models"
	"perfume-store/internal/upload"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// СПИСОК ПОЛЬЗОВАТЕЛЕЙ (только админ)

func ListUsers(c *gin.Context) {
	var users []models.User
	database.DB.Order("username asc").Find(&users)

	render(c, http.StatusOK, "users_list.html", gin.H{
		"users": users,
		"error": "",
	})
}

// СОЗДАНИЕ ПОЛЬЗОВАТЕЛЯ (только админ)

func ShowAddUser(c *gin.Context) {
	render(c, http.StatusOK, "users_new.html", gin.H{"error": ""})
}

func AddUser(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	fullName := strings.TrimSpace(c.PostForm("full_name"))
	role := models.UserRole(c.PostForm("role"))

	if len(username) < 3 || len(password) < 6 {
		render(c, http.StatusBadRequest, "users_new.html", gin.H{"error": "Слишком короткий логин или пароль"})
		return
	}

	switch role {
	case models.RoleAdmin, models.RoleUser:
	default:
		render(c, http.StatusBadRequest, "users_new.html", gin.H{"error": "Неверная роль"})
		return
	}

	// фото валидируем до создания записи; одинаковое содержимое
	// даёт одно и то же имя файла, поэтому сирот не остаётся
	photo, err := photoFromForm(c)
	if err != nil {
		render(c, http.StatusBadRequest, "users_new.html", gin.H{"error": uploadErrorMessage(err)})
		return
	}

	id, err := auth.Register(database.DB, username, password, fullName, role)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUsername) {
			render(c, http.StatusBadRequest, "users_new.html", gin.H{"error": "Пользователь уже существует"})
			return
		}
		render(c, http.StatusInternalServerError, "users_new.html", gin.H{"error": "Ошибка сохранения пользователя"})
		return
	}

	if photo != "" {
		database.DB.Model(&models.User{}).Where("id = ?", id).Update("photo", photo)
	}

	if p, ok := middleware.CurrentPrincipal(c); ok {
		database.CreateAuditLog(p.ID, "user", id, "create", "Создан пользователь: "+username)
	}

	c.Redirect(http.StatusFound, "/users")
}

// РЕДАКТИРОВАНИЕ (админ либо владелец записи)

func ShowEditUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID пользователя")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}

	render(c, http.StatusOK, "users_edit.html", gin.H{
		"user":  user,
		"error": "",
	})
}

func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID пользователя")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}

	p, _ := middleware.CurrentPrincipal(c)

	fullName := strings.TrimSpace(c.PostForm("full_name"))
	password := c.PostForm("password")
	roleStr := c.PostForm("role")
	removePhoto := c.PostForm("remove_photo") != ""

	if password != "" && len(password) < 6 {
		renderUserEditError(c, user, "Слишком короткий пароль")
		return
	}

	// роль меняет только админ; для остальных поле молча игнорируется
	if p.IsAdmin() && roleStr != "" {
		role := models.UserRole(roleStr)
		switch role {
		case models.RoleAdmin, models.RoleUser:
			user.Role = role
		default:
			renderUserEditError(c, user, "Неверная роль")
			return
		}
	}

	photo, err := photoFromForm(c)
	if err != nil {
		renderUserEditError(c, user, uploadErrorMessage(err))
		return
	}

	user.FullName = fullName
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			renderUserEditError(c, user, "Ошибка обновления пароля")
			return
		}
		user.PasswordHash = string(hash)
	}

	// remove_photo — явный флаг, отличный от «новый файл не загружен»
	switch {
	case photo != "":
		user.Photo = photo
	case removePhoto:
		user.Photo = ""
	}

	if err := database.DB.Save(&user).Error; err != nil {
		renderUserEditError(c, user, "Ошибка сохранения пользователя")
		return
	}

	// снимок в сессии обновляется только при правке собственной записи
	if p.ID == user.ID {
		_ = auth.SavePrincipal(sessions.Default(c), auth.PrincipalOf(user))
	}

	database.CreateAuditLog(p.ID, "user", user.ID, "update", "Изменён пользователь: "+user.Username)

	c.Redirect(http.StatusFound, "/users")
}

func renderUserEditError(c *gin.Context, user models.User, msg string) {
	render(c, http.StatusBadRequest, "users_edit.html", gin.H{
		"user":  user,
		"error": msg,
	})
}

// УДАЛЕНИЕ (только админ; себя удалить нельзя)

func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID пользователя")
		return
	}

	p, _ := middleware.CurrentPrincipal(c)
	if p.ID == uint(id) {
		var users []models.User
		database.DB.Order("username asc").Find(&users)
		render(c, http.StatusBadRequest, "users_list.html", gin.H{
			"users": users,
			"error": "Нельзя удалить собственную учётную запись",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления")
		return
	}

	database.CreateAuditLog(p.ID, "user", user.ID, "delete", "Удалён пользователь: "+user.Username)

	c.Redirect(http.StatusFound, "/users")
}

// helpers

// photoFromForm сохраняет загруженное фото, если оно есть.
// Отсутствие файла — не ошибка.
func photoFromForm(c *gin.Context) (string, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return "", nil
	}
	return upload.SavePhoto(fh, UploadDir)
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrNotImage):
		return "Файл должен быть изображением"
	case errors.Is(err, upload.ErrTooLarge):
		return "Файл больше 5 МБ"
	default:
		return "Ошибка загрузки файла"
	}
}
