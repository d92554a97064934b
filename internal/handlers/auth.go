package handlers

import (
	"errors"
	"net/http"
	"strings"

	"perfume-store/internal/auth"
	"perfume-store/internal/database"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

type registerForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	FullName string `form:"full_name"`
}

func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Некорректные данные"})
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	if len(form.Username) < 3 || len(form.Password) < 6 {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Слишком короткий логин или пароль"})
		return
	}

	// через публичную форму регистрируются только обычные пользователи
	_, err := auth.Register(database.DB, form.Username, form.Password, strings.TrimSpace(form.FullName), "")
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUsername) {
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Пользователь уже существует"})
			return
		}
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Ошибка сохранения пользователя"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Некорректные данные"})
		return
	}

	p, err := auth.Authenticate(database.DB, form.Username, form.Password)
	if err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Неверный логин или пароль"})
		return
	}

	if err := auth.SavePrincipal(sessions.Default(c), p); err != nil {
		render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Ошибка сохранения сессии"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	_ = auth.ClearSession(sessions.Default(c))
	c.Redirect(http.StatusFound, "/login")
}
