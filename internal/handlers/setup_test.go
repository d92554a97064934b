package handlers_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"perfume-store/internal/auth"
	"perfume-store/internal/database"
	"perfume-store/internal/handlers"
	"perfume-store/internal/middleware"
	"perfume-store/internal/models"
	"perfume-store/internal/server"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Шаблоны-заглушки: в тестах проверяются статусы и состояние БД,
// а не разметка.
const testTemplates = `
{{define "login.html"}}login {{.error}}{{end}}
{{define "register.html"}}register {{.error}}{{end}}
{{define "index.html"}}index {{range .perfumes}}[{{.Name}}]{{end}}{{end}}
{{define "catalog.html"}}catalog {{range .perfumes}}[{{.Name}}]{{end}}{{end}}
{{define "cart.html"}}cart{{end}}
{{define "profile.html"}}profile {{.user.Username}}{{end}}
{{define "users_list.html"}}users {{.error}}{{end}}
{{define "users_new.html"}}new user {{.error}}{{end}}
{{define "users_edit.html"}}edit user {{.error}}{{end}}
{{define "brands_new.html"}}new brand {{.error}}{{end}}
{{define "categories_new.html"}}new category {{.error}}{{end}}
{{define "suppliers_new.html"}}new supplier {{.error}}{{end}}
{{define "perfumes_new.html"}}new perfume {{.error}}{{end}}
{{define "perfumes_edit.html"}}edit perfume {{.error}}{{end}}
{{define "audit_list.html"}}audit{{end}}
{{define "404.html"}}not found{{end}}
`

// setupRouter поднимает engine с реальной таблицей маршрутов
// и свежей in-memory базой.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Category{},
		&models.Supplier{},
		&models.Perfume{},
		&models.AuditLog{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	handlers.UploadDir = t.TempDir()

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("test").Parse(testTemplates)))
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("perfume_session", store))
	r.Use(middleware.InjectPrincipal())
	server.RegisterRoutes(r)

	return r
}

func mustRegister(t *testing.T, username, password string, role models.UserRole) uint {
	t.Helper()
	id, err := auth.Register(database.DB, username, password, "", role)
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return id
}

// login проходит через POST /login и возвращает cookie сессии.
func login(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("login %s: expected 302 got %d (%s)", username, w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}
