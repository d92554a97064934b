package server

import (
	"net/http"

	"perfume-store/internal/config"
	"perfume-store/internal/handlers"
	"perfume-store/internal/middleware"
	"perfume-store/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.Static("/uploads", cfg.UploadDir)
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("perfume_session", store))
	r.Use(middleware.InjectPrincipal())

	handlers.UploadDir = cfg.UploadDir

	RegisterRoutes(r)

	return r
}

// RegisterRoutes вешает маршруты и их guard-ы на готовый engine.
// Таблица «маршрут → требование» целиком живёт здесь.
func RegisterRoutes(r *gin.Engine) {
	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/logout", handlers.Logout)

	// ВИТРИНА
	auth.GET("/", handlers.IndexPage)
	auth.GET("/catalog", handlers.CatalogPage)
	auth.GET("/cart", handlers.CartPage)
	auth.GET("/profile", handlers.ProfilePage)

	// ПОЛЬЗОВАТЕЛИ
	auth.GET("/users",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListUsers,
	)
	auth.GET("/add-user",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowAddUser,
	)
	auth.POST("/add-user",
		middleware.RequireRole(models.RoleAdmin),
		handlers.AddUser,
	)

	// редактировать может админ либо сам пользователь свою запись
	auth.GET("/edit-user/:id",
		middleware.RequireSelfOrAdmin(),
		handlers.ShowEditUser,
	)
	auth.POST("/edit-user/:id",
		middleware.RequireSelfOrAdmin(),
		handlers.UpdateUser,
	)

	auth.POST("/delete-user/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteUser,
	)

	// СПРАВОЧНИКИ
	auth.GET("/add-brand",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowAddBrand,
	)
	auth.POST("/add-brand",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateBrand,
	)
	auth.POST("/delete-brand/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteBrand,
	)

	auth.GET("/add-category",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowAddCategory,
	)
	auth.POST("/add-category",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateCategory,
	)
	auth.POST("/delete-category/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteCategory,
	)

	auth.GET("/add-supplier",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowAddSupplier,
	)
	auth.POST("/add-supplier",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateSupplier,
	)
	auth.POST("/delete-supplier/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteSupplier,
	)

	// КАТАЛОГ
	auth.GET("/add-perfume",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowAddPerfume,
	)
	auth.POST("/add-perfume",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreatePerfume,
	)
	auth.GET("/edit-perfume/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowEditPerfume,
	)
	auth.POST("/edit-perfume/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdatePerfume,
	)
	auth.POST("/delete-perfume/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeletePerfume,
	)

	// АУДИТ
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListAuditLogs,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// 404
	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
	})
}
