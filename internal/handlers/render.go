package handlers

import (
	"perfume-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// UploadDir задаётся роутером при старте; тесты подменяют на временный каталог.
var UploadDir = "web/uploads"

// render — обёртка над c.HTML, которая во все шаблоны прокидывает CurrentUser.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if p, ok := middleware.CurrentPrincipal(c); ok {
		data["CurrentUser"] = p
		data["IsAdmin"] = p.IsAdmin()
	}

	c.HTML(status, tmpl, data)
}
