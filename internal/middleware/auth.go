package middleware

import (
	"net/http"
	"strconv"

	"perfume-store/internal/auth"
	"perfume-store/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const principalKey = "Principal"

// InjectPrincipal кладёт снимок принципала из сессии в контекст запроса.
// БД при этом не трогаем: снимок обновляется только при self-edit.
func InjectPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if p, ok := auth.PrincipalFrom(sess); ok {
			c.Set(principalKey, p)
		}
		c.Next()
	}
}

// CurrentPrincipal достаёт принципала, положенного InjectPrincipal.
func CurrentPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if _, ok := roleSet[p.Role]; !ok {
			c.String(http.StatusForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin пропускает админа либо пользователя,
// работающего с собственной записью (:id).
func RequireSelfOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if p.IsAdmin() {
			c.Next()
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 || uint(id) != p.ID {
			c.String(http.StatusForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
