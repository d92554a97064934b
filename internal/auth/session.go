package auth

import (
	"perfume-store/internal/models"

	"github.com/gin-contrib/sessions"
)

// ключи сессии
const (
	sessUserID   = "user_id"
	sessUsername = "username"
	sessFullName = "full_name"
	sessPhoto    = "photo"
	sessRole     = "role"
)

// SavePrincipal кладёт снимок принципала в сессию.
func SavePrincipal(sess sessions.Session, p Principal) error {
	sess.Set(sessUserID, p.ID)
	sess.Set(sessUsername, p.Username)
	sess.Set(sessFullName, p.FullName)
	sess.Set(sessPhoto, p.Photo)
	sess.Set(sessRole, string(p.Role))
	return sess.Save()
}

// PrincipalFrom достаёт принципала из сессии; ok=false если не залогинен.
func PrincipalFrom(sess sessions.Session) (Principal, bool) {
	uid, ok := sess.Get(sessUserID).(uint)
	if !ok || uid == 0 {
		return Principal{}, false
	}

	p := Principal{ID: uid}
	p.Username, _ = sess.Get(sessUsername).(string)
	p.FullName, _ = sess.Get(sessFullName).(string)
	p.Photo, _ = sess.Get(sessPhoto).(string)
	if roleStr, ok := sess.Get(sessRole).(string); ok {
		p.Role = models.UserRole(roleStr)
	}
	return p, true
}

// ClearSession уничтожает сессию (logout).
func ClearSession(sess sessions.Session) error {
	sess.Clear()
	return sess.Save()
}
