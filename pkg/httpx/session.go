package httpx

import (
	"net/http"

	"github.com/Gunvolt24/pixelcraft/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie — имя cookie с идентификатором сессии магазина.
const SessionCookie = "pixelcraft_session"

// SessionMiddleware — сессия без авторизации (аналог session-cookie во Flask):
// берёт id из cookie или выдаёт новый UUID; кладёт его в контекст запроса.
// Cookie живёт до закрытия браузера (MaxAge=0).
func SessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || !validSessionID(sid) {
			sid = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Request = c.Request.WithContext(ctxmeta.WithSessionID(c.Request.Context(), sid))
		c.Next()
	}
}

// SessionID — id сессии текущего запроса (пусто, если middleware не подключён).
func SessionID(c *gin.Context) string {
	sid, _ := ctxmeta.SessionIDFromContext(c.Request.Context())
	return sid
}

func validSessionID(sid string) bool {
	_, err := uuid.Parse(sid)
	return err == nil
}
