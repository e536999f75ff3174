package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — одна строка на запрос; уровень по статусу (5xx — error, 4xx — warn).
// /ping, /metrics и статика не логируются. request_id и trace_id добавляет сам логгер.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if quietPath(path) {
			return
		}

		ctx := c.Request.Context()
		sid, _ := ctxmeta.SessionIDFromContext(ctx)
		sp, _ := ctxmeta.SpanIDFromContext(ctx)
		status := c.Writer.Status()

		logf := log.Infof
		switch {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}
		logf(ctx,
			"request session=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			sid, sp, c.Request.Method, path, status, c.ClientIP(), time.Since(start), c.Writer.Size(),
		)
	}
}

func quietPath(path string) bool {
	return path == "/metrics" || path == "/ping" || strings.HasPrefix(path, "/static/")
}
