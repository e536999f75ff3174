package httpx

import (
	"github.com/Gunvolt24/pixelcraft/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID — заголовок корреляции запросов.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen — более длинный X-Request-ID от клиента заменяется своим.
const maxRequestIDLen = 128

// RequestIDMiddleware — X-Request-ID клиента (если он разумный) или новый UUID;
// id попадает в контекст запроса (его пишет логгер) и в ответный заголовок.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if !acceptableRequestID(requestID) {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)

		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// acceptableRequestID — непустой, не длиннее maxRequestIDLen, только печатный ASCII.
func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
