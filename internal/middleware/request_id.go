package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's if present.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(HeaderRequestID, id)
		ctx.Request.Header.Set(HeaderRequestID, id)
		ctx.Writer.Header().Set(HeaderRequestID, id)
		ctx.Next()
	}
}
