package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dtjokroa/Cat-Mouse-213/service/i"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request; server errors are logged as errors.
func RequestLogger(l i.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		msg := fmt.Sprintf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
		if c.Writer.Status() >= http.StatusInternalServerError {
			l.Error(msg)
			return
		}
		l.Info(msg)
	}
}

// Recovery turns a handler panic into a 500 and logs it.
func Recovery(l i.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		l.Error(fmt.Sprintf("panic serving %s: %v", c.Request.URL.Path, recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
