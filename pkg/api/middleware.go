package api

import (
	"github.com/gin-gonic/gin"

	"github.com/openscribe/scribe/pkg/models"
)

// Identity headers set by the authenticating edge proxy. Token validation
// happens upstream; this service only consumes the resolved identity.
const (
	headerUserID = "X-User-ID"
	headerAnonID = "X-Anon-ID"
)

const callerContextKey = "scribe.caller"

// CallerMiddleware resolves the request identity into a models.Caller and
// stores it on the gin context. Requests with neither header still pass;
// handlers that need identity reject them via the service layer.
func CallerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := models.Caller{
			UserID: c.GetHeader(headerUserID),
			AnonID: c.GetHeader(headerAnonID),
		}
		caller.Authenticated = caller.UserID != ""
		c.Set(callerContextKey, caller)
		c.Next()
	}
}

// callerFrom reads the resolved caller off the gin context.
func callerFrom(c *gin.Context) models.Caller {
	if v, ok := c.Get(callerContextKey); ok {
		if caller, ok := v.(models.Caller); ok {
			return caller
		}
	}
	return models.Caller{}
}
