package middleware

import (
	"net/http"
	"strings"

	"needboard/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ActorIDHeader carries the caller-supplied identity. It is trusted as
// given; identity verification happens upstream of this service.
const ActorIDHeader = "X-Actor-ID"

const ctxActorIDKey = "actor_id"

// RequireIdentity rejects requests that carry no actor identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := strings.TrimSpace(c.GetHeader(ActorIDHeader))
		if actorID == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Actor identity required")
			return
		}

		c.Set(ctxActorIDKey, actorID)
		c.Next()
	}
}

func GetActorID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxActorIDKey)
	if !exists {
		return "", false
	}
	actorID, ok := value.(string)
	return actorID, ok && actorID != ""
}
