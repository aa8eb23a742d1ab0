package actor

import (
	"net/http"

	res "github.com/ChokeGuy/exchange-office/pkg/http_response"
	"github.com/gin-gonic/gin"
)

const (
	// ActorHeader carries the authenticated back-office user, set by the
	// gateway in front of this service.
	ActorHeader = "X-Actor-ID"

	ActorKey = "actor_id"
)

// ActorMiddleWare requires an acting user on every mutating route so each
// transition can be attributed.
func ActorMiddleWare() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(ActorHeader)
		if id == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized,
				res.ErrorResponse(http.StatusUnauthorized, "missing "+ActorHeader+" header"))
			return
		}

		ctx.Set(ActorKey, id)
		ctx.Next()
	}
}

// FromContext returns the acting user set by the middleware.
func FromContext(ctx *gin.Context) string {
	return ctx.GetString(ActorKey)
}
