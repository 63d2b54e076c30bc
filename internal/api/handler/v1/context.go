package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agbanzy/apcconnctv2-sub002/internal/api/handler/v1/response"
	"github.com/agbanzy/apcconnctv2-sub002/internal/api/middleware"
)

// Actor is the authenticated caller as established by the JWT
// middleware. Identity and role are claims issued by the membership
// platform; this service only consumes them.
type Actor struct {
	UserID uint
	Role   string
}

func getActorFromContext(ctx *gin.Context) (Actor, *response.Err) {
	userID, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return Actor{}, response.ErrUnauthorized(errors.New("missing actor identity"))
	}

	id, ok := userID.(uint)
	if !ok || id == 0 {
		return Actor{}, response.ErrUnauthorized(errors.New("invalid actor identity"))
	}

	return Actor{
		UserID: id,
		Role:   ctx.GetString(middleware.ContextKeyRole),
	}, nil
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
