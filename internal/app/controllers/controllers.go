package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/middleware"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name).WithField(name)
	}
	return id, nil
}

// requireIdentity returns the identity resolved by the auth middleware. A
// missing identity on a guarded route means the route wiring is wrong, but
// it is still surfaced to the client as an authentication failure.
func requireIdentity(ctx *gin.Context) (models.Identity, bool) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrAuthenticationRequired)
	}
	return identity, ok
}
