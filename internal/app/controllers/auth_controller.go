package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// AuthController handles registration and session lifecycle
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles new account creation
// @Summary Register a new student account
// @Description Creates an account with a unique username, a password of at least 6 characters and a grade of 4, 5 or 6, then opens a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration data"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.openSession(ctx, user.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromUser(user)))
}

// Login handles credential verification and session opening
// @Summary Log in
// @Description Verifies username and password and opens a session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Session opened"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.openSession(ctx, user.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromUser(user)))
}

// Logout closes the current session
// @Summary Log out
// @Description Clears the session cookie. Succeeds whether or not a session was open.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Session closed"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	session := sessions.Default(ctx)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	if err := session.Save(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "logged out"}))
}

// Me returns the current account, or null data when no session is open
// @Summary Current account
// @Description Returns the account behind the session cookie. Responds with null data instead of an error when no session is open.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Current account or null"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	session := sessions.Default(ctx)
	userID, ok := session.Get(middleware.SessionUserIDKey).(int64)
	if !ok || userID == 0 {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
		return
	}

	user, err := c.authService.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		// A stale session reads as no session
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromUser(user)))
}

func (c *AuthController) openSession(ctx *gin.Context, userID int64) error {
	session := sessions.Default(ctx)
	session.Set(middleware.SessionUserIDKey, userID)
	return session.Save()
}
