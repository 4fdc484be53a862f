package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/api/middleware"
	"github.com/casaluna/hotel-pms/internal/core/access"
	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	roles       middleware.RoleResolver
}

func NewAuthHandler(authService ports.AuthService, roles middleware.RoleResolver) *AuthHandler {
	return &AuthHandler{authService: authService, roles: roles}
}

type signUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"max=120"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	DisplayName string `json:"display_name" validate:"max=120"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
}

type passwordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type signInResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      *domain.Identity `json:"user"`
}

type meResponse struct {
	User *domain.Identity `json:"user"`
	Role *domain.Role     `json:"role"`
	Menu []access.Route   `json:"menu"`
}

// SignUp creates a new account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account details"
// @Success      201   {object}  domain.Identity
// @Failure      400   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	identity, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, identity)
}

// SignIn authenticates with email and password and opens a session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, signInResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, User: res.Identity})
}

// SignOut ends the caller's session.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorBody
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.authService.SignOut(c.Request().Context(), sess.SessionID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed-in identity, its staff role and the routes it may
// open. Role is null when no staff record matches the email.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorBody
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	role, err := h.roles.Resolve(c.Request().Context(), sess.Identity)
	if err != nil {
		return err
	}

	resp := meResponse{User: sess.Identity, Role: role.Role, Menu: []access.Route{}}
	if role.Role != nil {
		resp.Menu = access.Menu(*role.Role)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateProfile changes the display name and photo.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile"
// @Success      200   {object}  domain.Identity
// @Failure      401   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /v1/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	identity, err := h.authService.UpdateProfile(c.Request().Context(), sess.Identity.ID, req.DisplayName, req.PhotoURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// UpdatePassword changes the password after re-checking the current one.
//
// @Summary      Change password
// @Tags         profile
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  passwordRequest  true  "Current and new password"
// @Success      204
// @Failure      401   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /v1/profile/password [put]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req passwordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authService.UpdatePassword(c.Request().Context(), sess.Identity.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
