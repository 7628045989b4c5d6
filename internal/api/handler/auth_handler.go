package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/policedept/records-system/internal/core/ports"
)

// AuthHandler handles registration, login, logout, and account removal.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,notblank"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// registerFields is the strict allow-list for registration payloads.
var registerFields = []string{"name", "email", "password"}

type registerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register handles POST /register. Any key outside the allow-list rejects
// the whole payload; the password hash never appears in the response.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	fields, err := fieldSet(body)
	if err != nil {
		return err
	}
	if err := checkAllowed(fields, registerFields...); err != nil {
		return err
	}

	var req registerRequest
	if err := decodeJSON(body, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// Login handles POST /login. Unknown email and wrong password are
// indistinguishable in the response.
//
// @Summary      Login and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := decodeJSON(body, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}

// Logout handles POST /logout. The token scheme has no server-side session
// state, so logout is a client-side instruction and always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// DeleteUser handles DELETE /users/:id.
//
// @Summary      Delete a user account
// @Tags         auth
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
