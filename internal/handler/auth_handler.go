package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"therapycare/internal/model"
	"therapycare/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a practitioner registration request.
type RegisterRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Specialty string `json:"specialty" validate:"required"`
	Phone     string `json:"phone"`
}

// LoginRequest represents a practitioner login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents an authentication response.
type TokenResponse struct {
	Token        string                    `json:"token"`
	Practitioner *model.PractitionerPublic `json:"practitioner"`
}

// Register godoc
// @Summary Register a new practitioner
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, practitioner, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  req.Password,
		Specialty: req.Specialty,
		Phone:     req.Phone,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{
		Token:        token,
		Practitioner: practitioner.Public(),
	})
}

// Login godoc
// @Summary Login practitioner
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, practitioner, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Token:        token,
		Practitioner: practitioner.Public(),
	})
}
