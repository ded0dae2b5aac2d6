package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"therapycare/internal/service"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents an inbound contact message.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact godoc
// @Summary Submit a contact message
// @Tags public
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.contactService.Submit(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "message received successfully",
		"id":      msg.ID,
	})
}
