package booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SUDHEER176/Bookit/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Create booking
// @Description  Validates the checkout payload and persists a confirmed booking.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Booking payload"
// @Success      201      {object}  api.Success
// @Failure      400      {object}  api.Error
// @Failure      500      {object}  api.Error
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Missing required fields"))
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var missing *MissingFieldsError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, api.Fail("Missing required fields: "+strings.Join(missing.Fields, ", ")))
		case errors.Is(err, ErrInvalidExperienceID):
			c.JSON(http.StatusBadRequest, api.Fail("Invalid experienceId. Expected a UUID from /api/experiences response."))
		case errors.Is(err, ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, api.Fail("Quantity must be a positive integer"))
		default:
			c.JSON(http.StatusInternalServerError, api.FailWith("Error creating booking", err))
		}
		return
	}

	c.JSON(http.StatusCreated, api.OK(b))
}

// Get godoc
// @Summary      Get booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  Booking
// @Failure      404  {object}  api.Error
// @Failure      500  {object}  api.Error
// @Router       /bookings/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.Fail("Booking not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, api.FailWith("Error fetching booking", err))
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListByUser godoc
// @Summary      List bookings for a user
// @Description  Returns the user's bookings, newest first.
// @Tags         bookings
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {array}   Booking
// @Failure      500     {object}  api.Error
// @Router       /bookings/user/{userId} [get]
func (h *Handler) ListByUser(c *gin.Context) {
	bookings, err := h.service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.FailWith("Error fetching bookings", err))
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateStatus godoc
// @Summary      Update booking status
// @Description  Sets the booking status; any transition between valid statuses is accepted.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Booking ID"
// @Param        request  body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  Booking
// @Failure      400      {object}  api.Error
// @Failure      404      {object}  api.Error
// @Failure      500      {object}  api.Error
// @Router       /bookings/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Status is required"))
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.Fail("Status must be one of pending, confirmed, cancelled"))
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, api.Fail("Booking not found"))
		default:
			c.JSON(http.StatusInternalServerError, api.FailWith("Error updating booking", err))
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
