package experience

import (
	"errors"
	"net/http"

	"github.com/SUDHEER176/Bookit/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      List experiences
// @Description  Lists the catalog, optionally filtered by exact category and location substring.
// @Tags         experiences
// @Produce      json
// @Param        category  query     string  false  "Exact category match"
// @Param        location  query     string  false  "Case-insensitive location substring"
// @Success      200       {object}  api.Success
// @Failure      500       {object}  api.Error
// @Router       /experiences [get]
func (h *Handler) List(c *gin.Context) {
	filter := Filter{
		Category: c.Query("category"),
		Location: c.Query("location"),
	}

	experiences, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.FailWith("Error fetching experiences", err))
		return
	}

	c.JSON(http.StatusOK, api.OK(experiences))
}

// Get godoc
// @Summary      Get experience
// @Description  Returns one experience together with its available slots.
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  api.Success
// @Failure      404  {object}  api.Error
// @Failure      500  {object}  api.Error
// @Router       /experiences/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.GetWithAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.Fail("Experience not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, api.FailWith("Error fetching experience", err))
		return
	}

	c.JSON(http.StatusOK, api.OK(detail))
}

// Create godoc
// @Summary      Create experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Experience payload"
// @Success      201      {object}  api.Success
// @Failure      400      {object}  api.Error
// @Failure      500      {object}  api.Error
// @Router       /experiences [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Missing required fields"))
		return
	}

	exp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.FailWith("Error creating experience", err))
		return
	}

	c.JSON(http.StatusCreated, api.OK(exp))
}

// Update godoc
// @Summary      Update experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Experience ID"
// @Param        request  body      UpdateRequest  true  "Experience payload"
// @Success      200      {object}  api.Success
// @Failure      400      {object}  api.Error
// @Failure      404      {object}  api.Error
// @Failure      500      {object}  api.Error
// @Router       /experiences/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Missing required fields"))
		return
	}

	exp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.Fail("Experience not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, api.FailWith("Error updating experience", err))
		return
	}

	c.JSON(http.StatusOK, api.OK(exp))
}

// Delete godoc
// @Summary      Delete experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  api.Message
// @Failure      500  {object}  api.Error
// @Router       /experiences/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, api.FailWith("Error deleting experience", err))
		return
	}

	c.JSON(http.StatusOK, api.Done("Experience deleted successfully"))
}
