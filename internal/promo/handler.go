package promo

import (
	"errors"
	"net/http"

	"github.com/SUDHEER176/Bookit/internal/api"
	"github.com/SUDHEER176/Bookit/internal/metrics"

	"github.com/gin-gonic/gin"
)

type ValidateRequest struct {
	Code     string   `json:"code"`
	Subtotal *float64 `json:"subtotal"`
}

type Handler struct {
	table Table
}

func NewHandler(table Table) *Handler {
	return &Handler{table: table}
}

// Validate godoc
// @Summary      Validate promo code
// @Description  Resolves a promo code and computes the discount amount when a subtotal is supplied.
// @Tags         promo
// @Accept       json
// @Produce      json
// @Param        request  body      ValidateRequest  true  "Promo code and optional subtotal"
// @Success      200      {object}  api.Success
// @Failure      400      {object}  api.Error
// @Router       /promo/validate [post]
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Promo code is required"))
		return
	}

	res, err := h.table.Validate(req.Code, req.Subtotal)
	if err != nil {
		metrics.RecordPromoValidation("invalid")
		switch {
		case errors.Is(err, ErrCodeRequired):
			c.JSON(http.StatusBadRequest, api.Fail("Promo code is required"))
		case errors.Is(err, ErrInvalidCode):
			c.JSON(http.StatusBadRequest, api.Fail("Invalid promo code"))
		default:
			c.JSON(http.StatusInternalServerError, api.FailWith("Error validating promo code", err))
		}
		return
	}

	metrics.RecordPromoValidation("valid")
	c.JSON(http.StatusOK, api.OK(res))
}
