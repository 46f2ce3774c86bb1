package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutriplan/internal/diet"
)

type Handler struct {
	service  *Service
	registry *diet.Registry
}

func NewHandler(service *Service, registry *diet.Registry) *Handler {
	return &Handler{service: service, registry: registry}
}

// --------------------------------------------------
// GET /cart/sessions/:id/totals?view=
// --------------------------------------------------
func (h *Handler) GetTotals(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var view diet.TimeView
	if raw := c.Query("view"); raw != "" {
		parsed, err := diet.ParseTimeView(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		view = parsed
	}

	c.JSON(http.StatusOK, h.service.Totals(session, view))
}

// --------------------------------------------------
// PATCH /cart/sessions/:id/items
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		Product         string  `json:"product"`
		MonthlyQuantity float64 `json:"monthly_quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product required"})
		return
	}

	if err := h.service.UpdateQuantity(session, req.Product, req.MonthlyQuantity); err != nil {
		var validation *diet.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Reason})
			return
		}
		var notFound *diet.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.Totals(session, ""))
}

// --------------------------------------------------
// GET /cart/sessions/:id/suggestion
// --------------------------------------------------
func (h *Handler) GetSuggestion(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	suggestion := h.service.Suggestion(
		c.Request.Context(),
		c.GetString("userID"),
		session,
	)

	c.JSON(http.StatusOK, suggestion)
}

func (h *Handler) session(c *gin.Context) (*diet.Session, bool) {
	session, ok := h.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}

	if session.OwnerID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}

	return session, true
}
