package creations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /creations
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	var creation Creation

	if err := c.ShouldBindJSON(&creation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	creation.OwnerID = c.GetString("userID")

	if err := h.service.Save(c.Request.Context(), &creation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, creation)
}

// --------------------------------------------------
// GET /creations?type=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(
		c.Request.Context(),
		c.GetString("userID"),
		c.Query("type"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if list == nil {
		list = []*Creation{}
	}

	c.JSON(http.StatusOK, list)
}

// --------------------------------------------------
// GET /creations/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	creation, err := h.service.Get(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
	)
	if err != nil {
		if errors.Is(err, ErrCreationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "creation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load creation"})
		return
	}

	c.JSON(http.StatusOK, creation)
}
