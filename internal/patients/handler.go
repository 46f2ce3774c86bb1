package patients

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
// POST /patients
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var patient Patient

	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patient.OwnerID = c.GetString("userID")

	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// --------------------------------------------------
// GET /patients
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load patients"})
		return
	}

	if list == nil {
		list = []*Patient{}
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

// --------------------------------------------------
// GET /patients/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	patient, err := h.service.Get(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
	)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load patient"})
		return
	}

	c.JSON(http.StatusOK, patient)
}
