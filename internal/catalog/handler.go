package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /foods?search=&limit=
// --------------------------------------------------
func (h *Handler) ListFoods(c *gin.Context) {
	search := c.Query("search")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var (
		items []FoodItem
		err   error
	)

	if search == "" {
		items, err = h.repo.List(c.Request.Context())
	} else {
		items, err = h.repo.Search(c.Request.Context(), search, limit)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load foods"})
		return
	}

	if items == nil {
		items = []FoodItem{}
	}

	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// POST /foods (nutritionist-defined product)
// --------------------------------------------------
func (h *Handler) CreateFood(c *gin.Context) {
	var item FoodItem

	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := ValidateItem(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.repo.Insert(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save food"})
		return
	}

	item.ID = id
	c.JSON(http.StatusCreated, item)
}
