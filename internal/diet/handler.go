package diet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutriplan/internal/catalog"
	"nutriplan/internal/core"
)

type Handler struct {
	registry    *Registry
	catalogRepo catalog.Repository
	patients    core.PatientReader
}

func NewHandler(
	registry *Registry,
	catalogRepo catalog.Repository,
	patients core.PatientReader,
) *Handler {
	return &Handler{
		registry:    registry,
		catalogRepo: catalogRepo,
		patients:    patients,
	}
}

// --------------------------------------------------
// POST /diet/sessions
// --------------------------------------------------
func (h *Handler) CreateSession(c *gin.Context) {
	var req struct {
		Name string   `json:"name"`
		Tags []string `json:"tags"`
	}
	_ = c.ShouldBindJSON(&req)

	items, err := h.catalogRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load catalog"})
		return
	}

	session := NewSession(c.GetString("userID"), items)
	if req.Name != "" {
		session.SetName(req.Name)
	}
	if req.Tags != nil {
		session.SetTags(req.Tags)
	}
	h.registry.Add(session)

	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"config":     session.Config(),
		"groups":     session.Groups(),
	})
}

// --------------------------------------------------
// GET /diet/sessions/:id
// --------------------------------------------------
func (h *Handler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"config":     session.Config(),
		"groups":     session.Groups(),
		"included":   session.Resolve(),
	})
}

// --------------------------------------------------
// POST /diet/sessions/:id/favorites
// --------------------------------------------------
func (h *Handler) ToggleFavorite(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	name, ok := bindProduct(c)
	if !ok {
		return
	}

	tag, err := session.ToggleFavorite(name)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": name, "status": tag})
}

// --------------------------------------------------
// POST /diet/sessions/:id/removals
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	name, ok := bindProduct(c)
	if !ok {
		return
	}

	if err := session.RemoveItem(name); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": name, "status": StatusRemoved})
}

// --------------------------------------------------
// POST /diet/sessions/:id/restore
// --------------------------------------------------
func (h *Handler) RestoreItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	name, ok := bindProduct(c)
	if !ok {
		return
	}

	if err := session.RestoreItem(name); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": name})
}

// --------------------------------------------------
// POST /diet/sessions/:id/items
// --------------------------------------------------
func (h *Handler) AddManualItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		Group string           `json:"group"`
		Item  catalog.FoodItem `json:"item"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := session.AddManualItem(req.Item, req.Group); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"groups": session.Groups()})
}

// --------------------------------------------------
// POST /diet/sessions/:id/groups
// --------------------------------------------------
func (h *Handler) CreateGroup(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := session.CreateCustomGroup(req.Name); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"groups": session.Groups()})
}

// --------------------------------------------------
// DELETE /diet/sessions/:id/groups/:name
// --------------------------------------------------
func (h *Handler) DeleteGroup(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.DeleteGroup(c.Param("name")); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": session.Groups()})
}

// --------------------------------------------------
// PATCH /diet/sessions/:id/constraints
// --------------------------------------------------
func (h *Handler) SetConstraint(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		ID     string `json:"id"`
		Active bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "constraint id required"})
		return
	}

	session.SetConstraintActive(req.ID, req.Active)
	c.JSON(http.StatusOK, gin.H{"config": session.Config()})
}

// --------------------------------------------------
// POST /diet/sessions/:id/constraints
// --------------------------------------------------
func (h *Handler) AddCustomConstraint(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := session.AddCustomConstraint(req.ID, req.Label); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"config": session.Config()})
}

// --------------------------------------------------
// PATCH /diet/sessions/:id/config
// --------------------------------------------------
func (h *Handler) UpdateConfig(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		Name             *string  `json:"name"`
		Tags             []string `json:"tags"`
		FavoritesVisible *bool    `json:"favorites_visible"`
		TimeView         *string  `json:"time_view"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Name != nil {
		session.SetName(*req.Name)
	}
	if req.Tags != nil {
		session.SetTags(req.Tags)
	}
	if req.FavoritesVisible != nil {
		session.SetFavoritesVisible(*req.FavoritesVisible)
	}
	if req.TimeView != nil {
		view, err := ParseTimeView(*req.TimeView)
		if err != nil {
			respondEngineError(c, err)
			return
		}
		_ = session.SetTimeView(view)
	}

	c.JSON(http.StatusOK, gin.H{"config": session.Config()})
}

// --------------------------------------------------
// POST /diet/sessions/:id/patient
// --------------------------------------------------
func (h *Handler) LinkPatient(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req struct {
		PatientID string `json:"patient_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PatientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id required"})
		return
	}

	profile, err := h.patients.GetProfile(
		c.Request.Context(),
		c.GetString("userID"),
		req.PatientID,
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}

	session.LinkPatient(profile.ID, profile.DietRestrictions)

	c.JSON(http.StatusOK, gin.H{
		"patient": profile.FullName,
		"config":  session.Config(),
	})
}

// --------------------------------------------------
// POST /diet/sessions/:id/reset
// --------------------------------------------------
func (h *Handler) ResetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Reset()
	c.JSON(http.StatusOK, gin.H{
		"config": session.Config(),
		"groups": session.Groups(),
	})
}

// --------------------------------------------------
// GET /diet/sessions/:id/snapshot
// --------------------------------------------------
func (h *Handler) GetSnapshot(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// --------------------------------------------------
// POST /diet/sessions/:id/import
// --------------------------------------------------
func (h *Handler) ImportDocument(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid diet document"})
		return
	}

	session.ImportDocument(doc)
	c.JSON(http.StatusOK, gin.H{
		"config": session.Config(),
		"groups": session.Groups(),
	})
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (h *Handler) session(c *gin.Context) (*Session, bool) {
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

func bindProduct(c *gin.Context) (string, bool) {
	var req struct {
		Product string `json:"product"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product required"})
		return "", false
	}
	return req.Product, true
}

func respondEngineError(c *gin.Context, err error) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Reason})
		return
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
