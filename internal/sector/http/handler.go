package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reservalasala/room-booking-backend/internal/pkg/request"
	"github.com/reservalasala/room-booking-backend/internal/sector"
)

type SectorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSectorResponse(s *sector.Sector) SectorResponse {
	return SectorResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}
}

type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

type Handler struct {
	service sector.Service
}

func NewHandler(service sector.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	sectors, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sectors"})
		return
	}

	items := make([]SectorResponse, len(sectors))
	for i, s := range sectors {
		items[i] = NewSectorResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body NameRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Create(c.Request.Context(), body.Name)
	if err != nil {
		switch {
		case errors.Is(err, sector.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, sector.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sector"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewSectorResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body NameRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Update(c.Request.Context(), uri.ID, body.Name)
	if err != nil {
		switch {
		case errors.Is(err, sector.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "sector not found"})
		case errors.Is(err, sector.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, sector.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sector"})
		}
		return
	}

	c.JSON(http.StatusOK, NewSectorResponse(s))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		if errors.Is(err, sector.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sector not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sector"})
		return
	}

	c.Status(http.StatusNoContent)
}
