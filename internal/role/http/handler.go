package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reservalasala/room-booking-backend/internal/pkg/request"
	"github.com/reservalasala/room-booking-backend/internal/role"
)

type RoleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRoleResponse(r *role.Role) RoleResponse {
	return RoleResponse{
		ID:        r.ID,
		Name:      r.Name,
		IsAdmin:   role.IsAdmin(r.Name),
		CreatedAt: r.CreatedAt,
	}
}

type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

type Handler struct {
	service role.Service
}

func NewHandler(service role.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	roles, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list roles"})
		return
	}

	items := make([]RoleResponse, len(roles))
	for i, r := range roles {
		items[i] = NewRoleResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body NameRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Create(c.Request.Context(), body.Name)
	if err != nil {
		switch {
		case errors.Is(err, role.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, role.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create role"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewRoleResponse(r))
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

	r, err := h.service.Update(c.Request.Context(), uri.ID, body.Name)
	if err != nil {
		switch {
		case errors.Is(err, role.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		case errors.Is(err, role.ErrProtected):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, role.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, role.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update role"})
		}
		return
	}

	c.JSON(http.StatusOK, NewRoleResponse(r))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		switch {
		case errors.Is(err, role.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		case errors.Is(err, role.ErrProtected):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete role"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
