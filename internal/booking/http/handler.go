package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reservalasala/room-booking-backend/internal/auth"
	"github.com/reservalasala/room-booking-backend/internal/booking"
	"github.com/reservalasala/room-booking-backend/internal/pkg/request"
	"github.com/reservalasala/room-booking-backend/internal/pkg/response"
	"github.com/reservalasala/room-booking-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// checkIsAdmin helper checks if the current user holds the administrator role
func (h *Handler) checkIsAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsAdmin()
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	// Access Control Logic
	currentUserID := auth.GetUserID(c)
	isAdmin := h.checkIsAdmin(c, currentUserID)

	filterUserID := currentUserID

	// If Admin, they can see all or filter by specific user
	if isAdmin {
		filterUserID = req.UserID // can be empty to show all
	}
	// If Normal User, forced to see only their own

	filter := booking.Filter{
		UserID:    filterUserID,
		RoomID:    req.RoomID,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.DateFrom != "" {
		t, _ := time.Parse(dateLayout, req.DateFrom)
		filter.DateFrom = &t
	}
	if req.DateTo != "" {
		t, _ := time.Parse(dateLayout, req.DateTo)
		filter.DateTo = &t
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	req := booking.CreateRequest{
		UserID:    userID,
		RoomID:    body.RoomID,
		Date:      body.ParsedDate(),
		StartHour: body.StartHour,
		Duration:  body.Duration,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Access Check: User owns booking OR Admin
	userID := auth.GetUserID(c)
	if userID != b.UserID && !h.checkIsAdmin(c, userID) {
		response.Error(c, booking.ErrPermissionDenied)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)
	isAdmin := h.checkIsAdmin(c, userID)

	if err := h.service.Cancel(c.Request.Context(), id, userID, isAdmin); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// WeekGrid returns the Monday-to-Friday availability grid of a room for the
// week containing the requested date.
func (h *Handler) WeekGrid(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var req WeekGridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	ref := time.Now()
	if req.Date != "" {
		ref, _ = time.Parse(dateLayout, req.Date)
	}

	grid, err := h.service.WeekGrid(c.Request.Context(), uri.ID, ref, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewWeekGridResponse(grid))
}
