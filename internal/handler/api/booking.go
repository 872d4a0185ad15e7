package api

import (
	"errors"
	"net/http"

	"meetbook/internal/domain/user"
	reqdto "meetbook/internal/handler/dto/request"
	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/handler/httperr"
	"meetbook/internal/handler/middleware"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"
	"meetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase commands.BookingCommands
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(bookingUseCase commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		bookingQueries: bookingQueries,
	}
}

// @Summary Reserve slot
// @Description Book a meeting slot for a date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.bookingUseCase.Reserve(c.Request.Context(), req, identity)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid meeting or slot", nil)
		case errors.Is(err, commands.ErrSlotAlreadyBooked):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot already booked for this date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), identity.Email.Value())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Description Cancel a booking the caller created
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.cancel(c, func(ctx *gin.Context, id uuid.UUID, identity user.Identity) error {
		return h.bookingUseCase.CancelOwn(ctx.Request.Context(), id, identity)
	})
}

// @Summary Cancel booking as meeting owner
// @Description Cancel any booking on a meeting the caller owns
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meeting/booking/{id} [delete]
func (h *BookingHandler) CancelAsOwner(c *gin.Context) {
	h.cancel(c, func(ctx *gin.Context, id uuid.UUID, identity user.Identity) error {
		return h.bookingUseCase.CancelAsMeetingOwner(ctx.Request.Context(), id, identity)
	})
}

func (h *BookingHandler) cancel(c *gin.Context, do func(*gin.Context, uuid.UUID, user.Identity) error) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := do(c, id, identity); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to cancel this booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
