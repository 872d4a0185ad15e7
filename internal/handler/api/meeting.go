package api

import (
	"errors"
	"net/http"

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

type MeetingHandler struct {
	meetingUseCase commands.MeetingCommands
	meetingQueries queries.MeetingQueries
	bookingQueries queries.BookingQueries
}

func NewMeetingHandler(
	meetingUseCase commands.MeetingCommands,
	meetingQueries queries.MeetingQueries,
	bookingQueries queries.BookingQueries,
) *MeetingHandler {
	return &MeetingHandler{
		meetingUseCase: meetingUseCase,
		meetingQueries: meetingQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary Create meeting
// @Description Create a meeting with its bookable slots
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMeetingRequest true "Meeting request"
// @Success 201 {object} resdto.MeetingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /meetings [post]
func (h *MeetingHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateMeetingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.meetingUseCase.Create(c.Request.Context(), req, identity)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid meeting definition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMeetingView(view))
}

// @Summary List own meetings
// @Description List the meetings owned by the caller
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MeetingResponse
// @Failure 401 {object} map[string]string
// @Router /meetings [get]
func (h *MeetingHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	views, err := h.meetingQueries.ListByOwner(c.Request.Context(), identity.Email.Value())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMeetingViews(views))
}

// @Summary Get meeting
// @Description Get a meeting by its id
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 200 {object} resdto.MeetingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid meeting ID format", nil)
		return
	}

	view, err := h.meetingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMeetingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMeetingView(view))
}

// @Summary Get shared meeting
// @Description Get a meeting through its invite code
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite code"
// @Success 200 {object} resdto.SharedMeetingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meeting/{id} [get]
func (h *MeetingHandler) GetByCode(c *gin.Context) {
	// The param is named :id to stay compatible with the sibling
	// /meeting/:id/... routes; its value is the invite code.
	code := c.Param("id")

	view, err := h.meetingQueries.GetByCode(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMeetingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSharedMeetingView(view))
}

// @Summary Available slots
// @Description List the slots still free on a date
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Param date path string true "Date"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meeting/{id}/slots/{date} [get]
func (h *MeetingHandler) AvailableSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid meeting ID format", nil)
		return
	}

	views, err := h.meetingQueries.AvailableSlots(c.Request.Context(), id, c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMeetingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary List meeting bookings
// @Description List every booking on a meeting the caller owns
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meeting/{id}/bookings [get]
func (h *MeetingHandler) Bookings(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid meeting ID format", nil)
		return
	}

	views, err := h.bookingQueries.ListByMeeting(c.Request.Context(), id, identity)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMeetingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting not found", nil)
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the meeting owner", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Delete meeting
// @Description Delete a meeting with its slots and bookings
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid meeting ID format", nil)
		return
	}

	if err := h.meetingUseCase.Delete(c.Request.Context(), id, identity); err != nil {
		switch {
		case errors.Is(err, commands.ErrMeetingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the meeting owner", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
