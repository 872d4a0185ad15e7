package response

import (
	"time"

	"meetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type BookingResponse struct {
	ID        uuid.UUID           `json:"id"`
	MeetingID uuid.UUID           `json:"meetingId"`
	UserEmail string              `json:"userEmail"`
	Date      string              `json:"date"`
	Slot      BookingSlotResponse `json:"slot"`
	CreatedAt time.Time           `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromBookingView(rm)
	}
	return resp
}
