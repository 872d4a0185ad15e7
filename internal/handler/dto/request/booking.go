package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	MeetingID uuid.UUID `json:"meetingId" binding:"required"`
	SlotID    string    `json:"slotId" binding:"required"`
	Date      string    `json:"date" binding:"required"`
}
