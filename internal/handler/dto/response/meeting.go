package response

import (
	"time"

	"meetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type MeetingResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Link        string         `json:"link"`
	Description string         `json:"description"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	FutureDates bool           `json:"futureDates"`
	Slots       []SlotResponse `json:"slots"`
	Booked      []string       `json:"booked"`
	Code        string         `json:"code"`
	OwnerEmail  string         `json:"ownerEmail"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// SharedMeetingResponse is the invite-code view. It hides the owner's email
// and the raw booked keys; invitees only ever see slots per date.
type SharedMeetingResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Link        string         `json:"link"`
	Description string         `json:"description"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	FutureDates bool           `json:"futureDates"`
	Slots       []SlotResponse `json:"slots"`
}

func FromMeetingView(rm *queries.MeetingView) *MeetingResponse {
	var resp MeetingResponse
	_ = copier.Copy(&resp, rm)
	if resp.Booked == nil {
		resp.Booked = []string{}
	}
	return &resp
}

func FromMeetingViews(rms []*queries.MeetingView) []*MeetingResponse {
	resp := make([]*MeetingResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromMeetingView(rm)
	}
	return resp
}

func FromSharedMeetingView(rm *queries.MeetingView) *SharedMeetingResponse {
	var resp SharedMeetingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromSlotViews(rms []queries.SlotView) []SlotResponse {
	resp := make([]SlotResponse, len(rms))
	for i, rm := range rms {
		resp[i] = SlotResponse{ID: rm.ID, StartTime: rm.StartTime, EndTime: rm.EndTime}
	}
	return resp
}
