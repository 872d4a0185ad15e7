package request

type SlotRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type CreateMeetingRequest struct {
	Title       string        `json:"title" binding:"required"`
	Link        string        `json:"link"`
	Description string        `json:"description"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	FutureDates bool          `json:"futureDates"`
	Slots       []SlotRequest `json:"slots" binding:"required,min=1,dive"`
}
