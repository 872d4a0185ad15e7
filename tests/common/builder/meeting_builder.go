//go:build unit || e2e

package builder

import (
	"time"

	"meetbook/internal/domain/meeting"
	"meetbook/internal/domain/user"
	"meetbook/internal/usecase/queries"
	"meetbook/internal/usecase/shared"
)

type MeetingBuilder struct {
	Title       string
	Link        string
	Description string
	StartDate   string
	EndDate     string
	FutureDates bool
	Slots       []meeting.SlotTimes
	OwnerEmail  string
	Now         time.Time
}

func NewMeetingBuilder() *MeetingBuilder {
	return &MeetingBuilder{
		Title:       "Weekly Sync",
		Link:        "https://meet.example.com/weekly",
		Description: "Weekly catch-up",
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-31",
		FutureDates: true,
		Slots: []meeting.SlotTimes{
			{StartTime: "10:00", EndTime: "10:30"},
			{StartTime: "11:00", EndTime: "11:30"},
		},
		OwnerEmail: "owner@example.com",
		Now:        time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (m *MeetingBuilder) With(mutate func(*MeetingBuilder)) *MeetingBuilder {
	mutate(m)
	return m
}

func (m *MeetingBuilder) BuildDomain() (*meeting.Meeting, error) {
	owner, err := user.NewEmail(m.OwnerEmail)
	if err != nil {
		return nil, err
	}
	return meeting.NewMeeting(
		m.Title, m.Link, m.Description,
		meeting.Window{StartDate: m.StartDate, EndDate: m.EndDate},
		m.FutureDates,
		m.Slots,
		owner,
		m.Now,
	)
}

func (m *MeetingBuilder) BuildView() *queries.MeetingView {
	entity, err := m.BuildDomain()
	if err != nil {
		panic("builder must hold a valid meeting: " + err.Error())
	}

	slots := make([]queries.SlotView, len(entity.Slots()))
	for i, s := range entity.Slots() {
		slots[i] = queries.SlotView{ID: s.ID(), StartTime: s.StartTime(), EndTime: s.EndTime()}
	}

	return &queries.MeetingView{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Link:        entity.Link(),
		Description: entity.Description(),
		StartDate:   entity.Window().StartDate,
		EndDate:     entity.Window().EndDate,
		FutureDates: entity.FutureDates(),
		Slots:       slots,
		Booked:      []string{},
		Code:        entity.Code(),
		OwnerEmail:  entity.OwnerEmail().Value(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func (m *MeetingBuilder) BuildSnapshot() *shared.MeetingSnapshot {
	entity, err := m.BuildDomain()
	if err != nil {
		panic("builder must hold a valid meeting: " + err.Error())
	}

	slots := make([]shared.SlotSnapshot, len(entity.Slots()))
	for i, s := range entity.Slots() {
		slots[i] = shared.SlotSnapshot{ID: s.ID(), StartTime: s.StartTime(), EndTime: s.EndTime()}
	}

	return &shared.MeetingSnapshot{
		ID:         entity.ID(),
		OwnerEmail: entity.OwnerEmail().Value(),
		Code:       entity.Code(),
		Slots:      slots,
	}
}

func (m *MeetingBuilder) BuildCreateRequestMap() map[string]any {
	slots := make([]map[string]any, len(m.Slots))
	for i, s := range m.Slots {
		slots[i] = map[string]any{"startTime": s.StartTime, "endTime": s.EndTime}
	}
	return map[string]any{
		"title":       m.Title,
		"link":        m.Link,
		"description": m.Description,
		"startDate":   m.StartDate,
		"endDate":     m.EndDate,
		"futureDates": m.FutureDates,
		"slots":       slots,
	}
}

func (m *MeetingBuilder) WithTitle(title string) *MeetingBuilder {
	m.Title = title
	return m
}

func (m *MeetingBuilder) WithOwner(email string) *MeetingBuilder {
	m.OwnerEmail = email
	return m
}

func (m *MeetingBuilder) WithSlots(slots ...meeting.SlotTimes) *MeetingBuilder {
	m.Slots = slots
	return m
}
