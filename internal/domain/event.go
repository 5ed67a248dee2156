package domain

import (
	"fmt"
	"time"
)

// EventStatus tells the front end whether an event is still upcoming.
type EventStatus string

const (
	EventUpcoming EventStatus = "Upcoming"
	EventPast     EventStatus = "Past"
)

// DefaultEventImage is the CSS gradient class used when no image is given.
const DefaultEventImage = "from-blue-500 to-indigo-500"

// Event is a scheduled tourism activity.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Date        string      `json:"date"`
	Time        string      `json:"time"` // free-text range, e.g. "08:00 - 14:00"
	Location    string      `json:"location"`
	Category    string      `json:"category"`
	Attendees   string      `json:"attendees"`
	Status      EventStatus `json:"status"`
	Image       string      `json:"image"` // gradient class or base64 data
	Description string      `json:"description,omitempty"`
}

// NewEventID derives an event identifier from the creation time.
func NewEventID(now time.Time) string {
	return fmt.Sprintf("e%d", now.UnixMilli())
}
