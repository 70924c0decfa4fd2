package domain

import "time"

// PublishedSchedule is an archived copy of a schedule. It is never fed back into generation.
type PublishedSchedule struct {
	ID          int64     `json:"id"`
	WeekOf      time.Time `json:"weekOf"`
	Seed        *int64    `json:"seed"`
	Schedule    *Schedule `json:"schedule"`
	PublishedBy int64     `json:"publishedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
