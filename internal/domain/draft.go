package domain

import (
	"encoding/json"
	"time"
)

// ScheduleDraft is a generated schedule that has not been published yet.
type ScheduleDraft struct {
	ID           string        `json:"id"`
	WeekOf       time.Time     `json:"weekOf"`
	Seed         *int64        `json:"seed"`
	Availability Availability  `json:"availability"`
	Holidays     Holidays      `json:"holidays"`
	Schedule     *Schedule     `json:"schedule"`
	PersonTasks  PersonTaskLog `json:"personTasks"`
	Statistics   *Statistics   `json:"statistics"`
	Conflicts    []string      `json:"conflicts"`
	Warnings     []string      `json:"warnings"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// MarshalBinary lets go-redis store a draft directly.
func (d *ScheduleDraft) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}
