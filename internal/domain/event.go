package domain

import "time"

// EventDetails is the public metadata of the single event this deployment serves.
// swagger:model EventDetails
type EventDetails struct {
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	ContactEmail string    `json:"contactEmail"`
}
