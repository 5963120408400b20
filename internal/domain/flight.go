package domain

import (
	"fmt"
	"time"
)

// Namespace qualifies the Flight and Aircraft type names.
const Namespace = "org.acme.airline.flight"

const (
	FlightType   = Namespace + ".Flight"
	AircraftType = Namespace + ".Aircraft"
)

// Route is owned by exactly one Flight.
type Route struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Schedule    time.Time `json:"schedule"`
}

// AircraftRef points at an Aircraft by identifier. It never embeds the Aircraft.
type AircraftRef struct {
	ID string `json:"id"`
}

type Flight struct {
	ID                string       `json:"flight_id"`
	FlightNumber      string       `json:"flight_number"`
	AliasFlightNumber []string     `json:"alias_flight_number"`
	Route             Route        `json:"route"`
	Aircraft          *AircraftRef `json:"aircraft,omitempty"`
}

// NewFlight builds an unassigned flight with an empty alias list.
func NewFlight(id, flightNumber string, route Route) Flight {
	return Flight{
		ID:                id,
		FlightNumber:      flightNumber,
		AliasFlightNumber: []string{},
		Route:             route,
	}
}

// Assigned reports whether an aircraft reference is set.
func (f Flight) Assigned() bool {
	return f.Aircraft != nil
}

// AssignAircraft sets the aircraft reference, replacing any previous one.
func (f *Flight) AssignAircraft(aircraftID string) {
	f.Aircraft = &AircraftRef{ID: aircraftID}
}

// AircraftID returns the referenced aircraft identifier or "".
func (f Flight) AircraftID() string {
	if f.Aircraft == nil {
		return ""
	}
	return f.Aircraft.ID
}

type Aircraft struct {
	ID                 string `json:"aircraft_id"`
	FirstClassSeats    int    `json:"first_class_seats"`
	BusinessClassSeats int    `json:"business_class_seats"`
	EconomyClassSeats  int    `json:"economy_class_seats"`
}

// GenerateFlightID derives {flightNumber}-{MM}-{DD}-{YY} from the calendar
// fields of schedule in its own location. The same flight number on the
// same day yields the same ID.
func GenerateFlightID(flightNumber string, schedule time.Time) string {
	return fmt.Sprintf("%s-%02d-%02d-%02d", flightNumber, int(schedule.Month()), schedule.Day(), schedule.Year()%100)
}

// ValidateSchedule fails with ErrScheduleInPast when scheduled is before now.
func ValidateSchedule(scheduled, now time.Time) error {
	if scheduled.Before(now) {
		return ErrScheduleInPast
	}
	return nil
}
