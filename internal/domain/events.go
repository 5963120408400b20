package domain

const (
	FlightCreatedEventType    = "FlightCreated"
	AircraftAssignedEventType = "AircraftAssigned"
)

// Event is implemented only by the event types in this file.
type Event interface {
	EventType() string
	// FlightKey is the flight the event is about.
	FlightKey() string
	isEvent()
}

type FlightCreated struct {
	FlightID string `json:"flight_id"`
}

func NewFlightCreated(flightID string) FlightCreated {
	return FlightCreated{FlightID: flightID}
}

func (e FlightCreated) EventType() string { return FlightCreatedEventType }
func (e FlightCreated) FlightKey() string { return e.FlightID }
func (FlightCreated) isEvent()            {}

type AircraftAssigned struct {
	FlightID   string `json:"flight_id"`
	AircraftID string `json:"aircraft_id"`
}

func NewAircraftAssigned(flightID, aircraftID string) AircraftAssigned {
	return AircraftAssigned{FlightID: flightID, AircraftID: aircraftID}
}

func (e AircraftAssigned) EventType() string { return AircraftAssignedEventType }
func (e AircraftAssigned) FlightKey() string { return e.FlightID }
func (AircraftAssigned) isEvent()            {}
