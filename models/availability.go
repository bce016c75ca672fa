package models

// ServiceTimeAvailability reports remaining capacity for one service time
// on a specific occurrence date.
type ServiceTimeAvailability struct {
	ServiceTimeID string `json:"serviceTimeId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Capacity      int    `json:"capacity"`
	Booked        int    `json:"booked"`
	Remaining     int    `json:"remaining"`
	Available     bool   `json:"available"`
}

// DayAvailability is the full availability picture for a schedule on one date.
type DayAvailability struct {
	ScheduleID string                    `json:"scheduleId"`
	Date       string                    `json:"date"`
	Occurrence bool                      `json:"occurrence"`
	Slots      []ServiceTimeAvailability `json:"slots"`
}

// MonthOccurrences lists the occurrence dates of a schedule within one month,
// used to build the appointment calendar view.
type MonthOccurrences struct {
	ScheduleID string   `json:"scheduleId"`
	Year       int      `json:"year"`
	Month      int      `json:"month"`
	Dates      []string `json:"dates"`
}
