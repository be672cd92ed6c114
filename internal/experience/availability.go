package experience

// Schedule is the availability fixture served with every experience
// detail: a fixed date window with fixed time labels and capacities. It
// is demo data, deliberately not derived from booking counts, and is
// injected into the service so tests can swap it.
type Schedule struct {
	Dates        []string
	Times        []string
	Availability map[string]int
}

// DaySlots is one date of the window as the client consumes it.
type DaySlots struct {
	Date         string         `json:"date"`
	Times        []string       `json:"times"`
	Availability map[string]int `json:"availability"`
}

// DefaultSchedule returns the fixture the original service shipped with:
// a 5-day window, 4 time slots, capacities 4/2/5/0.
func DefaultSchedule() Schedule {
	return Schedule{
		Dates: []string{"2025-10-22", "2025-10-23", "2025-10-24", "2025-10-25", "2025-10-26"},
		Times: []string{"09:00 am", "11:00 am", "02:00 pm", "04:00 pm"},
		Availability: map[string]int{
			"09:00 am": 4,
			"11:00 am": 2,
			"02:00 pm": 5,
			"04:00 pm": 0,
		},
	}
}

// Slots expands the schedule into one entry per date.
func (s Schedule) Slots() []DaySlots {
	slots := make([]DaySlots, 0, len(s.Dates))
	for _, date := range s.Dates {
		slots = append(slots, DaySlots{
			Date:         date,
			Times:        s.Times,
			Availability: s.Availability,
		})
	}
	return slots
}
