package shift

// DefaultShifts are the seeded templates served when no catalog rows exist.
func DefaultShifts() []Shift {
	return []Shift{
		{Code: "M8", Name: "Mañana 8h", StartTime: "06:00", EndTime: "14:00", DurationHours: 8},
		{Code: "T8", Name: "Tarde 8h", StartTime: "14:00", EndTime: "22:00", DurationHours: 8},
		{Code: "N8", Name: "Noche 8h", StartTime: "22:00", EndTime: "06:00", DurationHours: 8},
		{Code: "D12", Name: "Diurno 12h", StartTime: "06:00", EndTime: "18:00", DurationHours: 12},
		{Code: "N12", Name: "Nocturno 12h", StartTime: "18:00", EndTime: "06:00", DurationHours: 12},
	}
}
