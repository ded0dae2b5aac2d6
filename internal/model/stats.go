package model

// RecentAppointment is the reduced appointment view shown on the dashboard.
type RecentAppointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// DayCount is the number of appointments on one calendar date.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsSummary aggregates a practitioner's appointment and patient sets,
// evaluated against a single reference instant.
type StatsSummary struct {
	TotalAppointments     int                 `json:"total_appointments"`
	TotalPatients         int                 `json:"total_patients"`
	UpcomingAppointments  int                 `json:"upcoming_appointments"`
	AppointmentsThisWeek  int                 `json:"appointments_this_week"`
	AppointmentsThisMonth int                 `json:"appointments_this_month"`
	AppointmentsThisYear  int                 `json:"appointments_this_year"`
	RecentAppointments    []RecentAppointment `json:"recent_appointments"`
	AppointmentsByDay     []DayCount          `json:"appointments_by_day"`
}
