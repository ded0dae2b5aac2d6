package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	apperrors "therapycare/internal/errors"
	"therapycare/internal/model"
	"therapycare/internal/repository"
)

const (
	recentAppointmentsLimit = 5
	byDayLimit              = 30
)

// StatsService derives summary counts and a bounded time series from a
// practitioner's appointment and patient sets. Read-only: two store reads,
// no writes.
type StatsService interface {
	Compute(ctx context.Context, owner string) (*model.StatsSummary, error)
}

type statsService struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	now             func() time.Time
}

// NewStatsService creates a new statistics service.
func NewStatsService(appointmentRepo repository.AppointmentRepository, patientRepo repository.PatientRepository) StatsService {
	return &statsService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		now:             time.Now,
	}
}

// Compute evaluates every derivation against a single reference instant. A
// stored date that fails to parse aborts the whole computation with
// ErrBadData: malformed dates indicate a data-integrity problem upstream and
// are never silently skipped.
func (s *statsService) Compute(ctx context.Context, owner string) (*model.StatsSummary, error) {
	appointments, err := s.appointmentRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	patients, err := s.patientRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	today := truncateToDay(s.now())
	weekStart := startOfWeek(today)
	weekEnd := weekStart.AddDate(0, 0, 7)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())

	summary := &model.StatsSummary{
		TotalAppointments:  len(appointments),
		TotalPatients:      len(patients),
		RecentAppointments: []model.RecentAppointment{},
		AppointmentsByDay:  []model.DayCount{},
	}

	byDay := map[string]int{}
	for _, apt := range appointments {
		date, err := time.ParseInLocation(model.DateLayout, apt.Date, today.Location())
		if err != nil {
			return nil, fmt.Errorf("appointment %s has date %q: %w", apt.ID, apt.Date, apperrors.ErrBadData)
		}

		if !date.Before(today) {
			summary.UpcomingAppointments++
		}
		if !date.Before(weekStart) && date.Before(weekEnd) {
			summary.AppointmentsThisWeek++
		}
		if !date.Before(monthStart) {
			summary.AppointmentsThisMonth++
		}
		if !date.Before(yearStart) {
			summary.AppointmentsThisYear++
		}

		byDay[apt.Date]++

		// First few appointments in store iteration order, not sorted by date.
		if len(summary.RecentAppointments) < recentAppointmentsLimit {
			summary.RecentAppointments = append(summary.RecentAppointments, model.RecentAppointment{
				ID:          apt.ID,
				PatientName: apt.PatientName,
				Date:        apt.Date,
				Time:        apt.Time,
			})
		}
	}

	dates := make([]string, 0, len(byDay))
	for date := range byDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	// Last N dates that actually have appointments, not the last N calendar days.
	if len(dates) > byDayLimit {
		dates = dates[len(dates)-byDayLimit:]
	}
	for _, date := range dates {
		summary.AppointmentsByDay = append(summary.AppointmentsByDay, model.DayCount{
			Date:  date,
			Count: byDay[date],
		})
	}

	return summary, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
