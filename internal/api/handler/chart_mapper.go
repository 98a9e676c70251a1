package handler

import (
	"strconv"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
	"github.com/morice333/workstation-queue-dashboard/internal/core/ports"
)

// chartEntries projects running reservations into the role-coloured entries
// rendered by the dashboard chart: blue for PhD, orange for Master, green
// for everything else.
func chartEntries(running []*domain.Reservation) []ports.ChartEntry {
	entries := make([]ports.ChartEntry, 0, len(running))
	for _, r := range running {
		renewals := ""
		if r.Renewals != nil {
			renewals = strconv.Itoa(*r.Renewals)
		}
		entries = append(entries, ports.ChartEntry{
			Name:        r.Name,
			Workstation: r.Workstation,
			Start:       r.StartDate,
			End:         r.EndDate,
			Renewals:    renewals,
			Color:       roleColor(r.Role),
		})
	}
	return entries
}

func roleColor(role string) string {
	switch role {
	case domain.RequesterPhD:
		return "blue"
	case domain.RequesterMaster:
		return "orange"
	default:
		return "green"
	}
}
