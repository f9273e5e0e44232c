// Renders an end-of-run report for headless runs.

package sim

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Summary is the report of a completed (or partially completed) run.
type Summary struct {
	Key         SimulationKey
	Days        int
	Phase       Phase
	ActiveUsers int
	TotalPoints int
	AvgTrust    float64
	RiskEvents  int
	Users       []User
}

// Summarize captures the full state, including every user, for reporting.
func (s *State) Summarize() Summary {
	users := make([]User, len(s.Users))
	copy(users, s.Users)
	return Summary{
		Key:         s.Key(),
		Days:        s.CurrentDay,
		Phase:       s.Phase,
		ActiveUsers: s.ActiveUsers,
		TotalPoints: s.TotalPointsIssued,
		AvgTrust:    s.AvgTrust,
		RiskEvents:  s.RiskEvents,
		Users:       users,
	}
}

// Print writes the summary as a plain-text table.
func (m Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Summary ===")
	fmt.Fprintf(w, "Seed                 : %d\n", m.Key)
	fmt.Fprintf(w, "Day                  : %d / %d\n", m.Days, MaxDays)
	fmt.Fprintf(w, "Phase                : %s (%s)\n", m.Phase.Label(), m.Phase)
	fmt.Fprintf(w, "Active Users         : %d\n", m.ActiveUsers)
	fmt.Fprintf(w, "Total Points Issued  : %s\n", humanize.Comma(int64(m.TotalPoints)))
	fmt.Fprintf(w, "Average Trust        : %.1f\n", m.AvgTrust)
	fmt.Fprintf(w, "Risk Events          : %d\n", m.RiskEvents)
	fmt.Fprintln(w, "=== Users ===")
	for _, u := range m.Users {
		fmt.Fprintf(w, "%-6s %-14s trust=%5.1f points=%8s team=%3d tier=%s\n",
			u.Name, u.Type, u.Trust, humanize.Comma(int64(u.Points)), u.Team, u.Tier.Label())
	}
}
