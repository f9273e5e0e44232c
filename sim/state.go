package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// MaxDays is the length of one simulation run.
const MaxDays = 60

// StatusUserCount is how many users the status view exposes.
const StatusUserCount = 3

// Community-level daily rules.
const (
	initialAvgTrust = 45.0

	activeUsersBase   = 3.0
	activeUsersGrowth = 2.0 // added linearly over the run
	activeJitterLo    = -1.0
	activeJitterHi    = 2.0
	activeUsersMin    = 1
	activeUsersMax    = UserCount

	dailyPointsMin   = 180
	dailyPointsMax   = 450
	payoutMultiplier = 1.4

	trustDriftLo      = -4.0
	trustDriftHi      = 7.0
	launchTrustBonus  = 4.0
	harvestTrustDrag  = 3.0
	trustDriftDivisor = 6.0
	avgTrustFloor     = 20.0
	avgTrustCeil      = 98.0

	riskProbability = 0.18
)

// State is the whole simulation: community aggregates plus the fixed set of users.
//
// Thread-safety: NOT thread-safe. Callers sharing a State across goroutines
// must serialize access.
type State struct {
	CurrentDay        int
	MaxDays           int
	ActiveUsers       int
	PointsIssuedToday int
	TotalPointsIssued int
	AvgTrust          float64
	RiskEvents        int
	Phase             Phase
	Users             []User

	rng *PartitionedRNG
}

// NewState creates a State seeded by key and resets it to day 1.
func NewState(key SimulationKey) *State {
	s := &State{rng: NewPartitionedRNG(key)}
	s.Reset()
	return s
}

// Key returns the seed the state was created with.
func (s *State) Key() SimulationKey {
	return s.rng.Key()
}

// Reset returns the simulation to day 1 and draws a fresh set of users.
// The RNG streams are not rewound, so successive resets yield different users.
func (s *State) Reset() {
	s.CurrentDay = 1
	s.MaxDays = MaxDays
	s.ActiveUsers = 0
	s.PointsIssuedToday = 0
	s.AvgTrust = initialAvgTrust
	s.TotalPointsIssued = 0
	s.RiskEvents = 0
	s.Phase = PhaseLaunch
	s.Users = NewUsers(s.rng.ForSubsystem(SubsystemUsers))
	logrus.Infof("[day %03d] Simulation reset with %d users", s.CurrentDay, len(s.Users))
}

// IsEnd reports whether the final day has been reached.
func (s *State) IsEnd() bool {
	return s.CurrentDay >= s.MaxDays
}

// AdvanceDay simulates one day. It returns false, leaving the state untouched,
// once the final day has been reached.
func (s *State) AdvanceDay() bool {
	if s.IsEnd() {
		logrus.Debugf("[day %03d] Advance ignored, simulation ended", s.CurrentDay)
		return false
	}
	community := s.rng.ForSubsystem(SubsystemCommunity)

	s.CurrentDay++
	s.Phase = PhaseFor(s.CurrentDay)

	s.ActiveUsers = activeUsersFor(s.CurrentDay, uniformFloat(community, activeJitterLo, activeJitterHi))

	points := uniformInt(community, dailyPointsMin, dailyPointsMax)
	if s.Phase.IsPayout() {
		points = int(float64(points) * payoutMultiplier)
	}
	s.PointsIssuedToday = points
	s.TotalPointsIssued += points

	drift := uniformFloat(community, trustDriftLo, trustDriftHi)
	switch s.Phase {
	case PhaseLaunch:
		drift += launchTrustBonus
	case PhaseHarvest:
		drift -= harvestTrustDrag
	}
	s.AvgTrust = clampFloat(s.AvgTrust+drift/trustDriftDivisor, avgTrustFloor, avgTrustCeil)

	// The draw happens every day so the stream does not depend on the phase.
	if community.Float64() < riskProbability && s.Phase.IsPayout() {
		s.RiskEvents++
		logrus.Infof("[day %03d] Risk event #%d", s.CurrentDay, s.RiskEvents)
	}

	users := s.rng.ForSubsystem(SubsystemUsers)
	for i := range s.Users {
		s.Users[i].advance(users)
	}

	logrus.Debugf("[day %03d] phase=%s active=%d issued=%d total=%d trust=%.2f",
		s.CurrentDay, s.Phase, s.ActiveUsers, s.PointsIssuedToday, s.TotalPointsIssued, s.AvgTrust)
	return true
}

// activeUsersFor grows the baseline linearly over the run, adds jitter and
// truncates toward zero before clamping.
func activeUsersFor(day int, jitter float64) int {
	base := activeUsersBase + float64(day)/float64(MaxDays)*activeUsersGrowth
	return clampInt(int(base+jitter), activeUsersMin, activeUsersMax)
}

// Status is the externally visible snapshot of the simulation.
type Status struct {
	Day         int     `json:"day"`
	Phase       Phase   `json:"phase"`
	ActiveUsers int     `json:"active_users"`
	PointsToday int     `json:"points_today"`
	TotalPoints int     `json:"total_points"`
	AvgTrust    float64 `json:"avg_trust"`
	RiskEvents  int     `json:"risk_events"`
	Users       []User  `json:"users"`
	IsEnd       bool    `json:"is_end"`
}

// Status returns a copy of the current state for display. Only the first
// StatusUserCount users are included; avg_trust is rounded to one decimal.
func (s *State) Status() Status {
	n := min(StatusUserCount, len(s.Users))
	users := make([]User, n)
	copy(users, s.Users[:n])
	return Status{
		Day:         s.CurrentDay,
		Phase:       s.Phase,
		ActiveUsers: s.ActiveUsers,
		PointsToday: s.PointsIssuedToday,
		TotalPoints: s.TotalPointsIssued,
		AvgTrust:    roundTo1(s.AvgTrust),
		RiskEvents:  s.RiskEvents,
		Users:       users,
		IsEnd:       s.IsEnd(),
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
