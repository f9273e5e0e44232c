package sim

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// UserCount is the fixed community size.
const UserCount = 5

// UserType is the behavioural archetype of a community member.
type UserType int

const (
	EarlyAdopter UserType = iota
	Follower
	Skeptic
)

// userTypePool is sampled uniformly per slot; duplicates weight the draw.
var userTypePool = []UserType{EarlyAdopter, EarlyAdopter, Follower, Follower, Skeptic}

var userTypeNames = map[UserType]string{
	EarlyAdopter: "early_adopter",
	Follower:     "follower",
	Skeptic:      "skeptic",
}

func (u UserType) String() string {
	if name, ok := userTypeNames[u]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON encodes the type as its identifier.
func (u UserType) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// userBase holds the starting values for one UserType.
type userBase struct {
	trust            float64
	points           int
	teamMin, teamMax int
}

var userBases = map[UserType]userBase{
	EarlyAdopter: {trust: 65, points: 3000, teamMin: 8, teamMax: 20},
	Follower:     {trust: 45, points: 800, teamMin: 1, teamMax: 5},
	Skeptic:      {trust: 25, points: 100, teamMin: 0, teamMax: 0},
}

// Tier is a badge level derived from accumulated points.
type Tier int

const (
	TierBronze Tier = iota
	TierSilver
	TierGold
)

const (
	initialSilverPoints = 2000
	silverPoints        = 5000
	goldPoints          = 15000
)

var tierNames = map[Tier]string{
	TierBronze: "bronze",
	TierSilver: "silver",
	TierGold:   "gold",
}

var tierLabels = map[Tier]string{
	TierBronze: "铜牌",
	TierSilver: "银牌",
	TierGold:   "金牌",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// Label returns the display label of the tier.
func (t Tier) Label() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return t.String()
}

// MarshalJSON encodes the tier as its display label.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Label())
}

// initialTier is evaluated once at creation, against the starting points only.
func initialTier(points int) Tier {
	if points > initialSilverPoints {
		return TierSilver
	}
	return TierBronze
}

// upgrade returns the tier earned by points, never lower than t.
func (t Tier) upgrade(points int) Tier {
	earned := t
	switch {
	case points > goldPoints:
		earned = TierGold
	case points > silverPoints:
		earned = TierSilver
	}
	return max(t, earned)
}

// User is one community member.
type User struct {
	Name   string   `json:"name"`
	Type   UserType `json:"type"`
	Trust  float64  `json:"trust"`
	Points int      `json:"points"`
	Team   int      `json:"team"`
	Tier   Tier     `json:"tier"`
}

// Per-user daily update bounds.
const (
	userPointsMin    = 60
	userPointsMax    = 349 // upper bound of [60, 350)
	userTrustDeltaLo = -6.0
	userTrustDeltaHi = 10.0
	userTrustFloor   = 10.0
	userTrustCeil    = 98.0
	teamGrowthMax    = 3
)

// NewUsers draws UserCount users. Each slot independently samples its type
// from userTypePool, so the realized mix varies between runs.
func NewUsers(rng *rand.Rand) []User {
	users := make([]User, 0, UserCount)
	for i := 0; i < UserCount; i++ {
		utype := userTypePool[rng.Intn(len(userTypePool))]
		base := userBases[utype]
		users = append(users, User{
			Name:   fmt.Sprintf("用户%d", i+1),
			Type:   utype,
			Trust:  base.trust,
			Points: base.points,
			Team:   uniformInt(rng, base.teamMin, base.teamMax),
			Tier:   initialTier(base.points),
		})
	}
	return users
}

// advance applies one day of activity to the user.
func (u *User) advance(rng *rand.Rand) {
	u.Points += uniformInt(rng, userPointsMin, userPointsMax)
	u.Trust = clampFloat(u.Trust+uniformFloat(rng, userTrustDeltaLo, userTrustDeltaHi), userTrustFloor, userTrustCeil)
	if u.Type == EarlyAdopter {
		u.Team += uniformInt(rng, 0, teamGrowthMax)
	}
	u.Tier = u.Tier.upgrade(u.Points)
}
