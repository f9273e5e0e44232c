package server

import "time"

// Clock supplies the wall-clock date shown in the status payload.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Test-friendly.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// dateLayout renders e.g. 2026年10月18日.
const dateLayout = "2006年01月02日"
