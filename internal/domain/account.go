package domain

import "time"

// Account is a login identity with a role. Staff accounts start with
// IsFirstLogin set, which forces a credential change before any other
// action; the flag flips to false exactly once, on the first successful
// change.
type Account struct {
	ID           string
	Email        string
	Role         Role
	IsFirstLogin bool

	// MonthlyEarnings is a cached aggregate refreshed by the earnings
	// calculation; it is display data, never an input.
	MonthlyEarnings float64

	CreatedAt time.Time
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
