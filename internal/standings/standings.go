package standings

import "context"

type DriverStanding struct {
	Position    string
	GivenName   string
	FamilyName  string
	Constructor string
	Points      string
	Wins        string
}

type ConstructorStanding struct {
	Position string
	Name     string
	Points   string
	Wins     string
}

// Provider fetches the current season's standings. Calls are single attempt;
// any failure is returned as is.
type Provider interface {
	DriverStandings(ctx context.Context) ([]DriverStanding, error)
	ConstructorStandings(ctx context.Context) ([]ConstructorStanding, error)
}
