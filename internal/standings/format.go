package standings

import (
	"fmt"

	"github.com/foxseedlab/pitwall/internal/reply"
)

const (
	errorFieldName        = "API Error"
	driverErrorValue      = "Could not fetch driver standings!"
	constructorErrorValue = "Could not fetch constructor standings!"
	standingValueFormat   = "Points: %s\nWins: %s"
)

func DriverFields(list []DriverStanding) []reply.Field {
	fields := make([]reply.Field, 0, len(list))
	for _, d := range list {
		fields = append(fields, reply.Field{
			Name:  fmt.Sprintf("%s. %s %s (%s)", d.Position, d.GivenName, d.FamilyName, d.Constructor),
			Value: fmt.Sprintf(standingValueFormat, d.Points, d.Wins),
		})
	}
	return fields
}

func ConstructorFields(list []ConstructorStanding) []reply.Field {
	fields := make([]reply.Field, 0, len(list))
	for _, c := range list {
		fields = append(fields, reply.Field{
			Name:  fmt.Sprintf("%s. %s", c.Position, c.Name),
			Value: fmt.Sprintf(standingValueFormat, c.Points, c.Wins),
		})
	}
	return fields
}

func DriverErrorFields() []reply.Field {
	return []reply.Field{{Name: errorFieldName, Value: driverErrorValue}}
}

func ConstructorErrorFields() []reply.Field {
	return []reply.Field{{Name: errorFieldName, Value: constructorErrorValue}}
}
