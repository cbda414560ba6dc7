package standings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/foxseedlab/pitwall/internal/standings"
)

const DefaultBaseURL = "https://api.jolpi.ca/ergast/f1"

var errNoStandings = errors.New("ergast: no standings published for the current season")

// ErgastClient reads championship tables from an Ergast compatible API.
// Each call is a single attempt.
type ErgastClient struct {
	baseURL string
	client  *http.Client
}

func NewErgastClient(baseURL string, timeout time.Duration) *ErgastClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ErgastClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type ergastResponse struct {
	MRData struct {
		StandingsTable struct {
			Season         string `json:"season"`
			StandingsLists []struct {
				DriverStandings []struct {
					Position string `json:"position"`
					Points   string `json:"points"`
					Wins     string `json:"wins"`
					Driver   struct {
						GivenName  string `json:"givenName"`
						FamilyName string `json:"familyName"`
					} `json:"Driver"`
					Constructors []struct {
						Name string `json:"name"`
					} `json:"Constructors"`
				} `json:"DriverStandings"`
				ConstructorStandings []struct {
					Position    string `json:"position"`
					Points      string `json:"points"`
					Wins        string `json:"wins"`
					Constructor struct {
						Name string `json:"name"`
					} `json:"Constructor"`
				} `json:"ConstructorStandings"`
			} `json:"StandingsLists"`
		} `json:"StandingsTable"`
	} `json:"MRData"`
}

func (c *ErgastClient) DriverStandings(ctx context.Context) ([]standings.DriverStanding, error) {
	resp, err := c.fetch(ctx, "current/driverStandings.json")
	if err != nil {
		return nil, err
	}
	lists := resp.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 {
		return nil, errNoStandings
	}
	out := make([]standings.DriverStanding, 0, len(lists[0].DriverStandings))
	for _, d := range lists[0].DriverStandings {
		constructor := ""
		if len(d.Constructors) > 0 {
			constructor = d.Constructors[0].Name
		}
		out = append(out, standings.DriverStanding{
			Position:    d.Position,
			GivenName:   d.Driver.GivenName,
			FamilyName:  d.Driver.FamilyName,
			Constructor: constructor,
			Points:      d.Points,
			Wins:        d.Wins,
		})
	}
	return out, nil
}

func (c *ErgastClient) ConstructorStandings(ctx context.Context) ([]standings.ConstructorStanding, error) {
	resp, err := c.fetch(ctx, "current/constructorStandings.json")
	if err != nil {
		return nil, err
	}
	lists := resp.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 {
		return nil, errNoStandings
	}
	out := make([]standings.ConstructorStanding, 0, len(lists[0].ConstructorStandings))
	for _, s := range lists[0].ConstructorStandings {
		out = append(out, standings.ConstructorStanding{
			Position: s.Position,
			Name:     s.Constructor.Name,
			Points:   s.Points,
			Wins:     s.Wins,
		})
	}
	return out, nil
}

func (c *ErgastClient) fetch(ctx context.Context, path string) (*ergastResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ergast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ergast: http %d for %s", resp.StatusCode, path)
	}
	var data ergastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("ergast: decoding %s: %w", path, err)
	}
	return &data, nil
}
