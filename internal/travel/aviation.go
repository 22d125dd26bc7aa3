package travel

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// AviationStack: flight tracking, airport/airline lookup, schedules, and
// the no-pricing flight-search fallback.

type aviationFlight struct {
	FlightStatus string `json:"flight_status"`
	FlightDate   string `json:"flight_date"`
	Airline      struct {
		Name string `json:"name"`
	} `json:"airline"`
	Flight struct {
		IATA     string          `json:"iata"`
		Schedule map[string]bool `json:"schedule"`
	} `json:"flight"`
	Departure aviationStop `json:"departure"`
	Arrival   aviationStop `json:"arrival"`
}

type aviationStop struct {
	Airport   string `json:"airport"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Scheduled string `json:"scheduled"`
	Actual    string `json:"actual"`
	Delay     int    `json:"delay"`
}

type aviationFlightsResponse struct {
	Data []aviationFlight `json:"data"`
}

func (c *APIClient) aviationURL(path string, params url.Values) string {
	params.Set("access_key", c.cfg.AviationStackAPIKey)
	return c.cfg.AviationBaseURL + path + "?" + params.Encode()
}

func normalizeStop(s aviationStop) FlightStop {
	terminal := s.Terminal
	if terminal == "" {
		terminal = "N/A"
	}
	gate := s.Gate
	if gate == "" {
		gate = "N/A"
	}
	return FlightStop{
		Airport:       s.Airport,
		Terminal:      terminal,
		Gate:          gate,
		ScheduledTime: s.Scheduled,
		ActualTime:    s.Actual,
		Delay:         s.Delay,
	}
}

func (c *APIClient) TrackFlight(ctx context.Context, flightIATA string) (*FlightTracking, error) {
	params := url.Values{}
	params.Set("flight_iata", strings.ToUpper(flightIATA))
	var resp aviationFlightsResponse
	if err := getJSON(ctx, c.httpClient, c.aviationURL("/flights", params), &resp); err != nil {
		return nil, fmt.Errorf("track flight %q: %w", flightIATA, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("track flight %q: %w", flightIATA, ErrNotFound)
	}
	f := resp.Data[0]
	return &FlightTracking{
		FlightNumber: f.Flight.IATA,
		Status:       f.FlightStatus,
		Departure:    normalizeStop(f.Departure),
		Arrival:      normalizeStop(f.Arrival),
	}, nil
}

// searchFlightsAviation lists scheduled flights between two airports on a
// date. Prices are unavailable through this feed; durations are computed
// from the scheduled times.
func (c *APIClient) searchFlightsAviation(ctx context.Context, from, to, date string) ([]FlightOffer, error) {
	params := url.Values{}
	params.Set("dep_iata", strings.ToUpper(from))
	params.Set("arr_iata", strings.ToUpper(to))
	if day, err := ParseLooseDate(date); err == nil {
		params.Set("flight_date", day.Format("2006-01-02"))
	}
	var resp aviationFlightsResponse
	if err := getJSON(ctx, c.httpClient, c.aviationURL("/flights", params), &resp); err != nil {
		return nil, fmt.Errorf("flight search %s-%s: %w", from, to, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("flight search %s-%s: %w", from, to, ErrNotFound)
	}
	out := make([]FlightOffer, 0, len(resp.Data))
	for _, f := range resp.Data {
		out = append(out, FlightOffer{
			Airline:   f.Airline.Name,
			Departure: f.Departure.Scheduled,
			Arrival:   f.Arrival.Scheduled,
			Duration:  scheduledDuration(f.Departure.Scheduled, f.Arrival.Scheduled),
		})
	}
	return out, nil
}

func scheduledDuration(departure, arrival string) string {
	dep, err1 := time.Parse(time.RFC3339, departure)
	arr, err2 := time.Parse(time.RFC3339, arrival)
	if err1 != nil || err2 != nil || arr.Before(dep) {
		return ""
	}
	d := arr.Sub(dep)
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

type aviationAirportsResponse struct {
	Data []struct {
		IATACode    string  `json:"iata_code"`
		AirportName string  `json:"airport_name"`
		CityName    string  `json:"city_name"`
		CountryName string  `json:"country_name"`
		Timezone    string  `json:"timezone"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	} `json:"data"`
}

func (c *APIClient) SearchAirports(ctx context.Context, query string) ([]Airport, error) {
	params := url.Values{}
	params.Set("search", query)
	var resp aviationAirportsResponse
	if err := getJSON(ctx, c.httpClient, c.aviationURL("/airports", params), &resp); err != nil {
		return nil, fmt.Errorf("airport search %q: %w", query, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("airport search %q: %w", query, ErrNotFound)
	}
	out := make([]Airport, 0, len(resp.Data))
	for _, a := range resp.Data {
		out = append(out, Airport{
			IATA:      a.IATACode,
			Name:      a.AirportName,
			City:      a.CityName,
			Country:   a.CountryName,
			Timezone:  a.Timezone,
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
		})
	}
	return out, nil
}

type aviationAirlinesResponse struct {
	Data []struct {
		AirlineName string `json:"airline_name"`
		IATACode    string `json:"iata_code"`
		FleetSize   int    `json:"fleet_size"`
		CountryName string `json:"country_name"`
		Status      string `json:"status"`
	} `json:"data"`
}

func (c *APIClient) AirlineInfo(ctx context.Context, airlineCode string) (*Airline, error) {
	params := url.Values{}
	params.Set("airline_code", strings.ToUpper(airlineCode))
	var resp aviationAirlinesResponse
	if err := getJSON(ctx, c.httpClient, c.aviationURL("/airlines", params), &resp); err != nil {
		return nil, fmt.Errorf("airline %q: %w", airlineCode, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("airline %q: %w", airlineCode, ErrNotFound)
	}
	a := resp.Data[0]
	return &Airline{
		Name:      a.AirlineName,
		IATA:      a.IATACode,
		FleetSize: a.FleetSize,
		Country:   a.CountryName,
		Active:    a.Status == "active",
	}, nil
}

// AirportSchedule lists departures or arrivals for an airport. direction is
// "departure" or "arrival"; anything else defaults to departures.
func (c *APIClient) AirportSchedule(ctx context.Context, airportIATA, direction string) ([]FlightSchedule, error) {
	key := "dep_iata"
	if direction == "arrival" {
		key = "arr_iata"
	}
	params := url.Values{}
	params.Set(key, strings.ToUpper(airportIATA))
	var resp aviationFlightsResponse
	if err := getJSON(ctx, c.httpClient, c.aviationURL("/flights", params), &resp); err != nil {
		return nil, fmt.Errorf("airport schedule %q: %w", airportIATA, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("airport schedule %q: %w", airportIATA, ErrNotFound)
	}
	out := make([]FlightSchedule, 0, len(resp.Data))
	for _, f := range resp.Data {
		out = append(out, FlightSchedule{
			Airline:      f.Airline.Name,
			FlightNumber: f.Flight.IATA,
			Departure: ScheduleStop{
				Airport:       f.Departure.Airport,
				ScheduledTime: f.Departure.Scheduled,
				Terminal:      f.Departure.Terminal,
			},
			Arrival: ScheduleStop{
				Airport:       f.Arrival.Airport,
				ScheduledTime: f.Arrival.Scheduled,
				Terminal:      f.Arrival.Terminal,
			},
			Frequency: operatingDays(f.Flight.Schedule),
		})
	}
	return out, nil
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func operatingDays(schedule map[string]bool) []string {
	out := []string{}
	for _, day := range weekdays {
		if schedule[day] {
			out = append(out, day)
		}
	}
	return out
}
