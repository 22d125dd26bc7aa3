package travel

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackFlight(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/flights", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BA142", r.URL.Query().Get("flight_iata"))
		jsonHandler(`{"data":[{
			"flight_status":"active",
			"flight":{"iata":"BA142"},
			"departure":{"airport":"Heathrow","terminal":"5","gate":"A10","scheduled":"2025-01-05T21:15:00+00:00","actual":"2025-01-05T21:40:00+00:00","delay":25},
			"arrival":{"airport":"Indira Gandhi Intl","scheduled":"2025-01-06T11:05:00+05:30"}
		}]}`)(w, r)
	})
	c := newTestClient(t, mux)

	tr, err := c.TrackFlight(context.Background(), "ba142")
	require.NoError(t, err)
	assert.Equal(t, "BA142", tr.FlightNumber)
	assert.Equal(t, "active", tr.Status)
	assert.Equal(t, "5", tr.Departure.Terminal)
	assert.Equal(t, "A10", tr.Departure.Gate)
	assert.Equal(t, 25, tr.Departure.Delay)
	// Missing terminal and gate fall back to N/A.
	assert.Equal(t, "N/A", tr.Arrival.Terminal)
	assert.Equal(t, "N/A", tr.Arrival.Gate)
}

func TestTrackFlightNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/flights", jsonHandler(`{"data":[]}`))
	c := newTestClient(t, mux)

	_, err := c.TrackFlight(context.Background(), "zz999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchAirports(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/airports", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "delhi", r.URL.Query().Get("search"))
		jsonHandler(`{"data":[{
			"iata_code":"DEL","airport_name":"Indira Gandhi Intl","city_name":"New Delhi",
			"country_name":"India","timezone":"Asia/Kolkata","latitude":28.5665,"longitude":77.1031
		}]}`)(w, r)
	})
	c := newTestClient(t, mux)

	airports, err := c.SearchAirports(context.Background(), "delhi")
	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "DEL", airports[0].IATA)
	assert.Equal(t, "Indira Gandhi Intl", airports[0].Name)
	assert.Equal(t, "New Delhi", airports[0].City)
	assert.Equal(t, 28.5665, airports[0].Latitude)
	assert.Equal(t, 77.1031, airports[0].Longitude)
}

func TestAirlineInfo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/airlines", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AF", r.URL.Query().Get("airline_code"))
		jsonHandler(`{"data":[{
			"airline_name":"Air France","iata_code":"AF","fleet_size":224,
			"country_name":"France","status":"active"
		}]}`)(w, r)
	})
	c := newTestClient(t, mux)

	a, err := c.AirlineInfo(context.Background(), "af")
	require.NoError(t, err)
	assert.Equal(t, "Air France", a.Name)
	assert.Equal(t, 224, a.FleetSize)
	assert.True(t, a.Active)
}

func TestAirportSchedule(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/flights", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "HND", q.Get("arr_iata"))
		assert.Empty(t, q.Get("dep_iata"))
		jsonHandler(`{"data":[{
			"airline":{"name":"ANA"},
			"flight":{"iata":"NH212","schedule":{"monday":true,"wednesday":true,"friday":true}},
			"departure":{"airport":"Frankfurt","terminal":"1","scheduled":"2025-01-05T11:45:00+01:00"},
			"arrival":{"airport":"Haneda","terminal":"3","scheduled":"2025-01-06T07:30:00+09:00"}
		}]}`)(w, r)
	})
	c := newTestClient(t, mux)

	flights, err := c.AirportSchedule(context.Background(), "hnd", "arrival")
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "NH212", flights[0].FlightNumber)
	assert.Equal(t, "Frankfurt", flights[0].Departure.Airport)
	assert.Equal(t, "Haneda", flights[0].Arrival.Airport)
	assert.Equal(t, []string{"monday", "wednesday", "friday"}, flights[0].Frequency)
}

func TestScheduledDuration(t *testing.T) {
	cases := []struct {
		dep, arr, want string
	}{
		{"2025-01-05T10:00:00Z", "2025-01-05T12:30:00Z", "2h 30m"},
		{"2025-01-05T23:00:00Z", "2025-01-06T10:05:00Z", "11h 5m"},
		{"2025-01-05T10:00:00Z", "2025-01-05T09:00:00Z", ""},
		{"not-a-time", "2025-01-05T09:00:00Z", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scheduledDuration(tc.dep, tc.arr))
	}
}
