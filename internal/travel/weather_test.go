package travel

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geoHandler(t *testing.T, wantCity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantCity, r.URL.Query().Get("q"))
		assert.Equal(t, "w-key", r.URL.Query().Get("appid"))
		jsonHandler(`[{"lat":35.68,"lon":139.69}]`)(w, r)
	}
}

func TestDetailedWeather(t *testing.T) {
	var hourly []string
	for i := 0; i < 30; i++ {
		hourly = append(hourly, fmt.Sprintf(`{"dt":%d,"temp":%d,"pop":0.25,"weather":[{"description":"clear sky"}]}`, 3600*i, 10+i))
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", geoHandler(t, "tokyo"))
	mux.HandleFunc("/data/3.0/onecall", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "minutely", r.URL.Query().Get("exclude"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		jsonHandler(fmt.Sprintf(`{
			"current":{"temp":21.5,"feels_like":22.1,"humidity":60,"wind_speed":3.4,"uvi":5.2,"visibility":10000,"weather":[{"description":"scattered clouds"}]},
			"hourly":[%s],
			"daily":[{"dt":86400,"temp":{"min":15.1,"max":24.2},"sunrise":86400,"sunset":129600,"pop":0.1,"uvi":6,"weather":[{"description":"light rain"}]}],
			"alerts":[{"event":"Typhoon Warning","description":"stay indoors","start":86400,"end":172800}]
		}`, strings.Join(hourly, ",")))(w, r)
	})
	c := newTestClient(t, mux)

	wd, err := c.DetailedWeather(context.Background(), "tokyo")
	require.NoError(t, err)
	assert.Equal(t, 21.5, wd.Current.Temperature)
	assert.Equal(t, 22.1, wd.Current.FeelsLike)
	assert.Equal(t, 60, wd.Current.Humidity)
	assert.Equal(t, "scattered clouds", wd.Current.Conditions)
	assert.Equal(t, 5.2, wd.Current.UVIndex)

	// The hourly forecast is capped at 24 entries.
	require.Len(t, wd.Hourly, 24)
	assert.Equal(t, "1970-01-01T00:00:00Z", wd.Hourly[0].Time)
	assert.Equal(t, 25.0, wd.Hourly[0].PrecipitationChance)

	require.Len(t, wd.Daily, 1)
	assert.Equal(t, 15.1, wd.Daily[0].Temperature.Min)
	assert.Equal(t, 24.2, wd.Daily[0].Temperature.Max)
	assert.Equal(t, "light rain", wd.Daily[0].Conditions)
	assert.Equal(t, "1970-01-02T00:00:00Z", wd.Daily[0].Sunrise)

	require.Len(t, wd.Alerts, 1)
	assert.Equal(t, "Typhoon Warning", wd.Alerts[0].Event)
}

func TestDetailedWeatherUnknownCity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", jsonHandler(`[]`))
	c := newTestClient(t, mux)

	_, err := c.DetailedWeather(context.Background(), "atlantis")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHistoricalWeather(t *testing.T) {
	var calls []string
	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", geoHandler(t, "paris"))
	mux.HandleFunc("/data/3.0/onecall/timemachine", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Query().Get("dt"))
		jsonHandler(`{"data":[{"temp":18.2,"temp_min":12,"temp_max":22.5,"humidity":70,"weather":[{"description":"overcast"}],"rain":{"1h":0.4}}]}`)(w, r)
	})
	c := newTestClient(t, mux)

	days, err := c.HistoricalWeather(context.Background(), "paris", "2025-01-05", "2025-01-07")
	require.NoError(t, err)
	require.Len(t, calls, 3)
	require.Len(t, days, 3)
	assert.Equal(t, "2025-01-05T00:00:00Z", days[0].Date)
	assert.Equal(t, 18.2, days[0].Temperature.Average)
	assert.Equal(t, 12.0, days[0].Temperature.Min)
	assert.Equal(t, 22.5, days[0].Temperature.Max)
	assert.Equal(t, 70, days[0].Humidity)
	assert.Equal(t, "overcast", days[0].Conditions)
	assert.Equal(t, 0.4, days[0].Precipitation)
}

func TestHistoricalWeatherEndBeforeStart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", jsonHandler(`[{"lat":1,"lon":2}]`))
	c := newTestClient(t, mux)

	_, err := c.HistoricalWeather(context.Background(), "paris", "2025-01-07", "2025-01-05")
	require.Error(t, err)
}

func TestParseLooseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"5th jan 2025", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{"22nd March 2024", time.Date(2024, time.March, 22, 0, 0, 0, 0, time.UTC)},
		{"12 december 2024", time.Date(2024, time.December, 12, 0, 0, 0, 0, time.UTC)},
		{"2025-03-09", time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseLooseDate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseLooseDateYearless(t *testing.T) {
	got, err := ParseLooseDate("1st apr")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), got.Year())
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParseLooseDateInvalid(t *testing.T) {
	_, err := ParseLooseDate("sometime next week")
	require.Error(t, err)
}
