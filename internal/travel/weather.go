package travel

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// OpenWeather geocoding + OneCall 3.0. Cities are geocoded first; an empty
// geocoder result is a not-found failure.

type geoResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type owWeather struct {
	Description string `json:"description"`
}

type oneCallResponse struct {
	Current struct {
		Temp       float64     `json:"temp"`
		FeelsLike  float64     `json:"feels_like"`
		Humidity   int         `json:"humidity"`
		WindSpeed  float64     `json:"wind_speed"`
		UVI        float64     `json:"uvi"`
		Visibility int         `json:"visibility"`
		Weather    []owWeather `json:"weather"`
	} `json:"current"`
	Hourly []struct {
		Dt      int64       `json:"dt"`
		Temp    float64     `json:"temp"`
		Pop     float64     `json:"pop"`
		Weather []owWeather `json:"weather"`
	} `json:"hourly"`
	Daily []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
		Sunrise int64       `json:"sunrise"`
		Sunset  int64       `json:"sunset"`
		Pop     float64     `json:"pop"`
		UVI     float64     `json:"uvi"`
		Weather []owWeather `json:"weather"`
	} `json:"daily"`
	Alerts []struct {
		Event       string `json:"event"`
		Description string `json:"description"`
		Start       int64  `json:"start"`
		End         int64  `json:"end"`
	} `json:"alerts"`
}

func (c *APIClient) geocode(ctx context.Context, city string) (geoResult, error) {
	u := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=1&appid=%s",
		c.cfg.WeatherGeoBaseURL, url.QueryEscape(city), url.QueryEscape(c.cfg.WeatherAPIKey))
	var results []geoResult
	if err := getJSON(ctx, c.httpClient, u, &results); err != nil {
		return geoResult{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(results) == 0 {
		return geoResult{}, fmt.Errorf("geocode %q: %w", city, ErrNotFound)
	}
	return results[0], nil
}

func firstCondition(w []owWeather) string {
	if len(w) == 0 {
		return ""
	}
	return w[0].Description
}

func isoTime(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}

func (c *APIClient) DetailedWeather(ctx context.Context, city string) (*WeatherData, error) {
	loc, err := c.geocode(ctx, city)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/data/3.0/onecall?lat=%g&lon=%g&exclude=minutely&appid=%s&units=metric",
		c.cfg.WeatherBaseURL, loc.Lat, loc.Lon, url.QueryEscape(c.cfg.WeatherAPIKey))
	var resp oneCallResponse
	if err := getJSON(ctx, c.httpClient, u, &resp); err != nil {
		return nil, fmt.Errorf("weather %q: %w", city, err)
	}

	out := &WeatherData{
		Current: CurrentConditions{
			Temperature: resp.Current.Temp,
			FeelsLike:   resp.Current.FeelsLike,
			Humidity:    resp.Current.Humidity,
			Conditions:  firstCondition(resp.Current.Weather),
			WindSpeed:   resp.Current.WindSpeed,
			UVIndex:     resp.Current.UVI,
			Visibility:  resp.Current.Visibility,
		},
	}
	hours := resp.Hourly
	if len(hours) > 24 {
		hours = hours[:24]
	}
	for _, h := range hours {
		out.Hourly = append(out.Hourly, HourlyForecast{
			Time:                isoTime(h.Dt),
			Temperature:         h.Temp,
			Conditions:          firstCondition(h.Weather),
			PrecipitationChance: h.Pop * 100,
		})
	}
	for _, d := range resp.Daily {
		out.Daily = append(out.Daily, DailyForecast{
			Date:                isoTime(d.Dt),
			Temperature:         MinMax{Min: d.Temp.Min, Max: d.Temp.Max},
			Conditions:          firstCondition(d.Weather),
			Sunrise:             isoTime(d.Sunrise),
			Sunset:              isoTime(d.Sunset),
			PrecipitationChance: d.Pop * 100,
			UVIndex:             d.UVI,
		})
	}
	for _, a := range resp.Alerts {
		out.Alerts = append(out.Alerts, WeatherAlert{
			Event:       a.Event,
			Description: a.Description,
			Start:       isoTime(a.Start),
			End:         isoTime(a.End),
		})
	}
	return out, nil
}

type timeMachineResponse struct {
	Data []struct {
		Temp     float64     `json:"temp"`
		TempMin  float64     `json:"temp_min"`
		TempMax  float64     `json:"temp_max"`
		Humidity int         `json:"humidity"`
		Weather  []owWeather `json:"weather"`
		Rain     struct {
			OneHour float64 `json:"1h"`
		} `json:"rain"`
	} `json:"data"`
}

// maxHistoricalDays bounds the per-day timemachine fan-out for a trip range.
const maxHistoricalDays = 31

func (c *APIClient) HistoricalWeather(ctx context.Context, city, startDate, endDate string) ([]HistoricalWeather, error) {
	loc, err := c.geocode(ctx, city)
	if err != nil {
		return nil, err
	}
	start, err := ParseLooseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("historical weather: start date %q: %w", startDate, err)
	}
	end, err := ParseLooseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("historical weather: end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("historical weather: end %q before start %q", endDate, startDate)
	}

	var days []HistoricalWeather
	for dt, n := start, 0; !dt.After(end) && n < maxHistoricalDays; dt, n = dt.AddDate(0, 0, 1), n+1 {
		u := fmt.Sprintf("%s/data/3.0/onecall/timemachine?lat=%g&lon=%g&dt=%d&appid=%s&units=metric",
			c.cfg.WeatherBaseURL, loc.Lat, loc.Lon, dt.Unix(), url.QueryEscape(c.cfg.WeatherAPIKey))
		var resp timeMachineResponse
		if err := getJSON(ctx, c.httpClient, u, &resp); err != nil {
			return nil, fmt.Errorf("historical weather %q: %w", city, err)
		}
		if len(resp.Data) == 0 {
			continue
		}
		d := resp.Data[0]
		h := HistoricalWeather{
			Date:          dt.UTC().Format(time.RFC3339),
			Humidity:      d.Humidity,
			Conditions:    firstCondition(d.Weather),
			Precipitation: d.Rain.OneHour,
		}
		h.Temperature.Average = d.Temp
		h.Temperature.Min = d.TempMin
		h.Temperature.Max = d.TempMax
		days = append(days, h)
	}
	return days, nil
}

var (
	ordinalRe = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)`)

	looseDateLayouts = []string{
		"2 Jan 2006",
		"2 January 2006",
		"2006-01-02",
		"2 Jan",
		"2 January",
	}
)

// ParseLooseDate parses the informal date strings the intent extractor
// captures ("5th jan 2025", "12 december"). A year-less date is pinned to
// the current year.
func ParseLooseDate(s string) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = ordinalRe.ReplaceAllString(s, "$1")
	for _, layout := range looseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() == 0 {
				now := time.Now()
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			}
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
