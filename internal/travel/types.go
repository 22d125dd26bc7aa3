package travel

// Normalized provider shapes. Field sets mirror what the chat context
// serialization needs; provider-specific payloads stay inside the fetchers.

type CurrentConditions struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Conditions  string  `json:"conditions"`
	WindSpeed   float64 `json:"wind_speed"`
	UVIndex     float64 `json:"uv_index"`
	Visibility  int     `json:"visibility"`
}

type HourlyForecast struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature"`
	Conditions          string  `json:"conditions"`
	PrecipitationChance float64 `json:"precipitation_chance"`
}

type DailyForecast struct {
	Date                string   `json:"date"`
	Temperature         MinMax   `json:"temperature"`
	Conditions          string   `json:"conditions"`
	Sunrise             string   `json:"sunrise"`
	Sunset              string   `json:"sunset"`
	PrecipitationChance float64  `json:"precipitation_chance"`
	UVIndex             float64  `json:"uv_index"`
}

type MinMax struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type WeatherAlert struct {
	Event       string `json:"event"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

type WeatherData struct {
	Current CurrentConditions `json:"current"`
	Hourly  []HourlyForecast  `json:"hourly"`
	Daily   []DailyForecast   `json:"daily"`
	Alerts  []WeatherAlert    `json:"alerts,omitempty"`
}

type HistoricalWeather struct {
	Date        string  `json:"date"`
	Temperature struct {
		Average float64 `json:"average"`
		Min     float64 `json:"min"`
		Max     float64 `json:"max"`
	} `json:"temperature"`
	Humidity      int     `json:"humidity"`
	Conditions    string  `json:"conditions"`
	Precipitation float64 `json:"precipitation"`
}

type FlightOffer struct {
	Price     string `json:"price,omitempty"` // absent for schedule-only sources
	Airline   string `json:"airline"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
}

type FlightTracking struct {
	FlightNumber string       `json:"flightNumber"`
	Status       string       `json:"status"`
	Departure    FlightStop   `json:"departure"`
	Arrival      FlightStop   `json:"arrival"`
}

type FlightStop struct {
	Airport       string `json:"airport"`
	Terminal      string `json:"terminal"`
	Gate          string `json:"gate"`
	ScheduledTime string `json:"scheduledTime"`
	ActualTime    string `json:"actualTime,omitempty"`
	Delay         int    `json:"delay,omitempty"`
}

type Hotel struct {
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Rating    string   `json:"rating"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
}

type Place struct {
	Name    string   `json:"name"`
	Rating  float32  `json:"rating"`
	Address string   `json:"address"`
	Type    string   `json:"type"`
	Photos  []string `json:"photos,omitempty"`
}

type ExchangeRate struct {
	Rate         float64 `json:"rate"`
	FromCurrency string  `json:"fromCurrency"`
	ToCurrency   string  `json:"toCurrency"`
}

type Airport struct {
	IATA      string  `json:"iata"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Airline struct {
	Name      string `json:"name"`
	IATA      string `json:"iata"`
	FleetSize int    `json:"fleet_size,omitempty"`
	Country   string `json:"country"`
	Active    bool   `json:"active"`
}

type ScheduleStop struct {
	Airport       string `json:"airport"`
	ScheduledTime string `json:"scheduledTime"`
	Terminal      string `json:"terminal,omitempty"`
}

type FlightSchedule struct {
	Airline      string       `json:"airline"`
	FlightNumber string       `json:"flightNumber"`
	Departure    ScheduleStop `json:"departure"`
	Arrival      ScheduleStop `json:"arrival"`
	Frequency    []string     `json:"frequency"` // days of operation
}
