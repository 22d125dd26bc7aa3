// Package travel adapts third-party travel APIs (weather, flights, hotels,
// places, exchange rates, flight tracking) into a small normalized surface.
// Each method is one provider call; failures surface as errors the caller
// degrades on, never panics.
package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"googlemaps.github.io/maps"
)

// ErrNotFound marks a lookup that completed but matched nothing (e.g. a city
// the geocoder doesn't know). Callers treat it like any other lookup failure.
var ErrNotFound = errors.New("travel: not found")

// Client is the Travel Data Gateway surface consumed by the chat pipeline.
type Client interface {
	DetailedWeather(ctx context.Context, city string) (*WeatherData, error)
	HistoricalWeather(ctx context.Context, city, startDate, endDate string) ([]HistoricalWeather, error)
	SearchFlights(ctx context.Context, from, to, date string) ([]FlightOffer, error)
	SearchHotels(ctx context.Context, city, checkIn, checkOut string) ([]Hotel, error)
	SearchPlaces(ctx context.Context, city string) ([]Place, error)
	GetExchangeRate(ctx context.Context, from, to string) (*ExchangeRate, error)
	TrackFlight(ctx context.Context, flightIATA string) (*FlightTracking, error)
	SearchAirports(ctx context.Context, query string) ([]Airport, error)
	AirlineInfo(ctx context.Context, airlineCode string) (*Airline, error)
	AirportSchedule(ctx context.Context, airportIATA, direction string) ([]FlightSchedule, error)
}

// Config carries provider credentials and base URLs. Base URLs default to
// the live endpoints; tests point them at httptest servers.
type Config struct {
	WeatherAPIKey       string
	AmadeusClientID     string
	AmadeusClientSecret string
	GooglePlacesAPIKey  string
	AviationStackAPIKey string

	WeatherGeoBaseURL   string
	WeatherBaseURL      string
	AmadeusBaseURL      string
	AmadeusTokenURL     string
	AviationBaseURL     string
	ExchangeBaseURL     string
	PlacesBaseURL       string // optional override for the maps client
	PlacesPhotoBaseURL  string
}

func (c *Config) applyDefaults() {
	if c.WeatherGeoBaseURL == "" {
		c.WeatherGeoBaseURL = "http://api.openweathermap.org"
	}
	if c.WeatherBaseURL == "" {
		c.WeatherBaseURL = "https://api.openweathermap.org"
	}
	if c.AmadeusBaseURL == "" {
		c.AmadeusBaseURL = "https://test.api.amadeus.com"
	}
	if c.AmadeusTokenURL == "" {
		c.AmadeusTokenURL = c.AmadeusBaseURL + "/v1/security/oauth2/token"
	}
	if c.AviationBaseURL == "" {
		c.AviationBaseURL = "http://api.aviationstack.com/v1"
	}
	if c.ExchangeBaseURL == "" {
		c.ExchangeBaseURL = "https://api.exchangerate-api.com/v4"
	}
	if c.PlacesPhotoBaseURL == "" {
		c.PlacesPhotoBaseURL = "https://maps.googleapis.com/maps/api/place/photo"
	}
}

// APIClient implements Client against the live provider REST APIs.
type APIClient struct {
	cfg        Config
	httpClient *http.Client
	amadeus    *http.Client // bearer-authenticated via client credentials
	places     *maps.Client
}

func NewAPIClient(cfg Config) (*APIClient, error) {
	cfg.applyDefaults()
	c := &APIClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}

	// Amadeus issues short-lived bearer tokens via the client-credentials
	// grant; oauth2 handles caching and refresh.
	cc := clientcredentials.Config{
		ClientID:     cfg.AmadeusClientID,
		ClientSecret: cfg.AmadeusClientSecret,
		TokenURL:     cfg.AmadeusTokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	c.amadeus = cc.Client(context.Background())
	c.amadeus.Timeout = 20 * time.Second

	if cfg.GooglePlacesAPIKey != "" {
		opts := []maps.ClientOption{maps.WithAPIKey(cfg.GooglePlacesAPIKey)}
		if cfg.PlacesBaseURL != "" {
			opts = append(opts, maps.WithBaseURL(cfg.PlacesBaseURL))
		}
		mc, err := maps.NewClient(opts...)
		if err != nil {
			return nil, fmt.Errorf("create maps client: %w", err)
		}
		c.places = mc
	}
	return c, nil
}

// getJSON issues a GET via the given http client and decodes the JSON body.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s: status %d: %s", trimQuery(url), resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// trimQuery drops the query string before an URL lands in an error message,
// keeping credentials out of logs.
func trimQuery(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
