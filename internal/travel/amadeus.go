package travel

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// Amadeus self-service APIs: flight offers and hotel offers. Requests ride
// the oauth2 client-credentials transport built in NewAPIClient.

type amadeusFlightResponse struct {
	Data []struct {
		Price struct {
			Total string `json:"total"`
		} `json:"price"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
		Itineraries            []struct {
			Duration string `json:"duration"`
			Segments []struct {
				Departure struct {
					At string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					At string `json:"at"`
				} `json:"arrival"`
			} `json:"segments"`
		} `json:"itineraries"`
	} `json:"data"`
}

// searchFlightsAmadeus queries Amadeus flight offers. The date is whatever
// the extractor captured, so it is normalized to the YYYY-MM-DD form the
// API requires.
func (c *APIClient) searchFlightsAmadeus(ctx context.Context, from, to, date string) ([]FlightOffer, error) {
	day, err := ParseLooseDate(date)
	if err != nil {
		return nil, fmt.Errorf("flights: departure date %q: %w", date, err)
	}
	u := fmt.Sprintf("%s/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s&departureDate=%s&adults=1",
		c.cfg.AmadeusBaseURL, url.QueryEscape(strings.ToUpper(from)), url.QueryEscape(strings.ToUpper(to)), day.Format("2006-01-02"))
	var resp amadeusFlightResponse
	if err := getJSON(ctx, c.amadeus, u, &resp); err != nil {
		return nil, fmt.Errorf("flights %s-%s: %w", from, to, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("flights %s-%s: %w", from, to, ErrNotFound)
	}
	out := make([]FlightOffer, 0, len(resp.Data))
	for _, f := range resp.Data {
		offer := FlightOffer{Price: f.Price.Total}
		if len(f.ValidatingAirlineCodes) > 0 {
			offer.Airline = f.ValidatingAirlineCodes[0]
		}
		if len(f.Itineraries) > 0 {
			it := f.Itineraries[0]
			offer.Duration = it.Duration
			if len(it.Segments) > 0 {
				offer.Departure = it.Segments[0].Departure.At
				offer.Arrival = it.Segments[len(it.Segments)-1].Arrival.At
			}
		}
		out = append(out, offer)
	}
	return out, nil
}

// SearchFlights tries Amadeus first and falls back to AviationStack's
// real-time feed (no pricing there).
func (c *APIClient) SearchFlights(ctx context.Context, from, to, date string) ([]FlightOffer, error) {
	offers, err := c.searchFlightsAmadeus(ctx, from, to, date)
	if err == nil {
		return offers, nil
	}
	log.Debug().Err(err).Msg("amadeus flight search failed, falling back to aviationstack")
	return c.searchFlightsAviation(ctx, from, to, date)
}

type amadeusHotelResponse struct {
	Data []struct {
		Hotel struct {
			Name    string `json:"name"`
			Rating  string `json:"rating"`
			Address struct {
				Lines []string `json:"lines"`
			} `json:"address"`
			Amenities []string `json:"amenities"`
		} `json:"hotel"`
		Offers []struct {
			Price struct {
				Total string `json:"total"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

func (c *APIClient) SearchHotels(ctx context.Context, city, checkIn, checkOut string) ([]Hotel, error) {
	in, err := ParseLooseDate(checkIn)
	if err != nil {
		return nil, fmt.Errorf("hotels: check-in %q: %w", checkIn, err)
	}
	out, err := ParseLooseDate(checkOut)
	if err != nil {
		return nil, fmt.Errorf("hotels: check-out %q: %w", checkOut, err)
	}
	u := fmt.Sprintf("%s/v2/shopping/hotel-offers?cityCode=%s&checkInDate=%s&checkOutDate=%s",
		c.cfg.AmadeusBaseURL, url.QueryEscape(strings.ToUpper(city)), in.Format("2006-01-02"), out.Format("2006-01-02"))
	var resp amadeusHotelResponse
	if err := getJSON(ctx, c.amadeus, u, &resp); err != nil {
		return nil, fmt.Errorf("hotels %q: %w", city, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("hotels %q: %w", city, ErrNotFound)
	}
	hotels := make([]Hotel, 0, len(resp.Data))
	for _, h := range resp.Data {
		hotel := Hotel{
			Name:      h.Hotel.Name,
			Rating:    h.Hotel.Rating,
			Location:  strings.Join(h.Hotel.Address.Lines, ", "),
			Amenities: h.Hotel.Amenities,
		}
		if hotel.Amenities == nil {
			hotel.Amenities = []string{}
		}
		if len(h.Offers) > 0 {
			hotel.Price = h.Offers[0].Price.Total
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}
