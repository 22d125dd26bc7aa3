package server

import (
	"context"
	"regexp"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"travel-planner-backend/internal/intent"
	"travel-planner-backend/internal/travel"
)

// Bundle is the combined travel-data payload injected into the model
// context for a turn. Fields stay nil when their lookup was not ready or
// failed.
type Bundle struct {
	CurrentWeather    *travel.WeatherData        `json:"currentWeather,omitempty"`
	HistoricalWeather []travel.HistoricalWeather `json:"historicalWeather,omitempty"`
	Flights           []travel.FlightOffer       `json:"flights,omitempty"`
	Hotels            []travel.Hotel             `json:"hotels,omitempty"`
	Places            []travel.Place             `json:"places,omitempty"`
}

// enrich fans out the gateway calls whose required fields are known. Each
// call isolates its own failure; nil is returned when no destination is
// known or every issued call failed, and the turn proceeds without
// enrichment context.
func (s *Server) enrich(ctx context.Context, info intent.TravelInfo) *Bundle {
	if info.Destination == "" {
		return nil
	}

	var bundle Bundle
	var succeeded atomic.Int32
	g := new(errgroup.Group)

	run := func(name string, fetch func() error) {
		g.Go(func() error {
			if err := fetch(); err != nil {
				log.Warn().Err(err).Str("lookup", name).Msg("travel lookup failed")
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}

	run("weather", func() error {
		w, err := s.travel.DetailedWeather(ctx, info.Destination)
		if err != nil {
			return err
		}
		bundle.CurrentWeather = w
		return nil
	})

	if info.Dates != nil {
		lastYear := time.Now().Year() - 1
		run("historical-weather", func() error {
			h, err := s.travel.HistoricalWeather(ctx, info.Destination,
				shiftYear(info.Dates.Start, lastYear), shiftYear(info.Dates.End, lastYear))
			if err != nil {
				return err
			}
			bundle.HistoricalWeather = h
			return nil
		})
		run("hotels", func() error {
			h, err := s.travel.SearchHotels(ctx, info.Destination, info.Dates.Start, info.Dates.End)
			if err != nil {
				return err
			}
			bundle.Hotels = h
			return nil
		})
	}

	if info.Source != "" && info.Dates != nil {
		run("flights", func() error {
			f, err := s.travel.SearchFlights(ctx, info.Source, info.Destination, info.Dates.Start)
			if err != nil {
				return err
			}
			bundle.Flights = f
			return nil
		})
	}

	run("places", func() error {
		p, err := s.travel.SearchPlaces(ctx, info.Destination)
		if err != nil {
			return err
		}
		bundle.Places = p
		return nil
	})

	_ = g.Wait()
	if succeeded.Load() == 0 {
		return nil
	}
	return &bundle
}

var yearRe = regexp.MustCompile(`\d{4}`)

// shiftYear substitutes the first 4-digit year token in a raw date string.
// A string with no year passes through unchanged, so the "historical" query
// silently targets the same year. Upstream does the same; kept as-is.
func shiftYear(date string, year int) string {
	replaced := false
	return yearRe.ReplaceAllStringFunc(date, func(m string) string {
		if replaced {
			return m
		}
		replaced = true
		return strconv.Itoa(year)
	})
}
