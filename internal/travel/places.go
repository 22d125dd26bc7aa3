package travel

import (
	"context"
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"
)

// SearchPlaces looks up top attractions for a city via Google Places text
// search and builds photo URLs from the returned references.
func (c *APIClient) SearchPlaces(ctx context.Context, city string) ([]Place, error) {
	if c.places == nil {
		return nil, fmt.Errorf("places %q: google places api key not configured", city)
	}
	resp, err := c.places.TextSearch(ctx, &maps.TextSearchRequest{
		Query: "attractions in " + city,
	})
	if err != nil {
		return nil, fmt.Errorf("places %q: %w", city, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("places %q: %w", city, ErrNotFound)
	}
	out := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		p := Place{
			Name:    r.Name,
			Rating:  r.Rating,
			Address: r.FormattedAddress,
		}
		if len(r.Types) > 0 {
			p.Type = r.Types[0]
		}
		for _, photo := range r.Photos {
			p.Photos = append(p.Photos, c.photoURL(photo.PhotoReference))
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *APIClient) photoURL(ref string) string {
	return fmt.Sprintf("%s?maxwidth=400&photoreference=%s&key=%s",
		c.cfg.PlacesPhotoBaseURL, url.QueryEscape(ref), url.QueryEscape(c.cfg.GooglePlacesAPIKey))
}
