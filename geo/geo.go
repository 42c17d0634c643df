package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/urbanfix/urbanfix"
)

// UnknownPlace is what a Report carries when reverse geocoding fails;
// submissions never fail on a geocoder outage.
const UnknownPlace = "Unknown"

// A Place is the administrative area resolved from a coordinate pair.
type Place struct {
	Locality string
	County   string
}

// A Locator resolves coordinates to the Place containing them.
type Locator interface {
	Locate(ctx context.Context, lat, lng float64) (Place, error)
}

// A NominatimLocator reverse geocodes through a Nominatim instance.
//
// Nominatim's usage policy caps requests at one per second;
// callers are expected to stay under that on their own.
type NominatimLocator struct {
	baseURL string
	client  *http.Client
}

// NewNominatimLocator constructs a NominatimLocator against baseURL,
// defaulting to the public instance when baseURL is "".
func NewNominatimLocator(baseURL string) *NominatimLocator {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	return &NominatimLocator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type nominatimResponse struct {
	Address struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		County       string `json:"county"`
		Municipality string `json:"municipality"`
	} `json:"address"`
}

// Locate reverse geocodes the coordinates.
// Fields Nominatim cannot resolve come back as UnknownPlace.
func (n *NominatimLocator) Locate(ctx context.Context, lat, lng float64) (Place, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("%w: building geocode request: %s", urbanfix.ErrUnexpected, err)
	}

	res, err := n.client.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("%w: geocode request failed: %s", urbanfix.ErrUnexpected, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("%w: geocoder responded %d", urbanfix.ErrUnexpected, res.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return Place{}, fmt.Errorf("%w: decoding geocode response: %s", urbanfix.ErrUnexpected, err)
	}

	place := Place{Locality: UnknownPlace, County: UnknownPlace}
	for _, candidate := range []string{body.Address.City, body.Address.Town, body.Address.Village, body.Address.Municipality} {
		if candidate != "" {
			place.Locality = candidate
			break
		}
	}

	if body.Address.County != "" {
		place.County = body.Address.County
	}

	return place, nil
}

// A FixedLocator always resolves to the same Place. Useful in tests
// and as the fallback when no geocoder is configured.
type FixedLocator struct {
	Place Place
}

func (f FixedLocator) Locate(context.Context, float64, float64) (Place, error) {
	if f.Place == (Place{}) {
		return Place{Locality: UnknownPlace, County: UnknownPlace}, nil
	}

	return f.Place, nil
}
