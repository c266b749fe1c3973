package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/vatsimnerd/geocache"
)

// place is the subset of a Nominatim reverse geocoding result the cache
// cares about. Nominatim sends numbers as strings, json.Number takes both.
type place struct {
	DisplayName string        `json:"display_name"`
	BoundingBox []json.Number `json:"boundingbox"`
	Lat         json.Number   `json:"lat"`
	Lon         json.Number   `json:"lon"`
}

func (p *place) bbox() (geocache.BoundingBox, error) {
	values := make([]float64, len(p.BoundingBox))
	for i, n := range p.BoundingBox {
		f, err := n.Float64()
		if err != nil {
			return geocache.BoundingBox{}, fmt.Errorf("invalid bounding box value %q: %w", n, err)
		}
		values[i] = f
	}
	return geocache.BoundingBoxFromSlice(values)
}

// reference returns the result location, nil if the result has none.
func (p *place) reference() (*orb.Point, error) {
	if p.Lat == "" || p.Lon == "" {
		return nil, nil
	}
	lat, err := p.Lat.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", p.Lat, err)
	}
	lon, err := p.Lon.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", p.Lon, err)
	}
	return &orb.Point{lon, lat}, nil
}

func decodePlaces(r io.Reader) ([]place, error) {
	var places []place
	if err := json.NewDecoder(r).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode places: %w", err)
	}
	return places, nil
}

func readPlaces(filename string) ([]place, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return decodePlaces(file)
}

type loaded struct {
	name   string
	result geocache.SetResult
}

// loadPlaces stores every place in c. Places without a location are stored
// as they are, the size limit needs a reference point.
func loadPlaces(c *geocache.Cache, places []place, maxLength float64) ([]loaded, error) {
	results := make([]loaded, 0, len(places))
	for i := range places {
		p := &places[i]
		box, err := p.bbox()
		if err != nil {
			return nil, fmt.Errorf("place %d (%s): %w", i, p.DisplayName, err)
		}
		ref, err := p.reference()
		if err != nil {
			return nil, fmt.Errorf("place %d (%s): %w", i, p.DisplayName, err)
		}

		var res geocache.SetResult
		if ref != nil {
			res = c.SetWithMaxLength(p.DisplayName, box, *ref, maxLength)
		} else {
			res = c.Set(p.DisplayName, box, nil)
		}
		results = append(results, loaded{name: p.DisplayName, result: res})
	}
	return results, nil
}
