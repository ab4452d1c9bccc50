// Package geocoder resolves geographic coordinates to political place
// names (country, plus US state when the country is the United States)
// by polygon containment against pre-loaded boundary datasets. No network
// reverse-geocoding call happens on the hot path: each dataset is fetched
// at most once per process and scanned in memory afterwards.
package geocoder

import (
	"fmt"
	"log/slog"

	"thermaglobe/internal/boundary"
	"thermaglobe/internal/config"
	"thermaglobe/internal/geometry"
	"thermaglobe/internal/types"
)

// usaNames holds the country names that trigger the state lookup. The
// country and state datasets are not guaranteed to agree on which official
// form they carry, so both are accepted.
var usaNames = map[string]bool{
	"United States of America": true,
	"United States":            true,
}

// usaLabelSuffix is appended to the state name in the combined label,
// regardless of which country-name variant matched.
const usaLabelSuffix = ", USA"

// Service resolves coordinates against offline boundary datasets.
type Service interface {
	// ResolveCountry maps a coordinate to a country name. The country
	// dataset is loaded and cached on first use; a load failure is
	// returned to the caller and may be retried on the next call.
	ResolveCountry(latitude, longitude float64) (*types.Resolution, error)

	// ResolveUSState maps a coordinate to the name of the containing US
	// state, or "" when no state contains it.
	ResolveUSState(latitude, longitude float64) (string, error)

	// ResolveLocation cascades country resolution into state resolution
	// for US coordinates, rewriting the label to "{State}, USA".
	ResolveLocation(latitude, longitude float64) (*types.Resolution, error)
}

type service struct {
	countries *datasetCache
	states    *datasetCache
	logger    *slog.Logger
}

// NewService builds a resolver over the datasets named in the
// configuration: the countries file with a remote fallback, and the
// bundled US states file with no fallback.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	countrySources := []boundary.Source{
		boundary.FileSource{Path: cfg.Dataset.CountriesPath},
		boundary.URLSource{URL: cfg.Dataset.CountriesURL},
	}
	stateSources := []boundary.Source{
		boundary.FileSource{Path: cfg.Dataset.USStatesPath},
	}
	return NewServiceWithSources(countrySources, stateSources, logger)
}

// NewServiceWithSources builds a resolver over explicit source lists.
// This is useful for testing with fixture files or in-memory servers.
func NewServiceWithSources(countrySources, stateSources []boundary.Source, logger *slog.Logger) Service {
	return &service{
		countries: newDatasetCache(countrySources),
		states:    newDatasetCache(stateSources),
		logger:    logger.With("component", "geocoder"),
	}
}

func (s *service) ResolveCountry(latitude, longitude float64) (*types.Resolution, error) {
	if err := geometry.ValidateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}
	coll, err := s.countries.get()
	if err != nil {
		return nil, fmt.Errorf("loading country boundaries: %w", err)
	}
	return resolve(coll, latitude, longitude), nil
}

func (s *service) ResolveUSState(latitude, longitude float64) (string, error) {
	if err := geometry.ValidateCoordinate(latitude, longitude); err != nil {
		return "", err
	}
	coll, err := s.states.get()
	if err != nil {
		return "", fmt.Errorf("loading state boundaries: %w", err)
	}
	res := resolve(coll, latitude, longitude)
	// No ocean sentinel at the state level: no match is just "".
	return res.Country, nil
}

func (s *service) ResolveLocation(latitude, longitude float64) (*types.Resolution, error) {
	res, err := s.ResolveCountry(latitude, longitude)
	if err != nil {
		return nil, err
	}
	if !res.IsLand() || !usaNames[res.Country] {
		return res, nil
	}

	// The state stage receives the caller's original coordinate, not the
	// normalized one, and degrades to the country label if its dataset
	// cannot be loaded.
	state, err := s.ResolveUSState(latitude, longitude)
	if err != nil {
		s.logger.Warn("state lookup unavailable, keeping country label",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return res, nil
	}
	if state != "" {
		res.Label = state + usaLabelSuffix
	}
	return res, nil
}

// ResolveSync resolves a coordinate against an already-loaded collection.
// It runs the same normalize → prefilter → scan pipeline as the service
// methods with no caching side effects, which makes it suitable for tests
// and offline validation.
func ResolveSync(latitude, longitude float64, coll *boundary.Collection) (*types.Resolution, error) {
	if err := geometry.ValidateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}
	return resolve(coll, latitude, longitude), nil
}

// resolve normalizes the coordinate and scans the collection in dataset
// order: cheap bounding-box rejection first, full containment only on a
// box hit, first containing feature wins.
func resolve(coll *boundary.Collection, latitude, longitude float64) *types.Resolution {
	lat := geometry.ClampLatitude(latitude)
	lon := geometry.NormalizeLongitude(longitude)

	for _, entry := range coll.Entries() {
		if !entry.BBox.Contains(lon, lat) {
			continue
		}
		if !geometry.GeometryContains(entry.Feature.Geometry, lon, lat) {
			continue
		}
		return &types.Resolution{
			Country:   entry.Name,
			Label:     entry.Name,
			Latitude:  lat,
			Longitude: lon,
		}
	}
	return &types.Resolution{
		Label:     types.LabelOpenOcean,
		Latitude:  lat,
		Longitude: lon,
	}
}
