// Package timezone maps coordinates to IANA timezone names. The lookup is
// fully offline (tzf ships its own boundary data) and is used to enrich
// resolved locations before they reach the globe client.
package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	// GetTimezone returns the IANA timezone name for the coordinate
	// (oceans resolve to Etc zones), or "" when no polygon matches.
	GetTimezone(latitude, longitude float64) string
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	once     sync.Once
	initErr  error
)

// NewService creates or returns the singleton timezone service. A
// singleton because tzf loads its polygon data into memory once and the
// finder is read-only afterwards.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "America/Denver" or "Europe/London".
func (s *service) GetTimezone(latitude, longitude float64) string {
	return s.finder.GetTimezoneName(longitude, latitude)
}
