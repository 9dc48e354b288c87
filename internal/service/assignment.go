package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"crashph/internal/domain"

	"github.com/google/uuid"
)

// NearestOfficePolicy ranks offices by haversine distance to the report
// coordinates, breaking ties by earliest office creation. Locations are
// read through the cache and reloaded from storage on a miss.
type NearestOfficePolicy struct {
	offices OfficeStore
	cache   LocationCache
	logger  *slog.Logger
	ttl     time.Duration
}

func NewNearestOfficePolicy(offices OfficeStore, cache LocationCache, logger *slog.Logger, ttl time.Duration) *NearestOfficePolicy {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &NearestOfficePolicy{
		offices: offices,
		cache:   cache,
		logger:  logger,
		ttl:     ttl,
	}
}

func (p *NearestOfficePolicy) Assign(ctx context.Context, lat, lng float64) (*uuid.UUID, error) {
	locations, err := p.loadLocations(ctx)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, nil
	}

	// Locations come ordered by creation, so strict less-than keeps
	// the earliest office on equal distance.
	best := locations[0]
	bestDist := haversine(lat, lng, best.Lat, best.Lng)
	for _, loc := range locations[1:] {
		dist := haversine(lat, lng, loc.Lat, loc.Lng)
		if dist < bestDist {
			best = loc
			bestDist = dist
		}
	}

	p.logger.Debug("nearest office selected",
		slog.String("office_id", best.ID.String()),
		slog.Float64("distance_km", bestDist),
	)

	id := best.ID
	return &id, nil
}

func (p *NearestOfficePolicy) loadLocations(ctx context.Context) ([]domain.OfficeLocation, error) {
	locations, err := p.cache.Get(ctx)
	if err != nil {
		p.logger.Warn("office location cache read failed", slog.Any("error", err))
	}
	if locations != nil {
		return locations, nil
	}

	locations, err = p.offices.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, locations, p.ttl); err != nil {
		p.logger.Warn("office location cache write failed", slog.Any("error", err))
	}

	return locations, nil
}

// FirstOfficePolicy is the original placeholder: whichever office was
// created first gets every report. Swappable with the nearest policy
// behind the same interface.
type FirstOfficePolicy struct {
	offices OfficeStore
}

func NewFirstOfficePolicy(offices OfficeStore) *FirstOfficePolicy {
	return &FirstOfficePolicy{offices: offices}
}

func (p *FirstOfficePolicy) Assign(ctx context.Context, lat, lng float64) (*uuid.UUID, error) {
	locations, err := p.offices.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, nil
	}
	id := locations[0].ID
	return &id, nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0 // Earth radius, km

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
