package service

import (
	"strings"

	"homeverse_backend/internal/valuation/domain"
)

// ZoneResolver maps free-text locations to zones and landmark premiums.
// Matching is case-insensitive substring containment in dataset order.
type ZoneResolver struct {
	ds *domain.Dataset
}

// NewZoneResolver creates a resolver over an immutable dataset.
func NewZoneResolver(ds *domain.Dataset) *ZoneResolver {
	return &ZoneResolver{ds: ds}
}

// ResolveZone tries localities, then landmarks, then zone keywords, and
// finally falls back to the default zone. It never fails.
func (r *ZoneResolver) ResolveZone(location string) domain.ZoneMatch {
	input := strings.ToLower(strings.TrimSpace(location))

	if input != "" {
		for _, z := range r.ds.Zones {
			for _, locality := range z.Localities {
				if strings.Contains(input, strings.ToLower(locality)) {
					return r.match(z.Key, domain.ConfidenceHigh, locality, "")
				}
			}
		}

		for _, lm := range r.ds.Landmarks {
			if strings.Contains(input, strings.ToLower(lm.Name)) {
				return r.match(lm.Zone, domain.ConfidenceHigh, "", lm.Name)
			}
		}

		for _, z := range r.ds.Zones {
			for _, kw := range z.Keywords {
				if kw != "" && strings.Contains(input, strings.ToLower(kw)) {
					return r.match(z.Key, domain.ConfidenceMedium, "", "")
				}
			}
		}
	}

	return r.match(r.ds.DefaultZone, domain.ConfidenceLow, "", "")
}

// LandmarkMultiplier returns the multiplier of the first landmark named in
// location, or 1.0 when none is.
func (r *ZoneResolver) LandmarkMultiplier(location string) float64 {
	input := strings.ToLower(location)
	for _, lm := range r.ds.Landmarks {
		if strings.Contains(input, strings.ToLower(lm.Name)) {
			return lm.Multiplier
		}
	}
	return 1.0
}

func (r *ZoneResolver) match(zoneKey string, conf domain.Confidence, locality, landmark string) domain.ZoneMatch {
	z := r.ds.ZoneOrDefault(zoneKey)
	return domain.ZoneMatch{
		Zone:            z.Key,
		ZoneName:        z.Name,
		Confidence:      conf,
		MatchedLocality: locality,
		MatchedLandmark: landmark,
	}
}
