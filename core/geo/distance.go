package geo

import (
	"math"
	"sort"
)

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371

// NearbyEntry is one neighbor in a place's nearest-neighbor list.
type NearbyEntry struct {
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distanceKm"`
}

// HaversineKm returns the great-circle distance in kilometers between
// two latitude/longitude points. The formula is symmetric: swapping the
// endpoints yields the same distance.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// NearestNeighbors computes the top-N nearest list for every place that
// has coordinates. Places without coordinates are excluded entirely.
//
// This is an all-pairs O(n²) pass over the resolved places; it runs once
// per batch job, not on a request path, so no spatial index is kept.
func NearestNeighbors(places []Place, topN int) map[string][]NearbyEntry {
	var resolved []*Place
	for i := range places {
		if places[i].Lat != nil && places[i].Lon != nil {
			resolved = append(resolved, &places[i])
		}
	}

	nearby := make(map[string][]NearbyEntry, len(resolved))
	for _, place := range resolved {
		entries := make([]NearbyEntry, 0, len(resolved)-1)
		for _, other := range resolved {
			if other.Slug == place.Slug {
				continue
			}
			dist := HaversineKm(*place.Lat, *place.Lon, *other.Lat, *other.Lon)
			entries = append(entries, NearbyEntry{
				Slug:       other.Slug,
				Name:       other.Name,
				DistanceKm: math.Round(dist*10) / 10,
			})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].DistanceKm != entries[j].DistanceKm {
				return entries[i].DistanceKm < entries[j].DistanceKm
			}
			return entries[i].Slug < entries[j].Slug
		})
		if len(entries) > topN {
			entries = entries[:topN]
		}
		nearby[place.Slug] = entries
	}
	return nearby
}
