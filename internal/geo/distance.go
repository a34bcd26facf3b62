// Package geo provides great-circle distance calculations.
package geo

import "math"

// EarthRadiusMiles is the mean Earth radius used for all distances.
const EarthRadiusMiles = 3959.0

// DistanceMiles returns the haversine distance in statute miles between two
// points given in decimal degrees.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
