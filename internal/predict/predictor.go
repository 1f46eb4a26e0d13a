// Package predict estimates crime risk and crowd density for a coordinate.
// The estimates are deterministic formulas over time of day, weather and
// proximity to reference points; there is no trained model behind them.
package predict

import (
	"context"

	"safewalk/internal/domain"
	"safewalk/internal/refdata"
)

const (
	maxPoliceDistance = 5000.0 // meters; farther adds no more risk
	basePopulation    = 2000.0
	maxPopulation     = 10000.0
)

// WeatherSource is the slice of the weather provider the predictor needs.
type WeatherSource interface {
	Current(ctx context.Context, c domain.Coordinate) domain.Weather
}

type Predictor struct {
	ref     *refdata.Store
	weather WeatherSource
}

func NewPredictor(ref *refdata.Store, weather WeatherSource) *Predictor {
	return &Predictor{ref: ref, weather: weather}
}

// PredictCrime returns a crime risk in [0,100]. Risk grows towards night,
// in bad weather and far from police coverage.
func (p *Predictor) PredictCrime(ctx context.Context, c domain.Coordinate, hour, weekday int) float64 {
	_ = weekday // kept in the contract; the current formula is day-invariant

	w := p.weather.Current(ctx, c)
	policeDist := p.policeDistance(c)

	risk := 50.0 +
		float64(24-hour)*2 +
		(100-float64(w.Score))*0.3 +
		policeDist*0.01

	return clamp(risk)
}

// PredictCrowd returns a crowd density in [0,100]. Density peaks through the
// day, in good weather and near commercial zones.
func (p *Predictor) PredictCrowd(ctx context.Context, c domain.Coordinate, hour int) float64 {
	w := p.weather.Current(ctx, c)
	pop := p.populationDensity(c)

	density := 30.0 + float64(w.Score)*0.4 + pop*0.003
	if hour >= 6 {
		density += float64(hour) * 3
	}
	if hour <= 18 {
		density += float64(18-hour) * 2
	}

	return clamp(density)
}

func (p *Predictor) policeDistance(c domain.Coordinate) float64 {
	d, ok := p.ref.NearestDistance(c, domain.POIPolice)
	if !ok || d > maxPoliceDistance {
		return maxPoliceDistance
	}
	return d
}

// populationDensity estimates people per km² from commercial-zone proximity.
func (p *Predictor) populationDensity(c domain.Coordinate) float64 {
	density := basePopulation
	for _, m := range p.ref.SafeZonesWithin(c, 1000) {
		if m.POI.Category != domain.POICommercial {
			continue
		}
		density += (1000 - m.DistanceMeters) * 5
	}
	if density > maxPopulation {
		return maxPopulation
	}
	return density
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
