package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"safewalk/internal/domain"
	"safewalk/internal/geo"
)

// Proximity thresholds of the scoring heuristic, in meters.
const (
	safeZoneRadius     = 1000.0
	helpPointRadius    = 500.0
	hotspotRadius      = 700.0
	hotspotAlertRadius = 300.0

	walkingSpeedKmh = 5.0
)

// Feature tags. The features field of an assessment is a set; only
// membership matters.
const (
	featRainy      = "Rainy weather - reduced visibility"
	featStormy     = "Storm warning - seek shelter"
	featClear      = "Clear weather - good visibility"
	featHighCrowd  = "High crowd density - safer area"
	featLowCrowd   = "Low crowd density - isolated area"
	featPolice     = "Police station nearby"
	featHospital   = "Hospital nearby"
	featCommercial = "Active commercial area"
	featCrimeAlert = "AI alert: high crime risk zone"
	featDaytime    = "Daytime travel - safer"
	featNighttime  = "Nighttime travel - extra caution needed"
)

type routeService struct {
	logger    *slog.Logger
	weather   WeatherProvider
	predictor RiskPredictor
	ref       ReferenceData
	now       func() time.Time
}

func NewRouteService(logger *slog.Logger, weather WeatherProvider, predictor RiskPredictor, ref ReferenceData, now func() time.Time) RouteService {
	if now == nil {
		now = time.Now
	}
	return &routeService{
		logger:    logger,
		weather:   weather,
		predictor: predictor,
		ref:       ref,
		now:       now,
	}
}

// AnalyzeRoute scores a walking route from origin to destination.
//
// Conditions (weather, crime, crowd) are sampled at the origin only, never at
// the destination or along the way. That asymmetry comes from the reference
// heuristic and is kept on purpose.
func (s *routeService) AnalyzeRoute(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteAnalysis, error) {
	assessment := s.assess(ctx, origin)

	distance := geo.Distance(origin, destination)
	timeMinutes := int(distance / 1000 / walkingSpeedKmh * 60)

	s.logger.Debug("route analyzed",
		slog.Int("safety_score", assessment.SafetyScore),
		slog.String("route_type", string(assessment.RouteType)),
		slog.Float64("distance_m", distance),
	)

	return domain.RouteAnalysis{
		SafetyAssessment: assessment,
		DistanceMeters:   distance,
		Distance:         fmt.Sprintf("%.1f km", distance/1000),
		TimeMinutes:      timeMinutes,
		Time:             fmt.Sprintf("%d min", timeMinutes),
	}, nil
}

// assess runs the scoring accumulation. The step order matters: weather
// multiplier first, then crowd, zones, hotspots, and the time-of-day
// multiplier last before clamping.
func (s *routeService) assess(ctx context.Context, origin domain.Coordinate) domain.SafetyAssessment {
	safety := 75.0
	lighting := 65.0
	helpPoints := 0
	features := make(map[string]struct{})

	now := s.now()
	hour := now.Hour()

	w := s.weather.Current(ctx, origin)
	crime := s.predictor.PredictCrime(ctx, origin, hour, int(now.Weekday()))
	crowd := s.predictor.PredictCrowd(ctx, origin, hour)

	safety *= float64(w.Score) / 100

	// No tag for cloudy; the reference formula only labels these three.
	switch w.Condition {
	case domain.WeatherRainy:
		features[featRainy] = struct{}{}
	case domain.WeatherStormy:
		features[featStormy] = struct{}{}
	case domain.WeatherClear:
		features[featClear] = struct{}{}
	}

	if crowd > 70 {
		safety += 15
		features[featHighCrowd] = struct{}{}
	} else if crowd < 30 {
		safety -= 10
		features[featLowCrowd] = struct{}{}
	}

	for _, m := range s.ref.SafeZonesWithin(origin, safeZoneRadius) {
		safety += m.POI.Weight * 0.1
		if m.DistanceMeters <= helpPointRadius {
			helpPoints++
			if tag := categoryFeature(m.POI.Category); tag != "" {
				features[tag] = struct{}{}
			}
		}
	}

	for _, m := range s.ref.HotspotsWithin(origin, hotspotRadius) {
		enhancedDanger := m.POI.Weight * (crime / 50)
		safety -= enhancedDanger * 0.2
		if m.DistanceMeters <= hotspotAlertRadius {
			features[featCrimeAlert] = struct{}{}
		}
	}

	if hour >= 6 && hour <= 20 {
		safety *= 1.15
		features[featDaytime] = struct{}{}
	} else {
		safety *= 0.75
		features[featNighttime] = struct{}{}
	}

	if hour >= 18 || hour <= 6 {
		lighting = math.Max(30, lighting-crime*0.5)
	}

	safetyScore := clampScore(safety)

	return domain.SafetyAssessment{
		SafetyScore:   safetyScore,
		LightingScore: clampScore(lighting),
		CrimeRisk:     clampScore(crime),
		CrowdDensity:  clampScore(crowd),
		Weather:       w,
		HelpPoints:    helpPoints,
		Features:      featureSet(features),
		RouteType:     domain.RouteTypeFor(safetyScore),
	}
}

func (s *routeService) OptimizeRoutes(ctx context.Context, origin, destination domain.Coordinate) (domain.RoutePlan, error) {
	direct, err := s.AnalyzeRoute(ctx, origin, destination)
	if err != nil {
		return domain.RoutePlan{}, err
	}

	// The alternatives are canned suggestions, not pathfinding: there is no
	// road network in scope.
	routes := []domain.RouteOption{
		{
			Type:      "direct",
			Name:      "Direct Route",
			Analysis:  direct,
			Waypoints: []domain.Coordinate{},
		},
		{
			Type:     "safe",
			Name:     "Safest Route (via Police Station)",
			Analysis: cannedAnalysis(95, 85, 15, 3, []string{featPolice, "Well-lit streets", "CCTV coverage"}, "1.4 km", 18),
		},
		{
			Type:     "balanced",
			Name:     "Balanced Route",
			Analysis: cannedAnalysis(80, 70, 30, 2, []string{featCommercial, "Good lighting"}, "1.2 km", 15),
		},
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Analysis.SafetyScore > routes[j].Analysis.SafetyScore
	})

	return domain.RoutePlan{
		Routes:         routes,
		Recommendation: routes[0].Name,
	}, nil
}

func (s *routeService) ForecastSafety(ctx context.Context, c domain.Coordinate, hoursAhead int) ([]domain.ForecastEntry, error) {
	if hoursAhead <= 0 {
		hoursAhead = 6
	}

	now := s.now()
	entries := make([]domain.ForecastEntry, 0, hoursAhead)
	for i := 0; i < hoursAhead; i++ {
		t := now.Add(time.Duration(i) * time.Hour)
		hour := t.Hour()

		crime := s.predictor.PredictCrime(ctx, c, hour, int(t.Weekday()))
		crowd := s.predictor.PredictCrowd(ctx, c, hour)

		safety := 100 - (crime*0.7 + (100-crowd)*0.3)
		safety = math.Max(0, math.Min(100, safety))

		entries = append(entries, domain.ForecastEntry{
			Time:           t.Format("15:04"),
			Hour:           hour,
			CrimeRisk:      round1(crime),
			CrowdDensity:   round1(crowd),
			SafetyScore:    round1(safety),
			Recommendation: recommendationFor(safety),
		})
	}
	return entries, nil
}

func (s *routeService) PointRisk(ctx context.Context, c domain.Coordinate) (domain.PointRisk, error) {
	now := s.now()
	hour := now.Hour()

	crime := s.predictor.PredictCrime(ctx, c, hour, int(now.Weekday()))
	crowd := s.predictor.PredictCrowd(ctx, c, hour)
	w := s.weather.Current(ctx, c)

	overall := crime*0.6 + (100-crowd)*0.3 + (100-float64(w.Score))*0.1

	level := domain.RiskLow
	switch {
	case overall > 70:
		level = domain.RiskHigh
	case overall > 40:
		level = domain.RiskMedium
	}

	return domain.PointRisk{
		CrimeRisk:    round1(crime),
		CrowdDensity: round1(crowd),
		Weather:      w,
		OverallRisk:  round1(overall),
		RiskLevel:    level,
	}, nil
}

// sampleAreas are the fixed locations of the area dashboard.
var sampleAreas = []struct {
	name string
	c    domain.Coordinate
}{
	{"City Center", domain.Coordinate{Lat: 18.5204, Lng: 73.8567}},
	{"Commercial District", domain.Coordinate{Lat: 18.5404, Lng: 73.8767}},
	{"Residential Area", domain.Coordinate{Lat: 18.5089, Lng: 73.8260}},
	{"Business Quarter", domain.Coordinate{Lat: 18.5640, Lng: 73.7802}},
}

func (s *routeService) AreaDashboard(ctx context.Context) ([]domain.AreaSnapshot, error) {
	now := s.now()
	hour := now.Hour()

	out := make([]domain.AreaSnapshot, 0, len(sampleAreas))
	for _, area := range sampleAreas {
		crime := s.predictor.PredictCrime(ctx, area.c, hour, int(now.Weekday()))
		crowd := s.predictor.PredictCrowd(ctx, area.c, hour)

		out = append(out, domain.AreaSnapshot{
			Location:     area.name,
			Coordinates:  area.c,
			CrimeRisk:    round1(crime),
			CrowdDensity: round1(crowd),
			SafetyScore:  round1(100 - crime*0.7),
		})
	}
	return out, nil
}

func (s *routeService) SafetyZones(_ context.Context) ([]domain.PointOfInterest, error) {
	return s.ref.All(), nil
}

func categoryFeature(cat domain.POICategory) string {
	switch cat {
	case domain.POIPolice:
		return featPolice
	case domain.POIHospital:
		return featHospital
	case domain.POICommercial:
		return featCommercial
	default:
		return ""
	}
}

func cannedAnalysis(safety, lighting, crime, helpPoints int, features []string, distance string, minutes int) domain.RouteAnalysis {
	return domain.RouteAnalysis{
		SafetyAssessment: domain.SafetyAssessment{
			SafetyScore:   safety,
			LightingScore: lighting,
			CrimeRisk:     crime,
			CrowdDensity:  50,
			HelpPoints:    helpPoints,
			Features:      features,
			RouteType:     domain.RouteTypeFor(safety),
		},
		Distance:    distance,
		TimeMinutes: minutes,
		Time:        fmt.Sprintf("%d min", minutes),
	}
}

func recommendationFor(safety float64) string {
	switch {
	case safety >= 80:
		return "Safe to travel"
	case safety >= 60:
		return "Exercise caution"
	case safety >= 40:
		return "Consider alternative route"
	default:
		return "High risk - avoid if possible"
	}
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

// featureSet flattens the tag set into a sorted slice. Sorting is only for
// stable JSON output; consumers must not read meaning into the order.
func featureSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
