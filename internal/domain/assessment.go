package domain

type RouteType string

const (
	RouteSafe     RouteType = "safe"
	RouteModerate RouteType = "moderate"
	RouteRisky    RouteType = "risky"
)

// RouteTypeFor derives the route class from a clamped safety score.
func RouteTypeFor(safetyScore int) RouteType {
	switch {
	case safetyScore >= 80:
		return RouteSafe
	case safetyScore >= 60:
		return RouteModerate
	default:
		return RouteRisky
	}
}

type WeatherCondition string

const (
	WeatherClear  WeatherCondition = "clear"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherStormy WeatherCondition = "stormy"
)

type Weather struct {
	Condition   WeatherCondition `json:"condition"`
	Score       int              `json:"score"` // 0..100, higher is better
	Temperature float64          `json:"temperature"`
}

// SafetyAssessment is the result of one scoring call. All numeric fields are
// clamped to [0,100]; Features is a set, ordering carries no meaning.
type SafetyAssessment struct {
	SafetyScore   int       `json:"safety_score"`
	LightingScore int       `json:"lighting_score"`
	CrimeRisk     int       `json:"crime_risk"`
	CrowdDensity  int       `json:"crowd_density"`
	Weather       Weather   `json:"weather"`
	HelpPoints    int       `json:"help_points"`
	Features      []string  `json:"features"`
	RouteType     RouteType `json:"route_type"`
}

func (a SafetyAssessment) HasFeature(f string) bool {
	for _, v := range a.Features {
		if v == f {
			return true
		}
	}
	return false
}

// RouteAnalysis augments an assessment with the straight-line distance and a
// walking-time estimate at a fixed 5 km/h.
type RouteAnalysis struct {
	SafetyAssessment
	DistanceMeters float64 `json:"distance_meters"`
	Distance       string  `json:"distance"` // "1.2 km"
	TimeMinutes    int     `json:"time_minutes"`
	Time           string  `json:"time"` // "15 min"
}

// RouteOption is one entry of the route optimization response. Alternative
// routes beyond the direct one are canned suggestions, not pathfinding.
type RouteOption struct {
	Type      string        `json:"type"`
	Name      string        `json:"name"`
	Analysis  RouteAnalysis `json:"analysis"`
	Waypoints []Coordinate  `json:"waypoints"`
}

type RoutePlan struct {
	Routes         []RouteOption `json:"routes"`
	Recommendation string        `json:"recommendation"`
}

// ForecastEntry is one hour of the safety trend forecast.
type ForecastEntry struct {
	Time           string  `json:"time"` // "18:00"
	Hour           int     `json:"hour"`
	CrimeRisk      float64 `json:"crime_risk"`
	CrowdDensity   float64 `json:"crowd_density"`
	SafetyScore    float64 `json:"safety_score"`
	Recommendation string  `json:"recommendation"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PointRisk is a single-coordinate risk snapshot.
type PointRisk struct {
	CrimeRisk    float64   `json:"crime_risk"`
	CrowdDensity float64   `json:"crowd_density"`
	Weather      Weather   `json:"weather_impact"`
	OverallRisk  float64   `json:"overall_risk"`
	RiskLevel    RiskLevel `json:"risk_level"`
}

// AreaSnapshot is one row of the area dashboard.
type AreaSnapshot struct {
	Location     string     `json:"location"`
	Coordinates  Coordinate `json:"coordinates"`
	CrimeRisk    float64    `json:"crime_risk"`
	CrowdDensity float64    `json:"crowd_density"`
	SafetyScore  float64    `json:"safety_score"`
}
