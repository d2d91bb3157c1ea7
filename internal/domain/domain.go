package domain

// Role identifies which login pathway produced a session.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleGuest Role = "GUEST"
)

// Session represents the authenticated actor on this client.
type Session struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Role      Role   `json:"role"`
}

// IsGuest reports whether the session came from the guest pathway.
func (s Session) IsGuest() bool {
	return s.Role == RoleGuest
}

// Summary holds one aggregation window's health metrics, matching the
// backend's summary schema. Duration fields are "HH:MM:SS" strings.
// Weight and consumed-calorie fields are nullable on the backend and
// therefore pointers here.
type Summary struct {
	// Heart rate
	HrMin         float64 `json:"hrMin"`
	HrMax         float64 `json:"hrMax"`
	HrAvg         float64 `json:"hrAvg"`
	RhrMin        float64 `json:"rhrMin"`
	RhrMax        float64 `json:"rhrMax"`
	RhrAvg        float64 `json:"rhrAvg"`
	InactiveHrMin float64 `json:"inactiveHrMin"`
	InactiveHrMax float64 `json:"inactiveHrMax"`
	InactiveHrAvg float64 `json:"inactiveHrAvg"`

	// Calories
	CaloriesAvg         float64  `json:"caloriesAvg"`
	CaloriesGoal        float64  `json:"caloriesGoal"`
	CaloriesBmrAvg      float64  `json:"caloriesBmrAvg"`
	CaloriesConsumedAvg *float64 `json:"caloriesConsumedAvg"`
	CaloriesActiveAvg   float64  `json:"caloriesActiveAvg"`
	ActivitiesCalories  float64  `json:"activitiesCalories"`

	// Weight
	WeightMin *float64 `json:"weightMin"`
	WeightMax *float64 `json:"weightMax"`
	WeightAvg *float64 `json:"weightAvg"`

	// Hydration
	HydrationGoal   float64 `json:"hydrationGoal"`
	HydrationIntake float64 `json:"hydrationIntake"`
	HydrationAvg    float64 `json:"hydrationAvg"`
	SweatLoss       float64 `json:"sweatLoss"`
	SweatLossAvg    float64 `json:"sweatLossAvg"`

	// Stress and body battery
	BbMin     float64 `json:"bbMin"`
	BbMax     float64 `json:"bbMax"`
	StressAvg float64 `json:"stressAvg"`

	// Respiration and SpO2
	RrMin       float64 `json:"rrMin"`
	RrMax       float64 `json:"rrMax"`
	RrWakingAvg float64 `json:"rrWakingAvg"`
	Spo2Min     float64 `json:"spo2Min"`
	Spo2Avg     float64 `json:"spo2Avg"`

	// Sleep
	SleepMin    string `json:"sleepMin"`
	SleepMax    string `json:"sleepMax"`
	SleepAvg    string `json:"sleepAvg"`
	RemSleepMin string `json:"remSleepMin"`
	RemSleepMax string `json:"remSleepMax"`
	RemSleepAvg string `json:"remSleepAvg"`

	// Steps and floors
	StepsGoal  float64 `json:"stepsGoal"`
	Steps      float64 `json:"steps"`
	FloorsGoal float64 `json:"floorsGoal"`
	Floors     float64 `json:"floors"`

	// Activities
	Activities           float64 `json:"activities"`
	ActivitiesDistance   float64 `json:"activitiesDistance"`
	IntensityTimeGoal    string  `json:"intensityTimeGoal"`
	IntensityTime        string  `json:"intensityTime"`
	ModerateActivityTime string  `json:"moderateActivityTime"`
	VigorousActivityTime string  `json:"vigorousActivityTime"`
}

// DaySummary is a single calendar day's aggregated metrics.
type DaySummary struct {
	ID      string  `json:"id"`
	Day     string  `json:"day"`
	Summary Summary `json:"summary"`
}

// WeekSummary is one calendar week's aggregated metrics.
type WeekSummary struct {
	ID      string  `json:"id"`
	Week    string  `json:"week"`
	Summary Summary `json:"summary"`
}

// MonthSummary is one calendar month's aggregated metrics.
type MonthSummary struct {
	ID      string  `json:"id"`
	Month   string  `json:"month"`
	Summary Summary `json:"summary"`
}

// YearSummary is one calendar year's aggregated metrics.
type YearSummary struct {
	ID      string  `json:"id"`
	Year    string  `json:"year"`
	Summary Summary `json:"summary"`
}

// WindowDays is the fixed length of every RecentSummaries sequence.
const WindowDays = 7

// RecentSummaries is the 7-day window ending at LatestDay. Every metric
// field is an ordered sequence of WindowDays values, index-aligned by day
// offset with the oldest day first.
type RecentSummaries struct {
	ID        string `json:"id"`
	LatestDay string `json:"latestDay"`

	// Heart rate
	HrMin         []float64 `json:"hrMin"`
	HrMax         []float64 `json:"hrMax"`
	HrAvg         []float64 `json:"hrAvg"`
	RhrMin        []float64 `json:"rhrMin"`
	RhrMax        []float64 `json:"rhrMax"`
	RhrAvg        []float64 `json:"rhrAvg"`
	InactiveHrMin []float64 `json:"inactiveHrMin"`
	InactiveHrMax []float64 `json:"inactiveHrMax"`
	InactiveHrAvg []float64 `json:"inactiveHrAvg"`

	// Calories
	CaloriesAvg         []float64  `json:"caloriesAvg"`
	CaloriesGoal        []float64  `json:"caloriesGoal"`
	CaloriesBmrAvg      []float64  `json:"caloriesBmrAvg"`
	CaloriesConsumedAvg []*float64 `json:"caloriesConsumedAvg"`
	CaloriesActiveAvg   []float64  `json:"caloriesActiveAvg"`
	ActivitiesCalories  []float64  `json:"activitiesCalories"`

	// Weight
	WeightMin []*float64 `json:"weightMin"`
	WeightMax []*float64 `json:"weightMax"`
	WeightAvg []*float64 `json:"weightAvg"`

	// Hydration
	HydrationGoal   []float64 `json:"hydrationGoal"`
	HydrationIntake []float64 `json:"hydrationIntake"`
	HydrationAvg    []float64 `json:"hydrationAvg"`
	SweatLoss       []float64 `json:"sweatLoss"`
	SweatLossAvg    []float64 `json:"sweatLossAvg"`

	// Stress and body battery
	BbMin     []float64 `json:"bbMin"`
	BbMax     []float64 `json:"bbMax"`
	StressAvg []float64 `json:"stressAvg"`

	// Respiration and SpO2
	RrMin       []float64 `json:"rrMin"`
	RrMax       []float64 `json:"rrMax"`
	RrWakingAvg []float64 `json:"rrWakingAvg"`
	Spo2Min     []float64 `json:"spo2Min"`
	Spo2Avg     []float64 `json:"spo2Avg"`

	// Sleep
	SleepMin    []string `json:"sleepMin"`
	SleepMax    []string `json:"sleepMax"`
	SleepAvg    []string `json:"sleepAvg"`
	RemSleepMin []string `json:"remSleepMin"`
	RemSleepMax []string `json:"remSleepMax"`
	RemSleepAvg []string `json:"remSleepAvg"`

	// Steps and floors
	StepsGoal  []float64 `json:"stepsGoal"`
	Steps      []float64 `json:"steps"`
	FloorsGoal []float64 `json:"floorsGoal"`
	Floors     []float64 `json:"floors"`

	// Activities
	Activities           []float64 `json:"activities"`
	ActivitiesDistance   []float64 `json:"activitiesDistance"`
	IntensityTimeGoal    []string  `json:"intensityTimeGoal"`
	IntensityTime        []string  `json:"intensityTime"`
	ModerateActivityTime []string  `json:"moderateActivityTime"`
	VigorousActivityTime []string  `json:"vigorousActivityTime"`
}
