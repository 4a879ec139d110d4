// Package planner builds the 30-day workout and nutrition plan a trainer
// emails to an assigned member. Classification is pure and unit-tested;
// the PDF rendering lives in pdf.go.
package planner

import "math"

type PlanType string

const (
	PlanWeightGain    PlanType = "WEIGHT_GAIN"
	PlanWeightLoss    PlanType = "WEIGHT_LOSS"
	PlanRecomposition PlanType = "RECOMPOSITION"
)

// UserMetrics is what the planner needs to know about a member.
type UserMetrics struct {
	Name     string
	Email    string
	HeightCm *int
	WeightKg *float64
}

// WorkoutDay is one entry of the 30-day schedule.
type WorkoutDay struct {
	Day     int
	Focus   string
	Details []string
}

// GeneratedPlan bundles the classification, the advice, the schedule and
// the rendered document.
type GeneratedPlan struct {
	Type            PlanType
	BMI             *float64
	Recommendations []string
	WorkoutsByDay   []WorkoutDay
	PDF             []byte
}

// Classify maps body metrics to a plan type via BMI. Missing or
// non-positive metrics fall back to recomposition, which is the safest
// default for an unknown body.
func Classify(heightCm *int, weightKg *float64) (PlanType, *float64) {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 || *weightKg <= 0 {
		return PlanRecomposition, nil
	}
	hM := float64(*heightCm) / 100
	bmi := *weightKg / (hM * hM)
	switch {
	case bmi < 18.5:
		return PlanWeightGain, &bmi
	case bmi >= 25:
		return PlanWeightLoss, &bmi
	default:
		return PlanRecomposition, &bmi
	}
}

// Recommendations returns the general nutrition and training advice for
// a plan type.
func Recommendations(t PlanType) []string {
	switch t {
	case PlanWeightGain:
		return []string{
			"Calorie surplus: +300 to +500 kcal/day",
			"Protein: 1.6-2.2 g/kg bodyweight",
			"Carbs: 4-6 g/kg; Fats: 0.8-1.0 g/kg",
			"Progressive overload on compound lifts",
			"7-8 hours sleep, hydration 3L/day",
		}
	case PlanWeightLoss:
		return []string{
			"Calorie deficit: -300 to -500 kcal/day",
			"Protein: 1.8-2.4 g/kg bodyweight to preserve muscle",
			"Daily steps: 8k-10k",
			"Mix of strength (3x/week) + cardio (2-3x/week)",
			"Prioritize whole foods and fiber",
		}
	default:
		return []string{
			"Slight surplus/deficit based on weekly progress",
			"Protein: ~2.0 g/kg bodyweight",
			"Strength training 3-4x/week + 1-2 cardio sessions",
			"Track measurements weekly; adjust calories by 150-200 kcal",
		}
	}
}

// Schedule expands the weekly split into a 4-week, 28-entry day list.
// The cardio day is tuned per plan type.
func Schedule(t PlanType) []WorkoutDay {
	split := []WorkoutDay{
		{Focus: "Upper Body Strength", Details: []string{"Bench Press 4x6-8", "Row 4x6-8", "OHP 3x8-10", "Lat Pulldown 3x10-12", "Core 10 min"}},
		{Focus: "Lower Body Strength", Details: []string{"Squat 4x6-8", "RDL 4x6-8", "Leg Press 3x10-12", "Calf Raise 3x12-15", "Core 10 min"}},
		{Focus: "Cardio / Conditioning", Details: []string{"Incline Walk 25-35 min or Intervals 15-20 min", "Mobility 10 min"}},
		{Focus: "Push Hypertrophy", Details: []string{"Incline DB Press 4x8-12", "Cable Fly 3x12-15", "Lateral Raise 4x12-15", "Triceps Pressdown 3x10-12"}},
		{Focus: "Pull Hypertrophy", Details: []string{"Pull-ups/Assisted 4x6-10", "Chest Supported Row 4x8-12", "Rear Delt Fly 3x12-15", "Biceps Curl 3x10-12"}},
		{Focus: "Legs Hypertrophy", Details: []string{"Front Squat/Leg Press 4x8-12", "Romanian Deadlift 3x8-12", "Lunges 3x10-12/leg", "Ham Curl 3x10-12"}},
		{Focus: "Rest / Active Recovery", Details: []string{"Light walk 20-30 min", "Mobility/Stretching 15-20 min"}},
	}

	switch t {
	case PlanWeightLoss:
		split[2].Details[0] = "Cardio 30-45 min (moderate) or Intervals 20-25 min"
	case PlanWeightGain:
		split[2].Details[0] = "Optional light cardio 15-20 min; focus on recovery"
	}

	days := make([]WorkoutDay, 0, 4*len(split))
	for week := 0; week < 4; week++ {
		for i, d := range split {
			days = append(days, WorkoutDay{
				Day:     week*7 + i + 1,
				Focus:   d.Focus,
				Details: d.Details,
			})
		}
	}
	return days
}

// Generate classifies the member and renders the full plan document.
func Generate(user UserMetrics) (*GeneratedPlan, error) {
	planType, bmi := Classify(user.HeightCm, user.WeightKg)
	plan := &GeneratedPlan{
		Type:            planType,
		BMI:             bmi,
		Recommendations: Recommendations(planType),
		WorkoutsByDay:   Schedule(planType),
	}
	pdf, err := renderPDF(user, plan)
	if err != nil {
		return nil, err
	}
	plan.PDF = pdf
	return plan, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
