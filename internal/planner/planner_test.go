package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		heightCm *int
		weightKg *float64
		want     PlanType
	}{
		{"normal bmi", intPtr(180), floatPtr(60), PlanRecomposition},
		{"underweight", intPtr(180), floatPtr(55), PlanWeightGain},
		{"overweight", intPtr(170), floatPtr(90), PlanWeightLoss},
		{"bmi exactly 25", intPtr(200), floatPtr(100), PlanWeightLoss},
		{"missing height", nil, floatPtr(70), PlanRecomposition},
		{"missing weight", intPtr(175), nil, PlanRecomposition},
		{"non-positive height", intPtr(0), floatPtr(70), PlanRecomposition},
		{"non-positive weight", intPtr(175), floatPtr(-1), PlanRecomposition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(tt.heightCm, tt.weightKg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_BMIValue(t *testing.T) {
	t.Parallel()

	_, bmi := Classify(intPtr(180), floatPtr(60))
	require.NotNil(t, bmi)
	assert.InDelta(t, 18.52, *bmi, 0.01)

	_, bmi = Classify(nil, floatPtr(60))
	assert.Nil(t, bmi, "no metrics, no BMI")
}

func TestSchedule(t *testing.T) {
	t.Parallel()

	days := Schedule(PlanRecomposition)

	require.Len(t, days, 28, "four repeated weeks")
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 28, days[27].Day)
	assert.Equal(t, days[0].Focus, days[7].Focus, "weeks repeat the same split")
}

func TestSchedule_CardioTunedPerType(t *testing.T) {
	t.Parallel()

	loss := Schedule(PlanWeightLoss)[2]
	gain := Schedule(PlanWeightGain)[2]

	assert.Contains(t, loss.Details[0], "30-45 min")
	assert.Contains(t, gain.Details[0], "light cardio")
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	plan, err := Generate(UserMetrics{
		Name:     "Aruzhan",
		Email:    "aruzhan@example.com",
		HeightCm: intPtr(165),
		WeightKg: floatPtr(48),
	})

	require.NoError(t, err)
	assert.Equal(t, PlanWeightGain, plan.Type)
	assert.NotEmpty(t, plan.Recommendations)
	assert.Len(t, plan.WorkoutsByDay, 28)
	assert.True(t, len(plan.PDF) > 0, "document rendered")
	assert.Equal(t, "%PDF", string(plan.PDF[:4]))
}
