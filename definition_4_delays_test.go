package batcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalculateDelays(t *testing.T) {
	durations := OperationDurations{
		Extract:   5 * time.Second,
		Fortify:   20 * time.Second,
		Replenish: 10 * time.Second,
	}

	t.Run(
		"1. offsets around the fortify anchor",
		func(t *testing.T) {
			plan, errCalculate := CalculateDelays(
				&ParamsCalculateDelays{
					Durations: &durations,
					TaskDelay: 2 * time.Second,
				},
			)
			require.NoError(t, errCalculate)
			require.NotNil(t, plan)

			require.Equal(t, 13*time.Second, plan.Extraction)
			require.Equal(t, time.Duration(0), plan.FortifyExtraction)
			require.Equal(t, 12*time.Second, plan.Replenish)
			require.Equal(t, 4*time.Second, plan.FortifyReplenish)

			require.Equal(
				t,
				[4]time.Duration{
					13 * time.Second,
					0,
					12 * time.Second,
					4 * time.Second,
				},
				plan.Vector(),
			)
		},
	)

	t.Run(
		"2. landings strictly ordered, spaced by the task delay",
		func(t *testing.T) {
			taskDelay := 2 * time.Second

			plan, errCalculate := CalculateDelays(
				&ParamsCalculateDelays{
					Durations: &durations,
					TaskDelay: taskDelay,
				},
			)
			require.NoError(t, errCalculate)

			landings := plan.LandingTimes(&durations)

			require.Equal(t, 18*time.Second, landings[0])
			require.Equal(t, 20*time.Second, landings[1])
			require.Equal(t, 22*time.Second, landings[2])
			require.Equal(t, 24*time.Second, landings[3])

			for ix := 1; ix < len(landings); ix++ {
				require.GreaterOrEqual(
					t,
					landings[ix]-landings[ix-1],
					taskDelay,
				)
			}
		},
	)

	t.Run(
		"3. extraction delay going negative is surfaced",
		func(t *testing.T) {
			plan, errCalculate := CalculateDelays(
				&ParamsCalculateDelays{
					Durations: &OperationDurations{
						Extract:   10 * time.Second,
						Fortify:   5 * time.Second,
						Replenish: 4 * time.Second,
					},
					TaskDelay: 2 * time.Second,
				},
			)
			require.Error(t, errCalculate)
			require.Nil(t, plan)

			var errNegative ErrNegativeDelay

			require.ErrorAs(t, errCalculate, &errNegative)
			require.Equal(t, Extract, errNegative.Operation)
			require.Negative(t, errNegative.Delay)
		},
	)

	t.Run(
		"4. replenish delay going negative is surfaced",
		func(t *testing.T) {
			plan, errCalculate := CalculateDelays(
				&ParamsCalculateDelays{
					Durations: &OperationDurations{
						Extract:   1 * time.Second,
						Fortify:   10 * time.Second,
						Replenish: 20 * time.Second,
					},
					TaskDelay: 2 * time.Second,
				},
			)
			require.Error(t, errCalculate)
			require.Nil(t, plan)

			var errNegative ErrNegativeDelay

			require.ErrorAs(t, errCalculate, &errNegative)
			require.Equal(t, Replenish, errNegative.Operation)
		},
	)

	t.Run(
		"5. nil durations",
		func(t *testing.T) {
			plan, errCalculate := CalculateDelays(
				&ParamsCalculateDelays{
					TaskDelay: 2 * time.Second,
				},
			)
			require.Error(t, errCalculate)
			require.Nil(t, plan)
		},
	)

	t.Run(
		"6. non-positive duration estimate",
		func(t *testing.T) {
			plan, errCalculate := CalculateDelays(
				&ParamsCalculateDelays{
					Durations: &OperationDurations{
						Extract:   0,
						Fortify:   20 * time.Second,
						Replenish: 10 * time.Second,
					},
					TaskDelay: 2 * time.Second,
				},
			)
			require.Error(t, errCalculate)
			require.Nil(t, plan)
		},
	)

	t.Run(
		"7. non-positive task delay",
		func(t *testing.T) {
			plan, errCalculate := CalculateDelays(
				&ParamsCalculateDelays{
					Durations: &durations,
					TaskDelay: 0,
				},
			)
			require.Error(t, errCalculate)
			require.Nil(t, plan)
		},
	)
}
