package batcher

import (
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

// ErrNegativeDelay signals duration estimates that cannot honor the
// landing order: a computed launch offset went negative. Surfaced to the
// caller, never clamped, since clamping would silently break the order
// contract.
type ErrNegativeDelay struct {
	Operation OperationKind
	Delay     time.Duration
}

func (e ErrNegativeDelay) Error() string {
	return fmt.Sprintf(
		"%s delay resolves to %s: fortify duration must exceed the operation duration plus spacing",

		e.Operation,
		e.Delay,
	)
}

// DelayPlan holds the four launch offsets of one batch, relative to a
// common dispatch instant. The first fortify is the timing anchor at
// offset zero.
type DelayPlan struct {
	Extraction        time.Duration
	FortifyExtraction time.Duration
	Replenish         time.Duration
	FortifyReplenish  time.Duration
}

// Vector returns the offsets as the ordered 4-tuple consumed by the
// dispatcher.
func (plan *DelayPlan) Vector() [4]time.Duration {
	return [4]time.Duration{
		plan.Extraction,
		plan.FortifyExtraction,
		plan.Replenish,
		plan.FortifyReplenish,
	}
}

// LandingTimes returns the completion instants relative to the common
// dispatch instant, in task order. With valid inputs they are strictly
// increasing and at least one spacing apart.
func (plan *DelayPlan) LandingTimes(durations *OperationDurations) [4]time.Duration {
	return [4]time.Duration{
		plan.Extraction + durations.Extract,
		plan.FortifyExtraction + durations.Fortify,
		plan.Replenish + durations.Replenish,
		plan.FortifyReplenish + durations.Fortify,
	}
}

type ParamsCalculateDelays struct {
	Durations *OperationDurations
	TaskDelay time.Duration
}

// CalculateDelays anchors the first fortify, the slowest operation of
// the cycle, at offset zero and spreads the other three around its
// landing: extraction lands one spacing before it, replenish one after,
// the second fortify two after.
//
// Precondition: the fortify duration is at least the larger of the
// extract and replenish durations plus the spacing; otherwise the
// violating offset is reported as ErrNegativeDelay.
func CalculateDelays(params *ParamsCalculateDelays) (*DelayPlan, error) {
	if params.Durations == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "CalculateDelays",
				Issue: goerrors.ErrNilInput{
					InputName: "Durations",
				},
			}
	}

	if errValidation := params.Durations.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	if params.TaskDelay <= 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "CalculateDelays",
				Issue: goerrors.ErrNegativeInput{
					InputName: "TaskDelay",
				},
			}
	}

	plan := DelayPlan{
		Extraction:        params.Durations.Fortify - params.Durations.Extract - params.TaskDelay,
		FortifyExtraction: 0,
		Replenish:         params.Durations.Fortify - params.Durations.Replenish + params.TaskDelay,
		FortifyReplenish:  2 * params.TaskDelay,
	}

	if plan.Extraction < 0 {
		return nil,
			ErrNegativeDelay{
				Operation: Extract,
				Delay:     plan.Extraction,
			}
	}

	if plan.Replenish < 0 {
		return nil,
			ErrNegativeDelay{
				Operation: Replenish,
				Delay:     plan.Replenish,
			}
	}

	return &plan,
		nil
}
