package batcher

import (
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

// OperationDurations holds the per-operation duration estimates supplied
// by the environment for one calculation cycle. The fortify estimate
// serves both fortify launches of a batch.
type OperationDurations struct {
	Extract   time.Duration
	Fortify   time.Duration
	Replenish time.Duration
}

func (durations *OperationDurations) IsValid() error {
	if durations.Extract <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - OperationDurations",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Extract",
			},
		}
	}

	if durations.Fortify <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - OperationDurations",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Fortify",
			},
		}
	}

	if durations.Replenish <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - OperationDurations",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Replenish",
			},
		}
	}

	return nil
}
