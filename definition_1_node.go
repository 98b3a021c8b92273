package batcher

import (
	"errors"
	"fmt"
	"math"

	goerrors "github.com/TudorHulban/go-errors"
)

// Node is an immutable snapshot of the target for one calculation cycle.
// Owned by the caller, populated from the environment's state inspection
// capability, never mutated by this package.
type Node struct {
	Hostname string

	YieldAvailable float64
	YieldMax       float64
	Hardening      float64
	HardeningMin   float64
	GrowthRate     float64
	RequiredSkill  float64
}

func (node *Node) IsValid() error {
	if len(node.Hostname) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Node",
			Issue: goerrors.ErrNilInput{
				InputName: "Hostname",
			},
		}
	}

	if node.YieldAvailable < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Node",
			Issue: goerrors.ErrNegativeInput{
				InputName: "YieldAvailable",
			},
		}
	}

	if node.YieldMax < node.YieldAvailable {
		return goerrors.ErrValidation{
			Caller: "IsValid - Node",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "YieldMax",
				InputValue: node.YieldMax,
				Issue: errors.New(
					"yield maximum below available yield",
				),
			},
		}
	}

	if node.Hardening < node.HardeningMin {
		return goerrors.ErrValidation{
			Caller: "IsValid - Node",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Hardening",
				InputValue: node.Hardening,
				Issue: errors.New(
					"hardening below its minimum",
				),
			},
		}
	}

	if node.GrowthRate <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Node",
			Issue: goerrors.ErrNegativeInput{
				InputName: "GrowthRate",
			},
		}
	}

	return nil
}

// TargetMultiplier returns the regrowth multiplier needed to bring the
// available yield back to its maximum. Fully drained nodes divide by one
// so the multiplier stays finite.
func (node *Node) TargetMultiplier() float64 {
	return node.YieldMax / math.Max(node.YieldAvailable, 1)
}

func (node *Node) String() string {
	return fmt.Sprintf(
		"%s (yield %.0f/%.0f, hardening %.2f/%.2f, growth %.0f)",

		node.Hostname,
		node.YieldAvailable,
		node.YieldMax,
		node.Hardening,
		node.HardeningMin,
		node.GrowthRate,
	)
}
