package batcher

import (
	"fmt"
	"math"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

// Hardening neutralization ratios of the modeled environment: thread
// units of the primary operation offset by one fortify thread. Exact
// values, not tunables.
const (
	extractionNeutralizationRatio = 25
	replenishNeutralizationRatio  = 12.5
)

// ErrDegenerateModel signals a node currently unexploitable by the
// operator: the extraction yield fraction resolved to zero or below, so
// no finite thread count can satisfy the greed target.
type ErrDegenerateModel struct {
	Hostname string
	Fraction float64
}

func (e ErrDegenerateModel) Error() string {
	return fmt.Sprintf(
		"node %s is unexploitable: extraction yield fraction %v",

		e.Hostname,
		e.Fraction,
	)
}

// ThreadPlan holds the four thread counts of one batch in landing order.
// Values are exact results of the sizing formulas; the minimum of one
// launchable thread is enforced at the CreateBatch boundary.
type ThreadPlan struct {
	Extraction        int
	FortifyExtraction int
	Replenish         int
	FortifyReplenish  int
}

// Vector returns the counts as the ordered 4-tuple consumed by the
// dispatcher.
func (plan *ThreadPlan) Vector() [4]int {
	return [4]int{
		plan.Extraction,
		plan.FortifyExtraction,
		plan.Replenish,
		plan.FortifyReplenish,
	}
}

func (plan *ThreadPlan) TotalThreads() int {
	return plan.Extraction +
		plan.FortifyExtraction +
		plan.Replenish +
		plan.FortifyReplenish
}

func (plan *ThreadPlan) String() string {
	var sb strings.Builder

	sb.WriteString("ThreadPlan{")
	sb.WriteString(fmt.Sprintf("Extraction: %d, ", plan.Extraction))
	sb.WriteString(fmt.Sprintf("FortifyExtraction: %d, ", plan.FortifyExtraction))
	sb.WriteString(fmt.Sprintf("Replenish: %d, ", plan.Replenish))
	sb.WriteString(fmt.Sprintf("FortifyReplenish: %d", plan.FortifyReplenish))
	sb.WriteString("}")

	return sb.String()
}

// FortifyThreadsForExtraction returns the fortify threads neutralizing
// the hardening raised by the given extraction threads.
func FortifyThreadsForExtraction(extractionThreads int) int {
	return int(
		math.Ceil(
			float64(extractionThreads) / extractionNeutralizationRatio,
		),
	)
}

// FortifyThreadsForReplenish returns the fortify threads neutralizing
// the hardening raised by the given replenish threads.
func FortifyThreadsForReplenish(replenishThreads int) int {
	return int(
		math.Ceil(
			float64(replenishThreads) / replenishNeutralizationRatio,
		),
	)
}

type ParamsCalculateThreads struct {
	Model    EffectModel
	Node     *Node
	Operator *OperatorProfile
}

// CalculateThreads sizes the four operations of one steady-cycle batch:
// extraction threads draining the greed fraction, replenish threads
// restoring the yield to its maximum, and the two fortify counts
// neutralizing their hardening side effects.
func CalculateThreads(params *ParamsCalculateThreads) (*ThreadPlan, error) {
	if params.Model == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "CalculateThreads",
				Issue: goerrors.ErrNilInput{
					InputName: "Model",
				},
			}
	}

	if params.Node == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "CalculateThreads",
				Issue: goerrors.ErrNilInput{
					InputName: "Node",
				},
			}
	}

	if params.Operator == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "CalculateThreads",
				Issue: goerrors.ErrNilInput{
					InputName: "Operator",
				},
			}
	}

	if errValidation := params.Node.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	if errValidation := params.Operator.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	fraction := params.Model.ExtractionYieldFraction(params.Node, params.Operator)
	if fraction <= 0 || math.IsNaN(fraction) {
		return nil,
			ErrDegenerateModel{
				Hostname: params.Node.Hostname,
				Fraction: fraction,
			}
	}

	extraction := int(math.Floor(params.Operator.Greed / fraction))

	replenish := int(
		math.Ceil(
			params.Model.ReplenishThreads(
				params.Node,
				params.Node.TargetMultiplier(),
				params.Operator,
			),
		),
	)

	return &ThreadPlan{
			Extraction:        extraction,
			FortifyExtraction: FortifyThreadsForExtraction(extraction),
			Replenish:         replenish,
			FortifyReplenish:  FortifyThreadsForReplenish(replenish),
		},
		nil
}

type ParamsMinimalFortify struct {
	Node *Node

	// Per-thread hardening reduction magnitude, supplied by the
	// environment.
	WeakenEffectPerThread float64
}

// MinimalFortifyThreads returns the one-shot fortify thread count that
// brings a node's hardening back to its baseline, outside the steady
// cycle.
func MinimalFortifyThreads(params *ParamsMinimalFortify) (int, error) {
	if params.Node == nil {
		return 0,
			goerrors.ErrValidation{
				Caller: "MinimalFortifyThreads",
				Issue: goerrors.ErrNilInput{
					InputName: "Node",
				},
			}
	}

	if params.WeakenEffectPerThread <= 0 {
		return 0,
			goerrors.ErrValidation{
				Caller: "MinimalFortifyThreads",
				Issue: goerrors.ErrNegativeInput{
					InputName: "WeakenEffectPerThread",
				},
			}
	}

	return int(
			math.Ceil(
				math.Abs(params.Node.Hardening-params.Node.HardeningMin) /
					params.WeakenEffectPerThread,
			),
		),
		nil
}
