package batcher

import "math"

// Balance constants of the modeled environment. The 240 divisor is an
// empirically fixed factor and must stay exact for compatibility.
const (
	extractionBalanceFactor = 240

	growthRateCeiling    = 1.0035
	hardeningAttenuation = 0.003
)

// FormulaOracle is the optional exact-formula capability of the host
// environment. When installed its outputs are ground truth and are
// never clamped by this package.
type FormulaOracle interface {
	ExtractionYieldFraction(node *Node, operator *OperatorProfile) float64
	ReplenishThreadsToMax(node *Node, operator *OperatorProfile) float64
}

// EffectModel estimates per-thread operation effects on a node.
//
// ExtractionYieldFraction is the fraction of the available yield one
// extraction thread removes. ReplenishThreads is the real-valued thread
// count multiplying the available yield by targetMultiplier; callers
// round up.
type EffectModel interface {
	ExtractionYieldFraction(node *Node, operator *OperatorProfile) float64
	ReplenishThreads(node *Node, targetMultiplier float64, operator *OperatorProfile) float64
}

// NewEffectModel probes the oracle capability once per calculation
// cycle and returns the matching implementation.
func NewEffectModel(oracle FormulaOracle) EffectModel {
	if oracle == nil {
		return &AnalyticModel{}
	}

	return &OracleModel{
		oracle: oracle,
	}
}

// AnalyticModel is the closed-form approximation used when no exact
// oracle is installed.
type AnalyticModel struct{}

func (model *AnalyticModel) ExtractionYieldFraction(node *Node, operator *OperatorProfile) float64 {
	difficultyMultiplier := (100 - node.Hardening) / 100

	// May go negative for an under-leveled operator; only the final
	// fraction is clamped.
	skillMultiplier := (operator.HackingSkill - (node.RequiredSkill - 1)) / operator.HackingSkill

	fraction := difficultyMultiplier * skillMultiplier *
		operator.ExtractionMultiplier / extractionBalanceFactor

	return clamp(fraction, 0, 1)
}

// adjustedGrowthRate models diminishing regrowth on hardened nodes,
// capped at the environment's hard ceiling.
func adjustedGrowthRate(node *Node) float64 {
	return math.Min(
		1+hardeningAttenuation/node.Hardening,
		growthRateCeiling,
	)
}

func (model *AnalyticModel) ReplenishThreads(node *Node, targetMultiplier float64, operator *OperatorProfile) float64 {
	if targetMultiplier <= 1 {
		return 0
	}

	return math.Log(targetMultiplier) /
		(math.Log(adjustedGrowthRate(node)) * operator.RegrowthMultiplier * node.GrowthRate / 100)
}

// ProjectedYieldMultiplier is the analytic inverse of ReplenishThreads:
// the yield multiplier reached by landing the given replenish threads on
// the node. Exposed so the dispatcher can verify a plan against the same
// growth model.
func ProjectedYieldMultiplier(node *Node, threads float64, operator *OperatorProfile) float64 {
	return math.Pow(
		adjustedGrowthRate(node),
		threads*operator.RegrowthMultiplier*node.GrowthRate/100,
	)
}

// OracleModel delegates both estimates to the installed exact-formula
// capability.
type OracleModel struct {
	oracle FormulaOracle
}

func (model *OracleModel) ExtractionYieldFraction(node *Node, operator *OperatorProfile) float64 {
	return model.oracle.ExtractionYieldFraction(node, operator)
}

// ReplenishThreads hands the oracle an explicit snapshot carrying the
// current yield and hardening, so a prediction can never mutate the
// caller's value. The oracle computes the requirement to reach YieldMax
// itself; the analytic target multiplier is not used on this path.
func (model *OracleModel) ReplenishThreads(node *Node, _ float64, operator *OperatorProfile) float64 {
	snapshot := *node

	return model.oracle.ReplenishThreadsToMax(&snapshot, operator)
}
