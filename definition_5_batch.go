package batcher

import (
	"fmt"
	"strings"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

type OperationKind uint8

const (
	Extract OperationKind = iota + 1
	Fortify
	Replenish
)

func (kind OperationKind) String() string {
	switch kind {
	case Extract:
		return "extract"
	case Fortify:
		return "fortify"
	case Replenish:
		return "replenish"
	}

	return "unknown"
}

// Phase distinguishes the two fortify tasks of a batch: the primary one
// offsets extraction, the secondary one offsets replenish.
type Phase uint8

const (
	PhasePrimary Phase = iota + 1
	PhaseSecondary
)

func (phase Phase) String() string {
	return ternary(
		phase == PhaseSecondary,

		"secondary",
		"primary",
	)
}

// Task is one scheduled operation of a batch: created once per
// calculation cycle, immutable, consumed by the dispatcher.
type Task struct {
	Kind    OperationKind
	Phase   Phase
	Threads int
	Delay   time.Duration
}

// Batch is one complete steady-cycle plan for a node: the four tasks in
// landing order {extract, fortify, replenish, fortify} plus the host set
// handed through verbatim for the dispatcher.
type Batch struct {
	Node  *Node
	Hosts []string
	Tasks [4]Task
}

func (batch *Batch) String() string {
	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf(
			"Batch for %s (%d hosts):\n",

			batch.Node.Hostname,
			len(batch.Hosts),
		),
	)

	for ix, task := range batch.Tasks {
		sb.WriteString(
			fmt.Sprintf(
				"- %d. %s/%s: %d threads, delay %s\n",

				ix+1,
				task.Kind,
				task.Phase,
				task.Threads,
				task.Delay,
			),
		)
	}

	return sb.String()
}

type ParamsCreateBatch struct {
	Node      *Node               `valid:"required"`
	Operator  *OperatorProfile    `valid:"required"`
	Durations *OperationDurations `valid:"required"`
	Hosts     []string            `valid:"required"`

	// Optional exact-formula capability; the analytic model is used
	// when absent.
	Oracle FormulaOracle
}

// CreateBatch computes one full batch for the node: thread counts and
// launch delays for the four operations, in landing order. Deterministic
// over its inputs; the caller dispatches the tasks relative to one
// shared instant.
//
// Zero-thread operations are not launchable, so every count is raised to
// at least one here, at the boundary to the dispatcher.
func CreateBatch(params *ParamsCreateBatch) (*Batch, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Batcher",
				Caller:      "CreateBatch",
				Issue:       errValidation,
			}
	}

	threads, errThreads := CalculateThreads(
		&ParamsCalculateThreads{
			Model:    NewEffectModel(params.Oracle),
			Node:     params.Node,
			Operator: params.Operator,
		},
	)
	if errThreads != nil {
		return nil,
			errThreads
	}

	delays, errDelays := CalculateDelays(
		&ParamsCalculateDelays{
			Durations: params.Durations,
			TaskDelay: params.Operator.TaskDelay,
		},
	)
	if errDelays != nil {
		return nil,
			errDelays
	}

	return &Batch{
			Node:  params.Node,
			Hosts: params.Hosts,

			Tasks: [4]Task{
				{
					Kind:    Extract,
					Phase:   PhasePrimary,
					Threads: atLeastOneThread(threads.Extraction),
					Delay:   delays.Extraction,
				},
				{
					Kind:    Fortify,
					Phase:   PhasePrimary,
					Threads: atLeastOneThread(threads.FortifyExtraction),
					Delay:   delays.FortifyExtraction,
				},
				{
					Kind:    Replenish,
					Phase:   PhasePrimary,
					Threads: atLeastOneThread(threads.Replenish),
					Delay:   delays.Replenish,
				},
				{
					Kind:    Fortify,
					Phase:   PhaseSecondary,
					Threads: atLeastOneThread(threads.FortifyReplenish),
					Delay:   delays.FortifyReplenish,
				},
			},
		},
		nil
}
