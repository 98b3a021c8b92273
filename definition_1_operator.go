package batcher

import (
	"errors"
	"os"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"
)

// OperatorProfile carries the operator capability and environment
// multipliers affecting one calculation cycle.
//
// Greed is the target fraction of the available yield to extract per
// cycle, within (0, 1]. TaskDelay is the minimum spacing between two
// consecutive operation landings.
type OperatorProfile struct {
	HackingSkill         float64
	ExtractionMultiplier float64
	RegrowthMultiplier   float64
	Greed                float64
	TaskDelay            time.Duration
}

func (operator *OperatorProfile) IsValid() error {
	if operator.HackingSkill <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - OperatorProfile",
			Issue: goerrors.ErrNegativeInput{
				InputName: "HackingSkill",
			},
		}
	}

	if operator.ExtractionMultiplier <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - OperatorProfile",
			Issue: goerrors.ErrNegativeInput{
				InputName: "ExtractionMultiplier",
			},
		}
	}

	if operator.RegrowthMultiplier <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - OperatorProfile",
			Issue: goerrors.ErrNegativeInput{
				InputName: "RegrowthMultiplier",
			},
		}
	}

	if operator.Greed <= 0 || operator.Greed > 1 {
		return goerrors.ErrValidation{
			Caller: "IsValid - OperatorProfile",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Greed",
				InputValue: operator.Greed,
				Issue: errors.New(
					"greed must be within (0, 1]",
				),
			},
		}
	}

	if operator.TaskDelay <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - OperatorProfile",
			Issue: goerrors.ErrNegativeInput{
				InputName: "TaskDelay",
			},
		}
	}

	return nil
}

type fileOperatorProfile struct {
	HackingSkill         float64 `yaml:"hacking_skill"         valid:"required"`
	ExtractionMultiplier float64 `yaml:"extraction_multiplier" valid:"required"`
	RegrowthMultiplier   float64 `yaml:"regrowth_multiplier"   valid:"required"`
	Greed                float64 `yaml:"greed"                 valid:"required"`
	TaskDelay            string  `yaml:"task_delay"            valid:"required"`
}

// LoadOperatorProfile reads an operator profile from a YAML file.
// TaskDelay uses Go duration syntax ("200ms", "2s").
func LoadOperatorProfile(path string) (*OperatorProfile, error) {
	contents, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "LoadOperatorProfile",
				Issue:  errRead,
			}
	}

	var file fileOperatorProfile

	if errUnmarshal := yaml.Unmarshal(contents, &file); errUnmarshal != nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "LoadOperatorProfile",
				Issue:  errUnmarshal,
			}
	}

	if _, errValidation := govalidator.ValidateStruct(&file); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Batcher",
				Caller:      "LoadOperatorProfile",
				Issue:       errValidation,
			}
	}

	taskDelay, errParse := time.ParseDuration(file.TaskDelay)
	if errParse != nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "LoadOperatorProfile",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "TaskDelay",
					InputValue: file.TaskDelay,
					Issue:      errParse,
				},
			}
	}

	result := OperatorProfile{
		HackingSkill:         file.HackingSkill,
		ExtractionMultiplier: file.ExtractionMultiplier,
		RegrowthMultiplier:   file.RegrowthMultiplier,
		Greed:                file.Greed,
		TaskDelay:            taskDelay,
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &result,
		nil
}
