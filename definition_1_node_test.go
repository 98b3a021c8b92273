package batcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeValidation(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{
			name: "1. valid node",
			node: Node{
				Hostname:       "node-7",
				YieldAvailable: 200000,
				YieldMax:       1000000,
				Hardening:      5,
				HardeningMin:   1,
				GrowthRate:     80,
				RequiredSkill:  400,
			},
			wantErr: false,
		},
		{
			name: "2. empty hostname",
			node: Node{
				YieldAvailable: 200000,
				YieldMax:       1000000,
				Hardening:      5,
				HardeningMin:   1,
				GrowthRate:     80,
			},
			wantErr: true,
		},
		{
			name: "3. negative available yield",
			node: Node{
				Hostname:       "node-7",
				YieldAvailable: -1,
				YieldMax:       1000000,
				Hardening:      5,
				HardeningMin:   1,
				GrowthRate:     80,
			},
			wantErr: true,
		},
		{
			name: "4. yield maximum below available",
			node: Node{
				Hostname:       "node-7",
				YieldAvailable: 1000000,
				YieldMax:       200000,
				Hardening:      5,
				HardeningMin:   1,
				GrowthRate:     80,
			},
			wantErr: true,
		},
		{
			name: "5. hardening below its minimum",
			node: Node{
				Hostname:       "node-7",
				YieldAvailable: 200000,
				YieldMax:       1000000,
				Hardening:      1,
				HardeningMin:   5,
				GrowthRate:     80,
			},
			wantErr: true,
		},
		{
			name: "6. non-positive growth rate",
			node: Node{
				Hostname:       "node-7",
				YieldAvailable: 200000,
				YieldMax:       1000000,
				Hardening:      5,
				HardeningMin:   1,
				GrowthRate:     0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				errValidation := tt.node.IsValid()

				if tt.wantErr {
					require.Error(t, errValidation)

					return
				}

				require.NoError(t, errValidation)
			},
		)
	}
}

func TestNodeTargetMultiplier(t *testing.T) {
	node := Node{
		Hostname:       "node-7",
		YieldAvailable: 200000,
		YieldMax:       1000000,
		Hardening:      1,
		HardeningMin:   1,
		GrowthRate:     100,
	}

	require.InEpsilon(t, 5., node.TargetMultiplier(), 1e-12)

	drained := node
	drained.YieldAvailable = 0

	// Fully drained nodes divide by one, not zero.
	require.InEpsilon(t, 1000000., drained.TargetMultiplier(), 1e-12)
}
