package builder

import "math/rand"

// FlowFn draws one flow rate. rng is the configured source and may be nil
// for deterministic functions.
type FlowFn func(rng *rand.Rand) int

// ConstantFlowFn gives every non-start valve the same flow rate.
func ConstantFlowFn(flow int) FlowFn {
	return func(*rand.Rand) int { return flow }
}
