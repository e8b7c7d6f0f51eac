package stats

import (
	"fmt"

	"fourcast/domain/backtest"
)

// Smooth applies Dirichlet-multinomial smoothing to a frequency vector:
//
//	P[d] = (F[d] + alpha) / (sum(F) + 10*alpha)
//
// Alpha 0 reduces to raw relative frequency. A non-positive denominator is a
// degenerate window and is reported as an error rather than divided through.
func Smooth(freq backtest.FrequencyVector, alpha float64) (backtest.ProbabilityVector, error) {
	var probs backtest.ProbabilityVector
	denominator := freq.Sum() + 10*alpha
	if denominator <= 0 {
		return probs, fmt.Errorf("degenerate window: total weighted observations %.4f with alpha %.4f", freq.Sum(), alpha)
	}
	for d, f := range freq {
		probs[d] = (f + alpha) / denominator
	}
	return probs, nil
}
