package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"fourcast/domain/backtest"
)

const (
	chiSquareDF    = 9
	uniformPCutoff = 0.05
)

// UniformityTest runs a chi-square goodness-of-fit test of the frequency
// vector against the uniform distribution over digits 0-9. The vector must be
// the raw weighted window counts, before smoothing is applied.
//
// Expected count per digit under the null is sum(F)/10 with 9 degrees of
// freedom. A window with zero total observations cannot be tested and is
// classified inconclusive, never uniform or non-uniform.
func UniformityTest(freq backtest.FrequencyVector) backtest.ChiSquareResult {
	total := freq.Sum()
	if total <= 0 {
		return backtest.ChiSquareResult{
			PValue:           1.0,
			Class:            backtest.ClassInconclusive,
			DegreesOfFreedom: chiSquareDF,
		}
	}

	expected := total / 10
	statistic := 0.0
	for _, observed := range freq {
		diff := observed - expected
		statistic += diff * diff / expected
	}

	dist := distuv.ChiSquared{K: chiSquareDF}
	pValue := dist.Survival(statistic)

	class := backtest.ClassNonUniform
	if pValue > uniformPCutoff {
		class = backtest.ClassUniform
	}

	return backtest.ChiSquareResult{
		Statistic:        statistic,
		PValue:           pValue,
		Class:            class,
		DegreesOfFreedom: chiSquareDF,
	}
}
