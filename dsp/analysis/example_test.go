package analysis_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/analysis"
	"github.com/cwbudde/algo-fourier/dsp/samples"
)

func ExampleAnalyzer_Analyze() {
	const n = 64
	times := make([]float64, n)
	values := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / n
		values[i] = 3 * math.Cos(2*math.Pi*5*times[i])
	}

	buf, err := samples.New(times, values)
	if err != nil {
		panic(err)
	}

	a, err := analysis.New(analysis.WithTerms(1))
	if err != nil {
		panic(err)
	}

	res, err := a.Analyze(buf)
	if err != nil {
		panic(err)
	}

	c := res.Components[0]
	fmt.Printf("n=%d magnitude=%.3f hz=%.3f\n", res.N, c.Magnitude, c.Hertz(res.Interval))

	// Output:
	// n=64 magnitude=3.000 hz=5.000
}
