package transform_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/samples"
	"github.com/cwbudde/algo-fourier/dsp/transform"
)

func ExampleCompute() {
	times := make([]float64, 8)
	values := make([]float64, 8)
	for i := range values {
		times[i] = float64(i) / 8
		values[i] = math.Cos(2 * math.Pi * times[i])
	}

	buf, err := samples.New(times, values)
	if err != nil {
		fmt.Println(err)
		return
	}

	spec, err := transform.Compute(transform.CooleyTukey{}, buf, 8)
	if err != nil {
		fmt.Println(err)
		return
	}

	for k, b := range spec.Bins[:3] {
		fmt.Printf("bin %d: %.1f\n", k, math.Abs(real(b))+math.Abs(imag(b)))
	}

	// Output:
	// bin 0: 0.0
	// bin 1: 4.0
	// bin 2: 0.0
}

func ExampleParseMethod() {
	m, err := transform.ParseMethod("dft")
	fmt.Println(m, err)

	// Output:
	// naive <nil>
}
