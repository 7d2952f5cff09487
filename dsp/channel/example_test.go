package channel_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-channel/dsp/channel"
)

func ExampleChannel_Execute() {
	ch := channel.New(channel.WithSeed(1))
	if err := ch.AddMultipath([]complex128{1, 0.5}, 2); err != nil {
		fmt.Println("error:", err)
		return
	}

	x := []complex128{1, 0, 0, 0}
	y := make([]complex128, len(x))
	n := ch.Execute(y, x)

	fmt.Println(n)
	for _, v := range y {
		fmt.Printf("%.2f ", cmplx.Abs(v))
	}
	fmt.Println()
	// Output:
	// 4
	// 1.00 0.50 0.00 0.00
}

func ExampleChannel_AddAWGN() {
	ch := channel.New()
	ch.AddAWGN(-20, 10)

	fmt.Printf("nstd=%.4f gain=%.4f\n", ch.NoiseStdDev(), ch.Gain())
	// Output:
	// nstd=0.1000 gain=0.3162
}

func ExampleChannel_String() {
	ch := channel.New()
	ch.AddCarrierOffset(0.01, 0)
	fmt.Println(ch)
	// Output:
	// channel: carrier(dphi=0.0100, phi=0.0000)
}
