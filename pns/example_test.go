package pns_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/prefnum/pns"
)

// ExampleRound rounds component values to the electronic E6 series,
// six steps per decade.
func ExampleRound() {
	s, err := pns.New("E6")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := pns.Round([]float64{514, 7.6, 37, 0.9}, s)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Rounded)
	// Output:
	// [470 6.8 33 1]
}

// ExampleRound_renard rounds to the Renard R10 series, ten steps per
// decade with no tolerance banding.
func ExampleRound_renard() {
	s, _ := pns.New("R10")
	res, _ := pns.Round([]float64{514, 7.6, 37, 0.9}, s)
	fmt.Println(res.Rounded)
	// Output:
	// [500 8 40 1]
}

// ExampleRound_oneTwoFive rounds to the 1-2-5 series and shows the
// histogram outputs: spanning series, edges and per-bin counts.
func ExampleRound_oneTwoFive() {
	s, _ := pns.New("125")
	res, _ := pns.Round([]float64{514, 7.6, 37, 0.9}, s)
	fmt.Println(res.Rounded)
	fmt.Println(res.Series)
	fmt.Println(res.Counts)
	// Output:
	// [500 10 50 1]
	// [1 2 5 10 20 50 100 200 500]
	// [1 0 0 1 0 1 0 0 1]
}

// ExampleRound_function rounds to the nearest power of two via a custom
// series function solved over integer arguments.
func ExampleRound_function() {
	s := pns.NewFunc(func(x float64) float64 { return math.Pow(2, x) })
	res, _ := pns.Round([]float64{514, 7.6, 37, 0.9}, s)
	fmt.Println(res.Rounded)
	// Output:
	// [512 8 32 1]
}

// ExampleNew_unrecognized shows the error for a token outside the
// inbuilt set (there is no E7 series).
func ExampleNew_unrecognized() {
	_, err := pns.New("E7")
	fmt.Println(err)
	// Output:
	// New("E7"): pns: unrecognized preferred number series token
}
