package steam_test

import (
	"fmt"

	"github.com/katalvlaran/prefnum/steam"
)

// ExampleSaturationPressure reads the saturation pressure of water at
// the normal boiling point.
func ExampleSaturationPressure() {
	p, err := steam.SaturationPressure(100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.2f kPa\n", p)
	// Output:
	// 101.35 kPa
}

// ExampleMixtureVolume computes the specific volume of a 90%-quality
// mixture at 4 MPa, addressed by pressure.
func ExampleMixtureVolume() {
	v, err := steam.MixtureVolume(0.9, 4000, steam.ColP)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.3f m3/kg\n", v)
	// Output:
	// 0.045 m3/kg
}

// ExamplePhaseTV classifies a state by temperature and specific volume:
// at 100 °C, 0.5 m³/kg lies between vf and vg, inside the dome.
func ExamplePhaseTV() {
	ph, err := steam.PhaseTV(100, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ph)
	// Output:
	// saturated mixture
}
