package pns

import "strings"

// Default selection tolerances per inbuilt series family.
// The E-series defaults are the IEC 60063 component tolerance grades;
// 0.36 gives the 1-2-5 series minimum tolerance overlap/separation;
// Renard series carry no tolerance banding.
const (
	TolE6     = 0.2
	TolE12    = 0.1
	TolE24    = 0.05
	TolE48    = 0.02
	TolE96    = 0.01
	TolE192   = 0.005
	Tol125    = 0.36
	TolRenard = 0.0
)

// seriesSpec describes one inbuilt table: its literal values, the
// power-of-ten scale the literals are stored at (Renard tables are
// published two decades up, 100..975), the provenance mode and the
// default tolerance.
type seriesSpec struct {
	values []float64
	scale  float64
	mode   Mode
	tol    float64
}

// inbuilt maps canonical tokens to their series definitions.
// Renard values follow ISO 3; E-series values follow IEC 60063.
var inbuilt = map[string]seriesSpec{
	// 1-2-5, three steps per decade.
	"125": {values: []float64{1, 2, 5}, scale: 1, mode: ModeBasic, tol: Tol125},

	// Electronic E-series. E6..E24 are the exact two-digit fractions,
	// E48..E192 are defined to three significant digits.
	"E6":  {values: []float64{1.0, 1.5, 2.2, 3.3, 4.7, 6.8}, scale: 1, mode: ModeBasic, tol: TolE6},
	"E12": {values: []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}, scale: 1, mode: ModeBasic, tol: TolE12},
	"E24": {values: []float64{
		1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
		3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	}, scale: 1, mode: ModeBasic, tol: TolE24},
	"E48": {values: []float64{
		1.00, 1.05, 1.10, 1.15, 1.21, 1.27, 1.33, 1.40, 1.47, 1.54, 1.62, 1.69,
		1.78, 1.87, 1.96, 2.05, 2.15, 2.26, 2.37, 2.49, 2.61, 2.74, 2.87, 3.01,
		3.16, 3.32, 3.48, 3.65, 3.83, 4.02, 4.22, 4.42, 4.64, 4.87, 5.11, 5.36,
		5.62, 5.90, 6.19, 6.49, 6.81, 7.15, 7.50, 7.87, 8.25, 8.66, 9.09, 9.53,
	}, scale: 1, mode: ModeBasic, tol: TolE48},
	"E96": {values: []float64{
		1.00, 1.02, 1.05, 1.07, 1.10, 1.13, 1.15, 1.18, 1.21, 1.24, 1.27, 1.30,
		1.33, 1.37, 1.40, 1.43, 1.47, 1.50, 1.54, 1.58, 1.62, 1.65, 1.69, 1.74,
		1.78, 1.82, 1.87, 1.91, 1.96, 2.00, 2.05, 2.10, 2.15, 2.21, 2.26, 2.32,
		2.37, 2.43, 2.49, 2.55, 2.61, 2.67, 2.74, 2.80, 2.87, 2.94, 3.01, 3.09,
		3.16, 3.24, 3.32, 3.40, 3.48, 3.57, 3.65, 3.74, 3.83, 3.92, 4.02, 4.12,
		4.22, 4.32, 4.42, 4.53, 4.64, 4.75, 4.87, 4.99, 5.11, 5.23, 5.36, 5.49,
		5.62, 5.76, 5.90, 6.04, 6.19, 6.34, 6.49, 6.65, 6.81, 6.98, 7.15, 7.32,
		7.50, 7.68, 7.87, 8.06, 8.25, 8.45, 8.66, 8.87, 9.09, 9.31, 9.53, 9.76,
	}, scale: 1, mode: ModeBasic, tol: TolE96},
	"E192": {values: []float64{
		1.00, 1.01, 1.02, 1.04, 1.05, 1.06, 1.07, 1.09, 1.10, 1.11, 1.13, 1.14,
		1.15, 1.17, 1.18, 1.20, 1.21, 1.23, 1.24, 1.26, 1.27, 1.29, 1.30, 1.32,
		1.33, 1.35, 1.37, 1.38, 1.40, 1.42, 1.43, 1.45, 1.47, 1.49, 1.50, 1.52,
		1.54, 1.56, 1.58, 1.60, 1.62, 1.64, 1.65, 1.67, 1.69, 1.72, 1.74, 1.76,
		1.78, 1.80, 1.82, 1.84, 1.87, 1.89, 1.91, 1.93, 1.96, 1.98, 2.00, 2.03,
		2.05, 2.08, 2.10, 2.13, 2.15, 2.18, 2.21, 2.23, 2.26, 2.29, 2.32, 2.34,
		2.37, 2.40, 2.43, 2.46, 2.49, 2.52, 2.55, 2.58, 2.61, 2.64, 2.67, 2.71,
		2.74, 2.77, 2.80, 2.84, 2.87, 2.91, 2.94, 2.98, 3.01, 3.05, 3.09, 3.12,
		3.16, 3.20, 3.24, 3.28, 3.32, 3.36, 3.40, 3.44, 3.48, 3.52, 3.57, 3.61,
		3.65, 3.70, 3.74, 3.79, 3.83, 3.88, 3.92, 3.97, 4.02, 4.07, 4.12, 4.17,
		4.22, 4.27, 4.32, 4.37, 4.42, 4.48, 4.53, 4.59, 4.64, 4.70, 4.75, 4.81,
		4.87, 4.93, 4.99, 5.05, 5.11, 5.17, 5.23, 5.30, 5.36, 5.42, 5.49, 5.56,
		5.62, 5.69, 5.76, 5.83, 5.90, 5.97, 6.04, 6.12, 6.19, 6.26, 6.34, 6.42,
		6.49, 6.57, 6.65, 6.73, 6.81, 6.90, 6.98, 7.06, 7.15, 7.23, 7.32, 7.41,
		7.50, 7.59, 7.68, 7.77, 7.87, 7.96, 8.06, 8.16, 8.25, 8.35, 8.45, 8.56,
		8.66, 8.76, 8.87, 8.98, 9.09, 9.20, 9.31, 9.42, 9.53, 9.65, 9.76, 9.88,
	}, scale: 1, mode: ModeBasic, tol: TolE192},

	// Renard basic series, three significant digits, stored ×100.
	"R5":  {values: []float64{100, 158, 251, 398, 631}, scale: 100, mode: ModeBasic, tol: TolRenard},
	"R10": {values: []float64{100, 125, 160, 200, 250, 315, 400, 500, 630, 800}, scale: 100, mode: ModeBasic, tol: TolRenard},
	"R20": {values: []float64{
		100, 112, 125, 140, 160, 180, 200, 224, 250, 280,
		315, 355, 400, 450, 500, 560, 630, 710, 800, 900,
	}, scale: 100, mode: ModeBasic, tol: TolRenard},
	"R40": {values: []float64{
		100, 106, 112, 118, 125, 132, 140, 150, 160, 170, 180, 190, 200, 212, 224, 236, 250, 265, 280, 300,
		315, 335, 355, 375, 400, 425, 450, 475, 500, 530, 560, 600, 630, 670, 710, 750, 800, 850, 900, 950,
	}, scale: 100, mode: ModeBasic, tol: TolRenard},
	"R80": {values: []float64{
		100, 103, 106, 109, 112, 115, 118, 122, 125, 128, 132, 136, 140, 145, 150, 155, 160, 165, 170, 175,
		180, 185, 190, 195, 200, 206, 212, 218, 224, 230, 236, 243, 250, 258, 265, 272, 280, 290, 300, 307,
		315, 325, 335, 345, 355, 365, 375, 387, 400, 412, 425, 437, 450, 462, 475, 487, 500, 515, 530, 545,
		560, 580, 600, 615, 630, 650, 670, 690, 710, 730, 750, 775, 800, 825, 850, 875, 900, 925, 950, 975,
	}, scale: 100, mode: ModeBasic, tol: TolRenard},

	// Renard once-rounded variants.
	"R'5":  {values: []float64{100, 160, 250, 400, 630}, scale: 100, mode: ModeRounded, tol: TolRenard},
	"R'10": {values: []float64{100, 125, 160, 200, 250, 320, 400, 500, 630, 800}, scale: 100, mode: ModeRounded, tol: TolRenard},
	"R'20": {values: []float64{
		100, 110, 125, 140, 160, 180, 200, 220, 250, 280,
		320, 360, 400, 450, 500, 560, 630, 710, 800, 900,
	}, scale: 100, mode: ModeRounded, tol: TolRenard},
	"R'40": {values: []float64{
		100, 105, 110, 120, 125, 130, 140, 150, 160, 170, 180, 190, 200, 210, 220, 240, 250, 260, 280, 300,
		320, 340, 360, 380, 400, 420, 450, 480, 500, 530, 560, 600, 630, 670, 710, 750, 800, 850, 900, 950,
	}, scale: 100, mode: ModeRounded, tol: TolRenard},

	// Renard twice-rounded variants.
	`R"5`:  {values: []float64{100, 150, 250, 400, 600}, scale: 100, mode: ModeTwiceRounded, tol: TolRenard},
	`R"10`: {values: []float64{100, 120, 150, 200, 250, 300, 400, 500, 600, 800}, scale: 100, mode: ModeTwiceRounded, tol: TolRenard},
	`R"20`: {values: []float64{
		100, 110, 120, 140, 150, 180, 200, 220, 250, 280,
		300, 350, 400, 450, 500, 550, 600, 700, 800, 900,
	}, scale: 100, mode: ModeTwiceRounded, tol: TolRenard},
}

// canonicalToken maps the Unicode prime/double-prime spellings of the
// rounded Renard tokens (R′5, R″5, ...) onto their ASCII table keys.
func canonicalToken(token string) string {
	r := strings.NewReplacer("′", "'", "″", `"`)

	return r.Replace(token)
}
