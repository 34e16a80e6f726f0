// Package ca computes channel spacing for intra-band contiguous
// carrier aggregation, TS 38.104 section 5.4.1.2.
package ca

import (
	"math"

	"github.com/mkrugly/nr-frequency/pkg/nr"
)

func containsAll(haystack []int, needles ...int) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MuZero finds the largest numerology whose channel bandwidth list for
// the band covers both aggregated bandwidths. Returns -1 when no
// numerology supports the pair.
func MuZero(bwC1, bwC2, band int) int {
	for _, scs := range []int{240, 120, 60, 30, 15} {
		if containsAll(nr.CbwsInBand(band, scs), bwC1, bwC2) {
			return nr.MuFromSCS(scs)
		}
	}
	return -1
}

// NominalSpacing calculates the nominal channel spacing in kHz between
// two contiguous carriers. Bandwidths in MHz, subcarrier spacings in
// kHz. Returns -1 when a guard band or numerology cannot be determined.
func NominalSpacing(bwC1, bwC2, scsC1, scsC2, band int) int {
	gbC1 := nr.Guardband(scsC1, bwC1, band)
	gbC2 := nr.Guardband(scsC2, bwC2, band)
	if gbC1 == -1 || gbC2 == -1 {
		return -1
	}

	scs := scsC1
	if scsC2 < scs {
		scs = scsC2
	}
	freqRaster := nr.FreqRasterStep(band, scs)
	gbDiff := math.Abs(gbC1 - gbC2)
	switch {
	case freqRaster%60 == 0:
		muZero := MuZero(bwC1, bwC2, band)
		if muZero == -1 {
			return -1
		}
		n := math.Floor((float64(bwC1+bwC2) - 2*gbDiff/1000) / (0.06 * math.Pow(2, float64(muZero-1))))
		return int(n * 60 * math.Pow(2, float64(muZero-2)))
	case freqRaster%15 == 0:
		muZero := MuZero(bwC1, bwC2, band)
		if muZero == -1 {
			return -1
		}
		n := math.Floor((float64(bwC1+bwC2) - 2*gbDiff/1000) / (0.015 * math.Pow(2, float64(muZero+1))))
		return int(n * 15 * math.Pow(2, float64(muZero)))
	default:
		// 100 kHz raster bands derive the spacing directly from the
		// 600 kHz grid
		return int(math.Floor((float64(bwC1+bwC2)-2*gbDiff)/0.6)) * 300
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

// IntraContiguousSpacings lists the channel spacing values allowed for
// intra-band contiguous aggregation given the nominal spacing. The
// nominal value always comes first, followed by the three largest
// multiples of lcm(scs, channel raster) at or below it.
func IntraContiguousSpacings(nominalSpacing, band, scs int) []int {
	spacings := []int{nominalSpacing}
	freqRaster := nr.FreqRasterStep(band, scs)
	if freqRaster > -1 {
		step := lcm(scs, freqRaster)
		cs := nominalSpacing / step * step
		for i := 0; i < 3 && cs > 0; i++ {
			spacings = append(spacings, cs)
			cs -= step
		}
	}
	return spacings
}
