package nr

// GSCN segment breakpoints, TS 38.104 Table 5.4.3.1-1.
const (
	gscnMidLow  = 7499  // first GSCN of the 3 GHz - 24.25 GHz segment
	gscnHighLow = 22256 // first GSCN of the segment above 24.25 GHz
)

// mValues returns the M parameter candidates for the sub-3 GHz GSCN
// formula. Bands on a 100 kHz channel raster may use M of 1, 3 or 5;
// all others are pinned to M=3.
func mValues(freqRaster int) []int {
	if freqRaster == 100 {
		return []int{1, 3, 5}
	}
	return []int{3}
}

// GscnToFrequency converts a GSCN to the SS block center frequency in
// kHz. Returns 0 when the GSCN is outside the defined range or, below
// 3 GHz, when no allowed M value produces it.
func GscnToFrequency(gscn, freqRaster int) int {
	switch {
	case gscn >= 2 && gscn < gscnMidLow:
		f := 0
		for _, m := range mValues(freqRaster) {
			num := gscn - (m-3)/2
			if num%3 == 0 {
				f = num/3*1200 + m*50
			}
		}
		return f
	case gscn >= gscnMidLow && gscn < gscnHighLow:
		return 3000000 + (gscn-gscnMidLow)*1440
	case gscn >= gscnHighLow && gscn <= 26639:
		return 24250080 + (gscn-gscnHighLow)*17280
	}
	return 0
}

// FrequencyToGscn converts an SS block frequency in kHz to the GSCN at
// or nearest the frequency, per the rounding policy. Below 3 GHz every
// allowed M value yields a candidate and the one with the smallest
// non-negative frequency excess wins.
func FrequencyToGscn(fSSB, freqRaster int, rounding Rounding) int {
	switch {
	case fSSB < 3000000:
		best, bestDelta := 0, -1
		for _, m := range mValues(freqRaster) {
			n := rounding.div(fSSB-m*50, 1200)
			gscn := 3*n + (m-3)/2
			d := GscnToFrequency(gscn, freqRaster) - fSSB
			if d >= 0 && (bestDelta < 0 || d < bestDelta) {
				best, bestDelta = gscn, d
			}
		}
		return best
	case fSSB >= 3000000 && fSSB < 24250000:
		return gscnMidLow + rounding.div(fSSB-3000000, 1440)
	case fSSB >= 24250000 && fSSB <= 100000000:
		return gscnHighLow + rounding.div(fSSB-24250080, 17280)
	}
	return 0
}

// Align directions for GscnAlign.
const (
	AlignNearest = iota
	AlignPrev
	AlignNext
)

// GscnAlign shifts a GSCN onto the band's sync raster. direction moves
// the result one raster point down (AlignPrev) or up (AlignNext) after
// the initial alignment; out-of-range values clamp to the raster edges.
func GscnAlign(gscn, scsSSB, band, direction int) int {
	sr, ok := SyncRasterFor(band, scsSSB)
	if !ok {
		return 0
	}
	if len(sr.List) > 0 {
		idx := len(sr.List) - 1
		for i, v := range sr.List {
			if v >= gscn {
				idx = i
				break
			}
		}
		if direction == AlignNext && idx < len(sr.List)-1 {
			idx++
		} else if direction == AlignPrev && idx > 0 {
			idx--
		}
		return sr.List[idx]
	}
	g := ceilDiv(gscn, sr.Step) * sr.Step
	if direction == AlignNext {
		g += sr.Step
	} else if direction == AlignPrev {
		g -= sr.Step
	}
	if g > sr.Max {
		return sr.Max
	}
	if g < sr.Min {
		return sr.Min
	}
	return g
}
