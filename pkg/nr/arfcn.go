package nr

// Rounding selects how a fractional frequency or raster step is snapped
// to an integer multiple.
type Rounding int

const (
	RoundNearest Rounding = iota // round half to even
	RoundCeil
	RoundFloor
)

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// roundDiv divides with round-half-to-even, b > 0.
func roundDiv(a, b int) int {
	q := floorDiv(a, b)
	r := a - q*b
	switch {
	case 2*r > b:
		q++
	case 2*r == b && q%2 != 0:
		q++
	}
	return q
}

func (r Rounding) div(a, b int) int {
	switch r {
	case RoundCeil:
		return ceilDiv(a, b)
	case RoundFloor:
		return floorDiv(a, b)
	default:
		return roundDiv(a, b)
	}
}

// Arfcn converts a frequency in kHz to its NR-ARFCN on the global
// frequency raster, TS 38.104 Table 5.4.2.1-1.
func Arfcn(freq int) int {
	seg := globalRaster[0]
	if freq >= 24250000 {
		seg = globalRaster[2]
	} else if freq >= 3000000 {
		seg = globalRaster[1]
	}
	return seg.nrefOffset + (freq-seg.freqOffset)/seg.deltaF
}

// Frequency converts an NR-ARFCN back to a frequency in kHz.
func Frequency(arfcn int) int {
	seg := globalRaster[0]
	if arfcn >= 2016667 {
		seg = globalRaster[2]
	} else if arfcn >= 600000 {
		seg = globalRaster[1]
	}
	return seg.freqOffset + seg.deltaF*(arfcn-seg.nrefOffset)
}

// ChannelRasterFrequency snaps f to the nearest channel raster point for
// the band and clamps the result to the band edges. isUL selects the
// uplink edges of a paired band.
func ChannelRasterFrequency(f, band, freqRaster int, isUL bool, rounding Rounding) int {
	cr, ok := ChannelRasterFor(band, freqRaster)
	if !ok {
		return 0
	}
	low, high := cr.DLArfcnLow, cr.DLArfcnHigh
	if isUL {
		low, high = cr.ULArfcnLow, cr.ULArfcnHigh
	}
	freqL := Frequency(low)
	freqH := Frequency(high)
	cand := rounding.div(f, cr.DeltaF) * cr.DeltaF
	if cand < freqL {
		return freqL
	}
	if cand > freqH {
		return freqH
	}
	return cand
}

// DLFromUL maps an uplink frequency to the paired downlink frequency
// using the band's DL/UL edge distance.
func DLFromUL(f, band, freqRaster int) int {
	cr, ok := ChannelRasterFor(band, freqRaster)
	if !ok {
		return 0
	}
	return f + Frequency(cr.DLArfcnLow) - Frequency(cr.ULArfcnLow)
}

// ULFromDL maps a downlink frequency to the paired uplink frequency.
func ULFromDL(f, band, freqRaster int) int {
	cr, ok := ChannelRasterFor(band, freqRaster)
	if !ok {
		return 0
	}
	return f - (Frequency(cr.DLArfcnLow) - Frequency(cr.ULArfcnLow))
}

// FcRange returns the lowest, middle and highest carrier center
// frequency in kHz that fit a carrier of the given bandwidth inside the
// band, all snapped to the channel raster.
func FcRange(scsCarrier, channelBW, band, freqRaster int, isUL bool) (low, mid, high int) {
	cr, ok := ChannelRasterFor(band, freqRaster)
	if !ok {
		return 0, 0, 0
	}
	la, ha := cr.DLArfcnLow, cr.DLArfcnHigh
	if isUL {
		la, ha = cr.ULArfcnLow, cr.ULArfcnHigh
	}
	freqL := Frequency(la)
	freqH := Frequency(ha)
	bw := freqH - freqL
	cbw, _ := Cbw(scsCarrier, channelBW, band)
	// work on doubled numerators so the half-bandwidth stays exact
	low = ceilDiv(2*freqL+cbw, 2*cr.DeltaF) * cr.DeltaF
	mid = roundDiv(2*freqL+bw, 2*cr.DeltaF) * cr.DeltaF
	high = floorDiv(2*freqH-cbw, 2*cr.DeltaF) * cr.DeltaF
	return low, mid, high
}

// BandRange returns the lowest and highest frequency of the band in
// kHz. scs picks the channel raster step for bands where it is SCS
// dependent.
func BandRange(scs, band int, isUL bool) (low, high int) {
	cr, ok := ChannelRasterFor(band, FreqRasterStep(band, scs))
	if !ok {
		return 0, 0
	}
	la, ha := cr.DLArfcnLow, cr.DLArfcnHigh
	if isUL {
		la, ha = cr.ULArfcnLow, cr.ULArfcnHigh
	}
	return Frequency(la), Frequency(ha)
}

// BandBandwidth returns the total width of the band in kHz.
func BandBandwidth(scs, band int, isUL bool) int {
	low, high := BandRange(scs, band, isUL)
	return high - low
}

// MaxLocationAndBW computes the RIV covering the full carrier for
// locationAndBandwidth in a downlink BWP, TS 38.214 section 5.1.2.2.2,
// with n_size_bwp fixed at 275.
func MaxLocationAndBW(rbStart, scs, bw, band int) int {
	const nSizeBWP = 275
	_, lRB := Cbw(scs, bw, band)
	if lRB <= 0 || lRB > nSizeBWP-rbStart {
		return 0
	}
	if lRB-1 <= nSizeBWP/2 {
		return nSizeBWP*(lRB-1) + rbStart
	}
	return nSizeBWP*(nSizeBWP-lRB+1) + (nSizeBWP - 1 - rbStart)
}
