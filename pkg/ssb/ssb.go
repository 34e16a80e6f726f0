// Package ssb computes SSB burst candidate positions from the
// ssb-PositionsInBurst bitmap, TS 38.213 section 4.1.
package ssb

import (
	"sort"
	"strings"

	"github.com/mkrugly/nr-frequency/pkg/nr"
)

const (
	sfInFrame     = 10
	sfInHalfFrame = 5
	symbolsInSlot = 14
)

type patternKey struct {
	Pattern string
	Option  int
}

// Candidate SSB first symbols per pattern. The option distinguishes the
// low and high frequency variants of cases A through C.
var startSymbols = map[patternKey][]int{
	{nr.PatternCaseA, 0}: expand([]int{2, 8}, 14, 0, 1),
	{nr.PatternCaseA, 1}: expand([]int{2, 8}, 14, 0, 1, 2, 3),
	{nr.PatternCaseB, 0}: expand([]int{4, 8, 16, 20}, 28, 0),
	{nr.PatternCaseB, 1}: expand([]int{4, 8, 16, 20}, 28, 0, 1),
	{nr.PatternCaseC, 0}: expand([]int{2, 8}, 14, 0, 1),
	{nr.PatternCaseC, 1}: expand([]int{2, 8}, 14, 0, 1, 2, 3),
	{nr.PatternCaseD, 0}: expand([]int{4, 8, 16, 20}, 28, 0, 1, 2, 3, 5, 6, 7, 8, 10, 11, 12, 13, 15, 16, 17, 18),
	{nr.PatternCaseE, 0}: expand([]int{8, 12, 16, 20, 32, 36, 40, 44}, 56, 0, 1, 2, 3, 5, 6, 7, 8),
}

func expand(base []int, stride int, ns ...int) []int {
	out := make([]int, 0, len(base)*len(ns))
	for _, n := range ns {
		for _, i := range base {
			out = append(out, i+stride*n)
		}
	}
	return out
}

// Position locates one SSB candidate on the common numerology grid.
type Position struct {
	StartSymbol int
	Slot        int
	Subframe    int
}

// Burst describes a configured SSB burst for a cell.
type Burst struct {
	Band          int
	ScsCommon     int
	ScsSSB        int
	InOneGroup    string // ssb-PositionsInBurst inOneGroup bitmap
	GroupPresence string // groupPresence bitmap, FR2 only
	Periodicity   int    // serving cell SSB periodicity in ms
}

// PositionsInBurstMap expands inOneGroup and groupPresence into the
// full candidate bitmap. groupPresence only applies to FR2 bands.
func (b *Burst) PositionsInBurstMap() string {
	if b.GroupPresence == "" || nr.IsFR1(b.Band) {
		return b.InOneGroup
	}
	var sb strings.Builder
	for _, g := range b.GroupPresence {
		if g == '1' {
			sb.WriteString(b.InOneGroup)
		} else {
			sb.WriteString(strings.Repeat("0", len(b.InOneGroup)))
		}
	}
	return sb.String()
}

// Pattern returns the burst pattern (caseA..caseE) for the band and SSB
// subcarrier spacing.
func (b *Burst) Pattern() string {
	return nr.SSBPattern(b.Band, b.ScsSSB)
}

// patternOption picks the frequency dependent start symbol variant.
func (b *Burst) patternOption() int {
	pattern := b.Pattern()
	info, ok := nr.BandInfo(b.Band)
	if !ok {
		return 0
	}
	switch pattern {
	case nr.PatternCaseA, nr.PatternCaseB:
		if info.DLHigh > 3000000 {
			return 1
		}
	case nr.PatternCaseC:
		mode := info.Duplex
		switch {
		case mode == nr.DuplexFDD && info.DLHigh > 3000000:
			return 1
		case (mode == nr.DuplexTDD || mode == nr.DuplexSDL) && info.DLHigh > 2400000:
			return 1
		case (mode == nr.DuplexTDD || mode == nr.DuplexSUL) && info.ULHigh > 2400000:
			return 1
		}
	}
	return 0
}

// Indices returns the SSB indices set in the burst bitmap.
func (b *Burst) Indices() []int {
	var out []int
	for i, v := range b.PositionsInBurstMap() {
		if v == '1' {
			out = append(out, i)
		}
	}
	return out
}

// StartSymbols returns the first symbols of the transmitted SSBs on the
// SSB numerology grid.
func (b *Burst) StartSymbols() []int {
	syms := startSymbols[patternKey{b.Pattern(), b.patternOption()}]
	var out []int
	for i, v := range b.PositionsInBurstMap() {
		if i < len(syms) && v == '1' {
			out = append(out, syms[i])
		}
	}
	return out
}

// StartSymbolsCommonRaster maps the start symbols onto the common
// numerology symbol grid.
func (b *Burst) StartSymbolsCommonRaster() []int {
	muSSB := nr.MuFromSCS(b.ScsSSB)
	mu := nr.MuFromSCS(b.ScsCommon)
	syms := b.StartSymbols()
	out := make([]int, len(syms))
	for i, s := range syms {
		if mu >= muSSB {
			out[i] = s << (mu - muSSB)
		} else {
			out[i] = s >> (muSSB - mu)
		}
	}
	return out
}

// SlotsInSubframe returns the slot count per subframe for the common
// numerology.
func (b *Burst) SlotsInSubframe() int {
	return 1 << nr.MuFromSCS(b.ScsCommon)
}

// Slots returns the distinct slots carrying SSBs, common numerology.
func (b *Burst) Slots() []int {
	var out []int
	for _, sym := range b.StartSymbolsCommonRaster() {
		out = appendUnique(out, sym/symbolsInSlot)
	}
	return out
}

// Subframes returns the distinct subframes carrying SSBs.
func (b *Burst) Subframes() []int {
	slotsInSF := b.SlotsInSubframe()
	var out []int
	for _, slot := range b.Slots() {
		out = appendUnique(out, slot/slotsInSF)
	}
	return out
}

// Candidates maps each transmitted SSB index to its position on the
// common numerology grid. relative counts symbols within the slot and
// slots within the subframe instead of from the frame start.
func (b *Burst) Candidates(relative bool) map[int]Position {
	slotsInSF := b.SlotsInSubframe()
	idx := b.Indices()
	syms := b.StartSymbolsCommonRaster()
	out := make(map[int]Position, len(syms))
	for i, sym := range syms {
		slot := sym / symbolsInSlot
		sf := slot / slotsInSF
		if relative {
			sym %= symbolsInSlot
			slot %= slotsInSF
		}
		out[idx[i]] = Position{StartSymbol: sym, Slot: slot, Subframe: sf}
	}
	return out
}

// SlotsInFrame lists the SSB slots transmitted in the frame with the
// given SFN, empty when the periodicity skips the frame. Periodicities
// below 10 ms repeat the burst in both half frames.
func (b *Burst) SlotsInFrame(sfn int) []int {
	if b.Periodicity > 0 && (sfn*sfInFrame)%b.Periodicity != 0 {
		return nil
	}
	slots := b.Slots()
	if b.Periodicity > 0 && b.Periodicity < sfInFrame {
		half := b.SlotsInSubframe() * sfInHalfFrame
		both := make([]int, 0, len(slots)*2)
		for _, s := range slots {
			both = append(both, s, s+half)
		}
		sort.Ints(both)
		return both
	}
	return slots
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
