package nr

import "sort"

// Duplex mode identifiers
const (
	DuplexFDD = "FDD"
	DuplexTDD = "TDD"
	DuplexSDL = "SDL"
	DuplexSUL = "SUL"
)

// Band describes an NR operating band: uplink and downlink edges in kHz
// and the duplex mode. SDL bands carry no uplink range and SUL bands no
// downlink range (edges set to -1).
type Band struct {
	ULLow  int
	ULHigh int
	DLLow  int
	DLHigh int
	Duplex string
}

// bands holds the NR operating bands for FR1 (TS 38.104 Table 5.2-1)
// and FR2 (Table 5.2-2). All edges in kHz.
var bands = map[int]Band{
	1:   {1920000, 1980000, 2110000, 2170000, DuplexFDD},
	2:   {1850000, 1910000, 1930000, 1990000, DuplexFDD},
	3:   {1710000, 1785000, 1805000, 1880000, DuplexFDD},
	5:   {824000, 849000, 869000, 894000, DuplexFDD},
	7:   {2500000, 2570000, 2620000, 2690000, DuplexFDD},
	8:   {880000, 915000, 925000, 960000, DuplexFDD},
	12:  {699000, 716000, 729000, 746000, DuplexFDD},
	13:  {777000, 787000, 746000, 756000, DuplexFDD},
	14:  {788000, 798000, 758000, 768000, DuplexFDD},
	18:  {815000, 830000, 860000, 875000, DuplexFDD},
	20:  {832000, 862000, 791000, 821000, DuplexFDD},
	24:  {1626500, 1660500, 1525000, 1559000, DuplexFDD},
	25:  {1850000, 1915000, 1930000, 1995000, DuplexFDD},
	26:  {814000, 849000, 859000, 894000, DuplexFDD},
	28:  {703000, 748000, 758000, 803000, DuplexFDD},
	29:  {-1, -1, 717000, 728000, DuplexSDL},
	30:  {2305000, 2315000, 2350000, 2360000, DuplexFDD},
	34:  {2010000, 2025000, 2010000, 2025000, DuplexTDD},
	38:  {2570000, 2620000, 2570000, 2620000, DuplexTDD},
	39:  {1880000, 1920000, 1880000, 1920000, DuplexTDD},
	40:  {2300000, 2400000, 2300000, 2400000, DuplexTDD},
	41:  {2496000, 2690000, 2496000, 2690000, DuplexTDD},
	46:  {5150000, 5925000, 5150000, 5925000, DuplexTDD},
	48:  {3550000, 3700000, 3550000, 3700000, DuplexTDD},
	50:  {1432000, 1517000, 1432000, 1517000, DuplexTDD},
	51:  {1427000, 1432000, 1427000, 1432000, DuplexTDD},
	53:  {2483500, 2495000, 2483500, 2495000, DuplexTDD},
	65:  {1920000, 2010000, 2110000, 2200000, DuplexFDD},
	66:  {1710000, 1780000, 2110000, 2200000, DuplexFDD},
	67:  {-1, -1, 738000, 758000, DuplexSDL},
	70:  {1695000, 1710000, 1995000, 2020000, DuplexFDD},
	71:  {663000, 698000, 617000, 652000, DuplexFDD},
	74:  {1427000, 1470000, 1475000, 1518000, DuplexFDD},
	75:  {-1, -1, 1432000, 1517000, DuplexSDL},
	76:  {-1, -1, 1427000, 1432000, DuplexSDL},
	77:  {3300000, 4200000, 3300000, 4200000, DuplexTDD},
	78:  {3300000, 3800000, 3300000, 3800000, DuplexTDD},
	79:  {4400000, 5000000, 4400000, 5000000, DuplexTDD},
	80:  {1710000, 1785000, -1, -1, DuplexSUL},
	81:  {880000, 915000, -1, -1, DuplexSUL},
	82:  {832000, 862000, -1, -1, DuplexSUL},
	83:  {703000, 748000, -1, -1, DuplexSUL},
	84:  {1920000, 1980000, -1, -1, DuplexSUL},
	85:  {698000, 716000, 728000, 746000, DuplexFDD},
	86:  {1710000, 1780000, -1, -1, DuplexSUL},
	89:  {824000, 849000, -1, -1, DuplexSUL},
	90:  {2496000, 2690000, 2496000, 2690000, DuplexTDD},
	91:  {832000, 862000, 1427000, 1432000, DuplexFDD},
	92:  {832000, 862000, 1432000, 1517000, DuplexFDD},
	93:  {880000, 915000, 1427000, 1432000, DuplexFDD},
	94:  {880000, 915000, 1432000, 1517000, DuplexFDD},
	95:  {2010000, 2025000, -1, -1, DuplexSUL},
	96:  {5925000, 7125000, 5925000, 7125000, DuplexTDD},
	97:  {2300000, 2400000, -1, -1, DuplexSUL},
	98:  {1880000, 1920000, -1, -1, DuplexSUL},
	99:  {1626500, 1660500, -1, -1, DuplexSUL},
	100: {874400, 880000, 919400, 925000, DuplexFDD},
	101: {1900000, 1910000, 1900000, 1910000, DuplexTDD},
	102: {5925000, 6425000, 5925000, 6425000, DuplexTDD},
	104: {6425000, 7125000, 6425000, 7125000, DuplexTDD},
	257: {26500000, 29500000, 26500000, 29500000, DuplexTDD},
	258: {24250000, 27500000, 24250000, 27500000, DuplexTDD},
	259: {39500000, 43500000, 39500000, 43500000, DuplexTDD},
	260: {37000000, 40000000, 37000000, 40000000, DuplexTDD},
	261: {27500000, 28350000, 27500000, 28350000, DuplexTDD},
	262: {47200000, 48200000, 47200000, 48200000, DuplexTDD},
}

// BandInfo returns the operating band descriptor and whether the band
// is known.
func BandInfo(band int) (Band, bool) {
	b, ok := bands[band]
	return b, ok
}

// BandMode returns the duplex mode for a band, or the empty string for
// an unknown band.
func BandMode(band int) string {
	if b, ok := bands[band]; ok {
		return b.Duplex
	}
	return ""
}

// Bands returns the list of known NR band numbers in ascending order.
func Bands() []int {
	out := make([]int, 0, len(bands))
	for b := range bands {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}
