// Package coreset holds the CORESET#0 configuration tables from
// TS 38.213 section 13 and the lookup driven by pdcchConfigSib1.
package coreset

// Row is one CORESET#0 configuration: SSB/CORESET multiplexing pattern,
// width in resource blocks, duration in symbols and the RB offset from
// the SSB. Offsets can be negative for FR2 patterns 2 and 3.
type Row struct {
	Pattern int
	NRB     int
	NSym    int
	Offset  int
}

type tableKey struct {
	ScsSSB int
	Scs    int
}

// TS 38.213 Tables 13-1 and 13-4
var tabFR1 = map[tableKey][]Row{
	{15, 15}: {
		{1, 24, 2, 0},
		{1, 24, 2, 2},
		{1, 24, 2, 4},
		{1, 24, 3, 0},
		{1, 24, 3, 2},
		{1, 24, 3, 4},
		{1, 48, 1, 12},
		{1, 48, 1, 16},
		{1, 48, 2, 12},
		{1, 48, 2, 16},
		{1, 48, 3, 12},
		{1, 48, 3, 16},
		{1, 96, 1, 38},
		{1, 96, 2, 38},
		{1, 96, 3, 38},
	},
	{15, 30}: {
		{1, 24, 2, 5},
		{1, 24, 2, 6},
		{1, 24, 2, 7},
		{1, 24, 2, 8},
		{1, 24, 3, 5},
		{1, 24, 3, 6},
		{1, 24, 3, 7},
		{1, 24, 3, 8},
		{1, 48, 1, 18},
		{1, 48, 1, 20},
		{1, 48, 2, 18},
		{1, 48, 2, 20},
		{1, 48, 3, 18},
		{1, 48, 3, 20},
	},
	{30, 15}: {
		{1, 48, 1, 2},
		{1, 48, 1, 6},
		{1, 48, 2, 2},
		{1, 48, 2, 6},
		{1, 48, 3, 2},
		{1, 48, 3, 6},
		{1, 96, 1, 28},
		{1, 96, 2, 28},
		{1, 96, 3, 28},
	},
	{30, 30}: {
		{1, 24, 2, 0},
		{1, 24, 2, 1},
		{1, 24, 2, 2},
		{1, 24, 2, 3},
		{1, 24, 2, 4},
		{1, 24, 3, 0},
		{1, 24, 3, 1},
		{1, 24, 3, 2},
		{1, 24, 3, 3},
		{1, 24, 3, 4},
		{1, 48, 1, 12},
		{1, 48, 1, 14},
		{1, 48, 1, 16},
		{1, 48, 2, 12},
		{1, 48, 2, 14},
		{1, 48, 2, 16},
	},
}

// TS 38.213 Tables 13-5 and 13-6, bands with 40 MHz minimum channel
// bandwidth.
var tabFR1Min40 = map[tableKey][]Row{
	{30, 15}: {
		{1, 48, 1, 4},
		{1, 48, 2, 4},
		{1, 48, 3, 4},
		{1, 96, 1, 0},
		{1, 96, 1, 56},
		{1, 96, 2, 0},
		{1, 96, 2, 56},
		{1, 96, 3, 0},
		{1, 96, 3, 56},
	},
	{30, 30}: {
		{1, 24, 2, 0},
		{1, 24, 2, 4},
		{1, 24, 3, 0},
		{1, 24, 3, 4},
		{1, 48, 1, 0},
		{1, 48, 1, 28},
		{1, 48, 2, 0},
		{1, 48, 2, 28},
		{1, 48, 3, 0},
		{1, 48, 3, 28},
	},
}

// TS 38.213 Tables 13-7 through 13-10
var tabFR2 = map[tableKey][]Row{
	{120, 60}: {
		{1, 48, 1, 0},
		{1, 48, 1, 8},
		{1, 48, 2, 0},
		{1, 48, 2, 8},
		{1, 48, 3, 0},
		{1, 48, 3, 8},
		{1, 96, 1, 28},
		{1, 96, 2, 28},
		{2, 48, 1, -41},
		{2, 48, 1, 49},
		{2, 96, 1, -41},
		{2, 96, 1, 97},
	},
	{120, 120}: {
		{1, 24, 2, 0},
		{1, 24, 2, 4},
		{1, 48, 1, 14},
		{1, 48, 2, 14},
		{3, 24, 2, -20},
		{3, 24, 2, 24},
		{3, 48, 2, -20},
		{3, 48, 2, 48},
	},
	{240, 60}: {
		{1, 96, 1, 0},
		{1, 96, 1, 16},
		{1, 96, 2, 0},
		{1, 96, 2, 16},
	},
	{240, 120}: {
		{1, 48, 1, 0},
		{1, 48, 1, 8},
		{1, 48, 2, 0},
		{1, 48, 2, 8},
		{2, 24, 1, -41},
		{2, 24, 1, 25},
		{2, 48, 1, -41},
		{2, 48, 1, 49},
	},
}

// Lookup selects the CORESET#0 row addressed by the upper four bits of
// pdcchConfigSib1 for a given SSB and common subcarrier spacing.
// isMin40 picks the 40 MHz minimum bandwidth tables used by FR1 bands
// without narrower channels. The second return is false when the
// (scsSSB, scs) pair has no table or the index is out of range.
func Lookup(pdcchConfigSib1, scsSSB, scs int, isFR1, isMin40 bool) (Row, bool) {
	var tab []Row
	switch {
	case !isFR1:
		tab = tabFR2[tableKey{scsSSB, scs}]
	case isMin40:
		tab = tabFR1Min40[tableKey{scsSSB, scs}]
	default:
		tab = tabFR1[tableKey{scsSSB, scs}]
	}
	idx := pdcchConfigSib1 >> 4
	if idx < 0 || idx >= len(tab) {
		return Row{}, false
	}
	return tab[idx], true
}

// FreqDomainRes renders the 45-bit frequency domain resource bitmap for
// a common CORESET of the given width. Each set bit covers a group of
// six resource blocks; widths other than 48 and 96 fall back to the
// 24 RB map.
func FreqDomainRes(nRB int) string {
	switch nRB {
	case 48:
		return "111111110000000000000000000000000000000000000"
	case 96:
		return "111111111111111100000000000000000000000000000"
	default:
		return "111100000000000000000000000000000000000000000"
	}
}
