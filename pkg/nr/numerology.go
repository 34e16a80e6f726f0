package nr

// Numerology (mu) to subcarrier spacing mappings from TS 38.104.
var (
	muToSCS = map[int]int{0: 15, 1: 30, 2: 60, 3: 120, 4: 240}
	scsToMu = map[int]int{15: 0, 30: 1, 60: 2, 120: 3, 240: 4}
)

// SCSFromMu returns the subcarrier spacing in kHz for a numerology,
// or -1 if the numerology is unknown.
func SCSFromMu(mu int) int {
	if scs, ok := muToSCS[mu]; ok {
		return scs
	}
	return -1
}

// MuFromSCS returns the numerology for a subcarrier spacing in kHz,
// or -1 if the spacing is unknown.
func MuFromSCS(scs int) int {
	if mu, ok := scsToMu[scs]; ok {
		return mu
	}
	return -1
}
