package ssb

import (
	"reflect"
	"testing"
)

func TestCandidatesFR2WithGroupPresence(t *testing.T) {
	b := &Burst{
		Band:          257,
		ScsCommon:     120,
		ScsSSB:        120,
		InOneGroup:    "10000000",
		GroupPresence: "10101010",
		Periodicity:   20,
	}

	if got := b.Pattern(); got != "caseD" {
		t.Errorf("pattern = %q, want caseD", got)
	}

	want := map[int]Position{
		0:  {4, 0, 0},
		16: {144, 10, 1},
		32: {284, 20, 2},
		48: {424, 30, 3},
	}
	if got := b.Candidates(false); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}
}

func TestCandidatesBand77(t *testing.T) {
	b := &Burst{
		Band:        77,
		ScsCommon:   30,
		ScsSSB:      30,
		InOneGroup:  "10000000",
		Periodicity: 20,
	}

	if got := b.Pattern(); got != "caseC" {
		t.Errorf("pattern = %q, want caseC", got)
	}
	want := map[int]Position{0: {2, 0, 0}}
	if got := b.Candidates(false); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}

	b.InOneGroup = "11110001"
	want = map[int]Position{
		0: {2, 0, 0},
		1: {8, 0, 0},
		2: {16, 1, 0},
		3: {22, 1, 0},
		7: {50, 3, 1},
	}
	if got := b.Candidates(false); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}

	if got := b.StartSymbols(); !reflect.DeepEqual(got, []int{2, 8, 16, 22, 50}) {
		t.Errorf("start symbols = %v", got)
	}
	if got := b.Indices(); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 7}) {
		t.Errorf("indices = %v", got)
	}
}

func TestCandidatesRelative(t *testing.T) {
	b := &Burst{
		Band:        77,
		ScsCommon:   30,
		ScsSSB:      30,
		InOneGroup:  "11110001",
		Periodicity: 20,
	}
	want := map[int]Position{
		0: {2, 0, 0},
		1: {8, 0, 0},
		2: {2, 1, 0},
		3: {8, 1, 0},
		7: {8, 1, 1},
	}
	if got := b.Candidates(true); !reflect.DeepEqual(got, want) {
		t.Errorf("relative candidates = %v, want %v", got, want)
	}
}

func TestCommonRasterConversion(t *testing.T) {
	// 15 kHz SSB on a 30 kHz common grid doubles the symbol numbers
	b := &Burst{
		Band:        66,
		ScsCommon:   30,
		ScsSSB:      15,
		InOneGroup:  "1100",
		Periodicity: 20,
	}
	if got := b.StartSymbolsCommonRaster(); !reflect.DeepEqual(got, []int{4, 16}) {
		t.Errorf("common raster symbols = %v, want [4 16]", got)
	}
}

func TestSlotsInFrame(t *testing.T) {
	b := &Burst{
		Band:        77,
		ScsCommon:   30,
		ScsSSB:      30,
		InOneGroup:  "11110001",
		Periodicity: 20,
	}

	if got := b.SlotsInFrame(0); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Errorf("slots at sfn 0 = %v, want [0 1 3]", got)
	}
	if got := b.SlotsInFrame(1); got != nil {
		t.Errorf("slots at sfn 1 = %v, want none", got)
	}
	if got := b.SlotsInFrame(2); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Errorf("slots at sfn 2 = %v, want [0 1 3]", got)
	}

	b.Periodicity = 5
	if got := b.SlotsInFrame(0); !reflect.DeepEqual(got, []int{0, 1, 3, 10, 11, 13}) {
		t.Errorf("slots with 5ms periodicity = %v, want [0 1 3 10 11 13]", got)
	}
}
