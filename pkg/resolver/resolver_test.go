package resolver

import (
	"io"
	"testing"

	"github.com/mkrugly/nr-frequency/pkg/logger"
)

func testResolver() *Resolver {
	return New(logger.New(logger.Config{Level: "error", Output: io.Discard}))
}

func TestResolveBand77(t *testing.T) {
	r := testResolver()
	res, err := r.Resolve(Input{
		Band:            77,
		ScsCarrier:      30,
		ScsCommon:       30,
		ScsSSB:          30,
		Bw:              50,
		FcChannel:       3750000,
		PdcchConfigSib1: 24,
		OffsetToCarrier: 102,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.InputParamError {
		t.Error("unexpected input param error")
	}
	if res.Duplex != "TDD" {
		t.Errorf("duplex = %q, want TDD", res.Duplex)
	}
	if res.FreqRaster != 30 {
		t.Errorf("freq_raster = %d, want 30", res.FreqRaster)
	}
	if res.OffsetRB != 1 || res.NRBCoreset0 != 24 || res.NSymCoreset0 != 2 {
		t.Errorf("coreset0 = offset %d, n_rb %d, n_sym %d, want 1, 24, 2",
			res.OffsetRB, res.NRBCoreset0, res.NSymCoreset0)
	}
	if res.FOffsetRB != 360 {
		t.Errorf("f_offset_rb = %d, want 360", res.FOffsetRB)
	}
	if res.CbwDL != 47880 || res.CbwDLNRB != 133 {
		t.Errorf("cbw_dl = %d/%d RB, want 47880/133", res.CbwDL, res.CbwDLNRB)
	}
	if res.FcChannelDLRange != [3]int{3323940, 3750000, 4176060} {
		t.Errorf("fc_channel_dl_range = %v", res.FcChannelDLRange)
	}
	if res.FcChannelDL != 3750000 {
		t.Errorf("fc_channel_dl = %d, want 3750000", res.FcChannelDL)
	}
	if res.FOffToCarrier != 36720 {
		t.Errorf("f_off_to_carrier = %d, want 36720", res.FOffToCarrier)
	}
	if res.FcDL != 3738480 {
		t.Errorf("fc_dl = %d, want 3738480", res.FcDL)
	}
	if res.Gscn != 8006 || res.FSS != 3730080 {
		t.Errorf("gscn/f_ss = %d/%d, want 8006/3730080", res.Gscn, res.FSS)
	}
	if res.KSSB != 4 {
		t.Errorf("k_ssb = %d, want 4", res.KSSB)
	}
	if res.KSSBMax != 22 {
		t.Errorf("k_ssb_max = %d, want 22", res.KSSBMax)
	}
	if res.FPointA != 3689340 {
		t.Errorf("f_point_a = %d, want 3689340", res.FPointA)
	}
	if res.ArfcnPointA != 645956 {
		t.Errorf("arfcn_point_a = %d, want 645956", res.ArfcnPointA)
	}
	if res.ArfcnSSB != 648672 {
		t.Errorf("arfcn_ssb = %d, want 648672", res.ArfcnSSB)
	}
	if res.OffsetToPA != 206 {
		t.Errorf("offset_to_pa = %d, want 206", res.OffsetToPA)
	}
	wantBitmap := "111100000000000000000000000000000000000000000"
	if res.FDomainRes != wantBitmap {
		t.Errorf("f_domain_res = %s, want %s", res.FDomainRes, wantBitmap)
	}
	if res.MaxLocationAndBwDL != 36300 {
		t.Errorf("max_location_and_bw_dl = %d, want 36300", res.MaxLocationAndBwDL)
	}
	if res.SSBPattern != "caseC" {
		t.Errorf("ssb_pattern = %q, want caseC", res.SSBPattern)
	}
	// TDD band: UL mirrors DL
	if res.FcChannelUL != res.FcChannelDL {
		t.Errorf("fc_channel_ul = %d, want %d", res.FcChannelUL, res.FcChannelDL)
	}
	if res.FPointAUL != res.FPointA || res.ArfcnPointAUL != res.ArfcnPointA {
		t.Errorf("UL point A = %d/%d, want %d/%d",
			res.FPointAUL, res.ArfcnPointAUL, res.FPointA, res.ArfcnPointA)
	}
}

func TestResolveDefaults(t *testing.T) {
	r := testResolver()
	res, err := r.Resolve(Input{FcChannel: 2130000})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Band != 66 {
		t.Errorf("band = %d, want default 66", res.Band)
	}
	if res.Duplex != "FDD" {
		t.Errorf("duplex = %q, want FDD", res.Duplex)
	}
	if res.Bw != 40 || res.BwUL != 40 {
		t.Errorf("bw = %d/%d, want 40/40", res.Bw, res.BwUL)
	}
	if res.FFcToPointA != 49140 {
		t.Errorf("f_fc_to_point_a = %d, want 49140", res.FFcToPointA)
	}
	if !res.UseSyncRaster || !res.SSBEnabled {
		t.Error("sync raster and SSB should default to enabled")
	}
	// FDD: UL derived over the 400 MHz duplex distance
	if res.FcChannelUL >= res.FcChannelDL {
		t.Errorf("fc_channel_ul = %d should be below fc_channel_dl = %d",
			res.FcChannelUL, res.FcChannelDL)
	}
}

func TestResolveClampsOutOfRangeFc(t *testing.T) {
	r := testResolver()
	res, err := r.Resolve(Input{
		Band:       77,
		ScsCarrier: 30,
		ScsCommon:  30,
		ScsSSB:     30,
		Bw:         50,
		FcChannel:  9999999,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !res.InputParamError {
		t.Error("expected input param error flag")
	}
	if res.FcChannelDL > res.FcChannelDLHigh {
		t.Errorf("fc_channel_dl = %d not clamped to %d", res.FcChannelDL, res.FcChannelDLHigh)
	}
}

func TestResolveNoSyncRaster(t *testing.T) {
	r := testResolver()
	res, err := r.Resolve(Input{
		Band:          77,
		ScsCarrier:    30,
		ScsCommon:     30,
		ScsSSB:        30,
		Bw:            50,
		FcChannel:     3750000,
		UseSyncRaster: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	// without the sync raster f_ss is pinned to the lowest legal SSB
	// position and no GSCN is selected
	if res.Gscn != 0 {
		t.Errorf("gscn = %d, want 0", res.Gscn)
	}
	want := res.FcChannelDL - res.CbwDL/2 + res.BwSSB/2 + res.OffsetRB*12*res.ScsCarrier
	if res.FSS != want {
		t.Errorf("f_ss = %d, want %d", res.FSS, want)
	}
}

func TestResolveCoresetIndexFallback(t *testing.T) {
	r := testResolver()
	res, err := r.Resolve(Input{
		Band:            77,
		ScsCarrier:      15,
		ScsCommon:       15,
		ScsSSB:          30,
		Bw:              50,
		FcChannel:       3750000,
		PdcchConfigSib1: 240, // index 15, table (30, 15) has 9 rows
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !res.InputParamError {
		t.Error("expected input param error flag for out-of-range coreset index")
	}
	if res.NRBCoreset0 != 48 || res.OffsetRB != 2 {
		t.Errorf("fallback coreset0 = n_rb %d, offset %d, want 48, 2", res.NRBCoreset0, res.OffsetRB)
	}
}

func TestResolveUnknownBand(t *testing.T) {
	r := testResolver()
	if _, err := r.Resolve(Input{Band: 999, FcChannel: 1000000}); err == nil {
		t.Fatal("expected error for unknown band")
	}
}

func TestResolveSULBand(t *testing.T) {
	r := testResolver()
	res, err := r.Resolve(Input{
		Band:        80,
		ScsCarrier:  15,
		ScsCommon:   15,
		Bw:          20,
		FcChannelUL: 1747500,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !res.IsSUL() {
		t.Fatal("band 80 should be SUL")
	}
	if res.SSBEnabled {
		t.Error("SUL band must not transmit SSB")
	}
	if res.FcUL == 0 || res.FPointAUL == 0 || res.ArfcnPointAUL == 0 {
		t.Errorf("UL chain not resolved: fc_ul %d, f_point_a_ul %d, arfcn %d",
			res.FcUL, res.FPointAUL, res.ArfcnPointAUL)
	}
	if res.FPointA != 0 || res.ArfcnPointA != 0 {
		t.Error("DL point A must stay unset for SUL")
	}
}

func TestResolveSDLBand(t *testing.T) {
	r := testResolver()
	res, err := r.Resolve(Input{
		Band:       75,
		ScsCarrier: 15,
		ScsCommon:  15,
		ScsSSB:     15,
		Bw:         20,
		FcChannel:  1474800,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !res.IsSDL() {
		t.Fatal("band 75 should be SDL")
	}
	if res.FcUL != 0 || res.ArfcnPointAUL != 0 {
		t.Error("UL chain must stay unset for SDL")
	}
	if res.ArfcnPointA == 0 || res.ArfcnSSB == 0 {
		t.Errorf("DL chain not resolved: arfcn_point_a %d, arfcn_ssb %d",
			res.ArfcnPointA, res.ArfcnSSB)
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := testResolver()
	in := Input{
		Band:            77,
		ScsCarrier:      30,
		ScsCommon:       30,
		ScsSSB:          30,
		Bw:              50,
		FcChannel:       3750000,
		PdcchConfigSib1: 24,
		OffsetToCarrier: 102,
	}
	a, err := r.Resolve(in)
	if err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	b, err := r.Resolve(in)
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if *a != *b {
		t.Errorf("resolutions differ:\n%+v\n%+v", *a, *b)
	}
}

func boolPtr(b bool) *bool { return &b }
