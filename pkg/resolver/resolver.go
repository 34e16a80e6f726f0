// Package resolver derives a complete, consistent set of cell frequency
// parameters from a compact input profile: carrier center frequencies on
// the channel raster, the SSB position on the sync raster, k_ssb,
// Point A and its ARFCN, and the CORESET#0 frequency domain resources.
//
// The derivation keeps the SSB and CORESET#0 as close as possible to
// the start of the initial BWP, shifting the channel frequency when the
// SSB offset cannot be expressed as a valid k_ssb.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkrugly/nr-frequency/pkg/coreset"
	"github.com/mkrugly/nr-frequency/pkg/logger"
	"github.com/mkrugly/nr-frequency/pkg/nr"
)

var (
	// ErrUnknownBand means the profile names a band outside the
	// supported FR1/FR2 operating bands.
	ErrUnknownBand = errors.New("unknown NR band")
	// ErrNoSyncRaster means the (band, scs_ssb) pair has no sync
	// raster entry, so no SSB can be placed.
	ErrNoSyncRaster = errors.New("no sync raster entry")
	// ErrNoChannelRaster means the band has no channel raster for the
	// derived raster step.
	ErrNoChannelRaster = errors.New("no channel raster entry")
)

// SSB transmission settings for Input.SSBTransmission.
const (
	SSBEnabled  = "enabled"
	SSBDisabled = "disabled"
)

// Input is a cell frequency profile. Zero values select defaults: band
// 66, 30 kHz spacings, 40 MHz bandwidth, pdcchConfigSib1 164 and a
// 49140 kHz distance between the channel center and Point A. BwUL and
// FcChannelUL default to their downlink counterparts. UseSyncRaster nil
// means true.
type Input struct {
	Band            int    `json:"band" mapstructure:"band"`
	ScsCarrier      int    `json:"scs_carrier" mapstructure:"scs_carrier"`
	ScsCommon       int    `json:"scs_common" mapstructure:"scs_common"`
	ScsSSB          int    `json:"scs_ssb" mapstructure:"scs_ssb"`
	Bw              int    `json:"bw" mapstructure:"bw"`
	BwUL            int    `json:"bw_ul" mapstructure:"bw_ul"`
	FcChannel       int    `json:"fc_channel" mapstructure:"fc_channel"`
	FcChannelUL     int    `json:"fc_channel_ul" mapstructure:"fc_channel_ul"`
	PdcchConfigSib1 int    `json:"pdcch_config_sib1" mapstructure:"pdcch_config_sib1"`
	OffsetToCarrier int    `json:"offset_to_carrier" mapstructure:"offset_to_carrier"`
	FFcToPointA     int    `json:"f_fc_to_point_a" mapstructure:"f_fc_to_point_a"`
	UseSyncRaster   *bool  `json:"use_sync_raster" mapstructure:"use_sync_raster"`
	SSBTransmission string `json:"ssb_transmission" mapstructure:"ssb_transmission"`
}

func (in *Input) applyDefaults() {
	if in.Band == 0 {
		in.Band = 66
	}
	if in.ScsCarrier == 0 {
		in.ScsCarrier = 30
	}
	if in.ScsCommon == 0 {
		in.ScsCommon = 30
	}
	if in.ScsSSB == 0 {
		in.ScsSSB = 30
	}
	if in.Bw == 0 {
		in.Bw = 40
	}
	if in.PdcchConfigSib1 == 0 {
		in.PdcchConfigSib1 = 164
	}
	if in.FFcToPointA == 0 {
		in.FFcToPointA = 49140
	}
	if in.SSBTransmission == "" {
		in.SSBTransmission = SSBEnabled
	}
}

// Resolution carries every derived cell parameter. Frequencies in kHz,
// bandwidths in MHz unless the name says otherwise. Downlink fields are
// unset for SUL bands, uplink fields for SDL bands.
type Resolution struct {
	Band            int    `json:"band"`
	Duplex          string `json:"duplex"`
	ScsCarrier      int    `json:"scs_carrier"`
	ScsCommon       int    `json:"scs_common"`
	ScsSSB          int    `json:"scs_ssb,omitempty"`
	Bw              int    `json:"bw"`
	BwUL            int    `json:"bw_ul,omitempty"`
	FreqRaster      int    `json:"freq_raster"`
	SSBEnabled      bool   `json:"ssb_enabled"`
	UseSyncRaster   bool   `json:"use_sync_raster"`
	PdcchConfigSib1 int    `json:"pdcch_cfg_sib1,omitempty"`
	OffsetToCarrier int    `json:"offset_to_carrier"`
	FFcToPointA     int    `json:"f_fc_to_point_a"`
	InputParamError bool   `json:"input_param_error"`

	FOffToCarrier         int `json:"f_off_to_carrier"`
	RBSize                int `json:"rb_size"`
	RB6Size               int `json:"rb_6_size"`
	OffsetCoreset0Carrier int `json:"offset_coreset0_carrier"`
	ScsCarrierMu          int `json:"scs_carrier_num"`
	ScsCommonMu           int `json:"scs_common_num"`

	OffsetRB     int    `json:"offset_rb,omitempty"`
	FOffsetRB    int    `json:"f_offset_rb,omitempty"`
	NRBCoreset0  int    `json:"n_rb_coreset0,omitempty"`
	NSymCoreset0 int    `json:"n_sym_coreset0,omitempty"`
	FDomainRes   string `json:"f_domain_res,omitempty"`
	KSSBMax      int    `json:"k_ssb_max,omitempty"`

	CbwDL              int    `json:"cbw_dl,omitempty"`
	CbwDLNRB           int    `json:"cbw_dl_nrb,omitempty"`
	BandBwDL           int    `json:"band_bw_dl,omitempty"`
	BandDLRange        [2]int `json:"band_dl_f_range,omitempty"`
	FcChannelDLRange   [3]int `json:"fc_channel_dl_range,omitempty"`
	FcChannelDL        int    `json:"fc_channel_dl,omitempty"`
	FcChannelDLLow     int    `json:"fc_channel_dl_low,omitempty"`
	FcChannelDLHigh    int    `json:"fc_channel_dl_high,omitempty"`
	FcDL               int    `json:"fc_dl,omitempty"`
	MaxLocationAndBwDL int    `json:"max_location_and_bw_dl,omitempty"`

	BwSSB      int    `json:"bw_ssb,omitempty"`
	ScsKSSB    int    `json:"scs_kssb,omitempty"`
	ScsSSBMu   int    `json:"scs_ssb_num,omitempty"`
	KSSB       int    `json:"k_ssb"`
	Gscn       int    `json:"gscn,omitempty"`
	FSS        int    `json:"f_ss,omitempty"`
	SSBPattern string `json:"ssb_pattern,omitempty"`

	FPointA       int `json:"f_point_a,omitempty"`
	ArfcnPointA   int `json:"arfcn_point_a,omitempty"`
	OffsetToPA    int `json:"offset_to_pa"`
	ArfcnSSB      int `json:"arfcn_ssb,omitempty"`
	FPointAUL     int `json:"f_point_a_ul,omitempty"`
	ArfcnPointAUL int `json:"arfcn_point_a_ul,omitempty"`

	CbwUL              int    `json:"cbw_ul,omitempty"`
	CbwULNRB           int    `json:"cbw_ul_nrb,omitempty"`
	BandBwUL           int    `json:"band_bw_ul,omitempty"`
	BandULRange        [2]int `json:"band_ul_f_range,omitempty"`
	FcChannelULRange   [3]int `json:"fc_channel_ul_range,omitempty"`
	FcChannelUL        int    `json:"fc_channel_ul,omitempty"`
	FcChannelULLow     int    `json:"fc_channel_ul_low,omitempty"`
	FcChannelULHigh    int    `json:"fc_channel_ul_high,omitempty"`
	FcUL               int    `json:"fc_ul,omitempty"`
	MaxLocationAndBwUL int    `json:"max_location_and_bw_ul,omitempty"`
}

// IsSUL reports whether the resolved band is a supplementary uplink
// band.
func (r *Resolution) IsSUL() bool { return r.Duplex == nr.DuplexSUL }

// IsSDL reports whether the resolved band is a supplementary downlink
// band.
func (r *Resolution) IsSDL() bool { return r.Duplex == nr.DuplexSDL }

func (r *Resolution) minScs() int {
	if r.IsSUL() {
		return r.ScsCarrier
	}
	if r.ScsSSB < r.ScsCarrier {
		return r.ScsSSB
	}
	return r.ScsCarrier
}

// Resolver turns input profiles into resolutions.
type Resolver struct {
	log *logger.Logger
}

// New creates a resolver. log may be nil.
func New(log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.New(logger.Config{Level: "info"})
	}
	return &Resolver{log: log.WithComponent("resolver")}
}

// Resolve derives the full parameter set for the profile. The returned
// resolution is complete even when InputParamError is set; the flag
// marks inputs that had to be corrected (out-of-range center frequency
// or an unsupported CORESET#0 index).
func (r *Resolver) Resolve(in Input) (*Resolution, error) {
	in.applyDefaults()

	duplex := nr.BandMode(in.Band)
	if duplex == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBand, in.Band)
	}

	res := &Resolution{
		Band:            in.Band,
		Duplex:          duplex,
		ScsCarrier:      in.ScsCarrier,
		ScsCommon:       in.ScsCommon,
		Bw:              in.Bw,
		BwUL:            in.BwUL,
		FcChannelDL:     in.FcChannel,
		FcChannelUL:     in.FcChannelUL,
		OffsetToCarrier: in.OffsetToCarrier,
		FFcToPointA:     in.FFcToPointA,
	}
	if !res.IsSUL() {
		res.ScsSSB = in.ScsSSB
		res.PdcchConfigSib1 = in.PdcchConfigSib1
		res.UseSyncRaster = in.UseSyncRaster == nil || *in.UseSyncRaster
		res.SSBEnabled = in.SSBTransmission == SSBEnabled
	} else if res.FcChannelUL == 0 {
		// SUL bands have no downlink to derive the uplink from
		res.FcChannelUL = in.FcChannel
	}

	if err := r.initParams(res); err != nil {
		return nil, err
	}
	if res.SSBEnabled {
		r.calculateGscn(res)
		r.shiftChannelFreq(res)
	}
	r.pointAOffsets(res)
	r.arfcns(res)
	if !res.IsSUL() {
		r.fDomainResources(res)
	}
	return res, nil
}

func (r *Resolver) initParams(res *Resolution) error {
	res.FreqRaster = nr.FreqRasterStep(res.Band, res.minScs())
	res.FOffToCarrier = res.OffsetToCarrier * res.ScsCarrier * 12
	res.RBSize = 12 * res.ScsCarrier
	res.RB6Size = 6 * res.RBSize
	res.ScsCarrierMu = nr.MuFromSCS(res.ScsCarrier)
	res.ScsCommonMu = nr.MuFromSCS(res.ScsCommon)
	if _, ok := nr.ChannelRasterFor(res.Band, res.FreqRaster); !ok {
		return fmt.Errorf("%w: band %d, raster %d", ErrNoChannelRaster, res.Band, res.FreqRaster)
	}

	if !res.IsSUL() {
		if err := r.coresetZero(res); err != nil {
			return err
		}
		res.KSSBMax = kSSBMax(res.ScsCarrier)
		res.CbwDL, res.CbwDLNRB = nr.Cbw(res.ScsCarrier, res.Bw, res.Band)
		res.BandBwDL = nr.BandBandwidth(res.minScs(), res.Band, false)
		low, high := nr.BandRange(res.minScs(), res.Band, false)
		res.BandDLRange = [2]int{low, high}
		fcLow, fcMid, fcHigh := nr.FcRange(res.ScsCarrier, res.Bw, res.Band, res.FreqRaster, false)
		res.FcChannelDLRange = [3]int{fcLow, fcMid, fcHigh}
		r.initFcDL(res)

		res.BwSSB = 12 * 20 * res.ScsSSB
		res.ScsKSSB = kSSBScs(res.ScsCommon)
		res.ScsSSBMu = nr.MuFromSCS(res.ScsSSB)
		sr, ok := nr.SyncRasterFor(res.Band, res.ScsSSB)
		if !ok {
			return fmt.Errorf("%w: band %d, scs_ssb %d", ErrNoSyncRaster, res.Band, res.ScsSSB)
		}
		res.SSBPattern = sr.Pattern
		res.MaxLocationAndBwDL = nr.MaxLocationAndBW(0, res.ScsCarrier, res.Bw, res.Band)
	}

	if !res.IsSDL() {
		if res.FcChannelUL == 0 {
			r.log.Info("deriving UL channel frequency from DL",
				logger.Int("fc_channel_dl", res.FcChannelDL))
			res.FcChannelUL = nr.ULFromDL(res.FcChannelDL, res.Band, res.FreqRaster)
		}
		if res.BwUL == 0 {
			res.BwUL = res.Bw
		}
		res.CbwUL, res.CbwULNRB = nr.Cbw(res.ScsCarrier, res.BwUL, res.Band)
		res.BandBwUL = nr.BandBandwidth(res.minScs(), res.Band, true)
		low, high := nr.BandRange(res.minScs(), res.Band, true)
		res.BandULRange = [2]int{low, high}
		fcLow, fcMid, fcHigh := nr.FcRange(res.ScsCarrier, res.BwUL, res.Band, res.FreqRaster, true)
		res.FcChannelULRange = [3]int{fcLow, fcMid, fcHigh}
		r.initFcUL(res)
		res.MaxLocationAndBwUL = nr.MaxLocationAndBW(0, res.ScsCarrier, res.BwUL, res.Band)
	}
	return nil
}

// coresetZero resolves the CORESET#0 row for pdcchConfigSib1 and
// derives the RB offset and frequency domain resource defaults. An
// unsupported index falls back to row 0 and flags the input.
func (r *Resolver) coresetZero(res *Resolution) error {
	isFR1 := nr.IsFR1(res.Band)
	isMin40 := res.Band == 79
	row, ok := coreset.Lookup(res.PdcchConfigSib1, res.ScsSSB, res.ScsCarrier, isFR1, isMin40)
	if !ok {
		res.InputParamError = true
		r.log.Warn("no CORESET#0 row for pdcchConfigSib1, falling back to index 0",
			logger.Int("pdcch_cfg_sib1", res.PdcchConfigSib1),
			logger.Int("scs_ssb", res.ScsSSB),
			logger.Int("scs_carrier", res.ScsCarrier),
			logger.Int("band", res.Band))
		row, ok = coreset.Lookup(0, res.ScsSSB, res.ScsCarrier, isFR1, isMin40)
		if !ok {
			return fmt.Errorf("no CORESET#0 table for scs_ssb %d, scs %d (band %d)",
				res.ScsSSB, res.ScsCarrier, res.Band)
		}
	}
	res.OffsetRB = row.Offset
	res.FOffsetRB = 12 * row.Offset * res.ScsCommon
	res.NRBCoreset0 = row.NRB
	res.NSymCoreset0 = row.NSym
	res.FDomainRes = coreset.FreqDomainRes(row.NRB)
	return nil
}

// TS 38.211 section 7.4.3.1: k_ssb counts 15 kHz subcarriers for FR1.
func kSSBScs(scsCommon int) int {
	if scsCommon == 15 || scsCommon == 30 {
		return 15
	}
	return scsCommon
}

func kSSBMax(scsCarrier int) int {
	if scsCarrier == 30 {
		return 22
	}
	return 11
}

func (r *Resolver) initFcDL(res *Resolution) {
	res.FcChannelDL = nr.ChannelRasterFrequency(res.FcChannelDL, res.Band, res.FreqRaster, false, nr.RoundNearest)
	res.FcChannelDLLow = res.FcChannelDLRange[0]
	res.FcChannelDLHigh = res.FcChannelDLRange[2]
	if res.FcChannelDL < res.FcChannelDLLow {
		res.InputParamError = true
		r.log.Warn("DL center frequency below allowed range, clamping",
			logger.Int("fc_channel_dl", res.FcChannelDL),
			logger.Int("fc_low", res.FcChannelDLLow),
			logger.Int("fc_high", res.FcChannelDLHigh),
			logger.Int("bw", res.Bw))
		res.FcChannelDL = res.FcChannelDLLow
	} else if res.FcChannelDL > res.FcChannelDLHigh {
		res.InputParamError = true
		r.log.Warn("DL center frequency above allowed range, clamping",
			logger.Int("fc_channel_dl", res.FcChannelDL),
			logger.Int("fc_low", res.FcChannelDLLow),
			logger.Int("fc_high", res.FcChannelDLHigh),
			logger.Int("bw", res.Bw))
		res.FcChannelDL = res.FcChannelDLHigh
	}
	r.fcDLNet(res)
}

func (r *Resolver) initFcUL(res *Resolution) {
	res.FcChannelUL = nr.ChannelRasterFrequency(res.FcChannelUL, res.Band, res.FreqRaster, true, nr.RoundNearest)
	res.FcChannelULLow = res.FcChannelULRange[0]
	res.FcChannelULHigh = res.FcChannelULRange[2]
	if res.FcChannelUL < res.FcChannelULLow {
		res.InputParamError = true
		r.log.Warn("UL center frequency below allowed range, clamping",
			logger.Int("fc_channel_ul", res.FcChannelUL),
			logger.Int("fc_low", res.FcChannelULLow),
			logger.Int("fc_high", res.FcChannelULHigh),
			logger.Int("bw_ul", res.BwUL))
		res.FcChannelUL = res.FcChannelULLow
	} else if res.FcChannelUL > res.FcChannelULHigh {
		res.InputParamError = true
		r.log.Warn("UL center frequency above allowed range, clamping",
			logger.Int("fc_channel_ul", res.FcChannelUL),
			logger.Int("fc_low", res.FcChannelULLow),
			logger.Int("fc_high", res.FcChannelULHigh),
			logger.Int("bw_ul", res.BwUL))
		res.FcChannelUL = res.FcChannelULHigh
	}
	r.fcULNet(res)
}

// fcDLNet sets the actual DL carrier center: the channel center shifted
// by the Point A distance, the carrier offset and half the channel
// bandwidth.
func (r *Resolver) fcDLNet(res *Resolution) {
	res.FcDL = res.FcChannelDL + res.FFcToPointA - res.FOffToCarrier - res.CbwDL/2
	if res.FcDL > res.BandDLRange[1] {
		r.log.Warn("DL carrier center outside the band range, adjust offset_to_carrier or fc_channel",
			logger.Int("fc_dl", res.FcDL),
			logger.Int("band_low", res.BandDLRange[0]),
			logger.Int("band_high", res.BandDLRange[1]))
	}
}

func (r *Resolver) fcULNet(res *Resolution) {
	res.FcUL = res.FcChannelUL + res.FFcToPointA - res.FOffToCarrier - res.CbwUL/2
	if res.FcUL > res.BandULRange[1] {
		r.log.Warn("UL carrier center outside the band range, adjust offset_to_carrier or fc_channel",
			logger.Int("fc_ul", res.FcUL),
			logger.Int("band_low", res.BandULRange[0]),
			logger.Int("band_high", res.BandULRange[1]))
	}
}

// fSSBMin is the lowest SSB center frequency keeping the whole SSB and
// the CORESET#0 offset inside the carrier.
func fSSBMin(res *Resolution) int {
	return res.FcChannelDL - res.CbwDL/2 + res.BwSSB/2 + res.OffsetRB*12*res.ScsCarrier
}

// fOffSSBCarrier is the distance from the carrier's low edge to the
// bottom of the SSB at fSSB.
func fOffSSBCarrier(res *Resolution, fSSB int) int {
	return fSSB - res.BwSSB/2 - (res.FcChannelDL - res.CbwDL/2)
}

func (r *Resolver) calculateGscn(res *Resolution) {
	min := fSSBMin(res)
	if !res.UseSyncRaster {
		res.FSS = min
		return
	}
	gscn := nr.FrequencyToGscn(min, res.FreqRaster, nr.RoundCeil)
	fSS := nr.GscnToFrequency(gscn, res.FreqRaster)
	r.log.Info("starting GSCN selection",
		logger.Int("f_ssb_min", min),
		logger.Int("gscn", gscn),
		logger.Int("f_ss", fSS))
	if min < 3000000 && res.FreqRaster == 100 {
		// below 3 GHz on the 100 kHz raster the SSB-to-carrier offset
		// must stay a multiple of 15 kHz; probe the next GSCNs
		for i := 0; i < 2; i++ {
			if fOffSSBCarrier(res, fSS)%15 == 0 {
				break
			}
			gscn++
			fSS = nr.GscnToFrequency(gscn, res.FreqRaster)
			r.log.Info("SSB offset not on 15 kHz grid, probing next GSCN",
				logger.Int("gscn", gscn),
				logger.Int("f_ss", fSS))
		}
	}
	gscn = nr.GscnAlign(gscn, res.ScsSSB, res.Band, nr.AlignNearest)
	fSS = nr.GscnToFrequency(gscn, res.FreqRaster)
	r.log.Info("selected GSCN", logger.Int("gscn", gscn), logger.Int("f_ss", fSS))
	res.Gscn = gscn
	res.FSS = fSS
}

// shiftChannelFreq reconciles the SSB placement with k_ssb. When the
// SSB-to-CORESET#0 distance exceeds k_ssb_max the channel frequency is
// shifted up by the smallest raster-aligned amount, or, when that
// leaves the allowed range, the previous GSCN is taken and the channel
// shifted down.
func (r *Resolver) shiftChannelFreq(res *Resolution) {
	fDiff := fOffSSBCarrier(res, res.FSS) - res.FOffsetRB
	kSSB := fDiff / res.ScsKSSB
	if kSSB <= res.KSSBMax {
		res.KSSB = kSSB
		return
	}
	r.log.Info("k_ssb exceeds maximum, channel frequency shift needed",
		logger.Int("k_ssb", kSSB),
		logger.Int("k_ssb_max", res.KSSBMax))

	fShiftUp := fDiff
	kSSB = 0
	for i := 0; i <= res.KSSBMax; i++ {
		if shift := fDiff - i*res.ScsKSSB; shift > 0 && shift%res.FreqRaster == 0 {
			fShiftUp = shift
			kSSB = i
			break
		}
	}
	res.KSSB = kSSB
	if res.FcChannelDL+fShiftUp <= res.FcChannelDLHigh {
		res.FcChannelDL += fShiftUp
		r.log.Info("shifting channel frequency up",
			logger.Int("shift", fShiftUp),
			logger.Int("fc_channel_dl", res.FcChannelDL),
			logger.Int("k_ssb", kSSB))
	} else {
		gscnPrev := res.Gscn - 1
		fSSPrev := nr.GscnToFrequency(gscnPrev, res.FreqRaster)
		fShiftDown := res.FSS - fSSPrev - fShiftUp
		res.Gscn = gscnPrev
		res.FSS = fSSPrev
		res.FcChannelDL -= fShiftDown
		r.log.Info("shift up leaves the allowed range, stepping GSCN down",
			logger.Int("gscn", gscnPrev),
			logger.Int("f_ss", fSSPrev),
			logger.Int("shift", fShiftDown),
			logger.Int("k_ssb", kSSB))
	}
	r.fcDLNet(res)
	if !res.IsSDL() {
		res.FcChannelUL = nr.ULFromDL(res.FcChannelDL, res.Band, res.FreqRaster)
		r.fcULNet(res)
	}
}

func (r *Resolver) pointAOffsets(res *Resolution) {
	if !res.IsSUL() {
		res.FPointA = res.FcDL - res.FFcToPointA
	}
	if !res.IsSDL() {
		if res.IsSUL() {
			res.FPointAUL = res.FcUL - res.FFcToPointA
		} else {
			res.FPointAUL = nr.ULFromDL(res.FPointA, res.Band, res.FreqRaster)
		}
	}
	if res.SSBEnabled {
		scs := 15
		if !nr.IsFR1(res.Band) {
			scs = 60
		}
		res.OffsetToPA = (res.FOffToCarrier + res.FOffsetRB) / (12 * scs)
	}
}

func (r *Resolver) arfcns(res *Resolution) {
	if !res.IsSUL() {
		res.ArfcnPointA = nr.Arfcn(res.FPointA)
		r.log.Info("absolute frequency Point A",
			logger.Int("arfcn", res.ArfcnPointA),
			logger.Int("f_point_a", res.FPointA))
	}
	if !res.IsSDL() {
		res.ArfcnPointAUL = nr.Arfcn(res.FPointAUL)
	}
	if res.SSBEnabled {
		res.ArfcnSSB = nr.Arfcn(res.FSS)
		r.log.Info("absolute frequency SSB",
			logger.Int("arfcn", res.ArfcnSSB),
			logger.Int("f_ss", res.FSS))
	}
}

// fDomainResources renders the 45-bit common CORESET bitmap on the BWP
// grid: the CORESET#0 RBs shifted by offset_to_carrier and re-aligned
// to 6-RB groups.
func (r *Resolver) fDomainResources(res *Resolution) {
	sRB0 := res.OffsetToCarrier + res.OffsetCoreset0Carrier
	sRBCommon := 6 * ((sRB0 + 5) / 6)
	sRBGrid := sRBCommon - res.OffsetToCarrier
	sRBG := sRBGrid / 6
	nRBG := (sRB0 + res.NRBCoreset0 - sRBCommon) / 6
	res.FDomainRes = strings.Repeat("0", sRBG) +
		strings.Repeat("1", nRBG) +
		strings.Repeat("0", 45-sRBG-nRBG)
}
