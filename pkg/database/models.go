package database

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/mkrugly/nr-frequency/pkg/resolver"
)

// CellPlan records one resolved carrier configuration. The headline
// parameters are stored as indexed columns for querying; the complete
// derivation result is kept as a JSON document.
type CellPlan struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Name            string    `gorm:"index;size:64;not null" json:"name"`
	Band            int       `gorm:"index;not null" json:"band"`
	Duplex          string    `gorm:"size:8" json:"duplex"`
	FcChannelDL     int       `json:"fc_channel_dl"`
	FcChannelUL     int       `json:"fc_channel_ul"`
	Gscn            int       `gorm:"index" json:"gscn"`
	ArfcnSSB        int       `json:"arfcn_ssb"`
	ArfcnPointA     int       `json:"arfcn_point_a"`
	KSSB            int       `json:"k_ssb"`
	InputParamError bool      `json:"input_param_error"`
	Resolution      string    `gorm:"type:text" json:"resolution"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for CellPlan
func (CellPlan) TableName() string {
	return "cell_plans"
}

// BeforeCreate hook to ensure CreatedAt is set
func (p *CellPlan) BeforeCreate(tx *gorm.DB) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return nil
}

// NewCellPlan builds a CellPlan record from a resolution result
func NewCellPlan(name string, res *resolver.Resolution) (*CellPlan, error) {
	blob, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	return &CellPlan{
		Name:            name,
		Band:            res.Band,
		Duplex:          res.Duplex,
		FcChannelDL:     res.FcChannelDL,
		FcChannelUL:     res.FcChannelUL,
		Gscn:            res.Gscn,
		ArfcnSSB:        res.ArfcnSSB,
		ArfcnPointA:     res.ArfcnPointA,
		KSSB:            res.KSSB,
		InputParamError: res.InputParamError,
		Resolution:      string(blob),
	}, nil
}

// Resolved unmarshals the stored resolution document
func (p *CellPlan) Resolved() (*resolver.Resolution, error) {
	var res resolver.Resolution
	if err := json.Unmarshal([]byte(p.Resolution), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
