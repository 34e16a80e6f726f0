package config

import (
	"fmt"

	"github.com/mkrugly/nr-frequency/pkg/nr"
)

// validate validates the configuration
func validate(cfg *Config) error {
	// Validate web config
	if cfg.Web.Enabled {
		if cfg.Web.Port <= 0 || cfg.Web.Port > 65535 {
			return fmt.Errorf("web.port must be between 1 and 65535")
		}
	}

	// Validate metrics config
	if cfg.Metrics.Enabled && cfg.Metrics.Prometheus.Enabled {
		if cfg.Metrics.Prometheus.Port <= 0 || cfg.Metrics.Prometheus.Port > 65535 {
			return fmt.Errorf("metrics.prometheus.port must be between 1 and 65535")
		}
	}

	// Validate database config
	if cfg.Database.RetentionDays < 0 {
		return fmt.Errorf("database.retention_days must not be negative")
	}

	// Validate cells
	for name, cell := range cfg.Cells {
		if cell.Band <= 0 {
			return fmt.Errorf("cell %s: band is required", name)
		}
		if nr.BandMode(cell.Band) == "" {
			return fmt.Errorf("cell %s: unknown band n%d", name, cell.Band)
		}
		if cell.Bw != 0 && cell.ScsCarrier != 0 {
			if !containsInt(nr.CbwsInBand(cell.Band, cell.ScsCarrier), cell.Bw) {
				return fmt.Errorf("cell %s: bandwidth %d MHz not supported in band n%d at %d kHz",
					name, cell.Bw, cell.Band, cell.ScsCarrier)
			}
		}
		if cell.SSBTransmission != "" && cell.SSBTransmission != "enabled" && cell.SSBTransmission != "disabled" {
			return fmt.Errorf("cell %s: ssb_transmission must be enabled or disabled", name)
		}
		if err := validateBitmap(cell.SSBInOneGroup); err != nil {
			return fmt.Errorf("cell %s: ssb_in_onegroup: %w", name, err)
		}
		if err := validateBitmap(cell.SSBGroupPresence); err != nil {
			return fmt.Errorf("cell %s: ssb_group_presence: %w", name, err)
		}
		if cell.SSBPeriodicity != 0 && !containsInt([]int{5, 10, 20, 40, 80, 160}, cell.SSBPeriodicity) {
			return fmt.Errorf("cell %s: ssb_periodicity must be one of 5, 10, 20, 40, 80, 160 ms", name)
		}
	}

	return nil
}

// validateBitmap checks an SSB position bitmap (empty means use the default)
func validateBitmap(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != 4 && len(s) != 8 {
		return fmt.Errorf("bitmap must be 4 or 8 bits, got %d", len(s))
	}
	for _, c := range s {
		if c != '0' && c != '1' {
			return fmt.Errorf("bitmap may only contain 0 and 1")
		}
	}
	return nil
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
