package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector collects frequency planning metrics
type Collector struct {
	registry *prometheus.Registry

	resolutionsTotal      *prometheus.CounterVec
	resolutionErrorsTotal prometheus.Counter
	inputParamErrorsTotal prometheus.Counter
	plansStoredTotal      prometheus.Counter
	configuredCells       prometheus.Gauge
}

// NewCollector creates a new metrics collector with its own registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		resolutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nrf_resolutions_total",
			Help: "Total carrier resolutions performed",
		}, []string{"band", "duplex"}),
		resolutionErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "nrf_resolution_errors_total",
			Help: "Total resolutions rejected with an error",
		}),
		inputParamErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "nrf_input_param_errors_total",
			Help: "Total resolutions completed with the input parameter error flag set",
		}),
		plansStoredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "nrf_plans_stored_total",
			Help: "Total cell plans persisted to the database",
		}),
		configuredCells: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nrf_configured_cells",
			Help: "Number of cells defined in the configuration",
		}),
	}
}

// Registry returns the underlying Prometheus registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ResolutionCompleted records a finished carrier resolution
func (c *Collector) ResolutionCompleted(band int, duplex string, inputParamError bool) {
	c.resolutionsTotal.WithLabelValues(strconv.Itoa(band), duplex).Inc()
	if inputParamError {
		c.inputParamErrorsTotal.Inc()
	}
}

// ResolutionFailed records a resolution rejected with an error
func (c *Collector) ResolutionFailed() {
	c.resolutionErrorsTotal.Inc()
}

// PlanStored records a cell plan persisted to the database
func (c *Collector) PlanStored() {
	c.plansStoredTotal.Inc()
}

// SetConfiguredCells records the number of cells in the configuration
func (c *Collector) SetConfiguredCells(n int) {
	c.configuredCells.Set(float64(n))
}
