package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mkrugly/nr-frequency/pkg/database"
	"github.com/mkrugly/nr-frequency/pkg/logger"
	"github.com/mkrugly/nr-frequency/pkg/metrics"
	"github.com/mkrugly/nr-frequency/pkg/nr"
	"github.com/mkrugly/nr-frequency/pkg/resolver"
)

// APIDeps carries the optional backends the API can use. Nil fields
// disable the corresponding behavior.
type APIDeps struct {
	Plans   *database.CellPlanRepository
	Metrics *metrics.Collector
	Hub     *WebSocketHub
}

// API handles REST API endpoints
type API struct {
	logger   *logger.Logger
	resolver *resolver.Resolver
	deps     APIDeps
}

// NewAPI creates a new API instance
func NewAPI(log *logger.Logger, deps APIDeps) *API {
	return &API{
		logger:   log,
		resolver: resolver.New(log),
		deps:     deps,
	}
}

// HandleStatus handles the /api/status endpoint
func (a *API) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	version, _, _ := GetVersionInfo()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status":  "running",
		"service": "nr-frequency",
		"version": version,
	}

	_ = json.NewEncoder(w).Encode(response)
}

// resolveRequest is the /api/resolve request body: the carrier input
// plus an optional name used when persisting the plan.
type resolveRequest struct {
	Name string `json:"name"`
	resolver.Input
}

// HandleResolve handles the /api/resolve endpoint
func (a *API) HandleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		req.Name = "adhoc"
	}

	res, err := a.resolver.Resolve(req.Input)
	if err != nil {
		if a.deps.Metrics != nil {
			a.deps.Metrics.ResolutionFailed()
		}
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if a.deps.Metrics != nil {
		a.deps.Metrics.ResolutionCompleted(res.Band, res.Duplex, res.InputParamError)
	}

	if a.deps.Plans != nil {
		plan, err := database.NewCellPlan(req.Name, res)
		if err == nil {
			err = a.deps.Plans.Create(plan)
		}
		if err != nil {
			a.logger.Warn("Failed to persist cell plan",
				logger.String("name", req.Name), logger.Error(err))
		} else if a.deps.Metrics != nil {
			a.deps.Metrics.PlanStored()
		}
	}

	if a.deps.Hub != nil {
		a.deps.Hub.BroadcastResolution(req.Name, res.Band, res.Duplex, res)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}

// plansPage is the paginated /api/plans response envelope
type plansPage struct {
	Plans   []database.CellPlan `json:"plans"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
}

// HandlePlans handles the /api/plans endpoint. Filters: `name` or
// `band` select plans for one cell or band; `page`/`per_page` switch
// to a paginated envelope; otherwise the most recent `limit` plans are
// returned as a flat list.
func (a *API) HandlePlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	limit := 20
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	plans := []database.CellPlan{}
	if a.deps.Plans != nil {
		var err error
		switch {
		case q.Get("name") != "":
			plans, err = a.deps.Plans.GetByName(q.Get("name"), limit)

		case q.Get("band") != "":
			band, convErr := strconv.Atoi(q.Get("band"))
			if convErr != nil {
				writeJSONError(w, http.StatusBadRequest, "band must be an integer")
				return
			}
			plans, err = a.deps.Plans.GetByBand(band, limit)

		case q.Get("page") != "":
			page, convErr := strconv.Atoi(q.Get("page"))
			if convErr != nil || page < 1 {
				writeJSONError(w, http.StatusBadRequest, "page must be a positive integer")
				return
			}
			perPage := limit
			if v := q.Get("per_page"); v != "" {
				if n, err := strconv.Atoi(v); err == nil && n > 0 {
					perPage = n
				}
			}
			var total int64
			plans, total, err = a.deps.Plans.GetRecentPaginated(page, perPage)
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(plansPage{
					Plans:   plans,
					Total:   total,
					Page:    page,
					PerPage: perPage,
				})
				return
			}

		default:
			plans, err = a.deps.Plans.GetRecent(limit)
		}
		if err != nil {
			a.logger.Error("Failed to query cell plans", logger.Error(err))
			writeJSONError(w, http.StatusInternalServerError, "query failed")
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(plans)
}

// bandSummary is one entry of the /api/bands response
type bandSummary struct {
	Band   int    `json:"band"`
	Duplex string `json:"duplex"`
	ULLow  int    `json:"ul_low,omitempty"`
	ULHigh int    `json:"ul_high,omitempty"`
	DLLow  int    `json:"dl_low,omitempty"`
	DLHigh int    `json:"dl_high,omitempty"`
	FR     int    `json:"fr"`
}

// HandleBands handles the /api/bands endpoint
func (a *API) HandleBands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	bands := nr.Bands()
	out := make([]bandSummary, 0, len(bands))
	for _, band := range bands {
		info, _ := nr.BandInfo(band)
		fr := 2
		if nr.IsFR1(band) {
			fr = 1
		}
		out = append(out, bandSummary{
			Band:   band,
			Duplex: info.Duplex,
			ULLow:  info.ULLow,
			ULHigh: info.ULHigh,
			DLLow:  info.DLLow,
			DLHigh: info.DLHigh,
			FR:     fr,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(out)
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
