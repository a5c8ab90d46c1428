package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seatd/internal/manager"
	"seatd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
// *manager.Manager satisfies it.
type Service interface {
	Admit(types.ClientsGroup) manager.Admission
	Depart(types.ClientsGroup) manager.Departure
	Lookup(types.ClientsGroup) (types.Table, bool)
	GetTables() []types.Table
	IsTableOccupied(types.Table) bool
	GetQueue() []types.ClientsGroup
	Status() types.StatusResponse
	WaitForChange(ctx context.Context, since uint64) (uint64, error)
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5, "application/json"))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}

	r.Post("/arrivals", arrivalHandler(svc))
	r.Post("/departures", departureHandler(svc))
	r.Get("/lookup", lookupHandler(svc))
	r.Get("/tables", tablesHandler(svc))
	r.Get("/tables/{capacity}/occupied", occupancyHandler(svc))
	r.Get("/queue", queueHandler(svc))
	r.Get("/status", statusHandler(svc))
	r.Get("/changes", changesHandler(svc))
	r.Get("/ws", statusFeed(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if shuttingDown() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("shutting down"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// arrivalHandler godoc
// @Summary      Group arrives
// @Description  Seats the group at the first free table with size or size+1 seats, or appends it to the waiting queue.
// @Tags         seating
// @Accept       json
// @Produce      json
// @Param        request  body      types.GroupRequest  true  "Arriving group"
// @Success      200      {object}  types.AdmissionResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Router       /arrivals [post]
func arrivalHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := decodeGroup(w, r)
		if !ok {
			return
		}
		a := svc.Admit(g)
		resp := types.AdmissionResponse{Seated: a.Seated, QueuePosition: a.QueuePosition, Version: a.Version}
		if a.Seated {
			t := a.Table
			resp.Table = &t
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// departureHandler godoc
// @Summary      Group leaves
// @Description  Retires a free table matching the group, otherwise removes every equal group from the waiting queue.
// @Tags         seating
// @Accept       json
// @Produce      json
// @Param        request  body      types.GroupRequest  true  "Departing group"
// @Success      200      {object}  types.DepartureResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Router       /departures [post]
func departureHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := decodeGroup(w, r)
		if !ok {
			return
		}
		d := svc.Depart(g)
		resp := types.DepartureResponse{Dequeued: d.Dequeued, Version: d.Version}
		if d.Retired {
			t := d.Table
			resp.RetiredTable = &t
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// lookupHandler godoc
// @Summary      Find a table
// @Description  Returns the first free table that fits a group of the given size without changing state.
// @Tags         seating
// @Produce      json
// @Param        size  query     int  true  "Group size"
// @Success      200   {object}  types.LookupResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /lookup [get]
func lookupHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		size, err := positiveInt(r.URL.Query().Get("size"))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "size: "+err.Error())
			return
		}
		t, found := svc.Lookup(types.ClientsGroup{Size: size})
		if !found {
			writeJSONError(w, http.StatusNotFound, fmt.Sprintf("no free table fits a group of %d", size))
			return
		}
		writeJSON(w, http.StatusOK, types.LookupResponse{Table: t})
	}
}

// tablesHandler godoc
// @Summary  List free tables
// @Tags     pool
// @Produce  json
// @Success  200  {object}  types.TablesResponse
// @Router   /tables [get]
func tablesHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.TablesResponse{Tables: svc.GetTables()})
	}
}

// occupancyHandler godoc
// @Summary      Table occupancy
// @Description  A table is occupied when no free table of that capacity is in the pool.
// @Tags         pool
// @Produce      json
// @Param        capacity  path      int  true  "Table capacity"
// @Success      200       {object}  types.OccupancyResponse
// @Failure      400       {object}  types.ErrorResponse
// @Router       /tables/{capacity}/occupied [get]
func occupancyHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := positiveInt(chi.URLParam(r, "capacity"))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "capacity: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, types.OccupancyResponse{
			Capacity: c,
			Occupied: svc.IsTableOccupied(types.Table{Capacity: c}),
		})
	}
}

// queueHandler godoc
// @Summary  Waiting queue
// @Tags     pool
// @Produce  json
// @Success  200  {object}  types.QueueResponse
// @Router   /queue [get]
func queueHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.QueueResponse{Queue: svc.GetQueue()})
	}
}

// statusHandler godoc
// @Summary  Seating status
// @Tags     status
// @Produce  json
// @Success  200  {object}  types.StatusResponse
// @Router   /status [get]
func statusHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	}
}

// changesHandler godoc
// @Summary      Wait for a change
// @Description  Long poll until the state version exceeds since. 204 when the wait times out, 503 when the server shuts down first.
// @Tags         status
// @Produce      json
// @Param        since  query     int  false  "Last seen version"
// @Success      200    {object}  types.ChangeResponse
// @Success      204
// @Failure      400    {object}  types.ErrorResponse
// @Failure      503    {object}  types.ErrorResponse
// @Router       /changes [get]
func changesHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var since uint64
		if s := r.URL.Query().Get("since"); s != "" {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "since must be a non-negative integer")
				return
			}
			since = v
		}
		// Join server base context with request context so shutdown cancels the poll too.
		joined, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		ctx, cancelWait := context.WithTimeout(joined, waitTimeout)
		defer cancelWait()
		v, err := svc.WaitForChange(ctx, since)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, types.ChangeResponse{Version: v})
		case shuttingDown():
			writeJSONError(w, http.StatusServiceUnavailable, "shutting down")
		case errors.Is(err, context.DeadlineExceeded):
			w.WriteHeader(http.StatusNoContent)
		default:
			// request canceled by the client
			writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		}
	}
}

// decodeGroup validates the request and decodes a GroupRequest body.
// It writes the error response itself and reports false on failure.
func decodeGroup(w http.ResponseWriter, r *http.Request) (types.ClientsGroup, bool) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return types.ClientsGroup{}, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return types.ClientsGroup{}, false
	}
	g, err := types.NewClientsGroup(req.Size)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return types.ClientsGroup{}, false
	}
	return g, true
}

func positiveInt(s string) (int, error) {
	if s == "" {
		return 0, errors.New("required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	if n <= 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}
