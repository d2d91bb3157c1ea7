package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hrvibe/internal/metrics"
	"hrvibe/internal/session"
)

// API is the dashboard's own HTTP surface: session endpoints, the route
// guard and the view-model handlers the rendering layer consumes.
type API struct {
	log      *zap.SugaredLogger
	sessions *session.Store
	metrics  *metrics.Store
	cache    *sessionCache
	validate *validator.Validate

	grace time.Duration
	// graceOnce bounds the guard to a single grace retry per lifetime.
	graceOnce sync.Once
	// sleep is swapped out in tests so the grace period does not slow them.
	sleep func(time.Duration)
}

func NewAPI(log *zap.SugaredLogger, sessions *session.Store, store *metrics.Store, sessionKey string, grace time.Duration) *API {
	return &API{
		log:      log,
		sessions: sessions,
		metrics:  store,
		cache:    newSessionCache(sessionKey),
		validate: validator.New(),
		grace:    grace,
		sleep:    time.Sleep,
	}
}

func (api *API) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(api.LoggingMiddleware)

	// home endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		respondWithJSON(w, "HRVibe dashboard")
	})

	r.Get("/login/guest", api.GuestLogin)
	r.Get("/login/admin", api.AdminLogin)
	r.Post("/logout", api.Logout)
	r.Get("/api/session", api.SessionState)

	// Protected views
	r.Group(func(r chi.Router) {
		r.Use(api.RequireSession)
		r.Get("/api/dashboard", api.Dashboard)
		r.Get("/api/summaries/days", api.DaySummaries)
		r.Get("/api/summaries/weeks", api.WeekSummaries)
		r.Get("/api/summaries/months", api.MonthSummaries)
		r.Get("/api/summaries/years", api.YearSummaries)
	})

	return r
}

// SessionState reports the session store snapshot without triggering
// resolution; the guard owns that.
func (api *API) SessionState(w http.ResponseWriter, r *http.Request) {
	st := api.sessions.State()
	out := struct {
		Status  string      `json:"status"`
		Session interface{} `json:"session,omitempty"`
	}{Status: st.Phase.String()}
	if st.Session != nil {
		out.Session = *st.Session
	}
	respondWithJSON(w, out)
}

// GuestLogin logs the caller in through the guest endpoint and caches the
// resulting session in the cookie so it survives reloads.
func (api *API) GuestLogin(w http.ResponseWriter, r *http.Request) {
	sess, err := api.sessions.LoginAsGuest(r.Context())
	if err != nil {
		http.Error(w, "guest login failed", http.StatusBadGateway)
		return
	}
	if err := api.cache.save(w, r, sess); err != nil {
		api.log.Warnw("failed to cache guest session", "error", err)
	}
	respondWithJSON(w, sess)
}

// AdminLogin hands the browser to the backend's OAuth authorization
// endpoint. The session store sees the result on the next resolution.
func (api *API) AdminLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, api.sessions.AdminLoginURL(), http.StatusSeeOther)
}

// Logout clears both the backend session and the local cache, then sends
// the caller to the public landing view.
func (api *API) Logout(w http.ResponseWriter, r *http.Request) {
	if err := api.sessions.Logout(r.Context()); err != nil {
		api.log.Warnw("logout completed with backend error", "error", err)
	}
	if err := api.cache.clear(w, r); err != nil {
		api.log.Warnw("failed to clear cached session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (api *API) DaySummaries(w http.ResponseWriter, r *http.Request) {
	limit, ok := api.limitParam(w, r)
	if !ok {
		return
	}
	if err := api.metrics.FetchDaySummaries(r.Context(), limit); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	respondWithJSON(w, api.metrics.DaySummaries())
}

func (api *API) WeekSummaries(w http.ResponseWriter, r *http.Request) {
	limit, ok := api.limitParam(w, r)
	if !ok {
		return
	}
	if err := api.metrics.FetchWeekSummaries(r.Context(), limit); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	respondWithJSON(w, api.metrics.WeekSummaries())
}

func (api *API) MonthSummaries(w http.ResponseWriter, r *http.Request) {
	var year *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = &y
	}
	if err := api.metrics.FetchMonthSummaries(r.Context(), year); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	respondWithJSON(w, api.metrics.MonthSummaries())
}

func (api *API) YearSummaries(w http.ResponseWriter, r *http.Request) {
	if err := api.metrics.FetchYearSummaries(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	respondWithJSON(w, api.metrics.YearSummaries())
}

func (api *API) limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true // adapter applies the backend default
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return 0, false
	}
	return limit, true
}

// WriteJSON is the JSON response helper shared with the dev harness.
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func respondWithJSON(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, data)
}

func (api *API) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := NewWrapResponseWriter(w, r.ProtoMajor)
		requestID := uuid.NewString()

		defer func() {
			api.log.Infow("request",
				"id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytesWritten", ww.BytesWritten(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

type wrapResponseWriter struct {
	http.ResponseWriter
	status       int
	bytesWritten int
}

func NewWrapResponseWriter(w http.ResponseWriter, protoMajor int) *wrapResponseWriter {
	// Default the status code to 200
	return &wrapResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (wr *wrapResponseWriter) WriteHeader(code int) {
	wr.status = code
	wr.ResponseWriter.WriteHeader(code)
}

func (wr *wrapResponseWriter) Write(b []byte) (int, error) {
	size, err := wr.ResponseWriter.Write(b)
	wr.bytesWritten += size
	return size, err
}

func (wr *wrapResponseWriter) Status() int {
	return wr.status
}

func (wr *wrapResponseWriter) BytesWritten() int {
	return wr.bytesWritten
}
