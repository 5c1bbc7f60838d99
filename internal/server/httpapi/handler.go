// Package httpapi serves the resource API consumed by the console:
//
//	GET    /{Path}/findAll
//	GET    /{Path}/findById/{id}
//	GET    /{Path}/findByName/{name}
//	POST   /{Path}/save
//	PUT    /{Path}/update/{id}
//	DELETE /{Path}/delete/{id}
//	GET    /metrics
//
// Records are JSON objects. Errors answer {"message": "..."}.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/backoffice/internal/common"
	"github.com/dmitrijs2005/backoffice/internal/logging"
	"github.com/dmitrijs2005/backoffice/internal/server/records"
)

// DefaultPaths are the base paths of the kinds shipped with the console.
var DefaultPaths = []string{"Tache", "Employee", "Message", "Forum", "Fichier", "ChatRoom", "Project"}

const maxBody = 1 << 20

// Handler serves the records of the registered base paths.
type Handler struct {
	repo    records.Repository
	logger  logging.Logger
	paths   map[string]bool
	metrics *metrics
}

// NewHandler builds the router. Requests for unregistered paths get 404.
func NewHandler(repo records.Repository, logger logging.Logger, paths ...string) http.Handler {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	if logger == nil {
		logger = logging.Nop()
	}
	reg := prometheus.NewRegistry()
	h := &Handler{repo: repo, logger: logger, paths: make(map[string]bool, len(paths)), metrics: newMetrics(reg)}
	for _, p := range paths {
		h.paths[p] = true
	}

	r := mux.NewRouter().UseEncodedPath()
	r.Use(h.logRequests)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s := r.PathPrefix("/{kind}").Subrouter()
	s.Use(h.knownKind)
	s.HandleFunc("/findAll", h.findAll).Methods(http.MethodGet)
	s.HandleFunc("/findById/{id}", h.findByID).Methods(http.MethodGet)
	s.HandleFunc("/findByName/{name}", h.findByName).Methods(http.MethodGet)
	s.HandleFunc("/save", h.save).Methods(http.MethodPost)
	s.HandleFunc("/update/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/delete/{id}", h.delete).Methods(http.MethodDelete)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such operation")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeaderName, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		kind := mux.Vars(r)["kind"]
		if !h.paths[kind] {
			kind = ""
		}
		h.metrics.observe(kind, route, rec.status, elapsed)
		h.logger.Info(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path, "status", rec.status,
			"duration", elapsed, "request_id", id)
	})
}

func (h *Handler) knownKind(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if kind := mux.Vars(r)["kind"]; !h.paths[kind] {
			writeError(w, http.StatusNotFound, fmt.Sprintf("unknown resource %q", kind))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Error(r.Context(), "storage failure", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", mux.Vars(r)["id"])
	}
	return id, nil
}

func decodeFields(r *http.Request) (records.Fields, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, errors.New("empty body")
	}
	var f records.Fields
	if err := json.Unmarshal(body, &f); err != nil || f == nil {
		return nil, errors.New("body must be a JSON object")
	}
	return f, nil
}

func (h *Handler) findAll(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.FindAll(r.Context(), mux.Vars(r)["kind"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) findByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.repo.FindByID(r.Context(), mux.Vars(r)["kind"], id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) findByName(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid name")
		return
	}
	rec, err := h.repo.FindByName(r.Context(), mux.Vars(r)["kind"], name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	f, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.repo.Create(r.Context(), mux.Vars(r)["kind"], f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.repo.Update(r.Context(), mux.Vars(r)["kind"], id, f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Delete(r.Context(), mux.Vars(r)["kind"], id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
