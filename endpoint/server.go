//
// Copyright 2016 Rackspace
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package endpoint exposes the query interface over HTTP and provides the matching client.
package endpoint

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/protocol"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/query"
	"github.com/roshang123/Real-Time-Process-Monitoring-Dashboard/types"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	router   *mux.Router
	service  query.Service
	gatherer prometheus.Gatherer
}

// NewServer wires the routes. gatherer may be nil, in which case /metrics is not served.
func NewServer(service query.Service, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		service:  service,
		gatherer: gatherer,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc(protocol.PathSnapshot, s.snapshot).Methods(http.MethodGet)
	s.router.HandleFunc(protocol.PathSeries, s.series).Methods(http.MethodGet)
	s.router.HandleFunc(protocol.PathDashboard, s.dashboard).Methods(http.MethodGet)
	s.router.HandleFunc(protocol.PathTopProcesses, s.topProcesses).Methods(http.MethodGet)
	s.router.HandleFunc(protocol.PathProcess, s.killProcess).Methods(http.MethodDelete)
	if s.gatherer != nil {
		s.router.Handle(protocol.PathMetrics, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Serve blocks until ctx is done or the listener fails. In-flight requests get a grace period on shutdown.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Query endpoint did not shut down cleanly")
		}
	}()

	log.WithField("boundAddr", listener.Addr()).Info("Query endpoint is accepting connections")

	err := httpServer.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.service.CurrentSnapshot()
	if errors.Is(err, query.ErrUnavailable) {
		w.WriteHeader(http.StatusNoContent)
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, protocol.NewSnapshotResult(snap))
}

func (s *Server) series(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, protocol.NewSeriesResult(s.service.TimeSeries()))
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	snap, series, err := s.service.Dashboard()
	if errors.Is(err, query.ErrUnavailable) {
		w.WriteHeader(http.StatusNoContent)
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, protocol.NewDashboardResult(snap, series))
}

func (s *Server) topProcesses(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	n := query.DefaultTopCount
	if raw := params.Get(protocol.ParamTopN); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	sortBy, err := query.ParseSortBy(params.Get(protocol.ParamSortBy))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.service.TopProcesses(n, sortBy)
	if errors.Is(err, query.ErrUnavailable) {
		w.WriteHeader(http.StatusNoContent)
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, protocol.NewTopResult(string(sortBy), records))
}

func (s *Server) killProcess(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)[protocol.ParamPid]
	pid, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || pid <= 0 {
		writeError(w, http.StatusBadRequest, "invalid pid "+raw)
		return
	}

	outcome := s.service.KillProcess(r.Context(), int32(pid))
	log.WithFields(log.Fields{
		"pid":        pid,
		"outcome":    outcome,
		"remoteAddr": r.RemoteAddr,
	}).Info("Termination requested")

	writeJSON(w, statusForOutcome(outcome), &protocol.KillResult{Pid: int32(pid), Outcome: string(outcome)})
}

func statusForOutcome(outcome types.TerminationOutcome) int {
	switch outcome {
	case types.Terminated:
		return http.StatusOK
	case types.NotFound:
		return http.StatusNotFound
	case types.AccessDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	encoded, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("Failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(encoded); err != nil {
		log.WithError(err).Debug("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &protocol.Error{Code: uint64(status), Message: message})
}
