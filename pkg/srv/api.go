/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package srv

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-openapi/loads"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/log"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

const (
	ApiPrefix = "/api"
	// shutdownTimeout bounds graceful shutdown when the context is canceled
	shutdownTimeout = 5 * time.Second
)

type ApiServer struct {
	context.Context
	*config.Config
	*mux.Router
	state   *JobState
	enc     *pp16.Encoder
	metrics *Metrics
	doc     *loads.Document
}

func NewApiServer(ctx context.Context, cfg *config.Config, state *JobState) (*ApiServer, error) {
	log.Info("Initializing API server with address: %s port: %d", cfg.Address, cfg.Port)

	enc, err := pp16.NewEncoder(cfg.TicksPerMicrosecond)
	if err != nil {
		return nil, err
	}
	doc, err := LoadSwagger()
	if err != nil {
		return nil, fmt.Errorf("loading API description: %w", err)
	}

	s := &ApiServer{
		Context: ctx,
		Config:  cfg,
		state:   state,
		enc:     enc,
		metrics: NewMetrics(),
		doc:     doc,
	}
	s.configureRouter()
	return s, nil
}

// Handler returns the router wrapped with docs, access log and panic recovery
func (s *ApiServer) Handler() http.Handler {
	stdLogger := log.StdLogger()
	h := swaggerHandler(s.doc, s.Router)
	h = handlers.LoggingHandler(stdLogger.Writer(), h)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(stdLogger))(h)
}

// Run serves until the server fails or the context is done
func (s *ApiServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.Address, s.Port)
	log.Info("Starting API server: address: %s", addr)
	httpServer := &http.Server{
		Handler: s.Handler(),
		Addr:    addr,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case <-s.Context.Done():
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Error("Error while shutting down API server: %s", err)
		}
		return s.Context.Err()
	case err := <-errChan:
		return err
	}
}

func (s *ApiServer) configureRouter() {
	s.Router = mux.NewRouter()
	s.Router.Handle("/metrics", s.metrics.Handler()).Methods("GET")
	subRouter := s.Router.PathPrefix(ApiPrefix).Subrouter()
	subRouter.HandleFunc("/frame/{kind:wakeup|final}/{plid}", s.handleFrame()).Methods("GET")
	subRouter.HandleFunc("/frame/param/{plid}", s.handleImageParam()).Methods("POST")
	subRouter.HandleFunc("/frame/data/{plid}", s.handleImageData()).Methods("POST")
	subRouter.HandleFunc("/pulses", s.handlePulses()).Methods("POST")
	subRouter.HandleFunc("/jobs", s.handleJobList()).Methods("GET")
	subRouter.HandleFunc("/jobs", s.handleJobSubmit()).Methods("POST")
	subRouter.HandleFunc("/jobs/{id}", s.handleJobGet()).Methods("GET")
	subRouter.HandleFunc("/jobs/{id}", s.handleJobDelete()).Methods("DELETE")
	subRouter.HandleFunc("/jobs/{id}/plan", s.handleJobPlan()).Methods("GET")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Error while encoding response: %s", err)
	}
}

func errorStatus(err error) int {
	var notFound ErrJobNotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (s *ApiServer) handleFrame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling frame request: kind: %s plid: %s", vars["kind"], vars["plid"])

		plid, err := pp16.ParsePLID(vars["plid"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var frame pp16.Frame
		switch vars["kind"] {
		case "wakeup":
			frame = pp16.WakeupFrame(plid)
		case "final":
			frame = pp16.FinalFrame(plid)
		}
		s.metrics.FramesBuilt.WithLabelValues(vars["kind"]).Inc()
		writeJSON(w, &FrameHex{Name: vars["kind"], Frame: frame.String()})
	}
}

func (s *ApiServer) handleImageParam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		plid, err := pp16.ParsePLID(vars["plid"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		req := &ImageParamRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Debug("Handling image parameter request: plid: %s width: %d height: %d length: %d",
			plid, req.Width, req.Height, req.Length)

		frame := pp16.ImageParameterFrame(plid, req.Width, req.Height, req.X, req.Y, req.Length)
		s.metrics.FramesBuilt.WithLabelValues("param").Inc()
		writeJSON(w, &FrameHex{Name: "param", Frame: frame.String()})
	}
}

func (s *ApiServer) handleImageData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		plid, err := pp16.ParsePLID(vars["plid"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		req := &ImageDataRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Debug("Handling image data request: plid: %s bytes: %d pad: %t", plid, len(req.Bitmap), req.Pad)

		data := req.Bitmap
		if req.Pad {
			data = pp16.PadToChunk(data)
		}
		result := []*FrameHex{}
		for i, frame := range pp16.DataFrames(plid, data) {
			result = append(result, &FrameHex{Name: fmt.Sprintf("data/%d", i), Frame: frame.String()})
		}
		s.metrics.FramesBuilt.WithLabelValues("data").Add(float64(len(result)))
		writeJSON(w, result)
	}
}

func (s *ApiServer) handlePulses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &PulsesRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		frame, err := hex.DecodeString(req.Frame)
		if err != nil {
			http.Error(w, ErrBadRequest{What: "frame must be hexadecimal"}.Error(), http.StatusBadRequest)
			return
		}
		log.Debug("Handling pulses request: frame: %s", req.Frame)

		pulses := s.enc.Encode(frame)
		s.metrics.PulsesEncoded.Add(float64(len(pulses)))
		writeJSON(w, &PulsesResponse{
			TicksPerMicrosecond: s.enc.TicksPerMicrosecond(),
			Pulses:              pulses,
			Codes:               pp16.Codes(pulses),
		})
	}
}

func (s *ApiServer) handleJobSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &JobRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		job := &Job{
			ID:      uuid.NewString(),
			PLID:    req.PLID,
			Width:   req.Width,
			Height:  req.Height,
			X:       req.X,
			Y:       req.Y,
			Wakeups: s.WakeupRepeat,
			Bitmap:  req.Bitmap,
			Created: time.Now().UTC(),
		}
		if req.Wakeups != nil {
			job.Wakeups = *req.Wakeups
		}
		if job.Wakeups < 0 {
			http.Error(w, ErrBadRequest{What: "wakeups must not be negative"}.Error(), http.StatusBadRequest)
			return
		}
		if _, err := job.Plan(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Debug("Handling job submit request: id: %s plid: %s", job.ID, job.PLID)

		if err := s.state.PutJob(job); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.metrics.Jobs.WithLabelValues("created").Inc()
		writeJSON(w, &JobID{ID: job.ID})
	}
}

func (s *ApiServer) handleJobList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := s.state.GetAllJobs()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, jobs)
	}
}

func (s *ApiServer) handleJobGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		job, err := s.state.GetJob(vars["id"])
		if err != nil {
			http.Error(w, err.Error(), errorStatus(err))
			return
		}
		writeJSON(w, job)
	}
}

func (s *ApiServer) handleJobPlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		job, err := s.state.GetJob(vars["id"])
		if err != nil {
			http.Error(w, err.Error(), errorStatus(err))
			return
		}
		steps, err := job.Plan()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.metrics.FramesBuilt.WithLabelValues("plan").Add(float64(len(steps)))
		writeJSON(w, FrameHexes(steps))
	}
}

func (s *ApiServer) handleJobDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if err := s.state.DeleteJob(vars["id"]); err != nil {
			http.Error(w, err.Error(), errorStatus(err))
			return
		}
		s.metrics.Jobs.WithLabelValues("deleted").Inc()
		w.WriteHeader(http.StatusOK)
	}
}
