package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "github.com/Mikanister/baloon-calc-sub001/internal/errors"
	"github.com/Mikanister/baloon-calc-sub001/internal/pipeline"
	"github.com/Mikanister/baloon-calc-sub001/pkg/export"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
	"github.com/Mikanister/baloon-calc-sub001/pkg/spec"
	"github.com/Mikanister/baloon-calc-sub001/pkg/validation"
)

type errorResponse struct {
	Error      string             `json:"error"`
	Type       apperrors.Type     `json:"type,omitempty"`
	RequestID  string             `json:"request_id,omitempty"`
	Validation *validation.Report `json:"validation,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status. res, when it carries a failed report,
// is attached so the client sees every finding.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, res *pipeline.Result) {
	typ := apperrors.Classify(err)
	status := apperrors.HTTPStatus(typ)
	id := requestIDFrom(r.Context())
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err), zap.String("request_id", id))
	}
	resp := errorResponse{Error: err.Error(), Type: typ, RequestID: id}
	if res != nil && res.Validation != nil && !res.Validation.Valid {
		resp.Validation = res.Validation
	}
	writeJSON(w, status, resp)
}

// readDesign decodes a JSON design body.
func readDesign(w http.ResponseWriter, r *http.Request) (*spec.Design, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.Parsing("reading request body", err)
	}
	d, err := spec.Parse(body, spec.FormatJSON)
	if err != nil {
		return nil, apperrors.Parsing("decoding design", err)
	}
	return d, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSolve solves in the design's mode; ?mode=payload or ?mode=volume
// overrides it.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	d, err := readDesign(w, r)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	res, err := pipeline.Solve(d, spec.Mode(r.URL.Query().Get("mode")), s.settings)
	if err != nil {
		s.writeError(w, r, err, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	d, err := readDesign(w, r)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	res, err := pipeline.Solve(d, "", s.settings)
	if err == nil {
		err = res.AddPattern(d, s.settings)
	}
	if err != nil {
		s.writeError(w, r, err, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleValidate always answers 200 with a report once the body decodes.
// Solver failures become analytical errors in the report.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	d, err := readDesign(w, r)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	res, err := pipeline.Solve(d, "", s.settings)
	report := res.Validation
	if err != nil && report.Valid {
		report.AddError(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: err.Error(),
		})
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	d, err := readDesign(w, r)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	res, err := pipeline.Solve(d, "", s.settings)
	if err == nil {
		err = res.AddCost(d, s.settings)
	}
	if err != nil {
		s.writeError(w, r, err, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	f, err := export.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	d, err := readDesign(w, r)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	res, err := pipeline.Full(d, s.settings)
	if err != nil {
		s.writeError(w, r, err, res)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, f, res.Report(nil)); err != nil {
		s.writeError(w, r, apperrors.Internal("rendering export", err), nil)
		return
	}
	name := d.Name
	if name == "" {
		name = "balloon"
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"."+string(f)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleMaterials(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, material.All())
}

func (s *Server) handleShapes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, shape.Describe())
}
