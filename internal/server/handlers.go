package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/jifkit/pkg/buildinfo"
	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/pipeline"
	"github.com/matzehuels/jifkit/pkg/preset"
)

var artifactTypes = map[string]string{
	pipeline.ArtifactDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.ArtifactSVG:  "image/svg+xml",
	pipeline.ArtifactJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildinfo.Get()})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateArtifact(format); err != nil {
		s.writeErr(w, err)
		return
	}
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	data, err := s.runner.Render(r.Context(), res, format)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", artifactTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"groups": preset.Grouped()})
}

func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := jiferr.ValidateSlug(slug); err != nil {
		s.writeErr(w, err)
		return
	}
	p, err := preset.Find(slug)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), pipeline.Options{Preset: slug})
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"preset": p, "result": res})
}

// decodeOptions reads pipeline options from the request body. Siteswap
// input without a juggler count uses the configured default.
func (s *Server) decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, bool) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		writeError(w, http.StatusBadRequest, jiferr.ErrCodeInvalidInput, "invalid request body: "+err.Error())
		return pipeline.Options{}, false
	}
	if opts.Jugglers == 0 {
		opts.Jugglers = s.cfg.SiteswapJugglers
	}
	return opts, true
}

func (s *Server) writeErr(w http.ResponseWriter, err error) {
	code := jiferr.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	if code == "" {
		code = jiferr.ErrCodeInternal
	}
	writeError(w, status, code, jiferr.UserMessage(err))
}

// statusFor maps an error code to an HTTP status.
func statusFor(code jiferr.Code) int {
	switch code {
	case jiferr.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case jiferr.ErrCodeParse, jiferr.ErrCodeLookup, jiferr.ErrCodeInvalidFormat, jiferr.ErrCodeConsistency:
		return http.StatusUnprocessableEntity
	case jiferr.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code jiferr.Code, message string) {
	writeJSON(w, status, map[string]any{"error": message, "code": code})
}
