package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/pipeline"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

// moveOptions overrides the server's engine settings for one request.
type moveOptions struct {
	VerticalCompact  *bool `json:"vertical_compact"`
	HorizontalShift  *bool `json:"horizontal_shift"`
	PreventCollision *bool `json:"prevent_collision"`
}

type compactRequest struct {
	Layout          grid.Layout `json:"layout"`
	VerticalCompact *bool       `json:"vertical_compact"`
}

type boundsRequest struct {
	Layout grid.Layout `json:"layout"`
	Cols   int         `json:"cols"`
}

type moveRequest struct {
	Layout  grid.Layout  `json:"layout"`
	ID      string       `json:"id"`
	X       int          `json:"x"`
	Y       int          `json:"y"`
	Options *moveOptions `json:"options"`
}

type resizeRequest struct {
	Layout  grid.Layout  `json:"layout"`
	ID      string       `json:"id"`
	W       int          `json:"w"`
	H       int          `json:"h"`
	Options *moveOptions `json:"options"`
}

type resolveRequest struct {
	Layout         grid.Layout        `json:"layout"`
	Responsive     responsive.Layouts `json:"responsive"`
	Width          int                `json:"width"`
	LastBreakpoint string             `json:"last_breakpoint"`
}

type layoutResponse struct {
	Layout   grid.Layout `json:"layout"`
	CacheHit bool        `json:"cache_hit,omitempty"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCompact(w http.ResponseWriter, r *http.Request) {
	var req compactRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts := s.options(nil)
	if req.VerticalCompact != nil {
		opts.VerticalCompact = *req.VerticalCompact
	}

	out, hit, err := s.runner.CompactWithCacheInfo(r.Context(), req.Layout, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: out, CacheHit: hit})
}

func (s *Server) handleBounds(w http.ResponseWriter, r *http.Request) {
	var req boundsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := errors.ValidateCols(req.Cols); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := s.options(nil)
	opts.Cols = req.Cols

	out, hit, err := s.runner.CorrectBoundsWithCacheInfo(r.Context(), req.Layout, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: out, CacheHit: hit})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.runner.Move(r.Context(), req.Layout, req.ID, req.X, req.Y, s.options(req.Options))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: out})
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var req resizeRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.runner.Resize(r.Context(), req.Layout, req.ID, req.W, req.H, s.options(req.Options))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: out})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := s.runner.Resolve(r.Context(), pipeline.ResolveOptions{
		Layout:          req.Layout,
		Responsive:      req.Responsive,
		Width:           req.Width,
		LastBreakpoint:  req.LastBreakpoint,
		Breakpoints:     s.cfg.Breakpoints,
		Cols:            s.cfg.Cols,
		VerticalCompact: s.cfg.VerticalCompact,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// options returns the server's engine settings with o applied on top.
func (s *Server) options(o *moveOptions) pipeline.Options {
	opts := pipeline.OptionsFromConfig(s.cfg)
	if o == nil {
		return opts
	}
	if o.VerticalCompact != nil {
		opts.VerticalCompact = *o.VerticalCompact
	}
	if o.HorizontalShift != nil {
		opts.HorizontalShift = *o.HorizontalShift
	}
	if o.PreventCollision != nil {
		opts.PreventCollision = *o.PreventCollision
	}
	return opts
}

// decode reads a JSON body into v. On failure it writes a 400 and returns
// false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFromContext(r.Context()), "path", r.URL.Path, "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeCascadeLimit):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
