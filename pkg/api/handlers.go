package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/nbourre/lanparty/pkg/clique"
	"github.com/nbourre/lanparty/pkg/errors"
	pkgio "github.com/nbourre/lanparty/pkg/io"
	"github.com/nbourre/lanparty/pkg/netgraph"
	"github.com/nbourre/lanparty/pkg/pipeline"
)

// Response headers describing how a result was produced.
const (
	CacheHeader     = "X-Cache"
	GraphHashHeader = "X-Graph-Hash"
)

var contentTypes = map[string]string{
	pipeline.FormatDOT: "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPDF: "application/pdf",
	pipeline.FormatPNG: "image/png",
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	opts, err := s.analyzeOptions(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	g, err := s.readGraph(w, r)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	res, err := s.runner.Analyze(r.Context(), g, opts)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	w.Header().Set(CacheHeader, cacheStatus(res.CacheHit))
	w.Header().Set(GraphHashHeader, res.GraphHash)
	writeJSON(w, http.StatusOK, res.Report)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ropts := pipeline.RenderOptions{
		Format:     q.Get("format"),
		MarkPrefix: q.Get("mark"),
		Title:      q.Get("title"),
	}
	if err := ropts.ValidateAndSetDefaults(); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	opts, err := s.analyzeOptions(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	g, err := s.readGraph(w, r)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	res, err := s.runner.Analyze(r.Context(), g, opts)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	ropts.Highlight = splitClique(res.Report.LargestClique)

	data, hit, err := s.runner.Render(r.Context(), g, ropts)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[ropts.Format])
	w.Header().Set(CacheHeader, cacheStatus(hit))
	w.Header().Set(GraphHashHeader, res.GraphHash)
	_, _ = w.Write(data)
}

// analyzeOptions merges query parameters over the server defaults. An
// explicit empty prefix (?prefix=) matches every triangle.
func (s *Server) analyzeOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	q := r.URL.Query()
	if q.Has("prefix") {
		opts.Prefix = q.Get("prefix")
	}
	if d := q.Get("driver"); d != "" {
		opts.Driver = clique.Driver(d)
	}
	if v := q.Get("workers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "workers must be an integer, got %q", v)
		}
		opts.Workers = n
	}
	opts.Refresh = q.Get("refresh") == "true"
	return opts, opts.ValidateAndSetDefaults()
}

func (s *Server) readGraph(w http.ResponseWriter, r *http.Request) (*netgraph.Graph, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	defer body.Close()

	g, err := pkgio.ReadEdges(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge list exceeds %d bytes", tooLarge.Limit)
		}
		return nil, err
	}
	return g, nil
}

func splitClique(s string) []netgraph.Node {
	if s == "" {
		return nil
	}
	return strings.Split(s, clique.Separator)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// statusFor maps an error to an HTTP status: validation codes are the
// client's fault, a canceled request is reported as unavailable.
func statusFor(err error) int {
	code := errors.GetCode(err)
	switch {
	case code.IsInvalid():
		return http.StatusBadRequest
	case code.IsNotFound():
		return http.StatusNotFound
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Code      string `json:"code"`
	Error     string `json:"error"`
	Line      int    `json:"line,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
		if status == http.StatusNotFound {
			code = errors.ErrCodeNotFound
		}
		if status == http.StatusMethodNotAllowed {
			code = errors.ErrCodeUnsupported
		}
	}
	writeJSON(w, status, ErrorResponse{
		Code:      string(code),
		Error:     errors.UserMessage(err),
		Line:      errors.LineOf(err),
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, `{"code":"INTERNAL_ERROR","error":%q}`, err.Error())
	}
}
