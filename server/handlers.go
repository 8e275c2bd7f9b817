package server

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"time"

	"hydroplot/fasta"
	"hydroplot/hydropathy"
	"hydroplot/ncbi"
	"hydroplot/render"
)

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexHTML,
		s.defaults.WindowSize,
		s.defaults.EdgeWeight,
	)
}

// Plot handles a form submission: ingest the sequence, build the profile,
// render the chart and cache the finished page.
func (s *Server) Plot(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { plotDuration.Observe(time.Since(start).Seconds()) }()

	if err := r.ParseForm(); err != nil {
		s.errorPage(w, http.StatusBadRequest, "Malformed form submission", "invalid_input")
		return
	}

	cfg, err := s.formConfig(r)
	if err != nil {
		s.errorPage(w, http.StatusBadRequest, err.Error(), "invalid_config")
		return
	}

	rec, ok := s.ingest(w, r)
	if !ok {
		return
	}

	key := cacheKey{
		Sequence:   rec.Sequence,
		WindowSize: cfg.WindowSize,
		EdgeWeight: cfg.EdgeWeight,
		Model:      cfg.Model,
	}
	if page, hit := s.cache.Get(key); hit {
		cacheHits.Inc()
		plotRequests.WithLabelValues("cache_hit").Inc()
		writePage(w, http.StatusOK, page)
		return
	}

	prof, err := hydropathy.BuildProfile(rec.Sequence, cfg)
	if err != nil {
		var unknown *hydropathy.UnknownResidueError
		if errors.As(err, &unknown) {
			s.errorPage(w, http.StatusUnprocessableEntity,
				fmt.Sprintf("Invalid Amino Acid code present: %s", unknown.Error()),
				"unknown_residue")
			return
		}
		s.errorPage(w, http.StatusBadRequest, err.Error(), "invalid_config")
		return
	}

	var svg string
	if !prof.Empty() {
		svg, err = render.ProfileSVG(rec.Header, len(rec.Sequence), prof)
		if err != nil {
			s.logger.Error("render failed", "error", err)
			s.errorPage(w, http.StatusInternalServerError, "Failed to render the plot", "render_error")
			return
		}
	}

	var buf bytes.Buffer
	err = render.WriteHTML(&buf, render.Report{
		Title:    "Hydropathy Index Plotter",
		Header:   rec.Header,
		Sequence: rec.Sequence,
		Preview:  fasta.Preview(rec.Sequence),
		Config:   cfg,
		Profile:  prof,
		SVG:      svg,
	})
	if err != nil {
		s.logger.Error("report failed", "error", err)
		s.errorPage(w, http.StatusInternalServerError, "Failed to build the report", "render_error")
		return
	}

	page := buf.String()
	s.cache.Put(key, page)
	plotRequests.WithLabelValues("ok").Inc()
	writePage(w, http.StatusOK, page)
}

// formConfig builds the window configuration from the form, falling back
// to the configured defaults for absent fields.
func (s *Server) formConfig(r *http.Request) (hydropathy.Config, error) {
	windowSize := s.defaults.WindowSize
	if v := r.FormValue("window_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return hydropathy.Config{}, fmt.Errorf("window size must be a whole number, got %q", v)
		}
		windowSize = n
	}

	edgeWeight := s.defaults.EdgeWeight
	if v := r.FormValue("edge_weight"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return hydropathy.Config{}, fmt.Errorf("edge weight must be a number, got %q", v)
		}
		edgeWeight = f
	}

	modelName := s.defaults.Model
	if v := r.FormValue("model"); v != "" {
		modelName = v
	}
	model, err := hydropathy.ParseModel(modelName)
	if err != nil {
		return hydropathy.Config{}, err
	}

	return hydropathy.NewConfig(windowSize, edgeWeight, model)
}

// ingest resolves the form input into a clean sequence record, writing
// the error response itself when ingestion fails.
func (s *Server) ingest(w http.ResponseWriter, r *http.Request) (fasta.Record, bool) {
	input := r.FormValue("input")

	switch r.FormValue("input_type") {
	case "fasta":
		rec, err := fasta.Parse(input)
		if err != nil {
			s.errorPage(w, http.StatusBadRequest, "Please, Enter a Valid FASTA Sequence", "invalid_input")
			return fasta.Record{}, false
		}
		return rec, true

	default: // accession lookup
		text, err := s.ncbi.FetchSequence(r.Context(), input)
		if err != nil {
			if errors.Is(err, ncbi.ErrAccessionNotFound) {
				s.errorPage(w, http.StatusBadRequest, "Please, Enter a Valid Accession ID", "invalid_input")
			} else {
				s.logger.Error("NCBI lookup failed", "error", err)
				s.errorPage(w, http.StatusBadGateway, "NCBI lookup failed; try again later", "fetch_error")
			}
			return fasta.Record{}, false
		}
		rec, err := fasta.Parse(text)
		if err != nil {
			s.logger.Error("NCBI returned unparseable FASTA", "error", err)
			s.errorPage(w, http.StatusBadGateway, "NCBI returned an unexpected response", "fetch_error")
			return fasta.Record{}, false
		}
		return rec, true
	}
}

func (s *Server) errorPage(w http.ResponseWriter, status int, message, outcome string) {
	plotRequests.WithLabelValues(outcome).Inc()
	writePage(w, status, fmt.Sprintf(errorHTML, html.EscapeString(message)))
}

func writePage(w http.ResponseWriter, status int, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, page)
}
