package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hydroplot/config"
	"hydroplot/ncbi"
)

// MockNCBI implements ncbi.Client for testing.
type MockNCBI struct {
	mock.Mock
}

func (m *MockNCBI) FetchSequence(ctx context.Context, accession string) (string, error) {
	args := m.Called(ctx, accession)
	return args.String(0), args.Error(1)
}

func newTestServer(nc *MockNCBI) *Server {
	return New(nc, 16, config.PlotConfig{
		WindowSize: 7,
		EdgeWeight: 100,
		Model:      "linear",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postPlot(t *testing.T, s *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/plot", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestIndex(t *testing.T) {
	s := newTestServer(&MockNCBI{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Hydropathy Index Plotter")
	assert.Contains(t, rr.Body.String(), `value="7"`)
}

func TestHealth(t *testing.T) {
	s := newTestServer(&MockNCBI{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestPlotFasta(t *testing.T) {
	s := newTestServer(&MockNCBI{})
	rr := postPlot(t, s, url.Values{
		"input":       {">test protein\nMKTAYIAKQRQISFVKSHFSRQLEERLGLIEVQ\n"},
		"input_type":  {"fasta"},
		"model":       {"linear"},
		"window_size": {"7"},
		"edge_weight": {"100"},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	page := rr.Body.String()
	assert.Contains(t, page, "<svg")
	assert.Contains(t, page, "test protein")
	assert.Contains(t, page, "Peptide Sequence")
}

func TestPlotInvalidFasta(t *testing.T) {
	s := newTestServer(&MockNCBI{})
	rr := postPlot(t, s, url.Values{
		"input":      {"GAVLI without a header"},
		"input_type": {"fasta"},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Please, Enter a Valid FASTA Sequence")
}

func TestPlotAccession(t *testing.T) {
	nc := &MockNCBI{}
	nc.On("FetchSequence", mock.Anything, "NP_001035835.1").
		Return(">NP_001035835.1 test\nMKTAYIAKQRQISFVKSHFSRQLEERLGLIEVQ\n", nil).Once()

	s := newTestServer(nc)
	rr := postPlot(t, s, url.Values{
		"input":      {"NP_001035835.1"},
		"input_type": {"accession"},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<svg")
	nc.AssertExpectations(t)
}

func TestPlotAccessionNotFound(t *testing.T) {
	nc := &MockNCBI{}
	nc.On("FetchSequence", mock.Anything, "NOPE").
		Return("", ncbi.ErrAccessionNotFound).Once()

	s := newTestServer(nc)
	rr := postPlot(t, s, url.Values{
		"input":      {"NOPE"},
		"input_type": {"accession"},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Please, Enter a Valid Accession ID")
	nc.AssertExpectations(t)
}

func TestPlotUnknownResidue(t *testing.T) {
	s := newTestServer(&MockNCBI{})
	rr := postPlot(t, s, url.Values{
		"input":       {">bad\nGAVXLIMKTAY\n"},
		"input_type":  {"fasta"},
		"window_size": {"3"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid Amino Acid code present")
}

func TestPlotInvalidConfig(t *testing.T) {
	s := newTestServer(&MockNCBI{})
	rr := postPlot(t, s, url.Values{
		"input":       {">test\nGAVLI\n"},
		"input_type":  {"fasta"},
		"window_size": {"4"},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "even")
}

func TestPlotShortSequence(t *testing.T) {
	// Shorter than the window: a valid, empty profile, not an error.
	s := newTestServer(&MockNCBI{})
	rr := postPlot(t, s, url.Values{
		"input":       {">short\nGAV\n"},
		"input_type":  {"fasta"},
		"window_size": {"7"},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "no profile to plot")
}

func TestPlotCachesPages(t *testing.T) {
	s := newTestServer(&MockNCBI{})
	form := url.Values{
		"input":       {">test\nMKTAYIAKQRQISFVKSHFSRQLEERLGLIEVQ\n"},
		"input_type":  {"fasta"},
		"window_size": {"7"},
	}

	first := postPlot(t, s, form)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, s.cache.Len())

	second := postPlot(t, s, form)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, s.cache.Len())
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(2)
	c.Put(cacheKey{Sequence: "A"}, "a")
	c.Put(cacheKey{Sequence: "B"}, "b")
	c.Put(cacheKey{Sequence: "C"}, "c")
	assert.Equal(t, 2, c.Len())

	if _, ok := c.Get(cacheKey{Sequence: "C"}); !ok {
		t.Fatal("most recent entry should survive eviction")
	}
}
