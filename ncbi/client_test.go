package ncbi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSequence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sviewer/viewer.fcgi", r.URL.Path)
		assert.Equal(t, "NP_001035835.1", r.URL.Query().Get("id"))
		assert.Equal(t, "protein", r.URL.Query().Get("db"))
		assert.Equal(t, "fasta", r.URL.Query().Get("report"))
		w.Write([]byte(">NP_001035835.1 test\nGAVLI\n"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	got, err := c.FetchSequence(context.Background(), "NP_001035835.1")
	require.NoError(t, err)
	assert.Equal(t, ">NP_001035835.1 test\nGAVLI\n", got)
}

func TestFetchSequenceFailedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Failed to understand id: NOPE"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.FetchSequence(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrAccessionNotFound)
}

func TestFetchSequenceHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.FetchSequence(context.Background(), "XP_0")
	assert.ErrorIs(t, err, ErrAccessionNotFound)
}

func TestFetchSequenceEmptyAccession(t *testing.T) {
	c := NewHTTPClient("", 5*time.Second)
	_, err := c.FetchSequence(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrAccessionNotFound)
}

func TestFetchSequenceContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.FetchSequence(ctx, "NP_001035835.1")
	assert.Error(t, err)
}
