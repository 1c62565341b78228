package dump

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/tenantadmin/internal/config"
	apperrors "github.com/allisson/tenantadmin/internal/errors"
	"github.com/allisson/tenantadmin/internal/store"
)

func newDumper(handler http.Handler) (*Dumper, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := store.NewClient(store.Config{BaseURL: server.URL, HTTPClient: server.Client()})
	cfg := &config.Config{
		SubjectsDatabase:    "test_subjects",
		EntitiesDatabase:    "test_whisks",
		ActivationsDatabase: "test_activations",
	}
	return NewDumper(client, cfg), server
}

func TestResolveDatabase(t *testing.T) {
	dumper, server := newDumper(http.NotFoundHandler())
	defer server.Close()

	assert.Equal(t, "test_subjects", dumper.ResolveDatabase("subjects"))
	assert.Equal(t, "test_whisks", dumper.ResolveDatabase("entities"))
	assert.Equal(t, "test_activations", dumper.ResolveDatabase("activations"))
	assert.Equal(t, "custom_db", dumper.ResolveDatabase("custom_db"))
}

func TestDump(t *testing.T) {
	ctx := context.Background()

	t.Run("primary index with docs", func(t *testing.T) {
		dumper, server := newDumper(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/test_subjects/_all_docs", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("include_docs"))
			_, _ = w.Write([]byte(`{"total_rows":1,"rows":[{"id":"alice-corp"}]}`))
		}))
		defer server.Close()

		output, err := dumper.Dump(ctx, "subjects", "", true)

		require.NoError(t, err)
		assert.Contains(t, output, `"alice-corp"`)
		// output is indented
		assert.Contains(t, output, "\n    ")
	})

	t.Run("named view", func(t *testing.T) {
		dumper, server := newDumper(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/test_whisks/_design/whisks/_view/actions", r.URL.Path)
			_, _ = w.Write([]byte(`{"rows":[]}`))
		}))
		defer server.Close()

		_, err := dumper.Dump(ctx, "entities", "whisks/actions", false)
		require.NoError(t, err)
	})

	t.Run("malformed view name", func(t *testing.T) {
		dumper, server := newDumper(http.NotFoundHandler())
		defer server.Close()

		_, err := dumper.Dump(ctx, "subjects", "no-separator", false)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
