package commands

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/tenantadmin/internal/config"
	"github.com/allisson/tenantadmin/internal/dump"
	"github.com/allisson/tenantadmin/internal/store"
)

func newTestDumper(t *testing.T, handler http.HandlerFunc) *dump.Dumper {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := store.NewClient(store.Config{BaseURL: server.URL})
	cfg := &config.Config{
		SubjectsDatabase:    "test_subjects",
		EntitiesDatabase:    "test_whisks",
		ActivationsDatabase: "test_activations",
	}
	return dump.NewDumper(client, cfg)
}

func TestRunDumpDatabase(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("dumps primary index of an alias", func(t *testing.T) {
		dumper := newTestDumper(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/test_subjects/_all_docs", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total_rows":1,"rows":[{"id":"alice","key":"alice","value":{"rev":"1-a"}}]}`))
		})

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunDumpDatabase(ctx, dumper, logger, "subjects", "", false, io)

		require.NoError(t, err)
		require.Contains(t, out.String(), "getting contents for test_subjects (primary index)")
		require.Contains(t, out.String(), `"id": "alice"`)
	})

	t.Run("names the view in the header", func(t *testing.T) {
		dumper := newTestDumper(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"rows":[]}`))
		})

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunDumpDatabase(ctx, dumper, logger, "entities", "whisks/actions", false, io)

		require.NoError(t, err)
		require.Contains(t, out.String(), "getting contents for test_whisks (whisks/actions)")
	})

	t.Run("rejects a malformed view name", func(t *testing.T) {
		dumper := newTestDumper(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("store must not be queried for a malformed view name")
		})

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunDumpDatabase(ctx, dumper, logger, "whisks_db", "noslash", false, io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "not formatted correctly")
	})

	t.Run("propagates store failure", func(t *testing.T) {
		dumper := newTestDumper(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"internal_server_error"}`))
		})

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunDumpDatabase(ctx, dumper, logger, "activations", "", false, io)

		require.Error(t, err)
	})
}
