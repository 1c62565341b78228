package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(Config{
		BaseURL:    server.URL,
		Username:   "admin",
		Password:   "secret",
		HTTPClient: server.Client(),
	})
	return client, server
}

func TestClientGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns document and revision", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/subjects/alice-corp", r.URL.Path)

			username, password, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "admin", username)
			assert.Equal(t, "secret", password)

			_, _ = w.Write([]byte(`{"_id":"alice-corp","_rev":"1-abc","subject":"alice-corp"}`))
		}))
		defer server.Close()

		var doc map[string]any
		rev, err := client.Get(ctx, "subjects", "alice-corp", &doc)

		require.NoError(t, err)
		assert.Equal(t, "1-abc", rev)
		assert.Equal(t, "alice-corp", doc["subject"])
	})

	t.Run("escapes document id in path", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subjects/ns%2Flimits", r.URL.RawPath)
			_, _ = w.Write([]byte(`{"_id":"ns/limits","_rev":"1-abc"}`))
		}))
		defer server.Close()

		_, err := client.Get(ctx, "subjects", "ns/limits", nil)
		require.NoError(t, err)
	})

	t.Run("maps 404 to not found", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not_found","reason":"missing"}`))
		}))
		defer server.Close()

		_, err := client.Get(ctx, "subjects", "ghost", nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("maps 500 to store error with body", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"internal_server_error"}`))
		}))
		defer server.Close()

		_, err := client.Get(ctx, "subjects", "alice-corp", nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrStore))
		assert.Contains(t, err.Error(), "internal_server_error")
	})
}

func TestClientPut(t *testing.T) {
	ctx := context.Background()

	t.Run("posts document and returns new revision", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/subjects", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var doc map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
			assert.Equal(t, "alice-corp", doc["_id"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"ok":true,"id":"alice-corp","rev":"2-def"}`))
		}))
		defer server.Close()

		rev, err := client.Put(ctx, "subjects", map[string]any{"_id": "alice-corp"})

		require.NoError(t, err)
		assert.Equal(t, "2-def", rev)
	})

	t.Run("maps 409 to conflict", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"conflict","reason":"Document update conflict."}`))
		}))
		defer server.Close()

		_, err := client.Put(ctx, "subjects", map[string]any{"_id": "alice-corp", "_rev": "1-stale"})

		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	})
}

func TestClientDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes with revision", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/subjects/alice-corp", r.URL.Path)
			assert.Equal(t, "2-def", r.URL.Query().Get("rev"))
			_, _ = w.Write([]byte(`{"ok":true,"id":"alice-corp","rev":"3-ghi"}`))
		}))
		defer server.Close()

		err := client.Delete(ctx, "subjects", "alice-corp", "2-def")
		require.NoError(t, err)
	})

	t.Run("maps stale revision to conflict", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"conflict"}`))
		}))
		defer server.Close()

		err := client.Delete(ctx, "subjects", "alice-corp", "1-stale")
		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	})
}

func TestClientView(t *testing.T) {
	ctx := context.Background()

	t.Run("queries view with encoded key", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subjects/_design/subjects.v2.0.0/_view/identities", r.URL.Path)
			assert.Equal(t, `["alice-corp"]`, r.URL.Query().Get("key"))

			_, _ = w.Write([]byte(`{"rows":[
				{"id":"alice-corp","key":["alice-corp"],"value":{"uuid":"u1","key":"k1"}}
			]}`))
		}))
		defer server.Close()

		rows, err := client.View(ctx, "subjects", "subjects.v2.0.0", "identities", []string{"alice-corp"})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "alice-corp", rows[0].ID)
		assert.JSONEq(t, `{"uuid":"u1","key":"k1"}`, string(rows[0].Value))
	})

	t.Run("empty result set", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rows":[]}`))
		}))
		defer server.Close()

		rows, err := client.View(ctx, "subjects", "subjects.v2.0.0", "identities", []string{"ghost"})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestClientDump(t *testing.T) {
	ctx := context.Background()

	t.Run("primary index", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/whisks/_all_docs", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("include_docs"))
			_, _ = w.Write([]byte(`{"total_rows":0,"rows":[]}`))
		}))
		defer server.Close()

		raw, err := client.Dump(ctx, "whisks", "", "", true)

		require.NoError(t, err)
		assert.JSONEq(t, `{"total_rows":0,"rows":[]}`, string(raw))
	})

	t.Run("named view", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/whisks/_design/whisks/_view/actions", r.URL.Path)
			assert.Equal(t, "false", r.URL.Query().Get("reduce"))
			_, _ = w.Write([]byte(`{"rows":[]}`))
		}))
		defer server.Close()

		_, err := client.Dump(ctx, "whisks", "whisks", "actions", false)
		require.NoError(t, err)
	})
}
