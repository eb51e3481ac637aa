package brightid

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0xbanksD/brightid-discord-bot/fallback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/verifications/Discord/42" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestNew(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		config     Config
		candidates int
		wantErr    bool
	}{
		"no node": {
			Config{Node: " "},
			0,
			true,
		},
		"invalid nodes": {
			Config{Node: "http://localhost", Nodes: "{"},
			0,
			true,
		},
		"node without url": {
			Config{Node: "http://localhost", Nodes: `[{"priority": 1}]`},
			0,
			true,
		},
		"valid": {
			Config{Node: "http://localhost", Nodes: `[{"url": "http://a", "priority": 2}, {"url": "http://b", "priority": 1, "timeout": 250}]`},
			2,
			false,
		},
	}

	for intention, testCase := range cases {
		intention, testCase := intention, testCase

		t.Run(intention, func(t *testing.T) {
			t.Parallel()

			service, err := New(&testCase.config, nil)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, service.nodes.Candidates, testCase.candidates)
		})
	}
}

func TestVerification(t *testing.T) {
	t.Parallel()

	missing := nodeServer(t, http.StatusNotFound, `{"error": true, "errorNum": 3, "errorMessage": "contextId not found"}`)
	verified := nodeServer(t, http.StatusOK, `{"data": {"unique": true, "app": "Discord", "contextIds": ["42"], "timestamp": 1700000000000}}`)

	service, err := New(&Config{
		Node:  missing.URL,
		Nodes: fmt.Sprintf(`[{"url": %q, "priority": 1}]`, verified.URL),
		App:   "Discord",
	}, nil)
	require.NoError(t, err)

	output, err := service.Verification(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, Verification{App: "Discord", ContextIDs: []string{"42"}, Timestamp: 1700000000000, Unique: true}, output)
}

func TestVerificationExhausted(t *testing.T) {
	t.Parallel()

	missing := nodeServer(t, http.StatusNotFound, `{"error": true, "errorNum": 3, "errorMessage": "contextId not found"}`)

	service, err := New(&Config{Node: missing.URL, App: "Discord"}, nil)
	require.NoError(t, err)

	_, err = service.Verification(context.Background(), "42")
	assert.ErrorIs(t, err, fallback.ErrNoEndpoint)
}

func TestVerificationNodeError(t *testing.T) {
	t.Parallel()

	failing := nodeServer(t, http.StatusForbidden, `{"error": true, "errorNum": 2, "errorMessage": "user is not sponsored"}`)

	service, err := New(&Config{Node: failing.URL, App: "Discord"}, nil)
	require.NoError(t, err)

	_, err = service.Verification(context.Background(), "42")
	require.Error(t, err)
	assert.NotErrorIs(t, err, fallback.ErrNoEndpoint)
	assert.Contains(t, err.Error(), "user is not sponsored")
}
