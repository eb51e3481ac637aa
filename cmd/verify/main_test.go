package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/0xbanksD/brightid-discord-bot/brightid"
	"github.com/0xbanksD/brightid-discord-bot/fallback"
	"github.com/stretchr/testify/assert"
)

type fakeVerifier func(context.Context, string) (brightid.Verification, error)

func (fv fakeVerifier) Verification(ctx context.Context, user string) (brightid.Verification, error) {
	return fv(ctx, user)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var output bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&output, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return &output
}

func TestVerify(t *testing.T) {
	cases := map[string]struct {
		verifier fakeVerifier
		wantErr  string
		want     []string
	}{
		"exhausted": {
			func(context.Context, string) (brightid.Verification, error) {
				return brightid.Verification{}, fmt.Errorf("fetch: %w", fallback.ErrNoEndpoint)
			},
			"",
			[]string{"No node knows the user", "user=42"},
		},
		"node error": {
			func(context.Context, string) (brightid.Verification, error) {
				return brightid.Verification{}, errors.New("node: HTTP/403: user is not sponsored")
			},
			"user is not sponsored",
			nil,
		},
		"verified": {
			func(_ context.Context, user string) (brightid.Verification, error) {
				return brightid.Verification{Unique: true, ContextIDs: []string{user}}, nil
			},
			"",
			[]string{"msg=Verification", "user=42", "unique=true", "contexts=1"},
		},
	}

	for intention, testCase := range cases {
		t.Run(intention, func(t *testing.T) {
			output := captureLogs(t)

			err := verify(context.Background(), testCase.verifier, "42")

			if len(testCase.wantErr) != 0 {
				assert.ErrorContains(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}

			for _, want := range testCase.want {
				assert.Contains(t, output.String(), want)
			}
		})
	}
}
