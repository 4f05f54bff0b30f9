package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

func TestGetIcons_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/icons/game/42" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write(okEnvelope([]types.Icon{{ID: 9, Style: "official"}}))
	}))
	defer srv.Close()

	icons, err := GetIcons(context.Background(), newExecutor(srv), types.IconsRequest{
		Type: types.ImageIDTypeGame,
		ID:   42,
	})
	if err != nil {
		t.Fatalf("GetIcons error: %v", err)
	}
	if len(icons) != 1 || icons[0].Style != "official" {
		t.Fatalf("unexpected icons %+v", icons)
	}
}

func TestGetIcons_MalformedBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	_, err := GetIcons(context.Background(), newExecutor(srv), types.IconsRequest{Type: types.ImageIDTypeGame, ID: 1})
	if !apierr.IsKind(err, apierr.KindMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
}
