package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

func TestGetHeroes_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/heroes/game/42" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("dimensions"); got != "1920x620" {
			t.Errorf("dimensions = %q", got)
		}
		_, _ = w.Write(okEnvelope([]types.Hero{{ID: 11, Width: 1920, Height: 620}}))
	}))
	defer srv.Close()

	heroes, err := GetHeroes(context.Background(), newExecutor(srv), types.HeroesRequest{
		Type:    types.ImageIDTypeGame,
		ID:      42,
		Filters: types.Filters{Dimensions: []string{"1920x620"}},
	})
	if err != nil {
		t.Fatalf("GetHeroes error: %v", err)
	}
	if len(heroes) != 1 || heroes[0].Width != 1920 {
		t.Fatalf("unexpected heroes %+v", heroes)
	}
}

func TestGetHeroes_InvalidType(t *testing.T) {
	t.Parallel()
	exec, rt := newOfflineExecutor()
	if _, err := GetHeroes(context.Background(), exec, types.HeroesRequest{Type: "hero", ID: 1}); !apierr.IsKind(err, apierr.KindInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if rt.count() != 0 {
		t.Fatal("invalid type should not reach the network")
	}
}
