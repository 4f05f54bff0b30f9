package apierr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorRendering(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"api error with single message",
			NewAPIError("get game", 404, []string{"Not Found"}),
			`get game: api error: Not Found (status 404)`,
		},
		{
			"api error joins messages",
			NewAPIError("upload grid", 400, []string{"Style is invalid", "Asset is too large"}),
			`upload grid: api error: Style is invalid, Asset is too large (status 400)`,
		},
		{
			"api error without messages",
			NewAPIError("vote grid", 401, nil),
			`vote grid: api error: server reported failure (status 401)`,
		},
		{
			"invalid argument",
			NewInvalidArgument("delete grids", errors.New("at least one grid id is required")),
			`delete grids: invalid argument: at least one grid id is required`,
		},
		{
			"malformed response keeps status",
			NewMalformedResponse("get grids", 502, errors.New("invalid character '<' looking for beginning of value")),
			`get grids: malformed response: invalid character '<' looking for beginning of value (status 502)`,
		},
		{
			"transport",
			NewTransport("search game", errors.New("dial tcp: connection refused")),
			`search game: transport error: dial tcp: connection refused`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMessageJoinsServerErrors(t *testing.T) {
	t.Parallel()
	e := NewAPIError("get game", 404, []string{"Not Found", "Game does not exist"})
	if got, want := e.Message(), "Not Found, Game does not exist"; got != want {
		t.Fatalf("Message() = %q, want %q", got, want)
	}
	if NewTransport("op", errors.New("x")).Message() != "" {
		t.Fatal("Message() should be empty for non-api errors")
	}
}

func TestUnwrapPreservesOriginal(t *testing.T) {
	t.Parallel()
	underlying := fmt.Errorf("round trip: %w", context.Canceled)
	err := NewTransport("get game", underlying)
	if !errors.Is(err, context.Canceled) {
		t.Fatal("expected errors.Is to reach the wrapped context error")
	}
	if !strings.Contains(err.Error(), "round trip") {
		t.Fatalf("expected rendered error to include the cause, got %q", err.Error())
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("loading artwork: %w", NewAPIError("get grids", 404, []string{"Not Found"}))
	if !IsKind(err, KindAPIError) {
		t.Fatal("IsKind should see through fmt.Errorf wrapping")
	}
	if IsKind(err, KindTransport) {
		t.Fatal("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindAPIError) {
		t.Fatal("IsKind matched a plain error")
	}
}

func TestErrorsIsWithKindSentinel(t *testing.T) {
	t.Parallel()
	err := NewMalformedResponse("get game", 200, errors.New("unexpected end of JSON input"))
	if !errors.Is(err, &Error{Kind: KindMalformedResponse}) {
		t.Fatal("expected kind sentinel match")
	}
	if errors.Is(err, &Error{Kind: KindAPIError}) {
		t.Fatal("unexpected kind sentinel match")
	}
}
