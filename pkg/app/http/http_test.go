package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-tracker/pkg/app/errors"
	"github.com/chainsafe/bridge-tracker/pkg/config"
)

func TestHandleError(t *testing.T) {
	cases := map[string]struct {
		err       error
		wantCode  int
		wantMsg   string
		wantClass string
	}{
		"bad request": {apperrors.BadRequestError(nil, "invalid address"), http.StatusBadRequest, "invalid address", ""},
		"conflict":    {apperrors.ClassifiedConflictError(nil, "claim failed", "ALREADY_EXECUTED"), http.StatusConflict, "claim failed", "ALREADY_EXECUTED"},
		"wrapped":     {fmt.Errorf("outer: %w", apperrors.RecoveringError(nil, "later")), http.StatusServiceUnavailable, "later", ""},
		"plain":       {errors.New("secret detail"), http.StatusInternalServerError, "Internal Server Error", ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := HandleError(func(http.ResponseWriter, *http.Request) error { return tc.err })
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			var got ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode response JSON: %v", err)
			}
			if got.Error != tc.wantMsg || got.Code != tc.wantCode || got.Class != tc.wantClass {
				t.Fatalf("unexpected body %+v", got)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`)), &v); err != nil || v.A != 1 {
		t.Fatalf("DecodeJSON() = %v, value %d", err, v.A)
	}
	err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)), &v)
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestServe_ShutsDownAndRunsHooks(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	hooks := make(chan string, 2)
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}), zap.NewNop(), &config.ServerConfig{ShutdownTimeout: time.Second}, []func(){
			func() { hooks <- "first" },
			func() { hooks <- "second" },
		})
	}()

	resp, err := http.Get("http://" + ln.Addr().String())
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve() returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	if first, second := <-hooks, <-hooks; first != "first" || second != "second" {
		t.Fatalf("hooks ran as %s, %s", first, second)
	}
}
