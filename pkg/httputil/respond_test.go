package httputil

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/graphcanvas/pkg/errors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid argument", errors.New(errors.ErrCodeInvalidArgument, "n"), http.StatusBadRequest},
		{"invalid graph", errors.New(errors.ErrCodeInvalidGraph, "g"), http.StatusBadRequest},
		{"unknown op", errors.New(errors.ErrCodeOperationNotFound, "op"), http.StatusNotFound},
		{"unknown graph", errors.New(errors.ErrCodeGraphNotFound, "id"), http.StatusNotFound},
		{"storage", errors.New(errors.ErrCodeStorage, "db"), http.StatusServiceUnavailable},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"plain", stderrors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	t.Run("coded", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Error(rec, errors.New(errors.ErrCodeGraphNotFound, "graph %q not found", "abc"))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
		var body ErrorBody
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.Error != "GRAPH_NOT_FOUND" || body.Message != `graph "abc" not found` {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("internal hides detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Error(rec, stderrors.New("secret connection string"))
		if strings.Contains(rec.Body.String(), "secret") {
			t.Errorf("body leaks cause: %s", rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "INTERNAL_ERROR") {
			t.Errorf("body = %s, want INTERNAL_ERROR", rec.Body.String())
		}
	})
}

func TestDecode(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"k5"}`, false},
		{"empty", ``, true},
		{"malformed", `{"name":`, true},
		{"too large", `{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := Decode(httptest.NewRecorder(), req, &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("err = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"message": "ok"})
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}
