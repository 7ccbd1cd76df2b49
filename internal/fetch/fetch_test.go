package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-requested-with") != "XMLHttpRequest" {
			t.Errorf("header set was not forwarded, got %q", r.Header.Get("x-requested-with"))
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	c := NewClient()
	body, err := c.Get(context.Background(), srv.URL, HeaderSet{"x-requested-with": "XMLHttpRequest"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(body) != "<html>ok</html>" {
		t.Errorf("Get() body = %q", body)
	}
}

func TestClient_Get_non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient()
	_, err := c.Get(context.Background(), srv.URL, nil)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Get() error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusForbidden {
		t.Errorf("StatusError.Code = %d, want 403", statusErr.Code)
	}
}

func TestClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if string(b) != "search_text=nvidia&tab=news" {
			t.Errorf("unexpected POST body %q", b)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient()
	body, err := c.Post(context.Background(), srv.URL,
		HeaderSet{"content-type": "application/x-www-form-urlencoded"},
		[]byte("search_text=nvidia&tab=news"))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("Post() body = %q", body)
	}
}

func TestClient_Get_unreachable(t *testing.T) {
	c := NewClient()
	_, err := c.Get(context.Background(), "http://127.0.0.1:1", nil)

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Get() error = %v, want *RequestError", err)
	}
}
