package notifications_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shortgen/internal/config"
	"shortgen/internal/notifications"
)

func TestNewServiceReturnsNoopWhenTopicMissing(t *testing.T) {
	cfg := config.Default().Notifications
	cfg.NtfyTopic = ""
	svc := notifications.NewService(cfg)
	if err := svc.NotifyProjectCompleted(context.Background(), "proj-1", "a corgi surfing"); err != nil {
		t.Fatalf("expected noop notifier to return nil, got %v", err)
	}
}

func TestNtfyServiceFormatsCompletedMessage(t *testing.T) {
	var gotTitle, gotTags, gotPriority, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("Title")
		gotTags = r.Header.Get("Tags")
		gotPriority = r.Header.Get("Priority")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config.Default().Notifications
	cfg.NtfyTopic = server.URL
	svc := notifications.NewService(cfg)

	if err := svc.NotifyProjectCompleted(context.Background(), "proj-1", "a corgi surfing"); err != nil {
		t.Fatalf("NotifyProjectCompleted: %v", err)
	}
	if gotTitle != "shortgen - Complete" {
		t.Errorf("title = %q", gotTitle)
	}
	if gotTags != "shortgen,project,completed" {
		t.Errorf("tags = %q", gotTags)
	}
	if gotPriority != "high" {
		t.Errorf("priority = %q", gotPriority)
	}
	if gotBody != "Videos ready: a corgi surfing" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestNtfyServiceFormatsFailureMessage(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config.Default().Notifications
	cfg.NtfyTopic = server.URL
	svc := notifications.NewService(cfg)

	if err := svc.NotifyProjectFailed(context.Background(), "proj-2", "dog video", "timed out"); err != nil {
		t.Fatalf("NotifyProjectFailed: %v", err)
	}
	want := "Generation failed for project proj-2 (dog video): timed out"
	if gotBody != want {
		t.Errorf("body = %q, want %q", gotBody, want)
	}
}

func TestNtfyServiceHonorsToggles(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config.Default().Notifications
	cfg.NtfyTopic = server.URL
	cfg.Completed = false
	cfg.Failed = false
	svc := notifications.NewService(cfg)

	if err := svc.NotifyProjectCompleted(context.Background(), "proj-1", ""); err != nil {
		t.Fatalf("NotifyProjectCompleted: %v", err)
	}
	if err := svc.NotifyProjectFailed(context.Background(), "proj-1", "", ""); err != nil {
		t.Fatalf("NotifyProjectFailed: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no requests when toggles are off, got %d", calls)
	}
}

func TestNtfyServiceSurfacesServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := config.Default().Notifications
	cfg.NtfyTopic = server.URL
	svc := notifications.NewService(cfg)

	if err := svc.TestNotification(context.Background()); err == nil {
		t.Fatal("expected error from non-2xx response")
	}
}
