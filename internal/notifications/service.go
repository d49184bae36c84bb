package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shortgen/internal/config"
)

const userAgent = "shortgen/0.1.0"

// Service defines the notification surface exposed to watch commands.
type Service interface {
	NotifyProjectCompleted(ctx context.Context, projectID, description string) error
	NotifyProjectFailed(ctx context.Context, projectID, description, reason string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg config.Notifications) Service {
	topic := strings.TrimSpace(cfg.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint:  topic,
		client:    &http.Client{Timeout: timeout},
		completed: cfg.Completed,
		failed:    cfg.Failed,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint  string
	client    *http.Client
	completed bool
	failed    bool
}

func (n *ntfyService) NotifyProjectCompleted(ctx context.Context, projectID, description string) error {
	if !n.completed {
		return nil
	}
	description = strings.TrimSpace(description)
	message := fmt.Sprintf("Videos ready for project %s", projectID)
	if description != "" {
		message = fmt.Sprintf("Videos ready: %s", description)
	}
	data := payload{
		title:    "shortgen - Complete",
		message:  message,
		tags:     []string{"shortgen", "project", "completed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyProjectFailed(ctx context.Context, projectID, description, reason string) error {
	if !n.failed {
		return nil
	}
	var builder strings.Builder
	builder.WriteString("Generation failed for project ")
	builder.WriteString(projectID)
	if description = strings.TrimSpace(description); description != "" {
		builder.WriteString(" (")
		builder.WriteString(description)
		builder.WriteString(")")
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		builder.WriteString(": ")
		builder.WriteString(reason)
	}
	data := payload{
		title:    "shortgen - Failed",
		message:  builder.String(),
		tags:     []string{"shortgen", "project", "failed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "shortgen - Test",
		message:  "Notification system test",
		tags:     []string{"shortgen", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyProjectCompleted(context.Context, string, string) error      { return nil }
func (noopService) NotifyProjectFailed(context.Context, string, string, string) error { return nil }
func (noopService) TestNotification(context.Context) error                            { return nil }
