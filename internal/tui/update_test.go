package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"shortgen/internal/api"
	"shortgen/internal/workflow"
)

type stubFetcher struct{}

func (stubFetcher) Get(context.Context, string) (*api.Project, error) {
	return nil, errors.New("unused")
}

func newTestModel() Model {
	return NewModel(stubFetcher{}, "proj-1", workflow.VariantClassic, time.Millisecond, time.Millisecond)
}

func TestSnapshotUpdatesPhase(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(snapshotMsg{Project: &api.Project{
		ProjectID: "proj-1",
		Status:    "images_generated",
	}})
	model := next.(Model)

	if model.phase.Label != "images ready" {
		t.Errorf("phase label = %q", model.phase.Label)
	}
	if model.phase.Percent != 70 {
		t.Errorf("phase percent = %d", model.phase.Percent)
	}
	if model.Done() {
		t.Error("non-terminal snapshot marked done")
	}
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
}

func TestTerminalSnapshotQuits(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(snapshotMsg{Project: &api.Project{
		ProjectID: "proj-1",
		Status:    "videos_generated",
		Videos:    []string{"media/proj-1/v1.mp4"},
	}})
	model := next.(Model)

	if !model.Done() {
		t.Error("terminal snapshot not marked done")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestStaleSnapshotIsIgnored(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(snapshotMsg{Project: &api.Project{Status: "images_generated"}})
	model := next.(Model)
	next, _ = model.Update(snapshotMsg{Project: &api.Project{Status: "created"}})
	model = next.(Model)

	if model.project.Status != "images_generated" {
		t.Errorf("stale snapshot replaced newer one: %q", model.project.Status)
	}
}

func TestPollErrorKeepsPolling(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(pollErrMsg{Err: errors.New("connection refused")})
	model := next.(Model)

	if model.err == nil {
		t.Error("expected error to be recorded")
	}
	if cmd == nil {
		t.Error("expected retry tick command")
	}

	view := model.View()
	if !strings.Contains(view, "retrying") {
		t.Errorf("view missing retry notice: %q", view)
	}
}

func TestViewShowsProgress(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(snapshotMsg{Project: &api.Project{
		ProjectID:   "proj-1",
		Description: "a corgi surfing",
		Status:      "prompts_generated",
		Prompts:     []string{"one", "two", "three"},
	}})
	model := next.(Model)

	view := model.View()
	if !strings.Contains(view, "prompts ready") {
		t.Errorf("view missing phase label: %q", view)
	}
	if !strings.Contains(view, "a corgi surfing") {
		t.Errorf("view missing description: %q", view)
	}
	if !strings.Contains(view, "3 prompts") {
		t.Errorf("view missing artifact summary: %q", view)
	}
}
