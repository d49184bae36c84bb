package workflow_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"shortgen/internal/workflow"
)

func TestControllerAdvanceFiresMatchingTrigger(t *testing.T) {
	var fired []string
	triggers := workflow.Triggers{
		GenerateImages: func(ctx context.Context, projectID string) error {
			fired = append(fired, "images:"+projectID)
			return nil
		},
	}
	ctrl := workflow.NewController(workflow.VariantClassic, triggers)

	if err := ctrl.Advance(context.Background(), "p1", workflow.StatusPromptsGenerated); err != nil {
		t.Fatalf("Advance returned error: %v", err)
	}
	if len(fired) != 1 || fired[0] != "images:p1" {
		t.Fatalf("unexpected trigger invocations: %v", fired)
	}
}

func TestControllerAdvanceRejectsTerminalStatus(t *testing.T) {
	ctrl := workflow.NewController(workflow.VariantClassic, workflow.Triggers{})
	if err := ctrl.Advance(context.Background(), "p1", workflow.StatusCompleted); err == nil {
		t.Fatal("expected error for terminal status")
	}
}

func TestControllerSerializesActionsPerProject(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var startOnce sync.Once
	triggers := workflow.Triggers{
		GenerateImages: func(ctx context.Context, projectID string) error {
			startOnce.Do(func() { close(started) })
			<-release
			return nil
		},
	}
	ctrl := workflow.NewController(workflow.VariantClassic, triggers)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ctrl.Advance(context.Background(), "p1", workflow.StatusPromptsGenerated)
	}()
	<-started

	err := ctrl.Advance(context.Background(), "p1", workflow.StatusPromptsGenerated)
	if !errors.Is(err, workflow.ErrActionInFlight) {
		t.Fatalf("err = %v, want ErrActionInFlight", err)
	}

	// A different project is not blocked.
	other := ctrl
	if _, ok := other.NextAction(workflow.StatusPromptsGenerated); !ok {
		t.Fatal("expected a next action for prompts_generated")
	}

	close(release)
	wg.Wait()

	// After the first action completes the project accepts triggers again.
	if err := ctrl.Advance(context.Background(), "p1", workflow.StatusPromptsGenerated); err != nil {
		t.Fatalf("Advance after release returned error: %v", err)
	}
}

func TestFourStepStagesExecuteNumberedSteps(t *testing.T) {
	var steps []int
	triggers := workflow.Triggers{
		ExecuteStep: func(ctx context.Context, projectID string, step int) error {
			steps = append(steps, step)
			return nil
		},
	}
	ctrl := workflow.NewController(workflow.VariantFourStep, triggers)

	for _, status := range []workflow.Status{
		workflow.StatusImagePromptsGenerated,
		workflow.StatusImagesGenerated,
		workflow.StatusVideoPromptsGenerated,
	} {
		if err := ctrl.Advance(context.Background(), "p2", status); err != nil {
			t.Fatalf("Advance(%s) returned error: %v", status, err)
		}
	}
	want := []int{2, 3, 4}
	if len(steps) != len(want) {
		t.Fatalf("steps = %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("steps = %v, want %v", steps, want)
		}
	}
}

func TestNextStageHonorsVariantVocabulary(t *testing.T) {
	stages := workflow.StagesFor(workflow.VariantDirectVideo, workflow.Triggers{
		ExecuteDirectVideo: func(ctx context.Context, projectID string) error { return nil },
	})
	if _, ok := workflow.NextStage(stages, workflow.StatusCreated); !ok {
		t.Fatal("direct-video should be triggerable from created")
	}
	if _, ok := workflow.NextStage(stages, workflow.StatusPromptsGenerated); ok {
		t.Fatal("prompts_generated is not part of the direct-video vocabulary")
	}
}
