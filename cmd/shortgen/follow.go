package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shortgen/internal/api"
	"shortgen/internal/poller"
	"shortgen/internal/workflow"
)

// followProject polls a project until it finishes, printing one line per
// status change. The final snapshot is cached and, when configured, a push
// notification is sent.
func followProject(cmd *cobra.Command, cmdCtx *commandContext, client *api.Client, projectID string, variant workflow.Variant, maxWait time.Duration) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	var lastStatus string
	watcher := cmdCtx.poller(variant, maxWait)
	watcher.OnUpdate = func(project *api.Project) {
		if project.Status == lastStatus {
			return
		}
		lastStatus = project.Status
		phase, _ := phaseSummary(variant, project.Status)
		fmt.Fprintln(out, renderPhaseLine(project.Status, phase, colorize))
	}

	final, err := watcher.Watch(cmd.Context(), func(ctx context.Context) (*api.Project, error) {
		return client.Get(ctx, projectID)
	})

	if final != nil {
		cacheSnapshot(cmdCtx, final)
	}

	switch {
	case errors.Is(err, poller.ErrTimedOut):
		fmt.Fprintln(out, renderPhaseLine("failed", workflow.PhaseFor(variant, workflow.StatusFailed), colorize))
		notifyOutcome(cmdCtx, final, "timed out waiting for the backend")
		return fmt.Errorf("project %s: %w", projectID, err)
	case err != nil:
		return err
	}

	notifyOutcome(cmdCtx, final, "")
	printResultLinks(cmd, client, final)
	return nil
}

func notifyOutcome(cmdCtx *commandContext, project *api.Project, failReason string) {
	if project == nil {
		return
	}
	notifier := cmdCtx.notifier()
	ctx := context.Background()
	status, _ := workflow.ParseStatus(project.Status)
	switch {
	case failReason != "" || status == workflow.StatusFailed:
		if failReason == "" {
			failReason = "backend reported failure"
		}
		_ = notifier.NotifyProjectFailed(ctx, project.ProjectID, project.Description, failReason)
	case workflow.IsTerminal(status):
		_ = notifier.NotifyProjectCompleted(ctx, project.ProjectID, project.Description)
	}
}

// cacheSnapshot best-effort persists a snapshot; cache trouble never fails
// the command that produced the snapshot.
func cacheSnapshot(cmdCtx *commandContext, project *api.Project) {
	store, err := cmdCtx.openCache()
	if err != nil || store == nil {
		return
	}
	defer store.Close()
	_ = store.Put(context.Background(), project)
}

func printResultLinks(cmd *cobra.Command, client *api.Client, project *api.Project) {
	if project == nil {
		return
	}
	out := cmd.OutOrStdout()
	if len(project.Videos) > 0 {
		fmt.Fprintln(out, "videos:")
		for _, video := range project.Videos {
			fmt.Fprintf(out, "  %s\n", client.MediaURL(video))
		}
	}
	if project.FinalVideoPath != "" {
		fmt.Fprintf(out, "final video: %s\n", client.MediaURL(project.FinalVideoPath))
	}
}
