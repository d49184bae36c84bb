package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shortgen/internal/api"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var cachedOnly bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, fromCache, err := loadProjects(cmd.Context(), ctx, cachedOnly)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, projects)
			}

			out := cmd.OutOrStdout()
			if fromCache {
				fmt.Fprintln(out, "backend unreachable; showing cached snapshots")
			}
			if len(projects) == 0 {
				fmt.Fprintln(out, "No projects")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for i := range projects {
				project := &projects[i]
				variant := detectVariant(project)
				_, summary := phaseSummary(variant, project.Status)
				rows = append(rows, []string{
					project.ProjectID,
					truncate(project.Description, 40),
					project.Status,
					summary,
					string(variant),
					formatCreated(project.CreatedAt),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "DESCRIPTION", "STATUS", "PHASE", "VARIANT", "CREATED"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cachedOnly, "cached", false, "List from the local cache without contacting the backend")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit projects as JSON")
	return cmd
}

// loadProjects fetches from the backend and refreshes the cache; when the
// backend is unreachable it falls back to cached snapshots.
func loadProjects(cmdCtx context.Context, ctx *commandContext, cachedOnly bool) ([]api.Project, bool, error) {
	if cachedOnly {
		projects, err := listCached(cmdCtx, ctx)
		return projects, true, err
	}

	client, err := ctx.apiClient()
	if err != nil {
		return nil, false, err
	}
	projects, err := client.List(cmdCtx)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			// The backend answered; its error is authoritative.
			return nil, false, err
		}
		cached, cacheErr := listCached(cmdCtx, ctx)
		if cacheErr != nil || cached == nil {
			return nil, false, err
		}
		return cached, true, nil
	}

	refreshCache(cmdCtx, ctx, projects)
	return projects, false, nil
}

func listCached(cmdCtx context.Context, ctx *commandContext) ([]api.Project, error) {
	store, err := ctx.openCache()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("cache is disabled; cannot list offline")
	}
	defer store.Close()
	return store.List(cmdCtx)
}

func refreshCache(cmdCtx context.Context, ctx *commandContext, projects []api.Project) {
	store, err := ctx.openCache()
	if err != nil || store == nil {
		return
	}
	defer store.Close()
	_ = store.PutAll(cmdCtx, projects)
	keep := make([]string, 0, len(projects))
	for i := range projects {
		keep = append(keep, projects[i].ProjectID)
	}
	_, _ = store.Prune(cmdCtx, keep)
}
