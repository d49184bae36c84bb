package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the local snapshot cache",
	}

	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCachePruneCommand(ctx))

	return cacheCmd
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cached snapshot counts by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCache()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Cache is disabled")
				return nil
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, stats)
			}

			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "Cache is empty")
				return nil
			}

			statuses := make([]string, 0, len(stats))
			total := 0
			for status, count := range stats {
				statuses = append(statuses, status)
				total += count
			}
			sort.Strings(statuses)

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				rows = append(rows, []string{status, fmt.Sprintf("%d", stats[status])})
			}
			fmt.Fprintln(out, renderTable([]string{"STATUS", "PROJECTS"}, rows, 1))
			fmt.Fprintf(out, "%d cached snapshot(s) total\n", total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit stats as JSON")
	return cmd
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop cached snapshots for projects the backend no longer has",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCache()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Cache is disabled")
				return nil
			}
			defer store.Close()

			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			projects, err := client.List(cmd.Context())
			if err != nil {
				return err
			}

			keep := make([]string, 0, len(projects))
			for _, project := range projects {
				keep = append(keep, project.ProjectID)
			}
			removed, err := store.Prune(cmd.Context(), keep)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d stale snapshot(s)\n", removed)
			return nil
		},
	}
}
