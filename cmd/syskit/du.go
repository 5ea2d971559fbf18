package main

import (
	"context"
	"fmt"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/system"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// duResult is the JSON form of a du line.
type duResult struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

func (a *app) duCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "du <path>...",
		Short: "Sum the apparent size of the files under each path",
		Long: `Sum the sizes of all non-directory entries under each path. Symbolic
links count with their own size and are not followed. Paths are walked
concurrently; the first failure cancels the others.`,
		Args: usage(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}

			results := make([]duResult, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			if jobs > 0 {
				g.SetLimit(jobs)
			}
			for i, arg := range args {
				p := path.New(arg)
				results[i].Path = p.String()
				g.Go(func() error {
					size, err := diskUsage(ctx, sys, p)
					results[i].Size = size
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if a.jsonOut {
				return a.printJSON(results)
			}
			var total int64
			for _, r := range results {
				total += r.Size
				fmt.Fprintf(a.stdout, "%d\t%s\n", r.Size, r.Path)
			}
			if len(results) > 1 {
				fmt.Fprintf(a.stdout, "%d\ttotal\n", total)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "maximum paths walked at once (0 for no limit)")
	return cmd
}

// diskUsage walks p depth first with one directory iterator open per level.
func diskUsage(ctx context.Context, sys *system.System, p path.Path) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	md, err := sys.LinkMetadata(p)
	if err != nil {
		return 0, err
	}
	if md.Type != core.FileTypeDirectory {
		return md.Size, nil
	}

	var total int64
	err = sys.ForEachEntry(p, func(entry path.Path) error {
		size, err := diskUsage(ctx, sys, entry)
		total += size
		return err
	})
	return total, err
}
