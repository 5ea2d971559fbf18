package main

import (
	"fmt"

	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/spf13/cobra"
)

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components <path>",
		Short: "Print the components of a path, one per line",
		Example: `  syskit components /usr//local/bin/
  syskit components --json 'dir/with\/slash'`,
		Args: usage(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			components := path.New(args[0]).Components()
			if a.jsonOut {
				if components == nil {
					components = []string{}
				}
				return a.printJSON(components)
			}
			for _, c := range components {
				fmt.Fprintln(a.stdout, c)
			}
			return nil
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <path>...",
		Short: "Remove redundant separators, '.' and resolvable '..' components",
		Args:  usage(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			out := make([]path.Path, 0, len(args))
			for _, arg := range args {
				out = append(out, path.New(arg).Normalized())
			}
			return a.printPaths(out)
		},
	}
}

func (a *app) joinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <base> <path>...",
		Short: "Join paths; an absolute fragment replaces everything before it",
		Args:  usage(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.printPaths([]path.Path{path.Join(args...)})
		},
	}
}

func (a *app) relativeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relative <path> <base>",
		Short: "Print the path that reaches <path> from the directory <base>",
		Args:  usage(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			p := path.New(args[0]).Normalized()
			base := path.New(args[1]).Normalized()
			return a.printPaths([]path.Path{p.Relative(base)})
		},
	}
}

func (a *app) commonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "common <path> <path>...",
		Short: "Print the longest leading run of components shared by all paths",
		Args:  usage(cobra.MinimumNArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			shared := path.New(args[0])
			for _, arg := range args[1:] {
				var ok bool
				shared, ok = shared.PrefixShared(path.New(arg))
				if !ok {
					return errors.New(errors.CodeNotFound, "paths share no prefix")
				}
			}
			return a.printPaths([]path.Path{shared})
		},
	}
}

// printPaths writes one path per line, or a JSON array of strings.
func (a *app) printPaths(paths []path.Path) error {
	if a.jsonOut {
		out := make([]string, 0, len(paths))
		for _, p := range paths {
			out = append(out, p.String())
		}
		return a.printJSON(out)
	}
	for _, p := range paths {
		fmt.Fprintln(a.stdout, p.String())
	}
	return nil
}
