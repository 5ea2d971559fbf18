package main

import (
	"fmt"

	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/perm"
	"github.com/jmgilman/syskit/system"
	"github.com/spf13/cobra"
)

// statResult is the JSON form of a stat line.
type statResult struct {
	Path        string `json:"path"`
	Type        string `json:"type"`
	Permissions string `json:"permissions"`
	Size        int64  `json:"size"`
}

func (a *app) statCmd() *cobra.Command {
	var noFollow bool

	cmd := &cobra.Command{
		Use:   "stat <path>...",
		Short: "Print the type, permissions and size of each path",
		Args:  usage(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}

			results := make([]statResult, 0, len(args))
			for _, arg := range args {
				p := path.New(arg)
				query := sys.Metadata
				if noFollow {
					query = sys.LinkMetadata
				}
				md, err := query(p)
				if err != nil {
					return err
				}
				results = append(results, statResult{
					Path:        p.String(),
					Type:        md.Type.String(),
					Permissions: perm.FromMode(md.Perm).String(),
					Size:        md.Size,
				})
			}

			if a.jsonOut {
				return a.printJSON(results)
			}
			for _, r := range results {
				fmt.Fprintf(a.stdout, "%s\t%s\t%d\t%s\n", r.Type, r.Permissions, r.Size, r.Path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&noFollow, "no-follow", "P", false, "describe symbolic links instead of their targets")
	return cmd
}

func (a *app) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [directory]",
		Short: "List a directory",
		Long: `List the entries of a directory, "." by default.

On a terminal only entry names are printed. Otherwise each entry is printed
as the directory path joined with its name, which is convenient for piping.`,
		Args: usage(cobra.MaximumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			dir := path.New(".")
			if len(args) == 1 {
				dir = path.New(args[0])
			}

			it, err := sys.OpenDir(dir)
			if err != nil {
				return err
			}
			var entries []path.Path
			for entry := range it.All() {
				entries = append(entries, entry)
			}
			if err := it.Err(); err != nil {
				return err
			}

			if a.jsonOut || !a.isTerminal() {
				return a.printPaths(entries)
			}
			for _, entry := range entries {
				name, _ := entry.Filename()
				fmt.Fprintln(a.stdout, name)
			}
			return nil
		},
	}
}

func (a *app) mkdirCmd() *cobra.Command {
	var (
		mode    string
		parents bool
	)

	cmd := &cobra.Command{
		Use:   "mkdir <directory>...",
		Short: "Create directories",
		Args:  usage(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}

			var permission []perm.Triplet
			if mode != "" {
				t, err := perm.Parse(mode)
				if err != nil {
					return err
				}
				permission = append(permission, t)
			}

			for _, arg := range args {
				p := path.New(arg)
				if parents {
					err = makeParents(sys, p, permission)
				} else {
					err = sys.MakeDirectory(p, permission...)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "permissions in octal or symbolic form (default from configuration)")
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parents; existing directories are not an error")
	return cmd
}

// makeParents creates p and any missing ancestor, accepting ones that
// already exist as directories.
func makeParents(sys *system.System, p path.Path, permission []perm.Triplet) error {
	if sys.IsDirectory(p) {
		return nil
	}
	if parent, ok := p.Parent(); ok {
		if err := makeParents(sys, parent, permission); err != nil {
			return err
		}
	}
	err := sys.MakeDirectory(p, permission...)
	if errors.HasCode(err, errors.CodeAlreadyExists) && sys.IsDirectory(p) {
		return nil
	}
	return err
}

func (a *app) rmCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Remove files, links and directories",
		Long: `Remove each path. Directories must be empty unless -r is given, in which
case their contents are removed first. Symbolic links are removed, never
followed. The first failure stops the command.`,
		Args: usage(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			for _, arg := range args {
				if err := sys.Remove(path.New(arg), recursive); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove directories and their contents")
	return cmd
}

func (a *app) chmodCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "chmod <mode> <path>...",
		Short:   "Set permissions",
		Example: "  syskit chmod 750 ./bin\n  syskit chmod rw-r----- notes.txt",
		Args:    usage(cobra.MinimumNArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := perm.Parse(args[0])
			if err != nil {
				return err
			}
			sys, err := a.system()
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				if err := sys.SetPermissions(path.New(arg), t); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) realpathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realpath <path>...",
		Short: "Print the absolute path with every symbolic link resolved",
		Args:  usage(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			out := make([]path.Path, 0, len(args))
			for _, arg := range args {
				resolved, err := sys.Resolved(path.New(arg))
				if err != nil {
					return err
				}
				out = append(out, resolved)
			}
			return a.printPaths(out)
		},
	}
}

func (a *app) pwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pwd",
		Short: "Print the working directory",
		Args:  usage(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			wd, err := sys.WorkingDirectory()
			if err != nil {
				return err
			}
			return a.printPaths([]path.Path{wd})
		},
	}
}

func (a *app) tmpdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tmpdir",
		Short: "Print the directory used for temporary files",
		Args:  usage(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			return a.printPaths([]path.Path{sys.TemporaryDirectory()})
		},
	}
}
