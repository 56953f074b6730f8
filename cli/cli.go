package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/funcad/cli/cmd"
	"github.com/ardnew/funcad/pkg"
)

// CLI is the top-level command-line interface for funcad.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Fmt     cmd.Fmt     `cmd:"" help:"Format a document."`
	Check   cmd.Check   `cmd:"" help:"Check documents for syntax errors."`
	Imports cmd.Imports `cmd:"" help:"List the imports of a document."`
	Repl    cmd.Repl    `cmd:"" help:"Start an interactive session."`
}

// Run executes the funcad CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.ConfigIdentifier: configPath(baseConfig + ".yaml"),
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"version":            pkg.Name + " " + pkg.Version(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong parses anything so that errors reported
	// during parsing already use them.
	cli.Log.scan(args)

	groups := []kong.Group{cli.Log.group()}
	if g := cli.Pprof.group(); g.Key != "" {
		groups = append(groups, g)
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		// The provider runs when a command first asks for a context, after
		// ctx below has been extended.
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolveYAML(ctx),
			configPath(baseConfig+".yaml"),
			configPath(baseConfig+".yml"),
		),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Apply the final logger configuration, including values that came from
	// configuration files.
	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode was given.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
