// Package main is the entry point of the linter for the domains hosted under madefor.cc.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/madefor-cc/dns/internal/config"
	"github.com/madefor-cc/dns/internal/lint"
	"github.com/madefor-cc/dns/internal/pp"
	"github.com/madefor-cc/dns/internal/probe"
	"github.com/madefor-cc/dns/internal/registry"
)

// Version is the version of the linter that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "madefor.cc DNS linter"
	}
	return fmt.Sprintf("madefor.cc DNS linter (%s)", Version)
}

var errChecksFailed = errors.New("some checks failed")

func newHTTPProber(timeout time.Duration) probe.Prober {
	return probe.NewHTTP(timeout)
}

// newCommand builds the command checking r. Diffs go to out.
func newCommand(ppfmt pp.PP, out io.Writer, r registry.Registry,
	newProber func(timeout time.Duration) probe.Prober,
) *cobra.Command {
	c := config.Default()

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:           "lint",
		Short:         "Check that the registered domains are sorted and have valid CNAMEs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ppfmt.Noticef(pp.EmojiStar, formatName())
			c.Print(ppfmt)

			if !lint.Run(cmd.Context(), ppfmt, out, c, r, newProber(c.FetchTimeout)) {
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&c.FetchDomains, "fetch-domains", c.FetchDomains,
		"Fetch each domain and check it is still up.")

	return cmd
}

func main() {
	os.Exit(realMain(context.Background(), os.Args[1:], os.Stdout, os.Stderr, registry.Domains))
}

func realMain(ctx context.Context, args []string, stdout, stderr io.Writer, r registry.Registry) int {
	ppfmt := pp.New(stderr, true, pp.DefaultVerbosity)

	cmd := newCommand(ppfmt, stdout, r, newHTTPProber)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errChecksFailed) {
			ppfmt.Noticef(pp.EmojiUserError, "%v", err)
		}
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	return 0
}
