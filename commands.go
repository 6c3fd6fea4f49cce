package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/beka-birhanu/advent2024/service"
	"github.com/beka-birhanu/advent2024/service/i"
	"github.com/spf13/cobra"
)

var errTokenSecret = errors.New("JWT_SECRET must be set to issue tokens")

// newRootCmd builds the command tree. Answers go to stdout, logs to the app's stderr.
func newRootCmd(a *app, stdout io.Writer) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "advent2024",
		Short:        "Advent of Code 2024 puzzle solvers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(verbose)
		},
	}
	root.SetOut(stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	for _, s := range a.registry.All() {
		root.AddCommand(newPartCmd(a, s))
	}
	root.AddCommand(newVerifyCmd(a), newServeCmd(a), newTokenCmd(a))

	return root
}

// newPartCmd solves one puzzle part against its configured input.
func newPartCmd(a *app, s i.Solver) *cobra.Command {
	day, part := s.Day(), s.Part()
	return &cobra.Command{
		Use:   fmt.Sprintf("day%d-part%d", day, part),
		Short: fmt.Sprintf("Solve day %d part %d: %s", day, part, s.Title()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runner.Run(cmd.Context(), day, part)
			if err != nil {
				a.appLogger.Error(err.Error())
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Answer)
			return err
		},
	}
}

// newVerifyCmd checks every solver against its embedded sample.
func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every solver against its sample answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, verifyErr := a.runner.Verify(cmd.Context())
			out := cmd.OutOrStdout()
			for _, v := range results {
				status := "ok"
				if !v.OK() {
					status = "FAIL"
				}
				line := fmt.Sprintf("day %2d part %d  %-4s  want %d got %d", v.Day, v.Part, status, v.Want, v.Got)
				if v.Err != nil && !errors.Is(v.Err, service.ErrWrongAnswer) {
					line += "  " + v.Err.Error()
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}

			if verifyErr != nil {
				a.appLogger.Error(verifyErr.Error())
				return verifyErr
			}
			a.appLogger.Info(fmt.Sprintf("All %d samples verified", len(results)))
			return nil
		},
	}
}

// newServeCmd runs the HTTP API until it fails.
func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			router, err := a.router()
			if err != nil {
				return err
			}

			a.appLogger.Info(fmt.Sprintf("Listening on %s:%d", a.cfg.HostIP, a.cfg.RESTPort))
			if err := router.Run(); err != nil {
				a.appLogger.Error(fmt.Sprintf("Starting server: %v", err))
				return err
			}
			return nil
		},
	}
}

// newTokenCmd issues a bearer token for the API.
func newTokenCmd(a *app) *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue an API token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.tokenizer()
			if t == nil {
				return errTokenSecret
			}

			jwt, err := t.Generate(args[0], ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), jwt)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
