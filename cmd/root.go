package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/scopedir/internal/fsys"
	"github.com/Norgate-AV/scopedir/internal/limits"
	"github.com/Norgate-AV/scopedir/internal/logger"
	"github.com/Norgate-AV/scopedir/internal/logging"
	"github.com/Norgate-AV/scopedir/internal/scoped"
	"github.com/Norgate-AV/scopedir/internal/version"
)

var (
	verbose  bool
	keep     bool
	prefix   string
	parent   string
	showLogs bool
)

// osExit allows tests to intercept exit-code propagation
var osExit = os.Exit

var RootCmd = &cobra.Command{
	Use:   "scopedir [flags] -- <command> [args...]",
	Short: "scopedir - Run a command inside a self-cleaning scratch directory",
	Long: `scopedir creates a uniquely named scratch directory, runs the given
command with its working directory inside it and the path exported as
$SCOPEDIR, then deletes the directory and everything the command left
behind - however deeply nested.`,
	Version:      version.GetVersion(),
	Args:         validateArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(verbose)
	},
	RunE: Execute,
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// Add flags
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&keep, "keep", "k", false, "keep the scratch directory on exit and print its path")
	RootCmd.PersistentFlags().StringVarP(&prefix, "prefix", "p", "", "name prefix for the scratch directory")
	RootCmd.PersistentFlags().StringVarP(&parent, "parent", "d", "", "parent directory to create the scratch directory under")
	RootCmd.PersistentFlags().BoolVarP(&showLogs, "logs", "l", false, "print the log file and exit")
}

// validateArgs requires a command to run unless --logs was given
func validateArgs(cmd *cobra.Command, args []string) error {
	if showLogs {
		return nil
	}

	if len(args) < 1 {
		return fmt.Errorf("requires a command to run, e.g. scopedir -- make test")
	}

	return nil
}

func Execute(cmd *cobra.Command, args []string) error {
	if showLogs {
		if err := logging.PrintLogFile(nil); err != nil {
			return err
		}

		osExit(0)
		return nil
	}

	slog.Debug("Execute() called", "args", args)
	slog.Debug("Flags set", "verbose", verbose, "keep", keep, "prefix", prefix, "parent", parent)

	dir, err := scoped.NewWithDeps(fsys.NewReal(), logger.FromSlog(slog.Default()), scoped.Options{
		Parent: parent,
		Prefix: prefix,
	})
	if err != nil {
		return fmt.Errorf("error creating scratch directory: %w", err)
	}

	slog.Debug("Scratch directory created", "path", dir.Path())

	code, runErr := runChild(dir.Path(), args)

	// Teardown happens before exit-code propagation: osExit bypasses defers,
	// and the scratch directory must be gone either way.
	cleanup(dir)

	if runErr != nil {
		return runErr
	}

	if code != 0 {
		slog.Debug("Propagating child exit status", "code", code)
		osExit(code)
	}

	slog.Debug("Execute() completed successfully")
	return nil
}

// cleanup releases or deletes the scratch directory depending on --keep.
// Deletion failures are logged, never returned: the run's outcome belongs to
// the child process, not to teardown.
func cleanup(dir *scoped.Dir) {
	if keep {
		released := dir.Release()
		if released != "" {
			slog.Info("Keeping scratch directory", "path", released)
			fmt.Println(released)
		}

		return
	}

	if err := dir.Close(); err != nil {
		slog.Warn("Scratch directory cleanup incomplete", "error", err)
	}
}

// runChild starts the command inside the scratch directory and waits for it,
// forwarding interrupts so the child can stop writing before teardown.
// It returns the child's exit code.
func runChild(dir string, args []string) (int, error) {
	child := exec.Command(args[0], args[1:]...)
	child.Dir = dir
	child.Env = append(os.Environ(), "SCOPEDIR="+dir)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Start(); err != nil {
		return 0, fmt.Errorf("error starting %s: %w", args[0], err)
	}

	slog.Debug("Child process started", "pid", child.Process.Pid)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	done := make(chan error, 1)
	go func() { done <- child.Wait() }()

	select {
	case sig := <-sigChan:
		slog.Info("Received interrupt signal, stopping child process")
		slog.Debug("Forwarding signal to child", "signal", sig, "pid", child.Process.Pid)
		_ = child.Process.Signal(sig)

		select {
		case err := <-done:
			return childStatus(err)
		case <-time.After(limits.ShutdownGrace):
			slog.Warn("Child did not exit in time, killing", "pid", child.Process.Pid)
			_ = child.Process.Kill()

			return childStatus(<-done)
		}
	case err := <-done:
		return childStatus(err)
	}
}

// childStatus maps the child's exit state onto our own exit code
func childStatus(err error) (int, error) {
	if err == nil {
		slog.Debug("Child process exited cleanly")
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; report the conventional interrupt status
			code = 130
		}

		slog.Debug("Child process exited with failure", "code", code)
		return code, nil
	}

	return 0, fmt.Errorf("error waiting for command: %w", err)
}
