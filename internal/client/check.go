package client

import (
	"context"
	"errors"
	"fmt"
)

// ErrToolMissing is wrapped by every ToolMissingError
var ErrToolMissing = errors.New("required tool is not installed")

// ToolMissingError names the tool that could not be started
type ToolMissingError struct {
	Tool string
	Err  error
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("%s is not installed; please install it first through your e.g. package manager", e.Tool)
}

func (e *ToolMissingError) Unwrap() error {
	return ErrToolMissing
}

// CheckTools starts each tool with --version. A tool that runs at all counts
// as installed, even if it exits non-zero. The first tool that cannot be
// started is reported.
func CheckTools(ctx context.Context, runner Runner, tools []string) error {
	if runner == nil {
		runner = ExecRunner{}
	}
	for _, tool := range tools {
		if _, err := runner.Run(ctx, tool, "--version"); err != nil && !IsExitError(err) {
			return &ToolMissingError{Tool: tool, Err: err}
		}
	}
	return nil
}
