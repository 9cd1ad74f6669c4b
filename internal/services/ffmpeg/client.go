package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Plan describes one concat invocation before it runs. Dry-run and live mode
// share this shape; only live mode materializes the manifest and output.
type Plan struct {
	Manifest string // manifest file path (allocated, not yet created)
	Body     string // manifest content, one file directive per clip
	Output   string // merged output path in the temp directory
	Command  string // full command line, for display and error reporting
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onOutput func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps concat invocations of the configured ffmpeg binary.
type Client struct {
	binary string
	exec   Executor
}

// New constructs an ffmpeg client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{binary: binary, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// NewPlan allocates manifest and output paths for the given clips and renders
// the manifest body and command line. Clips must already be in play order;
// the output inherits the first clip's extension. Nothing is written.
func (c *Client) NewPlan(clips []string) (Plan, error) {
	if len(clips) < 2 {
		return Plan{}, fmt.Errorf("concat requires at least 2 clips, got %d", len(clips))
	}
	var body strings.Builder
	for _, clip := range clips {
		fmt.Fprintf(&body, "file '%s'\n", clip)
	}

	token := uuid.NewString()
	manifest := filepath.Join(os.TempDir(), "clipstitch-"+token+".txt")
	output := filepath.Join(os.TempDir(), "clipstitch-"+token+filepath.Ext(clips[0]))

	plan := Plan{
		Manifest: manifest,
		Body:     body.String(),
		Output:   output,
	}
	plan.Command = strings.Join(append([]string{c.binary}, concatArgs(plan)...), " ")
	return plan, nil
}

// Concat writes the plan's manifest, runs ffmpeg, and verifies the output
// file exists. The manifest is removed on every exit path. Failures carry
// the full command line.
func (c *Client) Concat(ctx context.Context, plan Plan) error {
	if err := os.WriteFile(plan.Manifest, []byte(plan.Body), 0o644); err != nil {
		return fmt.Errorf("write concat manifest: %w", err)
	}
	defer os.Remove(plan.Manifest)

	if err := c.exec.Run(ctx, c.binary, concatArgs(plan), nil); err != nil {
		return fmt.Errorf("run %q: %w", plan.Command, err)
	}
	if _, err := os.Stat(plan.Output); err != nil {
		return fmt.Errorf("run %q: no output file produced: %w", plan.Command, err)
	}
	return nil
}

func concatArgs(plan Plan) []string {
	return []string{"-f", "concat", "-safe", "0", "-i", plan.Manifest, "-c:v", "copy", plan.Output}
}
