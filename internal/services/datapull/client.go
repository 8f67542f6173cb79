package datapull

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"paimon/internal/config"
	"paimon/internal/logging"
	"paimon/internal/services"
)

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

// Client runs the configured data pull script.
type Client struct {
	script  string
	timeout time.Duration
	logger  *slog.Logger
	exec    Executor
}

// New constructs a data pull client from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Client, error) {
	script := strings.TrimSpace(cfg.Refresh.Script)
	if script == "" {
		return nil, errors.New("refresh script required")
	}
	client := &Client{
		script:  script,
		timeout: time.Duration(cfg.Refresh.TimeoutSeconds) * time.Second,
		logger:  logging.NewComponentLogger(logger, "datapull"),
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Pull executes the refresh script, streaming its output into the log.
func (c *Client) Pull(ctx context.Context) error {
	pullCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		pullCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Info("refreshing game data", logging.String("script", c.script))

	err := c.exec.Run(pullCtx, c.script, nil, func(line string) {
		if line = strings.TrimSpace(line); line != "" {
			c.logger.Info(line)
		}
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
			c.logger.Error("refresh script does not exist", logging.String("script", c.script))
			return services.Wrap(services.ErrExternalTool, "refresh", "pull",
				fmt.Sprintf("script %s does not exist", c.script), err)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			c.logger.Error("refresh script failed",
				logging.String("script", c.script),
				logging.Int("exit_code", exitErr.ExitCode()))
			return services.Wrap(services.ErrExternalTool, "refresh", "pull",
				fmt.Sprintf("script %s returned %d", c.script, exitErr.ExitCode()), err)
		}
		return services.Wrap(services.ErrExternalTool, "refresh", "pull", "script execution failed", err)
	}

	c.logger.Info("game data refreshed")
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if onOutput != nil {
				onOutput(scanner.Text())
			}
		}
	}

	wg.Add(2)
	go scan(stdout)
	go scan(stderr)
	wg.Wait()

	return cmd.Wait()
}
