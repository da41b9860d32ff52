// Package aoccli shells out to the external aoc-cli tool, which holds the
// session credentials and performs the actual downloads.
package aoccli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"adventcli/internal/domain"
	"adventcli/internal/ports"
)

const toolName = "aoc"

type Client struct {
	workdir  string
	lookPath func(string) (string, error)
	command  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

var _ ports.Downloader = (*Client)(nil)

func New(workdir string) *Client {
	return &Client{
		workdir:  workdir,
		lookPath: exec.LookPath,
		command:  exec.CommandContext,
	}
}

func (c *Client) Available() bool {
	_, err := c.lookPath(toolName)
	return err == nil
}

func (c *Client) DownloadInput(ctx context.Context, day domain.Day, year int, target string) error {
	return c.download(ctx, day, year, target, "--input-only", "--input-file")
}

func (c *Client) DownloadPuzzle(ctx context.Context, day domain.Day, year int, target string) error {
	return c.download(ctx, day, year, target, "--puzzle-only", "--puzzle-file")
}

func (c *Client) download(ctx context.Context, day domain.Day, year int, target, onlyFlag, fileFlag string) error {
	if !c.Available() {
		return fmt.Errorf("%w: install it with `cargo install aoc-cli`, then run `aoc credentials -s <session_cookie>`",
			domain.ErrDownloadToolMissing)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create download directory: %w", err)
	}

	cmd := c.command(ctx, toolName, downloadArgs(day, year, target, onlyFlag, fileFlag)...)
	cmd.Dir = c.workdir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("download day %s of %d: %s", day.Padded(), year, msg)
	}

	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("download reported success but %s was not created", target)
	}

	return nil
}

func downloadArgs(day domain.Day, year int, target, onlyFlag, fileFlag string) []string {
	return []string{
		"download",
		"--year", strconv.Itoa(year),
		"--day", day.String(),
		onlyFlag,
		fileFlag, target,
		"--overwrite",
	}
}
