package ports

import (
	"context"

	"adventcli/internal/domain"
)

// Downloader fetches puzzle data through the external credential-holding tool.
type Downloader interface {
	Available() bool
	DownloadInput(ctx context.Context, day domain.Day, year int, target string) error
	DownloadPuzzle(ctx context.Context, day domain.Day, year int, target string) error
}
