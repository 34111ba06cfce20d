package ytdlp

import (
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/gofrs/flock"
)

// StartBackgroundUpdate kicks off a best-effort `--update-to stable` run in
// the background. A lock file in the temp directory keeps concurrent server
// instances from racing the updater; when the lock is already held the update
// is skipped. Failures are logged and otherwise ignored.
func (c *Client) StartBackgroundUpdate(logger *slog.Logger) {
	lock := flock.New(filepath.Join(c.tempDir, "ytsubs-update.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		logger.Debug("self-update lock unavailable", "error", err)
		return
	}
	if !ok {
		logger.Debug("self-update already in progress elsewhere")
		return
	}

	go func() {
		defer func() { _ = lock.Unlock() }()
		cmd := exec.Command(c.binary, "--update-to", "stable") //nolint:gosec
		if err := cmd.Run(); err != nil {
			logger.Debug("tool self-update failed", "error", err)
			return
		}
		logger.Debug("tool self-update finished")
	}()
}
