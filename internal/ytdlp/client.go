package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// DefaultBinary is the tool executable resolved on PATH when no override is
// configured.
const DefaultBinary = "yt-dlp"

// Extractor abstracts the external extraction tool so callers and tests can
// substitute a fake without spawning subprocesses.
type Extractor interface {
	// ExtractMetadata fetches the video's metadata dump without downloading.
	ExtractMetadata(ctx context.Context, ref string) (Metadata, error)
	// ListTracks reports the manually authored and auto-generated subtitle
	// tracks, each in the order the tool reports them.
	ListTracks(ctx context.Context, ref string) (manual, auto []Track, err error)
	// FetchTrack downloads the subtitle track for the given language and
	// returns its SRT payload. Manually authored tracks win over
	// auto-generated ones when both exist.
	FetchTrack(ctx context.Context, ref, lang string) ([]byte, error)
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (stdout, stderr []byte, err error)
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

// Client wraps yt-dlp CLI interactions. Safe for concurrent use: every call
// owns its working state and temp files carry collision-resistant names.
type Client struct {
	binary  string
	tempDir string
	timeout time.Duration
	exec    Executor
}

// New constructs a yt-dlp client. An empty binary falls back to DefaultBinary
// and an empty tempDir to the system temp directory.
func New(binary, tempDir string, timeoutSeconds int, opts ...Option) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	tempDir = strings.TrimSpace(tempDir)
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	client := &Client{
		binary:  binary,
		tempDir: tempDir,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Binary returns the configured tool executable.
func (c *Client) Binary() string { return c.binary }

// baseArgs apply to every invocation: never download media, never recurse
// into playlists, keep stderr to genuine errors.
func baseArgs() []string {
	return []string{"--skip-download", "--no-warnings", "--no-progress", "--no-playlist"}
}

// ExtractMetadata implements Extractor.
func (c *Client) ExtractMetadata(ctx context.Context, ref string) (Metadata, error) {
	if strings.TrimSpace(ref) == "" {
		return Metadata{}, Wrap(ErrExtraction, "extract metadata", "video reference required", nil)
	}
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	args := append(baseArgs(), "--dump-single-json", ref)
	stdout, stderr, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		return Metadata{}, c.classify(ctx, "extract metadata", stderr, err)
	}
	return parseMetadata(stdout)
}

// ListTracks implements Extractor. Track enumeration rides on the same
// metadata dump; there is no cheaper listing mode that reports both manual
// and auto-generated tracks.
func (c *Client) ListTracks(ctx context.Context, ref string) ([]Track, []Track, error) {
	md, err := c.ExtractMetadata(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	return md.Manual, md.Auto, nil
}

// errNoFile signals that the tool ran cleanly but produced no subtitle file,
// which is how yt-dlp reports an absent track for the requested language.
var errNoFile = errors.New("no subtitle file produced")

// FetchTrack implements Extractor. The manually authored track is attempted
// first; only when the tool produces no file does the call retry against the
// auto-generated track.
func (c *Client) FetchTrack(ctx context.Context, ref, lang string) ([]byte, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, Wrap(ErrExtraction, "fetch track", "video reference required", nil)
	}
	if strings.TrimSpace(lang) == "" {
		return nil, Wrap(ErrLanguageNotAvailable, "fetch track", "language code required", nil)
	}
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	base := filepath.Join(c.tempDir, "ytsubs-"+uuid.NewString())
	defer cleanupOutputs(base)

	data, err := c.fetchWith(ctx, ref, lang, base, "--write-subs")
	if err == nil || !errors.Is(err, errNoFile) {
		return data, err
	}
	data, err = c.fetchWith(ctx, ref, lang, base, "--write-auto-subs")
	if errors.Is(err, errNoFile) {
		return nil, Wrap(ErrLanguageNotAvailable, "fetch track",
			fmt.Sprintf("no %q subtitle track, manual or auto-generated", lang), nil)
	}
	return data, err
}

func (c *Client) fetchWith(ctx context.Context, ref, lang, base, writeFlag string) ([]byte, error) {
	args := append(baseArgs(),
		writeFlag,
		"--sub-langs", lang,
		"--convert-subs", "srt",
		"--output", base,
		ref,
	)
	_, stderr, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		return nil, c.classify(ctx, "fetch track", stderr, err)
	}

	matches, err := filepath.Glob(base + "*.srt")
	if err != nil {
		return nil, Wrap(ErrExtraction, "fetch track", "inspect outputs", err)
	}
	if len(matches) == 0 {
		return nil, errNoFile
	}
	sort.Strings(matches)
	data, err := os.ReadFile(matches[0])
	if err != nil {
		return nil, Wrap(ErrExtraction, "fetch track", "read subtitle file", err)
	}
	return data, nil
}

// Version reports the tool version, used for the startup dependency log.
func (c *Client) Version(ctx context.Context) (string, error) {
	ctx, cancel := c.opContext(ctx)
	defer cancel()
	stdout, stderr, err := c.exec.Run(ctx, c.binary, []string{"--version"})
	if err != nil {
		return "", c.classify(ctx, "tool version", stderr, err)
	}
	return strings.TrimSpace(string(stdout)), nil
}

func (c *Client) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

func (c *Client) classify(ctx context.Context, operation string, stderr []byte, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return Wrap(ErrTimeout, operation, fmt.Sprintf("no result after %s", c.timeout), nil)
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return Wrap(ErrToolUnavailable, operation,
			fmt.Sprintf("binary %q not found or not executable", c.binary), err)
	}
	if detail := toolErrorLine(stderr); detail != "" {
		return Wrap(ErrExtraction, operation, detail, nil)
	}
	return Wrap(ErrExtraction, operation, "", err)
}

// toolErrorLine extracts the last ERROR: line from the tool's stderr, which
// carries the operator-facing reason (private video, bad URL, geo block).
func toolErrorLine(stderr []byte) string {
	var last string
	for _, line := range strings.Split(string(stderr), "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "ERROR:"); ok {
			last = strings.TrimSpace(rest)
		}
	}
	return last
}

func cleanupOutputs(base string) {
	matches, err := filepath.Glob(base + "*")
	if err != nil {
		return
	}
	for _, path := range matches {
		_ = os.Remove(path)
	}
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	// Run the tool in its own process group so cancellation also reaps the
	// conversion children it spawns.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
