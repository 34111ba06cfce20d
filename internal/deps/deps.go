// Package deps reports availability of the external binaries ytsubs shells
// out to. The server starts even when a dependency is missing; affected
// calls fail with a tool_unavailable error until the operator fixes PATH.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency ytsubs relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Path        string
	Detail      string
}

// Requirements returns the dependency set for the given tool binary.
func Requirements(toolBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "yt-dlp",
			Command:     toolBinary,
			Description: "video metadata and subtitle extraction",
		},
	}
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}
