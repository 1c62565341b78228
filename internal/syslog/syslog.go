// Package syslog retrieves and merges platform component logs.
//
// Each component writes to <logsdir>/<component>/<component>_logs.log. The
// reader concatenates the requested components' lines, optionally filtered by
// transaction id or a grep expression, and merges them into one stream sorted
// stably by each line's leading timestamp.
package syslog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
)

// timestampPattern matches the RFC3339-with-milliseconds timestamps the
// platform components prefix their log lines with.
var timestampPattern = regexp.MustCompile(
	`\d{4}-[01]\d-[0-3]\dT[0-2]\d:[0-6]\d:[0-6]\d\.\d{3}Z`,
)

// Reader retrieves component log files from the configured logs directory.
type Reader struct {
	logsDir string
}

// NewReader creates a Reader over the given logs directory.
func NewReader(logsDir string) *Reader {
	return &Reader{logsDir: logsDir}
}

// ComponentLogs reads one component's log file and returns its lines,
// filtered by transaction id when tid is set, or by grep expression when
// grepExpr is set. A missing log file is reported as ErrNotFound.
func (r *Reader) ComponentLogs(component, tid, grepExpr string) ([]string, error) {
	path := filepath.Join(r.logsDir, component, component+"_logs.log")

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, fmt.Sprintf("no log file for %q", component))
		}
		return nil, apperrors.Wrap(err, fmt.Sprintf("failed to read logs for %q", component))
	}

	var matcher func(string) bool
	switch {
	case tid != "":
		marker := fmt.Sprintf("[#tid_%s]", tid)
		matcher = func(line string) bool { return strings.Contains(line, marker) }
	case grepExpr != "":
		pattern, err := regexp.Compile(grepExpr)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("bad grep expression: %v", err))
		}
		matcher = pattern.MatchString
	default:
		matcher = func(string) bool { return true }
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if line != "" && matcher(line) {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// ExtractTimestamp returns the first timestamp found in the line, or the
// empty string when the line carries none.
func ExtractTimestamp(line string) string {
	return timestampPattern.FindString(line)
}

// Merge stably sorts the lines of all streams by their extracted timestamp
// and joins them. Lines without a parseable timestamp sort earliest,
// preserving their input order among themselves.
func Merge(streams ...[]string) string {
	var lines []string
	for _, stream := range streams {
		lines = append(lines, stream...)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return ExtractTimestamp(lines[i]) < ExtractTimestamp(lines[j])
	})

	return strings.Join(lines, "\n")
}
