package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"

	"eatsandthinks/internal/domain"
)

const (
	// ExitSuccess is returned when the command succeeds.
	ExitSuccess = 0
	// ExitNotFound is returned when the requested place or section does not exist.
	ExitNotFound = 1
	// ExitInvalidArgs is returned when the command input is invalid.
	ExitInvalidArgs = 2
	// ExitUpstream is returned when the places API fails.
	ExitUpstream = 3
	// ExitInternal is returned for unexpected internal failures.
	ExitInternal = 4
)

type cliError struct {
	Code        string
	Message     string
	Suggestions []string
	ExitCode    int
}

func (e *cliError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidArgsError(message string, suggestions ...string) error {
	return &cliError{Code: "INVALID_ARGS", Message: message, Suggestions: suggestions, ExitCode: ExitInvalidArgs}
}

func notFoundError(message string, suggestions ...string) error {
	return &cliError{Code: "NOT_FOUND", Message: message, Suggestions: suggestions, ExitCode: ExitNotFound}
}

// upstreamError classifies a places API failure. Not-found from upstream is
// reported as such rather than as an outage.
func upstreamError(action string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFoundError(fmt.Sprintf("%s: %v", action, err))
	}
	suggestions := []string{"Retry in a moment."}
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden) {
		suggestions = []string{"Check EATS_API_TOKEN or pass --token."}
	}
	return &cliError{
		Code:        "UPSTREAM_ERROR",
		Message:     fmt.Sprintf("%s: %v", action, err),
		Suggestions: suggestions,
		ExitCode:    ExitUpstream,
	}
}

type jsonErrorPayload struct {
	Error jsonErrorBody `json:"error"`
}

type jsonErrorBody struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	ExitCode    int      `json:"exitCode"`
}

func printCLIErrorJSON(w io.Writer, err *cliError) error {
	if err == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(jsonErrorPayload{Error: jsonErrorBody{
		Code:        err.Code,
		Message:     err.Message,
		Suggestions: err.Suggestions,
		ExitCode:    err.ExitCode,
	}})
}

func formatCLIErrorText(err *cliError) string {
	if err == nil {
		return ""
	}
	lines := []string{fmt.Sprintf("error[%s]: %s", strings.ToLower(err.Code), err.Message)}
	if len(err.Suggestions) > 0 {
		lines = append(lines, "suggestions:")
		for _, s := range err.Suggestions {
			lines = append(lines, "  "+s)
		}
	}
	return strings.Join(lines, "\n")
}

func classifyCLIError(err error) *cliError {
	if err == nil {
		return nil
	}

	var typed *cliError
	if errors.As(err, &typed) {
		return typed
	}

	msg := strings.TrimSpace(err.Error())
	switch {
	case strings.Contains(msg, "unknown command"):
		suggestions := []string{"eatsctl resolve pizzeria", "eatsctl home"}
		if bad := extractUnknownValue(msg, "unknown command"); bad != "" {
			if s, ok := closestMatch(strings.ToLower(bad), knownCommands, 2); ok {
				suggestions = append([]string{fmt.Sprintf("Did you mean `%s`?", s)}, suggestions...)
			}
		}
		return &cliError{Code: "INVALID_ARGS", Message: msg, Suggestions: suggestions, ExitCode: ExitInvalidArgs}
	case strings.Contains(msg, "unknown flag"),
		strings.Contains(msg, "unknown shorthand flag"),
		strings.Contains(msg, "flag needs an argument"),
		strings.Contains(msg, "invalid argument"),
		strings.Contains(msg, "accepts"),
		strings.Contains(msg, "requires at least"):
		return &cliError{
			Code:        "INVALID_ARGS",
			Message:     msg,
			Suggestions: []string{"Run `eatsctl --help` for usage details."},
			ExitCode:    ExitInvalidArgs,
		}
	default:
		return &cliError{
			Code:        "INTERNAL_ERROR",
			Message:     msg,
			Suggestions: []string{"Run `eatsctl --help` for usage details."},
			ExitCode:    ExitInternal,
		}
	}
}

// extractUnknownValue pulls the quoted token out of a cobra error such as
// `unknown command "hom" for "eatsctl"`.
func extractUnknownValue(msg, marker string) string {
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(marker):]
	start := strings.IndexByte(rest, '"')
	if start < 0 {
		return ""
	}
	rest = rest[start+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return ""
	}
	return rest[:end]
}

func closestMatch(target string, candidates []string, maxDistance int) (string, bool) {
	best, bestDist := "", maxDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(target, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
