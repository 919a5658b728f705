package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/nutscript/helix-logs/internal/domain"
	"github.com/nutscript/helix-logs/internal/steamid"
)

func formatTimestamp(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("15:04:05")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FormatLogEntry renders one log line for the plain-text export. Most
// types are already prose in the text column; connect, disconnect and
// characterLoaded rows carry their interesting parts in the lookup
// fields.
func FormatLogEntry(entry domain.LogEntry) string {
	timestamp := formatTimestamp(entry.Datetime)

	switch entry.LogType {
	case domain.LogTypeConnect:
		return fmt.Sprintf("[%s] %s has connected.", timestamp, deref(entry.Lookup1))

	case domain.LogTypeDisconnect:
		suffix := ""
		if id, err := steamid.Parse(entry.SteamID); err == nil {
			suffix = fmt.Sprintf(" (%s)", id.Steam2())
		}
		return fmt.Sprintf("[%s] %s%s", timestamp, deref(entry.Text), suffix)

	case domain.LogTypeCharacterLoaded:
		return fmt.Sprintf("[%s] %s loaded the character '%s'", timestamp, deref(entry.Lookup1), deref(entry.Lookup2))

	default:
		return fmt.Sprintf("[%s] %s", timestamp, deref(entry.Text))
	}
}

// FormatLogs renders the export body. Rows with no text content are
// skipped regardless of type.
func FormatLogs(logs []domain.LogEntry) string {
	lines := make([]string, 0, len(logs))

	for _, entry := range logs {
		if entry.Text == nil {
			continue
		}
		lines = append(lines, FormatLogEntry(entry))
	}

	return strings.Join(lines, "\n")
}
