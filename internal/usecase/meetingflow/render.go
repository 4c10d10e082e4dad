package meetingflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

const (
	bullet      = "• "
	titleLayout = "January 02, 2006 at 03:04 PM"
)

// RenderSummary renders one bullet line per note in arrival order
func RenderSummary(notes []entities.Note) string {
	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = bullet + n.Text
	}
	return strings.Join(lines, "\n")
}

// MeetingTitle names a meeting after the moment it was confirmed
func MeetingTitle(now time.Time) string {
	return "Meeting - " + now.Format(titleLayout)
}

// NotesText joins note texts with newlines
func NotesText(notes []entities.Note) string {
	texts := make([]string, len(notes))
	for i, n := range notes {
		texts[i] = n.Text
	}
	return strings.Join(texts, "\n")
}

// EmailSubject is the subject of the minutes email
func EmailSubject(title string) string {
	return "Meeting Minutes - " + title
}

// EmailBody is the minutes email addressed to one attendee
func EmailBody(attendeeName, minutes, senderName string) string {
	return fmt.Sprintf(`Dear %s,

Please find the Minutes of the Meeting below:

%s

From %s

Best regards,
Jarvis AI Assistant`, attendeeName, minutes, senderName)
}

// normalizeNames trims names, drops blanks and keeps the first of any
// case-insensitive duplicates
func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}

// withEmail returns attendees with name resolved to email. An existing
// entry for the same name, ignoring case, is replaced; name leaves the
// unresolved list.
func withEmail(p entities.AttendeesPayload, name, email string) entities.AttendeesPayload {
	resolved := make([]entities.Attendee, 0, len(p.Resolved)+1)
	replaced := false
	for _, a := range p.Resolved {
		if strings.EqualFold(a.Name, name) {
			a.Email = email
			replaced = true
		}
		resolved = append(resolved, a)
	}
	if !replaced {
		resolved = append(resolved, entities.Attendee{Name: name, Email: email})
	}

	unresolved := make([]string, 0, len(p.Unresolved))
	for _, u := range p.Unresolved {
		if !strings.EqualFold(u, name) {
			unresolved = append(unresolved, u)
		}
	}

	return entities.AttendeesPayload{Resolved: resolved, Unresolved: unresolved}
}
