package workflow

import "strings"

// Status is the server-reported lifecycle value of a project. The client
// treats it as opaque input: it is never assigned locally, only interpreted.
type Status string

const (
	StatusCreated               Status = "created"
	StatusPromptsGenerated      Status = "prompts_generated"
	StatusImagePromptsGenerated Status = "image_prompts_generated"
	StatusImagesGenerated       Status = "images_generated"
	StatusVideoPromptsGenerated Status = "video_prompts_generated"
	StatusVideosGenerated       Status = "videos_generated"
	StatusCompleted             Status = "completed"
	StatusFailed                Status = "failed"
)

var knownStatuses = []Status{
	StatusCreated,
	StatusPromptsGenerated,
	StatusImagePromptsGenerated,
	StatusImagesGenerated,
	StatusVideoPromptsGenerated,
	StatusVideosGenerated,
	StatusCompleted,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(knownStatuses))
	for _, status := range knownStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// terminalStatuses are the values after which the backend performs no further
// automatic processing. videos_generated and completed are equivalent for the
// poller and the views.
var terminalStatuses = map[Status]struct{}{
	StatusVideosGenerated: {},
	StatusCompleted:       {},
	StatusFailed:          {},
}

// KnownStatuses returns the ordered list of recognized status values.
func KnownStatuses() []Status {
	cp := make([]Status, len(knownStatuses))
	copy(cp, knownStatuses)
	return cp
}

// ParseStatus normalizes a raw status string and reports whether it is a
// recognized value. Unrecognized values are still usable; callers fall back
// to the generic processing phase for them.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// IsTerminal reports whether no further automatic processing follows status.
func IsTerminal(status Status) bool {
	normalized, _ := ParseStatus(string(status))
	_, ok := terminalStatuses[normalized]
	return ok
}

// TerminalStatuses returns the set of terminal values in stable order.
func TerminalStatuses() []Status {
	return []Status{StatusVideosGenerated, StatusCompleted, StatusFailed}
}
