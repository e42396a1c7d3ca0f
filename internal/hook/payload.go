package hook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leapstack-labs/scafflint/pkg/core"
)

// Event is the lifecycle payload the agent runtime pipes to the hook on
// stdin.
type Event struct {
	HookEventName string    `json:"hook_event_name"`
	ToolName      string    `json:"tool_name"`
	CWD           string    `json:"cwd"`
	ToolInput     ToolInput `json:"tool_input"`
}

// ToolInput carries the file operation the agent is performing. Content is
// only present on Write events; Edit events carry replacement fragments
// that are useless for checking, so after-edit always re-reads the file.
type ToolInput struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
}

// ParseEvent decodes a lifecycle event from r.
func ParseEvent(r io.Reader) (Event, error) {
	var ev Event
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ev); err != nil {
		return Event{}, fmt.Errorf("decode hook event: %w", err)
	}
	return ev, nil
}

// Phase maps the event/tool pair onto a check phase. The second result is
// false for tools and events the engine does not check (reads, shell
// commands, unrelated lifecycle events).
func (e Event) Phase() (core.Phase, bool) {
	write := false
	switch e.ToolName {
	case "Write":
		write = true
	case "Edit", "MultiEdit":
	default:
		return 0, false
	}

	switch e.HookEventName {
	case "PreToolUse":
		if write {
			return core.PhaseBeforeWrite, true
		}
		return core.PhaseBeforeEdit, true
	case "PostToolUse":
		if write {
			return core.PhaseAfterWrite, true
		}
		return core.PhaseAfterEdit, true
	default:
		return 0, false
	}
}
