package agent

import (
	"encoding/json"

	"github.com/starford/ansuz/internal/apperr"
)

// Route identifies the handler a tool invocation dispatches to.
type Route int

const (
	// RouteTerminal ends the loop: the assistant replied without a tool call.
	RouteTerminal Route = iota
	RouteUpdateProfile
	RouteUpdateInstructions
	RouteCreateNote
	RouteReadNote
	RouteSearchNotes
)

func (r Route) String() string {
	switch r {
	case RouteTerminal:
		return "terminal"
	case RouteUpdateProfile:
		return "update_profile"
	case RouteUpdateInstructions:
		return "update_instructions"
	case RouteCreateNote:
		return "create_note"
	case RouteReadNote:
		return "read_note"
	case RouteSearchNotes:
		return "search_notes"
	}
	return "unknown"
}

// Dispatch decides the next handler from the latest assistant message. It is
// a pure function of the message: no tool call is terminal, a recognized
// invocation routes to exactly one handler, and anything else is a
// *apperr.RoutingError (fatal, the conversation cannot proceed).
//
// The decision branches on the discriminating argument fields rather than
// the tool name: the memory-update discriminator first, then the create-note
// payload (which also carries a note name, so it must win over the plain
// note-name branch), then a note name, then keywords.
func Dispatch(msg *Message) (Route, error) {
	call := msg.PendingCall()
	if call == nil {
		return RouteTerminal, nil
	}

	var bag map[string]json.RawMessage
	if err := json.Unmarshal(call.Args, &bag); err != nil {
		return 0, &apperr.RoutingError{Tool: call.Name}
	}

	if raw, ok := bag["update_type"]; ok {
		var updateType string
		if err := json.Unmarshal(raw, &updateType); err != nil {
			return 0, &apperr.RoutingError{Tool: call.Name}
		}
		switch updateType {
		case "user":
			return RouteUpdateProfile, nil
		case "instructions":
			return RouteUpdateInstructions, nil
		default:
			return 0, &apperr.RoutingError{Tool: call.Name}
		}
	}
	if _, ok := bag["note_text"]; ok {
		return RouteCreateNote, nil
	}
	if _, ok := bag["note_name"]; ok {
		return RouteReadNote, nil
	}
	if _, ok := bag["keywords"]; ok {
		return RouteSearchNotes, nil
	}
	return 0, &apperr.RoutingError{Tool: call.Name}
}
