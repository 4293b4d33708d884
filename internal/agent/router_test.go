package agent

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/starford/ansuz/internal/apperr"
)

func callMsg(name, args string) *Message {
	return &Message{
		Role:      RoleAssistant,
		ToolCalls: []ToolCall{{ID: "call-1", Name: name, Args: json.RawMessage(args)}},
	}
}

func TestDispatch(t *testing.T) {
	cases := []struct {
		name    string
		msg     *Message
		want    Route
		wantErr bool
	}{
		{
			name: "no tool call is terminal",
			msg:  &Message{Role: RoleAssistant, Content: "done"},
			want: RouteTerminal,
		},
		{
			name: "update_type user",
			msg:  callMsg(ToolUpdateMemory, `{"update_type":"user"}`),
			want: RouteUpdateProfile,
		},
		{
			name: "update_type instructions",
			msg:  callMsg(ToolUpdateMemory, `{"update_type":"instructions"}`),
			want: RouteUpdateInstructions,
		},
		{
			name:    "update_type unknown value",
			msg:     callMsg(ToolUpdateMemory, `{"update_type":"other"}`),
			wantErr: true,
		},
		{
			name: "note_text wins over note_name",
			msg:  callMsg(ToolCreateNote, `{"note_name":"Trip","note_text":"Pack light."}`),
			want: RouteCreateNote,
		},
		{
			name: "note_name alone reads",
			msg:  callMsg(ToolReadNote, `{"note_name":"Trip","depth":1}`),
			want: RouteReadNote,
		},
		{
			name: "keywords searches",
			msg:  callMsg(ToolSearchNotes, `{"keywords":"travel","k":3}`),
			want: RouteSearchNotes,
		},
		{
			name:    "empty argument bag",
			msg:     callMsg("Mystery", `{}`),
			wantErr: true,
		},
		{
			name:    "malformed argument bag",
			msg:     callMsg("Mystery", `not json`),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Dispatch(tc.msg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected routing error, got route %s", got)
				}
				var re *apperr.RoutingError
				if !errors.As(err, &re) {
					t.Fatalf("expected *apperr.RoutingError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("route = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDispatchTypedUpdateType(t *testing.T) {
	// update_type that is present but not a string is fatal, not ignored.
	_, err := Dispatch(callMsg(ToolUpdateMemory, `{"update_type":42}`))
	if err == nil {
		t.Fatal("expected routing error for non-string update_type")
	}
}
