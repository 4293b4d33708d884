package agent

import (
	"context"
	"fmt"
	"log/slog"
)

// Run processes one user turn on the given thread. It loads the thread's
// history, appends the user message, and alternates model turns with tool
// dispatch until the model answers without a tool call. The final assistant
// text is returned and the updated history is checkpointed.
//
// Dispatch is strictly sequential: at most one tool call is honored per
// assistant turn, matching the one-call-per-message routing contract.
func (a *Agent) Run(ctx context.Context, threadID, userText string) (string, error) {
	msgs, err := a.checkpoints.Load(ctx, threadID)
	if err != nil {
		return "", fmt.Errorf("agent: load thread %q: %w", threadID, err)
	}
	msgs = append(msgs, UserMessage(userText))

	var final string
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		resp, err := a.assistantTurn(ctx, msgs)
		if err != nil {
			return "", err
		}
		msgs = append(msgs, *resp)

		route, err := Dispatch(resp)
		if err != nil {
			return "", err
		}
		if route == RouteTerminal {
			final = resp.Content
			break
		}

		call := resp.PendingCall()
		a.logger.Debug("tool dispatch",
			slog.String("thread", threadID),
			slog.String("route", route.String()),
			slog.String("tool", call.Name))

		var result Message
		switch route {
		case RouteUpdateProfile:
			result, err = a.updateProfile(ctx, msgs, call)
		case RouteUpdateInstructions:
			result, err = a.updateInstructions(ctx, msgs, call)
		case RouteCreateNote:
			result, err = a.createNote(ctx, call)
		case RouteReadNote:
			result, err = a.readNotes(ctx, call)
		case RouteSearchNotes:
			result, err = a.searchNotes(ctx, call)
		default:
			err = fmt.Errorf("agent: unhandled route %s", route)
		}
		if err != nil {
			return "", err
		}
		msgs = append(msgs, result)
	}

	if err := a.checkpoints.Save(ctx, threadID, msgs); err != nil {
		return "", fmt.Errorf("agent: save thread %q: %w", threadID, err)
	}
	return final, nil
}
