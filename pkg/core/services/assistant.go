package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// AssistantAction is one operation the assistant can point a trip lead at.
// The assistant only ever describes actions; it never performs them.
type AssistantAction struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	keywords []string
}

var assistantActions = []AssistantAction{
	{
		Name:        "randomize",
		Description: "Draw a fresh random roster and waitlist for a trip. The draw is held for ten minutes awaiting approval and replaces any earlier draw.",
		keywords:    []string{"random", "randomise", "draw", "shuffle", "allocate", "lottery"},
	},
	{
		Name:        "approve",
		Description: "Commit the pending draw, rewriting every selected and waitlisted status on the trip's signups.",
		keywords:    []string{"approve", "confirm", "commit", "accept", "finalize", "finalise"},
	},
	{
		Name:        "promote",
		Description: "Move the next eligible participant off the waitlist onto the roster, preferring drivers while driver spots remain. Driver-only and non-driver-only variants exist.",
		keywords:    []string{"promote", "promotion", "waitlist", "next in line", "bump", "move up"},
	},
	{
		Name:        "readmit",
		Description: "Restore a dropped participant to the roster when a matching spot is open.",
		keywords:    []string{"readmit", "re-add", "readd", "restore", "undrop", "bring back"},
	},
	{
		Name:        "drop",
		Description: "Soft-remove a participant by stamping their status with today's date. The signup record is kept and the participant can be readmitted later.",
		keywords:    []string{"drop", "remove", "cancel", "withdraw", "quit", "leave"},
	},
	{
		Name:        "roster",
		Description: "Show a trip's current roster, waitlist and dropped participants with driver counts.",
		keywords:    []string{"roster", "view", "show", "who is", "signups", "list of"},
	},
}

// AssistantReply is a plain-text answer plus the actions it refers to
type AssistantReply struct {
	Answer  string            `json:"answer"`
	Actions []AssistantAction `json:"actions"`
}

// DescribeActions answers a free-text question by keyword-matching it
// against the action catalogue. Unrecognised questions get the full
// catalogue back.
func DescribeActions(logger *zap.Logger, query string) AssistantReply {
	lower := strings.ToLower(query)

	var matched []AssistantAction
	for _, action := range assistantActions {
		for _, keyword := range action.keywords {
			if strings.Contains(lower, keyword) {
				matched = append(matched, action)
				break
			}
		}
	}

	if len(matched) == 0 {
		return AssistantReply{
			Answer:  "I can describe the roster actions available to trip leads. Ask about randomizing, approving, promoting, readmitting, dropping or viewing signups.",
			Actions: assistantActions,
		}
	}

	names := make([]string, len(matched))
	for i, action := range matched {
		names[i] = action.Name
	}
	logger.Debug("Assistant matched actions",
		zap.String("query", query),
		zap.Strings("actions", names))

	return AssistantReply{
		Answer:  fmt.Sprintf("These actions look relevant: %s. I only describe actions, a trip lead has to run them.", strings.Join(names, ", ")),
		Actions: matched,
	}
}
