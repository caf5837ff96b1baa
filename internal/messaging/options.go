package messaging

import (
	"fmt"
	"strings"
)

// HistoricSyncPolicy controls how much message history is fetched once a user
// is authenticated.
type HistoricSyncPolicy int

const (
	// AllMessages syncs the full history.
	AllMessages HistoricSyncPolicy = iota
	// FromLastMessage syncs only the last message of each conversation.
	FromLastMessage
	// FromEarliestUnreadMessage syncs from the first unread message onward.
	FromEarliestUnreadMessage
)

var syncPolicyNames = map[HistoricSyncPolicy]string{
	FromEarliestUnreadMessage: "from_earliest_unread_message",
	FromLastMessage:           "from_last_message",
	AllMessages:               "all_messages",
}

func (p HistoricSyncPolicy) String() string {
	if name, ok := syncPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("HistoricSyncPolicy(%d)", int(p))
}

// ParseHistoricSyncPolicy parses a policy name. The empty string yields the
// default [AllMessages].
func ParseHistoricSyncPolicy(s string) (HistoricSyncPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AllMessages, nil
	}
	for policy, name := range syncPolicyNames {
		if name == s {
			return policy, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSyncPolicy, s)
}

// Options is the option bundle passed on client construction.
type Options struct {
	// PushSenderID is the push-messaging project number. The client works
	// without it; only background notifications are lost.
	PushSenderID string
	// HistoricSyncPolicy selects how much history to fetch after
	// authentication.
	HistoricSyncPolicy HistoricSyncPolicy
}
