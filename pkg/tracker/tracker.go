// Package tracker holds the request and response models of the transfer
// tracking API and the notification rules derived from stored records.
package tracker

import (
	"github.com/chainsafe/bridge-tracker/pkg/poller"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// SelectRequest points a session at an identity.
type SelectRequest struct {
	Address     string `json:"address"`
	NetworkType string `json:"networkType"`
}

// SessionResponse describes the identity a session now polls.
type SessionResponse struct {
	Session    string            `json:"session"`
	Identity   transfer.Identity `json:"identity"`
	Generation uint64            `json:"generation"`
}

// TransfersResponse is the annotated record set of an identity. Pending is
// set while a newly selected session has not completed its first cycle.
type TransfersResponse struct {
	Pending  bool             `json:"pending"`
	Snapshot *poller.Snapshot `json:"snapshot,omitempty"`
}

// NotificationsResponse lists notifications and the unseen counter.
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Unseen        int            `json:"unseen"`
}

// MarkSeenResponse reports how many records were cleaned.
type MarkSeenResponse struct {
	Updated int `json:"updated"`
}

// ClaimResponse is returned after a successful withdrawal claim.
type ClaimResponse struct {
	Key                 string          `json:"key"`
	TxHash              string          `json:"txHash"`
	BlockNumber         uint64          `json:"blockNumber"`
	GasUsed             uint64          `json:"gasUsed"`
	Status              transfer.Status `json:"status"`
	CompletionTimestamp int64           `json:"completionTimestamp"`
}

// TokenRequest carries a signed login message.
type TokenRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// TokenResponse carries a bearer token for Address.
type TokenResponse struct {
	Token     string `json:"token"`
	Address   string `json:"address"`
	ExpiresAt int64  `json:"expiresAt"`
}
