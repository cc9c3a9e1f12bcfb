package history

import (
	"time"

	"github.com/alexanderramin/dbtalk/internal/domain"
)

// Turn is one persisted conversation turn. Turns are append-only: the
// session writes each user/assistant exchange after it completes and
// never edits it afterwards.
type Turn struct {
	ID        string
	Role      domain.Role
	Text      string
	SQL       string
	RiskTier  domain.RiskTier
	Outcome   string
	CreatedAt time.Time
}
