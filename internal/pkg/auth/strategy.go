package auth

import (
	"errors"
	"time"

	"github.com/plateful/takeaway/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Session is the authenticated identity carried by a token.
type Session struct {
	UserID int64
	Role   model.Role
}

// Strategy issues and verifies session tokens.
type Strategy interface {
	IssueToken(session Session) (string, error)
	ParseToken(token string) (Session, error)
	Name() string
}

// Options tune token issuance.
type Options struct {
	TTL time.Duration
}
