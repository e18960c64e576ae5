package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/logging"
)

// Metadata is the inbound key–value bag of a request. grpc's metadata.MD
// satisfies it.
type Metadata interface {
	Get(key string) []string
}

// Rejection reasons, logged on every refused call.
const (
	ReasonNoToken        = "no-token"
	ReasonBadSignature   = "bad-signature"
	ReasonExpired        = "expired"
	ReasonWrongGrant     = "wrong-grant"
	ReasonRefreshInvalid = "refresh-invalid"
)

// Gate decides whether a request carries a usable access token. Every call
// is evaluated from scratch.
type Gate struct {
	tokens       *TokenIssuer
	logger       logging.Logger
	checkRefresh bool
}

type GateOption func(*Gate)

// WithRefreshCheck makes the gate also verify a refresh_token entry when one
// is sent next to the access token. Off by default: refresh tokens are only
// consumed by the refresh call.
func WithRefreshCheck(on bool) GateOption {
	return func(g *Gate) {
		g.checkRefresh = on
	}
}

func NewGate(tokens *TokenIssuer, l logging.Logger, opts ...GateOption) *Gate {
	g := &Gate{tokens: tokens, logger: l.With("module", "auth_gate")}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Authenticate returns nil when md holds a valid normal-grant access token
// under "authorization". Any rejection wraps common.ErrorUnauthorized and
// carries no claims.
func (g *Gate) Authenticate(ctx context.Context, md Metadata) error {
	access := firstValue(md, common.AuthorizationHeaderName)
	if access == "" {
		return g.reject(ctx, ReasonNoToken, nil)
	}

	claims, err := g.tokens.Verify(access)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return g.reject(ctx, ReasonExpired, err)
		}
		return g.reject(ctx, ReasonBadSignature, err)
	}
	if claims.GrantType != GrantNormal {
		return g.reject(ctx, ReasonWrongGrant, nil)
	}

	if g.checkRefresh {
		if refresh := firstValue(md, common.RefreshTokenHeaderName); refresh != "" {
			rc, err := g.tokens.Verify(refresh)
			if err != nil {
				return g.reject(ctx, ReasonRefreshInvalid, err)
			}
			if rc.GrantType != GrantRefresh {
				return g.reject(ctx, ReasonRefreshInvalid, nil)
			}
		}
	}

	return nil
}

func (g *Gate) reject(ctx context.Context, reason string, cause error) error {
	args := []any{"reason", reason}
	if cause != nil {
		args = append(args, "error", cause.Error())
	}
	g.logger.Info(ctx, "request rejected", args...)

	return fmt.Errorf("%w: %s", common.ErrorUnauthorized, reason)
}

func firstValue(md Metadata, key string) string {
	if md == nil {
		return ""
	}
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(values[0], "Bearer "))
}
