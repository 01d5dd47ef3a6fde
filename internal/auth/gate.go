package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// APIKeyUserID identifies callers authenticated by the static admin API key.
var APIKeyUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("portfolio:admin-api-key"))

// Gate turns a bearer credential into a verified identity. A credential is
// first checked as a JWT, then against the admin API key hash when one is
// configured.
type Gate struct {
	log        *slog.Logger
	signer     *Signer
	adminRole  string
	apiKeyHash []byte
}

// NewGate creates a Gate. An empty apiKeyHash disables API key auth.
func NewGate(log *slog.Logger, signer *Signer, adminRole, apiKeyHash string) *Gate {
	g := &Gate{
		log:       log.With("component", "auth_gate"),
		signer:    signer,
		adminRole: adminRole,
	}
	if apiKeyHash != "" {
		g.apiKeyHash = []byte(apiKeyHash)
	}
	return g
}

// ValidateToken returns the caller identity or an error wrapping
// domain.ErrUnauthorized.
func (g *Gate) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, fmt.Errorf("empty credential: %w", domain.ErrUnauthorized)
	}

	claims, jwtErr := g.signer.Parse(token)
	if jwtErr == nil {
		return domain.Identity{UserID: claims.UserID, Role: g.roleOf(claims.Role)}, nil
	}

	if g.apiKeyHash != nil && !looksLikeJWT(token) {
		if err := bcrypt.CompareHashAndPassword(g.apiKeyHash, []byte(token)); err == nil {
			return domain.Identity{UserID: APIKeyUserID, Role: domain.UserRoleAdmin}, nil
		}
	}

	g.log.DebugContext(ctx, "credential rejected", slog.String("error", jwtErr.Error()))
	return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, jwtErr)
}

func (g *Gate) roleOf(claim string) domain.UserRole {
	if claim != "" && claim == g.adminRole {
		return domain.UserRoleAdmin
	}
	return domain.UserRoleUser
}

func looksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2
}

// HashAPIKey produces the bcrypt hash stored in auth.admin_api_key_hash.
func HashAPIKey(key string) (string, error) {
	if len(key) < 16 {
		return "", fmt.Errorf("api key must be at least 16 characters")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash api key: %w", err)
	}
	return string(h), nil
}
