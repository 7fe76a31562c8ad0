//go:build e2e

package helper

import (
	"testing"
	"time"

	"tarifario/internal/pkg/config"
	"tarifario/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// AuthHelper mints operator tokens the way the back-office SSO service
// would, signed with the test secret.
type AuthHelper struct {
	verifier *jwt.Verifier
}

func NewAuthHelper(cfg config.JWTConfig) *AuthHelper {
	return &AuthHelper{verifier: jwt.NewVerifier(cfg.Secret)}
}

func (h *AuthHelper) MintOperatorToken(t *testing.T, operatorID uuid.UUID, name string) string {
	t.Helper()

	token, err := h.verifier.Sign(operatorID, name, time.Hour)
	require.NoError(t, err, "failed to mint operator token")
	return token
}

// LoginOperator is the common case: a fresh operator identity with a valid
// token for the duration of the test.
func (h *AuthHelper) LoginOperator(t *testing.T, name string) (uuid.UUID, string) {
	t.Helper()

	operatorID := uuid.New()
	return operatorID, h.MintOperatorToken(t, operatorID, name)
}
