package authhandler

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"event-staffing-bff/models"
)

const testSecret = "unit-test-secret"

func signedToken(t *testing.T, sub map[string]interface{}, secret string, method jwt.SigningMethod) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.Nil(t, err)
	return signed
}

func TestDecodeSession(t *testing.T) {
	NewHandler(testSecret)

	t.Run(`valid token yields the typed session`, func(t *testing.T) {
		token := signedToken(t, map[string]interface{}{
			"username": "johndoe",
			"role":     "recruiter",
			"user_id":  float64(42),
		}, testSecret, jwt.SigningMethodHS256)

		session, err := Instance.DecodeSession(token)
		require.Nil(t, err)
		require.Equal(t, "johndoe", session.Username)
		require.Equal(t, models.UserRoleRecruiter, session.Role)
		require.Equal(t, int64(42), session.UserID)
	})

	t.Run(`role is normalized`, func(t *testing.T) {
		token := signedToken(t, map[string]interface{}{
			"username": "johndoe",
			"role":     "HR_Manager",
		}, testSecret, jwt.SigningMethodHS256)

		session, err := Instance.DecodeSession(token)
		require.Nil(t, err)
		require.Equal(t, models.UserRoleHRManager, session.Role)
	})

	t.Run(`wrong secret is rejected`, func(t *testing.T) {
		token := signedToken(t, map[string]interface{}{
			"username": "johndoe",
			"role":     "worker",
		}, "other-secret", jwt.SigningMethodHS256)

		_, err := Instance.DecodeSession(token)
		require.NotNil(t, err)
	})

	t.Run(`missing username is rejected`, func(t *testing.T) {
		token := signedToken(t, map[string]interface{}{
			"role": "worker",
		}, testSecret, jwt.SigningMethodHS256)

		_, err := Instance.DecodeSession(token)
		require.NotNil(t, err)
	})

	t.Run(`unknown role is rejected`, func(t *testing.T) {
		token := signedToken(t, map[string]interface{}{
			"username": "johndoe",
			"role":     "superadmin",
		}, testSecret, jwt.SigningMethodHS256)

		_, err := Instance.DecodeSession(token)
		require.NotNil(t, err)
	})

	t.Run(`garbage token is rejected`, func(t *testing.T) {
		_, err := Instance.DecodeSession("not.a.token")
		require.NotNil(t, err)
	})
}

func TestSessionRegistry(t *testing.T) {
	t.Run(`touched sessions are active within the window`, func(t *testing.T) {
		registry := &SessionRegistry{}
		registry.Touch(models.UserSession{Username: "johndoe", Role: models.UserRoleWorker}, "token-1")

		active := registry.Active(time.Minute)
		require.Equal(t, 1, len(active))
		require.Equal(t, "johndoe", active[0].Session.Username)
		require.Equal(t, "token-1", active[0].Token)
	})

	t.Run(`stale sessions are dropped`, func(t *testing.T) {
		registry := &SessionRegistry{}
		registry.Touch(models.UserSession{Username: "johndoe"}, "token-1")

		active := registry.Active(-time.Second)
		require.Equal(t, 0, len(active))

		// dropped entries do not come back with a wider window
		active = registry.Active(time.Hour)
		require.Equal(t, 0, len(active))
	})

	t.Run(`forget removes the session`, func(t *testing.T) {
		registry := &SessionRegistry{}
		registry.Touch(models.UserSession{Username: "johndoe"}, "token-1")
		registry.Forget("johndoe")
		require.Equal(t, 0, len(registry.Active(time.Minute)))
	})

	t.Run(`touch refreshes the token`, func(t *testing.T) {
		registry := &SessionRegistry{}
		registry.Touch(models.UserSession{Username: "johndoe"}, "token-1")
		registry.Touch(models.UserSession{Username: "johndoe"}, "token-2")

		active := registry.Active(time.Minute)
		require.Equal(t, 1, len(active))
		require.Equal(t, "token-2", active[0].Token)
	})
}
