package authhandler

import (
	"context"
	"testing"
	"time"

	"broilink-backend/lib/rbac"
	"broilink-backend/lib/session"
	usersstore "broilink-backend/lib/users/store"
	authutils "broilink-backend/lib/utils/auth-utils"
	"broilink-backend/lib/utils/kvstore"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	authapimodels "broilink-backend/models/api/auth"
	dbmodels "broilink-backend/models/db"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	ctx := context.Background()
	conn := testdb.New(t)
	users := usersstore.NewInstance(conn)
	hash, err := authutils.HashPassword("rahasia1")
	require.NoError(t, err)
	peternakID, err := users.Create(dbmodels.User{
		Username: "siti",
		Name:     "Siti Aminah",
		Password: hash,
		Role:     models.PeternakRole,
		Status:   models.UserActiveStatus,
	})
	require.NoError(t, err)
	_, err = users.Create(dbmodels.User{
		Username: "nonaktif",
		Name:     "Akun Nonaktif",
		Password: hash,
		Role:     models.OwnerRole,
		Status:   models.UserInactiveStatus,
	})
	require.NoError(t, err)

	sessions := session.NewInstance(kvstore.NewMemory())
	provider := NewInstance(users, sessions, rbac.NewInstance(), "secret", time.Hour)

	t.Run(`wrong credentials`, func(t *testing.T) {
		_, err := provider.Login(ctx, authapimodels.LoginRequest{Username: "siti", Password: "salah"})
		require.ErrorIs(t, err, models.ErrUnauthorized)
		require.Equal(t, invalidCredentialsMsg, err.Error())

		_, err = provider.Login(ctx, authapimodels.LoginRequest{Username: "tidakada", Password: "rahasia1"})
		require.ErrorIs(t, err, models.ErrUnauthorized)
	})
	t.Run(`inactive account`, func(t *testing.T) {
		_, err := provider.Login(ctx, authapimodels.LoginRequest{Username: "nonaktif", Password: "rahasia1"})
		require.ErrorIs(t, err, models.ErrForbidden)
	})
	t.Run(`login, session and logout`, func(t *testing.T) {
		resp, err := provider.Login(ctx, authapimodels.LoginRequest{Username: "SITI", Password: "rahasia1"})
		require.NoError(t, err)
		require.Equal(t, peternakID, resp.User.ID)
		require.Equal(t, "/peternak", resp.DashboardPath)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, peternakID, claims["sub"])
		require.Equal(t, "Peternak", claims["role"])
		sessionID := claims["jti"].(string)

		require.NoError(t, provider.ValidateSession(ctx, sessionID, peternakID))
		require.ErrorIs(t, provider.ValidateSession(ctx, sessionID, "other"), models.ErrUnauthorized)

		rec, err := users.GetByID(peternakID)
		require.NoError(t, err)
		require.NotNil(t, rec.LastLogin)

		require.NoError(t, provider.Logout(ctx, sessionID))
		require.ErrorIs(t, provider.ValidateSession(ctx, sessionID, peternakID), models.ErrUnauthorized)
	})
	t.Run(`me`, func(t *testing.T) {
		me, err := provider.Me(peternakID)
		require.NoError(t, err)
		require.Equal(t, "Siti Aminah", me.User.Name)
		require.Contains(t, me.Permissions, models.ReportsModule)

		_, err = provider.Me("missing")
		require.ErrorIs(t, err, models.ErrUnauthorized)
	})
}
