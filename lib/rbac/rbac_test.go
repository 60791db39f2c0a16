package rbac

import (
	"testing"

	"broilink-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/admin/farms/{id}/config [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		require.True(t, r1.MatchString("/api/admin/farms/123-321/config"))
		require.False(t, r1.MatchString("/api/admin/farms/config"))
		require.False(t, r1.MatchString("/api/admin/farms/1/config/reset"))

		path, method, err = parseSwaggerPattern("/api/peternak/reports/date/{date} [get]")
		require.Nil(t, err)
		require.Equal(t, GET, method)
		r2 := pathToRegex(path)
		require.True(t, r2.MatchString("/api/peternak/reports/date/2025-11-20"))
		require.False(t, r2.MatchString("/api/peternak/reports/date"))
	})
	t.Run(`invalid pattern`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/admin/farms")
		require.Error(t, err)
	})
	t.Run(`role access`, func(t *testing.T) {
		provider := NewInstance()

		require.True(t, provider.IsAllowed("PUT", "/api/admin/requests/abc/status", "1", models.AdminRole))
		require.False(t, provider.IsAllowed("PUT", "/api/admin/requests/abc/status", "2", models.OwnerRole))
		require.False(t, provider.IsAllowed("PUT", "/api/admin/requests/abc/status", "3", models.PeternakRole))

		require.True(t, provider.IsAllowed("GET", "/api/owner/export/farm-1/", "2", models.OwnerRole))
		require.False(t, provider.IsAllowed("GET", "/api/owner/export/farm-1", "3", models.PeternakRole))

		require.True(t, provider.IsAllowed("post", "/api/peternak/otp/verify", "3", models.PeternakRole))
		require.True(t, provider.IsAllowed("GET", "/api/me", "3", models.PeternakRole))
		// tanpa aturan -> ditolak
		require.False(t, provider.IsAllowed("GET", "/api/admin/unknown", "1", models.AdminRole))
	})
	t.Run(`permissions map`, func(t *testing.T) {
		provider := NewInstance()
		perms := provider.GetPermissions(models.PeternakRole)
		require.ElementsMatch(t, []models.Permission{models.CreatePermission, models.EditPermission, models.ViewPermission}, perms[models.ReportsModule])
		require.NotContains(t, perms, models.UsersModule)

		adminPerms := provider.GetPermissions(models.AdminRole)
		require.Contains(t, adminPerms[models.RequestsModule], models.FlowPermission)
	})
}
