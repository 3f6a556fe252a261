// auth/permissions_test.go
package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
)

func TestRoleMatrix(t *testing.T) {
	registry := auth.NewRegistry()

	cases := []struct {
		role       string
		permission string
		expected   bool
	}{
		{auth.RoleAdmin, auth.PermPerformQCReview, true},
		{auth.RoleAdmin, auth.PermManageMasters, true},
		{auth.RoleQC, auth.PermPerformQCReview, true},
		{auth.RoleQC, auth.PermUploadAssets, false},
		{auth.RoleManager, auth.PermManageLinks, true},
		{auth.RoleManager, auth.PermPerformQCReview, false},
		{auth.RoleUser, auth.PermUploadAssets, true},
		{auth.RoleUser, auth.PermPerformQCReview, false},
		{auth.RoleGuest, auth.PermViewAssets, true},
		{auth.RoleGuest, auth.PermUploadAssets, false},
		{"unknown", auth.PermViewAssets, false},
		{"", auth.PermPerformQCReview, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, registry.HasPermission(tc.role, tc.permission),
			"role=%s permission=%s", tc.role, tc.permission)
	}
}

func TestPermissionsReturnsCopy(t *testing.T) {
	registry := auth.NewRegistry()

	perms := registry.Permissions(auth.RoleGuest)
	assert.Len(t, perms, 1)

	perms[0] = "mutated"
	assert.True(t, registry.HasPermission(auth.RoleGuest, auth.PermViewAssets))
}
