// auth/permissions.go
package auth

// Permission strings gate individual operations.
const (
	PermViewAssets      = "view_assets"
	PermUploadAssets    = "upload_assets"
	PermEditAssets      = "edit_assets"
	PermSubmitForQC     = "submit_for_qc"
	PermPerformQCReview = "perform_qc_review"
	PermApproveAssets   = "approve_assets"
	PermManageLinks     = "manage_links"
	PermManageMasters   = "manage_masters"
)

// Known roles. Identity arrives via the x-user-role header; token
// validation belongs to the external auth layer in front of this API.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleQC      = "qc"
	RoleUser    = "user"
	RoleGuest   = "guest"
)

// Registry is the immutable role-to-permission mapping. It is built
// once at process start and injected; nothing mutates it afterwards.
type Registry struct {
	grants map[string]map[string]bool
}

// NewRegistry constructs the registry with the fixed role matrix.
func NewRegistry() *Registry {
	matrix := map[string][]string{
		RoleAdmin: {
			PermViewAssets, PermUploadAssets, PermEditAssets, PermSubmitForQC,
			PermPerformQCReview, PermApproveAssets, PermManageLinks, PermManageMasters,
		},
		RoleQC: {
			PermViewAssets, PermPerformQCReview, PermApproveAssets,
		},
		RoleManager: {
			PermViewAssets, PermUploadAssets, PermEditAssets, PermSubmitForQC, PermManageLinks,
		},
		RoleUser: {
			PermViewAssets, PermUploadAssets, PermSubmitForQC,
		},
		RoleGuest: {
			PermViewAssets,
		},
	}

	grants := make(map[string]map[string]bool, len(matrix))
	for role, perms := range matrix {
		set := make(map[string]bool, len(perms))
		for _, p := range perms {
			set[p] = true
		}
		grants[role] = set
	}
	return &Registry{grants: grants}
}

// HasPermission reports whether the role carries the permission.
// Unknown roles carry nothing.
func (r *Registry) HasPermission(role, permission string) bool {
	return r.grants[role][permission]
}

// Permissions returns the permission set of a role, for introspection
// endpoints. The returned slice is a copy.
func (r *Registry) Permissions(role string) []string {
	set := r.grants[role]
	perms := make([]string, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	return perms
}
