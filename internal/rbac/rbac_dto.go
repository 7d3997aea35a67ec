package rbac

type CheckRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type CheckResponse struct {
	Allowed bool `json:"allowed"`
}

// PermissionsResponse lists granted actions per resource in the selected branch.
type PermissionsResponse struct {
	BranchID    int64               `json:"branchId"`
	Permissions map[string][]string `json:"permissions"`
}
