package domain

import (
	"context"
	"encoding/json"
	"sort"
)

type EnforceRequest struct {
	AccountID int64  `json:"accountId" binding:"required"`
	BranchID  int64  `json:"branchId"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

const (
	ActionView                 = "view"
	ActionAdd                  = "add"
	ActionEdit                 = "edit"
	ActionDelete               = "delete"
	ActionApproveDomestic      = "approve_domestic"
	ActionApproveInternational = "approve_international"
	ActionSetBiaya             = "set_biaya"
)

// Resources that a role permission set may grant.
const (
	ResourceBranch         = "branch"
	ResourceRole           = "role"
	ResourceEmployee       = "employee"
	ResourceHotel          = "hotel"
	ResourceRoomType       = "room-type"
	ResourceTicket         = "ticket"
	ResourceVehicleType    = "vehicle-type"
	ResourceVehicle        = "vehicle"
	ResourcePlafond        = "plafond"
	ResourceMessRoom       = "mess-room"
	ResourceCity           = "city"
	ResourceSupplier       = "supplier"
	ResourceDriverSchedule = "driver-schedule"
	ResourceOrders         = "orders"
)

var knownResources = map[string]struct{}{
	ResourceBranch: {}, ResourceRole: {}, ResourceEmployee: {}, ResourceHotel: {},
	ResourceRoomType: {}, ResourceTicket: {}, ResourceVehicleType: {}, ResourceVehicle: {},
	ResourcePlafond: {}, ResourceMessRoom: {}, ResourceCity: {}, ResourceSupplier: {},
	ResourceDriverSchedule: {}, ResourceOrders: {},
}

// Resources lists every grantable resource in a stable order.
func Resources() []string {
	out := make([]string, 0, len(knownResources))
	for r := range knownResources {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Actions lists every action a permission set can grant.
var Actions = []string{
	ActionView, ActionAdd, ActionEdit, ActionDelete,
	ActionApproveDomestic, ActionApproveInternational, ActionSetBiaya,
}

func IsKnownResource(r string) bool {
	_, ok := knownResources[r]
	return ok
}

type ApprovePermission struct {
	Domestic      bool `json:"domestic"`
	International bool `json:"international"`
}

// Permission is the set of grants a role holds on one resource.
type Permission struct {
	View     bool              `json:"view"`
	Add      bool              `json:"add"`
	Edit     bool              `json:"edit"`
	Delete   bool              `json:"delete"`
	Approve  ApprovePermission `json:"approve"`
	SetBiaya bool              `json:"setBiaya"`
}

func (p Permission) Actions() []string {
	var out []string
	add := func(ok bool, action string) {
		if ok {
			out = append(out, action)
		}
	}
	add(p.View, ActionView)
	add(p.Add, ActionAdd)
	add(p.Edit, ActionEdit)
	add(p.Delete, ActionDelete)
	add(p.Approve.Domestic, ActionApproveDomestic)
	add(p.Approve.International, ActionApproveInternational)
	add(p.SetBiaya, ActionSetBiaya)
	return out
}

type RolePolicy struct {
	RoleID      int64
	Active      bool
	Permissions map[string]Permission
}

type AccountGrant struct {
	AccountID int64
	RoleID    int64
	BranchIDs []int64
	Active    bool
}

type RolePolicySource interface {
	RolePolicies(ctx context.Context) ([]RolePolicy, error)
}

type AccountGrantSource interface {
	AccountGrants(ctx context.Context) ([]AccountGrant, error)
}

// PolicyReloader is notified after roles or accounts change.
type PolicyReloader interface {
	Reload(ctx context.Context) error
}

// UnmarshalJSON also accepts the order form field names costInput, approvalDN and approvalLN.
func (p *Permission) UnmarshalJSON(b []byte) error {
	type plain Permission
	var aux struct {
		plain
		CostInput  *bool `json:"costInput"`
		ApprovalDN *bool `json:"approvalDN"`
		ApprovalLN *bool `json:"approvalLN"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = Permission(aux.plain)
	if aux.CostInput != nil {
		p.SetBiaya = *aux.CostInput
	}
	if aux.ApprovalDN != nil {
		p.Approve.Domestic = *aux.ApprovalDN
	}
	if aux.ApprovalLN != nil {
		p.Approve.International = *aux.ApprovalLN
	}
	return nil
}
