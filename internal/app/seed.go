package app

import (
	"context"
	"fmt"

	"go-dinas/internal/auth"
	"go-dinas/internal/branch"
	"go-dinas/internal/catalog"
	"go-dinas/internal/domain"
	"go-dinas/internal/employee"
	"go-dinas/internal/messroom"
	"go-dinas/internal/plafond"
	"go-dinas/internal/role"
	"go-dinas/internal/roomtype"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/vehicle"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func fullAccess() map[string]domain.Permission {
	perms := make(map[string]domain.Permission, len(domain.Resources()))
	for _, r := range domain.Resources() {
		perms[r] = domain.Permission{
			View: true, Add: true, Edit: true, Delete: true,
			Approve:  domain.ApprovePermission{Domestic: true, International: true},
			SetBiaya: true,
		}
	}
	return perms
}

func staffAccess() map[string]domain.Permission {
	view := domain.Permission{View: true}
	return map[string]domain.Permission{
		domain.ResourceBranch:         view,
		domain.ResourceEmployee:       view,
		domain.ResourceHotel:          view,
		domain.ResourceRoomType:       view,
		domain.ResourceCity:           view,
		domain.ResourceMessRoom:       view,
		domain.ResourceOrders:         {View: true, Add: true},
		domain.ResourceDriverSchedule: {View: true, Add: true, Edit: true},
	}
}

// seedDemoData fills an empty store with the demo branches, roles, accounts and a small master data set.
func seedDemoData(ctx context.Context, m *modules, logger *zap.Logger) error {
	branches := []branch.CreateBranchRequest{
		{Code: "JKT", Name: "Jakarta", Address: "Jl. Jakarta No. 123"},
		{Code: "SBY", Name: "Surabaya", Address: "Jl. Surabaya No. 456"},
		{Code: "BDG", Name: "Bandung", Address: "Jl. Bandung No. 789"},
	}
	branchIDs := make([]int64, 0, len(branches))
	for _, req := range branches {
		b, err := m.branches.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed branch %s: %w", req.Code, err)
		}
		branchIDs = append(branchIDs, b.ID)
	}
	jakarta := branchIDs[0]

	admin, err := m.roles.Create(ctx, role.CreateRoleRequest{Name: "Administrator", Permissions: fullAccess()})
	if err != nil {
		return fmt.Errorf("seed role: %w", err)
	}
	staff, err := m.roles.Create(ctx, role.CreateRoleRequest{Name: "Staff", Permissions: staffAccess()})
	if err != nil {
		return fmt.Errorf("seed role: %w", err)
	}

	accounts := []auth.CreateAccountRequest{
		{Email: "admin@konimex.com", Name: "Admin Konimex", Password: "admin123", RoleID: admin.ID, BranchIDs: branchIDs},
		{Email: "user@konimex.com", Name: "User Konimex", Password: "user123", RoleID: staff.ID, BranchIDs: []int64{jakarta}},
	}
	for _, req := range accounts {
		if _, err := m.auth.CreateAccount(ctx, req); err != nil {
			return fmt.Errorf("seed account %s: %w", req.Email, err)
		}
	}

	if _, err := m.employees.Create(ctx, employee.CreateEmployeeRequest{
		Name:           "Budi Santoso",
		Email:          "budi.santoso@konimex.com",
		Gender:         employee.GenderMale,
		BranchID:       jakarta,
		RoleID:         staff.ID,
		IsDriver:       true,
		WhatsappNumber: ptr.Of("081234567890"),
	}); err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}

	hotel, err := m.catalogs[catalog.Hotel.Collection].Create(ctx, catalog.CreateItemRequest{Code: "HTLJKT01", Name: "Hotel Santika Jakarta"})
	if err != nil {
		return fmt.Errorf("seed hotel: %w", err)
	}
	vehicleType, err := m.catalogs[catalog.VehicleType.Collection].Create(ctx, catalog.CreateItemRequest{Code: "MPV", Name: "Multi Purpose Vehicle"})
	if err != nil {
		return fmt.Errorf("seed vehicle type: %w", err)
	}
	for _, req := range []struct {
		kind catalog.Kind
		item catalog.CreateItemRequest
	}{
		{catalog.City, catalog.CreateItemRequest{Code: "JKT", Name: "Jakarta"}},
		{catalog.City, catalog.CreateItemRequest{Code: "SBY", Name: "Surabaya"}},
		{catalog.Ticket, catalog.CreateItemRequest{Code: "FLIGHT", Name: "Pesawat"}},
		{catalog.Supplier, catalog.CreateItemRequest{Code: "TRAVELOKA", Name: "Traveloka"}},
	} {
		if _, err := m.catalogs[req.kind.Collection].Create(ctx, req.item); err != nil {
			return fmt.Errorf("seed %s: %w", req.kind.Label, err)
		}
	}

	if _, err := m.roomTypes.Create(ctx, roomtype.CreateRoomTypeRequest{
		Code: "DLX", TypeName: "Deluxe", HotelIDs: []int64{hotel.ID},
		Price: decimal.NewFromInt(650000), Capacity: 2,
	}); err != nil {
		return fmt.Errorf("seed room type: %w", err)
	}
	if _, err := m.vehicles.Create(ctx, vehicle.CreateVehicleRequest{
		BranchID: jakarta, VehicleTypeID: vehicleType.ID, PlateNumber: "B 1234 KNX",
	}); err != nil {
		return fmt.Errorf("seed vehicle: %w", err)
	}
	if _, err := m.plafonds.Create(ctx, plafond.CreatePlafondRequest{
		RoleID: staff.ID, Type: plafond.TypeHotel,
		Amount: decimal.NewFromInt(500000), EffectiveDate: "2025-01-01",
	}); err != nil {
		return fmt.Errorf("seed plafond: %w", err)
	}
	if _, err := m.messRooms.Create(ctx, messroom.CreateMessRoomRequest{
		BranchID: jakarta, RoomNumber: "A-101", Gender: employee.GenderMale, Capacity: 2,
	}); err != nil {
		return fmt.Errorf("seed mess room: %w", err)
	}

	logger.Info("demo data seeded", zap.Int("branches", len(branchIDs)), zap.Int("accounts", len(accounts)))
	return nil
}
