package app

import (
	"context"

	"go-dinas/internal/auth"
	"go-dinas/internal/branch"
	"go-dinas/internal/catalog"
	"go-dinas/internal/driverschedule"
	"go-dinas/internal/employee"
	"go-dinas/internal/messroom"
	"go-dinas/internal/middleware"
	"go-dinas/internal/plafond"
	"go-dinas/internal/rbac"
	"go-dinas/internal/role"
	"go-dinas/internal/roomtype"
	"go-dinas/internal/shared/token"
	"go-dinas/internal/store"
	"go-dinas/internal/vehicle"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type moduleDeps struct {
	DB           *store.DB
	Tokens       *token.Manager
	Redis        *redis.Client
	Publisher    driverschedule.EventPublisher
	SecureCookie bool
	Logger       *zap.Logger
}

// modules holds the services the app needs after routing, e.g. for seeding.
type modules struct {
	rbac            rbac.Service
	auth            auth.Service
	branches        branch.Service
	roles           role.Service
	employees       employee.Service
	catalogs        map[string]catalog.Service
	roomTypes       roomtype.Service
	vehicles        vehicle.Service
	plafonds        plafond.Service
	messRooms       messroom.Service
	driverSchedules driverschedule.Service
}

func registerModules(ctx context.Context, api *gin.RouterGroup, deps moduleDeps) (*modules, error) {
	logger := deps.Logger

	// --- Repositories ---
	branchRepo := branch.NewRepository(deps.DB)
	roleRepo := role.NewRepository(deps.DB)
	employeeRepo := employee.NewRepository(deps.DB)
	accountRepo := auth.NewRepository(deps.DB)
	catalogRepos := make(map[string]*store.Collection[catalog.Item], len(catalog.Kinds()))
	for _, kind := range catalog.Kinds() {
		catalogRepos[kind.Collection] = catalog.NewRepository(deps.DB, kind)
	}
	roomTypeRepo := roomtype.NewRepository(deps.DB)
	vehicleRepo := vehicle.NewRepository(deps.DB)
	plafondRepo := plafond.NewRepository(deps.DB)
	messRoomRepo := messroom.NewRepository(deps.DB)
	scheduleRepo := driverschedule.NewRepository(deps.DB)
	driverschedule.SyncDriverNames(employeeRepo, scheduleRepo)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService(ctx,
		rbac.NewRepository(role.NewPolicySource(roleRepo), auth.NewGrantSource(accountRepo)),
		logger,
	)
	if err != nil {
		return nil, err
	}
	guard := middleware.NewGuard(deps.Tokens, rbacService, deps.Redis, logger)

	// --- Services ---
	m := &modules{
		rbac:            rbacService,
		auth:            auth.NewService(accountRepo, roleRepo, branchRepo, deps.Tokens, rbacService, logger),
		branches:        branch.NewService(branchRepo, logger),
		roles:           role.NewService(roleRepo, rbacService, logger),
		employees:       employee.NewService(employeeRepo, deps.Redis, logger),
		catalogs:        make(map[string]catalog.Service, len(catalogRepos)),
		roomTypes:       roomtype.NewService(roomTypeRepo, logger),
		vehicles:        vehicle.NewService(vehicleRepo, logger),
		plafonds:        plafond.NewService(plafondRepo, logger),
		messRooms:       messroom.NewService(messRoomRepo, logger),
		driverSchedules: driverschedule.NewService(scheduleRepo, employeeRepo, deps.Publisher, deps.DB.Now, logger),
	}
	for _, kind := range catalog.Kinds() {
		m.catalogs[kind.Collection] = catalog.NewService(kind, catalogRepos[kind.Collection], logger)
	}

	// --- Routes Registration ---
	auth.RegisterRoutes(api, auth.NewHandler(m.auth, deps.SecureCookie, logger), guard)
	rbac.RegisterRoutes(api, rbac.NewHandler(m.rbac, logger), guard)
	branch.RegisterRoutes(api, branch.NewHandler(m.branches, logger), guard)
	role.RegisterRoutes(api, role.NewHandler(m.roles, logger), guard)
	employee.RegisterRoutes(api, employee.NewHandler(m.employees, logger), guard)
	for _, kind := range catalog.Kinds() {
		catalog.RegisterRoutes(api, catalog.NewHandler(m.catalogs[kind.Collection], logger), guard)
	}
	roomtype.RegisterRoutes(api, roomtype.NewHandler(m.roomTypes, logger), guard)
	vehicle.RegisterRoutes(api, vehicle.NewHandler(m.vehicles, logger), guard)
	plafond.RegisterRoutes(api, plafond.NewHandler(m.plafonds, logger), guard)
	messroom.RegisterRoutes(api, messroom.NewHandler(m.messRooms, logger), guard)
	driverschedule.RegisterRoutes(api, driverschedule.NewHandler(m.driverSchedules, logger), guard)

	return m, nil
}
