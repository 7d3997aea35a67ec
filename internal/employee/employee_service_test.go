package employee_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-dinas/internal/branch"
	"go-dinas/internal/employee"
	employeeerrors "go-dinas/internal/employee/errors"
	"go-dinas/internal/role"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type serviceDeps struct {
	db        *store.DB
	repo      *store.Collection[employee.Employee]
	rdb       *redis.Client
	service   employee.Service
	branchID  int64
	roleID    int64
	redismock redismock.ClientMock
}

// listHookRepo menjalankan onList sekali, setelah List membaca store.
type listHookRepo struct {
	employee.Repository
	onList func()
}

func (r *listHookRepo) List(ctx context.Context, f store.Filter) ([]employee.Employee, error) {
	out, err := r.Repository.List(ctx, f)
	if hook := r.onList; hook != nil {
		r.onList = nil
		hook()
	}
	return out, err
}

// setupServiceTest menyiapkan store in-memory dengan satu cabang dan satu role.
func setupServiceTest(t *testing.T, withRedis bool) *serviceDeps {
	t.Helper()
	ctx := context.Background()

	db := store.New()
	branches := branch.NewRepository(db)
	roles := role.NewRepository(db)
	repo := employee.NewRepository(db)

	b, err := branches.Create(ctx, branch.Branch{Code: "JKT", Name: "Jakarta", IsActive: true})
	require.NoError(t, err)
	r, err := roles.Create(ctx, role.Role{Name: "Staff", IsActive: true})
	require.NoError(t, err)

	deps := &serviceDeps{db: db, repo: repo, branchID: b.ID, roleID: r.ID}
	if withRedis {
		deps.rdb, deps.redismock = redismock.NewClientMock()
	}
	deps.service = employee.NewService(repo, deps.rdb)
	return deps
}

func (d *serviceDeps) request(name, email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:     name,
		Email:    email,
		Gender:   employee.GenderMale,
		BranchID: d.branchID,
		RoleID:   d.roleID,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults active", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		e, err := deps.service.Create(ctx, deps.request(" Budi ", "budi@konimex.com"))
		require.NoError(t, err)
		assert.Equal(t, "Budi", e.Name)
		assert.True(t, e.IsActive)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("driver without whatsapp", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		req := deps.request("Joko", "joko@konimex.com")
		req.IsDriver = true
		req.WhatsappNumber = ptr.Of("  ")

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrWhatsappRequired)
		assert.ErrorIs(t, err, store.ErrValidation)
	})

	t.Run("driver with whatsapp", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		req := deps.request("Joko", "joko@konimex.com")
		req.IsDriver = true
		req.WhatsappNumber = ptr.Of("081234567890")

		e, err := deps.service.Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, e.WhatsappNumber)
		assert.Equal(t, "081234567890", *e.WhatsappNumber)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		_, err := deps.service.Create(ctx, deps.request("Budi", "budi@konimex.com"))
		require.NoError(t, err)

		_, err = deps.service.Create(ctx, deps.request("Budi Lain", "BUDI@konimex.com"))
		assert.ErrorIs(t, err, store.ErrConflict)
	})

	t.Run("unknown branch", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		req := deps.request("Budi", "budi@konimex.com")
		req.BranchID = 99

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, store.ErrValidation)
	})

	t.Run("invalid email", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		_, err := deps.service.Create(ctx, deps.request("Budi", "bukan-email"))
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmail)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("turning into driver requires whatsapp", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		e, err := deps.service.Create(ctx, deps.request("Budi", "budi@konimex.com"))
		require.NoError(t, err)

		_, err = deps.service.Update(ctx, e.ID, employee.UpdateEmployeeRequest{IsDriver: ptr.Of(true)})
		assert.ErrorIs(t, err, employeeerrors.ErrWhatsappRequired)

		got, err := deps.service.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.False(t, got.IsDriver)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		e, err := deps.service.Create(ctx, deps.request("Budi", "budi@konimex.com"))
		require.NoError(t, err)

		updated, err := deps.service.Update(ctx, e.ID, employee.UpdateEmployeeRequest{
			IsDriver:       ptr.Of(true),
			WhatsappNumber: ptr.Of("0811"),
		})
		require.NoError(t, err)
		assert.True(t, updated.IsDriver)
		assert.Equal(t, "budi@konimex.com", updated.Email)
		assert.Equal(t, "Budi", updated.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		_, err := deps.service.Update(ctx, 42, employee.UpdateEmployeeRequest{Name: ptr.Of("x")})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t, false)

	req := deps.request("Siti", "siti@konimex.com")
	req.Gender = employee.GenderFemale
	_, err := deps.service.Create(ctx, req)
	require.NoError(t, err)
	_, err = deps.service.Create(ctx, deps.request("Budi", "budi@konimex.com"))
	require.NoError(t, err)

	got, err := deps.service.GetAll(ctx, store.Filter{}.WithAttr("gender", employee.GenderFemale))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Siti", got[0].Name)

	got, err = deps.service.GetAll(ctx, store.Filter{Search: "KONIMEX"}.WithRef("branchId", deps.branchID))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEmployeeService_GetDriverOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("hit cache", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		cached := []employee.DriverOption{{ID: 7, Name: "Joko", BranchID: 1, WhatsappNumber: "0811"}}
		payload, _ := json.Marshal(cached)

		deps.redismock.ExpectGet(employee.DriverOptionsKey).SetVal(string(payload))

		resp, err := deps.service.GetDriverOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("miss cache builds from store and stores result", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		// Seed langsung ke repo supaya tidak memicu invalidasi cache.
		_, err := deps.repo.Create(ctx, employee.Employee{
			Name: "Joko", Email: "joko@konimex.com", Gender: employee.GenderMale,
			BranchID: deps.branchID, RoleID: deps.roleID,
			IsDriver: true, WhatsappNumber: ptr.Of("0811"), IsActive: true,
		})
		require.NoError(t, err)
		_, err = deps.repo.Create(ctx, employee.Employee{
			Name: "Budi", Email: "budi@konimex.com", Gender: employee.GenderMale,
			BranchID: deps.branchID, RoleID: deps.roleID, IsActive: true,
		})
		require.NoError(t, err)

		want := []employee.DriverOption{{ID: 1, Name: "Joko", BranchID: deps.branchID, WhatsappNumber: "0811"}}
		payload, _ := json.Marshal(want)

		deps.redismock.ExpectGet(employee.DriverOptionsKey).RedisNil()
		deps.redismock.ExpectSet(employee.DriverOptionsKey, payload, time.Hour).SetVal("OK")

		resp, err := deps.service.GetDriverOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("mutation during build skips cache", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		joko, err := deps.repo.Create(ctx, employee.Employee{
			Name: "Joko", Email: "joko@konimex.com", Gender: employee.GenderMale,
			BranchID: deps.branchID, RoleID: deps.roleID,
			IsDriver: true, WhatsappNumber: ptr.Of("0811"), IsActive: true,
		})
		require.NoError(t, err)

		core, logs := observer.New(zapcore.DebugLevel)
		repo := &listHookRepo{Repository: deps.repo}
		svc := employee.NewService(repo, deps.rdb, zap.New(core))
		repo.onList = func() {
			_, err := svc.Update(ctx, joko.ID, employee.UpdateEmployeeRequest{Name: ptr.Of("Joko Widodo")})
			require.NoError(t, err)
		}

		deps.redismock.ExpectGet(employee.DriverOptionsKey).RedisNil()
		deps.redismock.ExpectDel(employee.DriverOptionsKey).SetVal(1)

		_, err = svc.GetDriverOptions(ctx)
		require.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
		assert.Equal(t, 1, logs.FilterMessage("driver options changed during build, skip cache").Len())
		assert.Zero(t, logs.FilterMessage("cache driver options failed").Len())
	})

	t.Run("mutation invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		deps.redismock.ExpectDel(employee.DriverOptionsKey).SetVal(1)

		_, err := deps.service.Create(ctx, deps.request("Budi", "budi@konimex.com"))
		require.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t, false)

	e, err := deps.service.Create(ctx, deps.request("Budi", "budi@konimex.com"))
	require.NoError(t, err)

	require.NoError(t, deps.service.Delete(ctx, e.ID))
	_, err = deps.service.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
