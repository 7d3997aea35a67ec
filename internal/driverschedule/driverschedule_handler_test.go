package driverschedule_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-dinas/internal/driverschedule"
	driverscheduleerrors "go-dinas/internal/driverschedule/errors"
	"go-dinas/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleService struct {
	driverschedule.Service
	CreateFn   func(ctx context.Context, req driverschedule.CreateDriverScheduleRequest) (driverschedule.DriverSchedule, error)
	StartFn    func(ctx context.Context, id int64) (driverschedule.DriverSchedule, error)
	PassFn     func(ctx context.Context, id int64) (driverschedule.DigitalPass, error)
	CalendarFn func(ctx context.Context, q driverschedule.CalendarQuery) ([]driverschedule.CalendarEvent, error)
}

func (f *fakeScheduleService) Create(ctx context.Context, req driverschedule.CreateDriverScheduleRequest) (driverschedule.DriverSchedule, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeScheduleService) Start(ctx context.Context, id int64) (driverschedule.DriverSchedule, error) {
	return f.StartFn(ctx, id)
}
func (f *fakeScheduleService) Pass(ctx context.Context, id int64) (driverschedule.DigitalPass, error) {
	return f.PassFn(ctx, id)
}
func (f *fakeScheduleService) Calendar(ctx context.Context, q driverschedule.CalendarQuery) ([]driverschedule.CalendarEvent, error) {
	return f.CalendarFn(ctx, q)
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestDriverScheduleHandler_Create(t *testing.T) {
	t.Run("maps link must be a url", func(t *testing.T) {
		body := `{"driverId":1,"orderNumber":"ORD001",
			"pickup":{"location":"Kantor","time":"2025-04-20T08:00:00Z","mapsLink":"bukan url"},
			"drop":{"location":"Bandara","time":"2025-04-20T12:00:00Z"}}`
		c, w := newTestContext(http.MethodPost, "/api/v1/driver-schedules", body)

		driverschedule.NewHandler(&fakeScheduleService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeScheduleService{
			CreateFn: func(ctx context.Context, req driverschedule.CreateDriverScheduleRequest) (driverschedule.DriverSchedule, error) {
				assert.Equal(t, "https://maps.google.com/?q=kantor", req.Pickup.MapsLink)
				return driverschedule.DriverSchedule{ID: 1, OrderNumber: req.OrderNumber, Status: driverschedule.StatusPending}, nil
			},
		}
		body := `{"driverId":1,"orderNumber":"ORD001",
			"pickup":{"location":"Kantor","time":"2025-04-20T08:00:00Z","mapsLink":"https://maps.google.com/?q=kantor"},
			"drop":{"location":"Bandara","time":"2025-04-20T12:00:00Z"}}`
		c, w := newTestContext(http.MethodPost, "/api/v1/driver-schedules", body)

		driverschedule.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Pending"`)
	})
}

func TestDriverScheduleHandler_Start(t *testing.T) {
	svc := &fakeScheduleService{
		StartFn: func(ctx context.Context, id int64) (driverschedule.DriverSchedule, error) {
			return driverschedule.DriverSchedule{}, driverscheduleerrors.ErrInvalidStatusTransition
		},
	}
	c, w := newTestContext(http.MethodPost, "/api/v1/driver-schedules/3/start", "")
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	driverschedule.NewHandler(svc).Start(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestDriverScheduleHandler_Pass(t *testing.T) {
	svc := &fakeScheduleService{
		PassFn: func(ctx context.Context, id int64) (driverschedule.DigitalPass, error) {
			return driverschedule.DigitalPass{PassID: "PASS-ORD001-1745136000000", OrderNumber: "ORD001"}, nil
		},
	}
	c, w := newTestContext(http.MethodGet, "/api/v1/driver-schedules/1/pass", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	driverschedule.NewHandler(svc).Pass(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"passId":"PASS-ORD001-1745136000000"`)
}

func TestDriverScheduleHandler_Calendar(t *testing.T) {
	t.Run("date-only bounds cover whole days", func(t *testing.T) {
		svc := &fakeScheduleService{
			CalendarFn: func(ctx context.Context, q driverschedule.CalendarQuery) ([]driverschedule.CalendarEvent, error) {
				require.NotNil(t, q.Start)
				require.NotNil(t, q.End)
				assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *q.Start)
				assert.Equal(t, time.Date(2025, 4, 30, 23, 59, 59, 999999999, time.UTC), *q.End)
				return []driverschedule.CalendarEvent{{ID: 1, Title: "ORD001 - Joko"}}, nil
			},
		}
		c, w := newTestContext(http.MethodGet, "/api/v1/driver-schedules/calendar?start=2025-04-01&end=2025-04-30", "")

		driverschedule.NewHandler(svc).Calendar(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ORD001 - Joko")
	})

	t.Run("bad bound", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/api/v1/driver-schedules/calendar?start=kemarin", "")

		driverschedule.NewHandler(&fakeScheduleService{}).Calendar(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
