package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/adapter/memory"
	"github.com/YelzhanWeb/kiosk/internal/adapter/postgres"
	"github.com/YelzhanWeb/kiosk/internal/adapter/printer"
	"github.com/YelzhanWeb/kiosk/internal/adapter/rabbitmq"
	"github.com/YelzhanWeb/kiosk/internal/app/attendance"
	"github.com/YelzhanWeb/kiosk/internal/app/catalog"
	"github.com/YelzhanWeb/kiosk/internal/app/order"
	"github.com/YelzhanWeb/kiosk/internal/app/reporting"
	"github.com/YelzhanWeb/kiosk/internal/app/settings"
	"github.com/YelzhanWeb/kiosk/internal/domain"
)

const adminPIN = "1234"

type testServer struct {
	handler http.Handler
	printed *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	lgr := logger.NewWithWriter("test", io.Discard, "error")
	menu, err := memory.NewMenuRepository([]domain.MenuItem{
		{ID: "hc-1", Name: "Americano", Category: domain.CategoryHotCoffee, BasePrice: domain.Price(49)},
		{ID: "mt-1", Name: "Milk Tea", Category: domain.CategoryMilkTea, Variants: []domain.Variant{
			{Name: "Small", Price: 35},
			{Name: "Large", Price: 70},
		}},
	})
	require.NoError(t, err)

	orders := memory.NewOrderRepository()
	layout := printer.Layout{ShopName: "Happy Hearts", Tagline: "Coffee & Prints", Currency: "P"}
	printed := &bytes.Buffer{}
	receipts := printer.New(printed, layout, lgr)
	settingsSvc := settings.NewService(adminPIN, false, lgr)

	svc := Services{
		Orders: order.NewService(menu, memory.NewCartRepository(), orders, rabbitmq.NopPublisher{},
			postgres.NopArchive{}, receipts, settingsSvc, lgr),
		Catalog: catalog.NewService(menu, nil, lgr),
		Attendance: attendance.NewService(memory.NewStaffRepository([]domain.StaffMember{
			{ID: "s1", Name: "Maria", PIN: "1234", HourlyRate: 65},
		}), memory.NewAttendanceRepository(), postgres.NopArchive{}, lgr),
		Settings: settingsSvc,
		Reports:  reporting.NewService(orders, "Happy Hearts Coffee & Prints", reporting.DefaultTargets(), reporting.DefaultThresholds(), lgr),
		Printer:  receipts,
		Receipt:  layout,
	}

	return &testServer{handler: NewRouter(svc, lgr), printed: printed}
}

type call struct {
	method  string
	path    string
	body    string
	session string
	pin     string
}

func (s *testServer) do(t *testing.T, c call) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if c.body != "" {
		body = strings.NewReader(c.body)
	}
	req := httptest.NewRequest(c.method, c.path, body)
	if c.session != "" {
		req.Header.Set(SessionHeader, c.session)
	}
	if c.pin != "" {
		req.Header.Set(AdminPINHeader, c.pin)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *testServer) placeOrder(t *testing.T, session, name string) *domain.Order {
	t.Helper()

	rec := s.do(t, call{method: http.MethodPost, path: "/cart/items", body: `{"itemId":"hc-1"}`, session: session})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, call{method: http.MethodPost, path: "/orders", body: `{"customerName":"` + name + `"}`, session: session})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[*domain.Order](t, rec)
}

func TestMenuRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, call{method: http.MethodGet, path: "/menu"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.MenuItem](t, rec), 2)

	rec = s.do(t, call{method: http.MethodGet, path: "/menu?category=milk%20tea"})
	items := decodeBody[[]domain.MenuItem](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "mt-1", items[0].ID)

	rec = s.do(t, call{method: http.MethodGet, path: "/menu/categories"})
	assert.Len(t, decodeBody[[]domain.Category](t, rec), len(domain.Categories))

	rec = s.do(t, call{method: http.MethodPost, path: "/menu/recommend", body: `{"mood":"sleepy"}`})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, catalog.FallbackNoKey, decodeBody[RecommendResponse](t, rec).Recommendation)

	rec = s.do(t, call{method: http.MethodPut, path: "/admin/menu/hc-1/image", body: `{"image":"data:image/png;base64,AA=="}`, pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "data:image/png;base64,AA==", decodeBody[domain.MenuItem](t, rec).Image)
}

func TestCartRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, call{method: http.MethodPost, path: "/cart/items", body: `{"itemId":"mt-1"}`, session: "k1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, call{method: http.MethodPost, path: "/cart/items", body: `{"itemId":"nope"}`, session: "k1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.do(t, call{method: http.MethodPost, path: "/cart/items", body: `{"itemId":"hc-1"}`, session: "k1"})
	rec = s.do(t, call{method: http.MethodPost, path: "/cart/items", body: `{"itemId":"hc-1"}`, session: "k1"})
	cart := decodeBody[CartResponse](t, rec)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.InDelta(t, 98, cart.Total, 1e-9)

	rec = s.do(t, call{method: http.MethodPost, path: "/cart/items", body: `{"itemId":"mt-1","variant":"Large"}`, session: "k1"})
	cart = decodeBody[CartResponse](t, rec)
	require.Len(t, cart.Lines, 2)
	assert.InDelta(t, 168, cart.Total, 1e-9)

	lineID := cart.Lines[0].CartID
	rec = s.do(t, call{method: http.MethodPatch, path: "/cart/items/" + lineID, body: `{"delta":-5}`, session: "k1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeBody[CartResponse](t, rec).Lines[0].Quantity)

	rec = s.do(t, call{method: http.MethodDelete, path: "/cart/items/" + lineID, session: "k1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[CartResponse](t, rec).Lines, 1)

	rec = s.do(t, call{method: http.MethodDelete, path: "/cart/items/" + lineID, session: "k1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, call{method: http.MethodGet, path: "/cart", session: "k2"})
	assert.Empty(t, decodeBody[CartResponse](t, rec).Lines)
}

func TestPlaceOrderAndLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, call{method: http.MethodPost, path: "/orders", session: "empty"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	first := s.placeOrder(t, "k1", "Ana")
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, domain.StatusPending, first.Status)
	second := s.placeOrder(t, "k2", "")
	assert.Equal(t, 2, second.Number)

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/orders/active"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = s.do(t, call{method: http.MethodGet, path: "/admin/orders/active", pin: "0000"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/orders/active", pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]*domain.Order](t, rec), 2)

	statusPath := "/admin/orders/" + first.ID + "/status"
	rec = s.do(t, call{method: http.MethodPatch, path: statusPath, body: `{"status":"Ready"}`, pin: adminPIN})
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = s.do(t, call{method: http.MethodPatch, path: statusPath, body: `{"status":"Bogus"}`, pin: adminPIN})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, call{method: http.MethodPatch, path: "/admin/orders/missing/status", body: `{"status":"Preparing"}`, pin: adminPIN})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, call{method: http.MethodPatch, path: statusPath, body: `{"status":"Cancelled"}`, pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StatusCancelled, decodeBody[*domain.Order](t, rec).Status)

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/orders/active", pin: adminPIN})
	active := decodeBody[[]*domain.Order](t, rec)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/orders", pin: adminPIN})
	assert.Len(t, decodeBody[[]*domain.Order](t, rec), 2)
}

func TestReceiptRoutes(t *testing.T) {
	s := newTestServer(t)
	placed := s.placeOrder(t, "k1", "Ana")

	rec := s.do(t, call{method: http.MethodGet, path: "/admin/orders/" + placed.ID + "/receipt", pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CUSTOMER COPY")
	assert.Contains(t, rec.Body.String(), "Customer: Ana")
	assert.Zero(t, s.printed.Len())

	rec = s.do(t, call{method: http.MethodPost, path: "/admin/orders/" + placed.ID + "/print", pin: adminPIN})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, s.printed.String(), "SHOP COPY")
}

func TestAutoPrintSetting(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, call{method: http.MethodPut, path: "/admin/settings", body: `{"autoPrint":true}`, pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[SettingsResponse](t, rec).AutoPrint)

	s.placeOrder(t, "k1", "")
	assert.Contains(t, s.printed.String(), "CUSTOMER COPY")

	rec = s.do(t, call{method: http.MethodPut, path: "/admin/settings", body: `{}`, pin: adminPIN})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaffAndAttendanceRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, call{method: http.MethodPost, path: "/admin/staff/s1/clock-in", pin: adminPIN})
	require.Equal(t, http.StatusCreated, rec.Code)
	log := decodeBody[domain.StaffLog](t, rec)

	rec = s.do(t, call{method: http.MethodPost, path: "/admin/staff/s1/clock-in", pin: adminPIN})
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = s.do(t, call{method: http.MethodPost, path: "/admin/staff/ghost/clock-in", pin: adminPIN})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/staff", pin: adminPIN})
	staff := decodeBody[[]map[string]any](t, rec)
	require.Len(t, staff, 1)
	assert.NotNil(t, staff[0]["activeLog"])
	assert.NotContains(t, staff[0], "pin")

	rec = s.do(t, call{method: http.MethodPost, path: "/admin/attendance/" + log.ID + "/clock-out", pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, call{method: http.MethodPost, path: "/admin/attendance/" + log.ID + "/clock-out", pin: adminPIN})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/attendance", pin: adminPIN})
	logs := decodeBody[[]map[string]any](t, rec)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0], "hours")
	assert.Contains(t, logs[0], "pay")

	rec = s.do(t, call{method: http.MethodPost, path: "/admin/staff", body: `{"name":"Juan","pin":"5678","hourlyRate":65}`, pin: adminPIN})
	require.Equal(t, http.StatusCreated, rec.Code)
	added := decodeBody[domain.StaffMember](t, rec)

	rec = s.do(t, call{method: http.MethodPost, path: "/admin/staff", body: `{"name":"","pin":"1"}`, pin: adminPIN})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, call{method: http.MethodPut, path: "/admin/staff/" + added.ID, body: `{"name":"Juan P","hourlyRate":70}`, pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Juan P", decodeBody[domain.StaffMember](t, rec).Name)

	rec = s.do(t, call{method: http.MethodDelete, path: "/admin/staff/" + added.ID, pin: adminPIN})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, call{method: http.MethodDelete, path: "/admin/staff/" + added.ID, pin: adminPIN})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardAndReports(t *testing.T) {
	s := newTestServer(t)
	s.placeOrder(t, "k1", "Ana")

	rec := s.do(t, call{method: http.MethodGet, path: "/admin/dashboard", pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	d := decodeBody[domain.Dashboard](t, rec)
	assert.Equal(t, 1, d.TotalOrders)
	assert.InDelta(t, 49, d.TotalRevenue, 1e-9)

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/reports/daily", pin: adminPIN})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sales-report-daily-")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Happy Hearts Coffee & Prints - Daily Sales Report\n"))
	assert.Contains(t, rec.Body.String(), ",\"Ana\",\"1x Americano\",49.00,Pending\n")

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/reports/monthly", pin: adminPIN})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminPINRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, call{method: http.MethodPost, path: "/admin/login", body: `{"pin":"9999"}`})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = s.do(t, call{method: http.MethodPost, path: "/admin/login", body: `{"pin":"1234"}`})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, call{method: http.MethodPut, path: "/admin/pin", body: `{"currentPin":"1234","newPin":"12","confirmPin":"12"}`, pin: adminPIN})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, call{method: http.MethodPut, path: "/admin/pin", body: `{"currentPin":"1234","newPin":"4321","confirmPin":"4321"}`, pin: adminPIN})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, call{method: http.MethodGet, path: "/admin/settings", pin: adminPIN})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = s.do(t, call{method: http.MethodGet, path: "/admin/settings", pin: "4321"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
