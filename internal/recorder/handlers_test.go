package recorder

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func passAuth(c *fiber.Ctx) error {
	return c.Next()
}

func newTestApp(t *testing.T) (*fiber.App, *Recorder, *fakeClock) {
	t.Helper()
	rec, clock := startRecorder(t, &fakeOdometer{reading: 1200}, &fakeSink{}, nil, "km")

	app := fiber.New()
	RegisterRoutes(app.Group("/recorder"), rec, passAuth)
	return app, rec, clock
}

func TestHandlerStartStop(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/recorder/start", strings.NewReader(`{"vehicle_id":"veh-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("start request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var trip Trip
	if err := json.NewDecoder(resp.Body).Decode(&trip); err != nil {
		t.Fatalf("decode trip: %v", err)
	}
	if trip.VehicleID != "veh-1" || !trip.IsActive {
		t.Fatalf("unexpected trip: %+v", trip)
	}

	// second start conflicts
	req = httptest.NewRequest("POST", "/recorder/start", strings.NewReader(`{"vehicle_id":"veh-2"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("second start request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("POST", "/recorder/stop", nil))
	if err != nil {
		t.Fatalf("stop request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("POST", "/recorder/stop", nil))
	if err != nil {
		t.Fatalf("second stop request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestHandlerStartValidation(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/recorder/start", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("start request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandlerFixAndSnapshot(t *testing.T) {
	app, rec, clock := newTestApp(t)
	if _, err := rec.Start(context.Background(), "veh-1"); err != nil {
		t.Fatalf("start: %v", err)
	}

	body := `{"lat":0,"lng":0,"accuracy_m":5,"recorded_at":"` +
		clock.Now().Format("2006-01-02T15:04:05Z07:00") + `"}`
	req := httptest.NewRequest("POST", "/recorder/fixes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("fix request: %v", err)
	}
	if resp.StatusCode != fiber.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/recorder/snapshot", nil))
	if err != nil {
		t.Fatalf("snapshot request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var snapshot Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if !snapshot.Tracking || snapshot.PointCount != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}

func TestHandlerAuthorization(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/recorder/authorization", strings.NewReader(`{"state":"denied"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("authorization request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("POST", "/recorder/authorization", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("empty authorization request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandlerRegionEmptyRoute(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/recorder/region", nil))
	if err != nil {
		t.Fatalf("region request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHandlerRoute(t *testing.T) {
	app, rec, clock := newTestApp(t)
	ctx := context.Background()
	if _, err := rec.Start(ctx, "veh-1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	t0 := clock.Now()
	offerFixes(t, rec, clock, []Fix{
		{Lat: 0, Lng: 0, AccuracyM: 5, RecordedAt: t0},
		{Lat: 0, Lng: 0.0001, AccuracyM: 5, RecordedAt: t0.Add(3 * time.Second)},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/recorder/route", nil))
	if err != nil {
		t.Fatalf("route request: %v", err)
	}
	var points []RoutePoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		t.Fatalf("decode route: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/recorder/region", nil))
	if err != nil {
		t.Fatalf("region request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var region Region
	if err := json.NewDecoder(resp.Body).Decode(&region); err != nil {
		t.Fatalf("decode region: %v", err)
	}
	if region.LatSpan < minSpanDegrees || region.LngSpan < minSpanDegrees {
		t.Fatalf("unexpected region: %+v", region)
	}
}
