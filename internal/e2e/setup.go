// Package e2e drives the fully wired service over real HTTP.
package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/app"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/seed"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/testutil"
	"github.com/rs/zerolog"
)

// TestServer represents a complete E2E test environment
type TestServer struct {
	Server        *httptest.Server
	MockPublisher *testutil.MockPublisher
	Client        *testutil.HTTPTestClient
}

// SetupE2ETest starts the service on a fresh, seeded set of stores with an
// in-memory event publisher. The server is closed when the test ends.
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	fixture, err := seed.Load("")
	if err != nil {
		t.Fatalf("Failed to load seed fixture: %v", err)
	}

	mockPublisher := testutil.NewMockPublisher()

	handler, err := app.Build(context.Background(), app.Deps{
		Fixture:        fixture,
		Publisher:      mockPublisher,
		Logger:         zerolog.Nop(),
		AllowedOrigins: []string{"http://localhost:3000"},
		PingMessage:    "pong",
		Now:            time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Failed to build application: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:        server,
		MockPublisher: mockPublisher,
		Client:        testutil.NewHTTPTestClient(server.URL + "/api"),
	}
}
