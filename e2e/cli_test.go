package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raceleague/steward/internal/api"
	"github.com/raceleague/steward/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "steward-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/steward")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	// Seed a steward account for the CLI to log in with
	require.NoError(t, app.AuthService.RegisterSteward(context.Background(), "race_director", "paddock-pass"))

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		AuthService: app.AuthService,
		Controller:  app.Controller,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type authResponse struct {
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

type driverResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type driverListResponse struct {
	Drivers []driverResponse `json:"drivers"`
}

type awardResponse struct {
	DriverID    string `json:"driver_id"`
	Points      int    `json:"points"`
	TotalPoints int    `json:"total_points"`
}

type removalResponse struct {
	DriverID    string `json:"driver_id"`
	Removed     int    `json:"removed"`
	TotalPoints int    `json:"total_points"`
}

type banListResponse struct {
	Bans []struct {
		DriverID string `json:"driver_id"`
		Kind     string `json:"kind"`
		Reason   string `json:"reason"`
	} `json:"bans"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_LoginSavesToken(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("login", "race_director", "--password", "paddock-pass")
	require.NoError(t, err, "output: %s", output)

	var resp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "race_director", resp.Username)
	assert.NotEmpty(t, resp.SessionToken)

	// Token file now holds the session; an authenticated command works
	output, err = cli.run("driver", "register", "44", "--name", "Lewis")
	require.NoError(t, err, "output: %s", output)

	var driver driverResponse
	require.NoError(t, json.Unmarshal([]byte(output), &driver))
	assert.Equal(t, "Lewis", driver.DisplayName)
}

func TestCLI_PenaltyFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("login", "race_director", "--password", "paddock-pass")
	require.NoError(t, err)

	// 15 points trips both ban thresholds
	output, err := cli.run("penalty", "award", "44", "15", "--reason", "causing a collision")
	require.NoError(t, err, "output: %s", output)

	var award awardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &award))
	assert.Equal(t, 15, award.TotalPoints)

	output, err = cli.run("ban", "list")
	require.NoError(t, err, "output: %s", output)

	var bans banListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &bans))
	assert.Len(t, bans.Bans, 2)

	// Removing 6 points lifts both bans
	output, err = cli.run("penalty", "remove", "44", "6", "--reason", "appeal upheld")
	require.NoError(t, err, "output: %s", output)

	var removal removalResponse
	require.NoError(t, json.Unmarshal([]byte(output), &removal))
	assert.Equal(t, 6, removal.Removed)
	assert.Equal(t, 9, removal.TotalPoints)

	output, err = cli.run("ban", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &bans))
	assert.Empty(t, bans.Bans)
}

func TestCLI_DriverCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("login", "race_director", "--password", "paddock-pass")
	require.NoError(t, err)

	_, err = cli.run("driver", "register", "44", "--name", "Lewis")
	require.NoError(t, err)
	_, err = cli.run("driver", "register", "16", "--name", "Charles")
	require.NoError(t, err)

	output, err := cli.run("driver", "list")
	require.NoError(t, err, "output: %s", output)

	var list driverListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Len(t, list.Drivers, 2)

	_, err = cli.run("driver", "remove", "44")
	require.NoError(t, err)

	output, err = cli.run("driver", "list")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Len(t, list.Drivers, 1)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Mutation without login
	output, err := cli.run("driver", "register", "44")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "authentication required")

	// Bad credentials
	output, err = cli.run("login", "race_director", "--password", "wrong")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid username or password")

	// Invalid ban kind
	_, err = cli.run("login", "race_director", "--password", "paddock-pass")
	require.NoError(t, err)

	output, err = cli.run("ban", "add", "44", "sprint")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "quali")
}
