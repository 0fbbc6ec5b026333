package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type spendwiseContainer struct {
	testcontainers.Container
	URI string
}

func setupSpendwise(ctx context.Context, t *testing.T) (*spendwiseContainer, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "test-secret"
	}

	natPort := nat.Port(port + "/tcp")

	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    "../",
			Dockerfile: "Dockerfile",
		},
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"PORT":         port,
			"GIN_MODE":     "release",
			"DATABASE_URL": "sqlite::memory:",
			"JWT_SECRET":   jwtSecret,
		},
		WaitingFor: wait.ForHTTP("/api/expenses").
			WithPort(natPort).
			WithStatusCodeMatcher(func(status int) bool {
				// No token yet, the gate answering 401 means the server is up
				return status == http.StatusUnauthorized
			}).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var spendwiseC *spendwiseContainer
	if container != nil {
		spendwiseC = &spendwiseContainer{Container: container}
	}
	if err != nil {
		return spendwiseC, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return spendwiseC, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return spendwiseC, err
	}

	spendwiseC.URI = fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return spendwiseC, nil
}

func postJSON(t *testing.T, url, token string, body any) (*http.Response, []byte) {
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestE2E_RegisterAndTrackExpense(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	spendwiseC, err := setupSpendwise(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, spendwiseC)

	resp, data := postJSON(t, spendwiseC.URI+"/api/users", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var tokenResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(data, &tokenResp))
	require.NotEmpty(t, tokenResp.Token)

	resp, data = postJSON(t, spendwiseC.URI+"/api/expenses", tokenResp.Token, map[string]any{
		"type":   "food",
		"amount": 12.5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	req, err := http.NewRequest(http.MethodGet, spendwiseC.URI+"/api/expenses", nil)
	require.NoError(t, err)
	req.Header.Set("x-auth-token", tokenResp.Token)

	listResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	listData, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)

	var expenses []map[string]any
	require.NoError(t, json.Unmarshal(listData, &expenses))
	require.Len(t, expenses, 1)
	assert.Equal(t, "food", expenses[0]["type"])
	assert.Equal(t, 12.5, expenses[0]["amount"])
}
