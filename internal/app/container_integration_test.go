//go:build integration

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"logistics-backoffice/internal/config"
)

func startPostgres(t *testing.T) config.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("backoffice"),
		postgres.WithUsername("backoffice"),
		postgres.WithPassword("backoffice"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return config.DB{
		Host:    host,
		Port:    port.Port(),
		User:    "backoffice",
		Pass:    "backoffice",
		Name:    "backoffice",
		SSLMode: "disable",
	}
}

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func listCourierNames(t *testing.T, url, token string) []string {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url+"/couriers", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	names := make([]string, 0, len(out))
	for _, c := range out {
		names = append(names, c.Name)
	}
	return names
}

func TestContainer_Integration_CRUDAndChangefeed(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := testConfig()
	cfg.DB = startPostgres(t)

	c := NewContainerBuilder().
		WithConfig(func() (*config.Config, error) { return cfg, nil }).
		MustBuild(ctx)

	err := c.Invoke(func(h http.Handler, pool *pgxpool.Pool, in runIn) {
		srv := httptest.NewServer(h)
		defer srv.Close()

		for _, tk := range in.Tasks {
			tk := tk
			if tk.name == "changefeed listener" || tk.name == "couriers follower" {
				go func() { _ = tk.run(ctx) }()
			}
		}

		creds := map[string]string{"email": "ops@example.com", "password": "correct-horse"}
		resp := postJSON(t, srv.URL+"/auth/register", "", creds)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var user struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))

		resp = postJSON(t, srv.URL+"/auth/login", "", creds)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var login struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
		require.NotEmpty(t, login.Token)

		resp = postJSON(t, srv.URL+"/couriers", login.Token, map[string]any{
			"name":           "Ana Souza",
			"license_number": "CNH-0001",
			"license_expiry": time.Now().AddDate(1, 0, 0).Format(time.DateOnly),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Contains(t, listCourierNames(t, srv.URL, login.Token), "Ana Souza")

		_, err := pool.Exec(ctx,
			`INSERT INTO couriers (user_id, name, license_number, license_expiry) VALUES ($1, $2, $3, $4)`,
			user.ID, "Bruno Lima", "CNH-0002", time.Now().AddDate(1, 0, 0))
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			for _, n := range listCourierNames(t, srv.URL, login.Token) {
				if n == "Bruno Lima" {
					return true
				}
			}
			return false
		}, 10*time.Second, 100*time.Millisecond)
	})
	require.NoError(t, err)
}
