package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"starwars-api/internal/cache"
	"starwars-api/internal/config"
	"starwars-api/internal/database"
	"starwars-api/internal/identity"
	"starwars-api/internal/logger"
	"starwars-api/internal/router"
	"starwars-api/internal/seed"
	"starwars-api/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	initLogger = logger.Init
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn = database.RollbackAll
	seedFn = seed.Run
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

func testConfig() *config.Config {
	return &config.Config{
		Port:          3000,
		DatabaseURL:   "postgres://db",
		CacheTTL:      time.Minute,
		DefaultUserID: 1,
		WorkerCount:   1,
		LogLevel:      "error",
	}
}

func stubConfig(cfg *config.Config) {
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	initLogger = func(string, bool) {}
}

type fakePool struct{ submitted int32 }

func (p *fakePool) Submit(t worker.Task) { atomic.AddInt32(&p.submitted, 1) }
func (p *fakePool) Stop()                {}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	cfg := testConfig()
	cfg.RedisAddr = "127"
	cfg.RedisPassword = "pw"
	cfg.RedisDB = 1
	cfg.AdminToken = "secret"
	stubConfig(cfg)

	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://db", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	pool := &fakePool{}
	newWorkerPool = func(n int) worker.Pool { return pool }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":3000", addr)

		paths := map[string]bool{}
		for _, r := range e.Routes() {
			paths[r.Method+" "+r.Path] = true
		}
		require.True(t, paths["GET /swagger/*"])
		require.True(t, paths["GET /admin"])

		// 結尾斜線在路由前被移除
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		return http.ErrServerClosed
	}

	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
	require.EqualValues(t, 2, pool.submitted)
}

func TestRunWithoutRedis(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubConfig(testConfig())
	runMigrationsFn = func(string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) {
		t.Fatal("redis should not be dialed")
		return nil, nil
	}
	pool := &fakePool{}
	newWorkerPool = func(int) worker.Pool { return pool }
	startServer = func(e *echo.Echo, addr string) error {
		for _, r := range e.Routes() {
			require.NotEqual(t, "/admin", r.Path)
		}
		return nil
	}

	require.NoError(t, run())
	require.Zero(t, pool.submitted)
}

func TestRunErrors(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		loadConfig = func() (*config.Config, error) { return nil, errors.New("無效的 PORT") }
		require.EqualError(t, run(), "無效的 PORT")
	})

	t.Run("migrations", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		stubConfig(testConfig())
		runMigrationsFn = func(string) error { return errors.New("m") }
		require.ErrorContains(t, run(), "Migration 執行失敗")
	})

	t.Run("db", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		stubConfig(testConfig())
		runMigrationsFn = func(string) error { return nil }
		newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("d") }
		require.ErrorContains(t, run(), "DB 連線失敗")
	})

	t.Run("redis", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		cfg := testConfig()
		cfg.RedisAddr = "127"
		stubConfig(cfg)
		runMigrationsFn = func(string) error { return nil }
		closed := false
		newPgxPool = func(context.Context, string) (database.DB, error) {
			return &database.FakeDB{CloseFn: func() { closed = true }}, nil
		}
		newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("r") }
		require.ErrorContains(t, run(), "Redis 連線失敗")
		require.True(t, closed)
	})

	t.Run("server", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		stubConfig(testConfig())
		runMigrationsFn = func(string) error { return nil }
		newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
		newWorkerPool = func(int) worker.Pool { return &fakePool{} }
		startServer = func(*echo.Echo, string) error { return errors.New("bind") }
		require.EqualError(t, run(), "bind")
	})
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestMigrateCommands(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubConfig(testConfig())
	var up, down int
	runMigrationsFn = func(url string) error { up++; return nil }
	rollbackAllFn = func(url string) error { down++; return nil }

	require.NoError(t, execute(t, "migrate", "up"))
	require.NoError(t, execute(t, "migrate", "down"))
	require.Equal(t, 1, up)
	require.Equal(t, 1, down)

	rollbackAllFn = func(string) error { return errors.New("x") }
	require.ErrorContains(t, execute(t, "migrate", "down"), "RollbackAll 失敗")

	require.Error(t, execute(t, "migrate", "up", "extra"))
}

func TestSeedCommand(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubConfig(testConfig())
	runMigrationsFn = func(string) error { return nil }
	closed := false
	fake := &database.FakeDB{CloseFn: func() { closed = true }}
	newPgxPool = func(context.Context, string) (database.DB, error) { return fake, nil }
	seeded := false
	seedFn = func(ctx context.Context, db database.DB) (seed.Result, error) {
		seeded = true
		require.Same(t, fake, db)
		return seed.Result{}, nil
	}

	require.NoError(t, execute(t, "seed"))
	require.True(t, seeded)
	require.True(t, closed)

	seedFn = func(context.Context, database.DB) (seed.Result, error) { return seed.Result{}, errors.New("dup") }
	require.EqualError(t, execute(t, "seed"), "dup")
}

func TestSeedCommandInvalidatesListingCache(t *testing.T) {
	seedWith := func(t *testing.T, res seed.Result, seedErr error) ([]string, error) {
		t.Helper()
		cfg := testConfig()
		cfg.RedisAddr = "127"
		stubConfig(cfg)
		runMigrationsFn = func(string) error { return nil }
		newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
		var deleted []string
		newRedisClient = func(string, string, int) (cache.Cache, error) {
			return &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				deleted = append(deleted, keys...)
				return redis.NewIntResult(int64(len(keys)), nil)
			}}, nil
		}
		seedFn = func(context.Context, database.DB) (seed.Result, error) { return res, seedErr }
		err := execute(t, "seed")
		return deleted, err
	}

	t.Run("catalog seeded", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		deleted, err := seedWith(t, seed.Result{Users: 1, Planets: 5, People: 5}, nil)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{cache.KeyPlanets, cache.KeyPeople}, deleted)
	})

	t.Run("partial seed still invalidates", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		deleted, err := seedWith(t, seed.Result{Planets: 2}, errors.New("dup"))
		require.EqualError(t, err, "dup")
		require.ElementsMatch(t, []string{cache.KeyPlanets, cache.KeyPeople}, deleted)
	})

	t.Run("nothing inserted", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		// FakeCache 未設定 DelFn 時呼叫 Del 會 panic
		newRedisClientCalled := false
		cfg := testConfig()
		cfg.RedisAddr = "127"
		stubConfig(cfg)
		runMigrationsFn = func(string) error { return nil }
		newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
		newRedisClient = func(string, string, int) (cache.Cache, error) {
			newRedisClientCalled = true
			return &cache.FakeCache{}, nil
		}
		seedFn = func(context.Context, database.DB) (seed.Result, error) { return seed.Result{}, nil }
		require.NoError(t, execute(t, "seed"))
		require.True(t, newRedisClientCalled)
	})

	t.Run("invalidation error", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		cfg := testConfig()
		cfg.RedisAddr = "127"
		stubConfig(cfg)
		runMigrationsFn = func(string) error { return nil }
		newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
		newRedisClient = func(string, string, int) (cache.Cache, error) {
			return &cache.FakeCache{DelFn: func(context.Context, ...string) *redis.IntCmd {
				return redis.NewIntResult(0, errors.New("down"))
			}}, nil
		}
		seedFn = func(context.Context, database.DB) (seed.Result, error) { return seed.Result{People: 1}, nil }
		require.ErrorContains(t, execute(t, "seed"), "清除列表快取失敗")
	})

	t.Run("redis unreachable", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		cfg := testConfig()
		cfg.RedisAddr = "127"
		stubConfig(cfg)
		runMigrationsFn = func(string) error { return nil }
		newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
		newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("r") }
		seedFn = func(context.Context, database.DB) (seed.Result, error) {
			t.Fatal("seed should not run")
			return seed.Result{}, nil
		}
		require.ErrorContains(t, execute(t, "seed"), "Redis 連線失敗")
	})
}

// idRow 模擬 RETURNING id 或查無資料
type idRow struct {
	id  int
	err error
}

func (r idRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.id
	return nil
}

func TestTrailingSlashIgnored(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			if strings.Contains(sql, "INSERT INTO favorites") {
				return idRow{id: 1}
			}
			return idRow{err: pgx.ErrNoRows}
		},
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}
	e := newEcho(testConfig())
	router.Setup(e, db, cache.Noop{}, router.Options{
		Resolver: identity.Static{UserID: 1},
		CacheTTL: time.Minute,
	})

	cases := []struct {
		method string
		target string
		code   int
		body   string
	}{
		{http.MethodGet, "/user/", http.StatusOK, `{"msg":"Hello, this is your GET /user response "}`},
		{http.MethodGet, "/planets/7/", http.StatusNotFound, `{"error":"Planeta no encontrado"}`},
		{http.MethodGet, "/people/7/", http.StatusNotFound, `{"error":"Persona no encontrada"}`},
		{http.MethodPost, "/favorite/planet/1/", http.StatusOK, `{"message":"Planeta favorito agregado"}`},
		{http.MethodPost, "/favorite/people/2/", http.StatusOK, `{"message":"Personaje favorito agregado"}`},
		{http.MethodDelete, "/favorite/planet/1/", http.StatusOK, `{"message":"Planeta eliminado con exito"}`},
		{http.MethodDelete, "/favorite/people/2/", http.StatusOK, `{"message":"Personaje borrado con exito"}`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
		require.Equal(t, tc.code, rec.Code, tc.method+" "+tc.target)
		require.JSONEq(t, tc.body, rec.Body.String(), tc.method+" "+tc.target)
	}
}
