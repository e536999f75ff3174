//go:build integration

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/Gunvolt24/pixelcraft/internal/repo/postgres"
)

// lifecycle — этапы жизни контейнеров в лог теста (создан, готов, остановлен).
func lifecycle(service string) tc.CustomizeRequestOption {
	l := zap.NewExample().Sugar().Named("tc").With("service", service)
	short := func(c tc.Container) string {
		id := c.GetContainerID()
		if len(id) > 12 {
			id = id[:12]
		}
		return id
	}
	return tc.WithLifecycleHooks(tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{func(_ context.Context, req tc.ContainerRequest) error {
			l.Infow("creating", "image", req.Image)
			return nil
		}},
		PostReadies: []tc.ContainerHook{func(_ context.Context, c tc.Container) error {
			l.Infow("ready", "id", short(c))
			return nil
		}},
		PostTerminates: []tc.ContainerHook{func(_ context.Context, c tc.Container) error {
			l.Infow("terminated", "id", short(c))
			return nil
		}},
	})
}

// PGContainer — Postgres каталога и рассылки.
type PGContainer struct {
	Container *tcpostgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		lifecycle("postgres"),
		tcpostgres.WithDatabase("pixelcraft"),
		tcpostgres.WithUsername("app"),
		tcpostgres.WithPassword("app"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, fmt.Errorf("postgres dsn: %w", err)
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{MaxConns: 5, AppName: "pixelcraft-itest"})
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}
	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// KafkaEnv — redpanda для фида каталога.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(ctx, "docker.redpanda.com/redpandadata/redpanda:v23.3.8",
		lifecycle("redpanda"),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}, stop, nil
}

// RedisEnv — Redis для корзин сессий.
type RedisEnv struct {
	Container tc.Container
	Addr      string
}

// StartRedisTC — generic-контейнер redis:7-alpine.
func StartRedisTC(ctx context.Context) (*RedisEnv, func(context.Context) error, error) {
	ctr, err := tc.Run(ctx, "redis:7-alpine",
		lifecycle("redis"),
		tc.WithExposedPorts("6379/tcp"),
		tc.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort("6379/tcp"),
				wait.ForLog("Ready to accept connections"),
			).WithDeadline(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redis: %w", err)
	}

	endpoint, err := ctr.Endpoint(ctx, "")
	if err != nil {
		_ = tc.TerminateContainer(ctr)
		return nil, nil, fmt.Errorf("redis endpoint: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(ctr) }
	return &RedisEnv{Container: ctr, Addr: endpoint}, stop, nil
}
