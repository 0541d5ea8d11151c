//go:build e2e

package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"siteforms/internal/domain/checkout"
	"siteforms/internal/handler"
	"siteforms/internal/handler/api"
	"siteforms/internal/handler/middleware"
	"siteforms/internal/infra/kvstore"
	"siteforms/internal/infra/ratelimit"
	"siteforms/internal/pkg/clock"
	"siteforms/internal/pkg/config"
	"siteforms/internal/pkg/csrf"
	"siteforms/internal/usecase/commands"
	"siteforms/internal/usecase/queries"
	"siteforms/tests/common/mailtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
	redisAddr          string
)

func startRedisContainerOnce(t *testing.T) string {
	t.Helper()

	redisContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		}
		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start redis container")
		redisTestContainer = container

		host, err := container.Host(ctx)
		require.NoError(t, err)
		port, err := container.MappedPort(ctx, nat.Port("6379/tcp"))
		require.NoError(t, err)

		redisAddr = host + ":" + port.Port()
	})

	return redisAddr
}

// SharedSuite wires the full HTTP stack against a containerized Redis, with
// only mail delivery faked.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Redis   *redis.Client
	Cfg     config.Config
	CSRF    *csrf.Service
	Mailer  *mailtest.Recorder
	cleanup func()
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	addr := startRedisContainerOnce(s.T())

	s.Cfg = config.NewTestConfig()
	s.Cfg.Redis.Addr = addr

	client, cleanup, err := kvstore.NewRedisClient(s.Cfg.Redis)
	require.NoError(s.T(), err, "failed to connect to containerized redis")
	s.Redis = client
	s.cleanup = cleanup

	store := kvstore.NewRedisStore(client)
	clk := clock.NewRealClock()
	s.CSRF = csrf.NewService(s.Cfg.Session.Secret, s.Cfg.Session.TokenTTL)
	s.Mailer = mailtest.NewRecorder()

	limiter := ratelimit.NewLimiter(store, clk, s.Cfg.RateLimit)
	checkoutCmds := commands.NewCheckoutUseCase(store, clk, s.Cfg.Checkout, checkout.DefaultRefSource())
	submissionCmds := commands.NewSubmissionUseCase(s.CSRF, limiter, s.Mailer)
	checkoutQueries := queries.NewCheckoutQueries(store)

	engine := gin.New()
	handler.NewRouter(engine, s.Cfg,
		api.NewSessionHandler(s.CSRF),
		api.NewCheckoutHandler(checkoutCmds, checkoutQueries),
		api.NewSubmissionHandler(submissionCmds),
		middleware.NewSessionMiddleware(s.Cfg.Session),
	)
	s.Router = engine
}

func (s *SharedSuite) TearDownSuite() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *SharedSuite) SetupTest() {
	s.Mailer.Reset()
	// each test starts from an empty keyspace
	require.NoError(s.T(), s.Redis.FlushAll(context.Background()).Err())
}

func (s *SharedSuite) SetupSubTest() {
	s.Mailer.Reset()
}
