package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questlog-api/internal/config"
	"github.com/KirkDiggler/questlog-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.dir, "questlog.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(config.New(), "")
	s.Require().NoError(err)

	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(0, cfg.Redis.DB)
	s.Equal("questlog.db", cfg.Catalog.DSN)
	s.True(cfg.Catalog.Seed)
	s.Equal("info", cfg.Log.Level)
	s.Equal("text", cfg.Log.Format)
	s.Equal(5*time.Second, cfg.Flush.Interval)
	s.Equal(10, cfg.Combat.LogLimit)
	s.Equal(uint64(0), cfg.RNG.Seed)
	s.Equal("local", cfg.User.ID)
}

func (s *ConfigTestSuite) TestFileOverridesDefaults() {
	path := s.writeFile(`
redis:
  addr: redis.internal:6380
  db: 2
catalog:
  dsn: postgres://questlog@db/questlog
log:
  level: DEBUG
  format: json
flush:
  interval: 250ms
combat:
  log_limit: 4
rng:
  seed: 99
`)

	cfg, err := config.Load(config.New(), path)
	s.Require().NoError(err)

	s.Equal("redis.internal:6380", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal("postgres://questlog@db/questlog", cfg.Catalog.DSN)
	s.Equal("debug", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)
	s.Equal(250*time.Millisecond, cfg.Flush.Interval)
	s.Equal(4, cfg.Combat.LogLimit)
	s.Equal(uint64(99), cfg.RNG.Seed)
}

func (s *ConfigTestSuite) TestEnvironmentOverridesFile() {
	path := s.writeFile("redis:\n  addr: from-file:6379\n")
	s.T().Setenv("QUESTLOG_REDIS_ADDR", "from-env:6379")
	s.T().Setenv("QUESTLOG_COMBAT_LOG_LIMIT", "3")

	cfg, err := config.Load(config.New(), path)
	s.Require().NoError(err)

	s.Equal("from-env:6379", cfg.Redis.Addr)
	s.Equal(3, cfg.Combat.LogLimit)
}

func (s *ConfigTestSuite) TestFlagsOverrideEnvironment() {
	s.T().Setenv("QUESTLOG_USER_ID", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("user", "", "")
	flags.String("log-level", "info", "")
	s.Require().NoError(flags.Parse([]string{"--user", "from-flag", "--log-level", "warn"}))

	v := config.New()
	s.Require().NoError(config.BindFlags(v, flags, map[string]string{
		"user.id":   "user",
		"log.level": "log-level",
		"redis.db":  "not-registered",
	}))

	cfg, err := config.Load(v, "")
	s.Require().NoError(err)
	s.Equal("from-flag", cfg.User.ID)
	s.Equal(slog.LevelWarn, cfg.Log.SlogLevel())
}

func (s *ConfigTestSuite) TestValidation() {
	path := s.writeFile(`
redis:
  addr: ""
  db: -1
log:
  level: loud
  format: xml
flush:
  interval: 0s
`)

	_, err := config.Load(config.New(), path)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	for _, key := range []string{"redis.addr", "redis.db", "log.level", "log.format", "flush.interval"} {
		s.Contains(fields, key)
	}
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := config.Load(config.New(), filepath.Join(s.dir, "absent.yaml"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestRedisOptions(t *testing.T) {
	opts := config.RedisConfig{Addr: "x:1", DB: 3, Password: "pw", PoolSize: 7, UseTLS: true}.RedisOptions()
	require.NotNil(t, opts)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 7, opts.PoolSize)
	assert.True(t, opts.UseTLS)
}
