package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questlog-api/internal/config"
)

// Version is reported by --version
const Version = "0.1.0"

// flagKeys maps config keys to the persistent flags that override them
var flagKeys = map[string]string{
	"redis.addr":  "redis-addr",
	"redis.db":    "redis-db",
	"catalog.dsn": "catalog-dsn",
	"log.level":   "log-level",
	"log.format":  "log-format",
	"rng.seed":    "seed",
	"user.id":     "user",
	"user.email":  "email",
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "questlog",
		Short:         "Turn your to-do list into an RPG",
		Long:          "questlog tracks quests, levels up a character from finished work and lets that character fight monsters.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.String("redis-addr", "", "Redis address for profiles, quests and inventory")
	flags.Int("redis-db", 0, "Redis database index")
	flags.String("catalog-dsn", "", "catalog database: SQLite path or postgres:// URL")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-format", "", "text or json")
	flags.Uint64("seed", 0, "seed for random picks, 0 for a random seed")
	flags.StringP("user", "u", "", "user to act as")
	flags.String("email", "", "email recorded on a new profile")

	cmd.AddCommand(
		newQuestCmd(opts),
		newCharacterCmd(opts),
		newFightCmd(opts),
		newShopCmd(opts),
		newCatalogCmd(opts),
	)
	return cmd
}

// loadConfig resolves settings for cmd: flags over QUESTLOG_* env over the
// config file over defaults
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Root().PersistentFlags(), flagKeys); err != nil {
		return nil, err
	}
	return config.Load(v, opts.configPath)
}
