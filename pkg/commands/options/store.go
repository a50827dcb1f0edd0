package options

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/log"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/todo"
)

// StoreOptions are the persistent flags that decide where the list lives.
type StoreOptions struct {
	LogLevel  string
	Ephemeral bool
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level: debug, info, warn, error or disabled. Overrides the config file.")
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Keep the list in memory only. Nothing is read from or written to disk.")
}

// Session is an opened and loaded todo list.
type Session struct {
	Config  store.Config
	Storage store.Storage
	Store   *todo.Store
}

// Open loads configuration, sets up logging and reads the persisted list.
func (o *StoreOptions) Open() (*Session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel()
	if o.LogLevel != "" {
		level = o.LogLevel
	}
	log.Setup(os.Stderr, level)

	var st store.Storage
	if o.Ephemeral {
		st = store.NewMemory()
	} else {
		st, err = store.Load(cfg)
		if err != nil {
			return nil, err
		}
	}

	s := todo.New(st, todo.WithKey(cfg.Key()))
	if err := s.Load(); err != nil {
		return nil, err
	}
	log.Debug().Str("path", cfg.BasePath()).Str("key", cfg.Key()).Int("tasks", len(s.Tasks())).Msg("opened todo list")
	return &Session{Config: cfg, Storage: st, Store: s}, nil
}
