package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/JAX838/delight-vision-sounds/internal/cart"
	"github.com/JAX838/delight-vision-sounds/internal/repositories"
	"github.com/JAX838/delight-vision-sounds/internal/services"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"github.com/JAX838/delight-vision-sounds/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	catalog    services.Catalog
	admin      *services.AdminService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	cart       *cart.Store
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Catalog    services.Catalog
	Admin      *services.AdminService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	Cart       *cart.Store
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		catalog:    opts.Catalog,
		admin:      opts.Admin,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		cart:       opts.Cart,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		productsCommand, cartCommand, adminCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openCart returns the cart store backed by the configured database, along
// with a closer for the underlying connection. An injected store (tests)
// is returned as-is with a no-op closer.
func (r *Runner) openCart() (*cart.Store, func(), error) {
	if r.cart != nil {
		return r.cart, func() {}, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	storage := repositories.NewCartStorage(repositories.NewKVRepository(db), r.logger)
	return cart.NewStore(storage, r.logger), func() { db.Close() }, nil
}

// shopEngine builds the engine around the given cart store.
func (r *Runner) shopEngine(store *cart.Store) *tasks.ShopEngine {
	return tasks.NewShopEngine(tasks.EngineOpts{
		Catalog:  r.catalog,
		Admin:    r.admin,
		Cart:     store,
		Notify:   tasks.LogNotifier{Logger: r.logger},
		Phone:    r.config.Store.WhatsAppPhone,
		Currency: r.config.Store.Currency,
	})
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
