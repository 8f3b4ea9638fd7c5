// Command contacts is the terminal client of the contact API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"contactlog/config"
	"contactlog/internal/client/apiclient"
	"contactlog/internal/client/listview"
	"contactlog/internal/client/state"
	"contactlog/internal/domain/entity"
	logs "contactlog/internal/infra/log"
	"contactlog/internal/tui"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

var version = "dev"

// CLI is the top-level command structure for contacts.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	BaseURL string           `help:"Contact API base URL (default client.baseUrl from config)." name:"base-url" env:"CONTACTS_BASE_URL"`
	Timeout time.Duration    `help:"Per-request timeout (default client.timeout from config)."`
	Verbose bool             `help:"Log API calls to stderr." short:"v"`

	TUI  TUICmd  `cmd:"" default:"1" help:"Open the interactive contact book."`
	List ListCmd `cmd:"" help:"Print every contact."`
	Seed SeedCmd `cmd:"" help:"Replace the server's contacts with the fixture set."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// TUICmd opens the interactive contact book.
type TUICmd struct{}

// Run launches the TUI against the configured server.
func (c *TUICmd) Run(ctx context.Context, client *apiclient.Client) error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	prog := tea.NewProgram(tui.NewModel(ctx, client), tea.WithAltScreen(), tea.WithContext(ctx))

	return c.run(isTTY, prog)
}

func (c *TUICmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return errors.New("tui: requires a terminal (TTY), use list for plain output")
	}
	_, err := prog.Run()

	return err
}

// ListCmd prints every contact.
type ListCmd struct {
	JSON bool `help:"Print JSON instead of a table."`
}

// Run fetches and prints the collection.
func (c *ListCmd) Run(ctx context.Context, client *apiclient.Client, out io.Writer) error {
	contacts, err := client.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list")
	}

	return printContacts(out, contacts, c.JSON)
}

// SeedCmd reloads the fixture set on the server.
type SeedCmd struct {
	JSON bool `help:"Print JSON instead of a table."`
}

// Run seeds and prints the new collection.
func (c *SeedCmd) Run(ctx context.Context, client *apiclient.Client, out io.Writer) error {
	contacts, err := client.Seed(ctx)
	if err != nil {
		return errors.Wrap(err, "seed")
	}
	if !c.JSON {
		_, _ = fmt.Fprintf(out, "seeded %d contacts\n", len(contacts))
	}

	return printContacts(out, contacts, c.JSON)
}

func printContacts(out io.Writer, contacts []*entity.Contact, asJSON bool) error {
	if asJSON {
		if contacts == nil {
			contacts = []*entity.Contact{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(contacts), "encode contacts")
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "NAME", "EMAIL", "PHONE", "ADDRESS")
	for _, row := range listview.Rows(state.New(contacts)) {
		t.Row(row.ID, row.Name, row.Email, row.Phone, row.Address)
	}
	_, err := fmt.Fprintln(out, t.Render())

	return errors.Wrap(err, "write contacts")
}

// loadConfig reads the shared config file, falling back to built-in defaults
// when none is found next to the binary.
func loadConfig() *config.Config {
	cfg, err := config.New()
	if err != nil {
		return config.Defaults()
	}

	return cfg
}

func newClient(cli *CLI, cfg *config.Config, stderr io.Writer) (*apiclient.Client, error) {
	baseURL := cfg.Client.BaseURL
	if cli.BaseURL != "" {
		baseURL = cli.BaseURL
	}
	timeout := cfg.Client.Timeout
	if cli.Timeout > 0 {
		timeout = cli.Timeout
	}

	logOut := io.Discard
	if cli.Verbose {
		logOut = stderr
		cfg.Env.Log.Level = slog.LevelDebug.String()
	}
	logger, err := logs.NewWithWriter(cfg, logOut)
	if err != nil {
		return nil, errors.Wrap(err, "logger")
	}

	return apiclient.New(baseURL, timeout, logger), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("contacts"),
		kong.Description("Terminal client for the contact API."),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	client, err := newClient(&cli, loadConfig(), stderr)
	if err != nil {
		return err
	}
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.BindTo(stdout, (*io.Writer)(nil))

	return kctx.Run(client)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
