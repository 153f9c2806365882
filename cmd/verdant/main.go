package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"verdant/internal/aggregate"
	"verdant/internal/api"
	"verdant/internal/cli"
	"verdant/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Plant care server URL." env:"VERDANT_SERVER" default:"http://localhost:5000"`
	Config  string `help:"Session file path." type:"path" env:"VERDANT_CONFIG"`
	Debug   bool   `help:"Enable debug logging."`

	Login     cli.LoginCmd     `cmd:"" help:"Log in to the server."`
	Register  cli.RegisterCmd  `cmd:"" help:"Create an account."`
	Logout    cli.LogoutCmd    `cmd:"" help:"Log out and discard the session."`
	Whoami    cli.WhoamiCmd    `cmd:"" help:"Show the logged-in user."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show the care dashboard."`
	Plant     struct {
		List   cli.PlantListCmd   `cmd:"" help:"List your plants."`
		Add    cli.PlantAddCmd    `cmd:"" help:"Add a plant."`
		Edit   cli.PlantEditCmd   `cmd:"" help:"Edit a plant."`
		Delete cli.PlantDeleteCmd `cmd:"" help:"Delete a plant and its care history."`
	} `cmd:"" help:"Manage plants."`
	Plan struct {
		List   cli.PlanListCmd   `cmd:"" help:"List care plans."`
		Add    cli.PlanAddCmd    `cmd:"" help:"Create a care plan."`
		Edit   cli.PlanEditCmd   `cmd:"" help:"Edit a care plan."`
		Delete cli.PlanDeleteCmd `cmd:"" help:"Delete a care plan."`
	} `cmd:"" help:"Manage care plans."`
	Care struct {
		Log    cli.CareLogCmd    `cmd:"" help:"Log a care activity."`
		Recent cli.CareRecentCmd `cmd:"" help:"Show recent care logs."`
	} `cmd:"" help:"Log and review care."`
	Type struct {
		List   cli.TypeListCmd   `cmd:"" help:"List care types."`
		Add    cli.TypeAddCmd    `cmd:"" help:"Add a custom care type."`
		Edit   cli.TypeEditCmd   `cmd:"" help:"Edit a custom care type."`
		Delete cli.TypeDeleteCmd `cmd:"" help:"Delete a custom care type."`
	} `cmd:"" help:"Manage care types."`
	Species struct {
		List cli.SpeciesListCmd `cmd:"" help:"List the species catalog."`
		Add  cli.SpeciesAddCmd  `cmd:"" help:"Add a species to the catalog."`
	} `cmd:"" help:"Browse the species catalog."`
	Passwd cli.PasswdCmd `cmd:"" help:"Change your password."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("verdant"),
		kong.Description("Plant care tracking companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	log := zap.NewNop()
	if CLI.Debug {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	path := CLI.Config
	if path == "" {
		path = session.DefaultPath()
	}

	store, err := session.NewStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server := CLI.Server
	if s := store.Current().Server; s != "" {
		server = s
	}

	client := api.New(server,
		api.WithLogger(log),
		api.WithTokenSource(store.Token),
		api.WithUnauthorizedHandler(func() {
			// An expired or revoked token cannot recover mid-command; drop the
			// session so the next invocation prompts a fresh login.
			if err := store.Clear(); err != nil {
				log.Warn("failed to clear session", zap.Error(err))
			}
		}),
	)

	appCtx := &cli.Context{
		Session: store,
		API:     client,
		Agg:     aggregate.New(client, log),
		Log:     log,
		Server:  server,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
