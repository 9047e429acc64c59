// Command console is a headless walkthrough of the client session layer:
// it hydrates the persisted session, optionally logs in with credentials
// from the environment, and prints the guard decision and menu the
// resulting session would see.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/rentora/console-client/api"
	"github.com/rentora/console-client/config"
	"github.com/rentora/console-client/guard"
	"github.com/rentora/console-client/internal/observability"
	"github.com/rentora/console-client/menu"
	"github.com/rentora/console-client/permissions"
	"github.com/rentora/console-client/routes"
	"github.com/rentora/console-client/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "console:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client := api.NewClient(cfg.API.BaseURL, cfg.API.TenantID, logger,
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))

	nav := session.NavigatorFunc(func(path string) {
		logger.Info("navigate", zap.String("path", path))
	})

	store, err := session.New(client, session.NewFileTokenStorage(cfg.Storage.TokenPath), nav, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store.Hydrate(ctx)

	if email := os.Getenv("CONSOLE_EMAIL"); email != "" && !store.Snapshot().Authenticated() {
		creds := api.Credentials{Email: email, Password: os.Getenv("CONSOLE_PASSWORD")}
		if err := store.Login(ctx, creds); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	// Login awaited the profile fetch; hydrate did not, so refresh once more
	// before reporting so the tier is current either way.
	store.FetchProfile(ctx)
	snap := store.Snapshot()

	fmt.Printf("authenticated: %v  role: %q  tier: %s\n",
		snap.Authenticated(), snap.Role(), snap.Tier)

	g := guard.New(logger)
	for _, dest := range []guard.Destination{
		{Path: routes.Dashboard, RequiresAuth: true},
		{Path: routes.Bookings, RequiresAuth: true},
		{Path: routes.AdminDashboard, RequiresAuth: true},
		{Path: routes.Login},
	} {
		decision := g.Decide(dest, snap)
		if decision.Allowed {
			fmt.Printf("%-32s allow\n", dest.Path)
		} else {
			fmt.Printf("%-32s redirect -> %s\n", dest.Path, decision.Redirect)
		}
	}

	eval := permissions.NewEvaluator(nil)
	fmt.Printf("cars:write=%v staff:manage=%v pro-tier=%v\n",
		eval.HasPermission(snap, "cars:write"),
		eval.HasPermission(snap, "staff:manage"),
		eval.HasSubscription(snap, session.TierPro))

	for _, item := range menu.NewResolver(nil).Resolve(snap.Role()) {
		line := fmt.Sprintf("  %-14s %s", item.Label, item.Path)
		if item.Badge != "" {
			line += " [" + item.Badge + "]"
		}
		fmt.Println(line)
	}

	return nil
}
