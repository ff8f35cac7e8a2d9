// Command client exercises a running marmita-api server: it registers an
// account (unless -skip-register is set), logs in and prints the profile.
//
//	client -a localhost:3000 -email ana@example.com -password secret1 -name Ana
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/marmita-api/internal/adapter"
	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type options struct {
	address      string
	timeout      time.Duration
	name         string
	email        string
	password     string
	skipRegister bool
	logLevel     string
}

func main() {
	printBuildInfo()

	opts := parseOptions()

	log := logger.NewLogger("marmita-client")
	if err := log.SetLevel(opts.logLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping debug")
	}

	client, err := adapter.NewHTTPAPIClient(opts.address, opts.timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	if err = run(context.Background(), client, opts); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func parseOptions() options {
	var opts options

	flag.StringVar(&opts.address, "a", "localhost:3000", "API server address")
	flag.DurationVar(&opts.timeout, "t", 10*time.Second, "request timeout")
	flag.StringVar(&opts.name, "name", "Marmita User", "display name used for registration")
	flag.StringVar(&opts.email, "email", "", "account email")
	flag.StringVar(&opts.password, "password", "", "account password")
	flag.BoolVar(&opts.skipRegister, "skip-register", false, "log in with an existing account")
	flag.StringVar(&opts.logLevel, "l", "info", "log level")
	flag.Parse()

	return opts
}

func run(ctx context.Context, client adapter.APIClient, opts options) error {
	if opts.email == "" || opts.password == "" {
		return errors.New("-email and -password are required")
	}

	version, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}
	fmt.Printf("Server version: %s\n", version.Version)

	if !opts.skipRegister {
		created, err := client.Register(ctx, models.RegisterRequest{
			Name:     opts.name,
			Email:    opts.email,
			Password: opts.password,
		})
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Printf("Registered user %d (%s)\n", created.ID, created.Email)
	}

	login, err := client.Login(ctx, models.LoginRequest{Email: opts.email, Password: opts.password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Printf("%s as %s\n", login.Message, login.User.Role)

	profile, err := client.Profile(ctx)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
