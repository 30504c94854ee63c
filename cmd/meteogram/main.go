package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/gustfront/meteogram/internal/api"
	"github.com/gustfront/meteogram/internal/ingest"
	"github.com/gustfront/meteogram/internal/store"
)

type cliFlags struct {
	DB           string  `name:"db" default:"data/meteogram.db" help:"Path to SQLite database."`
	Port         string  `name:"port" default:"8080" env:"PORT" help:"HTTP server port."`
	UpstreamURL  string  `name:"upstream-url" default:"https://ensemble-api.open-meteo.com" env:"UPSTREAM_URL" help:"Base URL of the ensemble forecast API."`
	Timezone     string  `name:"timezone" default:"Australia/Sydney" env:"TIMEZONE" help:"IANA timezone for the charted location."`
	Latitude     float64 `name:"latitude" default:"-33.8678" env:"LATITUDE" help:"Latitude of the charted location."`
	Longitude    float64 `name:"longitude" default:"151.2073" env:"LONGITUDE" help:"Longitude of the charted location."`
	ForecastDays int     `name:"forecast-days" default:"14" env:"FORECAST_DAYS" help:"Forecast horizon in days."`
}

func main() {
	var cli cliFlags
	kong.Parse(&cli,
		kong.Name("meteogram"),
		kong.Description("Ensemble forecast statistics server."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	db, err := sql.Open("sqlite", cli.DB)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	// Load timezone once at startup
	loc, err := time.LoadLocation(cli.Timezone)
	if err != nil {
		log.Printf("Warning: could not load timezone %s, using UTC: %v", cli.Timezone, err)
		loc = time.UTC
	}

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("database migrated")

	client := ingest.NewClient(cli.UpstreamURL, loc)
	fetcher := ingest.NewFetcher(client)
	site := api.Site{
		Latitude:     cli.Latitude,
		Longitude:    cli.Longitude,
		ForecastDays: cli.ForecastDays,
	}
	server := api.NewServer(st, fetcher, cli.Port, loc, site)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("serving on :%s (site %.4f,%.4f, horizon %dd)", cli.Port, cli.Latitude, cli.Longitude, cli.ForecastDays)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
