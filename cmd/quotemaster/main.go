// Command-line entry point for QuoteMaster.
//
// Two commands:
//
//	extract - parse pasted itinerary text from a file or stdin and print
//	          the extracted flight legs as JSON.
//	serve   - run the REST API (parser, city tax calculator, package
//	          scraper, admin rule editor).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"quotemaster/internal/citytax"
	"quotemaster/internal/events"
	"quotemaster/internal/itinerary"
	"quotemaster/internal/server"
	"quotemaster/internal/storage"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "quotemaster - commands:")
	fmt.Fprintln(w, "  extract  - parse itinerary text and output JSON legs")
	fmt.Fprintln(w, "  serve    - run the REST API server")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quotemaster extract [-input itinerary.txt] [-output legs.json] [-pretty] [-stats]")
	fmt.Fprintln(w, "  quotemaster serve [-port 3000] [-db rules.db] [-postgres DSN] [-nats URL]")
	fmt.Fprintln(w, "")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "extract":
		runExtract(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

func runExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	inPath := fs.String("input", "", "Input text file (default: stdin)")
	outPath := fs.String("output", "", "Output JSON file (default: stdout)")
	pretty := fs.Bool("pretty", false, "Pretty-print JSON output")
	showStats := fs.Bool("stats", false, "Print the detected format and leg count to stderr")
	_ = fs.Parse(args)

	var r io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	text, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(1)
	}

	legs, format := itinerary.Detect(string(text))

	if *showStats {
		fmt.Fprintf(os.Stderr, "format=%s legs=%d\n", format, len(legs))
	}

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(legs, "", "  ")
	} else {
		out, err = json.Marshal(legs)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	out = append(out, '\n')

	if *outPath != "" {
		if err := os.WriteFile(*outPath, out, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
			os.Exit(1)
		}
		return
	}
	_, _ = os.Stdout.Write(out)
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("port", 3000, "HTTP listen port")
	adminPassword := fs.String("admin-password", "admin123", "Admin password for the rule editor")
	scrapeHost := fs.String("scrape-host", "holidays.flightsandpackages.com", "Host the scraper accepts URLs from")

	dbPath := fs.String("db", "quotemaster.db", "SQLite path for tax rule overrides (empty disables)")
	postgresDSN := fs.String("postgres", "", "PostgreSQL DSN for tax rule overrides (overrides -db)")

	chHost := fs.String("clickhouse-host", "", "ClickHouse host for the parse archive (empty disables)")
	chPort := fs.Int("clickhouse-port", 9000, "ClickHouse port")
	chDatabase := fs.String("clickhouse-db", "quotemaster", "ClickHouse database")
	chUser := fs.String("clickhouse-user", "default", "ClickHouse user")
	chPassword := fs.String("clickhouse-password", "", "ClickHouse password")

	natsURL := fs.String("nats", "", "NATS server URL for parse events (empty disables)")
	natsSubject := fs.String("nats-subject", events.DefaultSubject, "NATS subject for parse events")
	_ = fs.Parse(args)

	ctx := context.Background()
	log.Printf("Registered %d itinerary formats", itinerary.Formats())
	taxes := citytax.NewTable()
	cfg := server.Config{
		Port:          *port,
		AdminPassword: *adminPassword,
		ScrapeHost:    *scrapeHost,
	}

	// Durable rule overrides: PostgreSQL when a DSN is given, SQLite
	// otherwise.
	var store storage.TaxStore
	var err error
	switch {
	case *postgresDSN != "":
		store, err = storage.OpenPostgres(ctx, *postgresDSN)
	case *dbPath != "":
		store, err = storage.OpenSQLite(*dbPath)
	}
	if err != nil {
		log.Fatalf("open tax store: %v", err)
	}
	if store != nil {
		defer store.Close()

		overrides, err := store.All(ctx)
		if err != nil {
			log.Fatalf("load tax overrides: %v", err)
		}
		for key, rule := range overrides {
			taxes.Set(key, rule)
		}
		log.Printf("Loaded %d tax rule overrides", len(overrides))
		cfg.Store = store
	}

	if *chHost != "" {
		archive, err := storage.OpenParseArchive(ctx, storage.ClickHouseConfig{
			Host:     *chHost,
			Port:     *chPort,
			Database: *chDatabase,
			User:     *chUser,
			Password: *chPassword,
		})
		if err != nil {
			log.Fatalf("open parse archive: %v", err)
		}
		defer archive.Close()
		cfg.Archive = archive
	}

	if *natsURL != "" {
		publisher, err := events.Connect(*natsURL, *natsSubject)
		if err != nil {
			log.Fatalf("connect nats: %v", err)
		}
		defer publisher.Close()
		cfg.Publisher = publisher
	}

	if err := server.New(taxes, cfg).Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
