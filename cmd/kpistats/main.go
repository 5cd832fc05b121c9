package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/moguls753/football-kpi/internal/container"
	"github.com/moguls753/football-kpi/internal/display"
	"github.com/moguls753/football-kpi/internal/export"
	"github.com/moguls753/football-kpi/internal/kpi"
	"github.com/moguls753/football-kpi/internal/kpi/statistics"
	"github.com/moguls753/football-kpi/internal/source/csvfile"
	"github.com/moguls753/football-kpi/internal/source/postgres"
)

type options struct {
	source       string
	file         string
	dsn          string
	useContainer bool
	league       string
	season       int
	kpi          string
	team         string
	compare      string
	withLeague   bool
	agg          string
	bins         int
	outDir       string
	standings    bool
	matches      bool
	list         string
}

// directory is the part of the store that browses leagues, seasons and teams
type directory interface {
	Leagues(ctx context.Context) ([]string, error)
	Seasons(ctx context.Context, league string) ([]int, error)
	SeasonID(ctx context.Context, league string, seasonYear int) (int, error)
	Teams(ctx context.Context, seasonID int) ([]string, error)
}

func main() {
	var opts options
	flag.StringVar(&opts.source, "source", "postgres", "Where series come from (postgres, csv)")
	flag.StringVar(&opts.file, "file", "", "CSV file with series,game_week,value rows (csv source)")
	flag.StringVar(&opts.dsn, "dsn", postgres.DefaultDSN, "PostgreSQL connection string")
	flag.BoolVar(&opts.useContainer, "container", false, "Start the PostgreSQL container before querying")
	flag.StringVar(&opts.league, "league", "", "League name (postgres source)")
	flag.IntVar(&opts.season, "season", 0, "Season year (postgres source)")
	flag.StringVar(&opts.kpi, "kpi", "goals_scored", "KPI column to analyse")
	flag.StringVar(&opts.team, "team", "", "Primary team; empty uses the league aggregate (postgres) or the first series (csv)")
	flag.StringVar(&opts.compare, "compare", "", "Comma-separated comparison teams or series")
	flag.BoolVar(&opts.withLeague, "with-league", false, "Add the league aggregate as a comparison series (postgres source)")
	flag.StringVar(&opts.agg, "agg", "avg", "League aggregation (avg, total)")
	flag.IntVar(&opts.bins, "bins", statistics.DefaultBinCount, "Number of histogram bins")
	flag.StringVar(&opts.outDir, "out-dir", "", "Write stats, histogram and time-series CSV files to this directory")
	flag.BoolVar(&opts.standings, "standings", false, "Print the league table (postgres source)")
	flag.BoolVar(&opts.matches, "matches", false, "Print the match log of -team (postgres source)")
	flag.StringVar(&opts.list, "list", "", "List leagues, seasons (of -league) or teams (of -league and -season) and exit")
	flag.Parse()

	if opts.list != "" {
		if !validList(opts.list) {
			log.Fatalf("Invalid list: %s (must be 'leagues', 'seasons' or 'teams')", opts.list)
		}
		err := withStore(opts, func(ctx context.Context, store *postgres.Store) error {
			return list(ctx, os.Stdout, store, opts)
		})
		if err != nil {
			log.Fatalf("Failed to list %s: %v", opts.list, err)
		}
		return
	}

	k, err := kpi.LookupKPI(opts.kpi)
	if err != nil {
		log.Fatalf("Invalid kpi: %v", err)
	}

	fmt.Println("Football KPI Statistics")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Source:       %s\n", opts.source)
	fmt.Printf("KPI:          %s\n", k.Title())
	fmt.Printf("Bins:         %d\n", opts.bins)
	if opts.source == "postgres" {
		fmt.Printf("League:       %s %d\n", opts.league, opts.season)
		fmt.Printf("Aggregation:  %s\n", opts.agg)
	}
	fmt.Println()

	var primary kpi.Series
	var comparisons []kpi.Series

	switch opts.source {
	case "csv":
		primary, comparisons, err = loadFromCSV(opts)
	case "postgres":
		primary, comparisons, err = loadFromPostgres(opts, k)
	default:
		log.Fatalf("Invalid source: %s (must be 'postgres' or 'csv')", opts.source)
	}
	if err != nil {
		log.Fatalf("Failed to load series: %v", err)
	}
	fmt.Printf("✓ Loaded primary series %q (%d game weeks, %d gaps)\n", primary.Name, len(primary.Points), primary.Gaps())
	for _, s := range comparisons {
		fmt.Printf("✓ Loaded comparison series %q (%d game weeks, %d gaps)\n", s.Name, len(s.Points), s.Gaps())
	}

	report, err := kpi.Analyze(string(k), primary, comparisons, kpi.WithBinCount(opts.bins))
	if err != nil {
		log.Fatalf("Failed to analyse %s: %v", k, err)
	}

	display.Statistics(os.Stdout, report)
	display.Comparisons(os.Stdout, report)
	display.Histogram(os.Stdout, report)

	if opts.outDir != "" {
		paths, err := export.All(report, opts.outDir)
		if err != nil {
			log.Fatalf("Failed to export report: %v", err)
		}
		fmt.Println()
		for _, p := range paths {
			fmt.Printf("✓ Wrote %s\n", p)
		}
	}

	fmt.Println()
	fmt.Printf("Report %s completed successfully!\n", report.ID)
}

func loadFromCSV(opts options) (kpi.Series, []kpi.Series, error) {
	if opts.file == "" {
		return kpi.Series{}, nil, fmt.Errorf("-file is required for the csv source")
	}

	fmt.Printf("→ Reading %s...\n", opts.file)
	all, err := csvfile.LoadFile(opts.file)
	if err != nil {
		return kpi.Series{}, nil, err
	}
	if len(all) == 0 {
		return kpi.Series{}, nil, fmt.Errorf("%s contains no series", opts.file)
	}

	byName := make(map[string]kpi.Series, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}

	primary := all[0]
	if opts.team != "" {
		s, ok := byName[opts.team]
		if !ok {
			return kpi.Series{}, nil, fmt.Errorf("series %q not found in %s", opts.team, opts.file)
		}
		primary = s
	}

	var comparisons []kpi.Series
	if opts.compare == "" {
		// every other series in file order
		for _, s := range all {
			if s.Name != primary.Name {
				comparisons = append(comparisons, s)
			}
		}
		return primary, comparisons, nil
	}

	for _, name := range splitList(opts.compare) {
		s, ok := byName[name]
		if !ok {
			fmt.Printf("Warning: series %q not found in %s, skipping\n", name, opts.file)
			continue
		}
		comparisons = append(comparisons, s)
	}
	return primary, comparisons, nil
}

// withStore connects to PostgreSQL, starting the container first when asked,
// and hands the store to fn
func withStore(opts options, fn func(ctx context.Context, store *postgres.Store) error) error {
	if opts.useContainer {
		cfg := container.PostgresConfig(opts.dsn)
		if err := container.Start(cfg); err != nil {
			return err
		}
		defer container.Stop(cfg.ComposeFile)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := postgres.Connect(ctx, opts.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer store.Close()
	fmt.Println("✓ Connected to PostgreSQL")

	return fn(ctx, store)
}

func validList(what string) bool {
	switch what {
	case "leagues", "seasons", "teams":
		return true
	}
	return false
}

func list(ctx context.Context, w io.Writer, dir directory, opts options) error {
	switch opts.list {
	case "leagues":
		leagues, err := dir.Leagues(ctx)
		if err != nil {
			return err
		}
		display.List(w, "LEAGUES", leagues)

	case "seasons":
		if opts.league == "" {
			return fmt.Errorf("-league is required to list seasons")
		}
		years, err := dir.Seasons(ctx, opts.league)
		if err != nil {
			return err
		}
		seasons := make([]string, len(years))
		for i, y := range years {
			seasons[i] = strconv.Itoa(y)
		}
		display.List(w, "SEASONS - "+opts.league, seasons)

	case "teams":
		if opts.league == "" || opts.season == 0 {
			return fmt.Errorf("-league and -season are required to list teams")
		}
		seasonID, err := dir.SeasonID(ctx, opts.league, opts.season)
		if err != nil {
			return err
		}
		teams, err := dir.Teams(ctx, seasonID)
		if err != nil {
			return err
		}
		display.List(w, fmt.Sprintf("TEAMS - %s %d", opts.league, opts.season), teams)

	default:
		return fmt.Errorf("invalid list %q", opts.list)
	}
	return nil
}

func loadFromPostgres(opts options, k kpi.KPI) (kpi.Series, []kpi.Series, error) {
	if opts.league == "" || opts.season == 0 {
		return kpi.Series{}, nil, fmt.Errorf("-league and -season are required for the postgres source")
	}
	if opts.matches && opts.team == "" {
		return kpi.Series{}, nil, fmt.Errorf("-team is required for -matches")
	}

	agg, err := kpi.ParseAggregationKind(opts.agg)
	if err != nil {
		return kpi.Series{}, nil, err
	}

	var primary kpi.Series
	var comparisons []kpi.Series
	err = withStore(opts, func(ctx context.Context, store *postgres.Store) error {
		var err error
		primary, comparisons, err = loadSeries(ctx, store, opts, k, agg)
		return err
	})
	return primary, comparisons, err
}

func loadSeries(ctx context.Context, store *postgres.Store, opts options, k kpi.KPI, agg kpi.AggregationKind) (kpi.Series, []kpi.Series, error) {
	seasonID, err := store.SeasonID(ctx, opts.league, opts.season)
	if err != nil {
		return kpi.Series{}, nil, err
	}

	if opts.standings {
		table, err := store.Standings(ctx, seasonID)
		if err != nil {
			return kpi.Series{}, nil, err
		}
		display.Standings(os.Stdout, opts.league, opts.season, table, tableColumns(k))
		fmt.Println()
		if opts.outDir != "" {
			path := filepath.Join(opts.outDir, fmt.Sprintf("standings_%d.csv", seasonID))
			if err := exportTable(path, func() error { return export.StandingsToCSV(table, path) }); err != nil {
				return kpi.Series{}, nil, err
			}
		}
	}

	if opts.matches {
		matches, err := store.MatchDetails(ctx, seasonID, opts.team)
		if err != nil {
			return kpi.Series{}, nil, err
		}
		display.MatchDetails(os.Stdout, opts.team, opts.league, opts.season, matches, tableColumns(k))
		fmt.Println()
		if opts.outDir != "" {
			path := filepath.Join(opts.outDir, fmt.Sprintf("matches_%d_%s.csv", seasonID, fileSafe(opts.team)))
			if err := exportTable(path, func() error { return export.MatchesToCSV(opts.team, matches, path) }); err != nil {
				return kpi.Series{}, nil, err
			}
		}
	}

	leagueName := fmt.Sprintf("%s (%s)", opts.league, agg)

	fmt.Printf("→ Loading %s for season id %d...\n", k, seasonID)

	var primary kpi.Series
	if opts.team == "" {
		primary, err = store.LeagueSeries(ctx, seasonID, leagueName, k, agg)
	} else {
		primary, err = store.TeamSeries(ctx, seasonID, opts.team, k)
	}
	if err != nil {
		return kpi.Series{}, nil, err
	}

	var comparisons []kpi.Series
	for _, team := range splitList(opts.compare) {
		s, err := store.TeamSeries(ctx, seasonID, team, k)
		if err != nil {
			return kpi.Series{}, nil, err
		}
		if len(s.Points) == 0 {
			fmt.Printf("Warning: no %s data for %s in %s %d\n", k, team, opts.league, opts.season)
		}
		comparisons = append(comparisons, s)
	}

	if opts.withLeague && opts.team != "" {
		s, err := store.LeagueSeries(ctx, seasonID, leagueName, k, agg)
		if err != nil {
			return kpi.Series{}, nil, err
		}
		comparisons = append(comparisons, s)
	}

	return primary, comparisons, nil
}

// tableColumns picks the KPI columns printed in the standings and match
// tables: goals for and against, then k
func tableColumns(k kpi.KPI) []kpi.KPI {
	columns := []kpi.KPI{"goals_scored", "goals_conceded"}
	for _, c := range columns {
		if c == k {
			return columns
		}
	}
	if k == kpi.Points {
		return columns
	}
	return append(columns, k)
}

func exportTable(path string, write func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := write(); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}

// fileSafe replaces characters that do not belong in a file name
func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
