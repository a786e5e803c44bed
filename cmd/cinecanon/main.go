// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package main is the Cinecanon command line tool.
//
// Cinecanon maintains an arthouse film catalog: it derives style tags,
// mood vectors, and canon scores for each film, and ranks the catalog
// for discovery across explore, decade, mood, and combined contexts.
//
// # Commands
//
//	cinecanon enrich -in catalog.json -out enriched.json
//	    Compute derived fields for every film and write the enriched
//	    catalog.
//
//	cinecanon rank -context explore [-sort curated] [-limit 20] [-page 1]
//	cinecanon rank -context decade -decade 1960
//	cinecanon rank -context mood -moods melancholic,bleak
//	cinecanon rank -context combined -decade 1960 -moods austere
//	    Rank an enriched catalog and print the result.
//
//	cinecanon moods
//	    List the mood names present in the catalog.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (LOG_LEVEL, CATALOG_PATH, ...)
//   - Config file (cinecanon.yaml, or CONFIG_PATH)
//   - Built-in defaults
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/aubertine/cinecanon/internal/catalog"
	"github.com/aubertine/cinecanon/internal/config"
	"github.com/aubertine/cinecanon/internal/discovery"
	"github.com/aubertine/cinecanon/internal/enrich"
	"github.com/aubertine/cinecanon/internal/logging"
	"github.com/aubertine/cinecanon/internal/metrics"
	"github.com/aubertine/cinecanon/internal/scoring"
)

const usage = `usage: cinecanon <command> [flags]

commands:
  enrich    compute derived tags, moods, and scores for a catalog
  rank      rank an enriched catalog for a discovery context
  moods     list mood names present in the catalog
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cinecanon: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	ctx := context.Background()

	switch os.Args[1] {
	case "enrich":
		err = runEnrich(ctx, cfg, os.Args[2:])
	case "rank":
		err = runRank(ctx, cfg, os.Args[2:])
	case "moods":
		err = runMoods(ctx, cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logging.Err(err).Str("command", os.Args[1]).Msg("command failed")
		os.Exit(1)
	}
}

func runEnrich(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("enrich", flag.ExitOnError)
	in := fs.String("in", cfg.Catalog.Path, "input catalog JSON file")
	out := fs.String("out", "", "output file (default: overwrite input)")
	workers := fs.Int("workers", cfg.Enrich.Workers, "worker count (0 = CPU count)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		*out = *in
	}

	films, err := catalog.LoadFile(*in)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	metrics.SetCatalogFilms(len(films))

	scorer, err := scoring.NewScorer(cfg.Scoring)
	if err != nil {
		return err
	}
	enricher := enrich.NewEnricher(scorer, logging.Logger(), *workers)

	n, err := enricher.EnrichAll(ctx, films)
	if err != nil {
		return fmt.Errorf("enrich catalog: %w", err)
	}
	logging.Info().Int("films", n).Str("out", *out).Msg("writing enriched catalog")

	if err := catalog.SaveFile(*out, films); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func runRank(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	path := fs.String("catalog", cfg.Catalog.Path, "enriched catalog JSON file")
	contextName := fs.String("context", "explore", "ranking context: explore, decade, mood, combined")
	decade := fs.Int("decade", 0, "decade start year (decade and combined contexts)")
	moodList := fs.String("moods", "", "comma-separated mood names (mood and combined contexts)")
	sortBy := fs.String("sort", "", "explore sort: curated, influence, gems, new")
	limit := fs.Int("limit", 0, "page size (0 = configured default)")
	page := fs.Int("page", 1, "1-based page")
	asJSON := fs.Bool("json", false, "print the full response as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	eng, err := newEngine(cfg, *path)
	if err != nil {
		return err
	}
	defer eng.Wait()

	var moods []string
	if *moodList != "" {
		for _, m := range strings.Split(*moodList, ",") {
			moods = append(moods, strings.TrimSpace(m))
		}
	}

	var resp *discovery.Response
	switch *contextName {
	case "explore":
		resp, err = eng.Explore(ctx, discovery.ExploreRequest{
			Limit: *limit, Page: *page, SortBy: discovery.SortOption(*sortBy),
		})
	case "decade":
		resp, err = eng.Decade(ctx, discovery.DecadeRequest{
			Decade: *decade, Limit: *limit, Page: *page,
		})
	case "mood":
		resp, err = eng.Mood(ctx, discovery.MoodRequest{
			Moods: moods, Limit: *limit, Page: *page,
		})
	case "combined":
		resp, err = eng.Combined(ctx, discovery.CombinedRequest{
			Decade: *decade, Moods: moods, Limit: *limit, Page: *page,
		})
	default:
		return fmt.Errorf("unknown context %q", *contextName)
	}
	if err != nil {
		return err
	}

	if *asJSON {
		enc := gojson.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printResponse(resp)
	return nil
}

func runMoods(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("moods", flag.ExitOnError)
	path := fs.String("catalog", cfg.Catalog.Path, "enriched catalog JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	eng, err := newEngine(cfg, *path)
	if err != nil {
		return err
	}

	moods, err := eng.AvailableMoods(ctx)
	if err != nil {
		return err
	}
	for _, m := range moods {
		fmt.Println(m)
	}
	return nil
}

// newEngine loads the catalog into a memory store and builds the
// discovery engine on top of it. The store doubles as the show
// recorder; in-process counts feed the rarity boost across requests of
// one invocation.
func newEngine(cfg *config.Config, path string) (*discovery.Engine, error) {
	films, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	metrics.SetCatalogFilms(len(films))

	store := catalog.NewMemoryStore(films)
	return discovery.NewEngine(&cfg.Discovery, logging.Logger(), store, store)
}

func printResponse(resp *discovery.Response) {
	fmt.Printf("context=%s page=%d/%d total=%d\n", resp.Context, resp.Page, resp.TotalPages, resp.Total)
	for i, item := range resp.Items {
		f := item.Film
		fmt.Printf("%3d. %6.2f  %-40s %d  %s\n",
			i+1, item.Score, f.Title, f.Year, f.PrimaryDirector())
	}
}
