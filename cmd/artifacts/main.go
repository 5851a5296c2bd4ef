// Command artifacts manages model artifacts in the Postgres artifact store.
//
//	artifacts push [-dir DIR]   upload manifest.yaml, tfidf.json, clf.json, encoder.json
//	artifacts list              show stored artifacts
//	artifacts verify            load the stored bundle as the server would
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/artem13815/resume-category/pkg/bootstrap"
	"github.com/artem13815/resume-category/pkg/config"
	"github.com/artem13815/resume-category/pkg/logging"
	"github.com/artem13815/resume-category/pkg/model"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, "console")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: artifacts push|list|verify [flags]")
		os.Exit(64)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "push":
		err = push(ctx, cfg, args)
	case "list":
		err = list(ctx, cfg)
	case "verify":
		cfg.ArtifactsSource = config.SourcePostgres
		var rt *bootstrap.Runtime
		if rt, err = bootstrap.LoadRuntime(ctx, cfg); err == nil {
			fmt.Printf("ok: version %s\n", rt.Artifacts.Manifest.Version)
			rt.Close()
		}
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("artifacts")
	}
}

func push(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("push", flag.ExitOnError)
	dir := fs.String("dir", cfg.ArtifactsDir, "Directory to upload")
	_ = fs.Parse(args)

	// Refuse to publish a bundle the server could not load.
	src := model.NewDirSource(*dir)
	a, err := model.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("local artifacts invalid: %w", err)
	}

	rt := bootstrap.NewRuntime()
	defer rt.Close()
	repo, err := bootstrap.OpenArtifactRepository(ctx, cfg, rt)
	if err != nil {
		return err
	}
	names := append([]string{model.ManifestName}, a.Manifest.Names()...)
	for _, name := range names {
		data, err := src.Fetch(ctx, name)
		if errors.Is(err, model.ErrArtifactNotFound) && name == model.ManifestName {
			continue
		}
		if err != nil {
			return err
		}
		if err := repo.Put(ctx, name, data); err != nil {
			return fmt.Errorf("store %s: %w", name, err)
		}
		log.Info().Str("name", name).Int("bytes", len(data)).Msg("artifact stored")
	}
	return nil
}

func list(ctx context.Context, cfg config.Config) error {
	rt := bootstrap.NewRuntime()
	defer rt.Close()
	repo, err := bootstrap.OpenArtifactRepository(ctx, cfg, rt)
	if err != nil {
		return err
	}
	metas, err := repo.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBYTES\tUPDATED")
	for _, m := range metas {
		fmt.Fprintf(w, "%s\t%d\t%s\n", m.Name, m.SizeBytes, m.UpdatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
