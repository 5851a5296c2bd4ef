// Command classify predicts the job category of résumé files from the
// command line, using the same artifacts and pipeline as the server.
//
//	classify [-artifacts DIR] [-show-text] resume.pdf cv.docx ...
//
// Each file prints "<file>\t<category>". Files without classifiable text
// are reported on stderr and make the command exit with status 2.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/artem13815/resume-category/pkg/bootstrap"
	"github.com/artem13815/resume-category/pkg/category"
	"github.com/artem13815/resume-category/pkg/config"
	"github.com/artem13815/resume-category/pkg/logging"
	"github.com/artem13815/resume-category/pkg/resume"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the exit status so deferred cleanup runs before exit.
func realMain() int {
	cfg := config.Load()

	var (
		showText bool
		verbose  bool
	)
	flag.StringVar(&cfg.ArtifactsSource, "source", cfg.ArtifactsSource, "Artifact source: dir, postgres or http")
	flag.StringVar(&cfg.ArtifactsDir, "artifacts", cfg.ArtifactsDir, "Directory holding tfidf.json, clf.json and encoder.json")
	flag.BoolVar(&showText, "show-text", false, "Print the extracted text under each result")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FILE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := "warn"
	if verbose {
		level = "debug"
	}
	logging.Setup(level, "console")

	if flag.NArg() == 0 {
		flag.Usage()
		return 64
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	rt, err := bootstrap.LoadRuntime(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("load classifier")
		return 1
	}
	defer rt.Close()

	svc := resume.NewClassificationService(resume.NewParser(), category.NewService(rt.Artifacts), nil)
	return run(ctx, svc, flag.Args(), showText)
}

func run(ctx context.Context, svc resume.ClassificationService, files []string, showText bool) int {
	status := 0
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			status = 1
			continue
		}
		res, err := svc.Classify(ctx, resume.Document{Filename: filepath.Base(name), Data: data})
		switch {
		case errors.Is(err, resume.ErrEmptyContent):
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			if status == 0 {
				status = 2
			}
			continue
		case err != nil:
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			status = 1
			continue
		}
		fmt.Printf("%s\t%s\n", name, res.Prediction.Label)
		if showText {
			fmt.Printf("%s\n\n", res.Text)
		}
	}
	return status
}
