package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/orchestrators/build"
	"github.com/KirkDiggler/build-roller/internal/render"
	catalogsvc "github.com/KirkDiggler/build-roller/internal/services/catalog"
)

const prompt = "\n[Enter] new build, [q] quit: "

// session rolls builds from one catalog source
type session struct {
	catalogs catalogsvc.Service
	builds   build.Service
	path     string
	format   render.Format
}

// roll loads the catalog, served from cache unless the file changed, and
// generates one build
func (s *session) roll(ctx context.Context) (*armory.Build, error) {
	loaded, err := s.catalogs.Load(ctx, &catalogsvc.LoadInput{Path: s.path})
	if err != nil {
		return nil, err
	}

	out, err := s.builds.Generate(ctx, &build.GenerateInput{Catalog: loaded.Catalog})
	if err != nil {
		return nil, err
	}
	return out.Build, nil
}

func (s *session) generate(ctx context.Context, out io.Writer) error {
	b, err := s.roll(ctx)
	if err != nil {
		return err
	}
	return render.Build(out, b, s.format)
}

// interactive shows a build, then regenerates on every empty line until
// the user quits, input ends or ctx is canceled
func (s *session) interactive(ctx context.Context, in io.Reader, out io.Writer) error {
	lines, readErr := readLines(ctx, in)
	for {
		if err := s.generate(ctx, out); err != nil {
			return err
		}

		if _, err := io.WriteString(out, prompt); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "q", "quit", "exit":
			return nil
		}
		fmt.Fprintln(out)
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. lines is closed at end of input, after which readErr yields
// the scanner error, nil on a clean EOF.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}
