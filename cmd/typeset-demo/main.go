// ABOUTME: Demo binary exercising the Text component in a live terminal
// ABOUTME: Raw-mode input loop and render engine run under an errgroup

package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	tslog "github.com/mauromedda/typeset/internal/log"
	"github.com/mauromedda/typeset/pkg/tui"
	"github.com/mauromedda/typeset/pkg/tui/component"
	"github.com/mauromedda/typeset/pkg/tui/key"
	"github.com/mauromedda/typeset/pkg/tui/locale"
	"github.com/mauromedda/typeset/pkg/tui/terminal"
	"github.com/mauromedda/typeset/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
)

const sampleText = "Typography is the craft of endowing human language with a " +
	"durable visual form. Good typographic color comes from even spacing, " +
	"consistent rhythm, and restraint in the use of emphasis."

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("typeset-demo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if args.verbose {
		tslog.SetLevel(tslog.LevelDebug)
	}

	if args.lang != "" {
		locale.Default.SetLanguage(args.lang)
	}

	styles := component.DefaultStyles()
	if args.theme != "" {
		th, err := theme.LoadFile(args.theme)
		if err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}
		styles = component.StylesFromPalette(th.Palette)
	}

	term := terminal.NewProcess()
	defer terminal.RestoreOnPanic(term)

	if err := term.EnterRawMode(); err != nil {
		return err
	}
	defer func() { _ = term.ExitRawMode() }()

	w, h, err := term.Size()
	if err != nil {
		return err
	}

	engine := tui.NewEngine(term, w, h)
	term.OnResize(engine.SetSize)

	body := component.NewText(sampleText, component.TextOptions{
		Editable:     true,
		Copyable:     true,
		Lines:        args.lines,
		Styles:       &styles,
		OnChange:     func(string) {},
		OnInvalidate: engine.RequestRender,
	})
	hint := component.NewText("e: edit   c/y: copy   q: quit", component.TextOptions{
		Type:   component.TypeSecondary,
		Styles: &styles,
	})
	engine.Root().Add(body)
	engine.Root().Add(hint)

	engine.Start()
	defer engine.Stop()
	engine.RequestRender()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer terminal.RecoverGoroutine(term)
		return inputLoop(ctx, cancel, body)
	})
	return g.Wait()
}

// inputLoop reads raw stdin bytes and feeds them to the component until the
// user quits or the context ends.
func inputLoop(ctx context.Context, cancel context.CancelFunc, body *component.Text) error {
	buf := make([]byte, 64)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := os.Stdin.Read(buf)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		data := string(buf[:n])

		k := key.ParseKey(data)
		if k.Type == key.KeyCtrlC || (!body.Editing() && k.Type == key.KeyRune && k.Rune == 'q') {
			cancel()
			return nil
		}
		body.HandleInput(data)
	}
}
