package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Explore the world in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd.Context())
		},
	}
}

func (a *app) play(ctx context.Context) error {
	g, err := a.newGame()
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := newKeyState(holdTTL)
	resize := make(chan uv.WindowSizeEvent, 1)
	var hideHUD atomic.Bool

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case <-resize:
				default:
				}
				resize <- ev

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c", "q"):
					cancel()
					return
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					hideHUD.Store(!hideHUD.Load())
				default:
					keys.press(match(ev.MatchString), time.Now())
				}

			case uv.KeyReleaseEvent:
				keys.release(match(ev.MatchString))
			}
		}
	}()

	hud := NewHUD()
	fb := g.Framebuffer()
	rows := (fb.Height + 1) / 2
	target := time.Second / time.Duration(a.cfg.Render.FPS)
	slow := 0

	for {
		select {
		case <-ctx.Done():
			cleanup()
			a.log.Printf("played %d frames, %d over the %v budget", g.Frame(), slow, target)
			return nil
		case ev := <-resize:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
		default:
		}

		now := time.Now()

		g.Update(keys.State(now))

		// Centre the picture; Draw clips to the terminal.
		area := uv.Rect(max((width-fb.Width)/2, 0), max((height-rows)/2, 0), fb.Width, rows)
		fb.Draw(term, area)
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		hud.Show = !hideHUD.Load()
		hud.UpdateFPS()
		hud.Render(width, height, g)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < target {
			time.Sleep(target - elapsed)
		} else {
			slow++
		}
	}
}
