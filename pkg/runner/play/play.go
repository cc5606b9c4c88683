// Package play opens a page in the interactive terminal playground.
package play

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/uikit/pkg/config"
	"tableflip.dev/uikit/pkg/page"
	"tableflip.dev/uikit/pkg/skin"
	"tableflip.dev/uikit/pkg/tui/playground"
)

// Play mounts a page document and hands it to a Bubble Tea program.
type Play struct {
	File     string
	Skins    *skin.Registry
	SkinsDir string
	// Watch remounts the page whenever a skin under SkinsDir changes.
	Watch    bool
	Delay    time.Duration
	Logger   *zap.Logger

	// Options are appended to the program options, tests use them to
	// drop the alternate screen and feed input.
	Options []tea.ProgramOption
}

// Model builds the playground without starting a program.
func (p *Play) Model(ctx context.Context) (*playground.Model, error) {
	if p.Skins == nil {
		return nil, errors.New("can not play, no skins")
	}
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	doc, err := page.Open(p.File)
	if err != nil {
		return nil, err
	}
	o := playground.Options{
		Document: doc,
		Skins:    p.Skins,
		SkinsDir: p.SkinsDir,
		Delay:    p.Delay,
		Logger:   log,
	}
	if p.Watch && p.SkinsDir != "" {
		ch, err := config.WatchSkins(ctx, p.SkinsDir, log)
		if err != nil {
			return nil, err
		}
		o.Watch = ch
	}
	return playground.New(o)
}

// Do runs the playground until the user quits or ctx is done.
func (p *Play) Do(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, err := p.Model(ctx)
	if err != nil {
		return err
	}
	defer m.Page().Destroy()

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, p.Options...)
	_, err = tea.NewProgram(m, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
