// Package runner drives the sequence: one Advance per tick, rendered and shown centered.
package runner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/the-sequence/clock"
	"github.com/lixenwraith/the-sequence/display"
	"github.com/lixenwraith/the-sequence/sequence"
)

// Display shows rendered values and reports quit requests
type Display interface {
	Show(text string) error
	Events() <-chan display.Event
}

// Chime is played when a milestone phase begins
type Chime interface {
	Play()
}

// Runner owns the generator for the lifetime of Run
type Runner struct {
	Generator *sequence.Generator
	Display   Display
	Ticker    clock.Ticker
	Logger    *zap.Logger
	Chime     Chime

	// MaxSteps stops Run after that many ticks; 0 runs until canceled
	MaxSteps uint64
}

// Run shows the current value, then advances once per tick until ctx is canceled,
// a quit event arrives, or MaxSteps ticks have elapsed
// Cancellation is only observed between ticks so an in-flight render always completes
func (r *Runner) Run(ctx context.Context) error {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	defer r.Ticker.Stop()

	if err := r.show(); err != nil {
		return err
	}
	log.Info("sequence started",
		zap.Uint64("step", r.Generator.Step()),
		zap.String("value", r.Generator.Current().String()),
		zap.Stringer("phase", r.Generator.Phase()),
	)

	var ticks uint64
	events := r.Display.Events()
	for {
		select {
		case <-ctx.Done():
			log.Info("sequence stopped", zap.Uint64("step", r.Generator.Step()), zap.Error(ctx.Err()))
			return nil

		case ev, ok := <-events:
			if !ok {
				// Display pump has ended; keep running on ticks only
				events = nil
				continue
			}
			if ev == display.EventQuit {
				log.Info("quit requested", zap.Uint64("step", r.Generator.Step()))
				return nil
			}
			log.Debug("display event", zap.Stringer("event", ev))

		case <-r.Ticker.C():
			if err := r.tick(log); err != nil {
				return err
			}
			ticks++
			if r.MaxSteps > 0 && ticks >= r.MaxSteps {
				log.Info("step limit reached", zap.Uint64("ticks", ticks), zap.Uint64("step", r.Generator.Step()))
				return nil
			}
		}
	}
}

func (r *Runner) tick(log *zap.Logger) error {
	prev := r.Generator.Phase()
	r.Generator.Advance()
	phase := r.Generator.Phase()

	if err := r.show(); err != nil {
		return err
	}

	if phase != prev {
		log.Info("phase changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", phase),
			zap.Uint64("step", r.Generator.Step()),
		)
		if phase.IsMilestone() && r.Chime != nil {
			r.Chime.Play()
		}
	}
	log.Debug("tick",
		zap.Uint64("step", r.Generator.Step()),
		zap.String("value", r.Generator.Current().String()),
	)
	return nil
}

func (r *Runner) show() error {
	text := r.Generator.Current().String()
	if err := r.Display.Show(text); err != nil {
		return fmt.Errorf("show step %d: %w", r.Generator.Step(), err)
	}
	return nil
}
