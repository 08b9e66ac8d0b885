package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridcrawl/internal/engine"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/logger"
	"github.com/samdwyer/gridcrawl/internal/telemetry"
	"github.com/samdwyer/gridcrawl/internal/ui"
)

// Game owns the terminal and the session it drives.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *engine.Session
	mode     Mode
	messages []string
	maxLog   int
	running  bool
}

// New creates a new game instance with a fresh session.
func New(ctx context.Context, cfg Config) (*Game, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	session, err := engine.NewSession(ctx, cfg.Engine)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("session.seed", session.Seed()))
	return newGame(screen, session, cfg), nil
}

func newGame(screen *ui.Screen, session *engine.Session, cfg Config) *Game {
	maxLog := cfg.MessageLog
	if maxLog <= 0 {
		maxLog = DefaultMessageLog
	}
	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		mode:     ModeExplore,
		maxLog:   maxLog,
		running:  true,
	}
	g.addMessages(
		fmt.Sprintf("Welcome, %s. Reach the 9 to leave the room. Press ? for help.",
			session.Snapshot().Stats.Name),
	)
	return g
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for g.running {
		g.render()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := g.handleKey(ctx, ev.Key(), ev.Rune()); err != nil {
				return err
			}
		case *tcell.EventResize:
			g.screen.Sync()
		case nil:
			// Screen finalized
			g.running = false
		}
	}

	snap := g.session.Snapshot()
	logger.Component("game").WithFields(logrus.Fields{
		"score": snap.Stats.Score,
		"turn":  snap.Stats.Turn,
		"room":  snap.Stats.Room,
		"ended": snap.Ended,
	}).Info("game over")
	return nil
}

func (g *Game) render() {
	view := ui.View{
		Messages: g.messages,
		Prompt:   g.mode.Prompt(),
	}
	if g.mode == ModeHelp {
		view.Help = engine.CommandHelp()
	}
	g.renderer.Render(g.session.Snapshot(), view)
}

// handleKey applies one key press. Only internal consistency failures are
// returned; everything else becomes a message.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, ch rune) error {
	act := translateKey(g.mode, key, ch)
	g.mode = act.next
	if act.quit {
		g.running = false
		return nil
	}
	if act.cmd == nil {
		return nil
	}

	report, err := g.session.Submit(ctx, act.cmd)
	switch {
	case err == nil:
	case errors.GetCode(err).Recoverable():
		g.addMessages(errors.GetMessage(err) + ".")
		return nil
	case errors.IsSessionEnded(err):
		g.mode = ModeGameOver
		return nil
	default:
		logger.Component("game").WithError(err).Error("turn failed")
		return err
	}

	g.addMessages(Describe(report)...)
	if report.Ended() {
		g.addMessages(GameOver(g.session.Snapshot())...)
		g.mode = ModeGameOver
	}
	return nil
}

func (g *Game) addMessages(lines ...string) {
	g.messages = append(g.messages, lines...)
	if len(g.messages) > g.maxLog {
		g.messages = g.messages[len(g.messages)-g.maxLog:]
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
