package state

import (
	"context"
	"fmt"
	"testing"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/account"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/config"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/haptic"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/journal"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/sound"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
)

// Global bundles the process-lifetime collaborators, fetched from context
// wherever a subsystem needs them.
type Global struct {
	Alive        *alive.Alive
	BuildVersion string
	Config       *config.Config
	Log          *log2.Log
	Journal      *journal.Journal
	Accounts     *account.Store
	Sound        *sound.System
	Vibe         haptic.Driver
}

const ContextKey = "run/state-global"

func NewContext(log *log2.Log) (context.Context, *Global) {
	if log == nil {
		panic("code error state.NewContext log=nil")
	}
	g := &Global{
		Alive: alive.NewAlive(),
		Log:   log,
		Vibe:  haptic.Noop{},
	}
	ctx := context.Background()
	ctx = context.WithValue(ctx, log2.ContextKey, log) //nolint:staticcheck
	ctx = context.WithValue(ctx, ContextKey, g)        //nolint:staticcheck
	return ctx, g
}

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global actual=%#v", ContextKey, v))
}

// Init opens the journal, loads the account database (placeholder fallback)
// and brings up sound and haptics. Sound failure is fatal, database failure
// is not: that asymmetry is part of the kiosk contract.
func (g *Global) Init(ctx context.Context, cfg *config.Config) error {
	g.Config = cfg

	j, err := journal.Open(cfg.Journal.Dir, cfg.Journal.Console)
	if err != nil {
		return errors.Annotate(err, "journal init")
	}
	g.Journal = j
	g.Journal.Banner()
	g.Journal.Printf("ATM is now powered on")

	g.Accounts = account.NewStore(g.Log)
	if err := g.Accounts.LoadFile(cfg.Database.Path); err != nil {
		g.Log.Debugf("account database (%v)", err)
		g.Journal.Printf("User database not found")
		g.Accounts.LoadPlaceholder()
	} else {
		g.Journal.Printf("User database loaded")
	}

	if g.Sound, err = sound.NewSystem(&cfg.Sound, g.Log); err != nil {
		return errors.Annotate(err, "sound init")
	}
	if !cfg.Sound.Disabled {
		g.Journal.Printf("Sounds loaded")
	}

	g.Vibe = haptic.New(&cfg.Haptic, g.Log)
	g.Journal.Printf("ATM is ready to use")
	return nil
}

func (g *Global) MustInit(ctx context.Context, cfg *config.Config) {
	if err := g.Init(ctx, cfg); err != nil {
		g.Log.Fatal(errors.ErrorStack(err))
	}
}

func (g *Global) Error(err error, args ...interface{}) {
	if err != nil {
		if len(args) != 0 {
			msg := args[0].(string)
			args = args[1:]
			err = errors.Annotatef(err, msg, args...)
		}
		g.Log.Error(err)
	}
}

func (g *Global) Stop() { g.Alive.Stop() }

// NewTestContext builds a Global wired for package tests: test logger,
// inline HCL config, disabled sound, journal into the test log.
func NewTestContext(t testing.TB, confSrc string) (context.Context, *Global) {
	log := log2.NewTest(t, log2.LDebug)
	log.SetFlags(log2.LTestFlags)
	cfg, err := config.Parse(log, confSrc)
	if err != nil {
		t.Fatalf("test config parse error=%v", err)
	}
	cfg.Sound.Disabled = true
	cfg.Haptic.Enable = false

	ctx, g := NewContext(log)
	g.Config = cfg
	g.Journal = journal.New(log2.FmtFuncWriter{FmtFunc: t.Logf})
	g.Accounts = account.NewStore(log)
	g.Accounts.LoadPlaceholder()
	if g.Sound, err = sound.NewSystem(&cfg.Sound, log); err != nil {
		t.Fatalf("test sound init error=%v", err)
	}
	return ctx, g
}
