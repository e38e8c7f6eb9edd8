package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/config"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/front"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/state"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/ui"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
	"github.com/juju/errors"
)

var log = log2.NewStderr(log2.LInfo)

var BuildVersion string = "unknown" // set by ldflags -X

func main() {
	flagset := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := flagset.String("config", "config.hcl", "")
	onlyVersion := flagset.Bool("version", false, "print build version and exit")
	if err := flagset.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if *onlyVersion {
		fmt.Printf("atm %s\n", BuildVersion)
		return
	}
	log.SetFlags(log2.LInteractiveFlags)

	ctx, g := state.NewContext(log)
	g.BuildVersion = BuildVersion
	cfg := config.ReadConfig(log, *configPath)
	g.MustInit(ctx, cfg)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		g.Stop()
	}()

	u := &ui.UI{}
	if err := u.Init(ctx); err != nil {
		g.Log.Fatal(errors.ErrorStack(errors.Annotate(err, "ui init")))
	}

	if err := front.Run(ctx, u); err != nil {
		g.Error(err)
	}
	g.Stop()
	g.Journal.Printf("The ATM is now powered off")
	_ = g.Journal.Close()
}
