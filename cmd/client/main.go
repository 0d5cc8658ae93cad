package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/unipress/internal/client/cli"
	"github.com/iudanet/unipress/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}, iocli.NewStdio(), os.Args[1:])
	stop()
	os.Exit(code)
}
