/*
eqdef is a console utility parsing grammar equation files.
Usage is

	eqdef [--config <file>] [-v] parse [flags] (-f <file> | <file>)
	eqdef check [-e] [-m | -s <prefix>] <file>
	eqdef version

parse prints either Done "<unconsumed input>" <syntax tree> or Error followed by the chain of failed rules,
see eqdef parse --help for flags.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ava12/eqdef/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
