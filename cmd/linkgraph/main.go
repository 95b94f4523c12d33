// Command linkgraph inspects and edits a small social network.
//
//	linkgraph show_network
//	linkgraph show_connections <person>
//	linkgraph connect <person_1> <person_2>
//
// The network is fetched from the graph endpoint (http://localhost:3338/graph
// by default) or read from a JSON/YAML file. Reports go to stdout, logs to stderr.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
