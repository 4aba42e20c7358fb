package main

import (
	"fmt"
	"os"

	"github.com/ehsaniara/playrunner/internal/prctl/cli"
	"github.com/ehsaniara/playrunner/pkg/version"
)

func main() {
	version.Component = "prctl"
	if err := cli.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
