package main

import (
	"github.com/belm0/perf-timer/internal/cli"
)

func main() {
	cli.Execute()
}
