package main

import (
	"log"
	"os"

	"pkg.jsn.cam/clockbench/pkg/clockbench"
)

func main() {
	runner := clockbench.NewRunner(
		clockbench.DefaultConfig(),
		clockbench.DefaultCandidates(),
		os.Stdout,
	)
	runner.ShowProgress(true)

	if err := runner.Run(); err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
}
