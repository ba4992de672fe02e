package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		bad.Fprintln(os.Stderr, "gaze:", err)
		os.Exit(1)
	}
}
