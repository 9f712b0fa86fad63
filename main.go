package main

import (
	"os"

	"github.com/rshetty/quizly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
