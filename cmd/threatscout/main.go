package main

import (
	"threatscout/internal/app"

	"github.com/charmbracelet/log"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal("threatscout terminated", "error", err)
	}
}
