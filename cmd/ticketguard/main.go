package main

import (
	"os"

	"github.com/sqve/ticketguard/internal/app"
)

func main() {
	os.Exit(app.Main(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
