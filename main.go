package main

import (
	"os"

	"github.com/teca-org/teca-web/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
