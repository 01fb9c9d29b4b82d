package main

import (
	"log"

	"github.com/mgirardot/partpilot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
