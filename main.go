package main

import (
	"fmt"
	"log"
	"os"

	"github.com/arcanaland/deckhand/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("deckhand: ")

	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
