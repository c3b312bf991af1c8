package main

import (
	"log"

	"github.com/fenwick-labs/chesskit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
