package main

import (
	"log"

	"teamspace/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
