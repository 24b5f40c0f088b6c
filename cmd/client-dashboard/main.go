package main

import (
	"log"

	"github.com/levelup-marketers/client-dashboard-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
