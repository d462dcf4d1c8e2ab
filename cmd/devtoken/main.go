// Command devtoken prints a bearer token for local development.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/auth"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
)

func main() {
	user := flag.String("user", "", "user id to put in the sub claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *user == "" {
		log.Fatal("-user is required")
	}

	cfg := config.Load()
	token, err := auth.Issue(cfg.JWTSecret, *user, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
