// Command devtoken prints an HS256 bearer token for local development with
// auth.provider=jwt.
//
// Usage:
//
//	devtoken --uid=dev-user [--email=dev@example.com]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/clearcare-backend/internal/auth"
	"github.com/heartmarshall/clearcare-backend/internal/config"
)

func main() {
	uid := flag.String("uid", "", "identity to put in the token subject")
	email := flag.String("email", "", "optional email claim")
	flag.Parse()

	if *uid == "" {
		fmt.Fprintln(os.Stderr, "Usage: devtoken --uid=dev-user [--email=dev@example.com]")
		os.Exit(1)
	}

	cfg, err := config.LoadForAuth()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Auth.Provider != config.AuthProviderJWT {
		log.Fatalf("auth.provider is %q; devtoken only works with %q", cfg.Auth.Provider, config.AuthProviderJWT)
	}

	v := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTTokenTTL)
	token, err := v.GenerateToken(*uid, *email)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
