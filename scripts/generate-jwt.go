// +build ignore

// This script issues an AUTH_TOKEN for a lime API subject without going
// through /lime/authenticate. The signing secret comes from JWT_SECRET.
// Run with: go run scripts/generate-jwt.go -user alice

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/lime-api/pkg/auth"
	"github.com/chainsafe/lime-api/pkg/config"
)

func main() {
	user := flag.String("user", "alice", "Subject to embed in the token")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	secret := os.Getenv(config.EnvJWTSecret)
	if secret == "" {
		fmt.Fprintf(os.Stderr, "%s is not set\n", config.EnvJWTSecret)
		os.Exit(1)
	}

	issuer, err := auth.NewTokenIssuer(config.AuthConfig{JWTSecret: secret, TokenTTL: *ttl})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating issuer: %v\n", err)
		os.Exit(1)
	}

	token, err := issuer.Issue(*user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== lime AUTH_TOKEN ===")
	fmt.Println()
	fmt.Println("Subject:", *user)
	fmt.Println("Expires:", time.Now().Add(*ttl).Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("To use this token:")
	fmt.Println("  curl -H 'AUTH_TOKEN: " + token + "' http://localhost:8080/lime/my")
}
