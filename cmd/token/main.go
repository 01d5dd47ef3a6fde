// Command token mints admin credentials for the portfolio API.
//
// Usage:
//
//	token                       print a signed admin JWT
//	token -subject=<uuid>       ... for a fixed subject
//	token -hash-key=<api-key>   print the bcrypt hash for auth.admin_api_key_hash
//
// The JWT secret, issuer, TTL and admin role come from the usual config.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/auth"
	"github.com/heartmarshall/portfolio-backend/internal/config"
)

func main() {
	subject := flag.String("subject", "", "user id to put in the token (random if empty)")
	hashKey := flag.String("hash-key", "", "hash an admin API key instead of minting a token")
	flag.Parse()

	if *hashKey != "" {
		hash, err := auth.HashAPIKey(*hashKey)
		if err != nil {
			log.Fatalf("hash api key: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *subject != "" {
		userID, err = uuid.Parse(*subject)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -subject: %v\n", err)
			os.Exit(1)
		}
	}

	signer := auth.NewSigner(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := signer.Issue(userID, cfg.Auth.AdminRole)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
