package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	userID := flag.String("user", "dev-user", "user id to embed in the token")
	email := flag.String("email", "", "optional email claim")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "signing secret (defaults to JWT_SECRET)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "No secret provided: pass -secret or set JWT_SECRET")
		os.Exit(1)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":  *userID,
		"iat": now.Unix(),
		"exp": now.Add(*ttl).Unix(),
	}
	if *email != "" {
		claims["email"] = *email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generated bearer token:")
	fmt.Println("----------------------------------------")
	fmt.Println(signed)
	fmt.Println("----------------------------------------")
	fmt.Printf("Valid until: %s\n", now.Add(*ttl).Format(time.RFC3339))
}
