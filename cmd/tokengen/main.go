// Command tokengen mints bearer tokens for trying out the protected
// endpoint without going through the login flow.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	var (
		secret  = flag.String("secret", "supersecret_demo_key", "Shared signing secret (must match the server's JWT_SECRET)")
		subject = flag.String("sub", "demo_user", "Subject (username)")
		issuer  = flag.String("iss", "usman-apis-dashboard", "Issuer (application name)")
		version = flag.String("ver", "v1", "Application version claim")
		minutes = flag.Int("minutes", 60, "Token validity in minutes")
	)

	flag.Parse()

	now := time.Now()
	expiresAt := now.Add(time.Duration(*minutes) * time.Minute)

	claims := jwt.MapClaims{
		"sub": *subject,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": *issuer,
		"ver": *version,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(*secret))
	if err != nil {
		fmt.Printf("Failed to sign token: %v\n", err)
		return
	}

	fmt.Println("\n=== JWT Token Generated ===")
	fmt.Printf("\nToken: %s\n\n", tokenString)
	fmt.Println("Claims:")
	fmt.Printf("  Subject: %s\n", *subject)
	fmt.Printf("  Issuer:  %s\n", *issuer)
	fmt.Printf("  Expires: %s\n\n", expiresAt.Format(time.RFC3339))
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:5090/api/secure\n\n", tokenString)
}
