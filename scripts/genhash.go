package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Generates a bcrypt hash for seeding recruiter accounts by hand:
//
//	go run scripts/genhash.go <password>
//	INSERT INTO users (email, password, name, role) VALUES ('recruiter@example.com', '<hash>', 'Recruiter', 'RECRUITER');
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: genhash <password>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 10)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
