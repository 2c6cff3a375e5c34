// userctl creates or updates a user record in a file-backed session
// store. The store file is created when missing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sessions-service/internal/auth/credentials"
	"sessions-service/internal/store"
)

func main() {
	var (
		path      = flag.String("store", "./data/sessions.json", "path to the store file")
		username  = flag.String("user", "", "username to create or update")
		password  = flag.String("password", "", "plaintext password to hash")
		useBcrypt = flag.Bool("bcrypt", false, "store a bcrypt hash instead of hex SHA-256")
	)
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: userctl -store FILE -user NAME -password SECRET [-bcrypt]")
		os.Exit(2)
	}

	ctx := context.Background()
	fileStore := store.NewFileStore(*path)

	st, err := fileStore.Load(ctx)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fatal(err)
		}
		st = store.NewState()
	}

	hash := credentials.HashPassword(*password)
	if *useBcrypt {
		hash, err = credentials.BcryptHash(*password)
		if err != nil {
			fatal(err)
		}
	}

	// An existing user keeps their active session across a password
	// change; only the hash is replaced.
	user := st.Users[*username]
	user.PasswordHash = hash
	st.Users[*username] = user

	if err := os.MkdirAll(filepath.Dir(*path), 0o755); err != nil {
		fatal(err)
	}
	if err := fileStore.Save(ctx, st); err != nil {
		fatal(err)
	}

	fmt.Printf("userctl: wrote user %q to %s\n", *username, *path)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "userctl: %v\n", err)
	os.Exit(1)
}
