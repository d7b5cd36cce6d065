// Command admin is the operator tool for the journey service:
// migrations and user management, including the administrative user
// deletion that cascades to journeys and steps.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/skillforge/journey-service/internal/auth"
	"github.com/skillforge/journey-service/internal/config"
	"github.com/skillforge/journey-service/internal/models"
	"github.com/skillforge/journey-service/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: admin <command> [flags]

Commands:
  migrate                                   apply database migrations
  create-user -username U -password P [-email E]
  list-users
  delete-user -id N                         delete a user and everything they own
  list-revoked                              show the revoked-token ledger`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.NewConfig()
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		fatalf("Failed to ping database: %v", err)
	}

	repo := repository.NewRepository(db)
	ctx := context.Background()

	switch os.Args[1] {
	case "migrate":
		if err := repo.RunMigrations(ctx); err != nil {
			fatalf("Migration failed: %v", err)
		}
		fmt.Println("Migrations applied")

	case "create-user":
		fs := flag.NewFlagSet("create-user", flag.ExitOnError)
		username := fs.String("username", "", "username for the new user")
		email := fs.String("email", "", "email for the new user (optional)")
		password := fs.String("password", "", "password for the new user")
		fs.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			fatalf("create-user: -username and -password are required")
		}

		hash, err := auth.HashPassword(*password, cfg.BcryptCost)
		if err != nil {
			fatalf("Failed to hash password: %v", err)
		}
		user := &models.User{Username: *username, Email: *email, PasswordHash: hash}
		if err := repo.CreateUser(ctx, user); err != nil {
			fatalf("Failed to create user: %v", err)
		}
		fmt.Printf("User %q created with id %d\n", user.Username, user.ID)

	case "list-users":
		users, err := repo.ListUsers(ctx)
		if err != nil {
			fatalf("Failed to list users: %v", err)
		}
		if len(users) == 0 {
			fmt.Println("No users found")
			return
		}
		for _, user := range users {
			fmt.Printf("ID: %d, Username: %s, Email: %s, Created: %s\n",
				user.ID, user.Username, user.Email, user.CreatedAt.Format("2006-01-02"))
		}

	case "delete-user":
		fs := flag.NewFlagSet("delete-user", flag.ExitOnError)
		id := fs.Int64("id", 0, "id of the user to delete")
		fs.Parse(os.Args[2:])
		if *id == 0 {
			fatalf("delete-user: -id is required")
		}

		if err := repo.DeleteUser(ctx, *id); err != nil {
			fatalf("Failed to delete user: %v", err)
		}
		fmt.Printf("User %d deleted (journeys and steps cascaded)\n", *id)

	case "list-revoked":
		tokens, err := repo.ListRevokedTokens(ctx)
		if err != nil {
			fatalf("Failed to list revoked tokens: %v", err)
		}
		if len(tokens) == 0 {
			fmt.Println("No revoked tokens")
			return
		}
		for _, token := range tokens {
			fmt.Printf("JTI: %s, Revoked: %s\n", token.JTI, token.CreatedAt.Format("2006-01-02 15:04:05"))
		}

	default:
		usage()
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
