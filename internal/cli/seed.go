package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mrlokans/booktodo/internal/config"
	"github.com/mrlokans/booktodo/internal/database"
	"github.com/mrlokans/booktodo/internal/database/books"
)

// SeedCommand replaces the reading list with the default catalogue.
type SeedCommand struct {
	DatabasePath string
	Force        bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", defaultDatabasePath(), "Path to the database file")
	fs.BoolVar(&cmd.Force, "force", false, "Replace existing books instead of refusing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete all books and insert the default catalogue.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -db ./books.db -force\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)
	ctx := context.Background()

	log.Println("Start seeding...")

	empty, err := repo.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty && !cmd.Force {
		return fmt.Errorf("database %s already contains books, use -force to replace them", cmd.DatabasePath)
	}

	created, err := repo.Seed(ctx, books.DefaultCatalogue)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Printf("Seeding finished: %d books created.", created)
	return nil
}

// defaultDatabasePath honours DATABASE_PATH so CLI commands and the server
// agree on the database file.
func defaultDatabasePath() string {
	if path := config.NewConfig().Database.Path; path != "" {
		return path
	}
	return config.DefaultDatabasePath
}
