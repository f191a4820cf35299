package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/booktodo/internal/database"
	"github.com/mrlokans/booktodo/internal/database/books"
)

// StatsCommand prints completion counts for the reading list.
type StatsCommand struct {
	DatabasePath string

	out io.Writer
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{out: os.Stdout}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", defaultDatabasePath(), "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print total, completed and pending book counts.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := books.NewRepository(db.DB).GetBookStats(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Total:     %d\n", stats.Total)
	fmt.Fprintf(cmd.out, "Completed: %d\n", stats.Completed)
	fmt.Fprintf(cmd.out, "Pending:   %d\n", stats.Pending)
	return nil
}
