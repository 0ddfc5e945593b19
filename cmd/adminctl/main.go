package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iudanet/bugtrack/internal/admincli"
	"github.com/iudanet/bugtrack/internal/iocli"
	"github.com/iudanet/bugtrack/internal/server/storage/boltdb"
	"github.com/iudanet/bugtrack/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "bugtrack.db", "Path to sqlite database")
	bansPath := flag.String("bans", "bugtrack-bans.db", "Path to ban registry database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	sqlStorage, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = sqlStorage.Close() }()

	banStorage, err := boltdb.New(ctx, *bansPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ban registry: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = banStorage.Close() }()

	cli := admincli.New(iocli.NewStdio(), sqlStorage, banStorage)

	switch command {
	case "promote":
		err = cli.RunPromote(ctx, requireArg(args, "promote <email>"))
	case "demote":
		err = cli.RunDemote(ctx, requireArg(args, "demote <email>"))
	case "create-admin":
		err = cli.RunCreateAdmin(ctx)
	case "ban":
		err = cli.RunBan(ctx, requireArg(args, "ban <ip>"))
	case "unban":
		err = cli.RunUnban(ctx, requireArg(args, "unban <ip>"))
	case "list-bans":
		err = cli.RunListBans(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func requireArg(args []string, usage string) string {
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: adminctl %s\n", usage)
		os.Exit(1)
	}
	return args[1]
}

func printUsage() {
	fmt.Println("BugTrack Admin Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  adminctl [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version     Show version information")
	fmt.Println("  --db PATH     Path to sqlite database (default: bugtrack.db)")
	fmt.Println("  --bans PATH   Path to ban registry database (default: bugtrack-bans.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  promote <email>   Grant the admin role to a user")
	fmt.Println("  demote <email>    Revert a user to the developer role")
	fmt.Println("  create-admin      Interactively create an admin user")
	fmt.Println("  ban <ip>          Ban an IP address")
	fmt.Println("  unban <ip>        Remove an IP address from the ban registry")
	fmt.Println("  list-bans         List banned IP addresses")
}

func printVersion() {
	fmt.Printf("BugTrack Admin Tool\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
