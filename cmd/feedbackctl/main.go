// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

// feedbackctl is a terminal frontend for the feedback board: it lists,
// submits, and upvotes items, keeping the one-vote-per-profile marker
// in a file under the user config dir.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/feedbackboard/server/client"
	"github.com/feedbackboard/server/models"
)

const defaultServer = "http://localhost:5001"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	fs := flag.NewFlagSet("feedbackctl "+command, flag.ExitOnError)
	server := fs.String("server", envOr("FEEDBACK_SERVER", defaultServer), "API base URL")
	markerPath := fs.String("marker", "", "Path of the upvoted-items file")

	var category, sortBy, title, description string
	switch command {
	case "list":
		fs.StringVar(&category, "category", "", "Filter by category")
		fs.StringVar(&sortBy, "sort", models.SortRecent, "Sort order (recent or mostUpvoted)")
	case "submit":
		fs.StringVar(&title, "title", "", "Feedback title")
		fs.StringVar(&description, "description", "", "Feedback description")
		fs.StringVar(&category, "category", "", "Category (feature, bug, improvement, other)")
	case "get", "upvote":
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
	fs.Parse(args)

	api := client.New(*server)
	marker := client.NewFileVoteMarker(resolveMarkerPath(*markerPath))
	ctrl := client.NewController(api, marker)
	ctx := context.Background()

	switch command {
	case "list":
		if err := ctrl.Select(ctx, category, sortBy); err != nil {
			return err
		}
		items := ctrl.Items()
		if len(items) == 0 {
			fmt.Println("No feedback submitted yet. Be the first!")
			return nil
		}
		for _, item := range items {
			fmt.Println(client.FormatCard(item, ctrl.HasVoted(item.ID)))
		}
		return nil

	case "submit":
		item, err := ctrl.Submit(ctx, models.SubmitFeedbackRequest{
			Title:       title,
			Description: description,
			Category:    category,
		})
		if err != nil {
			return err
		}
		fmt.Println("Feedback submitted:", item.ID)
		return nil

	case "get":
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: feedbackctl get <id>")
		}
		item, err := api.Get(ctx, fs.Arg(0))
		if err != nil {
			return err
		}
		fmt.Println(client.FormatCard(item, ctrl.HasVoted(item.ID)))
		return nil

	case "upvote":
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: feedbackctl upvote <id>")
		}
		id := fs.Arg(0)
		voted, err := ctrl.Upvote(ctx, id)
		if err != nil {
			return err
		}
		if !voted {
			fmt.Println("Already upvoted from this profile.")
			return nil
		}
		item, err := api.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("Upvoted: %s now has %d upvote%s\n", item.Title, item.Upvotes, pluralSuffix(item.Upvotes))
		return nil
	}

	return nil
}

// resolveMarkerPath returns the explicit path if given, otherwise a
// per-user file under the OS config dir.
func resolveMarkerPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".feedbackctl-upvoted.json"
	}
	return filepath.Join(configDir, "feedbackctl", "upvoted.json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: feedbackctl <command> [flags]

Commands:
  list    List feedback (-category, -sort recent|mostUpvoted)
  submit  Submit feedback (-title, -description, -category)
  get     Show one item:      feedbackctl get <id>
  upvote  Upvote an item:     feedbackctl upvote <id>

Common flags:
  -server  API base URL (or FEEDBACK_SERVER env, default http://localhost:5001)
  -marker  Path of the upvoted-items file`)
}
