package main

import (
	"bufio"
	"flag"
	"fmt"
	"freevector_app_go/config"
	"freevector_app_go/db"
	"freevector_app_go/models"
	"freevector_app_go/services"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
)

func main() {
	status := flag.String("status", models.ContactStatusNew, "status to list (empty for all)")
	limit := flag.Int("limit", 50, "maximum requests to list")
	mark := flag.String("mark", "", "move the requests given by -id to this status")
	ids := flag.String("id", "", "comma separated request ids for -mark")
	yes := flag.Bool("yes", false, "do not ask for confirmation")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.ContactRequest{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if *mark != "" {
		markRequests(*mark, splitIDs(*ids), *yes)
		return
	}

	requests, err := services.ListContactRequests(db.DB, *status, *limit)
	if err != nil {
		log.Fatal(err)
	}
	if len(requests) == 0 {
		fmt.Println("No contact requests.")
		return
	}
	printRequests(requests)
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func markRequests(status string, ids []string, yes bool) {
	if len(ids) == 0 {
		log.Fatal("-mark requires at least one -id")
	}
	if !models.IsValidContactStatus(status) {
		log.Fatalf("Unknown status %q (valid: %s)", status, strings.Join(models.ContactStatuses, ", "))
	}

	if !yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatal("Refusing to update without a terminal; pass -yes")
		}
		fmt.Printf("Mark %d request(s) as %s? [y/N] ", len(ids), status)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	n, err := services.UpdateContactRequestStatus(db.DB, ids, status)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("✅ Updated %d of %d request(s)\n", n, len(ids))
}

func printRequests(requests []models.ContactRequest) {
	// Message column fills what the terminal leaves after the fixed columns
	messageWidth := 40
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 120 {
		messageWidth = width - 100
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSTATUS\tEMAIL\tTEAM\tNOTIFIED\tMESSAGE")
	for _, r := range requests {
		notified := "no"
		if r.NotifiedAt != nil {
			notified = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Status,
			r.Email,
			r.TeamSize,
			notified,
			clip(strings.Join(strings.Fields(r.Message), " "), messageWidth),
		)
	}
	w.Flush()
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
