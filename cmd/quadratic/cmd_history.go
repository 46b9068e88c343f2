package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"quadratic-api/internal/history"
)

func openHistory() *history.Store {
	store, err := history.Open(history.Config{Dir: historyDir})
	if err != nil {
		log.Fatalf("Failed to open history at %s: %v", historyDir, err)
	}
	return store
}

func runHistoryList(cmd *cobra.Command, args []string) {
	store := openHistory()
	defer store.Close()

	records, err := store.Recent(context.Background(), historyLimit)
	if err != nil {
		log.Fatalf("Failed to list history: %v", err)
	}
	if len(records) == 0 {
		fmt.Println("No solved equations stored.")
		return
	}

	for _, rec := range records {
		fmt.Printf("%s  %s  %s  (%s)\n",
			rec.SolvedAt.Local().Format("2006-01-02 15:04:05"),
			rec.ID, rec.Equation, rec.RootsType)
	}
}

func runHistoryClear(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		log.Fatal("Refusing to clear history without --force")
	}

	store := openHistory()
	defer store.Close()

	deleted, err := store.Clear(context.Background())
	if err != nil {
		log.Fatalf("Failed to clear history: %v", err)
	}
	fmt.Printf("Deleted %d stored equations.\n", deleted)
}
