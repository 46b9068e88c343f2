package main

import (
	"os"

	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	historyDir       string
	historyLimit     int
	sampleCount      int
	sampleDifficulty string

	rootCmd = &cobra.Command{
		Use:   "quadratic",
		Short: "Analyze quadratic equations from the command line",
		Long: `Quadratic solves equations of the form ax² + bx + c = 0, intersects
parabolas, generates practice equations, and inspects the local solve
history database used by the API server.`,
	}

	// --- Solving ---
	solveCmd = &cobra.Command{
		Use:   "solve [a] [b] [c]",
		Short: "Solve ax² + bx + c = 0 and print the full analysis",
		Args:  cobra.ExactArgs(3),
		Run:   runSolve, // Defined in cmd_solve.go
	}

	batchCmd = &cobra.Command{
		Use:   "batch [json_file]",
		Short: "Solve every equation in a JSON file of {a, b, c} objects",
		Args:  cobra.ExactArgs(1),
		Run:   runBatch, // Defined in cmd_batch.go
	}

	// --- Intersections ---
	intersectCmd = &cobra.Command{
		Use:   "intersect [a,b,c] [a,b,c] ...",
		Short: "Find where two or more parabolas meet",
		Args:  cobra.MinimumNArgs(2),
		Run:   runIntersect, // Defined in cmd_intersect.go
	}

	// --- Practice Samples ---
	samplesCmd = &cobra.Command{
		Use:   "samples",
		Short: "Generate random practice equations as JSON",
		Run:   runSamples, // Defined in cmd_samples.go
	}

	// --- History ---
	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Inspect the local solve history database",
	}
	historyListCmd = &cobra.Command{
		Use:   "list",
		Short: "List stored solves, newest first",
		Run:   runHistoryList, // Defined in cmd_history.go
	}
	historyClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "DANGER: Deletes every stored solve",
		Run:   runHistoryClear, // Defined in cmd_history.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.AddCommand(solveCmd)

	rootCmd.AddCommand(batchCmd)

	rootCmd.AddCommand(intersectCmd)

	rootCmd.AddCommand(samplesCmd)
	samplesCmd.Flags().IntVar(&sampleCount, "count", 10, "Number of equations to generate")
	samplesCmd.Flags().StringVar(&sampleDifficulty, "difficulty", "mixed", "Coefficient ranges: easy, hard, or mixed")

	rootCmd.AddCommand(historyCmd)
	historyCmd.PersistentFlags().StringVar(&historyDir, "dir", defaultHistoryDir(), "History database directory")
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of solves to show")
	historyCmd.AddCommand(historyClearCmd)
	historyClearCmd.Flags().Bool("force", false, "Required to confirm the deletion of all stored solves.")
}

func defaultHistoryDir() string {
	if dir := os.Getenv("QUADRATIC_HISTORY_DIR"); dir != "" {
		return dir
	}
	return "quadratic-history"
}
