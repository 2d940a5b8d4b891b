package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/danielpatrickdp/launchgate/internal/config"
	"github.com/danielpatrickdp/launchgate/internal/pipeline"
	"github.com/danielpatrickdp/launchgate/internal/publish"
	"github.com/danielpatrickdp/launchgate/internal/store"
	"github.com/danielpatrickdp/launchgate/internal/validate"
)

// #region main

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	dbPath := flag.String("db", cfg.DBPath, "path to launchgate.db")
	inputPath := flag.String("input", "-", "DecisionInput JSON file, or - for stdin")
	jsonOut := flag.Bool("json", false, "output the full result as JSON instead of a summary")
	verbose := flag.Bool("verbose", false, "log each pipeline stage")
	flag.Parse()

	raw, err := readInput(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	in, details, err := validate.JSON(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		for field, msg := range details {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	opts := pipeline.DefaultOptions()
	opts.HistoryLimit = cfg.HistoryLimit
	opts.ShortSessionMinutes = cfg.ShortSessionMinutes
	if *verbose {
		opts.Recorder = pipeline.LogRecorder{}
	}

	if cfg.PublishEnabled() {
		pub, err := publish.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "kafka: %v\n", err)
			os.Exit(1)
		}
		defer pub.Close()
		opts.Publisher = pub
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := pipeline.New(st, opts).Run(ctx, in)

	if *jsonOut {
		if err := printJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		printSummary(result)
	}
	if !result.OK {
		os.Exit(1)
	}
}

// #endregion main

// #region input

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// #endregion input

// #region output

func printSummary(r pipeline.Result) {
	if !r.OK {
		fmt.Printf("Error:      %s\n", r.Error)
		for field, msg := range r.Details {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return
	}

	fmt.Printf("Decision:   %s\n", r.Decision)
	if r.RiskScore != nil {
		fmt.Printf("Risk:       %.1f\n", *r.RiskScore)
	} else {
		fmt.Printf("Risk:       — (rule override)\n")
	}
	fmt.Printf("Confidence: %.2f (%s)\n", r.Confidence, r.ConfidenceLevel)
	fmt.Printf("Source:     %s\n", r.Source)
	if r.PrimaryCategory != "" {
		fmt.Printf("Category:   %s\n", r.PrimaryCategory)
	}
	if r.RuleMatch != nil {
		fmt.Printf("Rule:       %s\n", r.RuleMatch.MatchedRule)
	}
	if r.Temporal != nil {
		fmt.Printf("Trend:      %s (volatility %.0f, stability %s)\n",
			r.Temporal.Trend, r.Temporal.Volatility, r.Temporal.Stability)
	}
	if r.Counterfactual != nil {
		fmt.Printf("Safest:     %s\n", r.Counterfactual.Safest)
	}
	if r.Explanation != nil && len(r.Explanation.Reasons) > 0 {
		fmt.Println("\nWhy:")
		for _, reason := range r.Explanation.Reasons {
			fmt.Printf("  %-40s %.2f\n", reason.Factor, reason.Impact)
		}
	}
	if len(r.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range r.Recommendations {
			fmt.Printf("  [%s] %s\n", rec.Priority, rec.Action)
		}
	}
	if r.Ledger != nil {
		fmt.Printf("\nLedger:     %s @ %s\n", r.Ledger.EntryID, r.Ledger.CreatedAt.Format(time.RFC3339))
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
