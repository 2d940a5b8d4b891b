package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/launchgate/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to launchgate.db")
	last := flag.Int("last", 20, "show N most recent ledger entries")
	game := flag.String("game", "", "filter entries to one game")
	entryID := flag.String("entry", "", "show single ledger entry detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/launchgate.db [--last N] [--game id] [--entry id] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *entryID != "" {
		if err := runDetailMode(ctx, st, *entryID, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(ctx, st, *game, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

func runListMode(ctx context.Context, st *store.Store, game string, last int, jsonOut bool) error {
	entries, err := st.ListLedger(ctx, game, last)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no ledger entries found")
		return nil
	}

	if jsonOut {
		return printJSON(entries)
	}

	fmt.Printf("%-10s  %-12s  %-8s  %6s  %5s  %-10s  %s\n",
		"Entry", "Game", "Decision", "Risk", "Conf", "Source", "Time")
	fmt.Printf("%-10s+-%-12s+-%-8s+-%6s+-%5s+-%-10s+-%s\n",
		"----------", "------------", "--------", "------", "-----", "----------", "--------------------")

	for _, e := range entries {
		risk := "—"
		if e.RiskScore != nil {
			risk = fmt.Sprintf("%.1f", *e.RiskScore)
		}
		fmt.Printf("%-10s  %-12s  %-8s  %6s  %5.2f  %-10s  %s\n",
			shortID(e.EntryID), e.GameID, e.Decision, risk, e.Confidence, e.Source,
			e.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(ctx context.Context, st *store.Store, entryID string, jsonOut bool) error {
	e, err := st.GetLedgerEntry(ctx, entryID)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(e)
	}

	fmt.Printf("Entry:      %s\n", e.EntryID)
	fmt.Printf("Game:       %s\n", e.GameID)
	fmt.Printf("Player:     %s\n", e.PlayerID)
	fmt.Printf("Session:    %s\n", e.SessionID)
	fmt.Printf("Created:    %s\n", e.CreatedAt.Format("2006-01-02T15:04:05Z"))
	fmt.Printf("Decision:   %s\n", e.Decision)
	fmt.Printf("Source:     %s\n", e.Source)
	if e.RiskScore != nil {
		fmt.Printf("Risk:       %.1f\n", *e.RiskScore)
	} else {
		fmt.Printf("Risk:       — (rule override)\n")
	}
	fmt.Printf("Confidence: %.2f\n", e.Confidence)
	if e.Explanation != "" {
		fmt.Printf("Why:        %s\n", e.Explanation)
	}

	if e.Trend != nil {
		fmt.Printf("\nTemporal:\n")
		fmt.Printf("  Trend:       %s\n", *e.Trend)
		if e.Volatility != nil {
			fmt.Printf("  Volatility:  %.0f\n", *e.Volatility)
		}
		if e.Shock != nil {
			fmt.Printf("  Shock:       %v\n", *e.Shock)
		}
	}

	fmt.Printf("\nInput Snapshot:\n")
	fmt.Printf("  Playtime:    %.0fs\n", e.Snapshot.Playtime)
	fmt.Printf("  Deaths:      %d\n", e.Snapshot.Deaths)
	fmt.Printf("  Restarts:    %d\n", e.Snapshot.Restarts)
	fmt.Printf("  Early quit:  %v\n", e.Snapshot.EarlyQuit)

	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
