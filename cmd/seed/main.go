package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/danielpatrickdp/launchgate/internal/rules"
	"github.com/danielpatrickdp/launchgate/internal/store"
)

// #region main

func main() {
	dbPath := envOr("LAUNCHGATE_DB", "launchgate.db")

	fmt.Println("=== Launchgate Seed Tool ===")
	fmt.Printf("  DB: %s\n", dbPath)

	st, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("\n--- Phase 1: Decision Rules ---")
	seeded := 0
	for _, def := range demoRules() {
		if err := st.AddRule(ctx, def); err != nil {
			log.Printf("rule %s: %v", def.RuleKey, err)
			continue
		}
		seeded++
	}
	fmt.Printf("  Rules seeded: %d\n", seeded)

	fmt.Println("\n--- Phase 2: Signal Weights ---")
	weights := map[string]float64{
		"deaths":     1.2,
		"restarts":   1.0,
		"playtime":   0.8,
		"early_quit": 1.5,
	}
	for key, w := range weights {
		if err := st.SetSignalWeight(ctx, key, w); err != nil {
			log.Fatalf("weight %s: %v", key, err)
		}
	}
	fmt.Printf("  Weights seeded: %d\n", len(weights))

	fmt.Println("\n--- Phase 3: Risk History ---")
	histCount := 0
	for _, h := range demoHistory() {
		if err := st.AppendHistory(ctx, h.gameID, h.risk, h.verdict); err != nil {
			log.Fatalf("history %s: %v", h.gameID, err)
		}
		histCount++
	}
	fmt.Printf("  History rows: %d\n", histCount)

	fmt.Println("\n=== Seed Complete ===")
}

// #endregion main

// #region fixtures

func demoRules() []rules.Definition {
	return []rules.Definition{
		{
			RuleKey:     "deaths",
			MinValue:    f(15),
			Decision:    decision.VerdictKill,
			Priority:    1,
			Active:      true,
			Description: "excessive deaths in a single record",
		},
		{
			RuleKey:     "early_quit",
			MinValue:    f(1),
			Decision:    decision.VerdictIterate,
			Priority:    5,
			Active:      true,
			Description: "player abandoned the session early",
		},
		{
			RuleKey:     "playtime",
			MaxValue:    f(30),
			Decision:    decision.VerdictIterate,
			Priority:    10,
			Active:      false,
			Description: "near-zero playtime, disabled pending tuning",
		},
	}
}

type historyRow struct {
	gameID  string
	risk    float64
	verdict decision.Verdict
}

func demoHistory() []historyRow {
	return []historyRow{
		{"demo-game", 70, decision.VerdictKill},
		{"demo-game", 55, decision.VerdictIterate},
		{"demo-game", 42, decision.VerdictIterate},
		{"demo-game", 30, decision.VerdictGo},
	}
}

func f(v float64) *float64 { return &v }

// #endregion fixtures

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
