// Package pipeline sequences the decision stages: validate, derive signals,
// check rule overrides, score, profile, explain, recommend, and write the
// audit ledger. The only branch point is the rule-override short-circuit.
package pipeline

// #region imports
import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/danielpatrickdp/launchgate/internal/confidence"
	"github.com/danielpatrickdp/launchgate/internal/counterfactual"
	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/danielpatrickdp/launchgate/internal/explain"
	"github.com/danielpatrickdp/launchgate/internal/insight"
	"github.com/danielpatrickdp/launchgate/internal/ledger"
	"github.com/danielpatrickdp/launchgate/internal/model"
	"github.com/danielpatrickdp/launchgate/internal/publish"
	"github.com/danielpatrickdp/launchgate/internal/recommend"
	"github.com/danielpatrickdp/launchgate/internal/rules"
	"github.com/danielpatrickdp/launchgate/internal/signals"
	"github.com/danielpatrickdp/launchgate/internal/temporal"
	"github.com/danielpatrickdp/launchgate/internal/validate"
)

// #endregion

// #region options

// Options tunes one Pipeline instance.
type Options struct {
	HistoryLimit        int
	ShortSessionMinutes float64
	Recorder            Recorder
	Publisher           *publish.Publisher // nil disables decision events
}

// DefaultOptions returns the standard pipeline tuning.
func DefaultOptions() Options {
	return Options{
		HistoryLimit:        20,
		ShortSessionMinutes: model.DefaultShortSessionMinutes,
		Recorder:            NopRecorder{},
	}
}

// #endregion options

// #region pipeline

// Pipeline runs the full decision sequence against one data store.
// Invocations share no mutable state, so one Pipeline serves concurrent
// callers.
type Pipeline struct {
	store     Store
	deriver   *signals.Deriver
	evaluator *rules.Evaluator
	opts      Options
}

// New creates a fully wired pipeline.
func New(store Store, opts Options) *Pipeline {
	if opts.Recorder == nil {
		opts.Recorder = NopRecorder{}
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultOptions().HistoryLimit
	}
	if opts.ShortSessionMinutes <= 0 {
		opts.ShortSessionMinutes = model.DefaultShortSessionMinutes
	}
	return &Pipeline{
		store:     store,
		deriver:   signals.NewDeriver(signals.DefaultDeriverConfig()),
		evaluator: rules.NewEvaluator(store),
		opts:      opts,
	}
}

// #endregion pipeline

// #region run

// Run executes one decision invocation. All returned values are freshly
// constructed; the input is never mutated.
func (p *Pipeline) Run(ctx context.Context, in decision.Input) Result {
	rec := p.opts.Recorder

	rec.Stage("validate")
	if details := validate.Input(in); len(details) > 0 {
		return Result{OK: false, Error: ErrInvalidInput, Details: details}
	}

	rec.Stage("derive_signals")
	history, err := p.store.History(ctx, in.GameID, p.opts.HistoryLimit)
	if err != nil {
		// Degrades to no baseline and a neutral temporal profile.
		rec.Event("history_store_error", err.Error())
		history = nil
	}
	derived := p.deriver.Derive(in, history)
	found := insight.Extract(in)

	rec.Stage("rule_check")
	match, err := p.evaluator.Check(ctx, derived.Metrics)
	if err != nil {
		// Availability over strictness: a rule-store outage falls through to
		// model scoring. The event keeps the outage observable.
		rec.Event("rule_store_error", err.Error())
	}
	if match != nil {
		rec.Event("rule_override", match.MatchedRule)
		log.Printf("[PIPE] rule override game=%s rule=%s decision=%s", in.GameID, match.MatchedRule, match.Decision)
		return Result{
			OK:              true,
			Decision:        match.Decision,
			RiskScore:       nil,
			Confidence:      ruleConfidence,
			ConfidenceLevel: "HIGH",
			Source:          SourceRuleEngine,
			Insights:        found,
			RuleMatch:       match,
		}
	}

	rec.Stage("model_scoring")
	assessment := model.Assess(model.MetricsFromInput(in, derived), p.opts.ShortSessionMinutes)

	rec.Stage("confidence")
	weights, err := p.store.SignalWeights(ctx)
	if err != nil {
		rec.Event("weight_store_error", err.Error())
		weights = nil
	}
	conf := confidence.Score(derived.Levels, false, weights)

	// Temporal profiling and counterfactual simulation share the same
	// normalized base and have no mutual dependency.
	var profile temporal.Profile
	var simulated counterfactual.Set
	values := historyValues(history)

	rec.Stage("temporal")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		profile = temporal.Analyze(values)
	}()
	go func() {
		defer wg.Done()
		simulated = counterfactual.Simulate(counterfactual.Base{
			Risk:       assessment.RiskScore / 100,
			Confidence: conf,
			Momentum:   momentum(values),
		})
	}()
	wg.Wait()

	rec.Stage("explain")
	explanation := explain.Build(in.Deaths, sessionLength(in), in.Restarts)

	rec.Stage("recommend")
	actions := recommend.Generate(assessment.Decision, assessment.RiskScore, found.PrimaryRisk)

	rec.Stage("ledger")
	risk := assessment.RiskScore
	entry := ledger.New(ledger.Params{
		Input:       in,
		Decision:    assessment.Decision,
		Source:      ledger.SourceAI,
		RiskScore:   &risk,
		Confidence:  conf,
		Explanation: explanationText(explanation),
		Trend:       &profile.Trend,
		Volatility:  &profile.Volatility,
		Shock:       &profile.Shock,
	})
	if err := p.store.AppendLedger(ctx, entry); err != nil {
		rec.Event("ledger_write_error", err.Error())
		return Result{OK: false, Error: ErrLedgerWrite, Details: map[string]string{"ledger": err.Error()}}
	}
	if err := p.store.AppendHistory(ctx, in.GameID, assessment.RiskScore, assessment.Decision); err != nil {
		// History feeds future trend analysis only; the decision stands.
		rec.Event("history_write_error", err.Error())
	}

	result := Result{
		OK:              true,
		Decision:        assessment.Decision,
		RiskScore:       &risk,
		Confidence:      conf,
		ConfidenceLevel: confidence.Label(conf),
		Source:          SourceModel,
		PrimaryCategory: assessment.PrimaryCategory,
		Insights:        found,
		Temporal:        &profile,
		Counterfactual:  &simulated,
		Explanation:     &explanation,
		Recommendations: actions,
		Ledger:          &entry,
	}

	p.publishResult(in, result)
	return result
}

// ruleConfidence is the numeric stand-in for the forced HIGH confidence on
// a rule override; the scorer itself is skipped on that path.
const ruleConfidence = 0.9

// #endregion run

// #region publish

// publishResult emits a best-effort decision event. Failures are logged,
// never propagated: the ledger entry is already durable.
func (p *Pipeline) publishResult(in decision.Input, result Result) {
	if p.opts.Publisher == nil {
		return
	}
	event := publish.DecisionEvent{
		GameID:     in.GameID,
		SessionID:  in.SessionID,
		Decision:   result.Decision,
		Source:     result.Source,
		RiskScore:  result.RiskScore,
		Confidence: result.Confidence,
	}
	if result.Ledger != nil {
		event.LedgerID = result.Ledger.EntryID
		event.CreatedAt = result.Ledger.CreatedAt
	}
	if err := p.opts.Publisher.PublishDecision(event); err != nil {
		log.Printf("[PIPE] decision event publish failed: %v", err)
	}
}

// #endregion publish

// #region helpers

// historyValues projects history records to their risk scores, preserving
// the newest-first ordering.
func historyValues(history []decision.HistoryRecord) []float64 {
	values := make([]float64, len(history))
	for i, h := range history {
		values[i] = h.RiskScore
	}
	return values
}

// momentum is the average consecutive risk drop across history, clamped by
// the simulator on entry. No history reads as neutral.
func momentum(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(values); i++ {
		sum += values[i-1] - values[i]
	}
	return sum / float64(len(values)-1)
}

// sessionLength picks the representative session length for explanation:
// the average attached sub-session when present, otherwise the record's own
// playtime.
func sessionLength(in decision.Input) float64 {
	if len(in.Sessions) == 0 {
		return in.Playtime
	}
	var total float64
	for _, s := range in.Sessions {
		total += s.DurationSec
	}
	return total / float64(len(in.Sessions))
}

// explanationText flattens the ranked factors into the ledger's string field.
func explanationText(e explain.Explanation) string {
	factors := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		factors[i] = r.Factor
	}
	return strings.Join(factors, "; ")
}

// #endregion helpers
