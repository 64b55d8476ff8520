package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/analyzer"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/engine"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/llm"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/store"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run an adaptive assessment session",
	Long: "Runs an interactive assessment over one or all trait dimensions. " +
		"Each dimension asks the most informative remaining question until the " +
		"trait estimate is confident enough or the question budget runs out.",
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().String("user", "local", "User identifier")
	assessCmd.Flags().String("session", "", "Session identifier (default: a new random session)")
	assessCmd.Flags().String("dimension", "", "Assess a single dimension instead of all")
	assessCmd.Flags().Bool("open", false, "Ask one open-ended question per dimension (requires an LLM provider)")
}

func runAssess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	logger := newLogger(cmd)
	defer func() { _ = logger.Sync() }()

	bank := itembank.Default()
	ctx := cmd.Context()

	opts := []engine.Option{
		engine.WithConfig(cfg.EngineConfig()),
		engine.WithEvents(s.EventRepo()),
		engine.WithLogger(logger),
	}

	askOpen, _ := cmd.Flags().GetBool("open")
	if askOpen {
		provider, err := llm.NewProvider(ctx, cfg.LLMConfig(), s.EventRepo())
		if err != nil {
			return fmt.Errorf("open questions requested but no LLM provider available: %w", err)
		}
		opts = append(opts, engine.WithAnalyzer(analyzer.New(provider, analyzer.DefaultConfig())))
	}

	svc := engine.NewService(bank, s.StateRepo(), opts...)

	userID, _ := cmd.Flags().GetString("user")
	sessionID, _ := cmd.Flags().GetString("session")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	dims := bank.Dimensions()
	if only, _ := cmd.Flags().GetString("dimension"); only != "" {
		dim := bank.Dimension(only)
		if dim == nil {
			return fmt.Errorf("unknown dimension %q", only)
		}
		dims = []itembank.Dimension{*dim}
	}

	fmt.Printf("Session %s\n", sessionID)
	in := bufio.NewScanner(os.Stdin)

	for _, dim := range dims {
		key := engine.Key{UserID: userID, SessionID: sessionID, DimensionID: dim.ID}
		if err := assessDimension(ctx, svc, bank, key, dim, in, askOpen); err != nil {
			return err
		}
	}

	return printSummary(ctx, svc, bank, userID, sessionID)
}

// assessDimension drives one dimension from start to completion, reading
// answers from in.
func assessDimension(ctx context.Context, svc *engine.Service, bank itembank.Bank, key engine.Key, dim itembank.Dimension, in *bufio.Scanner, askOpen bool) error {
	fmt.Printf("\n== %s ==\n", dim.NameEn)

	st, err := svc.StartDimension(ctx, key)
	if err != nil {
		return err
	}
	openAsked := st.LLMAdjustments > 0

	for !st.Completed {
		// One open question per dimension, once some closed evidence
		// has accumulated.
		if askOpen && !openAsked && len(st.AnsweredItemIDs) >= 3 {
			if open := openItemFor(bank, dim.ID); open != nil {
				if st, err = svc.AssignOpenItem(ctx, key, open.ID); err != nil {
					return err
				}
			}
			openAsked = true
		}

		item := bank.Item(st.CurrentItemID)
		if item == nil {
			return fmt.Errorf("item %q missing from bank", st.CurrentItemID)
		}

		ans, err := promptAnswer(item, in)
		if err != nil {
			return err
		}

		st, err = svc.SubmitAnswer(ctx, key, item.ID, ans)
		switch {
		case errors.Is(err, engine.ErrInvalidAnswer):
			fmt.Println("That answer is not valid for this question, try again.")
			if st, err = svc.GetCurrentState(ctx, key); err != nil {
				return err
			}
		case errors.Is(err, engine.ErrAnalysisUnavailable):
			fmt.Println("Could not analyze the written answer; continuing with the scored questions.")
		case err != nil:
			return err
		}
	}

	fmt.Printf("\n%s complete (%s): theta %.2f, confidence %.0f%%",
		dim.NameEn, st.CompletionReason, st.Theta, st.Confidence*100)
	if st.Segment != nil {
		fmt.Printf(", level: %s", st.Segment.NameEn)
	}
	fmt.Println()
	return nil
}

// promptAnswer renders the item and reads one answer from in.
func promptAnswer(item *itembank.Item, in *bufio.Scanner) (itembank.Answer, error) {
	fmt.Printf("\n%s\n", item.Text)

	switch item.Type {
	case itembank.TypeLikert:
		fmt.Println("  1 = strongly disagree ... 5 = strongly agree")
		fmt.Print("> ")
		line, err := readLine(in)
		if err != nil {
			return itembank.Answer{}, err
		}
		scale, _ := strconv.Atoi(line)
		return itembank.Answer{Scale: scale}, nil

	case itembank.TypeOpen:
		fmt.Println("  (answer in your own words)")
		fmt.Print("> ")
		line, err := readLine(in)
		if err != nil {
			return itembank.Answer{}, err
		}
		return itembank.Answer{Text: line}, nil

	default:
		for _, opt := range item.Options {
			fmt.Printf("  [%s] %s\n", opt.Code, opt.Text)
		}
		fmt.Print("> ")
		line, err := readLine(in)
		if err != nil {
			return itembank.Answer{}, err
		}
		return itembank.Answer{Code: strings.ToLower(line)}, nil
	}
}

func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.Text()), nil
}

func openItemFor(bank itembank.Bank, dimensionID string) *itembank.Item {
	dim := bank.Dimension(dimensionID)
	if dim == nil {
		return nil
	}
	for _, it := range allItems(bank, dimensionID) {
		if it.Type == itembank.TypeOpen {
			return it
		}
	}
	return nil
}

// allItems walks the bank for a dimension's full item list, including
// non-selectable types.
func allItems(bank itembank.Bank, dimensionID string) []*itembank.Item {
	if mb, ok := bank.(*itembank.MemoryBank); ok {
		return mb.DimensionItems(dimensionID)
	}
	return bank.EligibleItems(dimensionID, nil)
}

func printSummary(ctx context.Context, svc *engine.Service, bank itembank.Bank, userID, sessionID string) error {
	states, err := svc.SessionStates(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	fmt.Println("\n== Profile ==")
	for _, st := range states {
		dim := bank.Dimension(st.Key.DimensionID)
		name := st.Key.DimensionID
		if dim != nil {
			name = dim.NameEn
		}
		level := "-"
		if st.Segment != nil {
			level = st.Segment.NameEn
		}
		fmt.Printf("%-28s theta %+.2f  confidence %3.0f%%  %s\n",
			name, st.Theta, st.Confidence*100, level)
	}
	return nil
}
