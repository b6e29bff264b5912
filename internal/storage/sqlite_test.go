package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/eggsposed/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRound(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(RoundResult{
		GameID:      "eggsposed",
		Eggs:        16,
		SecondsLeft: 42,
		Outcome:     "won",
		Seed:        1234,
		Score:       1642,
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	r, err := store.RoundByID(id)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("round not found")
	}
	if r.Eggs != 16 || r.SecondsLeft != 42 || r.Outcome != "won" || r.Seed != 1234 || r.Score != 1642 {
		t.Errorf("round = %+v", *r)
	}

	high, _ := store.HighScore("eggsposed")
	if high != 1642 {
		t.Errorf("SaveRound should record the score, high = %d", high)
	}
}

func TestStoreRoundByIDMissing(t *testing.T) {
	store := openTestStore(t)

	r, err := store.RoundByID(99)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if r != nil {
		t.Errorf("expected nil for a missing round, got %+v", *r)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: i, Outcome: "lost", Seed: int64(i), Score: i * 100})
	}
	store.SaveRound(RoundResult{GameID: "eggsposed_classic", Eggs: 9, Outcome: "won"})

	rounds, err := store.RecentRounds("eggsposed", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}
	if rounds[0].Eggs != 5 || rounds[2].Eggs != 3 {
		t.Errorf("rounds not newest first: %d, %d", rounds[0].Eggs, rounds[2].Eggs)
	}
}

func TestStoreTopRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: 4, Outcome: "lost", Score: 400})
	store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: 16, Outcome: "won", Score: 1690})
	store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: 9, Outcome: "lost", Score: 900})

	rounds, err := store.TopRounds("eggsposed", 2)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 2 || rounds[0].Score != 1690 || rounds[1].Score != 900 {
		t.Errorf("top rounds = %+v", rounds)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: 16, Outcome: "won", Score: 1650})
	store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: 7, Outcome: "lost", Score: 700})

	stats, err := store.GetGameStats("eggsposed")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.BestEggs != 16 || stats.HighScore != 1650 {
		t.Errorf("stats = %+v", *stats)
	}
	if stats.AvgScore != 1175 {
		t.Errorf("AvgScore = %v, expected 1175", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	st, ok := all["eggsposed"]
	if !ok || len(all) != 1 {
		t.Fatalf("all stats = %v", all)
	}
	if st.GamesCount != 2 || st.Wins != 1 || st.BestEggs != 16 || st.HighScore != 1650 {
		t.Errorf("all stats entry = %+v", *st)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("eggsposed")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: 3, Outcome: OutcomeLost, Score: 300})
	store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: 16, Outcome: OutcomeWon, Score: 1700})
	store.SaveRound(RoundResult{GameID: "eggsposed_classic", Eggs: 30, Outcome: OutcomeWon, Score: 3000})

	high, err = store.HighScore("eggsposed")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1700 {
		t.Errorf("Expected high score 1700, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundResult{GameID: "eggsposed", Eggs: 3, Outcome: OutcomeLost, Score: 300})
	store.SaveRound(RoundResult{GameID: "eggsposed_classic", Eggs: 5, Outcome: OutcomeWon, Score: 500})

	if err := store.ClearScores("eggsposed"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if high, _ := store.HighScore("eggsposed"); high != 0 {
		t.Errorf("high score after clear = %d, expected 0", high)
	}
	if rounds, _ := store.RecentRounds("eggsposed", 10); len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
	if high, _ := store.HighScore("eggsposed_classic"); high != 500 {
		t.Errorf("Classic scores should not be affected by clearing meadow")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestRoundFromState(t *testing.T) {
	tests := []struct {
		name    string
		state   core.GameState
		outcome string
	}{
		{"won", core.GameState{GameOver: true, Won: true, Eggs: 16, SecondsLeft: 9, Seed: 7, Score: 1609}, OutcomeWon},
		{"lost", core.GameState{GameOver: true, Eggs: 5, Seed: 7, Score: 500}, OutcomeLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RoundFromState("eggsposed", tt.state)
			if r.GameID != "eggsposed" || r.Outcome != tt.outcome {
				t.Errorf("RoundFromState = %+v, expected outcome %s", r, tt.outcome)
			}
			if r.Eggs != tt.state.Eggs || r.SecondsLeft != tt.state.SecondsLeft || r.Seed != 7 || r.Score != tt.state.Score {
				t.Errorf("RoundFromState = %+v does not carry %+v", r, tt.state)
			}
		})
	}
}
