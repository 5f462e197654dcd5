package ingest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"podstats/internal/ingest"
	"podstats/internal/logging"
	"podstats/internal/store"
	"podstats/internal/testsupport"
)

func TestRunStoresEveryEpisode(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	paths := testsupport.WriteSampleEpisodes(t, cfg.Paths.EpisodesDir)

	ing, err := ingest.New(cfg, st, testsupport.FakeScorer(), logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := ing.Run(context.Background(), cfg.Paths.EpisodesDir, paths)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(res.Episodes, []int{101, 102}) || res.Lines != 8 || res.RunID == "" {
		t.Fatalf("unexpected result %+v", res)
	}

	episodes, err := st.ListEpisodes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(episodes) != 2 || episodes[0].RunID != res.RunID {
		t.Fatalf("unexpected stored episodes %+v", episodes)
	}

	// lock is released after the run
	lock, err := store.AcquireIngestLock(cfg.LockPath())
	if err != nil {
		t.Fatalf("lock still held: %v", err)
	}
	_ = lock.Release()
}

func TestRunStopsAtMalformedTranscript(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	paths := testsupport.WriteSampleEpisodes(t, cfg.Paths.EpisodesDir)
	bad := filepath.Join(cfg.Paths.EpisodesDir, "episode-100.txt")
	if err := os.WriteFile(bad, []byte("Episode 100\nTitle\nDate\nno colon here\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ing, err := ingest.New(cfg, st, testsupport.FakeScorer(), nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := ing.Run(context.Background(), cfg.Paths.EpisodesDir, []string{paths[0], bad, paths[1]})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !reflect.DeepEqual(res.Episodes, []int{101}) {
		t.Fatalf("expected only the first episode stored, got %+v", res.Episodes)
	}
}

func TestRunRefusesWhenLocked(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	held, err := store.AcquireIngestLock(cfg.LockPath())
	if err != nil {
		t.Fatal(err)
	}
	defer held.Release()

	ing, err := ingest.New(cfg, st, testsupport.FakeScorer(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ing.Run(context.Background(), cfg.Paths.EpisodesDir, nil); !errors.Is(err, store.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := ingest.New(nil, nil, testsupport.FakeScorer(), nil); err == nil {
		t.Fatal("expected error")
	}
}
