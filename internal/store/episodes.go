package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"podstats/internal/transcript"
)

// ErrNotFound is returned when an episode does not exist.
var ErrNotFound = errors.New("episode not found")

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// BeginRun records a new ingest run and returns it.
func (s *Store) BeginRun(ctx context.Context, sourceDir string) (*Run, error) {
	run := &Run{ID: uuid.NewString(), StartedAt: time.Now().UTC(), SourceDir: sourceDir}
	if _, err := s.execWithRetry(ctx,
		`INSERT INTO runs (id, started_at, source_dir) VALUES (?, ?, ?)`,
		run.ID, formatTime(run.StartedAt), run.SourceDir,
	); err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// SaveConversation stores conv under runID, replacing any earlier copy of
// the same episode together with its lines and speaker aggregates.
func (s *Store) SaveConversation(ctx context.Context, runID string, conv *transcript.Conversation) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		return s.saveConversation(ctx, runID, conv)
	})
}

func (s *Store) saveConversation(ctx context.Context, runID string, conv *transcript.Conversation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM episodes WHERE id = ?`, conv.ID); err != nil {
		return fmt.Errorf("replace episode %d: %w", conv.ID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO episodes (id, title, date, source_path, run_id, ingested_at) VALUES (?, ?, ?, ?, ?, ?)`,
		conv.ID, conv.Title, conv.Date, nullableString(conv.Source), nullableString(runID), formatTime(time.Now()),
	); err != nil {
		return fmt.Errorf("insert episode %d: %w", conv.ID, err)
	}

	lineStmt, err := tx.PrepareContext(ctx, `INSERT INTO lines (
            episode_id, ordinal, speaker, words, sentence_count, word_count, avg_sentiment, profane_count
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare line insert: %w", err)
	}
	defer lineStmt.Close()
	for i, line := range conv.Lines {
		if _, err := lineStmt.ExecContext(ctx,
			conv.ID, i, line.Speaker, line.Words,
			line.SentenceCount(), line.WordCount(), line.AvgSentiment(), line.ProfanityCount(),
		); err != nil {
			return fmt.Errorf("insert line %d: %w", i, err)
		}
	}

	for _, speaker := range conv.Speakers() {
		sentiment := conv.SentimentStats(speaker)
		profanity := conv.ProfanityStats(speaker)
		if _, err := tx.ExecContext(ctx, `INSERT INTO speaker_stats (
                episode_id, speaker, word_count, compound_average, compound_variance,
                profanity_prob_average, profanity_prob_variance, profane_sentence_count, sentence_count
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			conv.ID, speaker, conv.WordCount(speaker),
			sentiment.CompoundAverage, sentiment.CompoundVariance,
			profanity.ProbAverage, profanity.ProbVariance,
			profanity.ProfaneSentenceCount, profanity.AllSentenceCount,
		); err != nil {
			return fmt.Errorf("insert speaker stats %q: %w", speaker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit episode %d: %w", conv.ID, err)
	}
	return nil
}

const episodeQuery = `SELECT e.id, e.title, e.date, e.source_path, e.run_id, e.ingested_at,
        (SELECT COUNT(1) FROM lines l WHERE l.episode_id = e.id),
        (SELECT COALESCE(SUM(l.word_count), 0) FROM lines l WHERE l.episode_id = e.id)
    FROM episodes e`

func scanEpisode(scanner interface{ Scan(dest ...any) error }) (*Episode, error) {
	var (
		ep         Episode
		sourcePath sql.NullString
		runID      sql.NullString
		ingested   string
	)
	if err := scanner.Scan(&ep.ID, &ep.Title, &ep.Date, &sourcePath, &runID, &ingested, &ep.LineCount, &ep.WordCount); err != nil {
		return nil, err
	}
	ep.SourcePath = sourcePath.String
	ep.RunID = runID.String
	ep.IngestedAt = parseTime(ingested)
	return &ep, nil
}

// ListEpisodes returns stored episodes ordered by episode number.
func (s *Store) ListEpisodes(ctx context.Context) ([]*Episode, error) {
	rows, err := s.db.QueryContext(ctx, episodeQuery+` ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var episodes []*Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		episodes = append(episodes, ep)
	}
	return episodes, rows.Err()
}

// GetEpisode fetches one episode header, or ErrNotFound.
func (s *Store) GetEpisode(ctx context.Context, id int) (*Episode, error) {
	ep, err := scanEpisode(s.db.QueryRowContext(ctx, episodeQuery+` WHERE e.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get episode %d: %w", id, err)
	}
	return ep, nil
}

// Lines returns the stored lines of an episode in transcript order.
func (s *Store) Lines(ctx context.Context, episodeID int) ([]LineRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ordinal, speaker, words, sentence_count, word_count, avg_sentiment, profane_count
        FROM lines WHERE episode_id = ? ORDER BY ordinal`, episodeID)
	if err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	defer rows.Close()

	var out []LineRecord
	for rows.Next() {
		var l LineRecord
		if err := rows.Scan(&l.Ordinal, &l.Speaker, &l.Words, &l.SentenceCount, &l.WordCount, &l.AvgSentiment, &l.ProfaneCount); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// SpeakerStats returns the per-speaker aggregates for an episode ordered by speaker.
func (s *Store) SpeakerStats(ctx context.Context, episodeID int) ([]SpeakerStats, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT speaker, word_count, compound_average, compound_variance,
            profanity_prob_average, profanity_prob_variance, profane_sentence_count, sentence_count
        FROM speaker_stats WHERE episode_id = ? ORDER BY speaker`, episodeID)
	if err != nil {
		return nil, fmt.Errorf("speaker stats: %w", err)
	}
	defer rows.Close()

	var out []SpeakerStats
	for rows.Next() {
		var st SpeakerStats
		if err := rows.Scan(
			&st.Speaker, &st.WordCount, &st.CompoundAverage, &st.CompoundVariance,
			&st.ProfanityProbAverage, &st.ProfanityProbVariance, &st.ProfaneSentenceCount, &st.SentenceCount,
		); err != nil {
			return nil, fmt.Errorf("scan speaker stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Remove deletes an episode and everything derived from it.
func (s *Store) Remove(ctx context.Context, episodeID int) error {
	res, err := s.execWithRetry(ctx, `DELETE FROM episodes WHERE id = ?`, episodeID)
	if err != nil {
		return fmt.Errorf("remove episode %d: %w", episodeID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRuns returns ingest runs newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, started_at, source_dir FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			run     Run
			started string
		)
		if err := rows.Scan(&run.ID, &started, &run.SourceDir); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = parseTime(started)
		out = append(out, run)
	}
	return out, rows.Err()
}
