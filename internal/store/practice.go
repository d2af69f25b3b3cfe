package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// practiceRepo implements PracticeRepo with the ent SQL builder.
type practiceRepo struct {
	drv *entsql.Driver
}

func (r *practiceRepo) RecordAttempts(ctx context.Context, attempts []AttemptData, at time.Time) (err error) {
	if len(attempts) == 0 {
		return nil
	}
	at = at.UTC()
	b := builder(r.drv)

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, a := range attempts {
		success := 0
		if a.Success {
			success = 1
		}

		query, args := b.Insert(statsTableName).
			Columns(colSymbol, colAttempts, colSuccesses).
			Values(a.Character, 1, success).
			OnConflict(
				entsql.ConflictColumns(colSymbol),
				entsql.ResolveWith(func(u *entsql.UpdateSet) {
					u.Add(colAttempts, 1)
					u.Add(colSuccesses, success)
				}),
			).
			Query()
		if err = tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("upsert stat %q: %w", a.Character, err)
		}

		query, args = b.Insert(attemptsTableName).
			Columns(colTimestamp, colSymbol, colSuccess).
			Values(at, a.Character, a.Success).
			Query()
		if err = tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("append attempt %q: %w", a.Character, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit attempts: %w", err)
	}
	return nil
}

func (r *practiceRepo) ListStats(ctx context.Context) ([]StatRecord, error) {
	b := builder(r.drv)
	query, args := b.Select(colSymbol, colAttempts, colSuccesses).
		From(b.Table(statsTableName)).
		OrderBy(entsql.Desc(colAttempts), entsql.Asc(colSymbol)).
		Query()
	return r.queryStats(ctx, query, args)
}

func (r *practiceRepo) ListAttemptedStats(ctx context.Context) ([]StatRecord, error) {
	b := builder(r.drv)
	query, args := b.Select(colSymbol, colAttempts, colSuccesses).
		From(b.Table(statsTableName)).
		Where(entsql.GT(colAttempts, 0)).
		OrderBy(entsql.Asc(colSymbol)).
		Query()
	return r.queryStats(ctx, query, args)
}

func (r *practiceRepo) queryStats(ctx context.Context, query string, args []any) ([]StatRecord, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []StatRecord
	for rows.Next() {
		var s StatRecord
		if err := rows.Scan(&s.Character, &s.Attempts, &s.Successes); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}
	return out, nil
}

func (r *practiceRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error) {
	b := builder(r.drv)
	sel := b.Select(colID, colTimestamp, colSymbol, colSuccess).
		From(b.Table(attemptsTableName)).
		OrderBy(entsql.Desc(colTimestamp), entsql.Desc(colID))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var a AttemptRecord
		if err := rows.Scan(&a.ID, &a.Timestamp, &a.Character, &a.Success); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Timestamp = a.Timestamp.UTC()
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *practiceRepo) CountAttempts(ctx context.Context, character string) (int, error) {
	b := builder(r.drv)
	query, args := b.Select(entsql.Count("*")).
		From(b.Table(attemptsTableName)).
		Where(entsql.EQ(colSymbol, character)).
		Query()
	return countRows(ctx, r.drv, query, args)
}

// countRows runs a single-value COUNT query.
func countRows(ctx context.Context, drv *entsql.Driver, query string, args []any) (int, error) {
	var rows entsql.Rows
	if err := drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan count: %w", err)
		}
	}
	return n, rows.Err()
}
