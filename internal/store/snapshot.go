package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo with the ent SQL builder.
type snapshotRepo struct {
	drv *entsql.Driver
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	b := builder(r.drv)
	insert := b.Insert(snapshotsTableName).
		Columns(colTimestamp, "total_attempts", "data").
		Values(snap.Timestamp.UTC(), snap.TotalAttempts, data)

	// Postgres has no LastInsertId; ask for the key explicitly.
	if r.drv.Dialect() == dialect.Postgres {
		insert.Returning(colID)
		query, args := insert.Query()
		var rows entsql.Rows
		if err := r.drv.Query(ctx, query, args, &rows); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		defer rows.Close()
		if rows.Next() {
			if err := rows.Scan(&snap.ID); err != nil {
				return fmt.Errorf("scan snapshot id: %w", err)
			}
		}
		return rows.Err()
	}

	query, args := insert.Query()
	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("snapshot id: %w", err)
	}
	snap.ID = int(id)
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	snaps, err := r.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}

func (r *snapshotRepo) List(ctx context.Context, limit int) ([]Snapshot, error) {
	b := builder(r.drv)
	sel := b.Select(colID, colTimestamp, "total_attempts", "data").
		From(b.Table(snapshotsTableName)).
		OrderBy(entsql.Desc(colTimestamp), entsql.Desc(colID))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var (
			s   Snapshot
			raw []byte
		)
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.TotalAttempts, &raw); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if err := json.Unmarshal(raw, &s.Data); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
		}
		s.Timestamp = s.Timestamp.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return out, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	b := builder(r.drv)

	// Find the newest snapshot that falls outside the keep window.
	query, args := b.Select(colID, colTimestamp).
		From(b.Table(snapshotsTableName)).
		OrderBy(entsql.Desc(colTimestamp), entsql.Desc(colID)).
		Offset(keep).
		Limit(1).
		Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	var (
		thresholdID int
		thresholdAt time.Time
	)
	found := rows.Next()
	if found {
		if err := rows.Scan(&thresholdID, &thresholdAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	rows.Close()
	if !found {
		return nil // fewer than keep snapshots exist
	}

	query, args = b.Delete(snapshotsTableName).
		Where(entsql.Or(
			entsql.LT(colTimestamp, thresholdAt),
			entsql.And(entsql.EQ(colTimestamp, thresholdAt), entsql.LTE(colID, thresholdID)),
		)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
