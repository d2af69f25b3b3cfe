package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	statsTableName     = "character_stats"
	attemptsTableName  = "attempt_events"
	llmTableName       = "llm_request_events"
	snapshotsTableName = "progress_snapshots"

	colID        = "id"
	colSymbol    = "symbol"
	colAttempts  = "attempts"
	colSuccesses = "successes"
	colTimestamp = "timestamp"
	colSuccess   = "success"
)

var (
	statsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSymbol, Type: field.TypeString, Unique: true, Size: 8},
		{Name: colAttempts, Type: field.TypeInt, Default: 0},
		{Name: colSuccesses, Type: field.TypeInt, Default: 0},
	}
	statsTable = &schema.Table{
		Name:       statsTableName,
		Columns:    statsColumns,
		PrimaryKey: []*schema.Column{statsColumns[0]},
	}

	attemptsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colSymbol, Type: field.TypeString, Size: 8},
		{Name: colSuccess, Type: field.TypeBool},
	}
	attemptsTable = &schema.Table{
		Name:       attemptsTableName,
		Columns:    attemptsColumns,
		PrimaryKey: []*schema.Column{attemptsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "attemptevent_timestamp", Columns: []*schema.Column{attemptsColumns[1]}},
			{Name: "attemptevent_symbol", Columns: []*schema.Column{attemptsColumns[2]}},
		},
	}

	llmColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: colSuccess, Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	llmTable = &schema.Table{
		Name:       llmTableName,
		Columns:    llmColumns,
		PrimaryKey: []*schema.Column{llmColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{llmColumns[1]}},
		},
	}

	snapshotColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "data", Type: field.TypeJSON},
	}
	snapshotsTable = &schema.Table{
		Name:       snapshotsTableName,
		Columns:    snapshotColumns,
		PrimaryKey: []*schema.Column{snapshotColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshot_timestamp", Columns: []*schema.Column{snapshotColumns[1]}},
		},
	}

	// tables lists everything created by migration, in dependency order.
	tables = []*schema.Table{
		statsTable,
		attemptsTable,
		llmTable,
		snapshotsTable,
	}
)
