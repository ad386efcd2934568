// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnonTokensColumns holds the columns for the "anon_tokens" table.
	AnonTokensColumns = []*schema.Column{
		{Name: "token_id", Type: field.TypeString, Unique: true},
		{Name: "anon_id", Type: field.TypeString, Unique: true},
		{Name: "ip_hash", Type: field.TypeString, Nullable: true},
		{Name: "ua_hash", Type: field.TypeString, Nullable: true},
		{Name: "used_trial", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnonTokensTable holds the schema information for the "anon_tokens" table.
	AnonTokensTable = &schema.Table{
		Name:       "anon_tokens",
		Columns:    AnonTokensColumns,
		PrimaryKey: []*schema.Column{AnonTokensColumns[0]},
	}
	// BalancesColumns holds the columns for the "balances" table.
	BalancesColumns = []*schema.Column{
		{Name: "balance_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "minutes_balance", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BalancesTable holds the schema information for the "balances" table.
	BalancesTable = &schema.Table{
		Name:       "balances",
		Columns:    BalancesColumns,
		PrimaryKey: []*schema.Column{BalancesColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "anon_id", Type: field.TypeString, Nullable: true},
		{Name: "owner_key", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"upload", "url", "youtube"}},
		{Name: "task_type", Type: field.TypeString, Default: "transcription"},
		{Name: "is_trial", Type: field.TypeBool, Default: false},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"paid", "free"}, Default: "free"},
		{Name: "source_url", Type: field.TypeString, Size: 2147483647},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "succeeded", "failed"}, Default: "pending"},
		{Name: "engine", Type: field.TypeString, Nullable: true},
		{Name: "duration_sec", Type: field.TypeFloat64, Default: 0},
		{Name: "cost_minutes", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10]},
			},
			{
				Name:    "task_owner_key",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10], TasksColumns[16]},
			},
			{
				Name:    "task_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10], TasksColumns[17]},
			},
			{
				Name:    "task_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10], TasksColumns[7], TasksColumns[16]},
			},
		},
	}
	// TranscriptsColumns holds the columns for the "transcripts" table.
	TranscriptsColumns = []*schema.Column{
		{Name: "transcript_id", Type: field.TypeString, Unique: true},
		{Name: "segments", Type: field.TypeJSON},
		{Name: "raw_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "srt_url", Type: field.TypeString, Nullable: true},
		{Name: "vtt_url", Type: field.TypeString, Nullable: true},
		{Name: "raw_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString, Unique: true},
	}
	// TranscriptsTable holds the schema information for the "transcripts" table.
	TranscriptsTable = &schema.Table{
		Name:       "transcripts",
		Columns:    TranscriptsColumns,
		PrimaryKey: []*schema.Column{TranscriptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcripts_tasks_transcript",
				Columns:    []*schema.Column{TranscriptsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TrialUsagesColumns holds the columns for the "trial_usages" table.
	TrialUsagesColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "anon_id", Type: field.TypeString, Nullable: true},
		{Name: "used_at", Type: field.TypeTime},
	}
	// TrialUsagesTable holds the schema information for the "trial_usages" table.
	TrialUsagesTable = &schema.Table{
		Name:       "trial_usages",
		Columns:    TrialUsagesColumns,
		PrimaryKey: []*schema.Column{TrialUsagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trialusage_user_id",
				Unique:  false,
				Columns: []*schema.Column{TrialUsagesColumns[1]},
			},
			{
				Name:    "trialusage_anon_id",
				Unique:  false,
				Columns: []*schema.Column{TrialUsagesColumns[2]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "row_id", Type: field.TypeString, Unique: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "received_at", Type: field.TypeTime},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnonTokensTable,
		BalancesTable,
		TasksTable,
		TranscriptsTable,
		TrialUsagesTable,
		WebhookEventsTable,
	}
)

func init() {
	TranscriptsTable.ForeignKeys[0].RefTable = TasksTable
}
