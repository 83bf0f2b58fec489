// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "answer_id", Type: field.TypeString, Unique: true},
		{Name: "role_index", Type: field.TypeInt},
		{Name: "role", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "deliberation_id", Type: field.TypeString},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_deliberations_answers",
				Columns:    []*schema.Column{AnswersColumns[10]},
				RefColumns: []*schema.Column{DeliberationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_deliberation_id_role_index",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[10], AnswersColumns[1]},
			},
		},
	}
	// ChatsColumns holds the columns for the "chats" table.
	ChatsColumns = []*schema.Column{
		{Name: "chat_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deliberation_id", Type: field.TypeString, Unique: true},
	}
	// ChatsTable holds the schema information for the "chats" table.
	ChatsTable = &schema.Table{
		Name:       "chats",
		Columns:    ChatsColumns,
		PrimaryKey: []*schema.Column{ChatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chats_deliberations_chat",
				Columns:    []*schema.Column{ChatsColumns[5]},
				RefColumns: []*schema.Column{DeliberationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chat_deliberation_id",
				Unique:  true,
				Columns: []*schema.Column{ChatsColumns[5]},
			},
			{
				Name:    "chat_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[1]},
			},
			{
				Name:    "chat_pod_id_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[3], ChatsColumns[4]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chats_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[6]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_chat_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[6]},
			},
			{
				Name:    "chatmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5]},
			},
		},
	}
	// DeliberationsColumns holds the columns for the "deliberations" table.
	DeliberationsColumns = []*schema.Column{
		{Name: "deliberation_id", Type: field.TypeString, Unique: true},
		{Name: "task", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "cancelling", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "roles", Type: field.TypeJSON},
		{Name: "options", Type: field.TypeJSON},
		{Name: "council_id", Type: field.TypeString, Nullable: true},
		{Name: "chairman_model", Type: field.TypeString, Nullable: true},
		{Name: "synthesis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// DeliberationsTable holds the schema information for the "deliberations" table.
	DeliberationsTable = &schema.Table{
		Name:       "deliberations",
		Columns:    DeliberationsColumns,
		PrimaryKey: []*schema.Column{DeliberationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deliberation_status",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[2]},
			},
			{
				Name:    "deliberation_council_id",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[5]},
			},
			{
				Name:    "deliberation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[2], DeliberationsColumns[10]},
			},
			{
				Name:    "deliberation_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[2], DeliberationsColumns[11]},
			},
			{
				Name:    "deliberation_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[2], DeliberationsColumns[15]},
			},
			{
				Name:    "deliberation_pod_id_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[14], DeliberationsColumns[15]},
			},
			{
				Name:    "deliberation_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{DeliberationsColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deliberation_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_deliberations_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{DeliberationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_event_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
			{
				Name:    "event_deliberation_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// ScoreSetsColumns holds the columns for the "score_sets" table.
	ScoreSetsColumns = []*schema.Column{
		{Name: "score_set_id", Type: field.TypeString, Unique: true},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"borda", "bradley_terry", "elo"}},
		{Name: "scores", Type: field.TypeJSON},
		{Name: "confidence_intervals", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deliberation_id", Type: field.TypeString},
	}
	// ScoreSetsTable holds the schema information for the "score_sets" table.
	ScoreSetsTable = &schema.Table{
		Name:       "score_sets",
		Columns:    ScoreSetsColumns,
		PrimaryKey: []*schema.Column{ScoreSetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "score_sets_deliberations_score_sets",
				Columns:    []*schema.Column{ScoreSetsColumns[6]},
				RefColumns: []*schema.Column{DeliberationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scoreset_deliberation_id_method",
				Unique:  true,
				Columns: []*schema.Column{ScoreSetsColumns[6], ScoreSetsColumns[1]},
			},
		},
	}
	// VerdictsColumns holds the columns for the "verdicts" table.
	VerdictsColumns = []*schema.Column{
		{Name: "verdict_id", Type: field.TypeString, Unique: true},
		{Name: "judge", Type: field.TypeString},
		{Name: "judge_index", Type: field.TypeInt},
		{Name: "i", Type: field.TypeInt},
		{Name: "j", Type: field.TypeInt},
		{Name: "margin", Type: field.TypeInt},
		{Name: "raw", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "parse_ok", Type: field.TypeBool, Default: true},
		{Name: "deliberation_id", Type: field.TypeString},
	}
	// VerdictsTable holds the schema information for the "verdicts" table.
	VerdictsTable = &schema.Table{
		Name:       "verdicts",
		Columns:    VerdictsColumns,
		PrimaryKey: []*schema.Column{VerdictsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verdicts_deliberations_verdicts",
				Columns:    []*schema.Column{VerdictsColumns[8]},
				RefColumns: []*schema.Column{DeliberationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verdict_deliberation_id_judge_index_i_j",
				Unique:  false,
				Columns: []*schema.Column{VerdictsColumns[8], VerdictsColumns[2], VerdictsColumns[3], VerdictsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		ChatsTable,
		ChatMessagesTable,
		DeliberationsTable,
		EventsTable,
		ScoreSetsTable,
		VerdictsTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = DeliberationsTable
	ChatsTable.ForeignKeys[0].RefTable = DeliberationsTable
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatsTable
	EventsTable.ForeignKeys[0].RefTable = DeliberationsTable
	ScoreSetsTable.ForeignKeys[0].RefTable = DeliberationsTable
	VerdictsTable.ForeignKeys[0].RefTable = DeliberationsTable
}
