// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// Chat is the predicate function for chat builders.
type Chat func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Deliberation is the predicate function for deliberation builders.
type Deliberation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ScoreSet is the predicate function for scoreset builders.
type ScoreSet func(*sql.Selector)

// Verdict is the predicate function for verdict builders.
type Verdict func(*sql.Selector)
