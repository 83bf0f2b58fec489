// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/plenumhq/plenum/ent/answer"
	"github.com/plenumhq/plenum/ent/chat"
	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/event"
	"github.com/plenumhq/plenum/ent/schema"
	"github.com/plenumhq/plenum/ent/scoreset"
	"github.com/plenumhq/plenum/ent/verdict"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescSuccess is the schema descriptor for success field.
	answerDescSuccess := answerFields[6].Descriptor()
	// answer.DefaultSuccess holds the default value on creation for the success field.
	answer.DefaultSuccess = answerDescSuccess.Default.(bool)
	chatFields := schema.Chat{}.Fields()
	_ = chatFields
	// chatDescCreatedAt is the schema descriptor for created_at field.
	chatDescCreatedAt := chatFields[2].Descriptor()
	// chat.DefaultCreatedAt holds the default value on creation for the created_at field.
	chat.DefaultCreatedAt = chatDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[6].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	deliberationFields := schema.Deliberation{}.Fields()
	_ = deliberationFields
	// deliberationDescCreatedAt is the schema descriptor for created_at field.
	deliberationDescCreatedAt := deliberationFields[10].Descriptor()
	// deliberation.DefaultCreatedAt holds the default value on creation for the created_at field.
	deliberation.DefaultCreatedAt = deliberationDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	scoresetFields := schema.ScoreSet{}.Fields()
	_ = scoresetFields
	// scoresetDescCreatedAt is the schema descriptor for created_at field.
	scoresetDescCreatedAt := scoresetFields[6].Descriptor()
	// scoreset.DefaultCreatedAt holds the default value on creation for the created_at field.
	scoreset.DefaultCreatedAt = scoresetDescCreatedAt.Default.(func() time.Time)
	verdictFields := schema.Verdict{}.Fields()
	_ = verdictFields
	// verdictDescParseOk is the schema descriptor for parse_ok field.
	verdictDescParseOk := verdictFields[8].Descriptor()
	// verdict.DefaultParseOk holds the default value on creation for the parse_ok field.
	verdict.DefaultParseOk = verdictDescParseOk.Default.(bool)
}
