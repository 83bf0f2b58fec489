// Code generated by ent, DO NOT EDIT.

package deliberation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/plenumhq/plenum/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldID, id))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldTask, v))
}

// CouncilID applies equality check predicate on the "council_id" field. It's identical to CouncilIDEQ.
func CouncilID(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldCouncilID, v))
}

// ChairmanModel applies equality check predicate on the "chairman_model" field. It's identical to ChairmanModelEQ.
func ChairmanModel(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldChairmanModel, v))
}

// Synthesis applies equality check predicate on the "synthesis" field. It's identical to SynthesisEQ.
func Synthesis(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldSynthesis, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldErrorMessage, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldAuthor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldDurationMs, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldDeletedAt, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldTask, v))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldTask, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldStatus, vs...))
}

// CouncilIDEQ applies the EQ predicate on the "council_id" field.
func CouncilIDEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldCouncilID, v))
}

// CouncilIDNEQ applies the NEQ predicate on the "council_id" field.
func CouncilIDNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldCouncilID, v))
}

// CouncilIDIn applies the In predicate on the "council_id" field.
func CouncilIDIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldCouncilID, vs...))
}

// CouncilIDNotIn applies the NotIn predicate on the "council_id" field.
func CouncilIDNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldCouncilID, vs...))
}

// CouncilIDGT applies the GT predicate on the "council_id" field.
func CouncilIDGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldCouncilID, v))
}

// CouncilIDGTE applies the GTE predicate on the "council_id" field.
func CouncilIDGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldCouncilID, v))
}

// CouncilIDLT applies the LT predicate on the "council_id" field.
func CouncilIDLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldCouncilID, v))
}

// CouncilIDLTE applies the LTE predicate on the "council_id" field.
func CouncilIDLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldCouncilID, v))
}

// CouncilIDContains applies the Contains predicate on the "council_id" field.
func CouncilIDContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldCouncilID, v))
}

// CouncilIDHasPrefix applies the HasPrefix predicate on the "council_id" field.
func CouncilIDHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldCouncilID, v))
}

// CouncilIDHasSuffix applies the HasSuffix predicate on the "council_id" field.
func CouncilIDHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldCouncilID, v))
}

// CouncilIDIsNil applies the IsNil predicate on the "council_id" field.
func CouncilIDIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldCouncilID))
}

// CouncilIDNotNil applies the NotNil predicate on the "council_id" field.
func CouncilIDNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldCouncilID))
}

// CouncilIDEqualFold applies the EqualFold predicate on the "council_id" field.
func CouncilIDEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldCouncilID, v))
}

// CouncilIDContainsFold applies the ContainsFold predicate on the "council_id" field.
func CouncilIDContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldCouncilID, v))
}

// ChairmanModelEQ applies the EQ predicate on the "chairman_model" field.
func ChairmanModelEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldChairmanModel, v))
}

// ChairmanModelNEQ applies the NEQ predicate on the "chairman_model" field.
func ChairmanModelNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldChairmanModel, v))
}

// ChairmanModelIn applies the In predicate on the "chairman_model" field.
func ChairmanModelIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldChairmanModel, vs...))
}

// ChairmanModelNotIn applies the NotIn predicate on the "chairman_model" field.
func ChairmanModelNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldChairmanModel, vs...))
}

// ChairmanModelGT applies the GT predicate on the "chairman_model" field.
func ChairmanModelGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldChairmanModel, v))
}

// ChairmanModelGTE applies the GTE predicate on the "chairman_model" field.
func ChairmanModelGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldChairmanModel, v))
}

// ChairmanModelLT applies the LT predicate on the "chairman_model" field.
func ChairmanModelLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldChairmanModel, v))
}

// ChairmanModelLTE applies the LTE predicate on the "chairman_model" field.
func ChairmanModelLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldChairmanModel, v))
}

// ChairmanModelContains applies the Contains predicate on the "chairman_model" field.
func ChairmanModelContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldChairmanModel, v))
}

// ChairmanModelHasPrefix applies the HasPrefix predicate on the "chairman_model" field.
func ChairmanModelHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldChairmanModel, v))
}

// ChairmanModelHasSuffix applies the HasSuffix predicate on the "chairman_model" field.
func ChairmanModelHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldChairmanModel, v))
}

// ChairmanModelIsNil applies the IsNil predicate on the "chairman_model" field.
func ChairmanModelIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldChairmanModel))
}

// ChairmanModelNotNil applies the NotNil predicate on the "chairman_model" field.
func ChairmanModelNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldChairmanModel))
}

// ChairmanModelEqualFold applies the EqualFold predicate on the "chairman_model" field.
func ChairmanModelEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldChairmanModel, v))
}

// ChairmanModelContainsFold applies the ContainsFold predicate on the "chairman_model" field.
func ChairmanModelContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldChairmanModel, v))
}

// SynthesisEQ applies the EQ predicate on the "synthesis" field.
func SynthesisEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldSynthesis, v))
}

// SynthesisNEQ applies the NEQ predicate on the "synthesis" field.
func SynthesisNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldSynthesis, v))
}

// SynthesisIn applies the In predicate on the "synthesis" field.
func SynthesisIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldSynthesis, vs...))
}

// SynthesisNotIn applies the NotIn predicate on the "synthesis" field.
func SynthesisNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldSynthesis, vs...))
}

// SynthesisGT applies the GT predicate on the "synthesis" field.
func SynthesisGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldSynthesis, v))
}

// SynthesisGTE applies the GTE predicate on the "synthesis" field.
func SynthesisGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldSynthesis, v))
}

// SynthesisLT applies the LT predicate on the "synthesis" field.
func SynthesisLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldSynthesis, v))
}

// SynthesisLTE applies the LTE predicate on the "synthesis" field.
func SynthesisLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldSynthesis, v))
}

// SynthesisContains applies the Contains predicate on the "synthesis" field.
func SynthesisContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldSynthesis, v))
}

// SynthesisHasPrefix applies the HasPrefix predicate on the "synthesis" field.
func SynthesisHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldSynthesis, v))
}

// SynthesisHasSuffix applies the HasSuffix predicate on the "synthesis" field.
func SynthesisHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldSynthesis, v))
}

// SynthesisIsNil applies the IsNil predicate on the "synthesis" field.
func SynthesisIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldSynthesis))
}

// SynthesisNotNil applies the NotNil predicate on the "synthesis" field.
func SynthesisNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldSynthesis))
}

// SynthesisEqualFold applies the EqualFold predicate on the "synthesis" field.
func SynthesisEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldSynthesis, v))
}

// SynthesisContainsFold applies the ContainsFold predicate on the "synthesis" field.
func SynthesisContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldSynthesis, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldAuthor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldDurationMs))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldLastInteractionAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldDeletedAt))
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVerdicts applies the HasEdge predicate on the "verdicts" edge.
func HasVerdicts() predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerdictsTable, VerdictsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerdictsWith applies the HasEdge predicate on the "verdicts" edge with a given conditions (other predicates).
func HasVerdictsWith(preds ...predicate.Verdict) predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := newVerdictsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScoreSets applies the HasEdge predicate on the "score_sets" edge.
func HasScoreSets() predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScoreSetsTable, ScoreSetsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScoreSetsWith applies the HasEdge predicate on the "score_sets" edge with a given conditions (other predicates).
func HasScoreSetsWith(preds ...predicate.ScoreSet) predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := newScoreSetsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChat applies the HasEdge predicate on the "chat" edge.
func HasChat() predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ChatTable, ChatColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatWith applies the HasEdge predicate on the "chat" edge with a given conditions (other predicates).
func HasChatWith(preds ...predicate.Chat) predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := newChatStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Deliberation) predicate.Deliberation {
	return predicate.Deliberation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Deliberation) predicate.Deliberation {
	return predicate.Deliberation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Deliberation) predicate.Deliberation {
	return predicate.Deliberation(sql.NotPredicates(p))
}
