// Code generated by ent, DO NOT EDIT.

package answer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/plenumhq/plenum/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldID, id))
}

// DeliberationID applies equality check predicate on the "deliberation_id" field. It's identical to DeliberationIDEQ.
func DeliberationID(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldDeliberationID, v))
}

// RoleIndex applies equality check predicate on the "role_index" field. It's identical to RoleIndexEQ.
func RoleIndex(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRoleIndex, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRole, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldModel, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldContent, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldErrorMessage, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTokensUsed, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldLatencyMs, v))
}

// DeliberationIDEQ applies the EQ predicate on the "deliberation_id" field.
func DeliberationIDEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldDeliberationID, v))
}

// DeliberationIDNEQ applies the NEQ predicate on the "deliberation_id" field.
func DeliberationIDNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldDeliberationID, v))
}

// DeliberationIDIn applies the In predicate on the "deliberation_id" field.
func DeliberationIDIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldDeliberationID, vs...))
}

// DeliberationIDNotIn applies the NotIn predicate on the "deliberation_id" field.
func DeliberationIDNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldDeliberationID, vs...))
}

// DeliberationIDGT applies the GT predicate on the "deliberation_id" field.
func DeliberationIDGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldDeliberationID, v))
}

// DeliberationIDGTE applies the GTE predicate on the "deliberation_id" field.
func DeliberationIDGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldDeliberationID, v))
}

// DeliberationIDLT applies the LT predicate on the "deliberation_id" field.
func DeliberationIDLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldDeliberationID, v))
}

// DeliberationIDLTE applies the LTE predicate on the "deliberation_id" field.
func DeliberationIDLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldDeliberationID, v))
}

// DeliberationIDContains applies the Contains predicate on the "deliberation_id" field.
func DeliberationIDContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldDeliberationID, v))
}

// DeliberationIDHasPrefix applies the HasPrefix predicate on the "deliberation_id" field.
func DeliberationIDHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldDeliberationID, v))
}

// DeliberationIDHasSuffix applies the HasSuffix predicate on the "deliberation_id" field.
func DeliberationIDHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldDeliberationID, v))
}

// DeliberationIDEqualFold applies the EqualFold predicate on the "deliberation_id" field.
func DeliberationIDEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldDeliberationID, v))
}

// DeliberationIDContainsFold applies the ContainsFold predicate on the "deliberation_id" field.
func DeliberationIDContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldDeliberationID, v))
}

// RoleIndexEQ applies the EQ predicate on the "role_index" field.
func RoleIndexEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRoleIndex, v))
}

// RoleIndexNEQ applies the NEQ predicate on the "role_index" field.
func RoleIndexNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldRoleIndex, v))
}

// RoleIndexIn applies the In predicate on the "role_index" field.
func RoleIndexIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldRoleIndex, vs...))
}

// RoleIndexNotIn applies the NotIn predicate on the "role_index" field.
func RoleIndexNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldRoleIndex, vs...))
}

// RoleIndexGT applies the GT predicate on the "role_index" field.
func RoleIndexGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldRoleIndex, v))
}

// RoleIndexGTE applies the GTE predicate on the "role_index" field.
func RoleIndexGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldRoleIndex, v))
}

// RoleIndexLT applies the LT predicate on the "role_index" field.
func RoleIndexLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldRoleIndex, v))
}

// RoleIndexLTE applies the LTE predicate on the "role_index" field.
func RoleIndexLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldRoleIndex, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldRole, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldModel, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldContent, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldTokensUsed, v))
}

// TokensUsedIsNil applies the IsNil predicate on the "tokens_used" field.
func TokensUsedIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldTokensUsed))
}

// TokensUsedNotNil applies the NotNil predicate on the "tokens_used" field.
func TokensUsedNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldTokensUsed))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldLatencyMs, v))
}

// LatencyMsIsNil applies the IsNil predicate on the "latency_ms" field.
func LatencyMsIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldLatencyMs))
}

// LatencyMsNotNil applies the NotNil predicate on the "latency_ms" field.
func LatencyMsNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldLatencyMs))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldLabel, v))
}

// HasDeliberation applies the HasEdge predicate on the "deliberation" edge.
func HasDeliberation() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DeliberationTable, DeliberationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeliberationWith applies the HasEdge predicate on the "deliberation" edge with a given conditions (other predicates).
func HasDeliberationWith(preds ...predicate.Deliberation) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newDeliberationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
