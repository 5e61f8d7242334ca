// Code generated by ent, DO NOT EDIT.

package rawmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldID, id))
}

// SourceChannelID applies equality check predicate on the "source_channel_id" field. It's identical to SourceChannelIDEQ.
func SourceChannelID(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSourceChannelID, v))
}

// SourceChannelName applies equality check predicate on the "source_channel_name" field. It's identical to SourceChannelNameEQ.
func SourceChannelName(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSourceChannelName, v))
}

// UpstreamMessageID applies equality check predicate on the "upstream_message_id" field. It's identical to UpstreamMessageIDEQ.
func UpstreamMessageID(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldUpstreamMessageID, v))
}

// MessageTimestampUtc applies equality check predicate on the "message_timestamp_utc" field. It's identical to MessageTimestampUtcEQ.
func MessageTimestampUtc(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldMessageTimestampUtc, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldRawText, v))
}

// NormalizedText applies equality check predicate on the "normalized_text" field. It's identical to NormalizedTextEQ.
func NormalizedText(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldNormalizedText, v))
}

// ForwardedFrom applies equality check predicate on the "forwarded_from" field. It's identical to ForwardedFromEQ.
func ForwardedFrom(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldForwardedFrom, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceChannelIDEQ applies the EQ predicate on the "source_channel_id" field.
func SourceChannelIDEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSourceChannelID, v))
}

// SourceChannelIDNEQ applies the NEQ predicate on the "source_channel_id" field.
func SourceChannelIDNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldSourceChannelID, v))
}

// SourceChannelIDIn applies the In predicate on the "source_channel_id" field.
func SourceChannelIDIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldSourceChannelID, vs...))
}

// SourceChannelIDNotIn applies the NotIn predicate on the "source_channel_id" field.
func SourceChannelIDNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldSourceChannelID, vs...))
}

// SourceChannelIDGT applies the GT predicate on the "source_channel_id" field.
func SourceChannelIDGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldSourceChannelID, v))
}

// SourceChannelIDGTE applies the GTE predicate on the "source_channel_id" field.
func SourceChannelIDGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldSourceChannelID, v))
}

// SourceChannelIDLT applies the LT predicate on the "source_channel_id" field.
func SourceChannelIDLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldSourceChannelID, v))
}

// SourceChannelIDLTE applies the LTE predicate on the "source_channel_id" field.
func SourceChannelIDLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldSourceChannelID, v))
}

// SourceChannelIDContains applies the Contains predicate on the "source_channel_id" field.
func SourceChannelIDContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldSourceChannelID, v))
}

// SourceChannelIDHasPrefix applies the HasPrefix predicate on the "source_channel_id" field.
func SourceChannelIDHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldSourceChannelID, v))
}

// SourceChannelIDHasSuffix applies the HasSuffix predicate on the "source_channel_id" field.
func SourceChannelIDHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldSourceChannelID, v))
}

// SourceChannelIDEqualFold applies the EqualFold predicate on the "source_channel_id" field.
func SourceChannelIDEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldSourceChannelID, v))
}

// SourceChannelIDContainsFold applies the ContainsFold predicate on the "source_channel_id" field.
func SourceChannelIDContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldSourceChannelID, v))
}

// SourceChannelNameEQ applies the EQ predicate on the "source_channel_name" field.
func SourceChannelNameEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSourceChannelName, v))
}

// SourceChannelNameNEQ applies the NEQ predicate on the "source_channel_name" field.
func SourceChannelNameNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldSourceChannelName, v))
}

// SourceChannelNameIn applies the In predicate on the "source_channel_name" field.
func SourceChannelNameIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldSourceChannelName, vs...))
}

// SourceChannelNameNotIn applies the NotIn predicate on the "source_channel_name" field.
func SourceChannelNameNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldSourceChannelName, vs...))
}

// SourceChannelNameGT applies the GT predicate on the "source_channel_name" field.
func SourceChannelNameGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldSourceChannelName, v))
}

// SourceChannelNameGTE applies the GTE predicate on the "source_channel_name" field.
func SourceChannelNameGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldSourceChannelName, v))
}

// SourceChannelNameLT applies the LT predicate on the "source_channel_name" field.
func SourceChannelNameLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldSourceChannelName, v))
}

// SourceChannelNameLTE applies the LTE predicate on the "source_channel_name" field.
func SourceChannelNameLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldSourceChannelName, v))
}

// SourceChannelNameContains applies the Contains predicate on the "source_channel_name" field.
func SourceChannelNameContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldSourceChannelName, v))
}

// SourceChannelNameHasPrefix applies the HasPrefix predicate on the "source_channel_name" field.
func SourceChannelNameHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldSourceChannelName, v))
}

// SourceChannelNameHasSuffix applies the HasSuffix predicate on the "source_channel_name" field.
func SourceChannelNameHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldSourceChannelName, v))
}

// SourceChannelNameIsNil applies the IsNil predicate on the "source_channel_name" field.
func SourceChannelNameIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldSourceChannelName))
}

// SourceChannelNameNotNil applies the NotNil predicate on the "source_channel_name" field.
func SourceChannelNameNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldSourceChannelName))
}

// SourceChannelNameEqualFold applies the EqualFold predicate on the "source_channel_name" field.
func SourceChannelNameEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldSourceChannelName, v))
}

// SourceChannelNameContainsFold applies the ContainsFold predicate on the "source_channel_name" field.
func SourceChannelNameContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldSourceChannelName, v))
}

// UpstreamMessageIDEQ applies the EQ predicate on the "upstream_message_id" field.
func UpstreamMessageIDEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDNEQ applies the NEQ predicate on the "upstream_message_id" field.
func UpstreamMessageIDNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDIn applies the In predicate on the "upstream_message_id" field.
func UpstreamMessageIDIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldUpstreamMessageID, vs...))
}

// UpstreamMessageIDNotIn applies the NotIn predicate on the "upstream_message_id" field.
func UpstreamMessageIDNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldUpstreamMessageID, vs...))
}

// UpstreamMessageIDGT applies the GT predicate on the "upstream_message_id" field.
func UpstreamMessageIDGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDGTE applies the GTE predicate on the "upstream_message_id" field.
func UpstreamMessageIDGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDLT applies the LT predicate on the "upstream_message_id" field.
func UpstreamMessageIDLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDLTE applies the LTE predicate on the "upstream_message_id" field.
func UpstreamMessageIDLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDContains applies the Contains predicate on the "upstream_message_id" field.
func UpstreamMessageIDContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDHasPrefix applies the HasPrefix predicate on the "upstream_message_id" field.
func UpstreamMessageIDHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDHasSuffix applies the HasSuffix predicate on the "upstream_message_id" field.
func UpstreamMessageIDHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDEqualFold applies the EqualFold predicate on the "upstream_message_id" field.
func UpstreamMessageIDEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDContainsFold applies the ContainsFold predicate on the "upstream_message_id" field.
func UpstreamMessageIDContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldUpstreamMessageID, v))
}

// MessageTimestampUtcEQ applies the EQ predicate on the "message_timestamp_utc" field.
func MessageTimestampUtcEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldMessageTimestampUtc, v))
}

// MessageTimestampUtcNEQ applies the NEQ predicate on the "message_timestamp_utc" field.
func MessageTimestampUtcNEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldMessageTimestampUtc, v))
}

// MessageTimestampUtcIn applies the In predicate on the "message_timestamp_utc" field.
func MessageTimestampUtcIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldMessageTimestampUtc, vs...))
}

// MessageTimestampUtcNotIn applies the NotIn predicate on the "message_timestamp_utc" field.
func MessageTimestampUtcNotIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldMessageTimestampUtc, vs...))
}

// MessageTimestampUtcGT applies the GT predicate on the "message_timestamp_utc" field.
func MessageTimestampUtcGT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldMessageTimestampUtc, v))
}

// MessageTimestampUtcGTE applies the GTE predicate on the "message_timestamp_utc" field.
func MessageTimestampUtcGTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldMessageTimestampUtc, v))
}

// MessageTimestampUtcLT applies the LT predicate on the "message_timestamp_utc" field.
func MessageTimestampUtcLT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldMessageTimestampUtc, v))
}

// MessageTimestampUtcLTE applies the LTE predicate on the "message_timestamp_utc" field.
func MessageTimestampUtcLTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldMessageTimestampUtc, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldRawText, v))
}

// NormalizedTextEQ applies the EQ predicate on the "normalized_text" field.
func NormalizedTextEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldNormalizedText, v))
}

// NormalizedTextNEQ applies the NEQ predicate on the "normalized_text" field.
func NormalizedTextNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldNormalizedText, v))
}

// NormalizedTextIn applies the In predicate on the "normalized_text" field.
func NormalizedTextIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldNormalizedText, vs...))
}

// NormalizedTextNotIn applies the NotIn predicate on the "normalized_text" field.
func NormalizedTextNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldNormalizedText, vs...))
}

// NormalizedTextGT applies the GT predicate on the "normalized_text" field.
func NormalizedTextGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldNormalizedText, v))
}

// NormalizedTextGTE applies the GTE predicate on the "normalized_text" field.
func NormalizedTextGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldNormalizedText, v))
}

// NormalizedTextLT applies the LT predicate on the "normalized_text" field.
func NormalizedTextLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldNormalizedText, v))
}

// NormalizedTextLTE applies the LTE predicate on the "normalized_text" field.
func NormalizedTextLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldNormalizedText, v))
}

// NormalizedTextContains applies the Contains predicate on the "normalized_text" field.
func NormalizedTextContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldNormalizedText, v))
}

// NormalizedTextHasPrefix applies the HasPrefix predicate on the "normalized_text" field.
func NormalizedTextHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldNormalizedText, v))
}

// NormalizedTextHasSuffix applies the HasSuffix predicate on the "normalized_text" field.
func NormalizedTextHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldNormalizedText, v))
}

// NormalizedTextEqualFold applies the EqualFold predicate on the "normalized_text" field.
func NormalizedTextEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldNormalizedText, v))
}

// NormalizedTextContainsFold applies the ContainsFold predicate on the "normalized_text" field.
func NormalizedTextContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldNormalizedText, v))
}

// RawEntitiesIsNil applies the IsNil predicate on the "raw_entities" field.
func RawEntitiesIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldRawEntities))
}

// RawEntitiesNotNil applies the NotNil predicate on the "raw_entities" field.
func RawEntitiesNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldRawEntities))
}

// ForwardedFromEQ applies the EQ predicate on the "forwarded_from" field.
func ForwardedFromEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldForwardedFrom, v))
}

// ForwardedFromNEQ applies the NEQ predicate on the "forwarded_from" field.
func ForwardedFromNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldForwardedFrom, v))
}

// ForwardedFromIn applies the In predicate on the "forwarded_from" field.
func ForwardedFromIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldForwardedFrom, vs...))
}

// ForwardedFromNotIn applies the NotIn predicate on the "forwarded_from" field.
func ForwardedFromNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldForwardedFrom, vs...))
}

// ForwardedFromGT applies the GT predicate on the "forwarded_from" field.
func ForwardedFromGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldForwardedFrom, v))
}

// ForwardedFromGTE applies the GTE predicate on the "forwarded_from" field.
func ForwardedFromGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldForwardedFrom, v))
}

// ForwardedFromLT applies the LT predicate on the "forwarded_from" field.
func ForwardedFromLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldForwardedFrom, v))
}

// ForwardedFromLTE applies the LTE predicate on the "forwarded_from" field.
func ForwardedFromLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldForwardedFrom, v))
}

// ForwardedFromContains applies the Contains predicate on the "forwarded_from" field.
func ForwardedFromContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldForwardedFrom, v))
}

// ForwardedFromHasPrefix applies the HasPrefix predicate on the "forwarded_from" field.
func ForwardedFromHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldForwardedFrom, v))
}

// ForwardedFromHasSuffix applies the HasSuffix predicate on the "forwarded_from" field.
func ForwardedFromHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldForwardedFrom, v))
}

// ForwardedFromIsNil applies the IsNil predicate on the "forwarded_from" field.
func ForwardedFromIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldForwardedFrom))
}

// ForwardedFromNotNil applies the NotNil predicate on the "forwarded_from" field.
func ForwardedFromNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldForwardedFrom))
}

// ForwardedFromEqualFold applies the EqualFold predicate on the "forwarded_from" field.
func ForwardedFromEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldForwardedFrom, v))
}

// ForwardedFromContainsFold applies the ContainsFold predicate on the "forwarded_from" field.
func ForwardedFromContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldForwardedFrom, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProcessingState applies the HasEdge predicate on the "processing_state" edge.
func HasProcessingState() predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ProcessingStateTable, ProcessingStateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessingStateWith applies the HasEdge predicate on the "processing_state" edge with a given conditions (other predicates).
func HasProcessingStateWith(preds ...predicate.ProcessingState) predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := newProcessingStateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.Extraction) predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRoutingDecision applies the HasEdge predicate on the "routing_decision" edge.
func HasRoutingDecision() predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, RoutingDecisionTable, RoutingDecisionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoutingDecisionWith applies the HasEdge predicate on the "routing_decision" edge with a given conditions (other predicates).
func HasRoutingDecisionWith(preds ...predicate.RoutingDecision) predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := newRoutingDecisionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEventLinks applies the HasEdge predicate on the "event_links" edge.
func HasEventLinks() predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventLinksTable, EventLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventLinksWith applies the HasEdge predicate on the "event_links" edge with a given conditions (other predicates).
func HasEventLinksWith(preds ...predicate.EventMessage) predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := newEventLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntityMentions applies the HasEdge predicate on the "entity_mentions" edge.
func HasEntityMentions() predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntityMentionsTable, EntityMentionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityMentionsWith applies the HasEdge predicate on the "entity_mentions" edge with a given conditions (other predicates).
func HasEntityMentionsWith(preds ...predicate.EntityMention) predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := newEntityMentionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.NotPredicates(p))
}
