// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docdot/docdot/ent/answerevent"
	"github.com/docdot/docdot/ent/profile"
	"github.com/docdot/docdot/ent/question"
	"github.com/docdot/docdot/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[0].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[1].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[3].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescIsReview is the schema descriptor for is_review field.
	answereventDescIsReview := answereventFields[5].Descriptor()
	// answerevent.DefaultIsReview holds the default value on creation for the is_review field.
	answerevent.DefaultIsReview = answereventDescIsReview.Default.(bool)
	// answereventDescResponseMs is the schema descriptor for response_ms field.
	answereventDescResponseMs := answereventFields[6].Descriptor()
	// answerevent.DefaultResponseMs holds the default value on creation for the response_ms field.
	answerevent.DefaultResponseMs = answereventDescResponseMs.Default.(int)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[3].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQid is the schema descriptor for qid field.
	questionDescQid := questionFields[0].Descriptor()
	// question.QidValidator is a validator for the "qid" field. It is called by the builders before save.
	question.QidValidator = questionDescQid.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[3].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescAiExplanation is the schema descriptor for ai_explanation field.
	questionDescAiExplanation := questionFields[4].Descriptor()
	// question.DefaultAiExplanation holds the default value on creation for the ai_explanation field.
	question.DefaultAiExplanation = questionDescAiExplanation.Default.(string)
	// questionDescCategory is the schema descriptor for category field.
	questionDescCategory := questionFields[6].Descriptor()
	// question.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	question.CategoryValidator = questionDescCategory.Validators[0].(func(string) error)
	// questionDescSubcategory is the schema descriptor for subcategory field.
	questionDescSubcategory := questionFields[7].Descriptor()
	// question.DefaultSubcategory holds the default value on creation for the subcategory field.
	question.DefaultSubcategory = questionDescSubcategory.Default.(string)
}
