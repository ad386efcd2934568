// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/openscribe/scribe/ent/anontoken"
	"github.com/openscribe/scribe/ent/balance"
	"github.com/openscribe/scribe/ent/schema"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
	"github.com/openscribe/scribe/ent/trialusage"
	"github.com/openscribe/scribe/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	anontokenFields := schema.AnonToken{}.Fields()
	_ = anontokenFields
	// anontokenDescUsedTrial is the schema descriptor for used_trial field.
	anontokenDescUsedTrial := anontokenFields[4].Descriptor()
	// anontoken.DefaultUsedTrial holds the default value on creation for the used_trial field.
	anontoken.DefaultUsedTrial = anontokenDescUsedTrial.Default.(bool)
	// anontokenDescCreatedAt is the schema descriptor for created_at field.
	anontokenDescCreatedAt := anontokenFields[5].Descriptor()
	// anontoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	anontoken.DefaultCreatedAt = anontokenDescCreatedAt.Default.(func() time.Time)
	balanceFields := schema.Balance{}.Fields()
	_ = balanceFields
	// balanceDescMinutesBalance is the schema descriptor for minutes_balance field.
	balanceDescMinutesBalance := balanceFields[2].Descriptor()
	// balance.DefaultMinutesBalance holds the default value on creation for the minutes_balance field.
	balance.DefaultMinutesBalance = balanceDescMinutesBalance.Default.(int)
	// balance.MinutesBalanceValidator is a validator for the "minutes_balance" field. It is called by the builders before save.
	balance.MinutesBalanceValidator = balanceDescMinutesBalance.Validators[0].(func(int) error)
	// balanceDescUpdatedAt is the schema descriptor for updated_at field.
	balanceDescUpdatedAt := balanceFields[3].Descriptor()
	// balance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	balance.DefaultUpdatedAt = balanceDescUpdatedAt.Default.(func() time.Time)
	// balance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	balance.UpdateDefaultUpdatedAt = balanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTaskType is the schema descriptor for task_type field.
	taskDescTaskType := taskFields[5].Descriptor()
	// task.DefaultTaskType holds the default value on creation for the task_type field.
	task.DefaultTaskType = taskDescTaskType.Default.(string)
	// taskDescIsTrial is the schema descriptor for is_trial field.
	taskDescIsTrial := taskFields[6].Descriptor()
	// task.DefaultIsTrial holds the default value on creation for the is_trial field.
	task.DefaultIsTrial = taskDescIsTrial.Default.(bool)
	// taskDescDurationSec is the schema descriptor for duration_sec field.
	taskDescDurationSec := taskFields[12].Descriptor()
	// task.DefaultDurationSec holds the default value on creation for the duration_sec field.
	task.DefaultDurationSec = taskDescDurationSec.Default.(float64)
	// taskDescCostMinutes is the schema descriptor for cost_minutes field.
	taskDescCostMinutes := taskFields[13].Descriptor()
	// task.DefaultCostMinutes holds the default value on creation for the cost_minutes field.
	task.DefaultCostMinutes = taskDescCostMinutes.Default.(int)
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[14].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[16].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[17].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescCreatedAt is the schema descriptor for created_at field.
	transcriptDescCreatedAt := transcriptFields[7].Descriptor()
	// transcript.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcript.DefaultCreatedAt = transcriptDescCreatedAt.Default.(func() time.Time)
	trialusageFields := schema.TrialUsage{}.Fields()
	_ = trialusageFields
	// trialusageDescUsedAt is the schema descriptor for used_at field.
	trialusageDescUsedAt := trialusageFields[3].Descriptor()
	// trialusage.DefaultUsedAt holds the default value on creation for the used_at field.
	trialusage.DefaultUsedAt = trialusageDescUsedAt.Default.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescReceivedAt is the schema descriptor for received_at field.
	webhookeventDescReceivedAt := webhookeventFields[3].Descriptor()
	// webhookevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhookevent.DefaultReceivedAt = webhookeventDescReceivedAt.Default.(func() time.Time)
}
