// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/tech-daily-bot/internal/ent/message"
	"github.com/fachebot/tech-daily-bot/internal/ent/schema"
	"github.com/fachebot/tech-daily-bot/internal/ent/setting"
	"github.com/fachebot/tech-daily-bot/internal/ent/template"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreateTime is the schema descriptor for create_time field.
	messageDescCreateTime := messageMixinFields0[0].Descriptor()
	// message.DefaultCreateTime holds the default value on creation for the create_time field.
	message.DefaultCreateTime = messageDescCreateTime.Default.(func() time.Time)
	// messageDescUpdateTime is the schema descriptor for update_time field.
	messageDescUpdateTime := messageMixinFields0[1].Descriptor()
	// message.DefaultUpdateTime holds the default value on creation for the update_time field.
	message.DefaultUpdateTime = messageDescUpdateTime.Default.(func() time.Time)
	// message.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	message.UpdateDefaultUpdateTime = messageDescUpdateTime.UpdateDefault.(func() time.Time)
	// messageDescMsgType is the schema descriptor for msg_type field.
	messageDescMsgType := messageFields[5].Descriptor()
	// message.DefaultMsgType holds the default value on creation for the msg_type field.
	message.DefaultMsgType = messageDescMsgType.Default.(string)
	settingMixin := schema.Setting{}.Mixin()
	settingMixinFields0 := settingMixin[0].Fields()
	_ = settingMixinFields0
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescCreateTime is the schema descriptor for create_time field.
	settingDescCreateTime := settingMixinFields0[0].Descriptor()
	// setting.DefaultCreateTime holds the default value on creation for the create_time field.
	setting.DefaultCreateTime = settingDescCreateTime.Default.(func() time.Time)
	// settingDescUpdateTime is the schema descriptor for update_time field.
	settingDescUpdateTime := settingMixinFields0[1].Descriptor()
	// setting.DefaultUpdateTime holds the default value on creation for the update_time field.
	setting.DefaultUpdateTime = settingDescUpdateTime.Default.(func() time.Time)
	// setting.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	setting.UpdateDefaultUpdateTime = settingDescUpdateTime.UpdateDefault.(func() time.Time)
	templateMixin := schema.Template{}.Mixin()
	templateMixinFields0 := templateMixin[0].Fields()
	_ = templateMixinFields0
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescCreateTime is the schema descriptor for create_time field.
	templateDescCreateTime := templateMixinFields0[0].Descriptor()
	// template.DefaultCreateTime holds the default value on creation for the create_time field.
	template.DefaultCreateTime = templateDescCreateTime.Default.(func() time.Time)
	// templateDescUpdateTime is the schema descriptor for update_time field.
	templateDescUpdateTime := templateMixinFields0[1].Descriptor()
	// template.DefaultUpdateTime holds the default value on creation for the update_time field.
	template.DefaultUpdateTime = templateDescUpdateTime.Default.(func() time.Time)
	// template.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	template.UpdateDefaultUpdateTime = templateDescUpdateTime.UpdateDefault.(func() time.Time)
}
