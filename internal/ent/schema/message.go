package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Message holds the schema definition for the Message entity.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("message_id").Comment("Telegram消息ID"),
		field.Int64("chat_id").Comment("群聊ID"),
		field.Int64("sender_id").Comment("发送者用户ID"),
		field.String("sender_name").Comment("发送者名称"),
		field.Text("text").Comment("消息文本内容"),
		field.String("msg_type").Default("text").Comment("消息类型，如 text"),
		field.Time("sent_at").Comment("消息发送时间"),
		field.String("reference_id").Optional().Nillable().Comment("被回复的消息ID"),
		field.String("topic_id").Optional().Nillable().Comment("话题ID，来自论坛话题线程"),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// 唯一索引：同一群内消息ID不重复，重复写入触发约束冲突
		index.Fields("chat_id", "message_id").Unique(),
		// 索引：按群聊+时间窗口查询
		index.Fields("chat_id", "sent_at"),
	}
}
