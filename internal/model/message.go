package model

import (
	"context"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/ent/message"
)

type MessageModel struct {
	client *ent.MessageClient
}

func NewMessageModel(client *ent.MessageClient) *MessageModel {
	return &MessageModel{client: client}
}

type MessageData struct {
	MessageID   int64
	ChatID      int64
	SenderID    int64
	SenderName  string
	Text        string
	MsgType     string
	SentAt      time.Time
	ReferenceID *string
	TopicID     *string
}

// Create 创建消息，同一群内重复的消息ID会触发唯一约束冲突
func (m *MessageModel) Create(ctx context.Context, data *MessageData) (*ent.Message, error) {
	create := m.client.Create().
		SetMessageID(data.MessageID).
		SetChatID(data.ChatID).
		SetSenderID(data.SenderID).
		SetSenderName(data.SenderName).
		SetText(data.Text).
		SetSentAt(data.SentAt)

	if data.MsgType != "" {
		create.SetMsgType(data.MsgType)
	}
	if data.ReferenceID != nil {
		create.SetReferenceID(*data.ReferenceID)
	}
	if data.TopicID != nil {
		create.SetTopicID(*data.TopicID)
	}
	return create.Save(ctx)
}

// GetByRangeAndChat 查询群聊在 [startTime, endTime) 内的消息，按发送时间升序
// 同一时间的消息按插入顺序（自增主键）排列
func (m *MessageModel) GetByRangeAndChat(ctx context.Context, chatID int64, startTime, endTime time.Time) ([]*ent.Message, error) {
	return m.client.Query().
		Where(
			message.ChatIDEQ(chatID),
			message.SentAtGTE(startTime),
			message.SentAtLT(endTime),
		).
		Order(message.BySentAt(), message.ByID()).
		All(ctx)
}

// GetActiveChatIDs 查询时间窗口内有消息记录的所有群组ID，去重在 SQL 层完成
func (m *MessageModel) GetActiveChatIDs(ctx context.Context, startTime, endTime time.Time) ([]int64, error) {
	var chatIDs []int64
	err := m.client.Query().
		Where(
			message.SentAtGTE(startTime),
			message.SentAtLT(endTime),
		).
		GroupBy(message.FieldChatID).
		Scan(ctx, &chatIDs)
	if err != nil {
		return nil, err
	}
	return chatIDs, nil
}
