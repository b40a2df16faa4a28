package model

import (
	"context"
	"testing"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessageModel(t *testing.T, dsn string) *MessageModel {
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() {
		client.Close()
	})
	return NewMessageModel(client.Message)
}

func mustCreate(t *testing.T, m *MessageModel, messageID, chatID, senderID int64, text string, sentAt time.Time) {
	_, err := m.Create(context.Background(), &MessageData{
		MessageID:  messageID,
		ChatID:     chatID,
		SenderID:   senderID,
		SenderName: "用户",
		Text:       text,
		SentAt:     sentAt,
	})
	require.NoError(t, err)
}

func TestGetByRangeAndChat_OrderAndBounds(t *testing.T) {
	m := newTestMessageModel(t, "file:message_range?mode=memory&cache=shared&_fk=1")
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	// 乱序写入，b 和 c 的时间戳相同（b 先写入）
	mustCreate(t, m, 3, 100, 1, "d", base.Add(time.Hour))
	mustCreate(t, m, 1, 100, 1, "a", base)
	mustCreate(t, m, 2, 100, 2, "b", base.Add(30*time.Minute))
	mustCreate(t, m, 4, 100, 3, "c", base.Add(30*time.Minute))
	// 其他群的消息不得混入结果
	mustCreate(t, m, 1, 200, 1, "other", base.Add(10*time.Minute))

	records, err := m.GetByRangeAndChat(context.Background(), 100, base, base.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 4)

	// 按发送时间升序，相同时间按写入顺序
	texts := make([]string, 0, len(records))
	for _, record := range records {
		texts = append(texts, record.Text)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts)
}

func TestGetByRangeAndChat_EndExclusive(t *testing.T) {
	m := newTestMessageModel(t, "file:message_bounds?mode=memory&cache=shared&_fk=1")
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	mustCreate(t, m, 1, 100, 1, "start", base)
	mustCreate(t, m, 2, 100, 1, "end", base.Add(time.Hour))

	// 起点闭区间，终点开区间
	records, err := m.GetByRangeAndChat(context.Background(), 100, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "start", records[0].Text)
}

func TestGetByRangeAndChat_EmptyWindowIsNotError(t *testing.T) {
	m := newTestMessageModel(t, "file:message_empty?mode=memory&cache=shared&_fk=1")
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	records, err := m.GetByRangeAndChat(context.Background(), 100, base, base.Add(time.Hour))
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreate_DuplicateMessageIDInSameChat(t *testing.T) {
	m := newTestMessageModel(t, "file:message_dup?mode=memory&cache=shared&_fk=1")
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	mustCreate(t, m, 1, 100, 1, "first", base)

	// 同群重复消息ID触发唯一约束冲突
	_, err := m.Create(context.Background(), &MessageData{
		MessageID:  1,
		ChatID:     100,
		SenderID:   2,
		SenderName: "用户",
		Text:       "duplicate",
		SentAt:     base.Add(time.Minute),
	})
	assert.Error(t, err)

	// 不同群可以复用同一个消息ID
	mustCreate(t, m, 1, 200, 2, "other chat", base)
}

func TestGetActiveChatIDs_Distinct(t *testing.T) {
	m := newTestMessageModel(t, "file:message_active?mode=memory&cache=shared&_fk=1")
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	mustCreate(t, m, 1, 100, 1, "a", base)
	mustCreate(t, m, 2, 100, 2, "b", base.Add(time.Minute))
	mustCreate(t, m, 1, 200, 1, "c", base.Add(2*time.Minute))
	// 窗口外的群不算活跃
	mustCreate(t, m, 1, 300, 1, "late", base.Add(2*time.Hour))

	chatIDs, err := m.GetActiveChatIDs(context.Background(), base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{100, 200}, chatIDs)
}
