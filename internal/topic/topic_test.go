package topic

import (
	"testing"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string {
	return &s
}

func mustMessage(senderID int64, text string, topicID *string) *ent.Message {
	return &ent.Message{
		SenderID:   senderID,
		SenderName: "用户",
		Text:       text,
		SentAt:     time.Now(),
		TopicID:    topicID,
	}
}

func TestPartition_Empty(t *testing.T) {
	assert.Nil(t, Partition(nil))
	assert.Nil(t, Partition([]*ent.Message{}))
}

func TestPartition_SingleTopic(t *testing.T) {
	records := []*ent.Message{
		mustMessage(1, "a", ptr("rust-async")),
		mustMessage(2, "b", ptr("rust-async")),
	}
	groups := Partition(records)
	assert.Len(t, groups, 1)
	assert.Equal(t, "rust-async", *groups[0].TopicID)
	assert.Len(t, groups[0].Messages, 2)
}

func TestPartition_NilTopicBoundary(t *testing.T) {
	// 有话题 -> 无话题 是一个分组边界
	records := []*ent.Message{
		mustMessage(1, "a", ptr("rust-async")),
		mustMessage(2, "b", ptr("rust-async")),
		mustMessage(3, "c", nil),
	}
	groups := Partition(records)
	assert.Len(t, groups, 2)
	assert.Len(t, groups[0].Messages, 2)
	assert.Nil(t, groups[1].TopicID)
	assert.Len(t, groups[1].Messages, 1)
}

func TestPartition_NonAdjacentSameTopicNotMerged(t *testing.T) {
	// 相同话题ID被其他话题隔开时，必须产生两个独立分组
	records := []*ent.Message{
		mustMessage(1, "a", ptr("go")),
		mustMessage(2, "b", ptr("rust")),
		mustMessage(3, "c", ptr("go")),
	}
	groups := Partition(records)
	assert.Len(t, groups, 3)
	assert.Equal(t, "go", *groups[0].TopicID)
	assert.Equal(t, "rust", *groups[1].TopicID)
	assert.Equal(t, "go", *groups[2].TopicID)
}

func TestPartition_AdjacentUntaggedGrouped(t *testing.T) {
	records := []*ent.Message{
		mustMessage(1, "a", nil),
		mustMessage(2, "b", nil),
		mustMessage(3, "c", ptr("go")),
		mustMessage(4, "d", nil),
	}
	groups := Partition(records)
	assert.Len(t, groups, 3)
	assert.Len(t, groups[0].Messages, 2)
	assert.Len(t, groups[2].Messages, 1)
}

func TestPartition_ConcatReproducesInput(t *testing.T) {
	records := []*ent.Message{
		mustMessage(1, "a", nil),
		mustMessage(2, "b", ptr("x")),
		mustMessage(3, "c", ptr("x")),
		mustMessage(4, "d", ptr("y")),
		mustMessage(5, "e", nil),
	}
	groups := Partition(records)

	var flattened []*ent.Message
	for _, g := range groups {
		flattened = append(flattened, g.Messages...)
	}
	assert.Equal(t, records, flattened)
}

func TestPartition_Deterministic(t *testing.T) {
	records := []*ent.Message{
		mustMessage(1, "a", ptr("x")),
		mustMessage(2, "b", nil),
		mustMessage(3, "c", ptr("x")),
	}
	first := Partition(records)
	second := Partition(records)
	assert.Equal(t, first, second)
}
