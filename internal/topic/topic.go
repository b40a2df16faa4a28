package topic

import (
	"github.com/fachebot/tech-daily-bot/internal/ent"
)

// Group 一段话题ID相同且相邻的连续消息
// TopicID 为 nil 表示这段消息没有话题标记
type Group struct {
	TopicID  *string
	Messages []*ent.Message
}

// sameTopic 判断两个话题ID是否相同，nil 与任何非 nil 值都不同
func sameTopic(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Partition 按话题ID把有序消息切分为连续分组
// 纯函数：只要话题ID与前一条不同就开启新分组，相同话题ID的两段不相邻的消息不会被合并；
// 输出分组按序拼接后与输入序列完全一致
func Partition(records []*ent.Message) []Group {
	if len(records) == 0 {
		return nil
	}

	groups := make([]Group, 0)
	current := Group{TopicID: records[0].TopicID}

	for _, record := range records {
		if !sameTopic(record.TopicID, current.TopicID) {
			groups = append(groups, current)
			current = Group{TopicID: record.TopicID}
		}
		current.Messages = append(current.Messages, record)
	}
	groups = append(groups, current)

	return groups
}
