package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/tech-daily-bot/internal/config"
	"github.com/fachebot/tech-daily-bot/internal/logger"
	"github.com/zelenin/go-tdlib/client"
)

const (
	MaxMessageLength = 5000 // Telegram 消息最大长度
)

type Notifier struct {
	tdClient *client.Client
	config   *config.Summary
}

func NewNotifier(tdClient *client.Client, cfg *config.Summary) *Notifier {
	return &Notifier{
		tdClient: tdClient,
		config:   cfg,
	}
}

// Notify 发送日报
// chatID 为日报来源群组，当 NotifyMode 为 "group" 或 "both" 时投递到该群
func (n *Notifier) Notify(ctx context.Context, content string, chatID int64) error {
	if content == "" {
		return nil
	}

	switch n.config.NotifyMode {
	case "private":
		return n.notifyPrivate(ctx, content)
	case "group":
		return n.notifyGroup(ctx, content, chatID)
	case "both":
		if err := n.notifyPrivate(ctx, content); err != nil {
			logger.Errorf("[Notify] 私信通知失败: %v", err)
		}
		return n.notifyGroup(ctx, content, chatID)
	default:
		logger.Warnf("[Notify] 未知的通知模式: %s", n.config.NotifyMode)
		return nil
	}
}

// notifyPrivate 发送私信通知
func (n *Notifier) notifyPrivate(ctx context.Context, content string) error {
	if len(n.config.NotifyUserIds) == 0 {
		logger.Warnf("[Notify] 未配置私信通知用户ID")
		return nil
	}

	messages := n.splitMessage(content)

	for _, userID := range n.config.NotifyUserIds {
		for _, msg := range messages {
			if err := n.send(userID, msg); err != nil {
				return fmt.Errorf("发送私信给用户 %d 失败: %w", userID, err)
			}
		}
		logger.Infof("[Notify] 已发送私信给用户 %d", userID)
	}

	return nil
}

// notifyGroup 发送群聊通知
func (n *Notifier) notifyGroup(ctx context.Context, content string, chatID int64) error {
	messages := n.splitMessage(content)

	for _, msg := range messages {
		if err := n.send(chatID, msg); err != nil {
			return fmt.Errorf("发送群聊消息到群组 %d 失败: %w", chatID, err)
		}
	}

	logger.Infof("[Notify] 已发送群聊消息到群组 %d", chatID)
	return nil
}

// send 发送一条纯文本消息，日报本身已是排好版的文本
func (n *Notifier) send(chatID int64, text string) error {
	_, err := n.tdClient.SendMessage(&client.SendMessageRequest{
		ChatId: chatID,
		InputMessageContent: &client.InputMessageText{
			Text: &client.FormattedText{Text: text},
		},
	})
	return err
}

// splitMessage 将消息按长度拆分为多条
func (n *Notifier) splitMessage(content string) []string {
	if len(content) <= MaxMessageLength {
		return []string{content}
	}

	// 按段落拆分
	paragraphs := strings.Split(content, "\n\n")
	if len(paragraphs) == 1 {
		// 如果没有段落分隔，按换行拆分
		paragraphs = strings.Split(content, "\n")
	}

	messages := make([]string, 0)
	currentMsg := ""

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		testMsg := currentMsg
		if testMsg != "" {
			testMsg += "\n\n"
		}
		testMsg += para

		if len(testMsg) <= MaxMessageLength {
			currentMsg = testMsg
			continue
		}

		// 当前消息已满，保存并开始新消息
		if currentMsg != "" {
			messages = append(messages, currentMsg)
		}
		if len(para) <= MaxMessageLength {
			currentMsg = para
			continue
		}

		// 单个段落就超过长度，按句子进一步拆分
		currentMsg = ""
		sentences := strings.Split(para, "。")
		for _, sentence := range sentences {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			if len(currentMsg)+len(sentence)+2 > MaxMessageLength && currentMsg != "" {
				messages = append(messages, currentMsg)
				currentMsg = ""
			}
			if currentMsg != "" {
				currentMsg += "。"
			}
			currentMsg += sentence
		}
	}

	if currentMsg != "" {
		messages = append(messages, currentMsg)
	}

	return messages
}
