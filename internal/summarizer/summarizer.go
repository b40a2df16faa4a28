package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/llm"
	"github.com/fachebot/tech-daily-bot/internal/logger"
	"github.com/fachebot/tech-daily-bot/internal/model"
	"github.com/fachebot/tech-daily-bot/internal/report"
	"github.com/fachebot/tech-daily-bot/internal/topic"
)

// messageProvider 获取时间区间内的消息（便于测试注入 mock）
type messageProvider interface {
	GetByRangeAndChat(ctx context.Context, chatID int64, startTime, endTime time.Time) ([]*ent.Message, error)
}

// analyzer 调用模型分析话题分组（便于测试注入 mock）
type analyzer interface {
	Analyze(ctx context.Context, groups []topic.Group) (*llm.AnalysisResult, error)
}

// templateEngine 模板引擎（便于测试注入 mock）
type templateEngine interface {
	Current() string
	Render(ctx context.Context, name string, variables map[string]string) (string, bool, error)
}

type Summarizer struct {
	messageModel messageProvider
	llmClient    analyzer
	engine       templateEngine
	botName      string
}

func NewSummarizer(messageModel *model.MessageModel, llmClient *llm.Client, engine *report.Engine, botName string) *Summarizer {
	return &Summarizer{
		messageModel: messageModel,
		llmClient:    llmClient,
		engine:       engine,
		botName:      botName,
	}
}

func failedReport(chatID int64, date, errText string) *Report {
	return &Report{ChatID: chatID, Date: date, Err: errText}
}

// Generate 为指定群组生成当日日报
// 窗口为 [当日本地零点, now)，随调用时刻变化；任何失败都转换为失败的 Report 返回，不抛出错误。
// 手动命令和定时任务共用这一个入口
func (s *Summarizer) Generate(ctx context.Context, chatID int64, now time.Time) *Report {
	date := now.Format("2006-01-02")
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	logger.Infof("[Summarizer] 开始生成群组 %d 在 %s 的日报", chatID, date)

	// 1. 查询今日消息
	messages, err := s.messageModel.GetByRangeAndChat(ctx, chatID, dayStart, now)
	if err != nil {
		return failedReport(chatID, date, fmt.Sprintf("查询消息失败: %v", err))
	}
	if len(messages) == 0 {
		// 正常结果而非故障：当天没人说话
		return failedReport(chatID, date, "今日无消息记录")
	}
	logger.Infof("[Summarizer] 群组 %d: 找到 %d 条消息", chatID, len(messages))

	// 2. 按话题切分
	groups := topic.Partition(messages)

	// 3. 调用模型分析
	result, err := s.llmClient.Analyze(ctx, groups)
	if err != nil {
		return failedReport(chatID, date, fmt.Sprintf("分析消息失败: %v", err))
	}

	// 4. 统计指标
	senderSet := make(map[int64]bool)
	for _, msg := range messages {
		senderSet[msg.SenderID] = true
	}
	activeUsers := len(senderSet)
	totalMessages := len(messages)

	// 5. 用当前模板渲染
	templateName := s.engine.Current()
	variables := buildVariables(date, activeUsers, totalMessages, s.botName, result)
	content, ok, err := s.engine.Render(ctx, templateName, variables)
	if err != nil {
		return failedReport(chatID, date, fmt.Sprintf("渲染模板失败: %v", err))
	}
	if !ok {
		return failedReport(chatID, date, fmt.Sprintf("模板 %s 不存在", templateName))
	}

	logger.Infof("[Summarizer] 群组 %d: 日报生成完成，共 %d 个话题", chatID, len(result.Topics))
	return &Report{
		Success: true,
		Content: content,
		ChatID:  chatID,
		Date:    date,
	}
}
