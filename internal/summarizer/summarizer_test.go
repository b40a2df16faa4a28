package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/llm"
	"github.com/fachebot/tech-daily-bot/internal/topic"
	"github.com/stretchr/testify/assert"
)

// mockMessageProvider 用于测试的 messageProvider mock
type mockMessageProvider struct {
	messages  []*ent.Message
	err       error
	lastStart time.Time
	lastEnd   time.Time
}

func (m *mockMessageProvider) GetByRangeAndChat(ctx context.Context, chatID int64, startTime, endTime time.Time) ([]*ent.Message, error) {
	m.lastStart = startTime
	m.lastEnd = endTime
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

// mockAnalyzer 用于测试的 analyzer mock，记录收到的分组
type mockAnalyzer struct {
	result     *llm.AnalysisResult
	err        error
	calls      int
	lastGroups []topic.Group
}

func (m *mockAnalyzer) Analyze(ctx context.Context, groups []topic.Group) (*llm.AnalysisResult, error) {
	m.calls++
	m.lastGroups = groups
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockEngine 用于测试的 templateEngine mock，把关键变量拼进输出
type mockEngine struct {
	current  string
	exists   bool
	err      error
	lastVars map[string]string
}

func (m *mockEngine) Current() string {
	if m.current == "" {
		return "technical"
	}
	return m.current
}

func (m *mockEngine) Render(ctx context.Context, name string, variables map[string]string) (string, bool, error) {
	m.lastVars = variables
	if m.err != nil {
		return "", false, m.err
	}
	if !m.exists {
		return "", false, nil
	}
	return fmt.Sprintf("%s 日报 活跃:%s 总数:%s", variables["date"], variables["active_users"], variables["total_messages"]), true, nil
}

func ptr(s string) *string {
	return &s
}

func mustMessage(senderID int64, text string, topicID *string, sentAt time.Time) *ent.Message {
	return &ent.Message{
		SenderID:   senderID,
		SenderName: fmt.Sprintf("用户%d", senderID),
		Text:       text,
		SentAt:     sentAt,
		TopicID:    topicID,
	}
}

func newTestSummarizer(provider *mockMessageProvider, analyzer *mockAnalyzer, engine *mockEngine) *Summarizer {
	return &Summarizer{
		messageModel: provider,
		llmClient:    analyzer,
		engine:       engine,
		botName:      "TechDailyBot",
	}
}

func TestGenerate_EmptyWindow(t *testing.T) {
	provider := &mockMessageProvider{}
	analyzer := &mockAnalyzer{}
	s := newTestSummarizer(provider, analyzer, &mockEngine{exists: true})

	now := time.Date(2025, 3, 1, 21, 30, 0, 0, time.Local)
	result := s.Generate(context.Background(), 100, now)

	assert.False(t, result.Success)
	assert.Equal(t, "今日无消息记录", result.Err)
	assert.Equal(t, "2025-03-01", result.Date)
	// 无消息时不得调用模型
	assert.Zero(t, analyzer.calls)
	// 查询窗口为 [当日零点, now)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), provider.lastStart)
	assert.Equal(t, now, provider.lastEnd)
}

func TestGenerate_StoreError(t *testing.T) {
	provider := &mockMessageProvider{err: errors.New("db locked")}
	s := newTestSummarizer(provider, &mockAnalyzer{}, &mockEngine{exists: true})

	result := s.Generate(context.Background(), 100, time.Now())
	assert.False(t, result.Success)
	assert.Contains(t, result.Err, "查询消息失败")
	assert.Contains(t, result.Err, "db locked")
}

func TestGenerate_EndToEnd(t *testing.T) {
	// 3 条消息：前 2 条连续同话题，第 3 条无话题 => 恰好 2 个分组
	now := time.Date(2025, 3, 1, 22, 0, 0, 0, time.Local)
	provider := &mockMessageProvider{
		messages: []*ent.Message{
			mustMessage(1, "异步运行时怎么选", ptr("rust-async"), now.Add(-3*time.Hour)),
			mustMessage(2, "tokio 就够了", ptr("rust-async"), now.Add(-2*time.Hour)),
			mustMessage(1, "顺便问下午饭吃什么", nil, now.Add(-time.Hour)),
		},
	}
	analyzer := &mockAnalyzer{
		result: &llm.AnalysisResult{
			Topics: []llm.TopicItem{{Name: "Rust 异步", Heat: 4, Summary: "运行时选型"}},
		},
	}
	engine := &mockEngine{exists: true}
	s := newTestSummarizer(provider, analyzer, engine)

	result := s.Generate(context.Background(), 100, now)
	assert.True(t, result.Success)
	assert.Equal(t, int64(100), result.ChatID)
	assert.Equal(t, "2025-03-01", result.Date)

	// 模型收到恰好 2 个分组：2 条 + 1 条
	assert.Equal(t, 1, analyzer.calls)
	assert.Len(t, analyzer.lastGroups, 2)
	assert.Len(t, analyzer.lastGroups[0].Messages, 2)
	assert.Len(t, analyzer.lastGroups[1].Messages, 1)

	// 统计：2 个不同发送者，3 条消息
	assert.Equal(t, "2", engine.lastVars["active_users"])
	assert.Equal(t, "3", engine.lastVars["total_messages"])

	// 渲染结果携带日期和两项统计
	assert.Contains(t, result.Content, "2025-03-01")
	assert.Contains(t, result.Content, "活跃:2")
	assert.Contains(t, result.Content, "总数:3")
}

func TestGenerate_AnalysisError(t *testing.T) {
	now := time.Now()
	provider := &mockMessageProvider{
		messages: []*ent.Message{mustMessage(1, "hello", nil, now)},
	}
	analyzer := &mockAnalyzer{err: fmt.Errorf("%w: 超时", llm.ErrTransport)}
	s := newTestSummarizer(provider, analyzer, &mockEngine{exists: true})

	result := s.Generate(context.Background(), 100, now)
	assert.False(t, result.Success)
	assert.Contains(t, result.Err, "分析消息失败")
	assert.Contains(t, result.Err, "请求模型接口失败")
}

func TestGenerate_TemplateMissing(t *testing.T) {
	now := time.Now()
	provider := &mockMessageProvider{
		messages: []*ent.Message{mustMessage(1, "hello", nil, now)},
	}
	analyzer := &mockAnalyzer{result: &llm.AnalysisResult{}}
	engine := &mockEngine{current: "technical", exists: false}
	s := newTestSummarizer(provider, analyzer, engine)

	result := s.Generate(context.Background(), 100, now)
	assert.False(t, result.Success)
	assert.Contains(t, result.Err, "模板 technical 不存在")
}

func TestBuildVariables_EmptyListsFlattenToEmptyString(t *testing.T) {
	vars := buildVariables("2025-03-01", 2, 3, "TechDailyBot", &llm.AnalysisResult{})
	assert.Equal(t, "", vars["topics"])
	assert.Equal(t, "", vars["issues"])
	assert.Equal(t, "0", vars["topic_count"])
	assert.Equal(t, "TechDailyBot", vars["bot_name"])
}

func TestBuildVariables_ListsPreserveOrder(t *testing.T) {
	result := &llm.AnalysisResult{
		Topics: []llm.TopicItem{
			{Name: "第一", Heat: 5, Summary: "a", KeyPoints: []string{"p1", "p2"}},
			{Name: "第二", Heat: 2, Summary: "b"},
		},
		Issues: []llm.IssueItem{
			{Title: "编译慢", RaisedBy: "张三", Status: "unsolved", Description: "增量编译耗时"},
		},
	}
	vars := buildVariables("2025-03-01", 2, 3, "TechDailyBot", result)

	assert.Contains(t, vars["topics"], "1. 第一 (热度: ★★★★★)")
	assert.Contains(t, vars["topics"], "2. 第二 (热度: ★★)")
	assert.Contains(t, vars["topics"], "- p1")
	assert.Less(t, strings.Index(vars["topics"], "第一"), strings.Index(vars["topics"], "第二"))
	assert.Contains(t, vars["issues"], "编译慢 (由 张三 提出, 状态: unsolved)")
}
