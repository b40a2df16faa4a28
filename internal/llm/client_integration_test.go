package llm

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/config"
	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/topic"
	"github.com/stretchr/testify/require"
)

// integrationTestConfig 从环境变量构建测试配置，若 LLM_API_KEY 未设置则跳过
func integrationTestConfig(t *testing.T) *config.LLM {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" || apiKey == "your-api-key-here" {
		t.Skip("跳过集成测试：请设置 LLM_API_KEY 环境变量")
	}
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4-turbo"
	}
	return &config.LLM{
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Model:       model,
		Temperature: 0.7,
		MaxTokens:   2000,
		Timeout:     60,
	}
}

func TestAnalyze_Integration(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	topicID := "go-generics"
	now := time.Now()
	groups := []topic.Group{
		{
			TopicID: &topicID,
			Messages: []*ent.Message{
				{SenderID: 1, SenderName: "张三", Text: "Go 泛型的类型约束怎么写比较优雅？", SentAt: now},
				{SenderID: 2, SenderName: "李四", Text: "可以定义一个 constraints 包，把常用约束集中起来", SentAt: now},
				{SenderID: 1, SenderName: "张三", Text: "有道理，我试试 comparable 加自定义接口的组合", SentAt: now},
			},
		},
		{
			TopicID: nil,
			Messages: []*ent.Message{
				{SenderID: 3, SenderName: "王五", Text: "推荐一篇讲 GC 调优的文章 https://tip.golang.org/doc/gc-guide", SentAt: now},
			},
		},
	}

	result, err := client.Analyze(ctx, groups)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Topics)
	for _, item := range result.Topics {
		require.GreaterOrEqual(t, item.Heat, 1)
		require.LessOrEqual(t, item.Heat, 5)
	}
}
