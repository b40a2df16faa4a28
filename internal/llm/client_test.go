package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/config"
	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/topic"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockOpenAIClient 模拟 OpenAI 客户端
type mockOpenAIClient struct {
	mock.Mock
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// newTestClient 创建用于测试的客户端，注入 mock
func newTestClient(mockClient openAIClientInterface) *Client {
	return &Client{
		config:       &config.LLM{Model: "test", MaxTokens: 2000, Temperature: 0.7, Timeout: 30},
		openaiClient: mockClient,
	}
}

func ptr(s string) *string {
	return &s
}

func testGroups() []topic.Group {
	return []topic.Group{
		{
			TopicID: ptr("rust-async"),
			Messages: []*ent.Message{
				{SenderID: 1, SenderName: "张三", Text: "异步运行时怎么选", SentAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)},
				{SenderID: 2, SenderName: "李四", Text: "tokio 就够了", SentAt: time.Date(2025, 3, 1, 10, 1, 0, 0, time.Local)},
			},
		},
		{
			TopicID: nil,
			Messages: []*ent.Message{
				{SenderID: 3, SenderName: "王五", Text: "中午吃什么", SentAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)},
			},
		},
	}
}

func completionWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestBuildPayload_PreservesOrder(t *testing.T) {
	payload, err := buildPayload(testGroups())
	assert.NoError(t, err)
	assert.Contains(t, payload, `"topic_id": "rust-async"`)
	assert.Contains(t, payload, `"topic_id": null`)
	// 组内顺序保持原样
	assert.Less(t, strings.Index(payload, "张三"), strings.Index(payload, "李四"))
	assert.Less(t, strings.Index(payload, "李四"), strings.Index(payload, "王五"))
	assert.Contains(t, payload, `"time": "10:00:00"`)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	client := newTestClient(mockAPI)

	_, err := client.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	mockAPI.AssertNotCalled(t, "CreateChatCompletion")
}

func TestAnalyze_Success(t *testing.T) {
	jsonResp := `{
		"topics": [{"name": "Rust 异步", "heat": 4, "summary": "讨论运行时选型", "key_points": ["tokio 成熟"]}],
		"code_snippets": [{"language": "rust", "code": "async fn main() {}", "analysis": "入口函数"}],
		"issues": [{"title": "编译慢", "raised_by": "张三", "status": "unsolved", "description": "增量编译耗时"}],
		"resources": [{"title": "Async Book", "url": "https://rust-lang.github.io/async-book/", "description": "官方文档"}],
		"innovative_ideas": [{"author": "李四", "content": "做个基准测试机器人"}],
		"top_contributors": [{"name": "李四", "contribution": "解答运行时问题"}]
	}`
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return strings.Contains(req.Messages[1].Content, "rust-async") &&
			strings.Contains(req.Messages[1].Content, "topics")
	})).Return(completionWith(jsonResp), nil)

	client := newTestClient(mockAPI)
	result, err := client.Analyze(context.Background(), testGroups())
	assert.NoError(t, err)
	mockAPI.AssertExpectations(t)

	assert.Len(t, result.Topics, 1)
	assert.Equal(t, "Rust 异步", result.Topics[0].Name)
	assert.Equal(t, 4, result.Topics[0].Heat)
	assert.Len(t, result.CodeSnippets, 1)
	assert.Len(t, result.Issues, 1)
	assert.Equal(t, "unsolved", result.Issues[0].Status)
	assert.Len(t, result.Resources, 1)
	assert.Len(t, result.InnovativeIdeas, 1)
	assert.Len(t, result.TopContributors, 1)
}

func TestAnalyze_MissingFieldsDefaultToEmpty(t *testing.T) {
	// 可解析但缺少字段的返回不算失败，缺失字段按空列表处理
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(completionWith(`{"topics": [{"name": "Go 泛型", "heat": 3, "summary": "约束写法"}]}`), nil)

	client := newTestClient(mockAPI)
	result, err := client.Analyze(context.Background(), testGroups())
	assert.NoError(t, err)
	assert.Len(t, result.Topics, 1)
	assert.Empty(t, result.Topics[0].KeyPoints)
	assert.Empty(t, result.CodeSnippets)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Resources)
	assert.Empty(t, result.InnovativeIdeas)
	assert.Empty(t, result.TopContributors)
}

func TestAnalyze_HeatClamped(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(completionWith(`{"topics": [{"name": "a", "heat": 9}, {"name": "b", "heat": 0}]}`), nil)

	client := newTestClient(mockAPI)
	result, err := client.Analyze(context.Background(), testGroups())
	assert.NoError(t, err)
	assert.Equal(t, 5, result.Topics[0].Heat)
	assert.Equal(t, 1, result.Topics[1].Heat)
}

func TestAnalyze_TrimsMarkdownCodeBlock(t *testing.T) {
	wrapped := "```json\n{\"topics\": [{\"name\": \"x\", \"heat\": 2}]}\n```"
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(completionWith(wrapped), nil)

	client := newTestClient(mockAPI)
	result, err := client.Analyze(context.Background(), testGroups())
	assert.NoError(t, err)
	assert.Len(t, result.Topics, 1)
}

func TestAnalyze_BadStatus(t *testing.T) {
	apiErr := &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, apiErr)

	client := newTestClient(mockAPI)
	_, err := client.Analyze(context.Background(), testGroups())

	var badStatus *BadStatusError
	assert.ErrorAs(t, err, &badStatus)
	assert.Equal(t, 429, badStatus.Status)
	assert.Contains(t, badStatus.Body, "rate limited")
}

func TestNewAPIConfig_ProxyTransport(t *testing.T) {
	cfg := &config.LLM{APIKey: "key", BaseURL: "https://api.example.com/v1"}

	// 未启用代理时使用默认 HTTP 客户端
	apiConfig := newAPIConfig(cfg, nil)
	assert.Equal(t, "https://api.example.com/v1", apiConfig.BaseURL)
	httpClient, ok := apiConfig.HTTPClient.(*http.Client)
	assert.True(t, ok)
	assert.Nil(t, httpClient.Transport)

	// 启用代理时模型接口请求必须走该代理
	transport := &http.Transport{}
	apiConfig = newAPIConfig(cfg, transport)
	httpClient, ok = apiConfig.HTTPClient.(*http.Client)
	assert.True(t, ok)
	assert.Same(t, transport, httpClient.Transport)
}

func TestAnalyze_NonJSONErrorBody(t *testing.T) {
	// 网关返回的 HTML 错误页不走 APIError，同样要归类为状态错误
	reqErr := &openai.RequestError{
		HTTPStatusCode: 502,
		Err:            errors.New("bad gateway"),
		Body:           []byte("<html>bad gateway</html>"),
	}
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, reqErr)

	client := newTestClient(mockAPI)
	_, err := client.Analyze(context.Background(), testGroups())

	var badStatus *BadStatusError
	assert.ErrorAs(t, err, &badStatus)
	assert.Equal(t, 502, badStatus.Status)
	assert.Contains(t, badStatus.Body, "bad gateway")
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestAnalyze_TransportFailure(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("dial tcp: i/o timeout"))

	client := newTestClient(mockAPI)
	_, err := client.Analyze(context.Background(), testGroups())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestAnalyze_MalformedResponse(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(completionWith("今天大家聊得很开心"), nil)

	client := newTestClient(mockAPI)
	_, err := client.Analyze(context.Background(), testGroups())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAnalyze_EmptyChoices(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{Choices: nil}, nil)

	client := newTestClient(mockAPI)
	_, err := client.Analyze(context.Background(), testGroups())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
