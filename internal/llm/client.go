package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/config"
	"github.com/fachebot/tech-daily-bot/internal/logger"
	"github.com/fachebot/tech-daily-bot/internal/topic"
	"github.com/sashabaranov/go-openai"
)

var (
	// ErrEmptyInput 没有可分析的消息分组，调用方应在查询阶段短路
	ErrEmptyInput = errors.New("没有可分析的消息分组")
	// ErrTransport 网络错误或超时，单次调用不重试
	ErrTransport = errors.New("请求模型接口失败")
	// ErrMalformedResponse 返回内容无法解析为约定的 JSON 结构
	ErrMalformedResponse = errors.New("无法解析模型返回的分析结果")
)

// BadStatusError 模型接口返回了失败状态，携带原始错误内容
type BadStatusError struct {
	Status int
	Body   string
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("模型接口返回错误状态 %d: %s", e.Status, e.Body)
}

// openAIClientInterface 定义 OpenAI 客户端接口，便于测试
type openAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	config       *config.LLM
	openaiClient openAIClientInterface
}

// NewClient 创建模型客户端
// transport 非 nil 时（如启用 SOCKS5 代理）走该代理访问模型接口
func NewClient(cfg *config.LLM, transport *http.Transport) *Client {
	return &Client{
		config:       cfg,
		openaiClient: openai.NewClientWithConfig(newAPIConfig(cfg, transport)),
	}
}

func newAPIConfig(cfg *config.LLM, transport *http.Transport) openai.ClientConfig {
	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = cfg.BaseURL
	if transport != nil {
		openaiConfig.HTTPClient = &http.Client{Transport: transport}
	}
	return openaiConfig
}

// payloadMessage 请求载荷中的单条消息
type payloadMessage struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

// payloadGroup 请求载荷中的一个话题分组
type payloadGroup struct {
	TopicID  *string          `json:"topic_id"`
	Messages []payloadMessage `json:"messages"`
}

// buildPayload 将话题分组序列化为 JSON 载荷，保持分组及组内消息顺序
func buildPayload(groups []topic.Group) (string, error) {
	payload := make([]payloadGroup, 0, len(groups))
	for _, g := range groups {
		pg := payloadGroup{TopicID: g.TopicID}
		for _, msg := range g.Messages {
			pg.Messages = append(pg.Messages, payloadMessage{
				Sender:  msg.SenderName,
				Content: msg.Text,
				Time:    msg.SentAt.Format("15:04:05"),
			})
		}
		payload = append(payload, pg)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

const systemPrompt = "你是一个技术社区聊天记录分析专家"

// buildUserPrompt 构造分析指令，要求模型返回固定 schema 的 JSON
func buildUserPrompt(payload string) string {
	return fmt.Sprintf(`请分析以下技术社区的聊天记录，生成一份结构化的分析报告。
聊天记录按话题分组，每组包含发送者、内容和时间信息。

聊天记录:
%s

请提供以下信息（JSON格式）：
1. topics: 主要讨论的技术话题列表，每个话题包含:
   - name: 话题名称
   - heat: 热度值(1-5)
   - summary: 讨论要点总结
   - key_points: 关键论点列表
2. code_snippets: 代码片段分析，包含:
   - language: 编程语言
   - code: 代码内容
   - analysis: 代码功能分析
3. issues: 技术难题列表，包含:
   - title: 问题标题
   - raised_by: 提出者
   - status: 状态(unsolved/in_progress/solved)
   - description: 问题描述
4. resources: 相关学习资源，包含:
   - title: 资源标题
   - url: 资源链接
   - description: 资源描述
5. innovative_ideas: 创新想法列表，包含:
   - author: 提出者
   - content: 想法内容
6. top_contributors: 主要贡献者列表，包含:
   - name: 贡献者名称
   - contribution: 贡献内容描述

请确保输出为有效的JSON格式，只输出 JSON，不要其他内容。`, payload)
}

// Analyze 分析话题分组，返回结构化结果
// 单次请求，固定超时，失败不自动重试；需要重试由调用方重新触发
func (c *Client) Analyze(ctx context.Context, groups []topic.Group) (*AnalysisResult, error) {
	if len(groups) == 0 {
		return nil, ErrEmptyInput
	}

	payload, err := buildPayload(groups)
	if err != nil {
		return nil, fmt.Errorf("序列化聊天记录失败: %w", err)
	}

	timeout := time.Duration(c.config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(payload)},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	resp, err := c.openaiClient.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, &BadStatusError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		// 失败状态但响应体不是 JSON 时（如网关返回的 HTML 错误页）
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
			return nil, &BadStatusError{Status: reqErr.HTTPStatusCode, Body: string(reqErr.Body)}
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: 模型返回空结果", ErrMalformedResponse)
	}

	content := trimMarkdownFence(resp.Choices[0].Message.Content)
	result, err := parseAnalysisResult(content)
	if err != nil {
		logger.Debugf("[LLM] 解析分析结果失败，原始内容: %s", content)
		return nil, err
	}
	return result, nil
}

// trimMarkdownFence 去掉模型偶尔包裹的 Markdown 代码块标记
func trimMarkdownFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// parseAnalysisResult 严格解析分析结果
// 缺失的字段按空列表处理，只有整体不可解析才算失败；热度值裁剪到 1-5
func parseAnalysisResult(content string) (*AnalysisResult, error) {
	var result AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	for i := range result.Topics {
		if result.Topics[i].Heat < 1 {
			result.Topics[i].Heat = 1
		} else if result.Topics[i].Heat > 5 {
			result.Topics[i].Heat = 5
		}
	}
	return &result, nil
}
