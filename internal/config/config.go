package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type TelegramApp struct {
	ApiId   int32  `yaml:"ApiId"`
	ApiHash string `yaml:"ApiHash"`
}

type LLM struct {
	BaseURL     string  `yaml:"BaseURL"` // 兼容 OpenAI API 的端点
	APIKey      string  `yaml:"APIKey"`
	Model       string  `yaml:"Model"`       // 如 gpt-4-turbo, deepseek-chat, qwen-plus
	Temperature float32 `yaml:"Temperature"` // 采样温度，默认 0.7
	MaxTokens   int     `yaml:"MaxTokens"`   // 单次回复的最大 token 数
	Timeout     int     `yaml:"Timeout"`     // 请求超时（秒），默认 30，超时不重试
}

type Summary struct {
	Cron          string  `yaml:"Cron"`          // cron 表达式，默认 "0 23 * * *"（本地时间）
	BotName       string  `yaml:"BotName"`       // 日报署名
	NotifyMode    string  `yaml:"NotifyMode"`    // "private" / "group" / "both"
	NotifyUserIds []int64 `yaml:"NotifyUserIds"` // 私聊通知的目标用户ID列表
	AdminUserIds  []int64 `yaml:"AdminUserIds"`  // 允许执行管理命令的用户ID列表
}

type Config struct {
	Sock5Proxy  Sock5Proxy  `yaml:"Sock5Proxy"`
	TelegramApp TelegramApp `yaml:"TelegramApp"`
	LLM         LLM         `yaml:"LLM"`
	Summary     Summary     `yaml:"Summary"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal([]byte(data), &c)
	if err != nil {
		return nil, err
	}

	// 填充默认值
	c.applyDefaults()

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.LLM.Temperature <= 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = 30
	}
	if c.Summary.Cron == "" {
		c.Summary.Cron = "0 23 * * *"
	}
	if c.Summary.BotName == "" {
		c.Summary.BotName = "TechDailyBot"
	}
	if c.Summary.NotifyMode == "" {
		c.Summary.NotifyMode = "group"
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	// 验证 TelegramApp
	if c.TelegramApp.ApiId == 0 {
		return fmt.Errorf("TelegramApp.ApiId 不能为空")
	}
	if c.TelegramApp.ApiHash == "" {
		return fmt.Errorf("TelegramApp.ApiHash 不能为空")
	}

	// 验证 LLM
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM.APIKey 不能为空")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM.BaseURL 不能为空")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM.Model 不能为空")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("LLM.MaxTokens 必须大于 0")
	}

	// 验证 Summary
	if c.Summary.NotifyMode != "private" && c.Summary.NotifyMode != "group" && c.Summary.NotifyMode != "both" {
		return fmt.Errorf("Summary.NotifyMode 必须是 'private', 'group' 或 'both'")
	}
	if c.Summary.NotifyMode == "private" || c.Summary.NotifyMode == "both" {
		if len(c.Summary.NotifyUserIds) == 0 {
			return fmt.Errorf("Summary.NotifyUserIds 不能为空（当 NotifyMode 为 'private' 或 'both' 时）")
		}
	}

	return nil
}
