package report

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/logger"
	"github.com/fachebot/tech-daily-bot/internal/model"
)

// currentTemplateKey 当前模板选择器在 Setting 表中的键
const currentTemplateKey = "summary.template"

// DefaultPreset 默认使用的模板
const DefaultPreset = "technical"

// ErrUnknownPreset 模板名称不在固定预设集合内
var ErrUnknownPreset = errors.New("未知的模板预设")

// templateStore 模板正文存储（便于测试注入 mock）
type templateStore interface {
	GetByName(ctx context.Context, name string) (*ent.Template, error)
	CreateIfAbsent(ctx context.Context, name, content, description string) error
}

// settingStore 配置项存储（便于测试注入 mock）
type settingStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Engine 日报模板引擎
// 当前模板选择器是进程级共享状态：读多写少，用读写锁保护，写入时同步落库
type Engine struct {
	templates templateStore
	settings  settingStore
	mu        sync.RWMutex
	current   string
}

func NewEngine(templates *model.TemplateModel, settings *model.SettingModel) *Engine {
	return &Engine{
		templates: templates,
		settings:  settings,
	}
}

// Seed 初始化模板存储：写入缺失的预设（已有同名模板不覆盖），并加载持久化的当前模板选择
func (e *Engine) Seed(ctx context.Context) error {
	for _, p := range presets {
		if err := e.templates.CreateIfAbsent(ctx, p.name, p.content, p.description); err != nil {
			return fmt.Errorf("初始化模板 %s 失败: %w", p.name, err)
		}
	}

	current, err := e.settings.Get(ctx, currentTemplateKey)
	if err != nil {
		return fmt.Errorf("读取当前模板配置失败: %w", err)
	}
	if !IsPreset(current) {
		if current != "" {
			logger.Warnf("[Report] 持久化的模板名称无效: %s，回退为 %s", current, DefaultPreset)
		}
		current = DefaultPreset
	}

	e.mu.Lock()
	e.current = current
	e.mu.Unlock()
	return nil
}

// Current 返回当前选择的模板名称
func (e *Engine) Current() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.current == "" {
		return DefaultPreset
	}
	return e.current
}

// SetCurrent 切换当前模板，名称必须属于固定预设集合；切换对所有后续渲染立即生效
func (e *Engine) SetCurrent(ctx context.Context, name string) error {
	if !IsPreset(name) {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	if err := e.settings.Set(ctx, currentTemplateKey, name); err != nil {
		return fmt.Errorf("保存当前模板配置失败: %w", err)
	}

	e.mu.Lock()
	e.current = name
	e.mu.Unlock()
	return nil
}

// Get 按名称查询模板，不存在时返回 (nil, nil)
func (e *Engine) Get(ctx context.Context, name string) (*ent.Template, error) {
	return e.templates.GetByName(ctx, name)
}

// placeholderPattern 匹配 ${key} 和 {key} 两种占位符
var placeholderPattern = regexp.MustCompile(`\$?\{([A-Za-z0-9_]+)\}`)

// Render 渲染模板（简单变量替换）
// 每个变量支持 ${key} 和 {key} 两种占位符；映射中不存在的占位符原样保留。
// 只对模板正文做单趟扫描，替换进去的变量值不会被二次替换。
// ok 为 false 仅表示模板不存在
func (e *Engine) Render(ctx context.Context, name string, variables map[string]string) (content string, ok bool, err error) {
	tpl, err := e.templates.GetByName(ctx, name)
	if err != nil {
		return "", false, fmt.Errorf("读取模板 %s 失败: %w", name, err)
	}
	if tpl == nil {
		return "", false, nil
	}

	content = placeholderPattern.ReplaceAllStringFunc(tpl.Content, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		if value, exists := variables[key]; exists {
			return value
		}
		return match
	})
	return content, true, nil
}
