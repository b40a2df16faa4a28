package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/stretchr/testify/assert"
)

// mockTemplateStore 用于测试的 templateStore mock
type mockTemplateStore struct {
	templates map[string]string
	err       error
}

func newMockTemplateStore() *mockTemplateStore {
	return &mockTemplateStore{templates: make(map[string]string)}
}

func (m *mockTemplateStore) GetByName(ctx context.Context, name string) (*ent.Template, error) {
	if m.err != nil {
		return nil, m.err
	}
	content, ok := m.templates[name]
	if !ok {
		return nil, nil
	}
	return &ent.Template{Name: name, Content: content}, nil
}

func (m *mockTemplateStore) CreateIfAbsent(ctx context.Context, name, content, description string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.templates[name]; !ok {
		m.templates[name] = content
	}
	return nil
}

// mockSettingStore 用于测试的 settingStore mock
type mockSettingStore struct {
	values map[string]string
	err    error
}

func newMockSettingStore() *mockSettingStore {
	return &mockSettingStore{values: make(map[string]string)}
}

func (m *mockSettingStore) Get(ctx context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.values[key], nil
}

func (m *mockSettingStore) Set(ctx context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func newTestEngine() (*Engine, *mockTemplateStore, *mockSettingStore) {
	templates := newMockTemplateStore()
	settings := newMockSettingStore()
	engine := &Engine{templates: templates, settings: settings}
	return engine, templates, settings
}

func TestSeed_InsertsMissingPresets(t *testing.T) {
	engine, templates, _ := newTestEngine()
	err := engine.Seed(context.Background())
	assert.NoError(t, err)
	for _, name := range PresetNames() {
		assert.Contains(t, templates.templates, name)
	}
	assert.Equal(t, DefaultPreset, engine.Current())
}

func TestSeed_NeverOverwritesCustomizedTemplate(t *testing.T) {
	engine, templates, _ := newTestEngine()
	templates.templates["technical"] = "自定义模板 ${date}"

	err := engine.Seed(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "自定义模板 ${date}", templates.templates["technical"])
}

func TestSeed_LoadsPersistedSelector(t *testing.T) {
	engine, _, settings := newTestEngine()
	settings.values[currentTemplateKey] = "concise"

	err := engine.Seed(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "concise", engine.Current())
}

func TestSeed_InvalidPersistedSelectorFallsBack(t *testing.T) {
	engine, _, settings := newTestEngine()
	settings.values[currentTemplateKey] = "fancy"

	err := engine.Seed(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, DefaultPreset, engine.Current())
}

func TestSetCurrent(t *testing.T) {
	engine, _, settings := newTestEngine()
	assert.NoError(t, engine.Seed(context.Background()))

	err := engine.SetCurrent(context.Background(), "community")
	assert.NoError(t, err)
	assert.Equal(t, "community", engine.Current())
	assert.Equal(t, "community", settings.values[currentTemplateKey])
}

func TestSetCurrent_UnknownPreset(t *testing.T) {
	engine, _, _ := newTestEngine()
	err := engine.SetCurrent(context.Background(), "fancy")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestRender_BothPlaceholderForms(t *testing.T) {
	engine, templates, _ := newTestEngine()
	templates.templates["demo"] = "日期：{date}，用户数：${active_users}"

	content, ok, err := engine.Render(context.Background(), "demo", map[string]string{
		"date":         "2025-03-01",
		"active_users": "8",
	})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "日期：2025-03-01，用户数：8", content)
}

func TestRender_UnresolvedPlaceholdersLeftVerbatim(t *testing.T) {
	engine, templates, _ := newTestEngine()
	templates.templates["demo"] = "已知：${known}，未知：${unknown} 和 {missing}"

	content, ok, err := engine.Render(context.Background(), "demo", map[string]string{"known": "值"})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, content, "已知：值")
	assert.Contains(t, content, "${unknown}")
	assert.Contains(t, content, "{missing}")
}

func TestRender_ValueContainingPlaceholderNotResubstituted(t *testing.T) {
	// 变量值里出现其他占位符的字面文本（如模型返回的代码）必须原样保留
	engine, templates, _ := newTestEngine()
	templates.templates["demo"] = "代码：${code} 日期：{date}"

	vars := map[string]string{
		"code": `fmt.Println("{date}")`,
		"date": "2025-03-01",
	}
	for i := 0; i < 20; i++ {
		content, ok, err := engine.Render(context.Background(), "demo", vars)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `代码：fmt.Println("{date}") 日期：2025-03-01`, content)
	}
}

func TestRender_EmptyMappingLeavesAllPlaceholders(t *testing.T) {
	engine, templates, _ := newTestEngine()
	templates.templates["demo"] = "a=${a} b={b}"

	content, ok, err := engine.Render(context.Background(), "demo", map[string]string{})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a=${a} b={b}", content)
}

func TestRender_FullyPopulatedPresetLeavesNoPlaceholders(t *testing.T) {
	engine, _, _ := newTestEngine()
	assert.NoError(t, engine.Seed(context.Background()))

	vars := map[string]string{
		"date":             "2025-03-01",
		"active_users":     "8",
		"total_messages":   "120",
		"topic_count":      "3",
		"code_count":       "1",
		"bot_name":         "TechDailyBot",
		"topics":           "1. Go 泛型",
		"code_snippets":    "无",
		"issues":           "无",
		"resources":        "无",
		"innovative_ideas": "无",
		"top_contributors": "无",
	}
	for _, name := range PresetNames() {
		content, ok, err := engine.Render(context.Background(), name, vars)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NotContains(t, content, "${", "模板 %s 应无残留占位符", name)
		assert.False(t, strings.Contains(content, "{date}"), "模板 %s 应无残留占位符", name)
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	engine, _, _ := newTestEngine()
	content, ok, err := engine.Render(context.Background(), "nope", map[string]string{})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, content)
}

func TestRender_StoreError(t *testing.T) {
	engine, templates, _ := newTestEngine()
	templates.err = errors.New("db closed")

	_, _, err := engine.Render(context.Background(), "demo", nil)
	assert.Error(t, err)
}
