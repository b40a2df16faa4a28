package model

import (
	"context"

	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/ent/template"
)

type TemplateModel struct {
	client *ent.TemplateClient
}

func NewTemplateModel(client *ent.TemplateClient) *TemplateModel {
	return &TemplateModel{client: client}
}

// GetByName 按名称查询模板，不存在时返回 (nil, nil)
func (m *TemplateModel) GetByName(ctx context.Context, name string) (*ent.Template, error) {
	record, err := m.client.Query().
		Where(template.NameEQ(name)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// CreateIfAbsent 模板不存在时写入默认内容，已存在（可能被自定义过）则保持原样
func (m *TemplateModel) CreateIfAbsent(ctx context.Context, name, content, description string) error {
	existing, err := m.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	create := m.client.Create().
		SetName(name).
		SetContent(content)
	if description != "" {
		create.SetDescription(description)
	}
	return create.Exec(ctx)
}
