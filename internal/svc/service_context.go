package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fachebot/tech-daily-bot/internal/admin"
	"github.com/fachebot/tech-daily-bot/internal/config"
	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/llm"
	"github.com/fachebot/tech-daily-bot/internal/logger"
	"github.com/fachebot/tech-daily-bot/internal/model"
	"github.com/fachebot/tech-daily-bot/internal/report"
	"github.com/fachebot/tech-daily-bot/internal/summarizer"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config         *config.Config
	DbClient       *ent.Client
	MessageModel   *model.MessageModel
	TemplateModel  *model.TemplateModel
	SettingModel   *model.SettingModel
	LLMClient      *llm.Client
	TemplateEngine *report.Engine
	FeatureGate    *admin.FeatureGate
	Summarizer     *summarizer.Summarizer
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建SOCKS5代理，启用时模型接口请求也走该代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	messageModel := model.NewMessageModel(client.Message)
	templateModel := model.NewTemplateModel(client.Template)
	settingModel := model.NewSettingModel(client.Setting)
	llmClient := llm.NewClient(&c.LLM, transportProxy)

	// 初始化模板引擎，写入缺失的内置模板并恢复上次选择的模板
	templateEngine := report.NewEngine(templateModel, settingModel)
	if err = templateEngine.Seed(context.Background()); err != nil {
		logger.Fatalf("初始化日报模板失败, %v", err)
	}

	svcCtx := &ServiceContext{
		Config:         c,
		DbClient:       client,
		MessageModel:   messageModel,
		TemplateModel:  templateModel,
		SettingModel:   settingModel,
		LLMClient:      llmClient,
		TemplateEngine: templateEngine,
		FeatureGate:    admin.NewFeatureGate(settingModel),
		Summarizer:     summarizer.NewSummarizer(messageModel, llmClient, templateEngine, c.Summary.BotName),
	}
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
