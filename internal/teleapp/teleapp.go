package teleapp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/logger"
	"github.com/fachebot/tech-daily-bot/internal/model"
	"github.com/fachebot/tech-daily-bot/internal/report"
	"github.com/fachebot/tech-daily-bot/internal/svc"

	"github.com/zelenin/go-tdlib/client"
)

type TeleApp struct {
	svcCtx     *svc.ServiceContext
	user       *client.User
	tdClient   *client.Client
	listener   *client.Listener
	parameters *client.SetTdlibParametersRequest
	usersMu    sync.RWMutex
	usersCache map[int64]*client.User
	chatsMu    sync.RWMutex
	chatsCache map[int64]*client.Chat
	ctx        context.Context
	cancel     context.CancelFunc
	ctxMu      sync.Mutex
}

func NewApp(svcCtx *svc.ServiceContext, apiId int32, apiHash, dataDir string) *TeleApp {
	_, err := client.SetLogVerbosityLevel(&client.SetLogVerbosityLevelRequest{
		NewVerbosityLevel: 1,
	})
	if err != nil {
		logger.Fatalf("[TeleApp] 设置日志级别错误, %s", err)
	}

	parameters := &client.SetTdlibParametersRequest{
		UseTestDc:           false,
		DatabaseDirectory:   filepath.Join(dataDir, ".tdlib", "database"),
		FilesDirectory:      filepath.Join(dataDir, ".tdlib", "files"),
		UseFileDatabase:     true,
		UseChatInfoDatabase: true,
		UseMessageDatabase:  true,
		UseSecretChats:      false,
		ApiId:               apiId,
		ApiHash:             apiHash,
		SystemLanguageCode:  "en",
		DeviceModel:         "Server",
		SystemVersion:       "1.0.0",
		ApplicationVersion:  "1.0.0",
	}

	app := &TeleApp{
		svcCtx:     svcCtx,
		parameters: parameters,
		chatsCache: make(map[int64]*client.Chat),
		usersCache: make(map[int64]*client.User),
	}
	return app
}

func (app *TeleApp) Login(options ...client.Option) (*client.User, error) {
	if app.user != nil {
		return app.user, nil
	}

	authorizer := client.ClientAuthorizer(app.parameters)
	go client.CliInteractor(authorizer)

	tdlibClient, err := client.NewClient(authorizer, options...)
	if err != nil {
		return nil, err
	}

	me, err := tdlibClient.GetMe()
	if err != nil {
		return nil, err
	}

	app.user = me
	app.tdClient = tdlibClient

	listener := tdlibClient.GetListener()
	app.listener = listener

	app.ctxMu.Lock()
	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.ctxMu.Unlock()

	go app.getUpdates(listener)

	return me, nil
}

func (app *TeleApp) Client() *client.Client {
	return app.tdClient
}

func (app *TeleApp) Close() error {
	if app.tdClient == nil {
		return nil
	}

	app.ctxMu.Lock()
	if app.cancel != nil {
		app.cancel()
	}
	app.ctxMu.Unlock()

	if app.listener != nil {
		app.listener.Close()
	}

	_, err := app.tdClient.Close()
	return err
}

func (app *TeleApp) getChat(chatId int64) (*client.Chat, error) {
	// 先尝试读锁读取缓存
	app.chatsMu.RLock()
	chat, ok := app.chatsCache[chatId]
	app.chatsMu.RUnlock()
	if ok {
		return chat, nil
	}

	// 缓存未命中，获取数据
	chat, err := app.tdClient.GetChat(&client.GetChatRequest{ChatId: chatId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.chatsMu.Lock()
	app.chatsCache[chatId] = chat
	app.chatsMu.Unlock()
	return chat, nil
}

func (app *TeleApp) getUser(userId int64) (*client.User, error) {
	// 先尝试读锁读取缓存
	app.usersMu.RLock()
	user, ok := app.usersCache[userId]
	app.usersMu.RUnlock()
	if ok {
		return user, nil
	}

	// 缓存未命中，获取数据
	user, err := app.tdClient.GetUser(&client.GetUserRequest{UserId: userId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.usersMu.Lock()
	app.usersCache[userId] = user
	app.usersMu.Unlock()
	return user, nil
}

func (app *TeleApp) getUpdates(listener *client.Listener) {
	app.ctxMu.Lock()
	ctx := app.ctx
	app.ctxMu.Unlock()

	for listener.IsActive() {
		select {
		case <-ctx.Done():
			logger.Infof("[TeleApp] 更新循环已取消，退出")
			return
		case update := <-listener.Updates:
			if update.GetType() != "updateNewMessage" {
				continue
			}

			// 仅处理文本消息
			updateNewMessage := update.(*client.UpdateNewMessage)
			message := updateNewMessage.Message
			if message.Content.MessageContentType() != "messageText" {
				continue
			}

			text := message.Content.(*client.MessageText)
			if text.Text == nil || text.Text.Text == "" {
				continue
			}

			// 获取来源Chat信息
			chat, err := app.getChat(message.ChatId)
			if err != nil {
				logger.Warnf("[TeleApp] 获取聊天信息失败, id: %d, %v", message.ChatId, err)
				continue
			}

			logger.Debugf("[TeleApp] 接收消息: %s[%d] -> %s", chat.Title, chat.Id, text.Text.Text)

			// 过滤私聊和密聊
			switch chat.Type.ChatTypeType() {
			case client.TypeChatTypePrivate, client.TypeChatTypeSecret:
				continue
			}

			// 获取发送者信息
			senderID := int64(0)
			var senderName string
			if message.SenderId != nil {
				switch sender := message.SenderId.(type) {
				case *client.MessageSenderUser:
					senderID = sender.UserId
					user, err := app.getUser(sender.UserId)
					if err != nil {
						logger.Warnf("[TeleApp] 获取用户信息失败, id: %d, %v", sender.UserId, err)
						continue
					}
					senderName = user.FirstName
					if user.LastName != "" {
						senderName += " " + user.LastName
					}
				}
			}

			// 管理命令不入库，放到独立协程处理，避免模型调用阻塞其他群的消息入库
			content := text.Text.Text
			if strings.HasPrefix(content, "/") {
				go app.handleCommand(ctx, message.ChatId, senderID, content)
				continue
			}

			// 保存消息到数据库
			msgData := &model.MessageData{
				MessageID:  message.Id,
				ChatID:     message.ChatId,
				SenderID:   senderID,
				SenderName: senderName,
				Text:       content,
				MsgType:    "text",
				SentAt:     time.Unix(int64(message.Date), 0),
			}

			// 论坛话题线程ID作为话题标识
			if message.MessageThreadId != 0 {
				topicID := strconv.FormatInt(message.MessageThreadId, 10)
				msgData.TopicID = &topicID
			}
			if replyTo, ok := message.ReplyTo.(*client.MessageReplyToMessage); ok {
				referenceID := strconv.FormatInt(replyTo.MessageId, 10)
				msgData.ReferenceID = &referenceID
			}

			_, err = app.svcCtx.MessageModel.Create(ctx, msgData)
			if err != nil {
				logger.Errorf("[TeleApp] 保存消息失败, %v", err)
				continue
			}

			logger.Debugf("[TeleApp] 保存消息: %s[%d] -> %s: %s", chat.Title, chat.Id, senderName, content)
		}
	}
}

// isAdmin 判断用户是否在管理员列表中
func (app *TeleApp) isAdmin(userID int64) bool {
	for _, id := range app.svcCtx.Config.Summary.AdminUserIds {
		if id == userID {
			return true
		}
	}
	return false
}

// handleCommand 处理管理命令，非管理员的命令直接忽略
func (app *TeleApp) handleCommand(ctx context.Context, chatID, senderID int64, text string) {
	if !app.isAdmin(senderID) {
		logger.Debugf("[TeleApp] 忽略非管理员命令: 用户 %d -> %s", senderID, text)
		return
	}

	fields := strings.Fields(text)
	switch fields[0] {
	case "/summary":
		app.handleManualSummary(ctx, chatID)
	case "/summary_template":
		app.handleChangeTemplate(ctx, chatID, fields[1:])
	case "/enable_summary":
		app.handleSetFeature(ctx, chatID, true)
	case "/disable_summary":
		app.handleSetFeature(ctx, chatID, false)
	}
}

// handleManualSummary 手动触发生成今日总结，结果同步回复给请求者
func (app *TeleApp) handleManualSummary(ctx context.Context, chatID int64) {
	if !app.svcCtx.FeatureGate.Enabled(ctx, chatID) {
		app.reply(chatID, "该群未启用每日总结功能")
		return
	}

	logger.Infof("[TeleApp] 群组 %d 手动触发每日总结", chatID)
	result := app.svcCtx.Summarizer.Generate(ctx, chatID, time.Now())
	if result.Success {
		app.reply(chatID, result.Content)
	} else {
		app.reply(chatID, fmt.Sprintf("生成总结失败: %s", result.Err))
	}
}

// handleChangeTemplate 切换日报模板
func (app *TeleApp) handleChangeTemplate(ctx context.Context, chatID int64, args []string) {
	usage := fmt.Sprintf("无效的模板名称。可用模板: %s", strings.Join(report.PresetNames(), ", "))
	if len(args) != 1 {
		app.reply(chatID, usage)
		return
	}

	err := app.svcCtx.TemplateEngine.SetCurrent(ctx, args[0])
	if err != nil {
		if errors.Is(err, report.ErrUnknownPreset) {
			app.reply(chatID, usage)
		} else {
			logger.Errorf("[TeleApp] 切换模板失败: %v", err)
			app.reply(chatID, fmt.Sprintf("切换模板失败: %s", err))
		}
		return
	}
	app.reply(chatID, fmt.Sprintf("已切换到 %s 模板", args[0]))
}

// handleSetFeature 启用/禁用当前群的每日总结
func (app *TeleApp) handleSetFeature(ctx context.Context, chatID int64, enabled bool) {
	if err := app.svcCtx.FeatureGate.SetEnabled(ctx, chatID, enabled); err != nil {
		logger.Errorf("[TeleApp] 设置群组 %d 功能开关失败: %v", chatID, err)
		app.reply(chatID, "设置失败，请稍后重试")
		return
	}
	if enabled {
		app.reply(chatID, "已启用每日总结功能")
	} else {
		app.reply(chatID, "已禁用每日总结功能")
	}
}

// reply 发送纯文本回复
func (app *TeleApp) reply(chatID int64, text string) {
	_, err := app.tdClient.SendMessage(&client.SendMessageRequest{
		ChatId: chatID,
		InputMessageContent: &client.InputMessageText{
			Text: &client.FormattedText{Text: text},
		},
	})
	if err != nil {
		logger.Errorf("[TeleApp] 发送回复到群组 %d 失败: %v", chatID, err)
	}
}
