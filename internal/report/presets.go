package report

// 预设模板正文。占位符支持 ${key} 和 {key} 两种写法，
// 列表类变量（topics、issues 等）由调用方预先展开为多行文本后再绑定。

const presetConcise = `# {date} 技术社区日报 - 简洁版

## 今日概览
活跃用户数：${active_users}
消息总数：${total_messages}

## 🎯 热点话题
${topics}

## ⚠️ 待解决问题
${issues}

🤖 由 ${bot_name} 生成
`

const presetTechnical = `# {date} 技术社区日报 - 技术详细版

## 📊 数据统计
- 活跃讨论者：${active_users}人
- 技术话题数：${topic_count}个
- 代码分享数：${code_count}段
- 总消息量：${total_messages}条

## 🎯 技术话题榜
${topics}

## 💻 代码分析
${code_snippets}

## ⚠️ 技术难题追踪
${issues}

## 📚 学习资源
${resources}

🤖 由 ${bot_name} 基于 ${total_messages} 条消息生成
`

const presetCommunity = `# {date} 技术社区日报 - 社区互动版

## 👥 今日社区数据
活跃成员：${active_users}
消息总量：${total_messages}
讨论话题数：${topic_count}

## 🌟 精彩讨论
${topics}

## 💡 创新想法墙
${innovative_ideas}

## 👏 今日贡献者
${top_contributors}

🤖 由 ${bot_name} 用 ❤️ 生成
`

type preset struct {
	name        string
	content     string
	description string
}

// presets 固定的三套预设，启动时只在缺失的情况下写入存储
var presets = []preset{
	{name: "concise", content: presetConcise, description: "简洁版"},
	{name: "technical", content: presetTechnical, description: "技术详细版"},
	{name: "community", content: presetCommunity, description: "社区互动版"},
}

// IsPreset 判断名称是否属于固定预设集合
func IsPreset(name string) bool {
	for _, p := range presets {
		if p.name == name {
			return true
		}
	}
	return false
}

// PresetNames 返回全部预设名称，顺序固定
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.name)
	}
	return names
}
