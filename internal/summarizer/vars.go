package summarizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fachebot/tech-daily-bot/internal/llm"
)

// buildVariables 把日期、统计指标和分析结果展开为模板变量映射
// 列表类结果被预先展开为多行文本（每个元素一段），空列表展开为空字符串
func buildVariables(date string, activeUsers, totalMessages int, botName string, result *llm.AnalysisResult) map[string]string {
	return map[string]string{
		"date":             date,
		"active_users":     strconv.Itoa(activeUsers),
		"total_messages":   strconv.Itoa(totalMessages),
		"topic_count":      strconv.Itoa(len(result.Topics)),
		"code_count":       strconv.Itoa(len(result.CodeSnippets)),
		"bot_name":         botName,
		"topics":           formatTopics(result.Topics),
		"code_snippets":    formatCodeSnippets(result.CodeSnippets),
		"issues":           formatIssues(result.Issues),
		"resources":        formatResources(result.Resources),
		"innovative_ideas": formatIdeas(result.InnovativeIdeas),
		"top_contributors": formatContributors(result.TopContributors),
	}
}

func formatTopics(topics []llm.TopicItem) string {
	var sb strings.Builder
	for i, item := range topics {
		fmt.Fprintf(&sb, "%d. %s (热度: %s)\n   %s\n", i+1, item.Name, strings.Repeat("★", item.Heat), item.Summary)
		for _, point := range item.KeyPoints {
			fmt.Fprintf(&sb, "   - %s\n", point)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatCodeSnippets(snippets []llm.CodeSnippetItem) string {
	var sb strings.Builder
	for i, item := range snippets {
		fmt.Fprintf(&sb, "### 代码片段 %d\n```%s\n%s\n```\n分析: %s\n", i+1, item.Language, item.Code, item.Analysis)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatIssues(issues []llm.IssueItem) string {
	var sb strings.Builder
	for _, item := range issues {
		fmt.Fprintf(&sb, "- %s (由 %s 提出, 状态: %s)\n  %s\n", item.Title, item.RaisedBy, item.Status, item.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatResources(resources []llm.ResourceItem) string {
	var sb strings.Builder
	for _, item := range resources {
		fmt.Fprintf(&sb, "- [%s](%s) - %s\n", item.Title, item.URL, item.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatIdeas(ideas []llm.IdeaItem) string {
	var sb strings.Builder
	for _, item := range ideas {
		fmt.Fprintf(&sb, "- %s: %s\n", item.Author, item.Content)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatContributors(contributors []llm.ContributorItem) string {
	var sb strings.Builder
	for _, item := range contributors {
		fmt.Fprintf(&sb, "- %s: %s\n", item.Name, item.Contribution)
	}
	return strings.TrimRight(sb.String(), "\n")
}
