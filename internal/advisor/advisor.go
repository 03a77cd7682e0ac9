// Package advisor talks to Gemini for spending advice and receipt reading.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dream/internal/models"
)

// Canned answers shown instead of model output.
const (
	EmptyAnswer   = "我现在无法进行分析。"
	FailureAnswer = "抱歉，我现在连接财务大脑出现了一些问题，请稍后再试。"
)

// ErrUnavailable is returned by ParseReceipt when no model is configured.
var ErrUnavailable = errors.New("advisor: not configured")

// Advisor answers questions about the ledger and reads receipts.
type Advisor interface {
	// Advise never fails; problems turn into one of the canned answers.
	Advise(ctx context.Context, query string, history []models.Transaction) string
	ParseReceipt(ctx context.Context, image []byte, mimeType string) (models.ReceiptData, error)
	Close() error
}

// HistoryLine condenses one transaction for the advice prompt.
func HistoryLine(t models.Transaction) string {
	return fmt.Sprintf("%s: %s ¥%s，类别：%s (%s)",
		t.Date.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		t.Type.Label(),
		t.Amount.String(),
		t.CategoryLabel(),
		t.Note,
	)
}

// AdvicePrompt builds the advisor prompt from the question and history.
func AdvicePrompt(query string, history []models.Transaction) string {
	lines := make([]string, 0, len(history))
	for _, t := range history {
		lines = append(lines, HistoryLine(t))
	}

	var b strings.Builder
	b.WriteString("你是一位乐于助人且精明的中文财务顾问，名叫 Dream 助手。\n")
	b.WriteString("这是用户近期的交易记录：\n---\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n---\n")
	b.WriteString("用户问题：" + query + "\n\n")
	b.WriteString("请用中文简洁地回答，并尽可能提供可操作的建议。\n")
	b.WriteString("使用 Markdown 格式。金额符号请使用 ¥。\n")
	return b.String()
}

// ReceiptPrompt asks for amount, date, merchant and a category chosen from
// categories.
func ReceiptPrompt(categories []string) string {
	return "请分析这张收据图片。提取总金额（amount）、日期（格式为 ISO YYYY-MM-DD）、\n" +
		"商户名称（merchant）。\n" +
		"并从以下主分类中推断最合适的类别（category）：\n" +
		"[" + strings.Join(categories, ", ") + "]。\n" +
		"请只返回主分类名称。如果找不到某个字段，请返回 null。\n"
}

// Disabled is used when no API key is configured.
type Disabled struct{}

func (Disabled) Advise(context.Context, string, []models.Transaction) string {
	return FailureAnswer
}

func (Disabled) ParseReceipt(context.Context, []byte, string) (models.ReceiptData, error) {
	return models.ReceiptData{}, ErrUnavailable
}

func (Disabled) Close() error { return nil }

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
