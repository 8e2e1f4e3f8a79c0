package render

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/longkey1/ragechat/internal/ragechat"
)

// CodeWarning is appended to every code block header.
const CodeWarning = "(NOTE: DO NOT RUN THIS)"

// HTML renders messages as the chat widget markup.
//
// Only code block bodies are escaped. Plain text around them, and user
// messages, are emitted verbatim, so content must come from a trusted source
// (the canned response pack) or be escaped by the caller.
type HTML struct {
	// NewID returns the element id linking a copy button to its code block.
	NewID func() string
}

// NewHTML returns an HTML renderer using random UUID element ids.
func NewHTML() *HTML {
	return &HTML{NewID: uuid.NewString}
}

// FormatContent returns the inner markup of a message's text. Code fences are
// replaced with code widgets for ai messages that contain a fence marker;
// everything else is returned unchanged.
func (h *HTML) FormatContent(m ragechat.Message) string {
	if m.Sender != ragechat.SenderAI || !strings.Contains(m.Content, FenceMarker) {
		return m.Content
	}

	var b strings.Builder
	for _, s := range Split(m.Content) {
		if s.Block == nil {
			b.WriteString(s.Text)
			continue
		}
		h.writeCodeBlock(&b, *s.Block)
	}
	return b.String()
}

func (h *HTML) writeCodeBlock(b *strings.Builder, cb CodeBlock) {
	id := "code-" + h.NewID()
	fmt.Fprintf(b, `
<div class="code-block">
    <div class="code-header">
        <span>%s %s</span>
        <button class="copy-btn" data-target="%s">
            <i class="fas fa-copy"></i>
        </button>
    </div>
    <pre><code id="%s">%s</code></pre>
</div>
`, cb.Language, CodeWarning, id, id, EscapeHTML(cb.Code))
}

// RenderMessage returns the full message element.
func (h *HTML) RenderMessage(m ragechat.Message) string {
	avatar := "fas fa-user"
	if m.Sender == ragechat.SenderAI {
		avatar = "fas fa-robot"
	}
	return fmt.Sprintf(`<div class="message %s-message">
    <div class="message-avatar">
        <i class="%s"></i>
    </div>
    <div class="message-content">
        <div class="message-text">%s</div>
        <div class="message-time">%s</div>
    </div>
</div>
`, m.Sender, avatar, h.FormatContent(m), m.Timestamp)
}

// Document renders a standalone transcript page.
func (h *HTML) Document(theme ragechat.Theme, messages []ragechat.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html data-theme=\"%s\">\n<head>\n<meta charset=\"utf-8\">\n<title>ragechat transcript</title>\n</head>\n<body>\n<div id=\"chatMessages\" class=\"chat-messages\">\n", theme)
	for _, m := range messages {
		b.WriteString(h.RenderMessage(m))
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}
