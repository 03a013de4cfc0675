package telegram

import (
	"fmt"
	"html"
	"strings"

	"printshop/internal/core/application/notification"
)

const (
	signature       = "<i>(Сообщение от EcoPrint CRM)</i>"
	noDeadlineLabel = "Не указан"
)

// Render formats a message as Telegram HTML. User-provided text is escaped.
func Render(msg notification.Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	switch msg.Kind {
	case notification.KindOrderCreated:
		return renderOrderCreated(*msg.OrderCreated), nil
	case notification.KindDeadlineReminder:
		return renderDeadlineReminder(*msg.DeadlineReminder), nil
	}
	return "", fmt.Errorf("unsupported message kind %q", msg.Kind)
}

func renderOrderCreated(p notification.OrderCreated) string {
	deadline := noDeadlineLabel
	if len(p.Items) > 0 && p.Items[0].Deadline != "" && p.Items[0].Deadline != "-" {
		deadline = p.Items[0].Deadline
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>🎉 Новый заказ! (№%s)</b>\n\n", html.EscapeString(p.OrderID))
	fmt.Fprintf(&b, "<b>Клиент:</b> %s\n", html.EscapeString(p.Client))
	fmt.Fprintf(&b, "<b>Срок сдачи:</b> %s\n\n", html.EscapeString(deadline))
	b.WriteString("<b>Состав заказа:</b>\n")
	for _, item := range p.Items {
		fmt.Fprintf(&b, "  - %s (%d шт.)", html.EscapeString(item.Name), item.Quantity)
		if item.Responsible != "" && item.Responsible != "-" {
			fmt.Fprintf(&b, ", %s", html.EscapeString(item.Responsible))
		}
		if item.Comment != "" {
			fmt.Fprintf(&b, ", %s", html.EscapeString(item.Comment))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(signature)
	return b.String()
}

func renderDeadlineReminder(p notification.DeadlineReminder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>⏰ Завтра срок сдачи (%s)</b>\n\n", html.EscapeString(p.Date))
	for _, item := range p.Items {
		fmt.Fprintf(&b, "  - %s (%d шт.), %s: %s\n",
			html.EscapeString(item.Name),
			item.Quantity,
			html.EscapeString(item.Client),
			html.EscapeString(item.Responsible),
		)
	}
	b.WriteString("\n")
	b.WriteString(signature)
	return b.String()
}
