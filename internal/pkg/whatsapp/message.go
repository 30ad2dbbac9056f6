package whatsapp

import (
	"fmt"
	"strings"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const separator = "----------------------------"

// OrderSummary formats a new order for the store's chat.
func OrderSummary(storeName string, o model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s - NOVO PEDIDO*\n%s\n", strings.ToUpper(storeName), separator)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "📞 *WhatsApp:* %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "🛵 *Tipo:* %s\n", o.Delivery())
	if o.Delivery() == model.DeliveryMethodDelivery && o.CustomerAddress != "" {
		fmt.Fprintf(&b, "📍 *Endereço:* %s\n", o.CustomerAddress)
	}
	fmt.Fprintf(&b, "💳 *Pagamento:* %s\n", o.Payment())
	if o.Payment() == model.PaymentMethodCash && o.ChangeDue != nil {
		fmt.Fprintf(&b, "💵 *Troco para:* R$ %.2f\n", *o.ChangeDue)
	}
	b.WriteString(separator + "\n\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "• %dx %s\n", item.Qty, item.Name)
	}
	fmt.Fprintf(&b, "\n*TOTAL: R$ %.2f*", o.Total)
	return b.String()
}

// HasStatusMessage reports whether entering status notifies the customer.
func HasStatusMessage(status model.OrderStatus) bool {
	switch status {
	case model.OrderStatusReceived, model.OrderStatusPreparing, model.OrderStatusOutForDelivery:
		return true
	default:
		return false
	}
}

// StatusMessage returns the customer message for entering status.
// confirmURL is only used by the out-for-delivery template.
func StatusMessage(storeName string, o model.Order, status model.OrderStatus, confirmURL string) (string, bool) {
	switch status {
	case model.OrderStatusReceived:
		return fmt.Sprintf("Olá %s! Recebemos seu pedido #%s na %s. Já já ele entra em preparo! ✅",
			o.CustomerName, o.ID, storeName), true
	case model.OrderStatusPreparing:
		return fmt.Sprintf("Olá %s! Seu pedido #%s da %s está sendo preparado agora. 👩‍🍳🔥",
			o.CustomerName, o.ID, storeName), true
	case model.OrderStatusOutForDelivery:
		return fmt.Sprintf("Olá %s! Seu pedido #%s da %s saiu para entrega! 🛵💨\n\n"+
			"*Por favor, clique no link abaixo para confirmar o recebimento quando o entregador chegar:*\n%s",
			o.CustomerName, o.ID, storeName, confirmURL), true
	default:
		return "", false
	}
}

// ConfirmURL builds the public delivery confirmation link for the order.
func ConfirmURL(baseURL string, o model.Order) string {
	return strings.TrimRight(baseURL, "/") + "/confirm?token=" + escape(o.ConfirmationKey())
}

// StatusNotification composes the outbound notification for entering status.
func StatusNotification(storeName, baseURL string, o model.Order, status model.OrderStatus) (*model.Notification, bool) {
	text, ok := StatusMessage(storeName, o, status, ConfirmURL(baseURL, o))
	if !ok {
		return nil, false
	}
	phone := NormalizePhone(o.CustomerPhone)
	return &model.Notification{
		OrderID: o.ID,
		Status:  status,
		Phone:   phone,
		Text:    text,
		URL:     SendLink(phone, text),
	}, true
}
