package mailer

import (
	"fmt"
	"html"

	"github.com/kappucake/cakeapi/internal/domain"
)

// Message is a rendered email ready for a Sender.
type Message struct {
	Subject  string
	HTMLBody string
}

// CustomerConfirmation renders the order-received email for the customer.
// The amount is the server-recomputed charge, never a client figure.
func CustomerConfirmation(intent domain.OrderIntent, paymentID string, amountRupees int64) Message {
	return Message{
		Subject: fmt.Sprintf("KappuCake — Order received (%s)", paymentID),
		HTMLBody: fmt.Sprintf(`<p>Hi <strong>%s</strong>,</p>
<p>Thank you — we have received your payment and order (Payment ID: <strong>%s</strong>).</p>
<h4>Order details</h4>
%s
<p><strong>Amount paid:</strong> ₹%d</p>
<p>We will contact you within 24 hours with final confirmation.</p>
<p>Regards,<br/>KappuCake</p>`,
			html.EscapeString(intent.Customer.Name),
			html.EscapeString(paymentID),
			detailList(intent),
			amountRupees),
	}
}

// AdminNotification renders the operator copy, with contact details up front
// so the kitchen can call the customer back.
func AdminNotification(intent domain.OrderIntent, paymentID string, amountRupees int64) Message {
	return Message{
		Subject: fmt.Sprintf("New paid order — %s (%s)", intent.Customer.Name, paymentID),
		HTMLBody: fmt.Sprintf(`<p>A payment just cleared for a new order.</p>
<p><strong>Contact:</strong> %s, %s, %s</p>
%s
<p><strong>Amount paid:</strong> ₹%d (Payment ID: %s)</p>`,
			html.EscapeString(intent.Customer.Name),
			html.EscapeString(intent.Customer.Phone),
			html.EscapeString(intent.Customer.Email),
			detailList(intent),
			amountRupees,
			html.EscapeString(paymentID)),
	}
}

func detailList(intent domain.OrderIntent) string {
	message := "—"
	if intent.CakeMessage != nil && *intent.CakeMessage != "" {
		message = *intent.CakeMessage
	}

	return fmt.Sprintf(`<ul>
<li><strong>Name:</strong> %s</li>
<li><strong>Phone:</strong> %s</li>
<li><strong>Delivery date:</strong> %s (%s)</li>
<li><strong>Address:</strong> %s</li>
<li><strong>Flavour:</strong> %s</li>
<li><strong>Weight:</strong> %g kg</li>
<li><strong>Message:</strong> %s</li>
</ul>`,
		html.EscapeString(intent.Customer.Name),
		html.EscapeString(intent.Customer.Phone),
		html.EscapeString(intent.Delivery.Date),
		html.EscapeString(string(intent.Delivery.Slot)),
		html.EscapeString(intent.Customer.Address),
		html.EscapeString(intent.Flavours.FlavourLabel()),
		intent.WeightKg,
		html.EscapeString(message))
}
