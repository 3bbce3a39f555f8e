package payment

import (
	"fmt"

	"github.com/socialynx/backend/pkg/catalog"
	"github.com/socialynx/backend/pkg/email"
)

// receiptEmail builds the transactional receipt sent after a successful
// payment.
func receiptEmail(to string, plan catalog.Plan) email.SendEmailParams {
	amount := fmt.Sprintf("%s %s", FormatMajorUnits(plan.PriceMinorUnits), plan.Currency)
	return email.SendEmailParams{
		SendTo:  to,
		Subject: "Your SociaLynx PRO receipt",
		Tag:     "payment-receipt",
		BodyHTML: fmt.Sprintf(
			`<h2>Thanks for your purchase!</h2>`+
				`<p>Your payment of <strong>%s</strong> for <strong>%s</strong> was received.</p>`+
				`<p>PRO access is active for the next %d days.</p>`,
			amount, plan.Description, plan.DurationDays),
	}
}
