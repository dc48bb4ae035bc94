package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

// InvoiceLine : une ligne de commande enrichie du titre et du prix courant
// du produit, pour l'email et la facture.
type InvoiceLine struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

// SendOrderConfirmation envoie l'email de confirmation de commande, avec
// la facture PDF en pièce jointe quand elle a pu être générée.
func SendOrderConfirmation(to string, order models.Order, lines []InvoiceLine, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "noreply@ebay-mz.example"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Confirmation de votre commande #%s", order.ID))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order, lines))

	if pdfAttachment != nil {
		msg.AttachReader(fmt.Sprintf("facture_%s.pdf", order.ID), bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

func orderConfirmationHTML(order models.Order, lines []InvoiceLine) string {
	itemsHTML := ""
	for _, line := range lines {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f€</td>
				<td>%.2f€</td>
			</tr>`, line.Title, line.Quantity, line.UnitPrice, line.UnitPrice*float64(line.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Confirmation de votre commande</h2>
		<p>Bonjour,</p>
		<p>Votre commande <strong>#%s</strong> a bien été enregistrée.</p>
		<table width="100%%" cellpadding="8" style="border-collapse: collapse;">
			<tr style="background-color: #f0f0f0;">
				<th align="left">Produit</th>
				<th align="left">Quantité</th>
				<th align="left">Prix unitaire</th>
				<th align="left">Total</th>
			</tr>
			%s
		</table>
		<p style="font-size: 18px;"><strong>Total : %.2f€</strong></p>
		<p>Adresse de livraison : %s</p>
		<p>Merci pour votre confiance !</p>
	</div>
</body>
</html>`, order.ID, itemsHTML, order.TotalPrice, order.ShippingAddress)
}
