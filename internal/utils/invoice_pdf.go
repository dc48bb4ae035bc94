package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/skip2/go-qrcode"

	"github.com/SANDREQSA22/ebay-mz/internal/models"
)

// GenerateOrderQR génère le QR de suivi de commande en base64, prêt à
// mettre dans un <img src="...">
func GenerateOrderQR(order models.Order) (string, error) {
	payload := fmt.Sprintf("order:%s\ncustomer:%s\ntotal:%.2f", order.ID, order.CustomerID, order.TotalPrice)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// BuildInvoiceHTML assemble la facture HTML de la commande
func BuildInvoiceHTML(order models.Order, lines []InvoiceLine, qrBase64 string) string {
	rows := ""
	for _, line := range lines {
		rows += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td align="center">%d</td>
				<td align="right">%.2f€</td>
				<td align="right">%.2f€</td>
			</tr>`, line.Title, line.Quantity, line.UnitPrice, line.UnitPrice*float64(line.Quantity))
	}

	paid := "À régler"
	if order.IsPaid {
		paid = "Payée"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Facture %s</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 40px;">
	<h1>Facture</h1>
	<p>Commande <strong>#%s</strong> — %s — <em>%s</em></p>
	<p>Livraison : %s</p>
	<table width="100%%" cellpadding="8" style="border-collapse: collapse; border: 1px solid #ddd;">
		<tr style="background-color: #f0f0f0;">
			<th align="left">Produit</th>
			<th>Quantité</th>
			<th align="right">Prix unitaire</th>
			<th align="right">Total</th>
		</tr>
		%s
	</table>
	<h2 align="right">Total : %.2f€</h2>
	<img src="%s" width="128" height="128" alt="QR commande">
</body>
</html>`, order.ID, order.ID, order.CreatedAt.Format("02/01/2006"), paid, order.ShippingAddress, rows, order.TotalPrice, qrBase64)
}

// RenderInvoicePDF imprime la facture HTML en PDF via Chrome headless
func RenderInvoicePDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	// timeout pour éviter de bloquer
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(dataURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
