package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
)

// ArchiveInvoice dépose la facture PDF d'une commande dans le bucket
func ArchiveInvoice(ctx context.Context, orderID string, pdf []byte) error {
	if database.MinIO == nil {
		return fmt.Errorf("MinIO non initialisé")
	}

	objectName := invoiceObjectName(orderID)
	_, err := database.MinIO.PutObject(ctx, os.Getenv("MINIO_BUCKET"), objectName,
		bytes.NewReader(pdf), int64(len(pdf)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	return err
}

// InvoiceSignedURL retourne une URL signée à durée limitée vers la facture
// archivée
func InvoiceSignedURL(ctx context.Context, orderID string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	reqParams := make(url.Values)
	presignedURL, err := database.MinIO.PresignedGetObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		invoiceObjectName(orderID),
		duration,
		reqParams,
	)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

func invoiceObjectName(orderID string) string {
	return "invoices/" + orderID + ".pdf"
}
