// Package statementservice renders a customer's transaction history as a
// printable PDF statement.
package statementservice

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/domain"
)

//go:generate mockgen -source=statementservice.go -destination=statementservice_mock.go -package=statementservice

type CustomerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type TransactionRepo interface {
	ListByCustomer(ctx context.Context, customerID int64, order domain.SortOrder) ([]domain.Transaction, error)
}

type Service struct {
	customerRepo    CustomerRepo
	transactionRepo TransactionRepo
	now             func() time.Time
}

func New(customerRepo CustomerRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Statement is a rendered PDF together with the customer name, which the
// transport layer uses to build the download filename.
type Statement struct {
	CustomerName string
	PDF          []byte
}

// Export renders the customer's full chronological history. Every page
// break is driven by the running y position rather than auto page break,
// so the totals block always stays attached to the last line.
func (s *Service) Export(ctx context.Context, customerID int64) (*Statement, error) {
	pdf, customer, err := s.build(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	return &Statement{CustomerName: customer.Name, PDF: buf.Bytes()}, nil
}

const pageBottom = 270.0

func (s *Service) build(ctx context.Context, customerID int64) (*gofpdf.Fpdf, *domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if customer == nil {
		return nil, nil, fmt.Errorf("customer %d: %w", customerID, apperrors.ErrNotFound)
	}

	transactions, err := s.transactionRepo.ListByCustomer(ctx, customerID, domain.Chronological)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Resumo de %s", customer.Name)), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	issued := s.now().Format("02/01/2006 15:04")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Data de emissão: %s", issued)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	totalPurchased := decimal.Zero
	totalPaid := decimal.Zero

	pdf.SetFont("Arial", "", 11)
	for _, t := range transactions {
		if pdf.GetY() > pageBottom {
			pdf.AddPage()
			pdf.SetFont("Arial", "", 11)
		}
		line := fmt.Sprintf("%s - Compra: R$ %s | Pago: R$ %s",
			t.Date, t.PurchaseAmount.StringFixed(2), t.PaidAmount.StringFixed(2))
		pdf.CellFormat(0, 7, tr(line), "", 1, "L", false, 0, "")

		totalPurchased = totalPurchased.Add(t.PurchaseAmount)
		totalPaid = totalPaid.Add(t.PaidAmount)
	}

	if pdf.GetY() > pageBottom-24 {
		pdf.AddPage()
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Total Compras: R$ %s", totalPurchased.StringFixed(2))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Total Pago: R$ %s", totalPaid.StringFixed(2))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Saldo Devedor: R$ %s", totalPurchased.Sub(totalPaid).StringFixed(2))), "", 1, "L", false, 0, "")

	return pdf, customer, nil
}
