// Package invoice renders order invoices as PDF documents and keeps one
// rendered document per order on the filesystem, addressable by order id.
package invoice

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
)

type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// Render builds the invoice document for a finalized order. Rendering reads
// only the frozen order snapshot, never live catalog data.
func (r *Renderer) Render(o model.Order, customerEmail string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Order ID: %d", o.ID))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Reference: %s", o.OrderRef))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", o.CreatedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Customer: %s", customerEmail))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range o.Items {
		name := it.NameSnapshot
		if len(name) > 40 {
			name = name[:40]
		}
		pdf.CellFormat(90, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", it.Qty), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%s %s", o.Currency, it.UnitPrice.StringFixed(2)), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%s %s", o.Currency, it.Subtotal.StringFixed(2)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Total: %s %s", o.Currency, o.TotalAmount.StringFixed(2)), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

// Store keeps rendered documents under one directory, one file per order.
type Store struct{ dir string }

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("invoice dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Path(orderID uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("invoice_order_%d.pdf", orderID))
}

// Write persists the document for an order, overwriting any previous render.
// Regeneration is therefore idempotent: same order id, same path.
func (s *Store) Write(orderID uint, data []byte) (string, error) {
	path := s.Path(orderID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) Read(orderID uint) ([]byte, error) {
	return os.ReadFile(s.Path(orderID))
}

func (s *Store) Exists(orderID uint) bool {
	_, err := os.Stat(s.Path(orderID))
	return err == nil
}
