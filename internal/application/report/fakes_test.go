package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

type stubCustomers struct {
	repository.CustomerRepository
	list []*entity.Customer
	err  error
}

func (s *stubCustomers) ListByDocumentPrefix(_ context.Context, prefix string) ([]*entity.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Customer
	for _, c := range s.list {
		if strings.HasPrefix(c.DocumentNumber, prefix) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCustomers) GetByDocumentNumber(_ context.Context, doc string) (*entity.Customer, error) {
	for _, c := range s.list {
		if c.DocumentNumber == doc {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

type stubPurchases struct {
	repository.PurchaseRepository
	recent     map[int64][]*entity.Purchase
	history    map[int64][]repository.PurchaseHistoryRow
	askedIDs   []int64
	askedLimit int
}

func (s *stubPurchases) ListRecentByCustomers(_ context.Context, ids []int64, limit int) (map[int64][]*entity.Purchase, error) {
	s.askedIDs = ids
	s.askedLimit = limit
	return s.recent, nil
}

func (s *stubPurchases) ListHistoryByCustomer(_ context.Context, id int64) ([]repository.PurchaseHistoryRow, error) {
	return s.history[id], nil
}

type stubReports struct {
	candidates []repository.LoyaltyCandidate
	err        error
	from, to   time.Time
	threshold  decimal.Decimal
}

func (s *stubReports) LoyaltyCandidates(_ context.Context, from, to time.Time, threshold decimal.Decimal) ([]repository.LoyaltyCandidate, error) {
	s.from, s.to, s.threshold = from, to, threshold
	return s.candidates, s.err
}

// captureWriter guarda las hojas recibidas en lugar de generar el xlsx.
type captureWriter struct {
	sheets []Sheet
	err    error
}

func (w *captureWriter) Write(sheets []Sheet) ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.sheets = sheets
	return []byte("xlsx"), nil
}

type capturePDF struct {
	customer *entity.Customer
	history  []repository.PurchaseHistoryRow
}

func (p *capturePDF) GenerateStatement(_ context.Context, c *entity.Customer, h []repository.PurchaseHistoryRow) ([]byte, error) {
	p.customer, p.history = c, h
	return []byte("%PDF"), nil
}

var errBoom = errors.New("conexión perdida")
