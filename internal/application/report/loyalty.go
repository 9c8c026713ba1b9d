package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/loyalty"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/clock"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// LoyaltySheetName nombre de la única hoja del reporte de fidelización.
const LoyaltySheetName = "Clientes Fidelización"

var loyaltyHeaders = []string{
	"Tipo de Documento",
	"Número de Documento",
	"Nombre Completo",
	"Email",
	"Teléfono",
	"Total Compras Último Mes",
	"Número Total de Compras",
	"Cliente Desde",
}

// LoyaltyConfig parámetros del reporte.
type LoyaltyConfig struct {
	Threshold decimal.Decimal // vacío = loyalty.DefaultThreshold
	Location  *time.Location  // zona para calcular el mes anterior
}

// LoyaltyUseCase genera el reporte de clientes que superaron el umbral de compras
// durante el mes calendario anterior.
type LoyaltyUseCase struct {
	reports repository.ReportRepository
	writer  SpreadsheetWriter
	clock   clock.Clock
	cfg     LoyaltyConfig
	log     *logger.Logger
}

// NewLoyaltyUseCase construye el caso de uso.
func NewLoyaltyUseCase(reports repository.ReportRepository, writer SpreadsheetWriter, clk clock.Clock, cfg LoyaltyConfig, log *logger.Logger) *LoyaltyUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Threshold.IsZero() {
		cfg.Threshold = loyalty.DefaultThreshold
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LoyaltyUseCase{reports: reports, writer: writer, clock: clk, cfg: cfg, log: log}
}

// Generate arma clientes_fidelizacion_<YYYY-MM>.xlsx. Sin clientes que califiquen
// devuelve domain.ErrNotFound.
func (uc *LoyaltyUseCase) Generate(ctx context.Context) (*dto.FileDTO, error) {
	period := loyalty.PreviousMonth(uc.clock.Now(), uc.cfg.Location)

	candidates, err := uc.reports.LoyaltyCandidates(ctx, period.Start, period.End, uc.cfg.Threshold)
	if err != nil {
		return nil, fmt.Errorf("loyalty: consultar candidatos: %w", err)
	}

	qualified := make([]repository.LoyaltyCandidate, 0, len(candidates))
	for _, c := range candidates {
		if loyalty.Qualifies(c.MonthTotal, uc.cfg.Threshold) {
			qualified = append(qualified, c)
		}
	}
	if len(qualified) == 0 {
		uc.log.Info().Str("period", period.Label()).Msg("reporte de fidelización sin clientes")
		return nil, domain.ErrNotFound
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		a, b := qualified[i], qualified[j]
		if !a.MonthTotal.Equal(b.MonthTotal) {
			return a.MonthTotal.GreaterThan(b.MonthTotal)
		}
		return a.Customer.DocumentNumber < b.Customer.DocumentNumber
	})

	rows := make([][]any, 0, len(qualified))
	for _, c := range qualified {
		rows = append(rows, []any{
			c.Customer.DocumentTypeName,
			c.Customer.DocumentNumber,
			c.Customer.FullName(),
			c.Customer.Email,
			c.Customer.Phone,
			c.MonthTotal,
			c.TotalPurchases,
			c.Customer.CreatedAt.In(uc.cfg.Location).Format("2006-01-02"),
		})
	}
	content, err := uc.writer.Write([]Sheet{{Name: LoyaltySheetName, Headers: loyaltyHeaders, Rows: rows}})
	if err != nil {
		return nil, fmt.Errorf("loyalty: escribir xlsx: %w", err)
	}

	uc.log.Info().
		Str("period", period.Label()).
		Int("customers", len(rows)).
		Str("threshold", uc.cfg.Threshold.String()).
		Msg("reporte de fidelización generado")

	return &dto.FileDTO{
		Filename:    fmt.Sprintf("clientes_fidelizacion_%s.xlsx", period.Label()),
		ContentType: XLSXContentType,
		Content:     content,
	}, nil
}
