package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	monthlyRevenueReportTable = "monthly_revenue_report mrr"
)

type MonthlyRevenueReportRepository interface {
	GetByPeriod(ctx context.Context, period string) (*domain.MonthlyRevenueReport, error)
	SaveOrUpdate(ctx context.Context, report *domain.MonthlyRevenueReport) error
	GetAllPeriods(ctx context.Context) ([]string, error)
}

type monthlyRevenueReportRepository struct {
	conn postgres.Queryer
}

func NewMonthlyRevenueReportRepository(conn postgres.Queryer) MonthlyRevenueReportRepository {
	return &monthlyRevenueReportRepository{
		conn: conn,
	}
}

func (r *monthlyRevenueReportRepository) GetByPeriod(ctx context.Context, period string) (*domain.MonthlyRevenueReport, error) {
	query, args, err := squirrel.
		Select(
			"mrr.id",
			"mrr.period",
			"mrr.revenue",
			"mrr.sales_count",
			"mrr.average_ticket",
			"mrr.services_completed",
			"mrr.services_revenue",
			"mrr.invoices_paid",
			"mrr.invoices_amount",
			"mrr.created_at",
			"mrr.updated_at",
		).
		From(monthlyRevenueReportTable).
		Where(squirrel.Eq{"mrr.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.MonthlyRevenueReport{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&report.ID,
		&report.Period,
		&report.Revenue,
		&report.SalesCount,
		&report.AverageTicket,
		&report.ServicesCompleted,
		&report.ServicesRevenue,
		&report.InvoicesPaid,
		&report.InvoicesAmount,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório mensal: %w", err)
	}

	return report, nil
}

// SaveOrUpdate grava o relatório do período, substituindo os valores se ele já existir
func (r *monthlyRevenueReportRepository) SaveOrUpdate(ctx context.Context, report *domain.MonthlyRevenueReport) error {
	if report.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do relatório: %w", err)
		}
		report.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_revenue_report").
		Columns(
			"id",
			"period",
			"revenue",
			"sales_count",
			"average_ticket",
			"services_completed",
			"services_revenue",
			"invoices_paid",
			"invoices_amount",
		).
		Values(
			report.ID,
			report.Period,
			report.Revenue,
			report.SalesCount,
			report.AverageTicket,
			report.ServicesCompleted,
			report.ServicesRevenue,
			report.InvoicesPaid,
			report.InvoicesAmount,
		).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				revenue = EXCLUDED.revenue,
				sales_count = EXCLUDED.sales_count,
				average_ticket = EXCLUDED.average_ticket,
				services_completed = EXCLUDED.services_completed,
				services_revenue = EXCLUDED.services_revenue,
				invoices_paid = EXCLUDED.invoices_paid,
				invoices_amount = EXCLUDED.invoices_amount,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar relatório mensal: %w", err)
	}

	return nil
}

// GetAllPeriods devolve os períodos armazenados em ordem cronológica
func (r *monthlyRevenueReportRepository) GetAllPeriods(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("monthly_revenue_report").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// mm-yyyy não ordena cronologicamente como texto
	sort.SliceStable(periods, func(i, j int) bool {
		return periodKey(periods[i]).Before(periodKey(periods[j]))
	})

	return periods, nil
}

func periodKey(period string) time.Time {
	t, err := domain.ParsePeriod(period, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
