package backend

import (
	"context"
	"time"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

const (
	salesTable        = "sales"
	saleItemsTable    = "sale_items"
	servicesTable     = "services"
	invoicesTable     = "invoices"
	productsTable     = "products"
	customersTable    = "customers"
	appointmentsTable = "appointments"
)

const (
	salesColumns     = "id,total_amount,sale_date,customer_id"
	saleItemsColumns = "id,product_id,quantity,subtotal,product:products(name)"
	servicesColumns  = "id,service_type,status,completed_date,labor_cost,materials_cost,technician:user_profiles(full_name)"
	invoicesColumns  = "id,status,total,paid_date,issue_date"
	productsColumns  = "id,name,stock,min_stock"
)

// Range limita a busca pela coluna de data de cada tabela; To é o último instante
// incluído e extremos zerados não filtram
type Range struct {
	From time.Time
	To   time.Time
}

func (r Range) filters(column string) []backendclient.Filter {
	filters := make([]backendclient.Filter, 0, 2)
	if !r.From.IsZero() {
		filters = append(filters, backendclient.Gte(column, r.From.Format(time.RFC3339Nano)))
	}
	if !r.To.IsZero() {
		filters = append(filters, backendclient.Lt(column, exclusiveEnd(r.To).Format(time.RFC3339Nano)))
	}
	return filters
}

// exclusiveEnd converte o último instante da janela no limite aberto seguinte.
// O banco guarda microssegundos, então um lte com nanossegundos arredondaria
// para o início do próximo período.
func exclusiveEnd(to time.Time) time.Time {
	return to.Truncate(time.Microsecond).Add(time.Microsecond)
}

// RecordStore lê as tabelas de negócio do backend já com os joins resolvidos
type RecordStore interface {
	ListSales(ctx context.Context, r Range) ([]domain.SaleRow, error)
	// ListSaleItems filtra pela data da venda a que o item pertence
	ListSaleItems(ctx context.Context, r Range) ([]domain.SaleItemRow, error)
	// ListServices filtra por completed_date quando o intervalo é informado
	ListServices(ctx context.Context, r Range) ([]domain.ServiceRow, error)
	// ListInvoices filtra por paid_date quando o intervalo é informado
	ListInvoices(ctx context.Context, r Range) ([]domain.InvoiceRow, error)
	ListProducts(ctx context.Context) ([]domain.ProductRow, error)
	CountCustomers(ctx context.Context) (int, error)
	CountAppointments(ctx context.Context, status string) (int, error)
}

type Service struct {
	Client backendclient.Client
}

func New(client backendclient.Client) RecordStore {
	return &Service{
		Client: client,
	}
}

func (s *Service) ListSales(ctx context.Context, r Range) ([]domain.SaleRow, error) {
	return backendclient.SelectAll[domain.SaleRow](ctx, s.Client, salesTable, backendclient.Query{
		Select:  salesColumns,
		Filters: r.filters("sale_date"),
		Order:   "sale_date.asc,id.asc",
	})
}

func (s *Service) ListSaleItems(ctx context.Context, r Range) ([]domain.SaleItemRow, error) {
	query := backendclient.Query{
		Select: saleItemsColumns,
		Order:  "id.asc",
	}

	if filters := r.filters("sale.sale_date"); len(filters) > 0 {
		query.Select += ",sale:sales!inner(sale_date)"
		query.Filters = filters
	}

	return backendclient.SelectAll[domain.SaleItemRow](ctx, s.Client, saleItemsTable, query)
}

func (s *Service) ListServices(ctx context.Context, r Range) ([]domain.ServiceRow, error) {
	return backendclient.SelectAll[domain.ServiceRow](ctx, s.Client, servicesTable, backendclient.Query{
		Select:  servicesColumns,
		Filters: r.filters("completed_date"),
		Order:   "id.asc",
	})
}

func (s *Service) ListInvoices(ctx context.Context, r Range) ([]domain.InvoiceRow, error) {
	return backendclient.SelectAll[domain.InvoiceRow](ctx, s.Client, invoicesTable, backendclient.Query{
		Select:  invoicesColumns,
		Filters: r.filters("paid_date"),
		Order:   "id.asc",
	})
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.ProductRow, error) {
	return backendclient.SelectAll[domain.ProductRow](ctx, s.Client, productsTable, backendclient.Query{
		Select: productsColumns,
		Order:  "name.asc,id.asc",
	})
}

func (s *Service) CountCustomers(ctx context.Context) (int, error) {
	return s.Client.Count(ctx, customersTable)
}

func (s *Service) CountAppointments(ctx context.Context, status string) (int, error) {
	if status == "" {
		return s.Client.Count(ctx, appointmentsTable)
	}

	return s.Client.Count(ctx, appointmentsTable, backendclient.Eq("status", status))
}
