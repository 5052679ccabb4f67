package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats são os indicadores gerais do negócio
type DashboardStats struct {
	TotalSales          int             `json:"total_sales"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	AverageOrderValue   decimal.Decimal `json:"average_order_value"`
	TotalCustomers      int             `json:"total_customers"`
	TotalProducts       int             `json:"total_products"`
	LowStockProducts    int             `json:"low_stock_products"`
	PendingAppointments int             `json:"pending_appointments"`
	RecentSalesGrowth   DeltaMetric     `json:"recent_sales_growth"`
}

// DashboardResponse é o view-model completo do dashboard analítico
type DashboardResponse struct {
	Period         ReportingPeriod  `json:"period"`
	Window         PeriodWindow     `json:"window"`
	Stats          DashboardStats   `json:"stats"`
	Sales          PeriodComparison `json:"sales"`
	Services       PeriodComparison `json:"services"`
	Invoices       PeriodComparison `json:"invoices"`
	SalesSeries    []BucketPoint    `json:"sales_series"`
	ServicesSeries []BucketPoint    `json:"services_series"`
	MonthlyRevenue []BucketPoint    `json:"monthly_revenue"`
	TopProducts    []RankingItem    `json:"top_products"`
	TopTechnicians []RankingItem    `json:"top_technicians"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// MetricSource identifica a origem dos registros de uma série
type MetricSource string

const (
	SourceSales    MetricSource = "sales"
	SourceServices MetricSource = "services"
	SourceInvoices MetricSource = "invoices"
)

// SeriesResponse é a resposta de uma série isolada
type SeriesResponse struct {
	Source     MetricSource     `json:"source"`
	Period     ReportingPeriod  `json:"period"`
	Comparison PeriodComparison `json:"comparison"`
	Points     []BucketPoint    `json:"points"`
}
