package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusAssigned   ServiceStatus = "assigned"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusCancelled  ServiceStatus = "cancelled"
)

var ServiceStatuses = []ServiceStatus{
	ServiceStatusPending,
	ServiceStatusAssigned,
	ServiceStatusInProgress,
	ServiceStatusCompleted,
	ServiceStatusCancelled,
}

type TechnicianRef struct {
	FullName string `json:"full_name"`
}

// ServiceRow é uma ordem de serviço; o técnico só vem preenchido quando o join resolve
type ServiceRow struct {
	ID            string         `json:"id"`
	ServiceType   Category       `json:"service_type"`
	Status        ServiceStatus  `json:"status"`
	CompletedDate *string        `json:"completed_date"`
	LaborCost     *float64       `json:"labor_cost"`
	MaterialsCost *float64       `json:"materials_cost"`
	Technician    *TechnicianRef `json:"technician"`
}

// Revenue soma mão de obra e materiais
func (s ServiceRow) Revenue() decimal.Decimal {
	total := decimal.Zero
	if s.LaborCost != nil {
		total = total.Add(decimal.NewFromFloat(*s.LaborCost))
	}
	if s.MaterialsCost != nil {
		total = total.Add(decimal.NewFromFloat(*s.MaterialsCost))
	}

	return total
}

// CompletedServicesToRecords converte os serviços concluídos em registros de métrica
func CompletedServicesToRecords(services []ServiceRow, loc *time.Location) []MetricRecord {
	records := make([]MetricRecord, 0, len(services))
	for _, service := range services {
		if service.Status != ServiceStatusCompleted {
			continue
		}

		completedDate := ""
		if service.CompletedDate != nil {
			completedDate = *service.CompletedDate
		}

		amount, _ := service.Revenue().Float64()
		records = append(records, NewMetricRecord(completedDate, &amount, service.ServiceType, loc))
	}

	return records
}

// ServicesToTechnicianContributions gera as contribuições dos serviços concluídos por técnico
func ServicesToTechnicianContributions(services []ServiceRow) []RankingContribution {
	contributions := make([]RankingContribution, 0, len(services))
	for _, service := range services {
		if service.Status != ServiceStatusCompleted {
			continue
		}

		name := ""
		if service.Technician != nil {
			name = service.Technician.FullName
		}

		contributions = append(contributions, RankingContribution{
			Key:      name,
			Quantity: 1,
			Revenue:  service.Revenue(),
		})
	}

	return contributions
}

// ServiceStatusSummary conta os serviços por estado
type ServiceStatusSummary struct {
	Total    int                   `json:"total"`
	ByStatus map[ServiceStatus]int `json:"by_status"`
}

func SummarizeServices(services []ServiceRow) ServiceStatusSummary {
	summary := ServiceStatusSummary{
		ByStatus: make(map[ServiceStatus]int, len(ServiceStatuses)),
	}
	for _, status := range ServiceStatuses {
		summary.ByStatus[status] = 0
	}

	for _, service := range services {
		summary.ByStatus[service.Status]++
		summary.Total++
	}

	return summary
}
