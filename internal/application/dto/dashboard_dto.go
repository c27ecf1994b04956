package dto

// SummaryResponse resumen del dashboard: conteos globales de usuarios y entregas.
type SummaryResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	AdminUsers        int64 `json:"adminUsers"`
	TotalDeliveries   int64 `json:"totalDeliveries"`
	OnTimeDeliveries  int64 `json:"onTimeDeliveries"`
	DelayedDeliveries int64 `json:"delayedDeliveries"`
}
