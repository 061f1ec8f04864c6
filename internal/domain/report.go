package domain

import "time"

// Tipos de pedido aceitos nos relatórios particionados por amostra
const (
	OrderTypeMain   = "main"
	OrderTypeSample = "sample"
)

// ReportScope é o recorte de uma consulta de relatório: cliente, dataset,
// websites e intervalo de datas (inclusivo nas duas pontas).
type ReportScope struct {
	ClientID  string
	DatasetID string
	Website   WebsiteScope
	StartDate time.Time
	EndDate   time.Time
}

// SalesTotals são os totais absolutos do período
type SalesTotals struct {
	TotalSales      float64 `json:"total_sales"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	TotalSessions   int     `json:"total_sessions"`
	TotalMediaSpend float64 `json:"total_media_spend"`
}

// SalesKPIs são as métricas derivadas dos totais. Divisões por zero
// resultam sempre em 0.
type SalesKPIs struct {
	AOV         float64 `json:"aov"`
	CVR         float64 `json:"cvr"`
	BlendedROAS float64 `json:"blended_roas"`
	CPA         float64 `json:"cpa"`
}

type SalesDailyRow struct {
	Date            string  `json:"date"`
	TotalSales      float64 `json:"total_sales"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	TotalSessions   int     `json:"total_sessions"`
	TotalMediaSpend float64 `json:"total_media_spend"`
}

type SalesOverview struct {
	Totals SalesTotals     `json:"totals"`
	KPIs   SalesKPIs       `json:"kpis"`
	Daily  []SalesDailyRow `json:"daily"`
}

// HourlyBucket agrega uma das 24 horas do dia ao longo do período.
// As médias usam como denominador o número de datas distintas com
// atividade naquela hora, não o tamanho do intervalo.
type HourlyBucket struct {
	Hour          int     `json:"hour"`
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrders     float64 `json:"avg_orders"`
	AvgRevenue    float64 `json:"avg_revenue"`
	DistinctDates int     `json:"distinct_dates"`
}

type HourlySales struct {
	Hours           []HourlyBucket `json:"hours"`
	PeakOrdersHour  int            `json:"peak_orders_hour"`
	PeakRevenueHour int            `json:"peak_revenue_hour"`
}

type ProductPerformanceRow struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int     `json:"total_orders"`
}

type ProductPerformance struct {
	Products []ProductPerformanceRow `json:"products"`
}

// BreakdownRow é uma linha de quebra por dimensão (categoria, coleção,
// localização ou dispositivo) com o percentual sobre o total do período
type BreakdownRow struct {
	Key          string  `json:"key"`
	Quantity     int     `json:"quantity"`
	TotalRevenue float64 `json:"total_revenue"`
	Percentage   float64 `json:"percentage"`
}

type CategoryBreakdown struct {
	Categories []BreakdownRow `json:"categories"`
}

type CollectionsPerformance struct {
	Collections []BreakdownRow `json:"collections"`
}

type OrderRow struct {
	OrderID     string  `json:"order_id"`
	Date        string  `json:"date"`
	CustomerID  string  `json:"customer_id"`
	TotalAmount float64 `json:"total_amount"`
	ItemCount   int     `json:"item_count"`
	IsSample    bool    `json:"is_sample"`
}

type OrdersReport struct {
	OrderType   string     `json:"order_type"`
	TotalOrders int        `json:"total_orders"`
	TotalAmount float64    `json:"total_amount"`
	Orders      []OrderRow `json:"orders"`
}

type CustomerMetrics struct {
	TotalCustomers     int     `json:"total_customers"`
	NewCustomers       int     `json:"new_customers"`
	ReturningCustomers int     `json:"returning_customers"`
	ReturningRate      float64 `json:"returning_rate"`
}

type ActiveUsersSeries struct {
	Granularity string           `json:"granularity"`
	Points      []ActiveUsersRow `json:"points"`
}

type ActiveUsersRow struct {
	Period      string `json:"period"`
	ActiveUsers int    `json:"active_users"`
}

type CustomerInsights struct {
	ActiveUsersDaily   ActiveUsersSeries `json:"active_users_daily"`
	ActiveUsersWeekly  ActiveUsersSeries `json:"active_users_weekly"`
	ActiveUsersMonthly ActiveUsersSeries `json:"active_users_monthly"`
	Locations          []BreakdownRow    `json:"locations"`
	Devices            []BreakdownRow    `json:"devices"`
}

type ChannelPerformanceRow struct {
	Channel    string  `json:"channel"`
	Sessions   int     `json:"sessions"`
	Orders     int     `json:"orders"`
	Revenue    float64 `json:"revenue"`
	MediaSpend float64 `json:"media_spend"`
	ROAS       float64 `json:"roas"`
	CPA        float64 `json:"cpa"`
}

type SEOPerformanceRow struct {
	Date            string  `json:"date"`
	OrganicSessions int     `json:"organic_sessions"`
	OrganicOrders   int     `json:"organic_orders"`
	OrganicRevenue  float64 `json:"organic_revenue"`
}

type MarketingPerformance struct {
	Channels []ChannelPerformanceRow `json:"channels"`
	SEO      []SEOPerformanceRow     `json:"seo"`
}
