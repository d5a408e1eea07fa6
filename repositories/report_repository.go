package repositories

import (
	"time"

	"gorm.io/gorm"
)

// RevenueRow is one point of the revenue-over-time series. Date is the
// calendar day in YYYY-MM-DD form.
type RevenueRow struct {
	Date         string  `json:"purchase_date"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// RevenueByDate -> joins purchases to products and sums price*quantity
// per purchase day, ordered ascending so the chart is deterministic.
// No purchases yields an empty series, which callers render as
// "no data" rather than an empty chart.
func (r *ReportRepository) RevenueByDate() ([]RevenueRow, error) {
	rows := []RevenueRow{}

	err := r.DB.Table("purchases").
		Select("DATE(purchases.purchase_date) AS date, SUM(products.price * purchases.quantity) AS total_revenue").
		Joins("JOIN products ON products.id = purchases.product_id").
		Group("DATE(purchases.purchase_date)").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError("revenue by date", err)
	}

	for i := range rows {
		rows[i].Date = normalizeReportDate(rows[i].Date)
	}
	return rows, nil
}

// normalizeReportDate collapses driver-specific DATE renderings into
// YYYY-MM-DD. SQLite's DATE() yields that form already; MySQL with
// parseTime=True hands the column back as time.Time, which
// database/sql stringifies as RFC 3339.
func normalizeReportDate(raw string) string {
	if len(raw) <= len("2006-01-02") {
		return raw
	}
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts.Format("2006-01-02")
	}
	return raw
}
