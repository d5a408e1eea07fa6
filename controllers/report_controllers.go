package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/crpmlabs/crpm-app/repositories"
	"github.com/crpmlabs/crpm-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	Repo *repositories.ReportRepository
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Repo: repositories.NewReportRepository(db)}
}

// GetRevenueByDate -> revenue-over-time series as JSON, one entry per
// purchase day, ascending
func (rc *ReportController) GetRevenueByDate(c *gin.Context) {
	rows, err := rc.Repo.RevenueByDate()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if len(rows) == 0 {
		utils.RespondJSON(c, http.StatusOK, "No purchase data to analyze", rows)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Revenue by date", rows)
}

// GetRevenueChart -> the same series rendered server-side as a PNG line
// chart for the dashboard to embed
func (rc *ReportController) GetRevenueChart(c *gin.Context) {
	rows, err := rc.Repo.RevenueByDate()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if len(rows) == 0 {
		utils.RespondError(c, http.StatusNotFound, ErrNoReportData)
		return
	}

	dates := make([]time.Time, 0, len(rows))
	revenue := make([]float64, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		dates = append(dates, date)
		revenue = append(revenue, row.TotalRevenue)
	}

	// go-chart needs at least two points to draw a line; a single day
	// becomes a flat segment
	if len(dates) == 1 {
		dates = append(dates, dates[0].AddDate(0, 0, 1))
		revenue = append(revenue, revenue[0])
	}

	graph := chart.Chart{
		Title:  "Total Revenue Over Time",
		Width:  1000,
		Height: 500,
		XAxis: chart.XAxis{
			Name:           "Purchase Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Revenue ($)",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Revenue",
				XValues: dates,
				YValues: revenue,
				Style: chart.Style{
					StrokeWidth: 2.0,
					DotWidth:    4.0,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
