package reportControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	statsControllers "github.com/ngocthanh-dev/cafe-admin-api/controllers/stats"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// BuildReport serializes the summary and the top-product ranking into a
// two-sheet workbook: an overview sheet (metric, value, unit) and a detail
// sheet with each product's share of the summed top-N revenue.
func BuildReport(summary statsControllers.StoreSummary, topProducts []statsControllers.ProductRevenue) (*xlsx.File, error) {
	file := xlsx.NewFile()

	overview, err := file.AddSheet("Tổng Quan")
	if err != nil {
		return nil, err
	}
	headerRow := overview.AddRow()
	for _, h := range []string{"Chỉ số", "Giá trị", "Đơn vị"} {
		headerRow.AddCell().SetValue(h)
	}
	metrics := []struct {
		Name  string
		Value interface{}
		Unit  string
	}{
		{"Tổng số sản phẩm", summary.TotalProducts, "sản phẩm"},
		{"Tổng hàng tồn kho", summary.TotalInventory, "sản phẩm"},
		{"Tổng số khách hàng", summary.TotalCustomers, "khách hàng"},
		{"Tổng doanh thu", summary.TotalRevenue, "VNĐ"},
	}
	for _, m := range metrics {
		row := overview.AddRow()
		row.AddCell().SetValue(m.Name)
		row.AddCell().SetValue(m.Value)
		row.AddCell().SetValue(m.Unit)
	}

	detail, err := file.AddSheet("Chi Tiết Sản Phẩm")
	if err != nil {
		return nil, err
	}
	headerRow = detail.AddRow()
	for _, h := range []string{"Tên sản phẩm", "Tồn kho", "Đơn giá", "Doanh thu", "Tỷ lệ"} {
		headerRow.AddCell().SetValue(h)
	}

	totalRevenue := 0.0
	for _, p := range topProducts {
		totalRevenue += p.Revenue
	}
	if totalRevenue == 0 {
		totalRevenue = 1 // keep the share column defined
	}
	for _, p := range topProducts {
		row := detail.AddRow()
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.Revenue)
		row.AddCell().SetValue(p.Revenue / totalRevenue)
	}

	return file, nil
}

// WriteSnapshot saves the current report under dir with a timestamped name
// and returns the path. Used by the daily snapshot job.
func WriteSnapshot(db *gorm.DB, dir string) (string, error) {
	file, err := BuildReport(statsControllers.Summary(db), statsControllers.TopProducts(db))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "bao_cao_"+time.Now().Format("2006-01-02_15-04-05")+".xlsx")
	if err := file.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// GET /admin/reports/export-excel
func ExportReportHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := BuildReport(statsControllers.Summary(db), statsControllers.TopProducts(db))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}

		filename := fmt.Sprintf("Bao_Cao_Doanh_Thu_%s.xlsx", time.Now().Format("02-01-2006"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write report"})
			return
		}
	}
}
