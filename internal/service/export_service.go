package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"traini8/internal/dto"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 导出内容与列表视图一致（相同筛选条件），以 bytes.Buffer 返回，
// 由 Handler 层设置下载响应头。
type ExportService interface {
	ExportTrainingCenters(ctx context.Context, req *dto.TrainingCenterListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	centers TrainingCenterService
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(centers TrainingCenterService, logger *zap.Logger) ExportService {
	return &exportService{centers: centers, logger: logger, now: time.Now}
}

const exportSheet = "Training Centers"

var exportHeaders = []string{
	"ID", "Center Name", "Center Code", "Address", "City", "State", "Pincode",
	"Capacity", "Courses", "Contact Email", "Contact Phone", "Created On",
}

func (s *exportService) ExportTrainingCenters(ctx context.Context, req *dto.TrainingCenterListRequest) (*bytes.Buffer, string, error) {
	centers, err := s.centers.List(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range exportHeaders {
		f.SetCellValue(exportSheet, cell(colName(i), 1), h)
	}
	f.SetCellStyle(exportSheet, "A1", cell(colName(len(exportHeaders)-1), 1), headerStyle)
	f.SetColWidth(exportSheet, "B", "D", 28)
	f.SetColWidth(exportSheet, "I", "J", 30)
	f.SetColWidth(exportSheet, "L", "L", 20)

	for i, tc := range centers {
		row := i + 2
		values := []interface{}{
			tc.ID,
			tc.CenterName,
			tc.CenterCode,
			tc.Address.DetailedAddress,
			tc.Address.City,
			tc.Address.State,
			tc.Address.Pincode,
			tc.StudentCapacity,
			strings.Join(tc.CoursesOffered, ", "),
			tc.ContactEmail,
			tc.ContactPhone,
			time.UnixMilli(tc.CreatedOn).UTC().Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			f.SetCellValue(exportSheet, cell(colName(col), row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("training_centers_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
