package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"quotation-system/internal/repositories"
)

type ReportServiceInterface interface {
	ExportItemsReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

// ExportItemsReport выгружает позиции за период в файл Excel.
// Возвращает буфер с файлом и имя файла для заголовка Content-Disposition.
func (s *ReportService) ExportItemsReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error) {
	rows, err := s.reportRepo.GetItemsReport(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Ошибка закрытия файла отчета", zap.Error(err))
		}
	}()

	const sheet = "Позиции"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Warn("Ошибка удаления листа по умолчанию", zap.Error(err))
	}

	headers := []string{
		"ID", "Позиция", "Запрос", "Клиент", "Приоритет",
		"Статус", "Исполнитель", "Кол-во", "Ед.", "Итоговая стоимость", "Создано",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.ItemID, row.ItemName, row.InquiryTitle, row.CustomerName, row.Priority,
			row.Status, row.AssigneeFio, row.Quantity, row.Unit, row.TotalCost, row.CreatedAt,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("ошибка записи отчета: %w", err)
	}

	filename := fmt.Sprintf("items_report_%s_%s.xlsx",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	return buf, filename, nil
}
