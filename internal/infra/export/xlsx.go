package export

import (
	"fmt"
	"log"

	"github.com/LouYuanbo1/counselcrawler/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

const SheetName = "상담사례"

// WriteXLSX 第一行为表头,之后每行一条记录
func WriteXLSX(path string, ds *model.Dataset) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("关闭XLSX失败: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("设置工作表名称失败: %w", err)
	}
	rows := append([][]string{ds.Columns()}, ds.Rows()...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("保存XLSX失败: %w", err)
	}
	log.Printf("已保存 %d 条记录到 %s", ds.Len(), path)
	return nil
}
