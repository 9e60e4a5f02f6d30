// Package export 将数据集写出为文件或打印到终端
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/LouYuanbo1/counselcrawler/internal/domain/model"
)

// utf8BOM 让Excel正确识别UTF-8编码的韩文
const utf8BOM = "\xEF\xBB\xBF"

// WriteCSV 写出带BOM的UTF-8 CSV,包含表头,不含索引列
func WriteCSV(path string, ds *model.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建CSV文件失败: %w", err)
	}
	if err := EncodeCSV(f, ds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("关闭CSV文件失败: %w", err)
	}
	log.Printf("已保存 %d 条记录到 %s", ds.Len(), path)
	return nil
}

func EncodeCSV(w io.Writer, ds *model.Dataset) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("写入BOM失败: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns()); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}
	if err := cw.WriteAll(ds.Rows()); err != nil {
		return fmt.Errorf("写入CSV失败: %w", err)
	}
	return nil
}
