package util

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const pdfMagic = "%PDF-"

// pdfcpu по умолчанию создаёт каталог конфигурации в $HOME, серверу он не нужен
var disableConfigDir sync.Once

// PDFInfo : то, что мы узнаём о файле перед загрузкой
type PDFInfo struct {
	PageCount int
	SizeBytes int64
}

// InspectPDF : проверяет, что содержимое является валидным PDF и считает страницы
func InspectPDF(content []byte) (*PDFInfo, error) {
	if !bytes.HasPrefix(content, []byte(pdfMagic)) {
		return nil, fmt.Errorf("файл не является PDF")
	}

	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.Validate(bytes.NewReader(content), conf); err != nil {
		return nil, fmt.Errorf("PDF не прошёл валидацию: %w", err)
	}

	pageCount, err := api.PageCount(bytes.NewReader(content), conf)
	if err != nil {
		return nil, fmt.Errorf("не удалось посчитать страницы: %w", err)
	}

	return &PDFInfo{PageCount: pageCount, SizeBytes: int64(len(content))}, nil
}
