package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/pixelcraft/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// LineError — причина отбраковки записи (Line — номер строки JSONL или индекс в массиве, с 1).
type LineError struct {
	Line int
	Err  error
}

// Summary — итог проверки фида.
type Summary struct {
	Valid   int
	Invalid int
	Errors  []LineError
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// ValidateFile — валидирует файл фида и пишет канонический JSONL валидных товаров в ow.
// JSON-файл может содержать один объект или массив объектов.
func ValidateFile(ctx context.Context, validator ports.ProductValidator, filePath string, format InputFormat, ow io.Writer) (Summary, error) {
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return Summary{}, fmt.Errorf("read file: %w", err)
		}
		return ValidateJSONDocument(ctx, validator, raw, ow)
	case FormatJSONL:
		return ValidateJSONLStream(ctx, validator, file, ow)
	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// ValidateJSONDocument — один объект или массив. Для одиночного объекта ошибка валидации
// возвращается как ошибка, для массива — копится в Summary.
func ValidateJSONDocument(ctx context.Context, validator ports.ProductValidator, raw []byte, ow io.Writer) (Summary, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		product, err := ProductFromJSON(ctx, validator, trimmed)
		if err != nil {
			return Summary{Invalid: 1, Errors: []LineError{{Line: 1, Err: err}}}, err
		}
		return Summary{Valid: 1}, writeLine(ow, product)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return Summary{}, fmt.Errorf("%w: invalid json array: %v", ErrInvalidProduct, err)
	}

	var sum Summary
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		product, err := ProductFromJSON(ctx, validator, item)
		if err != nil {
			sum.Invalid++
			sum.Errors = append(sum.Errors, LineError{Line: i + 1, Err: err})
			continue
		}
		if err := writeLine(ow, product); err != nil {
			return sum, err
		}
		sum.Valid++
	}
	return sum, nil
}

// ValidateJSONLStream — построчная проверка; невалидные строки пропускаются, пустые — игнорируются.
func ValidateJSONLStream(ctx context.Context, validator ports.ProductValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		product, err := ProductFromJSON(ctx, validator, raw)
		if err != nil {
			sum.Invalid++
			sum.Errors = append(sum.Errors, LineError{Line: line, Err: err})
			continue
		}
		if err := writeLine(ow, product); err != nil {
			return sum, err
		}
		sum.Valid++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}

func detectFormat(filePath string) InputFormat {
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// writeLine — компактный JSON одной строкой.
func writeLine(ow io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := ow.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
