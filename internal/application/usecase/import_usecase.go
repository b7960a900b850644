package usecase

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/jhoicas/sys360/pkg/money"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charsets aceptados en la importación.
const (
	CharsetUTF8    = "utf-8"
	CharsetLatin1  = "latin1"
	CharsetWin1252 = "windows-1252"
)

const importColumns = 6 // name;quantity;sell_price;cost_price;category;supplier

// ProductImportUseCase carga productos desde CSV pasando cada fila por ProductUseCase.Create.
type ProductImportUseCase struct {
	products *ProductUseCase
	log      *logger.Logger
}

// NewProductImportUseCase construye el caso de uso.
func NewProductImportUseCase(products *ProductUseCase, log *logger.Logger) *ProductImportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductImportUseCase{products: products, log: log.Named("import")}
}

// Import lee r en el charset indicado ("" detecta utf-8 y cae a windows-1252).
// Cabecera opcional; separador ';' o ','. Errores por línea no abortan la carga.
func (uc *ProductImportUseCase) Import(ctx context.Context, r io.Reader, charset string) (*dto.ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ler arquivo: %w", err)
	}
	dec, err := decoderFor(charset, raw)
	if err != nil {
		return nil, err
	}
	text, _, err := transform.Bytes(dec.NewDecoder(), raw)
	if err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Arquivo não está em %s", charset)
	}
	text = bytes.TrimPrefix(text, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(text))
	cr.Comma = detectSeparator(text)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	res := &dto.ImportResult{Errors: []dto.ImportError{}}
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			res.Errors = append(res.Errors, dto.ImportError{Line: line, Message: err.Error()})
			continue
		}
		if isBlank(rec) {
			continue
		}
		if line == 1 && isHeader(rec) {
			continue
		}
		req, err := parseProductRecord(rec)
		if err != nil {
			res.Errors = append(res.Errors, dto.ImportError{Line: line, Message: err.Error()})
			continue
		}
		if _, err := uc.products.Create(ctx, req); err != nil {
			res.Errors = append(res.Errors, dto.ImportError{Line: line, Message: domain.Reason(err)})
			continue
		}
		res.Imported++
	}
	uc.log.Info().Int("imported", res.Imported).Int("errors", len(res.Errors)).Msg("importação de produtos concluída")
	return res, nil
}

func decoderFor(charset string, raw []byte) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case CharsetUTF8, "utf8":
		return unicode.UTF8, nil
	case CharsetLatin1, "iso-8859-1":
		return charmap.ISO8859_1, nil
	case CharsetWin1252, "cp1252":
		return charmap.Windows1252, nil
	case "":
		if utf8.Valid(raw) {
			return unicode.UTF8, nil
		}
		return charmap.Windows1252, nil
	default:
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Charset não suportado: %s", charset)
	}
}

// detectSeparator usa ';' si aparece en la primera línea, si no ','.
func detectSeparator(text []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(text))
	if sc.Scan() && strings.Contains(sc.Text(), ";") {
		return ';'
	}
	return ','
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func isHeader(rec []string) bool {
	if len(rec) < 2 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	return err != nil
}

func parseProductRecord(rec []string) (dto.CreateProductRequest, error) {
	var req dto.CreateProductRequest
	if len(rec) < importColumns {
		return req, fmt.Errorf("esperadas %d colunas, encontradas %d", importColumns, len(rec))
	}
	qty, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return req, fmt.Errorf("quantidade inválida %q", rec[1])
	}
	sell, err := money.Parse(rec[2])
	if err != nil {
		return req, err
	}
	cost, err := money.Parse(rec[3])
	if err != nil {
		return req, err
	}
	return dto.CreateProductRequest{
		Name:      strings.TrimSpace(rec[0]),
		Quantity:  qty,
		SellPrice: sell,
		CostPrice: cost,
		Category:  strings.TrimSpace(rec[4]),
		Supplier:  strings.TrimSpace(rec[5]),
	}, nil
}
