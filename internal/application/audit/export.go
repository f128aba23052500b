package audit

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// exportPageSize tamaño de página interno al volcar la bitácora al archivo.
const exportPageSize = 500

// ExportXLSX genera el archivo de cumplimiento: todas las entradas que pasan
// el filtro, del más reciente al más antiguo, una fila por entrada.
func (r *Recorder) ExportXLSX(filter repository.AuditFilter) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bitacora"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Acción", "Entidad", "ID Entidad", "Usuario", "Fecha", "Detalle"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("export bitácora: %w", err)
		}
	}

	row := 2
	for offset := 0; ; offset += exportPageSize {
		entries, err := r.repo.List(filter, exportPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("export bitácora: %w", err)
		}
		if len(entries) == 0 {
			break
		}
		for _, e := range entries {
			values := []interface{}{
				e.ID, e.ActionType, e.EntityType, e.EntityID,
				strconv.FormatInt(e.PerformedBy, 10),
				e.Timestamp.Format("2006-01-02 15:04:05"),
				e.Details,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, fmt.Errorf("export bitácora: %w", err)
				}
			}
			row++
		}
		if len(entries) < exportPageSize {
			break
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export bitácora: %w", err)
	}
	return buf.Bytes(), nil
}
