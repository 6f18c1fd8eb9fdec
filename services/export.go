package services

import (
	"io"

	"pos-client/models"
	"pos-client/utils"

	"github.com/tealeg/xlsx"
)

const SalesSheetName = "Ventas"

var salesExportHeaders = []string{"Venta", "Fecha", "Total", "Producto", "Cantidad"}

// WriteSalesWorkbook writes the sales history as an xlsx workbook with one row
// per sold item. A sale without items still gets a row of its own.
func WriteSalesWorkbook(out io.Writer, sales []models.Sale) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SalesSheetName)
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range salesExportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, sale := range sales {
		if len(sale.Items) == 0 {
			addSaleRow(sheet, sale, models.SaleItem{})
			continue
		}
		for _, item := range sale.Items {
			addSaleRow(sheet, sale, item)
		}
	}

	return file.Write(out)
}

func addSaleRow(sheet *xlsx.Sheet, sale models.Sale, item models.SaleItem) {
	row := sheet.AddRow()
	row.AddCell().SetValue(sale.ID)
	row.AddCell().SetValue(utils.FormatTimestamp(sale.CreatedAt))
	row.AddCell().SetValue(utils.FormatAmount(sale.Total))
	row.AddCell().SetValue(item.ProductName)
	row.AddCell().SetValue(item.Quantity)
}
