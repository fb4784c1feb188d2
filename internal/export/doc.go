// Package export turns formatted content rows into downloadable documents:
// a styled Excel workbook and a JSON envelope. Styling is cosmetic; the
// functional contract is one header row plus one data row per formatted row,
// in original order.
package export
