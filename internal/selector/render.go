package selector

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

var tableHeader = []string{"Customer Name", "Quantity", "Payment Method", "Payment Status"}

// WriteView — текстовое представление виджета: таблица для Populated, иначе сообщение.
func WriteView(w io.Writer, v View) error {
	if v.State != Populated {
		_, err := fmt.Fprintln(w, v.Message)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(tableHeader, "\t")); err != nil {
		return err
	}
	for _, r := range v.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(r.Cells(), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
