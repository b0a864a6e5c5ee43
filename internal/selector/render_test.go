package selector_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/sales_table/internal/selector"
)

func TestWriteView_Table(t *testing.T) {
	var buf bytes.Buffer
	err := selector.WriteView(&buf, selector.View{
		State: selector.Populated,
		Rows: []selector.Row{
			{CustomerName: "Guest", Quantity: 2, PaymentMethod: "N/A", Status: "Processing"},
			{CustomerName: "Ann Lee", Quantity: 10, PaymentMethod: "Card", Status: "On hold"},
		},
	})
	if err != nil {
		t.Fatalf("WriteView: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %q", buf.String())
	}
	if got := strings.Fields(lines[1]); strings.Join(got, " ") != "Guest 2 N/A Processing" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	// колонки выровнены: «Quantity» начинается в одной позиции во всех строках
	col := strings.Index(lines[0], "Quantity")
	if strings.Index(lines[2], "10") != col {
		t.Fatalf("columns are not aligned:\n%s", buf.String())
	}
}

func TestWriteView_Message(t *testing.T) {
	for _, v := range []selector.View{
		{State: selector.Idle, Message: selector.MessageSelectProduct},
		{State: selector.Empty, Message: selector.MessageNoOrders},
		{State: selector.Error, Message: selector.MessageLoadError},
	} {
		var buf bytes.Buffer
		if err := selector.WriteView(&buf, v); err != nil {
			t.Fatalf("WriteView: %v", err)
		}
		if buf.String() != v.Message+"\n" {
			t.Fatalf("want %q, got %q", v.Message, buf.String())
		}
	}
}

func TestView_JSONStateAsString(t *testing.T) {
	raw, err := json.Marshal(selector.View{State: selector.Empty, ProductID: "7", Message: selector.MessageNoOrders})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"state":"empty"`) {
		t.Fatalf("unexpected json: %s", raw)
	}
}
