package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/sales_table/internal/selector"
)

// CLI-клиент виджета: заказы с товаром в виде таблицы (или JSON).
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "sales table service base URL")
	productID := flag.String("product", "", "product id to look up (empty → placeholder view)")
	timeout := flag.Duration("timeout", selector.DefaultTimeout, "request timeout")
	asJSON := flag.Bool("json", false, "print the view as JSON")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := selector.NewHTTPClient(selector.Config{BaseURL: *baseURL, Timeout: *timeout})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sales-lookup: %v\n", err)
		os.Exit(2)
	}

	view := selector.New(client).Select(ctx, *productID)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(view)
	} else {
		err = selector.WriteView(os.Stdout, view)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sales-lookup: write: %v\n", err)
		os.Exit(1)
	}

	if view.State == selector.Error {
		os.Exit(1)
	}
}
