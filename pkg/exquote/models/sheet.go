package models

// SheetQuote represents the extraction result for a single sheet.
type SheetQuote struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Header contains recipient, date and document number.
	Header Header `json:"header"`
	// StartRow is the 0-based row where product parsing began.
	StartRow int `json:"start_row"`
	// Products lists line items in row order.
	Products []Product `json:"products"`
}
