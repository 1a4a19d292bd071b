package models

// Header holds the document-level fields found above the product table.
// A nil field was not resolved.
type Header struct {
	// Recipient is the party the quotation is addressed to.
	Recipient *string `json:"recipient"`
	// Date is the quotation date as written in the sheet, spaces removed.
	Date *string `json:"date"`
	// DocumentNumber is the quotation number.
	DocumentNumber *string `json:"document_number"`
}

// Complete reports whether every header field has been resolved.
func (h Header) Complete() bool {
	return h.Recipient != nil && h.Date != nil && h.DocumentNumber != nil
}

// Product is a single quotation line item.
type Product struct {
	// Code is the item code; always contains a hyphen.
	Code string `json:"code"`
	// Description is free text, possibly merged from continuation rows.
	Description string `json:"description"`
	// Quantity is the ordered quantity.
	Quantity int `json:"quantity"`
	// Unit is one of ea, set or pcs.
	Unit string `json:"unit"`
	// UnitPrice is the first price-like token of the row.
	UnitPrice int `json:"unit_price"`
	// Amount is the second price-like token of the row.
	Amount int `json:"amount"`
}
