package models

// Record is one flattened output row: a product with its sheet's header and
// source file attached. Sheets without products yield a single record with
// zero-valued product fields.
type Record struct {
	File           string `json:"file"`
	Sheet          string `json:"sheet"`
	Recipient      string `json:"recipient"`
	Date           string `json:"date"`
	DocumentNumber string `json:"document_number"`
	Code           string `json:"code"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
	UnitPrice      int    `json:"unit_price"`
	Amount         int    `json:"amount"`
}

// Flatten merges a batch into export records, in file, sheet and product order.
// Failed files are skipped.
func Flatten(b *BatchResult) []Record {
	var out []Record
	for _, f := range b.Files {
		if f.Error != "" {
			continue
		}
		for _, s := range f.Sheets {
			base := Record{
				File:           f.BookName,
				Sheet:          s.Name,
				Recipient:      deref(s.Header.Recipient),
				Date:           deref(s.Header.Date),
				DocumentNumber: deref(s.Header.DocumentNumber),
			}
			if len(s.Products) == 0 {
				out = append(out, base)
				continue
			}
			for _, p := range s.Products {
				r := base
				r.Code = p.Code
				r.Description = p.Description
				r.Quantity = p.Quantity
				r.Unit = p.Unit
				r.UnitPrice = p.UnitPrice
				r.Amount = p.Amount
				out = append(out, r)
			}
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
