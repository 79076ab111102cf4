// Package ingest turns an uploaded financial-data document into a
// domain.FinancialRecord. Only the fields the rules and the chart need are
// checked; everything else in the document is ignored.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"finprobe/internal/domain"
)

type envelope struct {
	Data *document `json:"data"`
}

type document struct {
	Company    *domain.Company `json:"company"`
	Financials *[]entry        `json:"financials"`
}

type entry struct {
	Year         *int                `json:"year"`
	PnL          domain.PnL          `json:"pnl"`
	BalanceSheet domain.BalanceSheet `json:"bs"`
}

// Decode reads one JSON document of the form {"data": {"company": ..., "financials": [...]}}.
func Decode(r io.Reader) (domain.FinancialRecord, error) {
	var env envelope
	dec := json.NewDecoder(r)
	if err := dec.Decode(&env); err != nil {
		return domain.FinancialRecord{}, jsonError(err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return domain.FinancialRecord{}, &domain.MalformedInputError{Reason: "unexpected data after the JSON document", Err: err}
	}
	return fromDocument(env.Data)
}

func fromDocument(doc *document) (domain.FinancialRecord, error) {
	var rec domain.FinancialRecord
	if doc == nil {
		return rec, domain.Missing("data")
	}
	if doc.Company == nil {
		return rec, domain.Missing("data.company")
	}
	if doc.Company.LegalName == "" {
		return rec, domain.Missing("data.company.legal_name")
	}
	if doc.Financials == nil {
		return rec, domain.Missing("data.financials")
	}
	if len(*doc.Financials) == 0 {
		return rec, &domain.MalformedInputError{Field: "data.financials", Reason: "must contain at least one year"}
	}

	rec.Company = *doc.Company
	seen := make(map[int]bool, len(*doc.Financials))
	for i, e := range *doc.Financials {
		path := fmt.Sprintf("data.financials[%d]", i)
		if e.Year == nil {
			return domain.FinancialRecord{}, domain.Missing(path + ".year")
		}
		if seen[*e.Year] {
			return domain.FinancialRecord{}, &domain.MalformedInputError{Field: path + ".year", Reason: fmt.Sprintf("year %d appears more than once", *e.Year)}
		}
		seen[*e.Year] = true
		if e.PnL.LineItems.NetRevenue == nil {
			return domain.FinancialRecord{}, domain.Missing(path + ".pnl.lineItems.net_revenue")
		}
		rec.Financials = append(rec.Financials, domain.YearlyEntry{
			Year:         *e.Year,
			PnL:          e.PnL,
			BalanceSheet: e.BalanceSheet,
		})
	}
	return rec, nil
}

func jsonError(err error) error {
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return &domain.MalformedInputError{Reason: "document is empty", Err: err}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return &domain.MalformedInputError{Reason: "document is truncated", Err: err}
	case errors.As(err, &syn):
		return &domain.MalformedInputError{Reason: fmt.Sprintf("invalid JSON at byte %d", syn.Offset), Err: err}
	case errors.As(err, &typ):
		return &domain.MalformedInputError{Field: typ.Field, Reason: fmt.Sprintf("expected %s, got %s", typ.Type, typ.Value), Err: err}
	}
	return &domain.MalformedInputError{Reason: fmt.Sprintf("could not read document: %v", err), Err: err}
}
