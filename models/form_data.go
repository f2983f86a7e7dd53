package models

import "strings"

// ClientData holds what is known about the client. Every field is optional.
type ClientData struct {
	FullName    string `json:"fullName,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
	NationalID  string `json:"cin,omitempty"`
	Address     string `json:"address,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
}

// CaseData holds what is known about the case. Every field is optional.
type CaseData struct {
	Type       string `json:"type,omitempty"`
	References string `json:"references,omitempty"`
	Fees       string `json:"fees,omitempty"`
	Advance    string `json:"advance,omitempty"`
	Costs      string `json:"costs,omitempty"`
}

// FormData is the record extracted from the source document and verified by the user
type FormData struct {
	Client ClientData `json:"client"`
	Case   CaseData   `json:"case"`
}

// IsEmpty reports whether no field carries a value
func (f FormData) IsEmpty() bool {
	return f.Normalize() == FormData{}
}

// Normalize returns a copy with surrounding whitespace trimmed from every field
func (f FormData) Normalize() FormData {
	return FormData{
		Client: ClientData{
			FullName:    strings.TrimSpace(f.Client.FullName),
			DateOfBirth: strings.TrimSpace(f.Client.DateOfBirth),
			NationalID:  strings.TrimSpace(f.Client.NationalID),
			Address:     strings.TrimSpace(f.Client.Address),
			BankAccount: strings.TrimSpace(f.Client.BankAccount),
		},
		Case: CaseData{
			Type:       strings.TrimSpace(f.Case.Type),
			References: strings.TrimSpace(f.Case.References),
			Fees:       strings.TrimSpace(f.Case.Fees),
			Advance:    strings.TrimSpace(f.Case.Advance),
			Costs:      strings.TrimSpace(f.Case.Costs),
		},
	}
}

// FormField describes one editable field of FormData, in display order.
// Key matches the form input name and the i18n key suffix.
type FormField struct {
	Key   string
	Group string // client, case
	Get   func(f *FormData) string
	Set   func(f *FormData, value string)
}

// FormFields lists every field of FormData in the order the verification screen shows them
var FormFields = []FormField{
	{Key: "client.fullName", Group: "client",
		Get: func(f *FormData) string { return f.Client.FullName },
		Set: func(f *FormData, v string) { f.Client.FullName = v }},
	{Key: "client.dob", Group: "client",
		Get: func(f *FormData) string { return f.Client.DateOfBirth },
		Set: func(f *FormData, v string) { f.Client.DateOfBirth = v }},
	{Key: "client.cin", Group: "client",
		Get: func(f *FormData) string { return f.Client.NationalID },
		Set: func(f *FormData, v string) { f.Client.NationalID = v }},
	{Key: "client.address", Group: "client",
		Get: func(f *FormData) string { return f.Client.Address },
		Set: func(f *FormData, v string) { f.Client.Address = v }},
	{Key: "client.bankAccount", Group: "client",
		Get: func(f *FormData) string { return f.Client.BankAccount },
		Set: func(f *FormData, v string) { f.Client.BankAccount = v }},
	{Key: "case.type", Group: "case",
		Get: func(f *FormData) string { return f.Case.Type },
		Set: func(f *FormData, v string) { f.Case.Type = v }},
	{Key: "case.references", Group: "case",
		Get: func(f *FormData) string { return f.Case.References },
		Set: func(f *FormData, v string) { f.Case.References = v }},
	{Key: "case.fees", Group: "case",
		Get: func(f *FormData) string { return f.Case.Fees },
		Set: func(f *FormData, v string) { f.Case.Fees = v }},
	{Key: "case.advance", Group: "case",
		Get: func(f *FormData) string { return f.Case.Advance },
		Set: func(f *FormData, v string) { f.Case.Advance = v }},
	{Key: "case.costs", Group: "case",
		Get: func(f *FormData) string { return f.Case.Costs },
		Set: func(f *FormData, v string) { f.Case.Costs = v }},
}
