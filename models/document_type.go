package models

import "fmt"

// DocumentType identifies one of the legal documents the wizard can draft
type DocumentType string

// Document type constants
const (
	DocumentTypeFeeAgreement            DocumentType = "fee_agreement"
	DocumentTypeAdminPowerOfAttorney    DocumentType = "admin_power_of_attorney"
	DocumentTypeJudicialPowerOfAttorney DocumentType = "judicial_power_of_attorney"
	DocumentTypeGeneralPowerOfAttorney  DocumentType = "general_power_of_attorney"
	DocumentTypeIncidentalRequest       DocumentType = "incidental_request"
)

// documentTypeLabels holds the canonical Arabic name of each document, as drafted
var documentTypeLabels = map[DocumentType]string{
	DocumentTypeFeeAgreement:            "اتفاقية أتعاب محاماة",
	DocumentTypeAdminPowerOfAttorney:    "وكالة خاصة (إدارية/عقارية)",
	DocumentTypeJudicialPowerOfAttorney: "وكالة خاصة (قضائية)",
	DocumentTypeGeneralPowerOfAttorney:  "وكالة عامة",
	DocumentTypeIncidentalRequest:       "طلب عرضية / مذكرة طلب",
}

// AllDocumentTypes returns every document type in display order
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeFeeAgreement,
		DocumentTypeAdminPowerOfAttorney,
		DocumentTypeJudicialPowerOfAttorney,
		DocumentTypeGeneralPowerOfAttorney,
		DocumentTypeIncidentalRequest,
	}
}

// IsValid checks whether the document type is one of the known kinds
func (d DocumentType) IsValid() bool {
	_, ok := documentTypeLabels[d]
	return ok
}

// Label returns the Arabic legal name of the document
func (d DocumentType) Label() string {
	return documentTypeLabels[d]
}

// I18nKey returns the translation key for the document's display name
func (d DocumentType) I18nKey() string {
	return "documents.types." + string(d)
}

// ParseDocumentType converts a code into a DocumentType
func ParseDocumentType(code string) (DocumentType, error) {
	d := DocumentType(code)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown document type: %q", code)
	}
	return d, nil
}

// ParseDocumentTypes converts a list of codes, preserving order and duplicates
func ParseDocumentTypes(codes []string) ([]DocumentType, error) {
	types := make([]DocumentType, 0, len(codes))
	for _, code := range codes {
		d, err := ParseDocumentType(code)
		if err != nil {
			return nil, err
		}
		types = append(types, d)
	}
	return types, nil
}

// GeneratedDocument pairs a document type with its rendered HTML
type GeneratedDocument struct {
	DocType     DocumentType `json:"docType"`
	HTMLContent string       `json:"htmlContent"`
}
