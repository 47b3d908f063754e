package model

import "strings"

// Package model contains domain models shared by the extractor, the service
// and the HTTP layer. No business logic here beyond media type parsing.

// MediaType identifies the document formats the service can extract text from.
type MediaType string

const (
	MediaTypeUnknown MediaType = ""
	MediaTypePDF     MediaType = "application/pdf"
	MediaTypeXLSX    MediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MediaTypeXLS     MediaType = "application/vnd.ms-excel"
)

// SupportedMediaTypes is the upload allow-list.
var SupportedMediaTypes = []MediaType{MediaTypePDF, MediaTypeXLSX, MediaTypeXLS}

// ParseMediaType maps a MIME string (parameters and case ignored) to a
// MediaType. Anything outside the allow-list yields MediaTypeUnknown.
func ParseMediaType(s string) MediaType {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	mt := MediaType(strings.ToLower(strings.TrimSpace(s)))
	for _, supported := range SupportedMediaTypes {
		if mt == supported {
			return mt
		}
	}
	return MediaTypeUnknown
}

// MediaTypeForExtension maps a file extension (with leading dot) to a MediaType.
func MediaTypeForExtension(ext string) MediaType {
	switch strings.ToLower(ext) {
	case ".pdf":
		return MediaTypePDF
	case ".xlsx":
		return MediaTypeXLSX
	case ".xls":
		return MediaTypeXLS
	default:
		return MediaTypeUnknown
	}
}

// IsSpreadsheet reports whether mt belongs to the spreadsheet family.
func (mt MediaType) IsSpreadsheet() bool {
	return mt == MediaTypeXLSX || mt == MediaTypeXLS
}

// Label is a short human-readable format name.
func (mt MediaType) Label() string {
	switch mt {
	case MediaTypePDF:
		return "PDF"
	case MediaTypeXLSX, MediaTypeXLS:
		return "Excel"
	default:
		return "unknown"
	}
}

// MetricLabel is a low-cardinality label used in metrics and the activity ledger.
func (mt MediaType) MetricLabel() string {
	switch mt {
	case MediaTypePDF:
		return "pdf"
	case MediaTypeXLSX:
		return "xlsx"
	case MediaTypeXLS:
		return "xls"
	default:
		return "unknown"
	}
}
