// =============================================================================
// CSV to SEPA XML Converter - Document Serializer
// =============================================================================
//
// Serializes the document tree into the canonical text form handed to the
// bank: XML declaration, 2-space indentation, UTF-8. Serialization is
// deterministic - element order is struct field order and nothing here
// iterates a map - so identical input produces byte-identical output.
//
// =============================================================================

package sepa

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// SerializeOptions controls the text form of the document.
type SerializeOptions struct {
	// Indent is the string used for one level of indentation.
	// Default: two spaces.
	Indent string

	// IncludeDeclaration controls the leading <?xml ...?> line.
	// Default: true.
	IncludeDeclaration bool
}

// DefaultSerializeOptions returns the canonical output settings.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{
		Indent:             "  ",
		IncludeDeclaration: true,
	}
}

// Serialize renders the document with the default options.
func Serialize(doc *Document) ([]byte, error) {
	return SerializeWithOptions(doc, DefaultSerializeOptions())
}

// SerializeWithOptions renders the document.
func SerializeWithOptions(doc *Document, opts SerializeOptions) ([]byte, error) {
	var buffer bytes.Buffer

	if opts.IncludeDeclaration {
		buffer.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	}

	body, err := xml.MarshalIndent(doc, "", opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	buffer.Write(body)
	buffer.WriteByte('\n')

	return buffer.Bytes(), nil
}
