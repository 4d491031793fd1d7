package schema

// ContentDocumentTable represents the 'folio.content_document' table
type ContentDocumentTable struct {
	Table     string
	Key       string
	Body      string
	SizeBytes string
	UpdatedAt string
}

var ContentDocument = ContentDocumentTable{
	Table:     "folio.content_document",
	Key:       "storagekey",
	Body:      "body",
	SizeBytes: "sizebytes",
	UpdatedAt: "updatedat",
}
