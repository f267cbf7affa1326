package notion

// Wire types for the slice of the hosted API the adapter touches. Response
// payloads carry far more than this; unknown members are ignored on decode.

// RichText is one run of rich text content
type RichText struct {
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

// TextContent is the writable part of a rich text run
type TextContent struct {
	Content string `json:"content"`
}

// DateValue carries the start of a date property. The adapter only ever
// writes whole dates, never datetimes.
type DateValue struct {
	Start string `json:"start"`
}

// RelationRef points at a record in another collection
type RelationRef struct {
	ID string `json:"id"`
}

// StatusValue is a status property option
type StatusValue struct {
	Name string `json:"name"`
}

// SelectValue is a select property option
type SelectValue struct {
	Name string `json:"name"`
}

// PropertyValue is the union of property payloads the adapter reads and
// writes. At most one member is set per property; absent members stay off
// the wire entirely.
type PropertyValue struct {
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
	Relation []RelationRef `json:"relation,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Status   *StatusValue  `json:"status,omitempty"`
	Select   *SelectValue  `json:"select,omitempty"`
}

// PropertyMap maps property names to their values
type PropertyMap map[string]PropertyValue

// Page is one record of a collection
type Page struct {
	ID         string      `json:"id"`
	Properties PropertyMap `json:"properties"`
}

// PropertyDef describes one property from collection metadata
type PropertyDef struct {
	Type string `json:"type"`
}

// Database is collection metadata
type Database struct {
	ID         string                 `json:"id"`
	Properties map[string]PropertyDef `json:"properties"`
}

// Sort orders query results by a property
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// QueryRequest is the body of a collection query
type QueryRequest struct {
	PageSize int    `json:"page_size,omitempty"`
	Sorts    []Sort `json:"sorts,omitempty"`
}

// QueryResponse is one page of query results
type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// Parent addresses the collection a new record belongs to
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// CreatePageRequest is the body of a record creation
type CreatePageRequest struct {
	Parent     Parent      `json:"parent"`
	Properties PropertyMap `json:"properties"`
}
