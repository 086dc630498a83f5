package notion

// Page is one record returned by a database query. Properties are keyed by
// the human-readable field name configured in the database.
type Page struct {
	ID          string              `json:"id"`
	URL         string              `json:"url"`
	CreatedTime string              `json:"created_time"`
	Properties  map[string]Property `json:"properties"`
}

// Property is the tagged union the API uses for typed field values. Type
// names the populated variant; all other variants are zero.
type Property struct {
	Type     string        `json:"type"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
	URL      *string       `json:"url,omitempty"`
	Formula  *Formula      `json:"formula,omitempty"`
}

// RichText is one text segment of a title or rich_text property.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// SelectOption is the selected label of a select property.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue holds the ISO-8601 start of a date property.
type DateValue struct {
	Start string `json:"start"`
}

// Formula is the evaluated result of a formula property, tagged by result
// type (number, string, boolean, or date).
type Formula struct {
	Type    string     `json:"type"`
	Number  *float64   `json:"number,omitempty"`
	String  *string    `json:"string,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// Sort directions accepted by the query endpoint.
const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// Sort orders query results by a property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// QueryRequest is the body of a database query call.
type QueryRequest struct {
	Filter      Filter `json:"filter,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// QueryResponse is one page of query results plus the continuation state.
type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}
