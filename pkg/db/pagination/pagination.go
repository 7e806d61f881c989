package pagination

import (
	"encoding/base64"
	"encoding/json"
)

// Pagination is the query-string shape shared by every list endpoint.
type Pagination struct {
	PageToken string `form:"page_token"`
	PageSize  int    `form:"page_size,default=25" validate:"gte=1,lte=250"`
}

// Cursor marks a position in a (created_at, id) keyset scan. Tokens are
// opaque to clients; the encoding is base64 JSON.
type Cursor struct {
	ID        string `json:"id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type PageInfo struct {
	NextPageToken string `json:"next_page_token"`
	HasMore       bool   `json:"has_more"`
}

func EncodeCursor(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func DecodeCursor(token string) (*Cursor, error) {
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// BuildCursorPageInfo derives page metadata from a result set fetched with
// limit+1 rows. The extra row, when present, proves another page exists and
// is trimmed before the cursor is taken from the last surviving row.
func BuildCursorPageInfo[T any](rows []*T, limit int32, cursorOf func(*T) string) *PageInfo {
	if len(rows) == 0 {
		return &PageInfo{}
	}

	hasMore := len(rows) > int(limit)
	if hasMore {
		rows = rows[:limit]
	}

	return &PageInfo{
		HasMore:       hasMore,
		NextPageToken: cursorOf(rows[len(rows)-1]),
	}
}
