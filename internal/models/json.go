package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON holds free-form transaction metadata (import source, acquirer
// batch numbers, device details) in a jsonb column.
type JSON map[string]interface{}

// Value implements driver.Valuer; a nil map persists as SQL NULL.
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner for the []byte and string forms Postgres
// drivers hand back.
func (j *JSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSON", value)
	}
}
