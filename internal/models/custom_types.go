package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON custom type for handling JSONB fields
type JSON map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(map[string]interface{})
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	temp := make(map[string]interface{})
	if err := json.Unmarshal(bytes, &temp); err != nil {
		return err
	}

	*j = temp
	return nil
}

// Value implements the driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}
