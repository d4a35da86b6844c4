package savedata

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveJSON writes data as indented JSON, replacing the file.
func SaveJSON(path string, data interface{}) error {
	b, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return os.WriteFile(path, append(b, '\n'), 0664)
}

// LoadJSON reads a file written by SaveJSON.
func LoadJSON(path string, data interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, data)
}
