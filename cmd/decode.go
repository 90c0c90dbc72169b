package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

// loadRecordFile decodes a JSON document into a typed record. Going through
// mapstructure keeps the input forgiving about numeric types and converts
// timestamp strings to time.Time.
func loadRecordFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     out,
		TagName:    "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func printJSON(v any) {
	pretty, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(pretty))
}
