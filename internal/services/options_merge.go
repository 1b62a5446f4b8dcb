package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"escrow-dashboard/internal/models"
)

var ErrInvalidOverrides = errors.New("invalid render options override")

// MergeOptions deep-merges caller overrides onto compiled options. Objects are
// merged key by key so overriding plugins.legend.labels.color keeps the rest of
// the legend; any other value replaces the compiled one. Overrides that do not
// fit the options shape are rejected.
func MergeOptions(base models.RenderOptions, overrides map[string]any) (models.RenderOptions, error) {
	if len(overrides) == 0 {
		return base, nil
	}

	raw, err := json.Marshal(base)
	if err != nil {
		return base, fmt.Errorf("failed to serialize render options: %w", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return base, fmt.Errorf("failed to decode render options: %w", err)
	}

	overrideRaw, err := json.Marshal(overrides)
	if err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidOverrides, err)
	}

	var overrideTree map[string]any
	if err := json.Unmarshal(overrideRaw, &overrideTree); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidOverrides, err)
	}

	merged, err := json.Marshal(deepMerge(tree, overrideTree))
	if err != nil {
		return base, fmt.Errorf("failed to serialize merged options: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()

	var out models.RenderOptions
	if err := dec.Decode(&out); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidOverrides, err)
	}

	return out, nil
}

// deepMerge returns dst with src merged in; nested objects are merged, everything else is replaced
func deepMerge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}

	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := out[k].(map[string]any)
		if srcIsMap && dstIsMap {
			out[k] = deepMerge(dstMap, srcMap)
			continue
		}
		out[k] = v
	}

	return out
}
