//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// topic labels travel as a JSON object: {"0": "ai / model / data", ...}

func WriteLabels(path string, labels map[int]string) error {
	out := make(map[string]string, len(labels))
	for id, lbl := range labels {
		out[strconv.Itoa(id)] = lbl
	}
	content, err := json.MarshalIndent(out, "", vv.JSONINDENT)
	if err != nil {
		return fmt.Errorf("encode labels: %w", err)
	}
	if err := os.WriteFile(path, content, vv.WRITEPERMS); err != nil {
		return fmt.Errorf("write labels file: %w", err)
	}
	return nil
}

func ReadLabels(path string) (map[int]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels file: %w", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse labels file: %w", err)
	}
	labels := make(map[int]string, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("non-integer topic id '%s' in labels file", k)
		}
		labels[id] = v
	}
	return labels, nil
}
