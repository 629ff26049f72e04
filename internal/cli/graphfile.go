package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	apperrors "github.com/aryaneelshivam/deadpanda/pkg/errors"
	"github.com/aryaneelshivam/deadpanda/pkg/rag"
)

// loadGraph reads a graph snapshot from a JSON file, or from stdin when the
// path is "-", and validates it before returning.
func loadGraph(path string) (rag.GraphState, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return rag.GraphState{}, fmt.Errorf("read graph: %w", err)
	}

	var state rag.GraphState
	if err := json.Unmarshal(data, &state); err != nil {
		return rag.GraphState{}, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decoding %s", path)
	}
	if err := apperrors.ValidateGraphState(state); err != nil {
		return rag.GraphState{}, err
	}
	return state, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
