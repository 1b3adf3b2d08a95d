package cli

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"benefits-engine/internal/apperr"
	"benefits-engine/internal/model"
)

// readProfile decodes a profile from a JSON file, or from stdin when path is "-".
func readProfile(path string, stdin io.Reader) (model.FinancialProfile, error) {
	var profile model.FinancialProfile

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return profile, apperr.NewUserError(fmt.Sprintf("could not read profile %s", path), err)
	}

	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, apperr.NewUserError(
			fmt.Sprintf("could not parse profile %s", path),
			fmt.Errorf("%w: %v", apperr.ErrInvalidProfile, err))
	}
	return profile, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
