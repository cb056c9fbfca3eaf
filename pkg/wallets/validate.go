package wallets

import (
	"bytes"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/agentstation/walletlist/pkg/errors"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://walletlist.local/schemas/wallets.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Schema returns the compiled JSON Schema of a catalog response.
func Schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = errors.WrapParse("json", "schema.json", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = errors.WrapResource("add", "schema", schemaURL, err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Decode parses body as a catalog response. The whole document is checked
// against the schema first; a single invalid record rejects the response.
func Decode(body []byte) ([]WalletDTO, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapParse("json", "wallets list", err)
	}

	if err := ValidateDocument(inst); err != nil {
		return nil, err
	}

	var dtos []WalletDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, errors.WrapParse("json", "wallets list", err)
	}
	return dtos, nil
}

// ValidateDocument checks an already decoded JSON document against the schema.
func ValidateDocument(doc any) error {
	sch, err := Schema()
	if err != nil {
		return err
	}

	if err := sch.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if stderrors.As(err, &verr) {
			leaf := deepestCause(verr)
			return &errors.ValidationError{
				Field:   "/" + strings.Join(leaf.InstanceLocation, "/"),
				Message: leaf.Error(),
				Err:     err,
			}
		}
		return errors.WrapValidation("", err)
	}
	return nil
}

// deepestCause follows the first cause chain to the most specific violation.
func deepestCause(verr *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	return verr
}
