package yamlglue

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaID = "stepflow-steps.json"

// JSONSchema produces a JSON Schema document describing step definition files, e.g. for editor support.
func JSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&File{})
	s.Title = "stepflow step definitions"
	s.Description = "Schema for stepflow step definition files (*.steps.yaml)"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal step definition schema (%w)", err)
	}
	return data, nil
}

var compiledSchema = sync.OnceValues(func() (*sjsonschema.Schema, error) {
	schemaJSON, err := JSONSchema()
	if err != nil {
		return nil, err
	}
	var schemaDoc any
	if err := json.Unmarshal(schemaJSON, &schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to decode step definition schema (%w)", err)
	}
	c := sjsonschema.NewCompiler()
	if err := c.AddResource(schemaID, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to add step definition schema (%w)", err)
	}
	return c.Compile(schemaID)
})

// validateDocument checks a decoded YAML document against the step definition schema.
func validateDocument(document any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("bug: invalid step definition schema (%w)", err)
	}
	// Round-trip through JSON so the validator sees JSON types only.
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("unsupported document structure (%w)", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unsupported document structure (%w)", err)
	}
	err = sch.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*sjsonschema.ValidationError)
	if !ok {
		return err
	}
	var messages []string
	for _, cause := range flattenValidationErrors(ve) {
		messages = append(messages, fmt.Sprintf("/%s: %v", strings.Join(cause.InstanceLocation, "/"), cause.ErrorKind))
	}
	return fmt.Errorf("schema violation (%s)", strings.Join(messages, "; "))
}

func flattenValidationErrors(ve *sjsonschema.ValidationError) []*sjsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*sjsonschema.ValidationError{ve}
	}
	var flat []*sjsonschema.ValidationError
	for _, cause := range ve.Causes {
		flat = append(flat, flattenValidationErrors(cause)...)
	}
	return flat
}
