package field

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const submissionSchemaURL = "translatable://submission.json"

const submissionSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"anyOf": [
		{ "type": "null" },
		{ "const": false },
		{
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"key": { "type": ["string", "null"] },
					"value": { "type": ["string", "null"] }
				}
			}
		}
	]
}`

var compiledSubmissionSchema = jsonschema.MustCompileString(submissionSchemaURL, submissionSchema)

type submittedRow struct {
	Key   *string `json:"key"`
	Value *string `json:"value"`
}

// ParseSubmission decodes the raw request value of a field. An empty body,
// null or false means the request carried no value for the field.
func ParseSubmission(data []byte) (Submission, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Submission{}, nil
	}

	var doc any
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrSubmissionInvalid, err)
	}
	if err := compiledSubmissionSchema.Validate(doc); err != nil {
		return Submission{}, fmt.Errorf("%w: %s", ErrSubmissionInvalid, strings.TrimSpace(err.Error()))
	}
	if _, ok := doc.([]any); !ok {
		return Submission{}, nil
	}

	var raw []submittedRow
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrSubmissionInvalid, err)
	}

	rows := make([]Row, 0, len(raw))
	for _, item := range raw {
		row := Row{}
		if item.Key != nil {
			row.Key = *item.Key
		}
		if item.Value != nil {
			row.Value = *item.Value
		}
		rows = append(rows, row)
	}
	return Submit(rows...), nil
}
