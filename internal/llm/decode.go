package llm

import (
	"fmt"

	"specforge/internal/spec"
	"specforge/internal/util/jsonutil"
)

// DecodeResult turns raw provider text into a normalized SpecificationResult.
// Direct decode is tried first; when the model wrapped its JSON in prose or
// code fences, the first well-formed object is extracted before giving up.
func DecodeResult(text string) (*spec.SpecificationResult, error) {
	var result spec.SpecificationResult
	if err := jsonutil.UnmarshalFlex([]byte(text), &result); err != nil {
		raw, exErr := jsonutil.ExtractObject(text)
		if exErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		result = spec.SpecificationResult{}
		if err := jsonutil.UnmarshalFlex(raw, &result); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}
	if err := spec.Normalize(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &result, nil
}
