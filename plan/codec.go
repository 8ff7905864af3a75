// SPDX-License-Identifier: MIT

package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format names a wire encoding for plans and matrix input.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ParseFormat maps a case-insensitive name ("yaml", "yml", "json", "cbor") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	}

	return "", fmt.Errorf("plan: %q: %w", s, ErrUnknownFormat)
}

// cborEncMode is the deterministic CBOR encoder mode for plans.
var cborEncMode cbor.EncMode

// cborDecMode is the CBOR decoder mode for plans and matrix input.
var cborDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	cborEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create plan CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	cborDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create plan CBOR decoder mode: %v", err))
	}
}

// encode writes v to w in format f.
func encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("plan: yaml encode: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("plan: json encode: %w", err)
		}
		return nil
	case FormatCBOR:
		if err := cborEncMode.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("plan: cbor encode: %w", err)
		}
		return nil
	}

	return fmt.Errorf("plan: %q: %w", f, ErrUnknownFormat)
}

// decode reads one value of format f from r into v.
func decode(r io.Reader, v any, f Format) error {
	var err error
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(v)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case FormatCBOR:
		err = cborDecMode.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("plan: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("plan: %s decode: %w", f, err)
	}

	return nil
}
