// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

/*
A document is the parsed, format-independent tree that Decode consumes. Its
nodes are:

	map[string]interface{}   objects
	[]interface{}            arrays
	string                   strings
	Number                   numbers, as their source text
	bool                     booleans
	nil                      null

Numbers keep their source text so that 64-bit ordinals and literal values
never pass through a float64.
*/

// Number is a numeric document node, kept as the text the producer wrote.
type Number string

// ReadJSONIr reads and decodes a JSON IR file.
func ReadJSONIr(filename string) (*Library, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &Error{Kind: IoError, Detail: filename, Err: err}
	}
	defer f.Close()
	return DecodeJSONIr(f)
}

// DecodeJSONIr parses JSON IR from a reader and decodes it.
func DecodeJSONIr(r io.Reader) (*Library, error) {
	doc, err := ParseJSON(r)
	if err != nil {
		return nil, err
	}
	return Decode(doc)
}

// ReadJSONIrContent parses and decodes JSON IR content.
func ReadJSONIrContent(b []byte) (*Library, error) {
	return DecodeJSONIr(bytes.NewReader(b))
}

// ParseJSON parses a single JSON value into a document tree. Objects with a
// repeated key are rejected.
func ParseJSON(r io.Reader) (interface{}, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Kind: IoError, Err: err}
	}
	// The token stream below does not check separators, so the whole input
	// is validated first.
	if !json.Valid(b) {
		var v interface{}
		return nil, malformed("invalid JSON", json.Unmarshal(b, &v))
	}
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	p := jsonParser{dec: d}
	v, err := p.value("")
	if err != nil {
		return nil, err
	}
	if _, err := d.Token(); err != io.EOF {
		return nil, malformed("trailing data after JSON value", err)
	}
	return v, nil
}

type jsonParser struct {
	dec *json.Decoder
}

func (p *jsonParser) token() (json.Token, error) {
	tok, err := p.dec.Token()
	if err == io.EOF {
		return nil, malformed("unexpected end of JSON input", nil)
	}
	if err != nil {
		return nil, malformed("invalid JSON", err)
	}
	return tok, nil
}

func (p *jsonParser) value(path string) (interface{}, error) {
	tok, err := p.token()
	if err != nil {
		return nil, err
	}
	return p.valueFrom(path, tok)
}

func (p *jsonParser) valueFrom(path string, tok json.Token) (interface{}, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return p.object(path)
		case '[':
			return p.array(path)
		}
		return nil, &Error{Kind: MalformedDocument, Path: path, Detail: fmt.Sprintf("unexpected %q", rune(v))}
	case json.Number:
		return Number(v), nil
	case float64:
		return Number(fmt.Sprint(v)), nil
	case string, bool, nil:
		return v, nil
	}
	return nil, &Error{Kind: MalformedDocument, Path: path, Detail: fmt.Sprintf("unexpected token %v", tok)}
}

func (p *jsonParser) object(path string) (interface{}, error) {
	obj := map[string]interface{}{}
	for {
		tok, err := p.token()
		if err != nil {
			return nil, err
		}
		if tok == json.Delim('}') {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, &Error{Kind: MalformedDocument, Path: path, Detail: fmt.Sprintf("object key %v is not a string", tok)}
		}
		if _, dup := obj[key]; dup {
			return nil, duplicateKey(path, key)
		}
		v, err := p.value(fieldPath(path, key))
		if err != nil {
			return nil, err
		}
		obj[key] = v
	}
}

func (p *jsonParser) array(path string) (interface{}, error) {
	arr := []interface{}{}
	for {
		tok, err := p.token()
		if err != nil {
			return nil, err
		}
		if tok == json.Delim(']') {
			return arr, nil
		}
		v, err := p.valueFrom(indexPath(path, len(arr)), tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// ParseYAML parses a YAML rendition of the IR into a document tree. Integer
// scalars become Numbers in decimal, whatever base the source used; float
// scalars keep their source text.
func ParseYAML(r io.Reader) (interface{}, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Kind: IoError, Err: err}
	}
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(b)).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, malformed("empty YAML document", nil)
		}
		return nil, malformed("invalid YAML", err)
	}
	return yamlValue(&root, "")
}

func yamlValue(n *yaml.Node, path string) (interface{}, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, malformed("YAML document must hold exactly one value", nil)
		}
		return yamlValue(n.Content[0], path)
	case yaml.AliasNode:
		return yamlValue(n.Alias, path)
	case yaml.MappingNode:
		obj := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, &Error{Kind: MalformedDocument, Path: path, Detail: fmt.Sprintf("line %d: mapping key is not a scalar", k.Line)}
			}
			if _, dup := obj[k.Value]; dup {
				return nil, duplicateKey(path, k.Value)
			}
			val, err := yamlValue(v, fieldPath(path, k.Value))
			if err != nil {
				return nil, err
			}
			obj[k.Value] = val
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]interface{}, 0, len(n.Content))
		for i, c := range n.Content {
			val, err := yamlValue(c, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int":
			// Base 0 accepts the prefixes and digit separators YAML allows.
			i, ok := new(big.Int).SetString(n.Value, 0)
			if !ok {
				return nil, &Error{Kind: MalformedDocument, Path: path, Detail: fmt.Sprintf("line %d: invalid integer %q", n.Line, n.Value)}
			}
			return Number(i.String()), nil
		case "!!float":
			return Number(n.Value), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, &Error{Kind: MalformedDocument, Path: path, Detail: fmt.Sprintf("line %d: invalid boolean", n.Line), Err: err}
			}
			return b, nil
		case "!!null":
			return nil, nil
		}
		return n.Value, nil
	}
	return nil, &Error{Kind: MalformedDocument, Path: path, Detail: fmt.Sprintf("line %d: unsupported YAML node", n.Line)}
}

func duplicateKey(path, key string) *Error {
	return &Error{Kind: MalformedDocument, Field: key, Path: fieldPath(path, key), Detail: "duplicate object key"}
}

func malformed(detail string, err error) *Error {
	return &Error{Kind: MalformedDocument, Detail: detail, Err: err}
}
