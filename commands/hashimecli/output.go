package hashimecli

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

// Result is the machine readable form of a rendered digest
type Result struct {
	Name      string   `json:"name,omitempty" yaml:"name,omitempty" cbor:"0,keyasint,omitempty"`
	Algorithm string   `json:"algorithm" yaml:"algorithm" cbor:"1,keyasint"`
	Hash      string   `json:"hash" yaml:"hash" cbor:"2,keyasint"`
	Digest    string   `json:"digest" yaml:"digest" cbor:"3,keyasint"`
	Art       []string `json:"art" yaml:"art" cbor:"4,keyasint"`
}

func encodeDigest(form string, digest []byte) (string, error) {
	switch form {
	case "base64":
		return base64.StdEncoding.EncodeToString(digest), nil
	case "hex":
		return hex.EncodeToString(digest), nil
	default:
		return "", fmt.Errorf("unknown digest form %s", form)
	}
}

func encodeResult(format string, res *Result) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(res)
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "cbor":
		return cbor.Marshal(res)
	default:
		return nil, fmt.Errorf("unknown output format %s", format)
	}
}
