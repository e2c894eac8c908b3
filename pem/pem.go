// Package pem implements the PEM envelope format: a label and Base64 body
// wrapped at 64 characters, independent of any particular payload encoding.
package pem

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const wrapColumn = 64

// Block is a decoded or to-be-encoded PEM envelope.
type Block struct {
	Label   string
	Payload []byte
}

// Encode renders b as "-----BEGIN <label>-----", the Base64 body wrapped at
// 64 characters per line, and "-----END <label>-----".
func Encode(b Block) string {
	var sb strings.Builder
	sb.WriteString("-----BEGIN " + b.Label + "-----\n")
	encoded := base64.StdEncoding.EncodeToString(b.Payload)
	for i := 0; i < len(encoded); i += wrapColumn {
		end := i + wrapColumn
		if end > len(encoded) {
			end = len(encoded)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString("\n")
	}
	sb.WriteString("-----END " + b.Label + "-----\n")
	return sb.String()
}

// Decode scans input line by line for a single PEM envelope. It fails on
// duplicate BEGIN/END markers, an END with no matching BEGIN, a missing END,
// or a label mismatch between BEGIN and END.
func Decode(input string) (Block, error) {
	const (
		beginPrefix = "-----BEGIN "
		endPrefix   = "-----END "
		suffix      = "-----"
	)

	var label string
	var bodyLines []string
	inBody := false
	seenBegin := false
	seenEnd := false

	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, beginPrefix) && strings.HasSuffix(line, suffix):
			if seenBegin {
				return Block{}, fmt.Errorf("pem: duplicate BEGIN marker")
			}
			label = line[len(beginPrefix) : len(line)-len(suffix)]
			seenBegin = true
			inBody = true
		case strings.HasPrefix(line, endPrefix) && strings.HasSuffix(line, suffix):
			if !seenBegin {
				return Block{}, fmt.Errorf("pem: END marker with no matching BEGIN")
			}
			if seenEnd {
				return Block{}, fmt.Errorf("pem: duplicate END marker")
			}
			endLabel := line[len(endPrefix) : len(line)-len(suffix)]
			if endLabel != label {
				return Block{}, fmt.Errorf("pem: label mismatch, BEGIN %q vs END %q", label, endLabel)
			}
			seenEnd = true
			inBody = false
		case inBody:
			bodyLines = append(bodyLines, line)
		}
	}

	if !seenBegin {
		return Block{}, fmt.Errorf("pem: missing BEGIN marker")
	}
	if !seenEnd {
		return Block{}, fmt.Errorf("pem: missing END marker")
	}

	payload, err := base64.StdEncoding.DecodeString(strings.Join(bodyLines, ""))
	if err != nil {
		return Block{}, fmt.Errorf("pem: invalid base64 body: %w", err)
	}
	return Block{Label: label, Payload: payload}, nil
}
