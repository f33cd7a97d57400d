// Package sessionid generates sortable identifiers for game sessions so log
// lines of one session can be grouped.
package sessionid

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator builds UUIDv7 IDs encoded in 26 characters of base32, so IDs
// sort by creation time.
type Generator struct {
	entropy io.Reader
}

// NewGenerator creates a generator. A nil entropy source defaults to
// crypto/rand.
func NewGenerator(entropy io.Reader) *Generator {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{entropy: entropy}
}

// New returns an ID drawn from crypto/rand
func New() string {
	id, err := NewGenerator(nil).Generate()
	if err != nil {
		panic("failed to generate session id: " + err.Error())
	}
	return id
}

// Generate creates a new ID
func (g *Generator) Generate() (string, error) {
	u, err := uuid.NewV7FromReader(g.entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return encoding.EncodeToString(u[:]), nil
}

// Parse decodes an ID back into its UUID
func Parse(id string) (uuid.UUID, error) {
	if len(id) != Length {
		return uuid.Nil, fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return uuid.Nil, fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session ID: %w", err)
	}
	return uuid.FromBytes(raw)
}

// Validate checks that id is a well-formed session ID
func Validate(id string) error {
	_, err := Parse(id)
	return err
}
