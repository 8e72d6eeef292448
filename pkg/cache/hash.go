package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds "<kind>:<sha256>" from a graph hash and the options that
// change the cached value. Options are JSON-encoded before hashing, so
// adding a field to ReportKeyOpts or ArtifactKeyOpts changes every key
// of that kind and old entries simply stop matching.
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data. pipeline.GraphHash applies it to
// the canonical edge list; FileCache uses it to name entry files.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
