package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// QuerySignature keys the plan cache. Context maps marshal with sorted
// keys, so the digest is stable for equal inputs.
func QuerySignature(query string, context map[string]any, seed int64) string {
	ctxJSON, _ := json.Marshal(context)
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d", strings.TrimSpace(query), ctxJSON, seed)
	return hex.EncodeToString(h.Sum(nil))
}

// StepSignature keys the step result cache: role, the sub-question text,
// a digest over the predecessor outputs in plan order, and the seed.
func StepSignature(role, fragment string, contextOutputs []string, seed int64) string {
	ctxHash := sha256.New()
	for _, out := range contextOutputs {
		ctxHash.Write([]byte(out))
		ctxHash.Write([]byte{0})
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%x\x00%d", role, strings.TrimSpace(fragment), ctxHash.Sum(nil), seed)
	return hex.EncodeToString(h.Sum(nil))
}
