package lag

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// signature computes the stable plan hash over (order, edges, normalized
// sub-question text). Two reruns with identical structure produce the same
// hex digest, which is what the stability tests compare.
func signature(plan *Plan) string {
	var b strings.Builder

	b.WriteString("order:")
	for _, id := range plan.Order {
		fmt.Fprintf(&b, "%d,", id)
	}

	b.WriteString("|edges:")
	ids := make([]int, 0, len(plan.DepGraph))
	for id := range plan.DepGraph {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		for _, dep := range plan.DepGraph[id] {
			fmt.Fprintf(&b, "%d->%d,", id, dep)
		}
	}

	b.WriteString("|text:")
	for _, s := range plan.SubQuestions {
		fmt.Fprintf(&b, "%d=%s;", s.ID, strings.ToLower(normalizeFragment(s.Text)))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
