package council

import "fmt"

// assignLabels gives each candidate a neutral label ("A1", "A2", ...) in
// successful-answer order. The assignment is stable within one run so the
// peer-review and synthesis stages present the same identity for the same
// answer, and it is discarded with the run.
func assignLabels(candidates []Answer) map[string]string {
	labels := make(map[string]string, len(candidates))
	for i, c := range candidates {
		labels[c.Role] = fmt.Sprintf("A%d", i+1)
	}
	return labels
}

// displayName returns what judges and the chairman see for a candidate:
// its label when anonymization is on, its role name otherwise.
func displayName(c Answer, labels map[string]string, anonymize bool) string {
	if anonymize {
		return labels[c.Role]
	}
	return c.Role
}
