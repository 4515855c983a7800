package family

import "strings"

// PathCode encodes the edge sequence from one individual to another as a
// string over the step alphabet: "P" for a parent step, "S" for a spouse
// step. The empty code is the path from an individual to itself.
type PathCode string

const (
	parentStep = "P"
	spouseStep = "S"
)

// HasSpouseStep reports whether the path already spent its single allowed
// spouse hop.
func (c PathCode) HasSpouseStep() bool {
	return strings.Contains(string(c), spouseStep)
}

// PathsFrom walks breadth-first from start over parent edges, plus at most
// one spouse edge per path, and returns the shortest path code to every
// reachable individual keyed by name. Parents are visited in description
// order and every individual is assigned a code exactly once, on first
// discovery, so the result is deterministic and shortest-path.
func PathsFrom(start *Individual) map[string]PathCode {
	codes := map[string]PathCode{start.Name: ""}
	queue := []*Individual{start}

	for len(queue) > 0 {
		person := queue[0]
		queue = queue[1:]
		code := codes[person.Name]

		for _, parent := range person.Parents {
			if _, seen := codes[parent.Name]; seen {
				continue
			}
			codes[parent.Name] = code + parentStep
			queue = append(queue, parent)
		}

		if person.Spouse != nil && !code.HasSpouseStep() {
			if _, seen := codes[person.Spouse.Name]; !seen {
				codes[person.Spouse.Name] = code + spouseStep
				queue = append(queue, person.Spouse)
			}
		}
	}

	return codes
}
