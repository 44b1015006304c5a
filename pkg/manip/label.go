package manip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/jifkit/pkg/jif"
)

var numberedLabel = regexp.MustCompile(`^M(\d+)$`)

// NextLabel returns the label for the next manipulator added to a pattern
// with the given jugglers. Any juggler whose label starts with "M" counts as
// a manipulator:
//   - none yet: "M"
//   - otherwise a plain "M" is renamed to "M1" in place and the result is
//     "M<n+1>", where n is the highest existing number (at least 1)
func NextLabel(jugglers []jif.Juggler) string {
	found := false
	highest := 1
	for _, j := range jugglers {
		if !strings.HasPrefix(j.Label, "M") {
			continue
		}
		found = true
		if m := numberedLabel.FindStringSubmatch(j.Label); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				highest = max(highest, n)
			}
		}
	}
	if !found {
		return "M"
	}
	for i := range jugglers {
		if jugglers[i].Label == "M" {
			jugglers[i].Label = "M1"
			break
		}
	}
	return fmt.Sprintf("M%d", highest+1)
}
