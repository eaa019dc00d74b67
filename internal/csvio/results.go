package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"groupassign/pkg/assign"
)

// WriteAssignments writes one row per assignment: a 1-based index, the
// semicolon-joined members of every group seen across the assignments (name
// order), and a trailing Unassigned column when any assignment left someone
// out. Quoting follows RFC 4180 via encoding/csv.
func WriteAssignments(file string, assignments []assign.Assignment) error {
	groupNames := lo.Uniq(lo.FlatMap(assignments, func(assignment assign.Assignment, _ int) []string {
		return lo.Keys(assignment.Groups)
	}))
	slices.Sort(groupNames)

	withUnassigned := lo.SomeBy(assignments, func(assignment assign.Assignment) bool {
		return len(assignment.Unassigned) > 0
	})

	writer, err := os.Create(file)
	if err != nil {
		return err
	}
	defer writer.Close()

	csvWriter := csv.NewWriter(writer)

	header := append([]string{"Assignment"}, groupNames...)
	if withUnassigned {
		header = append(header, "Unassigned")
	}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("cannot write results file: %v", err)
	}

	for i, assignment := range assignments {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(i+1))
		for _, groupName := range groupNames {
			row = append(row, strings.Join(assignment.Groups[groupName], ";"))
		}
		if withUnassigned {
			row = append(row, strings.Join(assignment.Unassigned, ";"))
		}

		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("cannot write results file: %v", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
