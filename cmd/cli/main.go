package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/samber/lo"

	"groupassign/internal/csvio"
	"groupassign/pkg/assign"
)

var (
	validModes = []string{"exhaustive", "minimize"}
	assigners  = map[string]func(nodeLimit uint64) assign.Assigner{
		"exhaustive": assign.NewExhaustiveAssigner,
		"minimize":   assign.NewMinUnassignedAssigner,
	}
)

func main() {
	// Define arguments
	modePtr := flag.String("mode", "minimize", `Search mode. Allowed values are:
- "exhaustive" (every valid assignment; a person may hold up to their quota of simultaneous memberships) and
- "minimize" (one membership per person; only the assignments leaving the fewest people unassigned), where "minimize" is the default`)
	inputPtr := flag.String("input", "", "Path to a JSON input file carrying both groups and people; mutually exclusive with -groups/-people")
	groupsPtr := flag.String("groups", "", "Path to the groups CSV file (GroupName,MinSize,MaxSize)")
	peoplePtr := flag.String("people", "", "Path to the participants CSV file (Name,AllowedGroups,MaxGroups)")
	outPtr := flag.String("out", "", "Path to the results CSV file; if empty, results are only reported on the Standard Output")
	limitPtr := flag.Uint64("limit", 0, "Search node budget; the search stops and reports what it found once exceeded, where 0 (unbounded) is the default")
	flag.Parse()
	mode := strings.ToLower(*modePtr)

	// Validate arguments
	if !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid mode", mode)
	} else if *inputPtr == "" && (*groupsPtr == "" || *peoplePtr == "") {
		log.Fatal("either an input file or both a groups and a participants file must be specified")
	} else if *inputPtr != "" && (*groupsPtr != "" || *peoplePtr != "") {
		log.Fatal("an input file cannot be combined with a groups or participants file")
	}

	// Extract input
	input, err := loadInput(*inputPtr, *groupsPtr, *peoplePtr)
	if err != nil {
		log.Fatalf("cannot parse input: %v", err)
	}

	// Initialize engine
	assigner := assigners[mode](*limitPtr)

	// Enumerate assignments
	assignments, err := assigner.Solve(input)
	if errors.Is(err, assign.ErrNodeLimitReached) {
		log.Printf("node budget exhausted: reporting the %v assignments found so far", len(assignments))
	} else if err != nil {
		log.Fatalf("an error occurred during the search: %v", err)
	}

	if len(assignments) == 0 {
		fmt.Println("No valid assignments found")
		return
	}

	// Verify assignment correctness
	for _, assignment := range assignments {
		if !assigner.Verify(assignment, input) {
			log.Fatalf("assignment failed verification: %v", assignment.Key())
		}
	}

	for _, assignment := range assignments {
		fmt.Println(formatAssignment(assignment))
		fmt.Println()
	}
	fmt.Printf("Found %v valid assignments.\n", len(assignments))

	if *outPtr != "" {
		if err := csvio.WriteAssignments(*outPtr, assignments); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
		fmt.Printf("Results exported to %v\n", *outPtr)
	}
}

func loadInput(inputFile, groupsFile, peopleFile string) (assign.ModelInput, error) {
	if inputFile != "" {
		return assign.InputFromJson(inputFile)
	}

	groups, err := csvio.ReadGroups(groupsFile)
	if err != nil {
		return assign.ModelInput{}, err
	}
	people, err := csvio.ReadPeople(peopleFile)
	if err != nil {
		return assign.ModelInput{}, err
	}
	return assign.ModelInput{Groups: groups, People: people}, nil
}

func formatAssignment(assignment assign.Assignment) string {
	groupNames := lo.Keys(assignment.Groups)
	slices.Sort(groupNames)

	var builder strings.Builder
	for _, groupName := range groupNames {
		members := assignment.Groups[groupName]
		if len(members) == 0 {
			continue
		}
		fmt.Fprintf(&builder, "%v: %v\n", groupName, strings.Join(members, ", "))
	}
	if len(assignment.Unassigned) > 0 {
		fmt.Fprintf(&builder, "Unassigned: %v\n", strings.Join(assignment.Unassigned, ", "))
	}
	return strings.TrimRight(builder.String(), "\n")
}
