package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"

	"courseplan/internal/catalog"
	"courseplan/internal/prereq"
	"courseplan/internal/schedule"

	"github.com/samber/lo"
)

func main() {
	// Define arguments
	sectionsPtr := flag.String("sections", "", "Path to the section snapshot (.json or .csv)")
	delimPtr := flag.String("delim", ",", "CSV field delimiter, used when the snapshot is a .csv file")
	titlesPtr := flag.String("titles", "", "Comma-separated title keys to schedule; empty means every known title")
	includeClosedPtr := flag.Bool("include-closed", false, "Consider closed sections as candidates")
	planPtr := flag.String("plan", "", "Path to a curriculum document (optional)")
	queryPtr := flag.String("query", "", "Course code to query prerequisites and dependents for (requires -plan)")
	flag.Parse()

	// Validate arguments
	if *sectionsPtr == "" {
		log.Fatal("a section snapshot file must be specified")
	} else if *queryPtr != "" && *planPtr == "" {
		log.Fatal("-query requires a curriculum document (-plan)")
	} else if len([]rune(*delimPtr)) != 1 {
		log.Fatalf("%q is not a valid delimiter", *delimPtr)
	}

	// Extract the snapshot
	var sections []catalog.Section
	var err error
	if strings.HasSuffix(*sectionsPtr, ".csv") {
		sections, err = catalog.SectionsFromCSVFile(*sectionsPtr, []rune(*delimPtr)[0])
	} else {
		sections, err = catalog.SectionsFromFile(*sectionsPtr)
	}
	if err != nil {
		log.Fatalf("cannot load section snapshot: %v", err)
	}

	session := schedule.NewSession()
	session.SetSections(sections)
	session.SetIncludeClosed(*includeClosedPtr)

	titles := session.Titles()
	if *titlesPtr != "" {
		titles = lo.Map(strings.Split(*titlesPtr, ","), func(title string, _ int) string {
			return strings.TrimSpace(title)
		})
	}

	// Build the schedule
	assignment, err := session.Solve(titles)
	if err != nil {
		log.Fatalf("cannot schedule: %v", err)
	} else if assignment == nil {
		fmt.Println("No conflict-free combination exists")
		return
	}

	printAssignment(assignment)

	// Answer the graph query
	if *queryPtr != "" {
		plans, err := prereq.PlansFromFile(*planPtr)
		if err != nil {
			log.Fatalf("cannot load curriculum document: %v", err)
		}
		graph := prereq.NewGraph(plans[0])
		index := catalog.BuildCourseIndex(sections)
		printQuery(graph, index, *queryPtr, *includeClosedPtr)
	}
}

func printAssignment(assignment schedule.Assignment) {
	titles := lo.Keys(assignment)
	slices.Sort(titles)

	for _, title := range titles {
		section := assignment[title]
		fmt.Printf("%v -> CRN %v\n", title, section.CRN)
		for _, block := range schedule.BlocksOf(section) {
			fmt.Printf("  %v %v-%v", block.Day, schedule.FormatClock(block.Start), schedule.FormatClock(block.End))
			if block.Room != "" {
				fmt.Printf(" (%v %v)", block.Building, block.Room)
			}
			fmt.Println()
		}
	}
}

func printQuery(graph prereq.Graph, index catalog.CourseIndex, code string, includeClosed bool) {
	fmt.Printf("\n%v (offered: %v, selectable: %v)\n",
		catalog.NormalizeCode(code), index.Offered(code), index.Selectable(code, includeClosed))
	fmt.Printf("  direct prerequisites:   %v\n", graph.DirectPrerequisites(code))
	fmt.Printf("  indirect prerequisites: %v\n", graph.IndirectPrerequisites(code))
	fmt.Printf("  direct dependents:      %v\n", graph.DirectDependents(code))
	fmt.Printf("  indirect dependents:    %v\n", graph.IndirectDependents(code))
}
