package skills

import (
	"strings"
	"testing"

	"github.com/pathpilot/pathpilot/internal/taxonomy"
)

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestExtractFindsKnownSkills(t *testing.T) {
	set := Extract("Experienced in Python, SQL, and Docker")

	for _, want := range []string{"Python", "SQL", "Docker"} {
		if !contains(set.All, want) {
			t.Fatalf("expected %q in %v", want, set.All)
		}
	}
}

func TestExtractDeduplicates(t *testing.T) {
	set := Extract("Python python PYTHON. More Python.")

	count := 0
	for _, s := range set.All {
		if s == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected Python exactly once, got %d occurrences", count)
	}
}

func TestExtractRespectsWordBoundaries(t *testing.T) {
	set := Extract("Her reaction to the gold rush was immediate.")

	if contains(set.All, "React") {
		t.Fatalf("matched React inside reaction: %v", set.All)
	}
	if contains(set.All, "Go") {
		t.Fatalf("matched Go inside gold: %v", set.All)
	}
}

func TestExtractMatchesPunctuatedNames(t *testing.T) {
	set := Extract("Low level work in C++ and services in C#.")

	if !contains(set.All, "C++") {
		t.Fatalf("expected C++ in %v", set.All)
	}
	if !contains(set.All, "C#") {
		t.Fatalf("expected C# in %v", set.All)
	}
}

func TestExtractResolvesAbbreviations(t *testing.T) {
	set := Extract("Strong js and k8s background")

	if !contains(set.All, "JavaScript") {
		t.Fatalf("expected js to resolve to JavaScript, got %v", set.All)
	}
	if !contains(set.All, "Kubernetes") {
		t.Fatalf("expected k8s to resolve to Kubernetes, got %v", set.All)
	}
}

func TestExtractEmptyTextReturnsDefaults(t *testing.T) {
	set := Extract("")

	if len(set.All) != len(Default) {
		t.Fatalf("expected %d default skills, got %v", len(Default), set.All)
	}
	for i, want := range Default {
		if set.All[i] != want {
			t.Fatalf("default set mismatch at %d: got %q, want %q", i, set.All[i], want)
		}
	}
}

func TestExtractNoMatchesReturnsDefaults(t *testing.T) {
	set := Extract("lorem ipsum dolor sit amet")

	if len(set.All) == 0 {
		t.Fatalf("expected default fallback, got empty set")
	}
	if set.All[0] != "Python" {
		t.Fatalf("expected defaults, got %v", set.All)
	}
}

func TestExtractCapsOutput(t *testing.T) {
	var sb strings.Builder
	for _, e := range taxonomy.Entries() {
		sb.WriteString(e.Name)
		sb.WriteString(", ")
	}

	set := Extract(sb.String())
	if len(set.All) != MaxSkills {
		t.Fatalf("expected cap of %d, got %d", MaxSkills, len(set.All))
	}
}

func TestExtractGroupsByDepartment(t *testing.T) {
	set := Extract("Python and strong Communication skills")

	if !contains(set.ByDepartment[taxonomy.DepartmentTechnology], "Python") {
		t.Fatalf("expected Python under technology: %v", set.ByDepartment)
	}
	if !contains(set.ByDepartment[taxonomy.DepartmentGeneral], "Communication") {
		t.Fatalf("expected Communication under general: %v", set.ByDepartment)
	}
}

func TestLowered(t *testing.T) {
	set := &Set{All: []string{"Python", "Machine Learning"}}
	got := set.Lowered()
	if got[0] != "python" || got[1] != "machine learning" {
		t.Fatalf("unexpected lowered set: %v", got)
	}
}

func TestExtractRequiredDoesNotBackfill(t *testing.T) {
	set := ExtractRequired("We are hiring a great person for our team.")
	if len(set.All) != 0 {
		t.Fatalf("expected empty set for job text without skills, got %v", set.All)
	}
}

func TestExtractRequiredMatchesSkills(t *testing.T) {
	set := ExtractRequired("Requires Python and Docker experience.")
	if !contains(set.All, "Python") || !contains(set.All, "Docker") {
		t.Fatalf("unexpected set: %v", set.All)
	}
}
